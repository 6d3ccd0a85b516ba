package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"retail-crud/config"
	"retail-crud/internal/utils"
)

// Prints a bearer token for the mutation routes, signed with AUTH_SECRET.
func main() {
	operator := flag.String("operator", "admin", "operator name carried in the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg := config.LoadConfig()
	if cfg.Auth.Secret == "" {
		log.Fatal("AUTH_SECRET is not set; mutation routes are open and need no token")
	}

	token, expiresAt, err := utils.GenerateToken([]byte(cfg.Auth.Secret), *operator, *ttl)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	log.Printf("token for %q expires at %s", *operator, expiresAt.Format(time.RFC3339))
	fmt.Println(token)
}

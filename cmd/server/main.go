package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"retail-crud/config"
	"retail-crud/internal/cache"
	"retail-crud/internal/database"
	"retail-crud/internal/gateway"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [--debug] [--threaded] [HOST [PORT]]\n", os.Args[0])
		flag.PrintDefaults()
	}
	debug := flag.Bool("debug", false, "run gin in debug mode")
	threaded := flag.Bool("threaded", false, "handle requests concurrently")
	flag.Parse()

	host, port := "localhost", "8111"
	if flag.NArg() > 0 {
		host = flag.Arg(0)
	}
	if flag.NArg() > 1 {
		port = flag.Arg(1)
	}

	if err := run(net.JoinHostPort(host, port), *debug, *threaded); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}

// run serves until SIGINT/SIGTERM or a listener failure, then unwinds every
// resource it opened.
func run(addr string, debug, threaded bool) error {
	if debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewConnection(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to db: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close db: %v", err)
		}
	}()

	if cfg.DB.AutoMigrate {
		if err := database.MigrateRetailDB(db); err != nil {
			return err
		}
	}

	var listingCache *cache.ListingCache
	if cfg.Redis.Enabled() {
		redisClient, err := config.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Printf("Warning: listing cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			listingCache = cache.NewListingCache(redisClient, cfg.Redis.TTL)
		}
	}

	router, err := gateway.NewRouter(db, gateway.Options{
		Threaded:   threaded,
		RateLimit:  cfg.Server.RateLimit,
		AuthSecret: cfg.Auth.Secret,
		Cache:      listingCache,
	})
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	if cfg.Server.GRPCHealthAddr != "" {
		lis, err := net.Listen("tcp", cfg.Server.GRPCHealthAddr)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", cfg.Server.GRPCHealthAddr, err)
		}

		grpcServer, healthServer := gateway.NewHealthServer()
		go gateway.WatchDatabase(ctx, db, healthServer, 10*time.Second)
		go func() {
			log.Printf("gRPC health service listening on %s", cfg.Server.GRPCHealthAddr)
			if err := grpcServer.Serve(lis); err != nil {
				log.Printf("gRPC health service stopped: %v", err)
			}
		}()
		defer grpcServer.GracefulStop()
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return serve(ctx, srv)
}

// serve runs srv until ctx is done, then drains it. A listener failure is
// returned instead of exiting so the caller's deferred cleanup still runs.
func serve(ctx context.Context, srv *http.Server) error {
	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"retail-crud/internal/database"
	"retail-crud/internal/gateway/render"
)

// ConnectionGuard checks one connection out of the pool for the lifetime of
// the request and binds it to the request context. The connection goes back
// to the pool once the rest of the chain returns or panics. Release errors
// are logged only; acquisition errors end the request with 503.
func ConnectionGuard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := database.Acquire(c.Request.Context(), db)
		if err != nil {
			log.Printf("connection guard: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			render.Error(c, http.StatusServiceUnavailable, "database unavailable")
			return
		}

		defer func() {
			if err := conn.Release(); err != nil {
				log.Printf("connection guard: release after %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			}
		}()

		c.Request = c.Request.WithContext(database.WithConn(c.Request.Context(), conn))
		c.Next()
	}
}

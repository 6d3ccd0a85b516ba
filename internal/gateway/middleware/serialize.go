package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
)

// Serialize lets one request through at a time. It backs the server's
// non-threaded mode.
func Serialize() gin.HandlerFunc {
	var mu sync.Mutex
	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		c.Next()
	}
}

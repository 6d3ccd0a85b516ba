package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"retail-crud/internal/gateway/render"
)

// RateLimit limits each client IP to the formatted rate ("300-M", "10-S").
func RateLimit(formatted string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", formatted, err)
	}

	store := memory.NewStore()
	instance := limiter.New(store, rate)

	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			render.Error(c, http.StatusTooManyRequests, "Limit exceeded")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			log.Printf("rate limiter: %v", err)
			render.Error(c, http.StatusInternalServerError, "rate limiter failure")
		}),
	), nil
}

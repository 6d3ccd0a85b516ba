package gateway

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"retail-crud/internal/cache"
	"retail-crud/internal/gateway/handlers"
	"retail-crud/internal/gateway/middleware"
	"retail-crud/internal/gateway/render"
	"retail-crud/internal/retail"
)

type Options struct {
	// Threaded lets requests run concurrently; otherwise one at a time.
	Threaded bool
	// RateLimit is a ulule formatted rate; empty disables limiting.
	RateLimit string
	// AuthSecret, when set, guards mutation routes with HS256 bearer tokens.
	AuthSecret string
	Cache      *cache.ListingCache
}

func NewRouter(db *gorm.DB, opts Options) (*gin.Engine, error) {
	r := gin.New()
	r.SetHTMLTemplate(render.Templates())

	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	if opts.RateLimit != "" {
		limit, err := middleware.RateLimit(opts.RateLimit)
		if err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		r.Use(limit)
	}
	if !opts.Threaded {
		r.Use(middleware.Serialize())
	}

	healthHandler := handlers.NewHealthHTTPHandler(db)
	r.GET("/health", healthHandler.Health)
	r.GET("/health/detailed", healthHandler.Detailed)

	retailHandler := handlers.NewRetailHTTPHandler(opts.Cache)
	r.GET("/another", retailHandler.Another)
	r.GET("/login", retailHandler.Login)

	// --- Database-backed routes ---
	listings := r.Group("/", middleware.ConnectionGuard(db))
	{
		for _, l := range retail.Listings {
			listings.GET(l.Path(), retailHandler.Listing(l))
		}
	}

	// Auth runs before the guard so rejected requests never hold a connection.
	mutations := r.Group("/", middleware.JWTAuth(opts.AuthSecret), middleware.ConnectionGuard(db))
	{
		mutations.POST("/add", retailHandler.AddName)

		mutations.POST("/employee_add", retailHandler.AddEmployee)
		mutations.POST("/employee_update", retailHandler.UpdateEmployee)
		mutations.GET("/employee_delete", retailHandler.DeleteEmployee)

		mutations.POST("/order_add", retailHandler.AddOrder)
		mutations.POST("/order_update", retailHandler.UpdateOrder)
		mutations.GET("/order_delete", retailHandler.DeleteOrder)

		mutations.POST("/select_add", retailHandler.AddSelection)
		mutations.POST("/select_update", retailHandler.UpdateSelection)
		mutations.GET("/select_delete", retailHandler.DeleteSelection)
	}

	return r, nil
}

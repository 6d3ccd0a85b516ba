package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHTTPHandler struct {
	db *gorm.DB
}

func NewHealthHTTPHandler(db *gorm.DB) *HealthHTTPHandler {
	return &HealthHTTPHandler{db: db}
}

func (h *HealthHTTPHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"message":   "Server is running",
		"timestamp": time.Now(),
	})
}

// Detailed pings the pool and reports its counters.
func (h *HealthHTTPHandler) Detailed(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	database := checkDatabase(ctx, h.db)

	overallStatus := "healthy"
	httpStatus := http.StatusOK
	if database["status"] != "healthy" {
		overallStatus = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, gin.H{
		"overall_status": overallStatus,
		"services":       gin.H{"database": database},
		"timestamp":      time.Now(),
	})
}

// PingDatabase is shared with the gRPC health watcher.
func PingDatabase(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func checkDatabase(ctx context.Context, db *gorm.DB) map[string]interface{} {
	if err := PingDatabase(ctx, db); err != nil {
		return map[string]interface{}{
			"status":  "unavailable",
			"message": err.Error(),
		}
	}

	sqlDB, _ := db.DB()
	stats := sqlDB.Stats()
	return map[string]interface{}{
		"status":           "healthy",
		"message":          "Database is responding",
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"wait_count":       stats.WaitCount,
	}
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/core"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/database"
)

// RootMessage is the fixed answer of GET /
const RootMessage = "Receipt Analyzer API is running!"

// healthTimeout bounds the database ping of GET /health
const healthTimeout = 2 * time.Second

// DatabaseChecker reports whether the database is reachable and how its pool is used
type DatabaseChecker interface {
	Ping(ctx context.Context) error
	PoolMetrics() database.ConnectionPoolMetrics
}

// HealthHandler serves the liveness endpoints
type HealthHandler struct {
	db     DatabaseChecker
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db DatabaseChecker, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Root handles GET /. It never touches the database.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: RootMessage})
}

// Health handles GET /health by pinging the database
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "unavailable",
			Database: "down",
		})
		return
	}

	pool := h.db.PoolMetrics()
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		Database: "up",
		Pool: &dto.PoolStats{
			Open:           pool.OpenConnections,
			InUse:          pool.InUse,
			Idle:           pool.IdleConnections,
			MaxOpen:        pool.MaxOpenConnections,
			WaitCount:      pool.WaitCount,
			WaitDurationMs: pool.WaitDuration.Milliseconds(),
		},
	})
}

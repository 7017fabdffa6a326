package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves the liveness check
type HealthController struct {
	db     Pinger
	logger zerolog.Logger
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger, logger zerolog.Logger) *HealthController {
	return &HealthController{db: db, logger: logger}
}

// Health pings the database
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		c.logger.Error().Err(err).Msg("Health check failed")
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

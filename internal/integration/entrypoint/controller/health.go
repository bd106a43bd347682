// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthProbeTimeout = 2 * time.Second

// HealthProbe checks one dependency. A nil error means the dependency is up.
type HealthProbe func(ctx context.Context) error

// HealthController reports liveness of the service and its dependencies.
type HealthController struct {
	database HealthProbe
	cache    HealthProbe
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(database, cache HealthProbe) *HealthController {
	return &HealthController{
		database: database,
		cache:    cache,
	}
}

// Check handles GET /health requests. The endpoint stays 200 even when a
// dependency is down so orchestrators can distinguish "process up" from
// "dependency degraded" via the body.
func (h *HealthController) Check(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Database:  probeStatus(c.Request.Context(), h.database),
		Cache:     probeStatus(c.Request.Context(), h.cache),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func probeStatus(parent context.Context, probe HealthProbe) string {
	if probe == nil {
		return "unconfigured"
	}

	ctx, cancel := context.WithTimeout(parent, healthProbeTimeout)
	defer cancel()

	if err := probe(ctx); err != nil {
		return "down"
	}
	return "up"
}

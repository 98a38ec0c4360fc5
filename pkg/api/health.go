package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// healthHandler handles GET /health: a cheap liveness probe.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// detailedHealthHandler handles GET /health/detailed: database, worker
// pool, and WebSocket connection state.
func (s *Server) detailedHealthHandler(c *gin.Context) {
	report := gin.H{"status": "healthy"}
	status := http.StatusOK

	if s.dbHealth != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		dbReport, err := s.dbHealth(ctx)
		report["database"] = dbReport
		if err != nil {
			report["status"] = "unhealthy"
			status = http.StatusServiceUnavailable
		}
	}

	if s.health != nil {
		poolHealth := s.health.Health()
		report["worker_pool"] = poolHealth
		if poolHealth != nil && !poolHealth.IsHealthy && status == http.StatusOK {
			report["status"] = "degraded"
		}
	}

	if s.connManager != nil {
		report["websocket_connections"] = s.connManager.ActiveConnections()
	}

	report["timestamp"] = time.Now().UTC()
	c.JSON(status, report)
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint and set at build time
var Version = "dev"

const pingTimeout = 2 * time.Second

// HealthHandler serves the unauthenticated health endpoints
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// ReadinessResponse is the body of GET /health/ready
type ReadinessResponse struct {
	Ready     bool              `json:"ready"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

func (h *HealthHandler) ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// schemaReady reports whether migrations have run far enough to serve the
// notification feed, which is the last object created at startup.
func (h *HealthHandler) schemaReady(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	var present bool
	err := h.db.WithContext(ctx).Raw(`SELECT to_regclass('notification_feed') IS NOT NULL`).Scan(&present).Error
	return err == nil && present
}

// Health reports database connectivity
// @Summary Health check
// @Description Reports whether the API can reach its database
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Services:  map[string]string{"database": "up"},
	}
	if err := h.ping(c.Request.Context()); err != nil {
		resp.Status = "unhealthy"
		resp.Services["database"] = "down: " + err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Ready reports whether the instance can take traffic
// @Summary Readiness check
// @Description Database reachable and schema migrated
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	resp := ReadinessResponse{
		Ready:     true,
		Timestamp: time.Now().UTC(),
		Checks:    map[string]string{"database": "ok", "schema": "ok"},
	}
	ctx := c.Request.Context()
	if err := h.ping(ctx); err != nil {
		resp.Ready = false
		resp.Checks["database"] = err.Error()
		resp.Checks["schema"] = "unknown"
	} else if !h.schemaReady(ctx) {
		resp.Ready = false
		resp.Checks["schema"] = "pending migrations"
	}

	status := http.StatusOK
	if !resp.Ready {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}

// Live always answers while the process is serving
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alive": true, "timestamp": time.Now().UTC()})
}

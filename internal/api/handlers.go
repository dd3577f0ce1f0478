package api

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/diethub/backend/internal/middleware"
	"github.com/pageza/diethub/backend/internal/types"
)

const (
	serviceName    = "DietHub API"
	serviceVersion = "1.0.0"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	ping func(ctx context.Context) error
	now  func() time.Time
}

// NewHealthHandler creates a HealthHandler. ping reports whether the database
// is reachable.
func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping, now: time.Now}
}

func (h *HealthHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/health-check", h.HealthCheck)
	router.GET("/ping", h.Ping)
	router.GET("/ready", h.Ready)
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthCheckResponse{
		Status:    "UP",
		Message:   serviceName + " is running",
		Version:   serviceVersion,
		Timestamp: h.now().UnixMilli(),
	})
}

func (h *HealthHandler) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

// Ready fails with 503 while the database is unreachable.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		log.Printf("[HealthHandler] readiness check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN", "error": "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

// parseID reads a positive numeric path parameter, writing a 400 response
// when it is malformed.
func parseID(c *gin.Context, param, what string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + what + " id"})
		return 0, false
	}
	return uint(id), true
}

// internalError logs err and answers with a generic 500.
func internalError(c *gin.Context, err error, msg string) {
	log.Printf("[API] %s %s (request %s): %v", c.Request.Method, c.Request.URL.Path, c.GetString(middleware.RequestIDKey), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

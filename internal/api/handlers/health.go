package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"ai-deploy-dashboard/internal/inference"
)

const pingTimeout = 2 * time.Second

// Pinger checks that a remote inference endpoint is reachable.
type Pinger interface {
	Ping(ctx context.Context, endpoint string) error
}

// ConnectionChecker reports whether the result event connection is up.
type ConnectionChecker interface {
	IsConnected() bool
}

type HealthHandler struct {
	InstanceID string
	Version    string
	pinger     Pinger
	events     ConnectionChecker
}

func NewHealthHandler(instanceID, version string, pinger Pinger, events ConnectionChecker) *HealthHandler {
	return &HealthHandler{InstanceID: instanceID, Version: version, pinger: pinger, events: events}
}

type EndpointHealth struct {
	Name   string `json:"name" example:"detection"`
	Status string `json:"status" example:"up"`
	Error  string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status     string           `json:"status" example:"healthy"`
	InstanceID string           `json:"instance_id" example:"dashboard-1"`
	Endpoints  []EndpointHealth `json:"endpoints"`
	Events     string           `json:"events" example:"disabled"`
}

type ServiceInfoResponse struct {
	InstanceID string            `json:"instance_id" example:"dashboard-1"`
	Status     string            `json:"status" example:"running"`
	Version    string            `json:"version" example:"1.0.0"`
	Pages      []string          `json:"pages"`
	Endpoints  map[string]string `json:"endpoints"`
}

// @Summary Health check
// @Description Check that the dashboard is up and whether the inference endpoints answer
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	names := []string{inference.EndpointDetection, inference.EndpointClassification}
	results := make([]EndpointHealth, len(names))

	var g errgroup.Group
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			results[i] = EndpointHealth{Name: name, Status: "up"}
			if h.pinger == nil {
				results[i].Status = "unknown"
				return nil
			}
			ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
			defer cancel()
			if err := h.pinger.Ping(ctx, name); err != nil {
				results[i].Status = "down"
				results[i].Error = err.Error()
			}
			return nil
		})
	}
	_ = g.Wait()

	status := "healthy"
	for _, r := range results {
		if r.Status != "up" {
			status = "degraded"
		}
	}

	events := "disabled"
	if h.events != nil {
		events = "disconnected"
		if h.events.IsConnected() {
			events = "connected"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:     status,
		InstanceID: h.InstanceID,
		Endpoints:  results,
		Events:     events,
	})
}

// @Summary Service information
// @Description Get basic service information and the available pages
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} ServiceInfoResponse
// @Router / [get]
func (h *HealthHandler) ServiceInfo(c *gin.Context) {
	c.JSON(http.StatusOK, ServiceInfoResponse{
		InstanceID: h.InstanceID,
		Status:     "running",
		Version:    h.Version,
		Pages:      []string{"dashboard", "object-detection", "image-classification"},
		Endpoints: map[string]string{
			"health":         "/health",
			"navigation":     "/api/nav",
			"dashboard":      "/api/dashboard",
			"detection":      "/api/detection",
			"classification": "/api/classification",
			"system":         "/system/stats",
			"docs":           "/docs/index.html",
		},
	})
}

package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"ai-deploy-dashboard/internal/dashboard"
)

// SystemHandler handles system-related endpoints
type SystemHandler struct {
	InstanceID string
	started    time.Time
	stats      dashboard.StatsSource
}

func NewSystemHandler(instanceID string, stats dashboard.StatsSource) *SystemHandler {
	return &SystemHandler{
		InstanceID: instanceID,
		started:    time.Now(),
		stats:      stats,
	}
}

// @Summary Get system stats
// @Description Get process statistics and per-endpoint inference counters
// @Tags system
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /system/stats [get]
func (h *SystemHandler) GetStats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	body := gin.H{
		"instance_id":    h.InstanceID,
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
		"memory_mb":      m.Alloc / 1024 / 1024,
		"cpu_cores":      runtime.NumCPU(),
		"goroutines":     runtime.NumGoroutine(),
		"go_version":     runtime.Version(),
	}
	if h.stats != nil {
		body["inference"] = h.stats.Stats()
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"stats":     body,
		"timestamp": time.Now().Unix(),
	})
}

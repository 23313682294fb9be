package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-deploy-dashboard/internal/config"
	"ai-deploy-dashboard/internal/dashboard"
)

type DashboardHandler struct {
	nav   config.NavManifest
	stats dashboard.StatsSource
}

func NewDashboardHandler(nav config.NavManifest, stats dashboard.StatsSource) *DashboardHandler {
	return &DashboardHandler{nav: nav, stats: stats}
}

// Navigation returns the sidebar with the entry for path marked active
// @Summary Sidebar navigation
// @Description Get the sidebar entries with the one matching path marked active
// @Tags dashboard
// @Produce json
// @Param path query string false "Current page path" default(/)
// @Success 200 {object} dashboard.NavView
// @Router /api/nav [get]
func (h *DashboardHandler) Navigation(c *gin.Context) {
	c.JSON(http.StatusOK, dashboard.Navigation(h.nav, c.DefaultQuery("path", "/")))
}

// @Summary Dashboard overview
// @Description Get the stat cards and the deployed model cards
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.Overview
// @Router /api/dashboard [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, dashboard.BuildOverview(h.stats))
}

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"ai-deploy-dashboard/internal/api/handlers"
	"ai-deploy-dashboard/internal/api/middleware"
	"ai-deploy-dashboard/internal/config"
	"ai-deploy-dashboard/internal/services"
)

const readHeaderTimeout = 10 * time.Second

type Server struct {
	config *config.Config
	router *gin.Engine
	server *http.Server

	healthHandler         *handlers.HealthHandler
	systemHandler         *handlers.SystemHandler
	dashboardHandler      *handlers.DashboardHandler
	detectionHandler      *handlers.DetectionHandler
	classificationHandler *handlers.ClassificationHandler
}

func NewServer(cfg *config.Config, sc *services.ServiceContainer) (*Server, error) {
	if sc == nil {
		return nil, errors.New("service container is required")
	}
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	// Keep the health handler's checker nil rather than a nil *messaging.Service.
	var events handlers.ConnectionChecker
	if sc.Messaging != nil {
		events = sc.Messaging
	}

	s := &Server{
		config:                cfg,
		router:                router,
		healthHandler:         handlers.NewHealthHandler(cfg.InstanceID, cfg.Version, sc.Inference, events),
		systemHandler:         handlers.NewSystemHandler(cfg.InstanceID, sc.Inference),
		dashboardHandler:      handlers.NewDashboardHandler(sc.Nav, sc.Inference),
		detectionHandler:      handlers.NewDetectionHandler(sc.Detection, sc.Overlay, sc.Frames, services.DetectionStream, sc.Limits),
		classificationHandler: handlers.NewClassificationHandler(sc.Classification, sc.Limits),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupSwagger()

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	// Open MJPEG viewers hold their request until the publisher releases them.
	s.server.RegisterOnShutdown(sc.Frames.Shutdown)
	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recovery())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.RequestContext())
	s.router.Use(middleware.Logger())
	s.router.Use(middleware.CORS())
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	log.Info().Int("port", s.config.Port).Msg("Starting AI Deploy dashboard API")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Stopping AI Deploy dashboard API")
	return s.server.Shutdown(ctx)
}

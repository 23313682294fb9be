package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"ai-deploy-dashboard/docs"
	"ai-deploy-dashboard/internal/api"
	"ai-deploy-dashboard/internal/api/grpchealth"
	"ai-deploy-dashboard/internal/config"
	"ai-deploy-dashboard/internal/dashboard"
	"ai-deploy-dashboard/internal/logging"
	"ai-deploy-dashboard/internal/overlay"
	"ai-deploy-dashboard/internal/overlay/cvsurface"
	"ai-deploy-dashboard/internal/services"
)

// @title AI Deploy Dashboard API
// @version 1.0.0
// @description Upload images, run remote detection and classification models and view the annotated results
// @BasePath /
func main() {
	zerolog.TimeFieldFormat = time.RFC3339

	// Load configuration
	cfg := config.Load()
	logging.Setup(cfg)

	log.Info().
		Str("instance_id", cfg.InstanceID).
		Str("version", cfg.Version).
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Str("detection_url", cfg.DetectionURL).
		Str("classification_url", cfg.ClassificationURL).
		Str("overlay_backend", cfg.OverlayBackend).
		Bool("nats_enabled", cfg.NatsEnabled).
		Msg("Starting AI Deploy dashboard")

	docs.SwaggerInfo.Host = cfg.SwaggerHost
	docs.SwaggerInfo.Version = cfg.Version

	surface, closeSurface := newSurface(cfg)
	defer closeSurface()

	container, err := services.NewServiceContainer(cfg, surface)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create services")
	}

	server, err := api.NewServer(cfg, container)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create server")
	}

	var healthSrv *grpchealth.Server
	if cfg.GRPCPort > 0 {
		healthSrv = grpchealth.New(cfg.GRPCPort)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	if healthSrv != nil {
		g.Go(healthSrv.ListenAndServe)
	}

	// Shut everything down on a signal or when either server fails.
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if healthSrv != nil {
			if err := healthSrv.Shutdown(shutdownCtx); err != nil {
				log.Warn().Err(err).Msg("gRPC health service forced to stop")
			}
		}
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
		}
		return container.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Dashboard stopped with error")
		closeSurface()
		os.Exit(1)
	}
	log.Info().Msg("Server shutdown complete")
}

// newSurface picks the overlay backend. The returned func releases it.
func newSurface(cfg *config.Config) (dashboard.RasterSurface, func()) {
	if cfg.OverlayBackend == config.BackendRaster {
		return overlay.NewRaster(0, 0), func() {}
	}

	mat := cvsurface.New()
	return mat, func() {
		if err := mat.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to release overlay matrix")
		}
	}
}

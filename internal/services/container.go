package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"ai-deploy-dashboard/internal/config"
	"ai-deploy-dashboard/internal/dashboard"
	"ai-deploy-dashboard/internal/inference"
	"ai-deploy-dashboard/internal/logging"
	"ai-deploy-dashboard/internal/models"
	"ai-deploy-dashboard/internal/preview"
	"ai-deploy-dashboard/internal/services/messaging"
	"ai-deploy-dashboard/internal/services/publisher/mjpeg"
)

// DetectionStream is the MJPEG stream name of the detection page.
const DetectionStream = models.ResultKindDetection

// ServiceContainer holds all services
type ServiceContainer struct {
	Config         *config.Config
	Nav            config.NavManifest
	Limits         preview.Limits
	Inference      *inference.Client
	Messaging      *messaging.Service // nil when NATS is disabled or unreachable
	Frames         *mjpeg.Publisher
	Detection      *dashboard.DetectionPage
	Classification *dashboard.ClassificationPage
	Overlay        *dashboard.OverlayView
}

// NewServiceContainer wires the pages to the inference client and draws the
// detection overlay on surface.
func NewServiceContainer(cfg *config.Config, surface dashboard.RasterSurface) (*ServiceContainer, error) {
	if surface == nil {
		return nil, fmt.Errorf("overlay surface is required")
	}

	nav := config.DefaultNav()
	if cfg.NavFile != "" {
		loaded, err := config.LoadNav(cfg.NavFile)
		if err != nil {
			return nil, err
		}
		nav = loaded
	}

	opts := inference.OptionsFromConfig(cfg)
	inferenceLogger := logging.NewServiceLogger(cfg, "inference")
	opts.Logger = &inferenceLogger

	sc := &ServiceContainer{
		Config:    cfg,
		Nav:       nav,
		Limits:    LimitsFromConfig(cfg),
		Inference: inference.NewClient(opts),
		Frames:    mjpeg.NewPublisher(),
	}

	// A nil *messaging.Service must not end up inside the interface.
	var results dashboard.ResultPublisher
	if cfg.NatsEnabled {
		msg, err := messaging.NewService(cfg)
		if err != nil {
			log.Warn().Err(err).Str("url", cfg.NatsURL).Msg("NATS unavailable, result events disabled")
		} else {
			sc.Messaging = msg
			results = msg
		}
	}

	pages := logging.NewServiceLogger(cfg, "dashboard")
	sc.Detection = dashboard.NewDetectionPage(sc.Inference, results, pages)
	sc.Classification = dashboard.NewClassificationPage(sc.Inference, results, pages)
	sc.Overlay = dashboard.NewOverlayView(surface, sc.Frames, DetectionStream, cfg.PreviewQuality)
	sc.Overlay.Attach(sc.Detection)

	return sc, nil
}

// LimitsFromConfig maps upload and preview settings onto decode limits.
func LimitsFromConfig(cfg *config.Config) preview.Limits {
	return preview.Limits{
		MaxBytes:  cfg.MaxUploadBytes,
		MaxWidth:  cfg.PreviewMaxWidth,
		MaxHeight: cfg.PreviewMaxHeight,
		Quality:   cfg.PreviewQuality,
	}
}

// Shutdown gracefully shuts down all services
func (sc *ServiceContainer) Shutdown(ctx context.Context) error {
	if sc.Frames != nil {
		sc.Frames.Shutdown()
	}

	if sc.Messaging != nil {
		if err := sc.Messaging.Shutdown(ctx); err != nil {
			return err
		}
	}

	return nil
}

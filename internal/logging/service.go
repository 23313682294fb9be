package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ai-deploy-dashboard/internal/config"
)

func NewServiceLogger(cfg *config.Config, service string) zerolog.Logger {
	return log.With().Str("instance_id", cfg.InstanceID).Str("service", service).Logger()
}

func WithFile(base zerolog.Logger, fileName string) zerolog.Logger {
	return base.With().Str("file_name", fileName).Logger()
}

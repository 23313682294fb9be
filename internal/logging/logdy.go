package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/logdyhq/logdy-core/logdy"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ai-deploy-dashboard/internal/config"
)

type logdyWriter struct {
	logger logdy.Logdy
}

func (w *logdyWriter) Write(p []byte) (n int, err error) {
	w.logger.LogString(string(p))
	return len(p), nil
}

// StartLogdy starts the embedded Logdy web UI and returns a writer feeding it, plus the UI URL.
func StartLogdy(cfg *config.Config) (io.Writer, string) {
	portStr := strconv.Itoa(cfg.LogdyPort)
	ld := logdy.InitializeLogdy(logdy.Config{
		ServerIp:   cfg.LogdyHost,
		ServerPort: portStr,
	}, nil)

	return &logdyWriter{logger: ld}, fmt.Sprintf("http://%s:%s", cfg.LogdyHost, portStr)
}

// Setup points the global logger at the console and, when enabled, tees raw
// JSON lines into Logdy. It also applies the configured level.
func Setup(cfg *config.Config) {
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}

	var logdyURL string
	if cfg.LogdyEnabled {
		var w io.Writer
		w, logdyURL = StartLogdy(cfg)
		out = zerolog.MultiLevelWriter(out, w)
	}
	log.Logger = log.Output(out)

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("Invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if logdyURL != "" {
		log.Info().Str("url", logdyURL).Msg("Logdy UI available")
	}
}

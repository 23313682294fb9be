package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// Application
	Version     string
	Environment string
	InstanceID  string
	Port        int
	LogLevel    string

	// Logdy (lightweight web log viewer)
	LogdyEnabled bool
	LogdyHost    string
	LogdyPort    int

	// Remote inference endpoints
	DetectionURL      string
	ClassificationURL string
	InferenceEncoding string // "multipart" (FastAPI containers) or "raw" (SageMaker)
	InferenceTimeout  time.Duration

	// NATS (optional result events)
	// Default: nats://localhost:4222 (works with Docker Compose setup)
	NatsEnabled          bool
	NatsURL              string
	NatsConnectTimeout   time.Duration
	NatsReconnectWait    time.Duration
	NatsMaxReconnects    int
	NatsDrainTimeout     time.Duration
	ResultsSubjectPrefix string

	// Uploads and preview
	MaxUploadBytes   int64
	PreviewMaxWidth  int
	PreviewMaxHeight int
	PreviewQuality   int // JPEG quality (1-100)

	// Overlay
	OverlayBackend string // "opencv" or "raster"

	// Navigation manifest (YAML), optional
	NavFile string

	// gRPC health service, 0 disables it
	GRPCPort int

	// Swagger Configuration
	SwaggerHost string

	// Graceful Shutdown
	ShutdownTimeout time.Duration
}

const (
	EncodingMultipart = "multipart"
	EncodingRaw       = "raw"

	BackendOpenCV = "opencv"
	BackendRaster = "raster"
)

func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file found or error loading .env file, using environment variables and defaults")
	} else {
		log.Info().Msg("Loaded configuration from .env file")
	}

	return &Config{
		// Application
		Version:     getEnv("VERSION", "1.0.0"),
		Environment: getEnv("ENVIRONMENT", "development"),
		InstanceID:  getEnv("INSTANCE_ID", "dashboard-1"),
		Port:        getEnvInt("PORT", 8000),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// Logdy (lightweight web log viewer)
		LogdyEnabled: getEnvBool("LOGDY_ENABLED", false),
		LogdyHost:    getEnv("LOGDY_HOST", "localhost"),
		LogdyPort:    getEnvInt("LOGDY_PORT", 8080),

		// Remote inference endpoints
		DetectionURL:      getEnv("DETECTION_URL", "http://localhost:8001/detect"),
		ClassificationURL: getEnv("CLASSIFICATION_URL", "http://localhost:8002/predict"),
		InferenceEncoding: getEnvChoice("INFERENCE_ENCODING", EncodingMultipart, EncodingMultipart, EncodingRaw),
		InferenceTimeout:  getEnvDuration("INFERENCE_TIMEOUT", 30*time.Second),

		// NATS (configured for Docker Compose setup)
		NatsEnabled:          getEnvBool("NATS_ENABLED", false),
		NatsURL:              getNatsURL(),
		NatsConnectTimeout:   getEnvDuration("NATS_CONNECT_TIMEOUT", 10*time.Second),
		NatsReconnectWait:    getEnvDuration("NATS_RECONNECT_WAIT", 2*time.Second),
		NatsMaxReconnects:    getEnvInt("NATS_MAX_RECONNECTS", -1), // -1 = unlimited
		NatsDrainTimeout:     getEnvDuration("NATS_DRAIN_TIMEOUT", 5*time.Second),
		ResultsSubjectPrefix: getEnv("RESULTS_SUBJECT_PREFIX", "ai-deploy.results"),

		// Uploads and preview
		MaxUploadBytes:   int64(getEnvInt("MAX_UPLOAD_BYTES", 10*1024*1024)), // 10MB
		PreviewMaxWidth:  getEnvInt("PREVIEW_MAX_WIDTH", 800),
		PreviewMaxHeight: getEnvInt("PREVIEW_MAX_HEIGHT", 600),
		PreviewQuality:   getEnvInt("PREVIEW_QUALITY", 90),

		// Overlay
		OverlayBackend: getEnvChoice("OVERLAY_BACKEND", BackendOpenCV, BackendOpenCV, BackendRaster),

		NavFile: getEnv("NAV_FILE", ""),

		GRPCPort: getEnvInt("GRPC_PORT", 9090),

		// Swagger Configuration
		SwaggerHost: getEnv("SWAGGER_HOST", "localhost:8000"),

		// Graceful Shutdown
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvChoice returns the lower-cased value of key if it is one of allowed.
func getEnvChoice(key, defaultValue string, allowed ...string) string {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return defaultValue
	}
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	log.Warn().Str("key", key).Str("value", value).Str("default", defaultValue).Msg("Unsupported value, using default")
	return defaultValue
}

// Helper functions for Docker environment detection
func isRunningInDocker() bool {
	if os.Getenv("DOCKER_CONTAINER") == "true" {
		return true
	}

	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	return false
}

// getNatsURL returns the appropriate NATS URL based on environment
func getNatsURL() string {
	if envURL := os.Getenv("NATS_URL"); envURL != "" {
		return envURL
	}

	if isRunningInDocker() {
		return "nats://nats:4222"
	}

	return "nats://localhost:4222"
}

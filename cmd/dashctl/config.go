package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ai-deploy-dashboard/internal/config"
	"ai-deploy-dashboard/internal/inference"
)

const (
	appName        = "ai-deploy"
	configFileName = "config.yaml"

	defaultDetectURL   = "http://localhost:8001/detect"
	defaultClassifyURL = "http://localhost:8002/predict"
	defaultTimeout     = 30 * time.Second
)

// ErrConfigNotFound is returned when an explicitly given config file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// fileConfig is the YAML layout of the CLI configuration file.
type fileConfig struct {
	DetectionURL      string        `yaml:"detection_url"`
	ClassificationURL string        `yaml:"classification_url"`
	Encoding          string        `yaml:"encoding"`
	Timeout           time.Duration `yaml:"timeout"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		DetectionURL:      defaultDetectURL,
		ClassificationURL: defaultClassifyURL,
		Encoding:          config.EncodingMultipart,
		Timeout:           defaultTimeout,
	}
}

// defaultConfigPath returns $XDG_CONFIG_HOME/ai-deploy/config.yaml.
func defaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configFileName)
}

// loadFileConfig reads path over the defaults. A missing file at the default
// location is not an error; a missing explicit path is.
func loadFileConfig(path string, explicit bool) (fileConfig, error) {
	cfg := defaultFileConfig()

	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	if cfg.Encoding != config.EncodingMultipart && cfg.Encoding != config.EncodingRaw {
		return cfg, fmt.Errorf("invalid encoding %q in %s", cfg.Encoding, path)
	}
	return cfg, nil
}

// clientOptions resolves endpoint settings: flags, then config file, then defaults.
func clientOptions(cmd *cobra.Command) (inference.Options, error) {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}

	cfg, err := loadFileConfig(path, explicit)
	if err != nil {
		return inference.Options{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("detect-url") {
		cfg.DetectionURL, _ = flags.GetString("detect-url")
	}
	if flags.Changed("classify-url") {
		cfg.ClassificationURL, _ = flags.GetString("classify-url")
	}
	if flags.Changed("encoding") {
		cfg.Encoding, _ = flags.GetString("encoding")
		if cfg.Encoding != config.EncodingMultipart && cfg.Encoding != config.EncodingRaw {
			return inference.Options{}, fmt.Errorf("invalid --encoding %q: want multipart or raw", cfg.Encoding)
		}
	}
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetDuration("timeout")
	}

	return inference.Options{
		DetectURL:   cfg.DetectionURL,
		ClassifyURL: cfg.ClassificationURL,
		Encoding:    cfg.Encoding,
		Timeout:     cfg.Timeout,
	}, nil
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DETECTION_URL", "INFERENCE_ENCODING", "OVERLAY_BACKEND", "MAX_UPLOAD_BYTES", "INFERENCE_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.Port)
	}
	if cfg.InferenceEncoding != EncodingMultipart {
		t.Errorf("expected %q encoding, got %q", EncodingMultipart, cfg.InferenceEncoding)
	}
	if cfg.OverlayBackend != BackendOpenCV {
		t.Errorf("expected %q backend, got %q", BackendOpenCV, cfg.OverlayBackend)
	}
	if cfg.MaxUploadBytes != 10*1024*1024 {
		t.Errorf("expected 10MB upload limit, got %d", cfg.MaxUploadBytes)
	}
	if cfg.InferenceTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.InferenceTimeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("DETECTION_URL", "http://yolo:8000/detect")
	t.Setenv("INFERENCE_ENCODING", "RAW")
	t.Setenv("OVERLAY_BACKEND", "raster")
	t.Setenv("INFERENCE_TIMEOUT", "5s")
	t.Setenv("NATS_ENABLED", "true")

	cfg := Load()

	if cfg.Port != 9001 {
		t.Errorf("expected port 9001, got %d", cfg.Port)
	}
	if cfg.DetectionURL != "http://yolo:8000/detect" {
		t.Errorf("unexpected detection URL %q", cfg.DetectionURL)
	}
	if cfg.InferenceEncoding != EncodingRaw {
		t.Errorf("expected raw encoding, got %q", cfg.InferenceEncoding)
	}
	if cfg.OverlayBackend != BackendRaster {
		t.Errorf("expected raster backend, got %q", cfg.OverlayBackend)
	}
	if cfg.InferenceTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.InferenceTimeout)
	}
	if !cfg.NatsEnabled {
		t.Error("expected NATS to be enabled")
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("OVERLAY_BACKEND", "webgl")
	t.Setenv("LOGDY_ENABLED", "maybe")

	cfg := Load()

	if cfg.Port != 8000 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
	if cfg.OverlayBackend != BackendOpenCV {
		t.Errorf("expected default backend, got %q", cfg.OverlayBackend)
	}
	if cfg.LogdyEnabled {
		t.Error("expected logdy to stay disabled")
	}
}

func TestLoadNav(t *testing.T) {
	t.Parallel()

	t.Run("empty path returns defaults", func(t *testing.T) {
		t.Parallel()
		m, err := LoadNav("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Brand != "AI Deploy" || len(m.Items) != 3 {
			t.Errorf("unexpected default manifest %+v", m)
		}
		if m.Items[1].Path != "/object-detection" {
			t.Errorf("expected object detection second, got %q", m.Items[1].Path)
		}
	})

	t.Run("reads yaml file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nav.yaml")
		content := "brand: Vision Lab\nitems:\n  - title: Home\n    path: /\n  - title: Detect\n    path: /detect\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		m, err := LoadNav(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Brand != "Vision Lab" || len(m.Items) != 2 || m.Items[1].Title != "Detect" {
			t.Errorf("unexpected manifest %+v", m)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadNav(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestParseNavValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{name: "no items", yaml: "brand: x\n"},
		{name: "relative path", yaml: "items:\n  - title: A\n    path: a\n"},
		{name: "missing title", yaml: "items:\n  - path: /a\n"},
		{name: "duplicate path", yaml: "items:\n  - title: A\n    path: /a\n  - title: B\n    path: /a\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseNav([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidNav) {
				t.Errorf("expected ErrInvalidNav, got %v", err)
			}
		})
	}

	if _, err := ParseNav([]byte(":\n\t- bad")); err == nil || errors.Is(err, ErrInvalidNav) {
		t.Errorf("expected a parse error, got %v", err)
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// NavItem is one entry of the dashboard sidebar.
type NavItem struct {
	Title string `yaml:"title" json:"title"`
	Path  string `yaml:"path" json:"path"`
	Icon  string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// NavManifest is the YAML document read from NAV_FILE.
type NavManifest struct {
	Brand string    `yaml:"brand"`
	Items []NavItem `yaml:"items"`
}

// DefaultNav is used when no manifest is configured.
func DefaultNav() NavManifest {
	return NavManifest{
		Brand: "AI Deploy",
		Items: []NavItem{
			{Title: "Dashboard", Path: "/", Icon: "home"},
			{Title: "Object Detection", Path: "/object-detection", Icon: "scan"},
			{Title: "Image Classification", Path: "/image-classification", Icon: "image"},
		},
	}
}

var ErrInvalidNav = errors.New("invalid navigation manifest")

// LoadNav reads the manifest at path. An empty path yields DefaultNav.
func LoadNav(path string) (NavManifest, error) {
	if path == "" {
		return DefaultNav(), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return NavManifest{}, fmt.Errorf("failed to read nav file: %w", err)
	}
	return ParseNav(data)
}

// ParseNav decodes a YAML manifest and validates its items.
func ParseNav(data []byte) (NavManifest, error) {
	var m NavManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return NavManifest{}, fmt.Errorf("failed to parse nav file: %w", err)
	}
	if m.Brand == "" {
		m.Brand = DefaultNav().Brand
	}
	if len(m.Items) == 0 {
		return NavManifest{}, fmt.Errorf("%w: no items", ErrInvalidNav)
	}
	seen := make(map[string]bool, len(m.Items))
	for i, item := range m.Items {
		if strings.TrimSpace(item.Title) == "" {
			return NavManifest{}, fmt.Errorf("%w: item %d has no title", ErrInvalidNav, i)
		}
		if !strings.HasPrefix(item.Path, "/") {
			return NavManifest{}, fmt.Errorf("%w: item %q path must start with /", ErrInvalidNav, item.Title)
		}
		if seen[item.Path] {
			return NavManifest{}, fmt.Errorf("%w: duplicate path %q", ErrInvalidNav, item.Path)
		}
		seen[item.Path] = true
	}
	return m, nil
}

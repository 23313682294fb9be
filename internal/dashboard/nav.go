package dashboard

import (
	"strings"

	"ai-deploy-dashboard/internal/config"
)

type NavEntry struct {
	Title  string `json:"title"`
	Path   string `json:"path"`
	Icon   string `json:"icon,omitempty"`
	Active bool   `json:"active"`
}

type NavView struct {
	Brand string     `json:"brand"`
	Items []NavEntry `json:"items"`
}

// Navigation marks the sidebar entry matching path as active. The root entry
// matches only "/" itself; other entries also match their sub-paths.
func Navigation(m config.NavManifest, path string) NavView {
	if path == "" {
		path = "/"
	}
	view := NavView{Brand: m.Brand, Items: make([]NavEntry, 0, len(m.Items))}
	for _, item := range m.Items {
		view.Items = append(view.Items, NavEntry{
			Title:  item.Title,
			Path:   item.Path,
			Icon:   item.Icon,
			Active: navMatches(item.Path, path),
		})
	}
	return view
}

func navMatches(itemPath, path string) bool {
	if itemPath == "/" {
		return path == "/"
	}
	return path == itemPath || strings.HasPrefix(path, strings.TrimSuffix(itemPath, "/")+"/")
}

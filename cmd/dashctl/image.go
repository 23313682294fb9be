package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"

	"ai-deploy-dashboard/internal/inference"
	"ai-deploy-dashboard/internal/models"
	"ai-deploy-dashboard/internal/overlay"
	"ai-deploy-dashboard/internal/preview"
)

const (
	maxImageBytes = 50 * 1024 * 1024
	outputQuality = 90
)

// parseSize parses a WxH display size such as "640x480".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q: want WIDTHxHEIGHT", s)
	}
	w, werr := strconv.Atoi(ws)
	h, herr := strconv.Atoi(hs)
	if werr != nil || herr != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: want positive WIDTHxHEIGHT", s)
	}
	return w, h, nil
}

// loadImage reads and decodes path. The display size defaults to the natural
// size unless display is set.
func loadImage(path, display string) (inference.Upload, *preview.Preview, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided image path is intentional
	if err != nil {
		return inference.Upload{}, nil, err
	}

	name := filepath.Base(path)
	pv, err := preview.Decode(name, data, preview.Limits{MaxBytes: maxImageBytes, Quality: outputQuality})
	if err != nil {
		return inference.Upload{}, nil, fmt.Errorf("%s: %w", path, err)
	}

	if display != "" {
		w, h, err := parseSize(display)
		if err != nil {
			return inference.Upload{}, nil, err
		}
		if err := pv.Resize(w, h); err != nil {
			return inference.Upload{}, nil, err
		}
	}

	return inference.Upload{FileName: name, ContentType: pv.ContentType, Data: data}, pv, nil
}

// annotate draws dets over the preview at its display size.
func annotate(pv *preview.Preview, dets []models.Detection) (image.Image, []overlay.Command) {
	surface := overlay.NewRaster(0, 0)
	cmds := overlay.Render(surface, dets, pv.Geometry())
	return pv.Annotated(surface.Image()), cmds
}

// saveImage writes img in the format implied by the file extension.
func saveImage(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(outputQuality)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Package preview turns an uploaded image into what the dashboard shows: the
// oriented image at its display size, a data URL for the <img> element and
// the natural/display geometry the overlay is scaled by.
package preview

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/http"

	"github.com/disintegration/imaging"

	"ai-deploy-dashboard/internal/models"
)

var (
	ErrEmptyImage       = errors.New("no image data")
	ErrTooLarge         = errors.New("image exceeds upload limit")
	ErrUnsupportedImage = errors.New("unsupported image format")
)

const dataURLPrefix = "data:image/jpeg;base64,"

// Limits bounds what Decode accepts and how large the preview is laid out.
type Limits struct {
	MaxBytes  int64
	MaxWidth  int
	MaxHeight int
	Quality   int
}

// Preview is a decoded upload together with its display rendition.
type Preview struct {
	FileName    string
	ContentType string
	Data        []byte

	Original image.Image
	Display  *image.NRGBA
	DataURL  string
	Exif     *ExifInfo

	geometry models.DisplayGeometry
	quality  int
}

// Decode validates and decodes an upload. EXIF orientation is applied so the
// natural size matches what a browser reports for the same file.
func Decode(fileName string, data []byte, limits Limits) (*Preview, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if limits.MaxBytes > 0 && int64(len(data)) > limits.MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes > %d", ErrTooLarge, len(data), limits.MaxBytes)
	}

	contentType := http.DetectContentType(data)
	if contentType != "image/jpeg" && contentType != "image/png" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, contentType)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	b := img.Bounds()
	p := &Preview{
		FileName:    fileName,
		ContentType: contentType,
		Data:        data,
		Original:    img,
		Exif:        ReadExif(data),
		quality:     limits.Quality,
		geometry: models.DisplayGeometry{
			NaturalWidth:  b.Dx(),
			NaturalHeight: b.Dy(),
		},
	}

	w, h := FitSize(b.Dx(), b.Dy(), limits.MaxWidth, limits.MaxHeight)
	if err := p.Resize(w, h); err != nil {
		return nil, err
	}
	return p, nil
}

// Geometry returns the natural and current display size.
func (p *Preview) Geometry() models.DisplayGeometry {
	return p.geometry
}

// Resize lays the preview out at a new display size and refreshes the data URL.
func (p *Preview) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid display size %dx%d", width, height)
	}

	if width == p.geometry.NaturalWidth && height == p.geometry.NaturalHeight {
		p.Display = imaging.Clone(p.Original)
	} else {
		p.Display = imaging.Resize(p.Original, width, height, imaging.Lanczos)
	}

	jpegBytes, err := EncodeJPEG(p.Display, p.quality)
	if err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	p.DataURL = dataURLPrefix + base64.StdEncoding.EncodeToString(jpegBytes)
	p.geometry = p.geometry.WithDisplay(width, height)
	return nil
}

// FitSize scales natural dimensions down to fit within maxW x maxH while
// keeping the aspect ratio. Images are never upscaled and a non-positive
// bound leaves that axis unconstrained.
func FitSize(naturalW, naturalH, maxW, maxH int) (int, int) {
	if naturalW <= 0 || naturalH <= 0 {
		return 0, 0
	}
	scale := 1.0
	if maxW > 0 && naturalW > maxW {
		scale = float64(maxW) / float64(naturalW)
	}
	if maxH > 0 && float64(naturalH)*scale > float64(maxH) {
		scale = float64(maxH) / float64(naturalH)
	}
	if scale == 1.0 {
		return naturalW, naturalH
	}
	return max(1, int(float64(naturalW)*scale+0.5)), max(1, int(float64(naturalH)*scale+0.5))
}

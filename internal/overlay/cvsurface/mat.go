// Package cvsurface implements overlay.Surface on an OpenCV matrix.
package cvsurface

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/rs/zerolog/log"
	"gocv.io/x/gocv"

	"ai-deploy-dashboard/internal/overlay"
)

const (
	fontFace  = gocv.FontHersheySimplex
	fontScale = 0.6
	// Thickness 2 renders Hershey glyphs as bold.
	fontThickness = 2
)

// MatSurface draws onto a 4-channel BGRA Mat with a transparent background.
// It must be closed to release the native matrix.
type MatSurface struct {
	mu  sync.Mutex
	mat gocv.Mat
}

func New() *MatSurface {
	return &MatSurface{mat: gocv.NewMat()}
}

func (m *MatSurface) Resize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mat.Close()
	if width <= 0 || height <= 0 {
		m.mat = gocv.NewMat()
		return
	}
	m.mat = gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC4)
}

func (m *MatSurface) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.mat.Empty() {
		return
	}
	m.mat.SetTo(gocv.NewScalar(0, 0, 0, 0))
}

func (m *MatSurface) StrokeRect(r overlay.Rect, c color.RGBA, lineWidth float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.mat.Empty() {
		return
	}
	gocv.Rectangle(&m.mat, toRect(r), c, max(1, int(math.Round(lineWidth))))
}

func (m *MatSurface) FillRect(r overlay.Rect, c color.RGBA) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.mat.Empty() {
		return
	}
	gocv.Rectangle(&m.mat, toRect(r), c, -1)
}

func (m *MatSurface) MeasureText(text string) float64 {
	if text == "" {
		return 0
	}
	return float64(gocv.GetTextSize(text, fontFace, fontScale, fontThickness).X)
}

func (m *MatSurface) FillText(text string, x, y float64, c color.RGBA) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.mat.Empty() || text == "" {
		return
	}
	pt := image.Pt(int(math.Round(x)), int(math.Round(y)))
	gocv.PutText(&m.mat, text, pt, fontFace, fontScale, c, fontThickness)
}

// Image converts the matrix to an RGBA image.
func (m *MatSurface) Image() image.Image {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.mat.Empty() {
		return image.NewRGBA(image.Rectangle{})
	}
	img, err := m.mat.ToImage()
	if err != nil {
		log.Error().Err(err).Msg("Failed to convert overlay mat to image")
		return image.NewRGBA(image.Rect(0, 0, m.mat.Cols(), m.mat.Rows()))
	}
	return img
}

// EncodePNG encodes the overlay with its alpha channel.
func (m *MatSurface) EncodePNG() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf, err := gocv.IMEncode(gocv.PNGFileExt, m.mat)
	if err != nil {
		return nil, err
	}
	defer buf.Close()

	b := buf.GetBytes()
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (m *MatSurface) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mat.Close()
}

func toRect(r overlay.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)), int(math.Round(r.Y)),
		int(math.Round(r.X+r.W)), int(math.Round(r.Y+r.H)),
	)
}

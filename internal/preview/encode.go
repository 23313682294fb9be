package preview

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// EncodeJPEG encodes img as JPEG. Quality outside 1..100 falls back to 90.
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	if quality < 1 || quality > 100 {
		quality = 90
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodePNG encodes img as PNG, keeping transparency.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Composite draws a transparent overlay on top of the display image. The
// overlay is expected to match the display size; anything beyond it is cut.
func Composite(base image.Image, overlay image.Image) *image.NRGBA {
	return imaging.Overlay(base, overlay, image.Pt(0, 0), 1.0)
}

// Annotated returns the preview's display image with overlay drawn on it.
func (p *Preview) Annotated(overlay image.Image) *image.NRGBA {
	return Composite(p.Display, overlay)
}

package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelFace is the bitmap face used by the pure-Go surfaces. Bold is emulated
// by drawing every glyph a second time one pixel to the right.
var labelFace font.Face = basicfont.Face7x13

const boldOffset = 1

// measureLabel returns the advance width of text in the bold label face.
func measureLabel(text string) float64 {
	if text == "" {
		return 0
	}
	return fixedToFloat(font.MeasureString(labelFace, text)) + boldOffset
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

func floatToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }

// Raster is a Surface backed by a transparent *image.RGBA. Drawing outside the
// image bounds is clipped.
type Raster struct {
	img *image.RGBA
}

// NewRaster returns a raster surface of the given size.
func NewRaster(width, height int) *Raster {
	r := &Raster{}
	r.Resize(width, height)
	return r
}

func (r *Raster) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	r.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (r *Raster) Clear() {
	if r.img == nil {
		return
	}
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// StrokeRect strokes the outline of rect centred on its edges, like a canvas
// strokeRect with the given line width.
func (r *Raster) StrokeRect(rect Rect, c color.RGBA, lineWidth float64) {
	if r.img == nil {
		return
	}
	x0, y0, x1, y1 := normalize(rect)
	half := lineWidth / 2

	outer := pixelRect(x0-half, y0-half, x1+half, y1+half)
	src := image.NewUniform(c)

	// Degenerate boxes thinner than the line collapse into a filled rectangle.
	if x1-x0 <= lineWidth || y1-y0 <= lineWidth {
		draw.Draw(r.img, outer, src, image.Point{}, draw.Over)
		return
	}

	inner := pixelRect(x0+half, y0+half, x1-half, y1-half)
	bands := []image.Rectangle{
		image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, inner.Min.Y),
		image.Rect(outer.Min.X, inner.Max.Y, outer.Max.X, outer.Max.Y),
		image.Rect(outer.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y),
		image.Rect(inner.Max.X, inner.Min.Y, outer.Max.X, inner.Max.Y),
	}
	for _, b := range bands {
		if b.Empty() {
			continue
		}
		draw.Draw(r.img, b, src, image.Point{}, draw.Over)
	}
}

func (r *Raster) FillRect(rect Rect, c color.RGBA) {
	if r.img == nil {
		return
	}
	x0, y0, x1, y1 := normalize(rect)
	draw.Draw(r.img, pixelRect(x0, y0, x1, y1), image.NewUniform(c), image.Point{}, draw.Over)
}

func (r *Raster) MeasureText(text string) float64 {
	return measureLabel(text)
}

func (r *Raster) FillText(text string, x, y float64, c color.RGBA) {
	if r.img == nil || text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: labelFace,
	}
	for dx := 0; dx <= boldOffset; dx++ {
		d.Dot = fixed.Point26_6{X: floatToFixed(x + float64(dx)), Y: floatToFixed(y)}
		d.DrawString(text)
	}
}

// Image returns the current raster. The returned image is replaced on Resize.
func (r *Raster) Image() image.Image {
	if r.img == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	return r.img
}

func normalize(rect Rect) (x0, y0, x1, y1 float64) {
	x0, x1 = rect.X, rect.X+rect.W
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	y0, y1 = rect.Y, rect.Y+rect.H
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return x0, y0, x1, y1
}

func pixelRect(x0, y0, x1, y1 float64) image.Rectangle {
	return image.Rect(
		int(math.Round(x0)), int(math.Round(y0)),
		int(math.Round(x1)), int(math.Round(y1)),
	)
}

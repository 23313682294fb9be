// Package overlay draws labelled bounding boxes for a detection result onto a
// surface sized to the displayed image.
//
// Boxes arrive in natural-image pixel coordinates. Every call resizes the
// surface to the display size, clears it and redraws the whole list, so no
// state survives between calls.
package overlay

import (
	"image/color"

	"ai-deploy-dashboard/internal/models"
)

const (
	StrokeWidth = 3

	LabelHeight  = 24
	LabelPadding = 10

	// TextInset is the horizontal offset of the label text from the box edge.
	TextInset = 5
	// TextBaseline is the distance from the box top edge up to the text baseline.
	TextBaseline = 7
)

// Rect is a rectangle in surface coordinates. W and H may be negative.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Surface is a 2D drawing target with canvas-like operations.
type Surface interface {
	// Resize sets the pixel size of the surface and discards its content.
	Resize(width, height int)
	Clear()
	StrokeRect(r Rect, c color.RGBA, lineWidth float64)
	FillRect(r Rect, c color.RGBA)
	// MeasureText returns the advance width of the bold label font.
	MeasureText(text string) float64
	// FillText draws bold text with its baseline at y.
	FillText(text string, x, y float64, c color.RGBA)
}

// Command describes how one detection is drawn during a single pass.
type Command struct {
	Index    int        `json:"index"`
	Color    color.RGBA `json:"-"`
	Hex      string     `json:"color"`
	Box      Rect       `json:"box"`
	Label    string     `json:"label"`
	LabelBox Rect       `json:"label_box"`
	TextX    float64    `json:"text_x"`
	TextY    float64    `json:"text_y"`
}

// Plan computes the draw commands for detections under geo without touching a
// surface. It returns nil when the natural size is unknown.
func Plan(detections []models.Detection, geo models.DisplayGeometry, measure func(string) float64) []Command {
	if !geo.Ready() {
		return nil
	}
	sx, sy := geo.Scale()

	cmds := make([]Command, 0, len(detections))
	for i, d := range detections {
		x := d.Box.X1 * sx
		y := d.Box.Y1 * sy
		label := d.Label()

		cmds = append(cmds, Command{
			Index: i,
			Color: ColorFor(i),
			Hex:   HexFor(i),
			Box: Rect{
				X: x,
				Y: y,
				W: d.Box.Width() * sx,
				H: d.Box.Height() * sy,
			},
			Label:    label,
			LabelBox: Rect{X: x, Y: y - LabelHeight, W: measure(label) + LabelPadding, H: LabelHeight},
			TextX:    x + TextInset,
			TextY:    y - TextBaseline,
		})
	}
	return cmds
}

// Render redraws the overlay for detections onto s and returns the commands
// it executed. When the natural size of the image is not yet known it makes
// no calls on s at all.
func Render(s Surface, detections []models.Detection, geo models.DisplayGeometry) []Command {
	if s == nil || !geo.Ready() {
		return nil
	}

	s.Resize(geo.DisplayWidth, geo.DisplayHeight)
	s.Clear()

	cmds := Plan(detections, geo, s.MeasureText)
	for _, c := range cmds {
		s.StrokeRect(c.Box, c.Color, StrokeWidth)
		// Label background sits above the box and is not clamped to the surface.
		s.FillRect(c.LabelBox, c.Color)
		s.FillText(c.Label, c.TextX, c.TextY, LabelText)
	}
	return cmds
}

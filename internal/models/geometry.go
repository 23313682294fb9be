package models

// DisplayGeometry holds the intrinsic size of the selected image and the size
// it is currently laid out at.
type DisplayGeometry struct {
	NaturalWidth  int `json:"natural_width" example:"640"`
	NaturalHeight int `json:"natural_height" example:"480"`
	DisplayWidth  int `json:"display_width" example:"320"`
	DisplayHeight int `json:"display_height" example:"240"`
}

// Ready reports whether the image has loaded far enough to know its natural size.
func (g DisplayGeometry) Ready() bool {
	return g.NaturalWidth != 0 && g.NaturalHeight != 0
}

// Scale returns the factors mapping natural coordinates to display coordinates.
// Callers must check Ready first.
func (g DisplayGeometry) Scale() (float64, float64) {
	return float64(g.DisplayWidth) / float64(g.NaturalWidth),
		float64(g.DisplayHeight) / float64(g.NaturalHeight)
}

// WithDisplay returns a copy with the display size replaced
func (g DisplayGeometry) WithDisplay(width, height int) DisplayGeometry {
	g.DisplayWidth = width
	g.DisplayHeight = height
	return g
}

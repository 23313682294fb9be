package overlay

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// paletteHex is the fixed, ordered set of box colours. Detection i uses entry i mod 10.
var paletteHex = [...]string{
	"#FF6B6B",
	"#4ECDC4",
	"#45B7D1",
	"#FFA07A",
	"#98D8C8",
	"#F7DC6F",
	"#BB8FCE",
	"#85C1E2",
	"#F8B739",
	"#52B788",
}

// Palette holds paletteHex decoded once at init.
var Palette [len(paletteHex)]color.RGBA

// LabelText is the colour of label text.
var LabelText = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func init() {
	for i, h := range paletteHex {
		c, err := ParseHexColor(h)
		if err != nil {
			panic(fmt.Sprintf("overlay: bad palette entry %q: %v", h, err))
		}
		Palette[i] = c
	}
}

// ColorFor returns the palette colour for the detection at index i.
func ColorFor(i int) color.RGBA {
	n := len(Palette)
	return Palette[((i%n)+n)%n]
}

// HexFor returns the "#RRGGBB" form of the palette colour at index i,
// so result cards can match the overlay.
func HexFor(i int) string {
	n := len(paletteHex)
	return paletteHex[((i%n)+n)%n]
}

// Hex formats an opaque colour as "#RRGGBB".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB" into an opaque colour.
func ParseHexColor(s string) (color.RGBA, error) {
	var c color.RGBA
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return c, fmt.Errorf("invalid color length: %s", s)
	}
	r, err := strconv.ParseUint(s[0:2], 16, 8)
	if err != nil {
		return c, err
	}
	g, err := strconv.ParseUint(s[2:4], 16, 8)
	if err != nil {
		return c, err
	}
	b, err := strconv.ParseUint(s[4:6], 16, 8)
	if err != nil {
		return c, err
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
}

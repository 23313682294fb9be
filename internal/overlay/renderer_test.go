package overlay

import (
	"fmt"
	"image/color"
	"math"
	"reflect"
	"testing"

	"ai-deploy-dashboard/internal/models"
)

// callLog records every Surface call, including text measurement.
type callLog struct {
	calls []string
	width float64
}

func (l *callLog) Resize(w, h int) { l.calls = append(l.calls, fmt.Sprintf("resize %d %d", w, h)) }
func (l *callLog) Clear()          { l.calls = append(l.calls, "clear") }
func (l *callLog) StrokeRect(r Rect, c color.RGBA, lw float64) {
	l.calls = append(l.calls, fmt.Sprintf("stroke %v %v %v %v %s %v", r.X, r.Y, r.W, r.H, Hex(c), lw))
}
func (l *callLog) FillRect(r Rect, c color.RGBA) {
	l.calls = append(l.calls, fmt.Sprintf("fill %v %v %v %v %s", r.X, r.Y, r.W, r.H, Hex(c)))
}
func (l *callLog) MeasureText(s string) float64 {
	l.calls = append(l.calls, "measure "+s)
	return l.width
}
func (l *callLog) FillText(s string, x, y float64, c color.RGBA) {
	l.calls = append(l.calls, fmt.Sprintf("text %q %v %v %s", s, x, y, Hex(c)))
}

func cat() models.Detection {
	return models.Detection{
		Class:      "cat",
		Confidence: 0.87,
		Box:        models.Box{X1: 100, Y1: 50, X2: 300, Y2: 250},
	}
}

func TestRenderHalfScale(t *testing.T) {
	t.Parallel()

	log := &callLog{width: 40}
	geo := models.DisplayGeometry{NaturalWidth: 640, NaturalHeight: 480, DisplayWidth: 320, DisplayHeight: 240}

	Render(log, []models.Detection{cat()}, geo)

	want := []string{
		"resize 320 240",
		"clear",
		"measure cat 87%",
		"stroke 50 25 100 100 #FF6B6B 3",
		"fill 50 1 50 24 #FF6B6B",
		`text "cat 87%" 55 18 #FFFFFF`,
	}
	if !reflect.DeepEqual(log.calls, want) {
		t.Errorf("expected calls\n%v\ngot\n%v", want, log.calls)
	}
}

func TestRenderUpscaleLabelAboveTop(t *testing.T) {
	t.Parallel()

	geo := models.DisplayGeometry{NaturalWidth: 32, NaturalHeight: 32, DisplayWidth: 256, DisplayHeight: 256}
	if sx, sy := geo.Scale(); sx != 8 || sy != 8 {
		t.Fatalf("expected scale 8x8, got %vx%v", sx, sy)
	}
	dets := []models.Detection{
		{Class: "dot", Confidence: 0.5, Box: models.Box{X1: 0, Y1: 0, X2: 32, Y2: 32}},
		{Class: "dash", Confidence: 0.25, Box: models.Box{X1: 4, Y1: 10, X2: 12, Y2: 30}},
	}

	cmds := Render(&callLog{width: 20}, dets, geo)
	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}

	tests := []struct {
		box      Rect
		labelBox Rect
		textX    float64
		textY    float64
	}{
		// Not clamped: the label background extends above the surface.
		{box: Rect{X: 0, Y: 0, W: 256, H: 256}, labelBox: Rect{X: 0, Y: -24, W: 30, H: 24}, textX: 5, textY: -7},
		{box: Rect{X: 32, Y: 80, W: 64, H: 160}, labelBox: Rect{X: 32, Y: 56, W: 30, H: 24}, textX: 37, textY: 73},
	}
	for i, tt := range tests {
		c := cmds[i]
		if c.Box != tt.box {
			t.Errorf("detection %d: expected box %+v, got %+v", i, tt.box, c.Box)
		}
		if c.LabelBox != tt.labelBox {
			t.Errorf("detection %d: expected label background %+v, got %+v", i, tt.labelBox, c.LabelBox)
		}
		if c.TextX != tt.textX || c.TextY != tt.textY {
			t.Errorf("detection %d: expected text at (%v,%v), got (%v,%v)", i, tt.textX, tt.textY, c.TextX, c.TextY)
		}
		x1, y1 := dets[i].Box.X1*8, dets[i].Box.Y1*8
		if c.Box.X != x1 || c.Box.Y != y1 || c.LabelBox.X != x1 || c.LabelBox.Y != y1-LabelHeight {
			t.Errorf("detection %d: expected origin (%v,%v) scaled by 8, got %+v", i, x1, y1, c)
		}
	}
}

func TestRenderEmptyListClears(t *testing.T) {
	t.Parallel()

	log := &callLog{}
	geo := models.DisplayGeometry{NaturalWidth: 640, NaturalHeight: 480, DisplayWidth: 320, DisplayHeight: 240}

	Render(log, nil, geo)

	want := []string{"resize 320 240", "clear"}
	if !reflect.DeepEqual(log.calls, want) {
		t.Errorf("expected %v, got %v", want, log.calls)
	}
}

func TestRenderWithoutNaturalSizeIsNoop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		geo  models.DisplayGeometry
	}{
		{name: "zero width", geo: models.DisplayGeometry{NaturalHeight: 480, DisplayWidth: 320, DisplayHeight: 240}},
		{name: "zero height", geo: models.DisplayGeometry{NaturalWidth: 640, DisplayWidth: 320, DisplayHeight: 240}},
		{name: "nothing loaded", geo: models.DisplayGeometry{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			log := &callLog{}
			if cmds := Render(log, []models.Detection{cat()}, tt.geo); cmds != nil {
				t.Errorf("expected no commands, got %v", cmds)
			}
			if len(log.calls) != 0 {
				t.Errorf("expected no surface calls, got %v", log.calls)
			}
		})
	}
}

func TestRenderPaletteCycles(t *testing.T) {
	t.Parallel()

	dets := make([]models.Detection, 12)
	for i := range dets {
		dets[i] = models.Detection{Class: "obj", Confidence: 0.5, Box: models.Box{X1: 1, Y1: 30, X2: 10, Y2: 40}}
	}
	geo := models.DisplayGeometry{NaturalWidth: 100, NaturalHeight: 100, DisplayWidth: 100, DisplayHeight: 100}

	cmds := Render(&callLog{}, dets, geo)
	if len(cmds) != 12 {
		t.Fatalf("expected 12 commands, got %d", len(cmds))
	}
	for i, c := range cmds {
		if c.Color != Palette[i%10] {
			t.Errorf("detection %d: expected %s, got %s", i, Hex(Palette[i%10]), Hex(c.Color))
		}
	}
	if cmds[10].Color != cmds[0].Color || cmds[11].Color != cmds[1].Color {
		t.Error("expected palette to repeat with period 10")
	}
	if cmds[0].Color == cmds[1].Color {
		t.Error("expected adjacent detections to differ in colour")
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	log := &callLog{width: 33}
	geo := models.DisplayGeometry{NaturalWidth: 640, NaturalHeight: 480, DisplayWidth: 800, DisplayHeight: 600}
	dets := []models.Detection{cat(), {Class: "dog", Confidence: 0.42, Box: models.Box{X1: 10, Y1: 10, X2: 20, Y2: 30}}}

	Render(log, dets, geo)
	first := append([]string(nil), log.calls...)
	log.calls = nil
	Render(log, dets, geo)

	if !reflect.DeepEqual(first, log.calls) {
		t.Errorf("expected identical passes\nfirst  %v\nsecond %v", first, log.calls)
	}
}

func TestPlanScaleInvariance(t *testing.T) {
	t.Parallel()

	d := cat()
	natural := models.DisplayGeometry{NaturalWidth: 640, NaturalHeight: 480}
	displays := [][2]int{{640, 480}, {320, 240}, {1280, 960}, {100, 300}, {1, 1}}

	for _, size := range displays {
		geo := natural.WithDisplay(size[0], size[1])
		cmds := Plan([]models.Detection{d}, geo, func(string) float64 { return 0 })
		if len(cmds) != 1 {
			t.Fatalf("expected 1 command, got %d", len(cmds))
		}
		box := cmds[0].Box
		gotX := box.X / float64(size[0])
		gotY := box.Y / float64(size[1])
		gotW := box.W / float64(size[0])
		gotH := box.H / float64(size[1])

		wantX, wantY := d.Box.X1/640, d.Box.Y1/480
		wantW, wantH := d.Box.Width()/640, d.Box.Height()/480
		for _, pair := range [][2]float64{{gotX, wantX}, {gotY, wantY}, {gotW, wantW}, {gotH, wantH}} {
			if math.Abs(pair[0]-pair[1]) > 1e-9 {
				t.Errorf("display %v: expected ratio %v, got %v", size, pair[1], pair[0])
			}
		}
	}
}

func TestPlanLabelWidth(t *testing.T) {
	t.Parallel()

	geo := models.DisplayGeometry{NaturalWidth: 10, NaturalHeight: 10, DisplayWidth: 10, DisplayHeight: 10}
	cmds := Plan([]models.Detection{cat()}, geo, func(s string) float64 { return float64(len(s)) * 7 })

	if got, want := cmds[0].LabelBox.W, float64(len("cat 87%"))*7+10; got != want {
		t.Errorf("expected label width %v, got %v", want, got)
	}
	if cmds[0].Hex != "#FF6B6B" {
		t.Errorf("expected #FF6B6B, got %s", cmds[0].Hex)
	}
}

func TestParseHexColor(t *testing.T) {
	t.Parallel()

	c, err := ParseHexColor("#52B788")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != (color.RGBA{R: 0x52, G: 0xB7, B: 0x88, A: 255}) {
		t.Errorf("unexpected colour %+v", c)
	}
	if _, err := ParseHexColor("#123"); err == nil {
		t.Error("expected error for short colour")
	}
	if _, err := ParseHexColor("zzzzzz"); err == nil {
		t.Error("expected error for non-hex colour")
	}
}

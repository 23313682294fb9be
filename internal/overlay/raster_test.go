package overlay

import (
	"encoding/json"
	"image/color"
	"testing"

	"ai-deploy-dashboard/internal/models"
)

func TestRasterRender(t *testing.T) {
	t.Parallel()

	r := NewRaster(10, 10)
	geo := models.DisplayGeometry{NaturalWidth: 640, NaturalHeight: 480, DisplayWidth: 320, DisplayHeight: 240}
	Render(r, []models.Detection{cat()}, geo)

	img := r.Image()
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("expected 320x240 raster, got %v", b)
	}

	toRGBA := func(x, y int) color.RGBA {
		return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	}

	// Left edge of the box, halfway down.
	if got := toRGBA(50, 75); got != Palette[0] {
		t.Errorf("expected stroke colour %v at (50,75), got %v", Palette[0], got)
	}
	// Box interior stays transparent.
	if got := toRGBA(100, 75); got.A != 0 {
		t.Errorf("expected transparent interior, got %v", got)
	}
	// Label background left of the text inset.
	if got := toRGBA(51, 3); got != Palette[0] {
		t.Errorf("expected label background %v at (51,3), got %v", Palette[0], got)
	}
	// Outside everything.
	if got := toRGBA(300, 200); got.A != 0 {
		t.Errorf("expected transparent pixel, got %v", got)
	}
}

func TestRasterRedrawDiscardsPreviousBoxes(t *testing.T) {
	t.Parallel()

	r := NewRaster(0, 0)
	geo := models.DisplayGeometry{NaturalWidth: 320, NaturalHeight: 240, DisplayWidth: 320, DisplayHeight: 240}

	Render(r, []models.Detection{cat()}, geo)
	Render(r, nil, geo)

	img := r.Image()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				t.Fatalf("expected cleared surface, found opaque pixel at (%d,%d)", x, y)
			}
		}
	}
}

func TestRasterClipsOffSurfaceLabel(t *testing.T) {
	t.Parallel()

	r := NewRaster(0, 0)
	geo := models.DisplayGeometry{NaturalWidth: 32, NaturalHeight: 32, DisplayWidth: 256, DisplayHeight: 256}
	d := models.Detection{Class: "dot", Confidence: 1, Box: models.Box{X1: 0, Y1: 0, X2: 32, Y2: 32}}

	Render(r, []models.Detection{d}, geo)

	if got := color.RGBAModel.Convert(r.Image().At(0, 128)).(color.RGBA); got != Palette[0] {
		t.Errorf("expected stroke at left edge, got %v", got)
	}
}

func TestMeasureLabel(t *testing.T) {
	t.Parallel()

	if measureLabel("") != 0 {
		t.Error("expected empty text to measure zero")
	}
	short, long := measureLabel("cat 8%"), measureLabel("cat 87%")
	if long <= short {
		t.Errorf("expected longer label to be wider, got %v <= %v", long, short)
	}
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	geo := models.DisplayGeometry{NaturalWidth: 640, NaturalHeight: 480, DisplayWidth: 320, DisplayHeight: 240}

	Render(rec, []models.Detection{cat(), cat()}, geo)
	Render(rec, []models.Detection{cat()}, geo)

	ops := rec.Ops()
	wantKinds := []string{OpResize, OpClear, OpStrokeRect, OpFillRect, OpFillText}
	if len(ops) != len(wantKinds) {
		t.Fatalf("expected %d ops after redraw, got %d: %+v", len(wantKinds), len(ops), ops)
	}
	for i, k := range wantKinds {
		if ops[i].Op != k {
			t.Errorf("op %d: expected %q, got %q", i, k, ops[i].Op)
		}
	}
	if w, h := rec.Size(); w != 320 || h != 240 {
		t.Errorf("expected 320x240, got %dx%d", w, h)
	}
	if ops[2].Color != "#FF6B6B" || ops[2].LineWidth != StrokeWidth {
		t.Errorf("unexpected stroke op %+v", ops[2])
	}
	if ops[4].Text != "cat 87%" || ops[4].Color != "#FFFFFF" {
		t.Errorf("unexpected text op %+v", ops[4])
	}

	data, err := json.Marshal(ops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected JSON output")
	}
}

func TestTee(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	ras := NewRaster(0, 0)
	geo := models.DisplayGeometry{NaturalWidth: 100, NaturalHeight: 100, DisplayWidth: 50, DisplayHeight: 50}

	Render(Tee(ras, rec), []models.Detection{cat()}, geo)

	if b := ras.Image().Bounds(); b.Dx() != 50 || b.Dy() != 50 {
		t.Errorf("expected raster resized to 50x50, got %v", b)
	}
	if len(rec.Ops()) != 5 {
		t.Errorf("expected 5 recorded ops, got %d", len(rec.Ops()))
	}
}

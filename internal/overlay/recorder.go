package overlay

import (
	"image/color"
	"sync"
)

// Op is one recorded surface call, shaped for replay on an HTML canvas.
type Op struct {
	Op        string  `json:"op"`
	Width     int     `json:"width,omitempty"`
	Height    int     `json:"height,omitempty"`
	Rect      *Rect   `json:"rect,omitempty"`
	Color     string  `json:"color,omitempty"`
	LineWidth float64 `json:"line_width,omitempty"`
	Text      string  `json:"text,omitempty"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
}

const (
	OpResize     = "resize"
	OpClear      = "clear"
	OpStrokeRect = "strokeRect"
	OpFillRect   = "fillRect"
	OpFillText   = "fillText"
)

// Recorder is a Surface that keeps the calls of the latest pass instead of
// rasterising them. Resize discards previously recorded calls.
type Recorder struct {
	mu     sync.Mutex
	ops    []Op
	width  int
	height int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = width, height
	r.ops = []Op{{Op: OpResize, Width: width, Height: height}}
}

func (r *Recorder) Clear() {
	r.append(Op{Op: OpClear})
}

func (r *Recorder) StrokeRect(rect Rect, c color.RGBA, lineWidth float64) {
	r.append(Op{Op: OpStrokeRect, Rect: &rect, Color: Hex(c), LineWidth: lineWidth})
}

func (r *Recorder) FillRect(rect Rect, c color.RGBA) {
	r.append(Op{Op: OpFillRect, Rect: &rect, Color: Hex(c)})
}

func (r *Recorder) MeasureText(text string) float64 {
	return measureLabel(text)
}

func (r *Recorder) FillText(text string, x, y float64, c color.RGBA) {
	r.append(Op{Op: OpFillText, Text: text, X: x, Y: y, Color: Hex(c)})
}

// Ops returns a copy of the recorded calls.
func (r *Recorder) Ops() []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Size returns the size set by the last Resize.
func (r *Recorder) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *Recorder) append(op Op) {
	r.mu.Lock()
	r.ops = append(r.ops, op)
	r.mu.Unlock()
}

// Tee fans every call out to all surfaces. Text is measured by the first one.
func Tee(first Surface, rest ...Surface) Surface {
	return tee(append([]Surface{first}, rest...))
}

type tee []Surface

func (t tee) Resize(width, height int) {
	for _, s := range t {
		s.Resize(width, height)
	}
}

func (t tee) Clear() {
	for _, s := range t {
		s.Clear()
	}
}

func (t tee) StrokeRect(r Rect, c color.RGBA, lineWidth float64) {
	for _, s := range t {
		s.StrokeRect(r, c, lineWidth)
	}
}

func (t tee) FillRect(r Rect, c color.RGBA) {
	for _, s := range t {
		s.FillRect(r, c)
	}
}

func (t tee) MeasureText(text string) float64 { return t[0].MeasureText(text) }

func (t tee) FillText(text string, x, y float64, c color.RGBA) {
	for _, s := range t {
		s.FillText(text, x, y, c)
	}
}

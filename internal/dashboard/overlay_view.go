package dashboard

import (
	"errors"
	"image"
	"sync"

	"github.com/rs/zerolog/log"

	"ai-deploy-dashboard/internal/models"
	"ai-deploy-dashboard/internal/overlay"
	"ai-deploy-dashboard/internal/preview"
)

var ErrNoOverlay = errors.New("overlay not drawn yet")

// RasterSurface is a surface whose content can be read back as an image.
type RasterSurface interface {
	overlay.Surface
	Image() image.Image
}

// FramePublisher receives the annotated preview after each redraw.
type FramePublisher interface {
	PublishJPEG(stream string, jpeg []byte)
}

// OverlayView keeps the overlay of a page in sync with it: every Change
// triggers exactly one full render pass.
type OverlayView struct {
	mu       sync.Mutex
	surface  RasterSurface
	recorder *overlay.Recorder
	frames   FramePublisher
	stream   string
	quality  int

	passes    int
	geometry  models.DisplayGeometry
	commands  []overlay.Command
	annotated []byte
}

func NewOverlayView(surface RasterSurface, frames FramePublisher, stream string, quality int) *OverlayView {
	return &OverlayView{
		surface:  surface,
		recorder: overlay.NewRecorder(),
		frames:   frames,
		stream:   stream,
		quality:  quality,
	}
}

// Attach subscribes the view to a page's changes.
func (v *OverlayView) Attach(page *DetectionPage) {
	page.Subscribe(v.OnChange)
}

func (v *OverlayView) OnChange(ch Change) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.passes++
	v.geometry = ch.Geometry
	v.commands = overlay.Render(overlay.Tee(v.surface, v.recorder), ch.Detections, ch.Geometry)
	v.annotated = nil

	if ch.Preview == nil || !ch.Geometry.Ready() {
		return
	}

	frame, err := preview.EncodeJPEG(ch.Preview.Annotated(v.surface.Image()), v.quality)
	if err != nil {
		log.Warn().Err(err).Str("stream", v.stream).Msg("Failed to encode annotated frame")
		return
	}
	v.annotated = frame
	if v.frames != nil {
		v.frames.PublishJPEG(v.stream, frame)
	}
}

// Passes returns how many render passes ran.
func (v *OverlayView) Passes() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.passes
}

// Commands returns the per-detection commands of the last pass.
func (v *OverlayView) Commands() []overlay.Command {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]overlay.Command(nil), v.commands...)
}

// Ops returns the recorded surface calls of the last pass.
func (v *OverlayView) Ops() []overlay.Op {
	return v.recorder.Ops()
}

// PNG encodes the transparent overlay.
func (v *OverlayView) PNG() ([]byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.geometry.Ready() {
		return nil, ErrNoOverlay
	}
	return preview.EncodePNG(v.surface.Image())
}

// AnnotatedJPEG returns the preview with the overlay composited on it.
func (v *OverlayView) AnnotatedJPEG() ([]byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.annotated == nil {
		return nil, ErrNoOverlay
	}
	return v.annotated, nil
}

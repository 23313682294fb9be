package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"ai-deploy-dashboard/internal/inference"
	"ai-deploy-dashboard/internal/logging"
	"ai-deploy-dashboard/internal/models"
	"ai-deploy-dashboard/internal/preview"
)

// DetectionPage is the object detection demo: one selected image, at most one
// result, and an overlay redrawn whenever the geometry or the detections change.
type DetectionPage struct {
	observers

	client    Detector
	publisher ResultPublisher
	logger    zerolog.Logger

	mu         sync.Mutex
	upload     *inference.Upload
	preview    *preview.Preview
	loading    bool
	result     *models.DetectionResponse
	errMsg     string
	settings   models.DetectionSettings
	generation uint64 // bumped on every image selection
	requestSeq uint64 // bumped on every Run
}

func NewDetectionPage(client Detector, publisher ResultPublisher, logger zerolog.Logger) *DetectionPage {
	return &DetectionPage{
		client:    client,
		publisher: publisher,
		logger:    logger.With().Str("page", models.ResultKindDetection).Logger(),
	}
}

// SelectImage replaces the image and discards any previous result or error.
func (p *DetectionPage) SelectImage(up inference.Upload, pv *preview.Preview) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.upload = &up
	p.preview = pv
	p.result = nil
	p.errMsg = ""
	p.loading = false
	p.generation++

	l := logging.WithFile(p.logger, up.FileName)
	l.Info().Interface("geometry", pv.Geometry()).Msg("Image selected")
	p.emitLocked(ChangeGeometry)
}

// SetDisplaySize records a new layout size of the displayed image.
func (p *DetectionPage) SetDisplaySize(width, height int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.preview == nil {
		return ErrNoImage
	}
	if err := p.preview.Resize(width, height); err != nil {
		return err
	}
	p.emitLocked(ChangeGeometry)
	return nil
}

// UpdateSettings changes the filters applied to the shown detections.
func (p *DetectionPage) UpdateSettings(s models.DetectionSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.settings = s
	p.emitLocked(ChangeDetections)
	return nil
}

// Run sends the selected image to the detection endpoint. A response for an
// image that has since been replaced, or for an older Run, is dropped and
// ErrSuperseded is returned.
func (p *DetectionPage) Run(ctx context.Context) error {
	p.mu.Lock()
	if p.upload == nil {
		p.mu.Unlock()
		return ErrNoImage
	}
	up := *p.upload
	generation := p.generation
	p.requestSeq++
	seq := p.requestSeq

	p.loading = true
	p.result = nil
	p.errMsg = ""
	geo := p.preview.Geometry()
	p.emitLocked(ChangeDetections)
	p.mu.Unlock()

	l := logging.WithFile(p.logger, up.FileName)
	start := time.Now()
	resp, err := p.client.Detect(ctx, up)
	elapsed := time.Since(start)

	p.mu.Lock()
	if generation != p.generation || seq != p.requestSeq {
		p.mu.Unlock()
		l.Info().Msg("Discarding detection result for replaced request")
		return ErrSuperseded
	}

	p.loading = false
	event := models.ResultEvent{
		Kind:      models.ResultKindDetection,
		FileName:  up.FileName,
		Geometry:  &geo,
		Duration:  elapsed,
		Timestamp: time.Now(),
	}
	if err != nil {
		p.errMsg = err.Error()
		event.Error = p.errMsg
	} else {
		p.result = resp
		event.Detections = resp.Detections
		event.Count = resp.Count
		p.emitLocked(ChangeDetections)
	}
	p.mu.Unlock()

	p.publish(event)
	if err != nil {
		return err
	}
	l.Info().Int("count", resp.Count).Dur("duration", elapsed).Msg("Detection completed")
	return nil
}

func (p *DetectionPage) publish(event models.ResultEvent) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.PublishResult(event); err != nil {
		p.logger.Warn().Err(err).Msg("Failed to publish detection result")
	}
}

// visibleLocked returns the detections after settings are applied.
func (p *DetectionPage) visibleLocked() []models.Detection {
	if p.result == nil {
		return nil
	}
	return p.settings.Apply(p.result.Detections)
}

func (p *DetectionPage) emitLocked(kind ChangeKind) {
	ch := Change{Kind: kind, Detections: p.visibleLocked(), Preview: p.preview}
	if p.preview != nil {
		ch.Geometry = p.preview.Geometry()
	}
	p.emit(ch)
}

// DetectionState is the JSON view of the page.
type DetectionState struct {
	FileName   string                   `json:"file_name,omitempty"`
	PreviewURL string                   `json:"preview_url,omitempty"`
	Geometry   models.DisplayGeometry   `json:"geometry"`
	Exif       *preview.ExifInfo        `json:"exif,omitempty"`
	Loading    bool                     `json:"loading"`
	Error      string                   `json:"error,omitempty"`
	Result     *DetectionResultView     `json:"result,omitempty"`
	Settings   models.DetectionSettings `json:"settings"`
	CanRun     bool                     `json:"can_run"`
}

func (p *DetectionPage) State() DetectionState {
	p.mu.Lock()
	defer p.mu.Unlock()

	st := DetectionState{
		Loading:  p.loading,
		Error:    p.errMsg,
		Settings: p.settings,
		CanRun:   p.upload != nil && !p.loading,
	}
	if p.upload != nil {
		st.FileName = p.upload.FileName
	}
	if p.preview != nil {
		st.PreviewURL = p.preview.DataURL
		st.Geometry = p.preview.Geometry()
		st.Exif = p.preview.Exif
	}
	if p.result != nil {
		view := NewDetectionResultView(p.visibleLocked())
		st.Result = &view
	}
	return st
}

// Preview returns the selected image, or nil.
func (p *DetectionPage) Preview() *preview.Preview {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.preview
}

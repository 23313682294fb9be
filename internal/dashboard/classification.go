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

// ClassificationPage is the image classification demo.
type ClassificationPage struct {
	client    Classifier
	publisher ResultPublisher
	logger    zerolog.Logger

	mu         sync.Mutex
	upload     *inference.Upload
	preview    *preview.Preview
	loading    bool
	result     *models.Classification
	errMsg     string
	generation uint64
	requestSeq uint64
}

func NewClassificationPage(client Classifier, publisher ResultPublisher, logger zerolog.Logger) *ClassificationPage {
	return &ClassificationPage{
		client:    client,
		publisher: publisher,
		logger:    logger.With().Str("page", models.ResultKindClassification).Logger(),
	}
}

func (p *ClassificationPage) SelectImage(up inference.Upload, pv *preview.Preview) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.upload = &up
	p.preview = pv
	p.result = nil
	p.errMsg = ""
	p.loading = false
	p.generation++

	l := logging.WithFile(p.logger, up.FileName)
	l.Info().Msg("Image selected")
}

// Run classifies the selected image. Results for a replaced image are dropped.
func (p *ClassificationPage) Run(ctx context.Context) error {
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
	p.mu.Unlock()

	l := logging.WithFile(p.logger, up.FileName)
	start := time.Now()
	res, err := p.client.Classify(ctx, up)
	elapsed := time.Since(start)

	p.mu.Lock()
	if generation != p.generation || seq != p.requestSeq {
		p.mu.Unlock()
		l.Info().Msg("Discarding classification result for replaced request")
		return ErrSuperseded
	}
	p.loading = false
	event := models.ResultEvent{
		Kind:      models.ResultKindClassification,
		FileName:  up.FileName,
		Duration:  elapsed,
		Timestamp: time.Now(),
	}
	if err != nil {
		p.errMsg = err.Error()
		event.Error = p.errMsg
	} else {
		p.result = res
		event.Classification = res
	}
	p.mu.Unlock()

	if p.publisher != nil {
		if perr := p.publisher.PublishResult(event); perr != nil {
			l.Warn().Err(perr).Msg("Failed to publish classification result")
		}
	}
	if err != nil {
		return err
	}
	l.Info().Str("class", res.Class).Float64("confidence", res.Confidence).Msg("Classification completed")
	return nil
}

// ClassificationState is the JSON view of the page.
type ClassificationState struct {
	FileName   string              `json:"file_name,omitempty"`
	PreviewURL string              `json:"preview_url,omitempty"`
	Exif       *preview.ExifInfo   `json:"exif,omitempty"`
	Loading    bool                `json:"loading"`
	Error      string              `json:"error,omitempty"`
	Result     *ClassificationView `json:"result,omitempty"`
	CanRun     bool                `json:"can_run"`
	Model      ModelCard           `json:"model"`
}

func (p *ClassificationPage) State() ClassificationState {
	p.mu.Lock()
	defer p.mu.Unlock()

	st := ClassificationState{
		Loading: p.loading,
		Error:   p.errMsg,
		CanRun:  p.upload != nil && !p.loading,
		Model:   ClassificationModel(),
	}
	if p.upload != nil {
		st.FileName = p.upload.FileName
	}
	if p.preview != nil {
		st.PreviewURL = p.preview.DataURL
		st.Exif = p.preview.Exif
	}
	if p.result != nil {
		view := NewClassificationView(*p.result)
		st.Result = &view
	}
	return st
}

// Package dashboard holds the state of the two demo pages and turns it into
// the view models the UI renders. State is single-user and in memory.
package dashboard

import (
	"context"
	"errors"
	"sync"

	"ai-deploy-dashboard/internal/inference"
	"ai-deploy-dashboard/internal/models"
	"ai-deploy-dashboard/internal/preview"
)

var (
	ErrNoImage    = errors.New("no image selected")
	ErrSuperseded = errors.New("result discarded: a newer image or request replaced it")
)

// ChangeKind says which input of the overlay changed.
type ChangeKind string

const (
	ChangeGeometry   ChangeKind = "geometry"
	ChangeDetections ChangeKind = "detections"
)

// Change carries the full overlay input after a state change, so listeners
// never need to read back from the page.
type Change struct {
	Kind       ChangeKind
	Geometry   models.DisplayGeometry
	Detections []models.Detection
	Preview    *preview.Preview
}

// Listener receives changes in the order they happened.
type Listener func(Change)

type observers struct {
	mu        sync.Mutex
	listeners []Listener
}

// Subscribe registers fn for every subsequent change.
func (o *observers) Subscribe(fn Listener) {
	o.mu.Lock()
	o.listeners = append(o.listeners, fn)
	o.mu.Unlock()
}

func (o *observers) emit(ch Change) {
	o.mu.Lock()
	ls := append([]Listener(nil), o.listeners...)
	o.mu.Unlock()

	for _, fn := range ls {
		fn(ch)
	}
}

// Detector is the subset of the inference client used by the detection page.
type Detector interface {
	Detect(ctx context.Context, up inference.Upload) (*models.DetectionResponse, error)
}

// Classifier is the subset of the inference client used by the classification page.
type Classifier interface {
	Classify(ctx context.Context, up inference.Upload) (*models.Classification, error)
}

// ResultPublisher receives an event after every completed request.
type ResultPublisher interface {
	PublishResult(event models.ResultEvent) error
}

package models

import (
	"fmt"
	"math"
	"time"
)

// Box is an axis-aligned bounding box in natural-image pixel coordinates.
type Box struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Width returns x2 - x1. Inverted boxes yield a negative width and are drawn as-is.
func (b Box) Width() float64 { return b.X2 - b.X1 }

// Height returns y2 - y1.
func (b Box) Height() float64 { return b.Y2 - b.Y1 }

// Detection represents one object found by the remote detection service
type Detection struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
	Box        Box     `json:"box"`
}

// Percent returns the confidence as a whole percentage, rounded half away from zero.
func (d Detection) Percent() int {
	return int(math.Round(d.Confidence * 100))
}

// Label is the text drawn above the box, e.g. "cat 87%".
func (d Detection) Label() string {
	return fmt.Sprintf("%s %d%%", d.Class, d.Percent())
}

// DetectionResponse is the body returned by the detection endpoint
type DetectionResponse struct {
	Detections []Detection `json:"detections"`
	Count      int         `json:"count"`
}

// DetectionSettings mirrors the settings panel of the detection page.
// Zero values disable the corresponding filter.
type DetectionSettings struct {
	ConfidenceThreshold float64 `json:"confidence_threshold" example:"0.5"`
	MaxDetections       int     `json:"max_detections" example:"10"`
}

// Apply filters detections in place order: entries below the threshold are
// dropped, then the list is truncated to MaxDetections.
func (s DetectionSettings) Apply(in []Detection) []Detection {
	out := make([]Detection, 0, len(in))
	for _, d := range in {
		if s.ConfidenceThreshold > 0 && d.Confidence < s.ConfidenceThreshold {
			continue
		}
		out = append(out, d)
	}
	if s.MaxDetections > 0 && len(out) > s.MaxDetections {
		out = out[:s.MaxDetections]
	}
	return out
}

// Validate checks settings received from clients
func (s DetectionSettings) Validate() error {
	if s.ConfidenceThreshold < 0 || s.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence_threshold must be within [0,1], got %v", s.ConfidenceThreshold)
	}
	if s.MaxDetections < 0 {
		return fmt.Errorf("max_detections must not be negative, got %d", s.MaxDetections)
	}
	return nil
}

// ResultEvent is published to the message bus after every completed request
type ResultEvent struct {
	Kind           string            `json:"kind"`
	FileName       string            `json:"file_name"`
	Detections     []Detection       `json:"detections,omitempty"`
	Count          int               `json:"count,omitempty"`
	Classification *Classification   `json:"classification,omitempty"`
	Error          string            `json:"error,omitempty"`
	Geometry       *DisplayGeometry  `json:"geometry,omitempty"`
	Duration       time.Duration     `json:"duration"`
	Timestamp      time.Time         `json:"timestamp"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

const (
	ResultKindDetection      = "detection"
	ResultKindClassification = "classification"
)

package models

import "math"

// Classification is the single best prediction returned by the classification endpoint
type Classification struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
}

// Percent returns the confidence as a whole percentage
func (c Classification) Percent() int {
	return int(math.Round(c.Confidence * 100))
}

// ConfidenceLevel buckets a confidence for badge styling
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// LevelFor returns high for >= 0.8, medium for >= 0.5, low otherwise.
func LevelFor(confidence float64) ConfidenceLevel {
	switch {
	case confidence >= 0.8:
		return ConfidenceHigh
	case confidence >= 0.5:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// CIFARClasses are the labels served by the demo classification model.
var CIFARClasses = []string{
	"airplane", "automobile", "bird", "cat", "deer",
	"dog", "frog", "horse", "ship", "truck",
}

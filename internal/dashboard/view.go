package dashboard

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"ai-deploy-dashboard/internal/models"
	"ai-deploy-dashboard/internal/overlay"
)

const NoObjectsMessage = "No objects detected"

// DetectionItem is one row of the detection result list. Its colour matches
// the box drawn for the same index.
type DetectionItem struct {
	Index      int        `json:"index"`
	Class      string     `json:"class"`
	Confidence float64    `json:"confidence"`
	Percent    string     `json:"percent"`
	Label      string     `json:"label"`
	Color      string     `json:"color"`
	Box        models.Box `json:"box"`
}

type DetectionResultView struct {
	Count   int             `json:"count"`
	Items   []DetectionItem `json:"items"`
	Message string          `json:"message,omitempty"`
}

func NewDetectionResultView(dets []models.Detection) DetectionResultView {
	view := DetectionResultView{Count: len(dets), Items: make([]DetectionItem, 0, len(dets))}
	for i, d := range dets {
		view.Items = append(view.Items, DetectionItem{
			Index:      i,
			Class:      d.Class,
			Confidence: d.Confidence,
			Percent:    fmt.Sprintf("%d%%", d.Percent()),
			Label:      d.Label(),
			Color:      overlay.HexFor(i),
			Box:        d.Box,
		})
	}
	if len(dets) == 0 {
		view.Message = NoObjectsMessage
	}
	return view
}

type ClassificationView struct {
	Class      string                 `json:"class"`
	Title      string                 `json:"title"`
	Confidence float64                `json:"confidence"`
	Percent    string                 `json:"percent"`
	Level      models.ConfidenceLevel `json:"level"`
}

// DisplayName turns a model class such as "traffic_light" into "Traffic Light".
func DisplayName(class string) string {
	// Casers keep state, so each call gets its own.
	return cases.Title(language.English).String(strings.ReplaceAll(class, "_", " "))
}

func NewClassificationView(c models.Classification) ClassificationView {
	return ClassificationView{
		Class:      c.Class,
		Title:      DisplayName(c.Class),
		Confidence: c.Confidence,
		Percent:    fmt.Sprintf("%d%%", c.Percent()),
		Level:      models.LevelFor(c.Confidence),
	}
}

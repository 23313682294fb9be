package dashboard

import (
	"fmt"
	"time"

	"ai-deploy-dashboard/internal/inference"
	"ai-deploy-dashboard/internal/models"
)

type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Detail string `json:"detail,omitempty"`
}

type ModelCard struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Path        string   `json:"path"`
	Description string   `json:"description"`
	Classes     []string `json:"classes,omitempty"`
	Status      string   `json:"status"`
}

type Overview struct {
	Stats  []StatCard  `json:"stats"`
	Models []ModelCard `json:"models"`
}

// StatsSource reports request counters per endpoint.
type StatsSource interface {
	Stats() map[string]inference.EndpointStats
	Totals() inference.EndpointStats
}

func DetectionModel() ModelCard {
	return ModelCard{
		Name:        "YOLOv8 Object Detection",
		Type:        "Object Detection",
		Path:        "/object-detection",
		Description: "Detects and localises objects in images with bounding boxes.",
		Status:      "deployed",
	}
}

func ClassificationModel() ModelCard {
	return ModelCard{
		Name:        "CIFAR-10 Classifier",
		Type:        "Image Classification",
		Path:        "/image-classification",
		Description: "Classifies images into one of ten everyday categories.",
		Classes:     cifarClasses(),
		Status:      "deployed",
	}
}

// BuildOverview assembles the dashboard home cards.
func BuildOverview(src StatsSource) Overview {
	cards := []ModelCard{DetectionModel(), ClassificationModel()}
	total := src.Totals()

	rate := "n/a"
	if total.Requests > 0 {
		rate = fmt.Sprintf("%.1f%%", total.SuccessRate()*100)
	}
	avg := "n/a"
	if total.Requests > 0 {
		avg = fmt.Sprintf("%dms", total.AvgLatency.Round(time.Millisecond).Milliseconds())
	}

	per := src.Stats()
	return Overview{
		Stats: []StatCard{
			{Title: "Total Models", Value: fmt.Sprintf("%d", len(cards)), Detail: "deployed endpoints"},
			{
				Title:  "Predictions",
				Value:  fmt.Sprintf("%d", total.Requests),
				Detail: fmt.Sprintf("%d detection, %d classification", per[inference.EndpointDetection].Requests, per[inference.EndpointClassification].Requests),
			},
			{Title: "Success Rate", Value: rate},
			{Title: "Avg Response", Value: avg},
		},
		Models: cards,
	}
}

func cifarClasses() []string {
	return append([]string(nil), models.CIFARClasses...)
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"ai-deploy-dashboard/internal/dashboard"
	"ai-deploy-dashboard/internal/models"
)

const (
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

type detectionReport struct {
	File     string                        `json:"file"`
	Geometry models.DisplayGeometry        `json:"geometry"`
	Result   dashboard.DetectionResultView `json:"result"`
	Output   string                        `json:"output,omitempty"`
}

type classificationReport struct {
	File   string                       `json:"file"`
	Result dashboard.ClassificationView `json:"result"`
}

func validFormat(format string) error {
	if format != formatJSON && format != formatMarkdown {
		return fmt.Errorf("invalid format %q: want json or markdown", format)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeDetectionReport(w io.Writer, format string, r detectionReport) error {
	if format == formatJSON {
		return writeJSON(w, r)
	}

	md := markdown.NewMarkdown(w)
	md.H1("Detection Report")
	md.PlainText("")

	rows := [][]string{
		{"Image", "`" + r.File + "`"},
		{"Natural size", sizeText(r.Geometry.NaturalWidth, r.Geometry.NaturalHeight)},
		{"Display size", sizeText(r.Geometry.DisplayWidth, r.Geometry.DisplayHeight)},
		{"Objects", strconv.Itoa(r.Result.Count)},
	}
	if r.Output != "" {
		rows = append(rows, []string{"Annotated image", "`" + r.Output + "`"})
	}
	md.Table(markdown.TableSet{Header: []string{"Property", "Value"}, Rows: rows})
	md.PlainText("")

	md.H2("Detections")
	md.PlainText("")
	if len(r.Result.Items) == 0 {
		md.Note(dashboard.NoObjectsMessage)
		return md.Build()
	}

	items := make([][]string, len(r.Result.Items))
	for i, item := range r.Result.Items {
		items[i] = []string{
			strconv.Itoa(item.Index + 1),
			item.Class,
			item.Percent,
			"`" + item.Color + "`",
			fmt.Sprintf("(%.0f, %.0f) - (%.0f, %.0f)", item.Box.X1, item.Box.Y1, item.Box.X2, item.Box.Y2),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Class", "Confidence", "Color", "Box"},
		Rows:   items,
	})
	return md.Build()
}

func writeClassificationReport(w io.Writer, format string, r classificationReport) error {
	if format == formatJSON {
		return writeJSON(w, r)
	}

	md := markdown.NewMarkdown(w)
	md.H1("Classification Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Image", "`" + r.File + "`"},
			{"Class", r.Result.Title},
			{"Confidence", r.Result.Percent},
			{"Level", string(r.Result.Level)},
		},
	})
	md.PlainText("")
	if r.Result.Level == models.ConfidenceLow {
		md.Warningf("Low confidence prediction (%s).", r.Result.Percent)
	}
	return md.Build()
}

func sizeText(w, h int) string {
	return strconv.Itoa(w) + "x" + strconv.Itoa(h)
}

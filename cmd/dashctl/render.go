package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ai-deploy-dashboard/internal/dashboard"
	"ai-deploy-dashboard/internal/models"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render IMAGE",
		Short: "Draw a saved detection result over an image",
		Long: `Render draws the detections of a saved detection response over IMAGE
without contacting any endpoint. The response file uses the endpoint's
JSON format:

  {"detections":[{"class":"cat","confidence":0.87,"box":{"x1":100,"y1":50,"x2":200,"y2":250}}],"count":1}`,
		Args: cobra.ExactArgs(1),
		RunE: runRenderCmd,
	}

	cmd.Flags().String("detections", "", "Path to a saved detection response (required)")
	cmd.Flags().StringP("out", "o", "annotated.png", "Write the annotated image to this path (.png or .jpg)")
	cmd.Flags().StringP("format", "f", formatJSON, "Report format: json or markdown")
	cmd.Flags().StringP("display", "d", "", "Display size WIDTHxHEIGHT used to scale the overlay (default: natural size)")
	_ = cmd.MarkFlagRequired("detections")

	return cmd
}

func readDetections(path string) (*models.DetectionResponse, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided result path is intentional
	if err != nil {
		return nil, err
	}
	var resp models.DetectionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("invalid detection response %s: %w", path, err)
	}
	return &resp, nil
}

func runRenderCmd(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := validFormat(format); err != nil {
		return err
	}
	display, _ := cmd.Flags().GetString("display")
	out, _ := cmd.Flags().GetString("out")
	detPath, _ := cmd.Flags().GetString("detections")

	resp, err := readDetections(detPath)
	if err != nil {
		return err
	}

	up, pv, err := loadImage(args[0], display)
	if err != nil {
		return err
	}

	img, _ := annotate(pv, resp.Detections)
	if err := saveImage(out, img); err != nil {
		return err
	}

	return writeDetectionReport(cmd.OutOrStdout(), format, detectionReport{
		File:     up.FileName,
		Geometry: pv.Geometry(),
		Result:   dashboard.NewDetectionResultView(resp.Detections),
		Output:   out,
	})
}

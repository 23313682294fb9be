package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ai-deploy-dashboard/internal/dashboard"
	"ai-deploy-dashboard/internal/inference"
)

// NewDetectCmd creates the detect command.
func NewDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect IMAGE",
		Short: "Detect objects in an image",
		Long: `Detect sends IMAGE to the detection endpoint, prints the detections and
optionally writes the image with labelled boxes drawn over it.

Examples:
  # Print detections as JSON
  dashctl detect street.jpg

  # Write the annotated image as the dashboard would show it at 640x480
  dashctl detect street.jpg --display 640x480 --out annotated.png

  # Markdown summary
  dashctl detect street.jpg --format markdown`,
		Args: cobra.ExactArgs(1),
		RunE: runDetectCmd,
	}

	cmd.Flags().StringP("out", "o", "", "Write the annotated image to this path (.png or .jpg)")
	cmd.Flags().StringP("format", "f", formatJSON, "Report format: json or markdown")
	cmd.Flags().StringP("display", "d", "", "Display size WIDTHxHEIGHT used to scale the overlay (default: natural size)")

	return cmd
}

func runDetectCmd(cmd *cobra.Command, args []string) error {
	logger := zerolog.Ctx(cmd.Context())

	format, _ := cmd.Flags().GetString("format")
	if err := validFormat(format); err != nil {
		return err
	}
	display, _ := cmd.Flags().GetString("display")
	out, _ := cmd.Flags().GetString("out")

	opts, err := clientOptions(cmd)
	if err != nil {
		return err
	}

	up, pv, err := loadImage(args[0], display)
	if err != nil {
		return err
	}

	logger.Debug().Str("url", opts.DetectURL).Str("file_name", up.FileName).Msg("Sending detection request")
	resp, err := inference.NewClient(opts).Detect(cmd.Context(), up)
	if err != nil {
		return err
	}
	logger.Debug().Int("count", resp.Count).Msg("Detection completed")

	report := detectionReport{
		File:     up.FileName,
		Geometry: pv.Geometry(),
		Result:   dashboard.NewDetectionResultView(resp.Detections),
		Output:   out,
	}

	if out != "" {
		img, _ := annotate(pv, resp.Detections)
		if err := saveImage(out, img); err != nil {
			return err
		}
	}

	return writeDetectionReport(cmd.OutOrStdout(), format, report)
}

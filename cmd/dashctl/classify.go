package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ai-deploy-dashboard/internal/dashboard"
	"ai-deploy-dashboard/internal/inference"
)

// NewClassifyCmd creates the classify command.
func NewClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify IMAGE",
		Short: "Classify an image",
		Long: `Classify sends IMAGE to the classification endpoint and prints the
predicted class with its confidence.`,
		Args: cobra.ExactArgs(1),
		RunE: runClassifyCmd,
	}

	cmd.Flags().StringP("format", "f", formatJSON, "Report format: json or markdown")

	return cmd
}

func runClassifyCmd(cmd *cobra.Command, args []string) error {
	logger := zerolog.Ctx(cmd.Context())

	format, _ := cmd.Flags().GetString("format")
	if err := validFormat(format); err != nil {
		return err
	}

	opts, err := clientOptions(cmd)
	if err != nil {
		return err
	}

	up, _, err := loadImage(args[0], "")
	if err != nil {
		return err
	}

	logger.Debug().Str("url", opts.ClassifyURL).Str("file_name", up.FileName).Msg("Sending classification request")
	res, err := inference.NewClient(opts).Classify(cmd.Context(), up)
	if err != nil {
		return err
	}

	return writeClassificationReport(cmd.OutOrStdout(), format, classificationReport{
		File:   up.FileName,
		Result: dashboard.NewClassificationView(*res),
	})
}

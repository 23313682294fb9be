package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for dashctl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashctl",
		Short: "Run AI Deploy models on local images",
		Long: `dashctl sends local images to the AI Deploy detection and classification
endpoints and renders the results the same way the dashboard does:
labelled boxes drawn over the image and a summary as JSON or Markdown.

Endpoint settings come from flags, then from
$XDG_CONFIG_HOME/ai-deploy/config.yaml, then from built-in defaults.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogger(cmd)
		},
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "", "Configuration file path (default: $XDG_CONFIG_HOME/ai-deploy/config.yaml)")
	cmd.PersistentFlags().String("detect-url", "", "Detection endpoint URL")
	cmd.PersistentFlags().String("classify-url", "", "Classification endpoint URL")
	cmd.PersistentFlags().String("encoding", "", "Request body encoding: multipart or raw")
	cmd.PersistentFlags().Duration("timeout", 0, "Request timeout")

	cmd.AddCommand(NewDetectCmd())
	cmd.AddCommand(NewClassifyCmd())
	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// setupLogger attaches a console logger to the command context; commands
// fetch it with zerolog.Ctx.
func setupLogger(cmd *cobra.Command) {
	level := zerolog.WarnLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Str("command", cmd.Name()).Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

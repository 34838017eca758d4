// Command analyze runs the single-pass incident-report analysis: it acquires
// the dataset CSV (HTTP by default, a local file with --input), cleans the
// rows, tallies incidents per month and per age bracket, tests each month's
// share against the peak month, fits the injuries-vs-age regression, and
// renders the text report.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/incident-report-analysis/internal/adapter/source"
	"github.com/couchcryptid/incident-report-analysis/internal/analysis"
	"github.com/couchcryptid/incident-report-analysis/internal/config"
	"github.com/couchcryptid/incident-report-analysis/internal/observability"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("analysis failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var inputPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:           "analyze",
		Short:         "Run the incident-report batch analysis and print the report",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, inputPath, outputPath)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "local dataset CSV (overrides DATASET_URL)")
	cmd.Flags().StringVar(&outputPath, "output", "", "report destination, - for stdout (overrides OUTPUT_PATH)")

	return cmd
}

func run(cmd *cobra.Command, inputPath, outputPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if outputPath != "" {
		cfg.OutputPath = outputPath
	}

	runID := uuid.NewString()
	logger := observability.NewLogger(cfg).With("run_id", runID)
	metrics := observability.NewMetrics()

	var fetcher analysis.Fetcher
	if inputPath != "" {
		fetcher = source.NewFileSource(inputPath, logger)
		logger.Info("using local dataset", "path", inputPath)
	} else {
		fetcher = source.NewHTTPSource(cfg.DatasetURL, cfg.HTTPTimeout, logger)
		logger.Info("using remote dataset", "url", cfg.DatasetURL, "timeout", cfg.HTTPTimeout)
	}

	runner := analysis.New(fetcher, logger, metrics, analysis.Options{
		DatasetLabel:   cfg.DatasetLabel,
		RunID:          runID,
		Alpha:          cfg.SignificanceLevel,
		ReferenceMonth: cfg.ReferenceMonth,
	})

	rep, err := runner.Run(cmd.Context())
	if err != nil {
		metrics.RunSucceeded.Set(0)
		observability.LogSummary(logger, metrics.Gatherer())
		return err
	}

	out, closeOut, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	if err := rep.Render(out); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	metrics.RunSucceeded.Set(1)
	observability.LogSummary(logger, metrics.Gatherer())
	logger.Info("report written", "output", cfg.OutputPath)
	return nil
}

func openOutput(path string) (*os.File, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open output %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/onec-tools/bslbridge/app"
	"github.com/onec-tools/bslbridge/domain"
	"github.com/onec-tools/bslbridge/service"
)

var (
	ingestReports    []string
	ingestSources    []string
	ingestFormat     string
	ingestJSONOutput bool
	ingestOutputPath string
	ingestConfigPath string
	ingestNoProgress bool
)

func ingestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Republish BSL Language Server analysis reports as issues",
		Long: `Parse BSL Language Server analysis reports and project their
diagnostics into issues. Reports that fail to read or parse are logged
and skipped; the remaining reports are still ingested.

Examples:
  bslbridge ingest --reports bsl-ls-report.json
  bslbridge ingest --reports "build/**/bsl-ls-report*.json" --source src/
  bslbridge ingest --json --reports report.json`,
		RunE: runIngest,
	}

	cmd.Flags().StringSliceVarP(&ingestReports, "reports", "r", nil,
		"Report paths or glob patterns (overrides config)")
	cmd.Flags().StringSliceVarP(&ingestSources, "source", "s", nil,
		"Source roots for the tracked file set (overrides config)")
	cmd.Flags().StringVarP(&ingestFormat, "format", "f", "",
		"Output format: text, json, yaml")
	cmd.Flags().BoolVar(&ingestJSONOutput, "json", false,
		"Output results as JSON (shorthand for --format json)")
	cmd.Flags().StringVarP(&ingestOutputPath, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().StringVarP(&ingestConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().BoolVar(&ingestNoProgress, "no-progress", false,
		"Disable the progress bar")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	format := domain.OutputFormat(ingestFormat)
	if ingestJSONOutput {
		format = domain.OutputFormatJSON
	}

	writer, closeWriter, err := openOutput(ingestOutputPath)
	if err != nil {
		return err
	}
	defer closeWriter()

	uc := app.NewIngestUseCase(service.NewReportLocator(), service.NewReportParser())
	_, err = uc.Execute(cmd.Context(), app.IngestConfig{
		ConfigPath:   ingestConfigPath,
		Reports:      ingestReports,
		SourceRoots:  ingestSources,
		OutputFormat: format,
		OutputWriter: writer,
		NoProgress:   ingestNoProgress,
	})
	return err
}

// openOutput returns stdout or an output file, with a close func
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/onec-tools/bslbridge/domain"
	"github.com/onec-tools/bslbridge/internal/config"
	"github.com/onec-tools/bslbridge/internal/logging"
	"github.com/onec-tools/bslbridge/service"
)

// IngestConfig holds configuration for the ingest use case
type IngestConfig struct {
	// ConfigPath is an optional explicit configuration file
	ConfigPath string

	// Reports overrides the configured report paths/patterns when set
	Reports []string

	// SourceRoots overrides the configured source roots when set
	SourceRoots []string

	// Output options
	OutputFormat domain.OutputFormat
	OutputWriter io.Writer

	// NoProgress disables the progress bar
	NoProgress bool
}

// IngestUseCase orchestrates report ingestion: configuration, report
// discovery, tracked-file indexing, the ingestion pipeline, and output.
type IngestUseCase struct {
	locator   domain.ReportLocator
	parser    domain.ReportParser
	formatter *service.OutputFormatterImpl
}

// NewIngestUseCase creates a new ingest use case
func NewIngestUseCase(locator domain.ReportLocator, parser domain.ReportParser) *IngestUseCase {
	return &IngestUseCase{
		locator:   locator,
		parser:    parser,
		formatter: service.NewOutputFormatter(),
	}
}

// Execute runs one ingestion pass and writes the outcome to the
// configured writer.
func (uc *IngestUseCase) Execute(ctx context.Context, cfg IngestConfig) (*domain.IngestResponse, error) {
	log := logging.L()

	fileCfg, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration", err)
	}

	reportPatterns := fileCfg.Reports
	if len(cfg.Reports) > 0 {
		reportPatterns = cfg.Reports
	}
	sourceRoots := fileCfg.Source.Roots
	if len(cfg.SourceRoots) > 0 {
		sourceRoots = cfg.SourceRoots
	}
	format := cfg.OutputFormat
	if format == "" {
		format = domain.OutputFormat(fileCfg.Output.Format)
	}

	reports, err := uc.locator.Locate(reportPatterns)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		log.Warn("No BSL Language Server analysis reports found")
	}

	index, err := service.BuildFileIndex(sourceRoots, fileCfg.Source.Extensions)
	if err != nil {
		return nil, err
	}

	collector := service.NewResultCollector()
	ingester := service.NewIngestionService(uc.parser, index, collector)

	progressEnabled := !cfg.NoProgress && format == domain.OutputFormatText
	pm := service.NewProgressManager(progressEnabled)
	defer pm.Close()
	task := pm.StartTask("Ingesting reports", len(reports))

	response, err := ingester.Ingest(ctx, reports, task)
	if err != nil {
		return response, fmt.Errorf("issue submission failed: %w", err)
	}

	if cfg.OutputWriter != nil {
		generatedAt := time.Now().UTC().Format(time.RFC3339)
		if err := uc.formatter.WriteIngest(response, collector.Issues(), generatedAt, format, cfg.OutputWriter); err != nil {
			return response, err
		}
	}

	return response, nil
}

package domain

import "context"

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// ReportLocator expands configured report paths and glob patterns into
// the ordered list of report files to ingest.
type ReportLocator interface {
	Locate(patterns []string) ([]string, error)
}

// ReportParser reads one report file and decodes it into an AnalysisInfo.
type ReportParser interface {
	Parse(path string) (*AnalysisInfo, error)
}

// Ingester runs the report ingestion pipeline over a set of report files.
type Ingester interface {
	Ingest(ctx context.Context, reportPaths []string, progress TaskProgress) (*IngestResponse, error)
}

// ReportResult summarizes the ingestion of a single report file.
type ReportResult struct {
	// Path of the report file.
	Path string `json:"path" yaml:"path"`

	// Error is the read or parse failure that caused this report to be
	// skipped, empty when the report was ingested.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// FilesMatched counts file entries resolved to a tracked source file.
	FilesMatched int `json:"files_matched" yaml:"files_matched"`

	// FilesSkipped counts file entries with no tracked source file.
	FilesSkipped int `json:"files_skipped" yaml:"files_skipped"`

	// IssuesEmitted counts issues submitted to the sink for this report.
	IssuesEmitted int `json:"issues_emitted" yaml:"issues_emitted"`
}

// IngestResponse aggregates the outcome of one ingestion run.
type IngestResponse struct {
	Reports       []ReportResult `json:"reports" yaml:"reports"`
	ReportsParsed int            `json:"reports_parsed" yaml:"reports_parsed"`
	ReportsFailed int            `json:"reports_failed" yaml:"reports_failed"`
	FilesMatched  int            `json:"files_matched" yaml:"files_matched"`
	FilesSkipped  int            `json:"files_skipped" yaml:"files_skipped"`
	IssuesEmitted int            `json:"issues_emitted" yaml:"issues_emitted"`
}

// ProgressManager handles progress reporting during ingestion
type ProgressManager interface {
	// StartTask creates a new progress task with a description and total count
	StartTask(description string, total int) TaskProgress

	// IsInteractive returns true if progress bars should be shown
	IsInteractive() bool

	// Close cleans up all tasks
	Close()
}

// TaskProgress tracks progress of a single task
type TaskProgress interface {
	// Increment adds n to the current progress
	Increment(n int)

	// Describe updates the current item description
	Describe(description string)

	// Complete marks the task as finished
	Complete()
}

package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/onec-tools/bslbridge/domain"
	"github.com/onec-tools/bslbridge/internal/logging"
)

// IngestionService runs the report ingestion pipeline: each report is
// parsed independently, its file entries resolved against the tracked
// file index, and every diagnostic projected into exactly one issue.
// A failure in one report never aborts the remaining reports.
type IngestionService struct {
	parser domain.ReportParser
	index  domain.FileIndex
	sink   domain.IssueSink
	log    *zap.SugaredLogger
}

// NewIngestionService creates a new ingestion service
func NewIngestionService(parser domain.ReportParser, index domain.FileIndex, sink domain.IssueSink) *IngestionService {
	return &IngestionService{
		parser: parser,
		index:  index,
		sink:   sink,
		log:    logging.L(),
	}
}

// Ingest processes the given report files strictly sequentially and
// returns an aggregate of per-report results. The returned error covers
// only sink submission failures; report-local failures are contained in
// the response.
func (s *IngestionService) Ingest(ctx context.Context, reportPaths []string, progress domain.TaskProgress) (*domain.IngestResponse, error) {
	if progress == nil {
		progress = &NoOpTaskProgress{}
	}

	response := &domain.IngestResponse{}
	var sinkErrs []error

	for _, path := range reportPaths {
		if err := ctx.Err(); err != nil {
			return response, err
		}

		result, err := s.ingestReport(path)
		response.Reports = append(response.Reports, result)
		if result.Error != "" {
			response.ReportsFailed++
		} else {
			response.ReportsParsed++
		}
		response.FilesMatched += result.FilesMatched
		response.FilesSkipped += result.FilesSkipped
		response.IssuesEmitted += result.IssuesEmitted
		if err != nil {
			sinkErrs = append(sinkErrs, err)
		}

		progress.Increment(1)
	}
	progress.Complete()

	return response, errors.Join(sinkErrs...)
}

// ingestReport parses one report and publishes its diagnostics. Read and
// parse failures are recorded on the result; only issue submission
// failures are returned as an error.
func (s *IngestionService) ingestReport(path string) (domain.ReportResult, error) {
	result := domain.ReportResult{Path: path}

	s.log.Infof("Parsing BSL Language Server analysis results: %s", path)

	info, err := s.parser.Parse(path)
	if err != nil {
		s.log.Errorf("Skipping analysis report: %v", err)
		result.Error = err.Error()
		return result, nil
	}

	var sinkErrs []error
	for _, fileInfo := range info.FileInfos {
		file, ok := s.index.Lookup(fileInfo.Path, domain.LanguageKey)
		if !ok {
			s.log.Warnf("Can't find input file for absolute path: %s", fileInfo.Path)
			result.FilesSkipped++
			continue
		}
		result.FilesMatched++

		for _, diagnostic := range fileInfo.Diagnostics {
			issue := ProjectDiagnostic(file, diagnostic)
			if err := s.sink.EmitIssue(issue); err != nil {
				s.log.Errorf("Can't save issue %s on %s: %v", issue.RuleKey, file.Path, err)
				sinkErrs = append(sinkErrs, err)
				continue
			}
			result.IssuesEmitted++
		}
	}

	return result, errors.Join(sinkErrs...)
}

// ProjectDiagnostic maps one language-server diagnostic onto the host
// issue model: zero-based line numbers become one-based, character
// offsets pass through unchanged, and the severity is translated via the
// total severity table.
func ProjectDiagnostic(file domain.SourceFile, d domain.Diagnostic) domain.Issue {
	return domain.Issue{
		File: file,
		Range: domain.TextRange{
			StartLine: d.Range.Start.Line + 1,
			StartChar: d.Range.Start.Character,
			EndLine:   d.Range.End.Line + 1,
			EndChar:   d.Range.End.Character,
		},
		Severity: domain.MapSeverity(d.Severity),
		Type:     domain.IssueTypeCodeSmell,
		EngineID: domain.EngineID,
		RuleKey:  d.Code,
		Message:  d.Message,
	}
}

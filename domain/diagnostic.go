package domain

import (
	"encoding/json"
	"fmt"
)

// Position is a zero-based line/character position as reported by the
// BSL Language Server (Language Server Protocol convention).
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a diagnostic source range; the end character is exclusive.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// DiagnosticSeverity is the closed set of LSP diagnostic severities.
// The numeric values follow the protocol: 1=Error .. 4=Hint.
type DiagnosticSeverity int

const (
	SeverityError DiagnosticSeverity = iota + 1
	SeverityWarning
	SeverityInformation
	SeverityHint
)

// String returns the protocol name of the severity.
func (s DiagnosticSeverity) String() string {
	switch s {
	case SeverityError:
		return "Error"
	case SeverityWarning:
		return "Warning"
	case SeverityInformation:
		return "Information"
	case SeverityHint:
		return "Hint"
	default:
		return fmt.Sprintf("DiagnosticSeverity(%d)", int(s))
	}
}

// UnmarshalJSON rejects values outside the 1..4 protocol range so that an
// upstream schema change surfaces as a report parse error instead of a
// misclassified issue later in the pipeline.
func (s *DiagnosticSeverity) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v < int(SeverityError) || v > int(SeverityHint) {
		return fmt.Errorf("diagnostic severity out of range: %d", v)
	}
	*s = DiagnosticSeverity(v)
	return nil
}

// Diagnostic is one finding reported by the BSL Language Server.
type Diagnostic struct {
	Range    Range              `json:"range"`
	Severity DiagnosticSeverity `json:"severity"`
	Code     string             `json:"code"`
	Message  string             `json:"message"`
}

// FileInfo groups the diagnostics reported for one source file.
type FileInfo struct {
	// Path is the absolute path of the analyzed file as the language
	// server saw it.
	Path        string       `json:"path"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// AnalysisInfo is one parsed BSL Language Server analysis report.
type AnalysisInfo struct {
	FileInfos []FileInfo `json:"fileinfos"`
}

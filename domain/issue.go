package domain

import "fmt"

// IssueSeverity represents the severity level of a published issue.
type IssueSeverity string

const (
	IssueSeverityInfo     IssueSeverity = "INFO"
	IssueSeverityMinor    IssueSeverity = "MINOR"
	IssueSeverityMajor    IssueSeverity = "MAJOR"
	IssueSeverityCritical IssueSeverity = "CRITICAL"
)

// IssueType classifies a published issue. The language server does not
// distinguish bugs from smells, so every projected issue is a code smell.
type IssueType string

const IssueTypeCodeSmell IssueType = "CODE_SMELL"

const (
	// LanguageKey identifies the 1C (BSL) language to the host platform.
	LanguageKey = "bsl"

	// EngineID is the external engine identifier attached to every
	// projected issue.
	EngineID = "bsl-language-server"

	// RepositoryBSL is the rule repository of the BSL Language Server
	// rule namespace.
	RepositoryBSL = "bsl-language-server"

	// RepositoryACC is the rule repository of the ACC rule catalog
	// namespace.
	RepositoryACC = "acc-rules"
)

var issueSeverityByDiagnostic = map[DiagnosticSeverity]IssueSeverity{
	SeverityWarning:     IssueSeverityMajor,
	SeverityInformation: IssueSeverityMinor,
	SeverityHint:        IssueSeverityInfo,
	SeverityError:       IssueSeverityCritical,
}

// MapSeverity translates an LSP diagnostic severity into the host issue
// severity. The table is total over the closed enum; an unmapped value is
// a defect and panics rather than silently defaulting, since a defaulted
// severity would misreport issue priority with no later way to detect it.
func MapSeverity(s DiagnosticSeverity) IssueSeverity {
	severity, ok := issueSeverityByDiagnostic[s]
	if !ok {
		panic(fmt.Sprintf("unmapped diagnostic severity: %d", int(s)))
	}
	return severity
}

// SourceFile is a tracked source file known to the host platform.
type SourceFile struct {
	// Path is the absolute path of the file.
	Path string `json:"path" yaml:"path"`

	// Language is the host language key the file is tracked under.
	Language string `json:"language" yaml:"language"`
}

// TextRange is a source range on a tracked file with one-based line
// numbers. Character offsets stay zero-based, matching the host model.
type TextRange struct {
	StartLine int `json:"start_line" yaml:"start_line"`
	StartChar int `json:"start_char" yaml:"start_char"`
	EndLine   int `json:"end_line" yaml:"end_line"`
	EndChar   int `json:"end_char" yaml:"end_char"`
}

// Issue is one finding projected into the host issue model.
type Issue struct {
	File     SourceFile    `json:"file" yaml:"file"`
	Range    TextRange     `json:"range" yaml:"range"`
	Severity IssueSeverity `json:"severity" yaml:"severity"`
	Type     IssueType     `json:"type" yaml:"type"`
	EngineID string        `json:"engine_id" yaml:"engine_id"`
	RuleKey  string        `json:"rule_key" yaml:"rule_key"`
	Message  string        `json:"message" yaml:"message"`
}

// FileIndex resolves a reported absolute path to the tracked source file
// of the given language. Resolution is an exact-match lookup over a closed
// set: zero or one result, no fuzzy matching.
type FileIndex interface {
	Lookup(absPath string, language string) (SourceFile, bool)
}

// IssueSink receives projected issues one at a time. Implementations may
// forward to a host platform or record in memory for tests.
type IssueSink interface {
	EmitIssue(issue Issue) error
}

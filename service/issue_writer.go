package service

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/onec-tools/bslbridge/domain"
	"github.com/onec-tools/bslbridge/internal/version"
)

// ResultCollector records emitted issues and registered profiles in
// submission order. It is the CLI's stand-in for the host platform sinks
// and doubles as the recording fake in tests.
type ResultCollector struct {
	issues   []domain.Issue
	profiles []domain.Profile
}

// NewResultCollector creates a new result collector
func NewResultCollector() *ResultCollector {
	return &ResultCollector{}
}

// EmitIssue records one projected issue
func (c *ResultCollector) EmitIssue(issue domain.Issue) error {
	c.issues = append(c.issues, issue)
	return nil
}

// RegisterProfile records one synthesized profile
func (c *ResultCollector) RegisterProfile(profile domain.Profile) error {
	c.profiles = append(c.profiles, profile)
	return nil
}

// Issues returns the recorded issues in emission order
func (c *ResultCollector) Issues() []domain.Issue {
	return c.issues
}

// Profiles returns the recorded profiles in registration order
func (c *ResultCollector) Profiles() []domain.Profile {
	return c.profiles
}

// IngestReportJSON wraps an ingestion run for serialized output
type IngestReportJSON struct {
	Version     string                 `json:"version" yaml:"version"`
	GeneratedAt string                 `json:"generated_at" yaml:"generated_at"`
	Summary     *domain.IngestResponse `json:"summary" yaml:"summary"`
	Issues      []domain.Issue         `json:"issues" yaml:"issues"`
}

// ProfilesReportJSON wraps synthesized profiles for serialized output
type ProfilesReportJSON struct {
	Version     string           `json:"version" yaml:"version"`
	GeneratedAt string           `json:"generated_at" yaml:"generated_at"`
	Profiles    []domain.Profile `json:"profiles" yaml:"profiles"`
}

// OutputFormatterImpl renders collected results as text, JSON or YAML
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// WriteIngest writes the ingestion outcome in the specified format
func (f *OutputFormatterImpl) WriteIngest(response *domain.IngestResponse, issues []domain.Issue, generatedAt string, format domain.OutputFormat, writer io.Writer) error {
	report := &IngestReportJSON{
		Version:     version.GetVersion(),
		GeneratedAt: generatedAt,
		Summary:     response,
		Issues:      issues,
	}

	switch format {
	case domain.OutputFormatJSON:
		return writeJSON(writer, report)
	case domain.OutputFormatYAML:
		return writeYAML(writer, report)
	case domain.OutputFormatText:
		return f.writeIngestText(response, issues, writer)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteProfiles writes the synthesized profiles in the specified format
func (f *OutputFormatterImpl) WriteProfiles(profiles []domain.Profile, generatedAt string, format domain.OutputFormat, writer io.Writer) error {
	report := &ProfilesReportJSON{
		Version:     version.GetVersion(),
		GeneratedAt: generatedAt,
		Profiles:    profiles,
	}

	switch format {
	case domain.OutputFormatJSON:
		return writeJSON(writer, report)
	case domain.OutputFormatYAML:
		return writeYAML(writer, report)
	case domain.OutputFormatText:
		return f.writeProfilesText(profiles, writer)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func (f *OutputFormatterImpl) writeIngestText(response *domain.IngestResponse, issues []domain.Issue, writer io.Writer) error {
	for _, issue := range issues {
		_, err := fmt.Fprintf(writer, "%s:%d:%d %s %s:%s %s\n",
			issue.File.Path,
			issue.Range.StartLine,
			issue.Range.StartChar,
			issue.Severity,
			issue.EngineID,
			issue.RuleKey,
			issue.Message,
		)
		if err != nil {
			return domain.NewOutputError("failed to write issue", err)
		}
	}

	_, err := fmt.Fprintf(writer, "\nReports: %d parsed, %d failed. Files: %d matched, %d skipped. Issues: %d\n",
		response.ReportsParsed,
		response.ReportsFailed,
		response.FilesMatched,
		response.FilesSkipped,
		response.IssuesEmitted,
	)
	if err != nil {
		return domain.NewOutputError("failed to write summary", err)
	}
	return nil
}

func (f *OutputFormatterImpl) writeProfilesText(profiles []domain.Profile, writer io.Writer) error {
	if len(profiles) == 0 {
		_, err := fmt.Fprintln(writer, "No quality profiles registered")
		if err != nil {
			return domain.NewOutputError("failed to write profiles", err)
		}
		return nil
	}

	for _, profile := range profiles {
		if _, err := fmt.Fprintf(writer, "%s (%s): %d rules\n", profile.Name, profile.Language, len(profile.Activations)); err != nil {
			return domain.NewOutputError("failed to write profiles", err)
		}
		for _, activation := range profile.Activations {
			if _, err := fmt.Fprintf(writer, "  %s:%s\n", activation.Repository, activation.RuleKey); err != nil {
				return domain.NewOutputError("failed to write profiles", err)
			}
		}
	}
	return nil
}

// writeJSON writes data as indented JSON to the writer
func writeJSON(writer io.Writer, data interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// writeYAML writes data as YAML to the writer
func writeYAML(writer io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(writer)
	defer encoder.Close()
	return encoder.Encode(data)
}

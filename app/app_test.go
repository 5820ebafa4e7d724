package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/onec-tools/bslbridge/domain"
	"github.com/onec-tools/bslbridge/internal/testutil"
	"github.com/onec-tools/bslbridge/service"
)

func writeReportFor(t *testing.T, dir, name, sourcePath string) string {
	t.Helper()
	return testutil.WriteJSONFile(t, dir, name, domain.AnalysisInfo{
		FileInfos: []domain.FileInfo{
			{
				Path: sourcePath,
				Diagnostics: []domain.Diagnostic{
					{
						Range: domain.Range{
							Start: domain.Position{Line: 2, Character: 0},
							End:   domain.Position{Line: 2, Character: 10},
						},
						Severity: domain.SeverityWarning,
						Code:     "LineLength",
						Message:  "Line is too long",
					},
				},
			},
		},
	})
}

func TestIngestUseCase_EndToEnd(t *testing.T) {
	project := t.TempDir()
	source := testutil.WriteFile(t, project, "src/Module.bsl", "// module")
	sourceAbs, err := filepath.Abs(source)
	testutil.AssertNoError(t, err)

	reportsDir := t.TempDir()
	report := writeReportFor(t, reportsDir, "bsl-ls-report.json", sourceAbs)

	var out bytes.Buffer
	uc := NewIngestUseCase(service.NewReportLocator(), service.NewReportParser())

	response, err := uc.Execute(context.Background(), IngestConfig{
		Reports:      []string{report},
		SourceRoots:  []string{project},
		OutputFormat: domain.OutputFormatText,
		OutputWriter: &out,
		NoProgress:   true,
	})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, 1, response.ReportsParsed)
	testutil.AssertEqual(t, 1, response.IssuesEmitted)

	if !strings.Contains(out.String(), "bsl-language-server:LineLength") {
		t.Errorf("Expected issue in output, got:\n%s", out.String())
	}
	// Projected line is one-based
	if !strings.Contains(out.String(), ":3:0 MAJOR") {
		t.Errorf("Expected projected position in output, got:\n%s", out.String())
	}
}

func TestIngestUseCase_UntrackedFileYieldsNoIssues(t *testing.T) {
	project := t.TempDir()
	testutil.WriteFile(t, project, "src/Module.bsl", "// module")

	reportsDir := t.TempDir()
	report := writeReportFor(t, reportsDir, "report.json", "/nonexistent/Other.bsl")

	uc := NewIngestUseCase(service.NewReportLocator(), service.NewReportParser())

	response, err := uc.Execute(context.Background(), IngestConfig{
		Reports:     []string{report},
		SourceRoots: []string{project},
		NoProgress:  true,
	})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, 1, response.FilesSkipped)
	testutil.AssertEqual(t, 0, response.IssuesEmitted)
}

func TestProfilesUseCase_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	catalog := testutil.WriteFile(t, dir, "acc.json", `{
		"rules": [
			{"code": "A", "isActive": true, "isNeedForCertificate": false},
			{"code": "B", "isActive": false, "isNeedForCertificate": true},
			{"code": "C", "isActive": true, "isNeedForCertificate": true}
		]
	}`)
	bslRules := testutil.WriteFile(t, dir, "bsl-rules.txt", "X\nY\n")

	var out bytes.Buffer
	uc := NewProfilesUseCase()

	profiles, err := uc.Execute(ProfilesConfig{
		CatalogPath:  catalog,
		BSLRulesPath: bslRules,
		OutputFormat: domain.OutputFormatText,
		OutputWriter: &out,
	})
	testutil.AssertNoError(t, err)

	if len(profiles) != 3 {
		t.Fatalf("Expected 3 profiles, got %d", len(profiles))
	}
	testutil.AssertEqual(t, domain.ProfileAllRules, profiles[2].Name)
	testutil.AssertEqual(t, 4, len(profiles[2].Activations))

	if !strings.Contains(out.String(), "ACC - 1C:Certified") {
		t.Errorf("Expected certified profile in output:\n%s", out.String())
	}
}

func TestProfilesUseCase_MissingCatalog(t *testing.T) {
	var out bytes.Buffer
	uc := NewProfilesUseCase()

	profiles, err := uc.Execute(ProfilesConfig{
		CatalogPath:  filepath.Join(t.TempDir(), "acc.json"),
		OutputFormat: domain.OutputFormatText,
		OutputWriter: &out,
	})
	testutil.AssertNoError(t, err)

	if len(profiles) != 0 {
		t.Errorf("Expected zero profiles with a missing catalog, got %d", len(profiles))
	}
	if !strings.Contains(out.String(), "No quality profiles registered") {
		t.Errorf("Unexpected output:\n%s", out.String())
	}
}

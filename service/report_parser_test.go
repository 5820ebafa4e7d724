package service

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/onec-tools/bslbridge/domain"
	"github.com/onec-tools/bslbridge/internal/testutil"
)

func TestParse_ValidReport(t *testing.T) {
	dir := t.TempDir()
	raw := `{
		"fileinfos": [
			{
				"path": "/src/Module.bsl",
				"diagnostics": [
					{
						"range": {"start": {"line": 1, "character": 0}, "end": {"line": 1, "character": 4}},
						"severity": 2,
						"code": "SemicolonPresence",
						"message": "Missing semicolon"
					}
				]
			}
		]
	}`
	path := testutil.WriteFile(t, dir, "report.json", raw)

	info, err := NewReportParser().Parse(path)
	testutil.AssertNoError(t, err)

	if len(info.FileInfos) != 1 {
		t.Fatalf("Expected 1 file info, got %d", len(info.FileInfos))
	}
	d := info.FileInfos[0].Diagnostics[0]
	testutil.AssertEqual(t, domain.SeverityWarning, d.Severity)
	testutil.AssertEqual(t, "SemicolonPresence", d.Code)
}

func TestParse_ReadFailure(t *testing.T) {
	_, err := NewReportParser().Parse(filepath.Join(t.TempDir(), "missing.json"))
	testutil.AssertError(t, err)

	var domainErr domain.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatal("Expected a DomainError")
	}
	testutil.AssertEqual(t, domain.ErrCodeReportRead, domainErr.Code)
}

func TestParse_MalformedJSON(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "report.json", "{oops")

	_, err := NewReportParser().Parse(path)
	testutil.AssertError(t, err)

	var domainErr domain.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatal("Expected a DomainError")
	}
	testutil.AssertEqual(t, domain.ErrCodeReportParse, domainErr.Code)
}

func TestParse_SeverityOutOfRange(t *testing.T) {
	raw := `{"fileinfos": [{"path": "/a.bsl", "diagnostics": [{"severity": 9, "code": "X", "message": "m", "range": {"start": {"line": 0, "character": 0}, "end": {"line": 0, "character": 0}}}]}]}`
	path := testutil.WriteFile(t, t.TempDir(), "report.json", raw)

	// Severity drift is rejected at parse time, keeping the severity
	// table total over a closed enum
	_, err := NewReportParser().Parse(path)
	testutil.AssertError(t, err)
}

func TestParse_EmptyReport(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "report.json", `{"fileinfos": []}`)

	info, err := NewReportParser().Parse(path)
	testutil.AssertNoError(t, err)
	if len(info.FileInfos) != 0 {
		t.Errorf("Expected no file infos, got %d", len(info.FileInfos))
	}
}

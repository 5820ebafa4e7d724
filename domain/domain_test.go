package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

// Error tests

func TestDomainError_Error(t *testing.T) {
	// Without cause
	err := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
	}
	expected := "[TEST_ERROR] Test message"
	if err.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, err.Error())
	}

	// With cause
	cause := errors.New("underlying error")
	errWithCause := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
		Cause:   cause,
	}
	expectedWithCause := "[TEST_ERROR] Test message: underlying error"
	if errWithCause.Error() != expectedWithCause {
		t.Errorf("Expected '%s', got '%s'", expectedWithCause, errWithCause.Error())
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
		Cause:   cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the cause through Unwrap")
	}
}

func TestNewReportReadError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewReportReadError("can't read report", cause)

	var domainErr DomainError
	if !errors.As(err, &domainErr) {
		t.Fatal("Expected a DomainError")
	}
	if domainErr.Code != ErrCodeReportRead {
		t.Errorf("Expected code %s, got %s", ErrCodeReportRead, domainErr.Code)
	}
}

// Severity mapping tests

func TestMapSeverity_Exhaustive(t *testing.T) {
	tests := []struct {
		name     string
		input    DiagnosticSeverity
		expected IssueSeverity
	}{
		{"error maps to critical", SeverityError, IssueSeverityCritical},
		{"warning maps to major", SeverityWarning, IssueSeverityMajor},
		{"information maps to minor", SeverityInformation, IssueSeverityMinor},
		{"hint maps to info", SeverityHint, IssueSeverityInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapSeverity(tt.input); got != tt.expected {
				t.Errorf("MapSeverity(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}

	// Exactly the four protocol severities are mapped
	if len(issueSeverityByDiagnostic) != 4 {
		t.Errorf("Expected 4 mapped severities, got %d", len(issueSeverityByDiagnostic))
	}
}

func TestMapSeverity_UnmappedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MapSeverity should panic on an unmapped severity")
		}
	}()
	MapSeverity(DiagnosticSeverity(99))
}

func TestDiagnosticSeverity_String(t *testing.T) {
	tests := []struct {
		severity DiagnosticSeverity
		expected string
	}{
		{SeverityError, "Error"},
		{SeverityWarning, "Warning"},
		{SeverityInformation, "Information"},
		{SeverityHint, "Hint"},
		{DiagnosticSeverity(7), "DiagnosticSeverity(7)"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.expected {
			t.Errorf("String() = %s, want %s", got, tt.expected)
		}
	}
}

func TestDiagnosticSeverity_UnmarshalJSON(t *testing.T) {
	var s DiagnosticSeverity
	if err := json.Unmarshal([]byte("2"), &s); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s != SeverityWarning {
		t.Errorf("Expected SeverityWarning, got %v", s)
	}

	for _, raw := range []string{"0", "5", "-1", `"Error"`} {
		var invalid DiagnosticSeverity
		if err := json.Unmarshal([]byte(raw), &invalid); err == nil {
			t.Errorf("Expected error unmarshaling %s", raw)
		}
	}
}

// Report model tests

func TestAnalysisInfo_Unmarshal(t *testing.T) {
	raw := `{
		"fileinfos": [
			{
				"path": "/project/src/Module.bsl",
				"diagnostics": [
					{
						"range": {
							"start": {"line": 4, "character": 2},
							"end": {"line": 4, "character": 10}
						},
						"severity": 1,
						"code": "Typo",
						"message": "Possible typo"
					}
				]
			}
		]
	}`

	var info AnalysisInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(info.FileInfos) != 1 {
		t.Fatalf("Expected 1 file info, got %d", len(info.FileInfos))
	}
	fi := info.FileInfos[0]
	if fi.Path != "/project/src/Module.bsl" {
		t.Errorf("Unexpected path: %s", fi.Path)
	}
	if len(fi.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %d", len(fi.Diagnostics))
	}
	d := fi.Diagnostics[0]
	if d.Severity != SeverityError {
		t.Errorf("Expected SeverityError, got %v", d.Severity)
	}
	if d.Range.Start.Line != 4 || d.Range.End.Character != 10 {
		t.Errorf("Unexpected range: %+v", d.Range)
	}
	if d.Code != "Typo" || d.Message != "Possible typo" {
		t.Errorf("Unexpected code/message: %s / %s", d.Code, d.Message)
	}
}

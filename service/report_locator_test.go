package service

import (
	"path/filepath"
	"testing"

	"github.com/onec-tools/bslbridge/internal/testutil"
)

func TestLocate_LiteralPaths(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteFile(t, dir, "a.json", "{}")
	b := testutil.WriteFile(t, dir, "b.json", "{}")

	files, err := NewReportLocator().Locate([]string{a, b, a})
	testutil.AssertNoError(t, err)

	// Deduplicated, order preserved
	if len(files) != 2 || files[0] != a || files[1] != b {
		t.Errorf("Unexpected files: %v", files)
	}
}

func TestLocate_MissingLiteralSkipped(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteFile(t, dir, "a.json", "{}")

	files, err := NewReportLocator().Locate([]string{filepath.Join(dir, "missing.json"), a})
	testutil.AssertNoError(t, err)
	if len(files) != 1 || files[0] != a {
		t.Errorf("Unexpected files: %v", files)
	}
}

func TestLocate_Glob(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "bsl-ls-report1.json", "{}")
	testutil.WriteFile(t, dir, "nested/bsl-ls-report2.json", "{}")
	testutil.WriteFile(t, dir, "other.txt", "")

	files, err := NewReportLocator().Locate([]string{filepath.Join(dir, "**", "bsl-ls-report*.json")})
	testutil.AssertNoError(t, err)
	if len(files) != 2 {
		t.Fatalf("Expected 2 matches, got %v", files)
	}
}

func TestLocate_EmptyPatterns(t *testing.T) {
	files, err := NewReportLocator().Locate([]string{"", "*.nothing-here-xyz"})
	testutil.AssertNoError(t, err)
	if len(files) != 0 {
		t.Errorf("Expected no files, got %v", files)
	}
}

func TestLocate_DirectorySkipped(t *testing.T) {
	dir := t.TempDir()

	files, err := NewReportLocator().Locate([]string{dir})
	testutil.AssertNoError(t, err)
	if len(files) != 0 {
		t.Errorf("Expected no files for a directory path, got %v", files)
	}
}

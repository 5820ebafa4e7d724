package service

import (
	"path/filepath"
	"testing"

	"github.com/onec-tools/bslbridge/internal/testutil"
)

func TestCatalogLoad_Valid(t *testing.T) {
	raw := `{
		"rules": [
			{"code": "st1", "isActive": true, "isNeedForCertificate": false},
			{"code": "st2", "isActive": false, "isNeedForCertificate": true}
		]
	}`
	path := testutil.WriteFile(t, t.TempDir(), "acc.json", raw)

	rulesFile := NewCatalogLoader().Load(path)
	if rulesFile == nil {
		t.Fatal("Expected a parsed rules file")
	}
	if len(rulesFile.Rules) != 2 {
		t.Fatalf("Expected 2 rules, got %d", len(rulesFile.Rules))
	}

	first := rulesFile.Rules[0]
	testutil.AssertEqual(t, "st1", first.Code)
	testutil.AssertEqual(t, true, first.Active)
	testutil.AssertEqual(t, false, first.NeedForCertificate)
}

func TestCatalogLoad_MissingFile(t *testing.T) {
	if NewCatalogLoader().Load(filepath.Join(t.TempDir(), "acc.json")) != nil {
		t.Error("Expected nil for a missing catalog")
	}
}

func TestCatalogLoad_Malformed(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "acc.json", "not json at all")

	if NewCatalogLoader().Load(path) != nil {
		t.Error("Expected nil for a malformed catalog")
	}
}

func TestLoadRuleKeys(t *testing.T) {
	content := `# activated BSL Language Server rules
CanonicalSpelling

LineLength
`
	path := testutil.WriteFile(t, t.TempDir(), "bsl-rules.txt", content)

	keys, err := LoadRuleKeys(path)
	testutil.AssertNoError(t, err)

	if len(keys) != 2 || keys[0] != "CanonicalSpelling" || keys[1] != "LineLength" {
		t.Errorf("Unexpected keys: %v", keys)
	}
}

func TestLoadRuleKeys_MissingFile(t *testing.T) {
	_, err := LoadRuleKeys(filepath.Join(t.TempDir(), "missing.txt"))
	testutil.AssertError(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadParams_ValidYAML_PopulatesAllFields(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	content := `horizon_years: 4
financing_term: 3
upsell_rate: 0.07
tax_rate: 0.3
deductions_rate_by_year:
  "1": 0.12
  "2": 0.11
team_cost_by_year:
  "1": 25000`
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// When
	params, err := LoadParams(path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if params.HorizonYears != 4 {
		t.Errorf("expected HorizonYears=4, got %d", params.HorizonYears)
	}
	if params.FinancingTerm != 3 {
		t.Errorf("expected FinancingTerm=3, got %d", params.FinancingTerm)
	}
	if params.UpsellRate != 0.07 {
		t.Errorf("expected UpsellRate=0.07, got %f", params.UpsellRate)
	}
	if params.DeductionsRateByYear[1] != 0.12 {
		t.Errorf("expected year-1 deductions 0.12, got %f", params.DeductionsRateByYear[1])
	}
	// Years the file omits fall back to defaults.
	if params.DeductionsRateByYear[3] != 0.10 {
		t.Errorf("expected default year-3 deductions 0.10, got %f", params.DeductionsRateByYear[3])
	}
	if params.TeamCostByYear[1] != 25000 {
		t.Errorf("expected year-1 team cost 25000, got %f", params.TeamCostByYear[1])
	}
}

func TestLoadParams_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadParams(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadParams_OutOfRange_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	err := os.WriteFile(path, []byte("horizon_years: 9"), 0o644)
	if err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err = LoadParams(path)
	if err == nil {
		t.Fatal("expected an error for an out-of-range horizon")
	}
}

package domain

import "testing"

func TestRiskLevelForScore_BoundaryInclusive(t *testing.T) {
	cases := []struct {
		score int
		want  RiskLevel
	}{
		{0, RiskLow},
		{30, RiskLow},
		{31, RiskMedium},
		{60, RiskMedium},
		{61, RiskHigh},
		{85, RiskHigh},
		{86, RiskCritical},
		{100, RiskCritical},
	}

	for _, tc := range cases {
		if got := RiskLevelForScore(tc.score); got != tc.want {
			t.Errorf("RiskLevelForScore(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestAllFactors_Exhaustive(t *testing.T) {
	if len(AllFactors) != 9 {
		t.Fatalf("expected 9 factors, got %d", len(AllFactors))
	}

	seen := make(map[Factor]bool, len(AllFactors))
	for _, f := range AllFactors {
		if seen[f] {
			t.Errorf("duplicate factor %s", f)
		}
		seen[f] = true
		if !f.Valid() {
			t.Errorf("factor %s not valid against its own list", f)
		}
	}

	if Factor("notAFactor").Valid() {
		t.Error("unknown factor reported as valid")
	}
}

func TestPostingFields_IsEmpty(t *testing.T) {
	empty := &PostingFields{}
	if !empty.IsEmpty() {
		t.Error("zero-value PostingFields should be empty")
	}

	withText := &PostingFields{RawText: "vaga de emprego"}
	if withText.IsEmpty() {
		t.Error("PostingFields with raw text should not be empty")
	}

	withURL := &PostingFields{SourceURL: "https://example.com/vaga"}
	if withURL.IsEmpty() {
		t.Error("PostingFields with source URL should not be empty")
	}
}

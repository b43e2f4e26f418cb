package cycle

import (
	"math"
	"testing"
)

func TestSummarize_KnownProfile(t *testing.T) {
	profile := [][]float64{{0}, {2}, {4}}
	s := Summarize(profile, 3.14)

	if s.Period != 3.14 {
		t.Errorf("period = %g, want 3.14", s.Period)
	}
	if len(s.Vars) != 1 {
		t.Fatalf("expected 1 variable, got %d", len(s.Vars))
	}

	v := s.Vars[0]
	if v.Min != 0 || v.Max != 4 || v.Range != 4 {
		t.Errorf("min/max/range = %g/%g/%g, want 0/4/4", v.Min, v.Max, v.Range)
	}
	if v.Mean != 2 {
		t.Errorf("mean = %g, want 2", v.Mean)
	}
	wantRMS := math.Sqrt(8.0 / 3.0)
	if math.Abs(v.RMS-wantRMS) > 1e-12 {
		t.Errorf("rms = %g, want %g", v.RMS, wantRMS)
	}
}

func TestSummarize_MultiVariable(t *testing.T) {
	profile := [][]float64{{1, -2}, {3, -4}}
	s := Summarize(profile, 1.0)
	if len(s.Vars) != 2 {
		t.Fatalf("expected 2 variables, got %d", len(s.Vars))
	}
	if s.Vars[0].Mean != 2 || s.Vars[1].Mean != -3 {
		t.Errorf("means = %g, %g, want 2, -3", s.Vars[0].Mean, s.Vars[1].Mean)
	}
	if s.Vars[1].Range != 2 {
		t.Errorf("var 1 range = %g, want 2", s.Vars[1].Range)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, 2.0)
	if len(s.Vars) != 0 {
		t.Errorf("expected no metrics for empty profile, got %d", len(s.Vars))
	}
	if s.Period != 2.0 {
		t.Errorf("period must pass through unchanged, got %g", s.Period)
	}
}

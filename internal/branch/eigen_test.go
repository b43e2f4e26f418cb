package branch

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNormalizeEigen_Absent(t *testing.T) {
	if got := NormalizeEigen(nil); len(got) != 0 {
		t.Errorf("nil input: got %v, want empty", got)
	}
	if got := NormalizeEigen(json.RawMessage("null")); len(got) != 0 {
		t.Errorf("null input: got %v, want empty", got)
	}
	if got := NormalizeEigen(json.RawMessage("[]")); len(got) != 0 {
		t.Errorf("empty array: got %v, want empty", got)
	}
}

func TestNormalizeEigen_FlatPairs(t *testing.T) {
	got := NormalizeEigen(json.RawMessage("[-1.5, 0.25, 2.0, -3.0]"))
	if len(got) != 2 {
		t.Fatalf("expected 2 eigenvalues, got %d", len(got))
	}
	if got[0] != complex(-1.5, 0.25) || got[1] != complex(2.0, -3.0) {
		t.Errorf("got %v", got)
	}
}

func TestNormalizeEigen_Records(t *testing.T) {
	got := NormalizeEigen(json.RawMessage(`[{"re": -1, "im": 0}, {"re": 0.5, "im": -2}]`))
	if len(got) != 2 {
		t.Fatalf("expected 2 eigenvalues, got %d", len(got))
	}
	if got[0] != complex(-1, 0) || got[1] != complex(0.5, -2) {
		t.Errorf("got %v", got)
	}
}

func TestNormalizeEigen_MissingComponentsBecomeNaN(t *testing.T) {
	// A record missing a component keeps its slot so downstream code
	// can still report the eigenvalue count.
	got := NormalizeEigen(json.RawMessage(`[{"re": 1.0}, {"im": 2.0}]`))
	if len(got) != 2 {
		t.Fatalf("expected 2 eigenvalues, got %d", len(got))
	}
	if real(got[0]) != 1.0 || !math.IsNaN(imag(got[0])) {
		t.Errorf("got[0] = %v, want 1+NaNi", got[0])
	}
	if !math.IsNaN(real(got[1])) || imag(got[1]) != 2.0 {
		t.Errorf("got[1] = %v, want NaN+2i", got[1])
	}

	// Odd-length flat list: the trailing real part keeps its slot too.
	got = NormalizeEigen(json.RawMessage("[1.0, 2.0, 3.0]"))
	if len(got) != 2 {
		t.Fatalf("expected 2 eigenvalues, got %d", len(got))
	}
	if real(got[1]) != 3.0 || !math.IsNaN(imag(got[1])) {
		t.Errorf("got[1] = %v, want 3+NaNi", got[1])
	}
}

func TestNormalizeEigen_Malformed(t *testing.T) {
	cases := []string{`"oops"`, `42`, `{"re": 1}`, `not json`}
	for _, c := range cases {
		if got := NormalizeEigen(json.RawMessage(c)); len(got) != 0 {
			t.Errorf("input %q: got %v, want empty", c, got)
		}
	}

	// Junk elements inside a flat list degrade to NaN, not a panic or
	// a shorter list.
	got := NormalizeEigen(json.RawMessage(`[1.0, "x"]`))
	if len(got) != 1 {
		t.Fatalf("expected 1 eigenvalue, got %d", len(got))
	}
	if real(got[0]) != 1.0 || !math.IsNaN(imag(got[0])) {
		t.Errorf("got %v, want 1+NaNi", got[0])
	}
}

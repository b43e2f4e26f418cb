package branch

import (
	"encoding/json"
	"math"
)

// NormalizeEigen canonicalizes the solver's stored eigen representation.
// Accepted shapes: absent/null, a flat list of alternating real and
// imaginary parts, or a list of {re, im} records. Anything else yields
// an empty result. Missing or unparsable components become NaN instead
// of being dropped, so the count of eigenvalues is preserved for
// display.
func NormalizeEigen(raw json.RawMessage) []complex128 {
	if len(raw) == 0 {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}
	if len(elems) == 0 {
		return nil
	}

	var rec struct {
		Re *float64 `json:"re"`
		Im *float64 `json:"im"`
	}
	if err := json.Unmarshal(elems[0], &rec); err == nil && (rec.Re != nil || rec.Im != nil) {
		out := make([]complex128, 0, len(elems))
		for _, e := range elems {
			rec.Re, rec.Im = nil, nil
			re, im := math.NaN(), math.NaN()
			if err := json.Unmarshal(e, &rec); err == nil {
				if rec.Re != nil {
					re = *rec.Re
				}
				if rec.Im != nil {
					im = *rec.Im
				}
			}
			out = append(out, complex(re, im))
		}
		return out
	}

	// Flat alternating re/im pairs. An odd trailing real part keeps its
	// slot with a NaN imaginary component.
	out := make([]complex128, 0, (len(elems)+1)/2)
	for i := 0; i < len(elems); i += 2 {
		re := scalarOrNaN(elems[i])
		im := math.NaN()
		if i+1 < len(elems) {
			im = scalarOrNaN(elems[i+1])
		}
		out = append(out, complex(re, im))
	}
	return out
}

func scalarOrNaN(raw json.RawMessage) float64 {
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return math.NaN()
	}
	return v
}

package analysis

import (
	"math"
	"sort"
)

// machine epsilon for float64
var epsilon = math.Nextafter(1, 2) - 1

// KaplanYorke estimates the attractor dimension from a Lyapunov
// exponent spectrum. The exponents may arrive in any order.
//
// Algorithm:
//  1. Sort descending.
//  2. Accumulate partial sums from the largest exponent down while they
//     stay non-negative; k counts the exponents absorbed.
//  3. At the first exponent that would drive the sum negative, the
//     dimension is k + S_k/|λ_{k+1}|.
//  4. If the running sum never goes negative the estimate saturates at
//     the spectrum size.
//
// ok is false for an empty spectrum: "not computable" is distinct from
// a computed zero. A near-zero divisor short-circuits to exactly k
// instead of propagating a near-infinite value.
func KaplanYorke(exponents []float64) (dim float64, ok bool) {
	if len(exponents) == 0 {
		return 0, false
	}

	sorted := make([]float64, len(exponents))
	copy(sorted, exponents)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	partial := 0.0
	k := 0
	for _, lambda := range sorted {
		if partial+lambda < 0 {
			if math.Abs(lambda) <= epsilon {
				return float64(k), true
			}
			return float64(k) + partial/math.Abs(lambda), true
		}
		partial += lambda
		k++
	}
	return float64(k), true
}

// Package cycle unpacks limit-cycle collocation states into time
// profiles and reduces them to per-variable summary metrics.
package cycle

import "math"

// ExtractProfile unpacks a flattened boundary-value collocation state
// for a system of dimension dim on an ntst x ncol mesh. The layout is
// mesh-first: ntst*ncol consecutive blocks of dim state values followed
// by one trailing scalar, the period. A vector of any other length
// (stale mesh metadata while the system is being edited) yields an
// empty profile and a NaN period rather than an error.
func ExtractProfile(state []float64, dim, ntst, ncol int) (profile [][]float64, period float64) {
	if dim <= 0 || ntst <= 0 || ncol <= 0 {
		return nil, math.NaN()
	}
	n := ntst * ncol
	if len(state) != n*dim+1 {
		return nil, math.NaN()
	}

	profile = make([][]float64, n)
	for m := 0; m < n; m++ {
		row := make([]float64, dim)
		copy(row, state[m*dim:(m+1)*dim])
		profile[m] = row
	}
	return profile, state[n*dim]
}

// Series extracts one variable's values across the profile, for
// plotting. Returns nil when the variable index is out of range.
func Series(profile [][]float64, varIndex int) []float64 {
	if len(profile) == 0 || varIndex < 0 || varIndex >= len(profile[0]) {
		return nil
	}
	out := make([]float64, len(profile))
	for i, row := range profile {
		out[i] = row[varIndex]
	}
	return out
}

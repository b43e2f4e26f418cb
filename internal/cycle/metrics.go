package cycle

import "math"

// VarStats summarizes one state variable over a cycle profile.
type VarStats struct {
	Min   float64
	Max   float64
	Range float64
	Mean  float64
	RMS   float64
}

// Summary is the per-variable reduction of a limit-cycle profile plus
// the period carried through unchanged.
type Summary struct {
	Period float64
	Vars   []VarStats
}

// Summarize reduces a profile to min/max/range/mean and RMS amplitude
// per variable. An empty profile yields an empty metrics list, never a
// division by zero.
func Summarize(profile [][]float64, period float64) Summary {
	s := Summary{Period: period}
	if len(profile) == 0 {
		return s
	}

	dim := len(profile[0])
	s.Vars = make([]VarStats, dim)
	n := float64(len(profile))

	for v := 0; v < dim; v++ {
		st := VarStats{Min: math.Inf(1), Max: math.Inf(-1)}
		sum := 0.0
		for _, row := range profile {
			x := row[v]
			if x < st.Min {
				st.Min = x
			}
			if x > st.Max {
				st.Max = x
			}
			sum += x
		}
		st.Mean = sum / n
		st.Range = st.Max - st.Min

		dev := 0.0
		for _, row := range profile {
			d := row[v] - st.Mean
			dev += d * d
		}
		st.RMS = math.Sqrt(dev / n)
		s.Vars[v] = st
	}
	return s
}

package branch

// Reconstruct expands a point's stored parameter value(s) back into a
// full parameter vector over the system's base values. Two-parameter
// curves override both of their named entries; every other branch kind
// overrides only the branch's continuation parameter. A name missing
// from the list (the system was edited since the branch was grown) is
// skipped silently rather than treated as an error.
func Reconstruct(names []string, base []float64, b *Branch, p *Point) []float64 {
	out := make([]float64, len(base))
	copy(out, base)

	if p1, p2, ok := CurveParams(b.Data.Meta); ok {
		setParam(names, out, p1, p.ParamValue)
		if p.Param2Value != nil {
			setParam(names, out, p2, *p.Param2Value)
		}
		return out
	}

	setParam(names, out, b.Parameter, p.ParamValue)
	return out
}

func setParam(names []string, values []float64, name string, v float64) {
	for i, n := range names {
		if n == name {
			if i < len(values) {
				values[i] = v
			}
			return
		}
	}
}

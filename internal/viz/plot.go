package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/biflab/internal/branch"
)

// ProfilePlot charts one state variable over a limit-cycle profile.
// Returns "" for an empty profile or out-of-range variable.
func ProfilePlot(profile [][]float64, varIndex int, varName string, width, height int) string {
	if len(profile) == 0 || varIndex < 0 || varIndex >= len(profile[0]) {
		return ""
	}
	data := make([]float64, len(profile))
	for i, row := range profile {
		data[i] = row[varIndex]
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("%s over one period", varName)),
	)
}

// BranchPlot charts a state component against point order along the
// branch, walking the points in logical order so bidirectionally grown
// branches read as one curve.
func BranchPlot(b *branch.Branch, component int, width, height int) string {
	indices := branch.EnsureIndices(&b.Data)
	order := branch.SortedOrder(indices)
	if len(order) == 0 {
		return ""
	}

	data := make([]float64, 0, len(order))
	for _, pos := range order {
		st := b.Data.Points[pos].State
		if component < 0 || component >= len(st) {
			return ""
		}
		data = append(data, st[component])
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("x%d along %s", component, b.Parameter)),
	)
}

// ParamPlot charts the continuation parameter in logical order, which
// makes folds show up as turning points.
func ParamPlot(b *branch.Branch, width, height int) string {
	indices := branch.EnsureIndices(&b.Data)
	order := branch.SortedOrder(indices)
	if len(order) == 0 {
		return ""
	}
	data := make([]float64, len(order))
	for i, pos := range order {
		data[i] = b.Data.Points[pos].ParamValue
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(b.Parameter+" along the branch"),
	)
}

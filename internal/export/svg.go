package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/biflab/internal/branch"
)

// BranchSVG renders a branch diagram as an SVG document: the
// continuation parameter on the x axis, one state component on the y
// axis, points connected in logical order, and flagged bifurcation
// points marked. Returns "" for an empty branch or an out-of-range
// component.
func BranchSVG(b *branch.Branch, component int, width, height float64) string {
	indices := branch.EnsureIndices(&b.Data)
	order := branch.SortedOrder(indices)
	if len(order) == 0 {
		return ""
	}

	xs := make([]float64, 0, len(order))
	ys := make([]float64, 0, len(order))
	for _, pos := range order {
		pt := &b.Data.Points[pos]
		if component < 0 || component >= len(pt.State) {
			return ""
		}
		xs = append(xs, pt.ParamValue)
		ys = append(ys, pt.State[component])
	}

	minX, maxX := bounds(xs)
	minY, maxY := bounds(ys)
	const margin = 20.0
	sx := func(v float64) float64 {
		return margin + (v-minX)/(maxX-minX)*(width-2*margin)
	}
	sy := func(v float64) float64 {
		return height - margin - (v-minY)/(maxY-minY)*(height-2*margin)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	sb.WriteString(`<polyline fill="none" stroke="#00ff88" stroke-width="1.5" points="`)
	for i := range xs {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", sx(xs[i]), sy(ys[i])))
	}
	sb.WriteString("\"/>\n")

	flagged := make(map[int]bool, len(b.Data.Bifurcations))
	for _, pos := range b.Data.Bifurcations {
		flagged[pos] = true
	}
	for i, pos := range order {
		if !flagged[pos] {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="#ff4444"/>
<text x="%.1f" y="%.1f" fill="#ff4444" font-size="10">%d</text>
`, sx(xs[i]), sy(ys[i]), sx(xs[i])+6, sy(ys[i])-6, indices[pos]))
	}

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#888899" font-size="11">%s</text>
</svg>
`, width/2-margin, height-4, b.Parameter))
	return sb.String()
}

func bounds(vs []float64) (min, max float64) {
	min, max = vs[0], vs[0]
	for _, v := range vs {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		max = min + 1
	}
	return min, max
}

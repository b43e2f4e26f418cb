package stability

import "fmt"

// Label formats a short annotation for a point given its logical index
// along the branch. Bifurcation tags come first so they stand out in
// point listings; plain stability labels and None fall back to a generic
// point annotation.
func Label(logicalIndex int, kind Kind) string {
	switch kind {
	case None:
		return fmt.Sprintf("point %d", logicalIndex)
	case Stable, Unstable:
		return fmt.Sprintf("point %d (%s)", logicalIndex, kind)
	default:
		return fmt.Sprintf("%s at point %d", kind, logicalIndex)
	}
}

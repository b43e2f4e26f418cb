package branch

import "sort"

// EnsureIndices returns one signed logical index per point, in storage
// order. When the snapshot already carries indices (one per point) they
// are passed through; otherwise storage order is assumed logical and
// 0, 1, 2, ... is synthesized. The points array is never reordered.
func EnsureIndices(d *Data) []int {
	if len(d.Indices) == len(d.Points) && len(d.Points) > 0 {
		out := make([]int, len(d.Indices))
		copy(out, d.Indices)
		return out
	}
	out := make([]int, len(d.Points))
	for i := range out {
		out[i] = i
	}
	return out
}

// SortedOrder returns a permutation of storage positions such that the
// logical indices are non-decreasing along it. The sort is stable:
// points sharing a logical index keep their storage order.
func SortedOrder(indices []int) []int {
	order := make([]int, len(indices))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return indices[order[a]] < indices[order[b]]
	})
	return order
}

// FindLogical scans for the storage position holding the given logical
// index. The indices slice is in storage order and need not be sorted.
func FindLogical(indices []int, target int) (pos int, ok bool) {
	for i, idx := range indices {
		if idx == target {
			return i, true
		}
	}
	return 0, false
}

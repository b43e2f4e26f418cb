package branch

import "testing"

func TestEnsureIndices_PassThrough(t *testing.T) {
	d := &Data{
		Points:  []Point{{}, {}, {}, {}},
		Indices: []int{0, 1, -1, -2},
	}
	got := EnsureIndices(d)
	want := []int{0, 1, -1, -2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}

	// returned slice must be a copy, not an alias
	got[0] = 99
	if d.Indices[0] != 0 {
		t.Error("EnsureIndices returned an alias of the stored indices")
	}
}

func TestEnsureIndices_Synthesized(t *testing.T) {
	d := &Data{Points: []Point{{}, {}, {}}}
	got := EnsureIndices(d)
	for i, idx := range got {
		if idx != i {
			t.Errorf("position %d: got %d, want %d", i, idx, i)
		}
	}
}

func TestEnsureIndices_LengthMismatch(t *testing.T) {
	// A stale indices array that no longer matches the points must be
	// ignored in favor of storage order.
	d := &Data{
		Points:  []Point{{}, {}, {}},
		Indices: []int{0, 1},
	}
	got := EnsureIndices(d)
	if len(got) != 3 {
		t.Fatalf("expected 3 indices, got %d", len(got))
	}
	for i, idx := range got {
		if idx != i {
			t.Errorf("position %d: got %d, want %d", i, idx, i)
		}
	}
}

func TestSortedOrder_Bidirectional(t *testing.T) {
	// Forward growth 0..2 then backward growth appended with
	// decreasing negative indices, as the engine stores it.
	indices := []int{0, 1, 2, -1, -2}
	order := SortedOrder(indices)
	want := []int{4, 3, 0, 1, 2}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %d, want %d", i, order[i], want[i])
		}
	}
}

func TestSortedOrder_Stable(t *testing.T) {
	indices := []int{1, 0, 1, 0, 1}
	order := SortedOrder(indices)
	want := []int{1, 3, 0, 2, 4}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %d, want %d (equal indices must keep storage order)", i, order[i], want[i])
		}
	}
}

func TestSortedOrder_Empty(t *testing.T) {
	if order := SortedOrder(nil); len(order) != 0 {
		t.Errorf("expected empty order, got %v", order)
	}
}

func TestFindLogical(t *testing.T) {
	indices := []int{0, 1, 2, -1, -2}

	pos, ok := FindLogical(indices, -2)
	if !ok || pos != 4 {
		t.Errorf("FindLogical(-2) = %d, %v, want 4, true", pos, ok)
	}

	if _, ok := FindLogical(indices, 7); ok {
		t.Error("expected not-found for absent logical index")
	}

	if _, ok := FindLogical(nil, 0); ok {
		t.Error("expected not-found on empty indices")
	}
}

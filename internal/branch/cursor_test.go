package branch

import "testing"

func TestCursor_RoundTrip(t *testing.T) {
	indices := []int{0, 1, 2, 3, -1, -2}
	c := NewCursor(indices)

	c.Start()
	first := c.Pos()
	if indices[first] != -2 {
		t.Fatalf("Start should land on logical -2, got %d", indices[first])
	}

	for i := 0; i < len(indices)-1; i++ {
		c.Next()
	}
	if !c.HasPrev() || c.HasNext() {
		t.Error("after N-1 Next calls the cursor should sit at the end")
	}
	if indices[c.Pos()] != 3 {
		t.Errorf("End of walk should be logical 3, got %d", indices[c.Pos()])
	}

	for i := 0; i < len(indices)-1; i++ {
		c.Prev()
	}
	if c.Pos() != first {
		t.Errorf("round trip did not return to start: %d vs %d", c.Pos(), first)
	}
}

func TestCursor_Empty(t *testing.T) {
	c := NewCursor(nil)
	if c.Pos() != -1 {
		t.Errorf("empty cursor Pos = %d, want -1", c.Pos())
	}
	if c.HasNext() || c.HasPrev() {
		t.Error("empty cursor should disable both motions")
	}
	c.Next()
	c.Prev()
	c.End()
	if c.Pos() != -1 {
		t.Error("motions on an empty cursor must stay disabled")
	}
}

func TestCursor_SinglePoint(t *testing.T) {
	c := NewCursor([]int{0})
	c.Start()
	start := c.Pos()
	c.End()
	if c.Pos() != start {
		t.Error("single point: Start and End must coincide")
	}
	if c.HasNext() || c.HasPrev() {
		t.Error("single point: Next and Prev must be disabled")
	}
}

func TestCursor_ClampsAtEnds(t *testing.T) {
	c := NewCursor([]int{0, 1})
	c.Prev()
	if c.Rank() != 0 {
		t.Error("Prev at start should be a no-op")
	}
	c.End()
	c.Next()
	if c.Rank() != 1 {
		t.Error("Next at end should be a no-op")
	}
}

package branch

// Cursor walks a branch in logical order. It holds a position within
// the sorted order, not a storage position: Pos translates between the
// two. The zero-point and single-point edge cases disable the motions
// that make no sense there.
type Cursor struct {
	order []int
	pos   int
}

// NewCursor builds a cursor over the given logical indices (storage
// order), starting at the lowest logical index.
func NewCursor(indices []int) *Cursor {
	return &Cursor{order: SortedOrder(indices)}
}

// Len returns the number of navigable points.
func (c *Cursor) Len() int { return len(c.order) }

// Pos returns the storage position under the cursor, or -1 when the
// branch is empty.
func (c *Cursor) Pos() int {
	if len(c.order) == 0 {
		return -1
	}
	return c.order[c.pos]
}

// Rank returns the cursor's position within logical order (0-based).
func (c *Cursor) Rank() int { return c.pos }

func (c *Cursor) HasNext() bool { return c.pos < len(c.order)-1 }
func (c *Cursor) HasPrev() bool { return c.pos > 0 }

// Start moves to the lowest logical index.
func (c *Cursor) Start() { c.pos = 0 }

// End moves to the highest logical index.
func (c *Cursor) End() {
	if len(c.order) > 0 {
		c.pos = len(c.order) - 1
	}
}

// Next advances one step in logical order; no-op at the end.
func (c *Cursor) Next() {
	if c.HasNext() {
		c.pos++
	}
}

// Prev steps back one position in logical order; no-op at the start.
func (c *Cursor) Prev() {
	if c.HasPrev() {
		c.pos--
	}
}

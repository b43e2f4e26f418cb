package viz

import "strings"

// Braille patterns pack 2x4 dots per cell:
// 1 4
// 2 5
// 3 6
// 7 8
// Unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille pixel grid with 2x4 sub-pixels per character
// cell, used for phase-plane projections.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y). Sub-pixel space is
// (Width*2) x (Height*4); out-of-range coordinates are dropped.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Line draws from (x0, y0) to (x1, y1) with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// PhasePlot projects a cycle profile onto the (xVar, yVar) plane and
// draws the closed orbit. Returns "" for degenerate input.
func PhasePlot(profile [][]float64, xVar, yVar, width, height int) string {
	if len(profile) < 2 || width <= 0 || height <= 0 {
		return ""
	}
	dim := len(profile[0])
	if xVar < 0 || xVar >= dim || yVar < 0 || yVar >= dim {
		return ""
	}

	minX, maxX := profile[0][xVar], profile[0][xVar]
	minY, maxY := profile[0][yVar], profile[0][yVar]
	for _, row := range profile {
		if row[xVar] < minX {
			minX = row[xVar]
		}
		if row[xVar] > maxX {
			maxX = row[xVar]
		}
		if row[yVar] < minY {
			minY = row[yVar]
		}
		if row[yVar] > maxY {
			maxY = row[yVar]
		}
	}
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		maxY = minY + 1
	}

	c := NewCanvas(width, height)
	subW := float64(width*2 - 1)
	subH := float64(height*4 - 1)
	px := func(row []float64) (int, int) {
		x := int((row[xVar] - minX) / (maxX - minX) * subW)
		y := int(subH - (row[yVar]-minY)/(maxY-minY)*subH)
		return x, y
	}

	x0, y0 := px(profile[0])
	for i := 1; i <= len(profile); i++ {
		// wrap around to close the orbit
		x1, y1 := px(profile[i%len(profile)])
		c.Line(x0, y0, x1, y1)
		x0, y0 = x1, y1
	}
	return c.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package grid

import "fmt"

// Build allocates a rows×rows Grid of Empty cells.
// dimension is passed through untouched for renderers.
// Returns ErrBadRows if rows ≤ 0 and ErrBadDimension if dimension < 0.
// Complexity: O(rows²) time and memory.
func Build(rows, dimension int) (*Grid, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRows, rows)
	}
	if dimension < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimension, dimension)
	}
	cells := make([][]*Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]*Cell, rows)
		for c := 0; c < rows; c++ {
			cells[r][c] = &Cell{row: r, col: c}
		}
	}

	return &Grid{rows: rows, dimension: dimension, cells: cells}, nil
}

// Rows returns the number of rows (and columns).
func (g *Grid) Rows() int { return g.rows }

// Dimension returns the display size the grid was built with.
func (g *Grid) Dimension() int { return g.dimension }

// Gap returns the display size of one cell, dimension / rows.
func (g *Grid) Gap() int { return g.dimension / g.rows }

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.rows
}

// At returns the cell at (row, col) or ErrOutOfBounds.
func (g *Grid) At(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.rows)
	}
	return g.cells[row][col], nil
}

// MustAt is At for coordinates known to be valid; it panics otherwise.
func (g *Grid) MustAt(row, col int) *Cell {
	c, err := g.At(row, col)
	if err != nil {
		panic(err)
	}
	return c
}

// Contains reports whether c is one of this grid's cells (pointer identity).
func (g *Grid) Contains(c *Cell) bool {
	if c == nil || !g.InBounds(c.row, c.col) {
		return false
	}
	return g.cells[c.row][c.col] == c
}

// Cells calls fn for every cell in row-major order.
func (g *Grid) Cells(fn func(c *Cell)) {
	for _, row := range g.cells {
		for _, c := range row {
			fn(c)
		}
	}
}

// Count returns the number of cells in state s.
func (g *Grid) Count(s State) int {
	n := 0
	g.Cells(func(c *Cell) {
		if c.state == s {
			n++
		}
	})
	return n
}

// NeighborsOf returns the in-bounds, non-obstacle orthogonal neighbors of c
// in the order down, up, right, left, and caches the result on c.
// Complexity: O(1).
func (g *Grid) NeighborsOf(c *Cell) []*Cell {
	out := make([]*Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		r, k := c.row+d[0], c.col+d[1]
		if !g.InBounds(r, k) {
			continue
		}
		n := g.cells[r][k]
		if n.IsObstacle() {
			continue
		}
		out = append(out, n)
	}
	c.neighbors = out

	return out
}

// UpdateNeighbors refreshes the cached neighbor list of every cell.
func (g *Grid) UpdateNeighbors() {
	g.Cells(func(c *Cell) { g.NeighborsOf(c) })
}

// Clear returns a freshly built grid with the same dimensions and all
// cells Empty. The receiver is left untouched.
func (g *Grid) Clear() *Grid {
	fresh, _ := Build(g.rows, g.dimension) // shape already validated

	return fresh
}

// Reset sets every cell whose state is one of states back to Empty.
// With no arguments it resets the search states Frontier, Visited and Path.
func (g *Grid) Reset(states ...State) {
	if len(states) == 0 {
		states = []State{Frontier, Visited, Path}
	}
	var mask [len(stateNames)]bool
	for _, s := range states {
		if int(s) < len(mask) {
			mask[s] = true
		}
	}
	g.Cells(func(c *Cell) {
		if int(c.state) < len(mask) && mask[c.state] {
			c.state = Empty
		}
	})
}

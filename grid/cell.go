package grid

// Row returns the cell's row index.
func (c *Cell) Row() int { return c.row }

// Col returns the cell's column index.
func (c *Cell) Col() int { return c.col }

// Coord returns the cell's position.
func (c *Cell) Coord() Coord { return Coord{Row: c.row, Col: c.col} }

// State returns the cell's current state.
func (c *Cell) State() State { return c.state }

// Neighbors returns the neighbor list computed by the last NeighborsOf or
// UpdateNeighbors call for this cell; nil before the first computation.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

// IsObstacle reports whether the cell blocks movement.
func (c *Cell) IsObstacle() bool { return c.state == Obstacle }

// IsStart reports whether the cell holds the Start role.
func (c *Cell) IsStart() bool { return c.state == Start }

// IsEnd reports whether the cell holds the End role.
func (c *Cell) IsEnd() bool { return c.state == End }

// IsRole reports whether the cell holds the Start or End role.
func (c *Cell) IsRole() bool { return c.state == Start || c.state == End }

// SetState assigns s unconditionally. This is the caller-side mutator used
// to place roles and obstacles or to reset a cell.
func (c *Cell) SetState(s State) { c.state = s }

// Reset returns the cell to Empty.
func (c *Cell) Reset() { c.state = Empty }

// Mark applies a search-side state (Frontier, Visited, Path) without
// overwriting a Start or End role. It reports whether the state changed.
func (c *Cell) Mark(s State) bool {
	if c.IsRole() || c.state == s {
		return false
	}
	c.state = s
	return true
}

// String formats the cell as "(row,col):state".
func (c *Cell) String() string {
	return "(" + c.Coord().String() + "):" + c.state.String()
}

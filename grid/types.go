package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadRows indicates a non-positive row count.
	ErrBadRows = errors.New("grid: rows must be positive")
	// ErrBadDimension indicates a negative display dimension.
	ErrBadDimension = errors.New("grid: dimension must be non-negative")
	// ErrOutOfBounds indicates a (row, col) pair outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
	// ErrEmptyGrid indicates ASCII input with no rows.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row")
	// ErrNotSquare indicates ASCII rows whose length differs from the row count.
	ErrNotSquare = errors.New("grid: input grid must be square")
	// ErrBadRune indicates an unknown character in ASCII input.
	ErrBadRune = errors.New("grid: unknown cell rune")
	// ErrDuplicateRole indicates more than one start or end cell in ASCII input.
	ErrDuplicateRole = errors.New("grid: start and end must appear at most once")
)

// State is the lifecycle state of a Cell.
type State uint8

const (
	// Empty is a free, untouched cell.
	Empty State = iota
	// Obstacle is impassable and never appears in a neighbor list.
	Obstacle
	// Start is the search origin role.
	Start
	// End is the search goal role.
	End
	// Frontier marks a cell discovered but not yet expanded.
	Frontier
	// Visited marks a cell whose expansion is complete.
	Visited
	// Path marks a cell on the reconstructed shortest path.
	Path
)

var stateNames = [...]string{
	Empty:    "empty",
	Obstacle: "obstacle",
	Start:    "start",
	End:      "end",
	Frontier: "frontier",
	Visited:  "visited",
	Path:     "path",
}

// String returns the lower-case name of s.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// ParseState is the inverse of State.String.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return Empty, fmt.Errorf("grid: unknown state %q", name)
}

// MarshalText encodes s by name, so YAML and JSON carry readable states.
func (s State) MarshalText() ([]byte, error) {
	if int(s) >= len(stateNames) {
		return nil, fmt.Errorf("grid: cannot marshal %v", s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name.
func (s *State) UnmarshalText(b []byte) error {
	v, err := ParseState(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Coord is a (row, col) position on the grid.
type Coord struct {
	Row int `yaml:"row" json:"row"`
	Col int `yaml:"col" json:"col"`
}

// String formats c as "row,col".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Cell is a single grid position. Cells are created by Build and owned by
// their Grid; identity is the pointer.
type Cell struct {
	row, col  int
	state     State
	neighbors []*Cell
}

// Grid is a square rows×rows board of Cells. Its shape is fixed at
// construction; only Cell states change afterwards.
//
// dimension is the display size of the whole board (pixels or terminal
// columns). It is carried for renderers and never read by search code.
type Grid struct {
	rows      int
	dimension int
	cells     [][]*Cell
}

// neighborOffsets lists (dRow, dCol) in expansion order: down, up, right, left.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

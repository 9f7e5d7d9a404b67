// Package trace records the cell state transitions of a search so they can
// be stored, compared and replayed onto a fresh grid.
//
// A Recorder plugs into astar.WithOnStep and astar.Reconstruct; the
// resulting Trace is a complete, ordered account of what a visualizer
// would have drawn. Two runs of the same configuration produce Equal traces.
package trace

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/astarviz/astar"
	"github.com/katalvlaran/astarviz/grid"
)

// ErrRowsMismatch indicates a replay onto a grid of a different size.
var ErrRowsMismatch = errors.New("trace: grid size does not match trace")

// Step is one observed transition: the cell at (Row, Col) entered State.
type Step struct {
	Seq   int        `yaml:"seq" json:"seq"`
	Row   int        `yaml:"row" json:"row"`
	Col   int        `yaml:"col" json:"col"`
	State grid.State `yaml:"state" json:"state"`
}

// Trace is the full record of one search on one board.
type Trace struct {
	Rows      int          `yaml:"rows" json:"rows"`
	Start     grid.Coord   `yaml:"start" json:"start"`
	End       grid.Coord   `yaml:"end" json:"end"`
	Obstacles []grid.Coord `yaml:"obstacles,omitempty" json:"obstacles,omitempty"`
	Outcome   string       `yaml:"outcome" json:"outcome"`
	Cost      int          `yaml:"cost" json:"cost"`
	Steps     []Step       `yaml:"steps" json:"steps"`
}

// Recorder accumulates Steps. Its OnStep method is the observation hook.
// The zero value is ready to use.
type Recorder struct {
	steps []Step
}

// OnStep appends the current state of c.
func (r *Recorder) OnStep(c *grid.Cell) {
	r.steps = append(r.steps, Step{Seq: len(r.steps), Row: c.Row(), Col: c.Col(), State: c.State()})
}

// Steps returns the recorded steps.
func (r *Recorder) Steps() []Step { return r.steps }

// Len returns the number of recorded steps.
func (r *Recorder) Len() int { return len(r.steps) }

// Reset discards the recorded steps.
func (r *Recorder) Reset() { r.steps = r.steps[:0] }

// Trace packages the recorded steps with the board layout and result.
// obstacles is the list of obstacle cells at search time, in row-major order.
func (r *Recorder) Trace(g *grid.Grid, res *astar.Result) *Trace {
	tr := &Trace{
		Rows:    g.Rows(),
		Start:   res.Start.Coord(),
		End:     res.End.Coord(),
		Outcome: res.Outcome.String(),
		Cost:    res.Cost,
		Steps:   slices.Clone(r.steps),
	}
	g.Cells(func(c *grid.Cell) {
		if c.IsObstacle() {
			tr.Obstacles = append(tr.Obstacles, c.Coord())
		}
	})
	return tr
}

// Layout places the trace's start, end and obstacles on g, which must be
// empty and of the same size.
func (t *Trace) Layout(g *grid.Grid) error {
	if g.Rows() != t.Rows {
		return fmt.Errorf("%w: grid has %d rows, trace %d", ErrRowsMismatch, g.Rows(), t.Rows)
	}
	for _, o := range t.Obstacles {
		c, err := g.At(o.Row, o.Col)
		if err != nil {
			return fmt.Errorf("trace: obstacle: %w", err)
		}
		c.SetState(grid.Obstacle)
	}
	for _, role := range []struct {
		at grid.Coord
		s  grid.State
	}{{t.Start, grid.Start}, {t.End, grid.End}} {
		c, err := g.At(role.at.Row, role.at.Col)
		if err != nil {
			return fmt.Errorf("trace: %v: %w", role.s, err)
		}
		c.SetState(role.s)
	}
	return nil
}

// Replay lays out t on g and applies every step in order, calling fn
// (may be nil) after each one. The grid ends in the state the original
// search left behind.
func Replay(g *grid.Grid, t *Trace, fn func(c *grid.Cell)) error {
	if err := t.Layout(g); err != nil {
		return err
	}
	for _, st := range t.Steps {
		c, err := g.At(st.Row, st.Col)
		if err != nil {
			return fmt.Errorf("trace: step %d: %w", st.Seq, err)
		}
		c.SetState(st.State)
		if fn != nil {
			fn(c)
		}
	}
	return nil
}

// Equal reports whether two traces describe the same board, result and
// step sequence.
func Equal(a, b *Trace) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Rows == b.Rows &&
		a.Start == b.Start &&
		a.End == b.End &&
		a.Outcome == b.Outcome &&
		a.Cost == b.Cost &&
		slices.Equal(a.Obstacles, b.Obstacles) &&
		slices.Equal(a.Steps, b.Steps)
}

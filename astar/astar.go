package astar

import (
	"context"
	"fmt"

	"github.com/katalvlaran/astarviz/grid"
)

// Run searches g for a shortest path from start to end.
//
// Preconditions (checked in order, each reported as ErrInvalidEndpoints):
//  1. start and end are non-nil.
//  2. start and end are distinct cells.
//  3. both belong to g.
//  4. neither is an Obstacle.
//
// A precondition failure returns before any cell is touched.
//
// During the search the engine marks newly discovered cells Frontier and
// fully expanded cells Visited, calling Options.OnStep after each change.
// Start and End keep their roles. Neighbor lists are recomputed through
// g.NeighborsOf on every expansion, so obstacles placed before the call
// are always honoured.
//
// Returns a Result whose Outcome is PathFound, NoPathExists or Cancelled.
// All working state (open set, gScore, predecessor) is private to the call.
//
// Complexity:
//
//   - Time:  O(N log N), N = g.Rows()².
//   - Space: O(N).
func Run(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateEndpoints(g, start, end); err != nil {
		return nil, err
	}

	n := g.Rows() * g.Rows()
	r := &runner{
		g:      g,
		opts:   cfg,
		ctx:    cfg.Ctx,
		start:  start,
		end:    end,
		open:   newOpenSet(n),
		gScore: make(map[*grid.Cell]int, n),
		prev:   make(map[*grid.Cell]*grid.Cell, n),
		res:    &Result{Start: start, End: end},
	}
	r.init()

	return r.process(), nil
}

// validateEndpoints enforces the Run preconditions.
func validateEndpoints(g *grid.Grid, start, end *grid.Cell) error {
	switch {
	case start == nil || end == nil:
		return fmt.Errorf("%w: start and end must both be set", ErrInvalidEndpoints)
	case start == end:
		return fmt.Errorf("%w: start and end are the same cell %v", ErrInvalidEndpoints, start.Coord())
	case !g.Contains(start):
		return fmt.Errorf("%w: start %v is not a cell of this grid", ErrInvalidEndpoints, start.Coord())
	case !g.Contains(end):
		return fmt.Errorf("%w: end %v is not a cell of this grid", ErrInvalidEndpoints, end.Coord())
	case start.IsObstacle():
		return fmt.Errorf("%w: start %v is an obstacle", ErrInvalidEndpoints, start.Coord())
	case end.IsObstacle():
		return fmt.Errorf("%w: end %v is an obstacle", ErrInvalidEndpoints, end.Coord())
	}
	return nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g      *grid.Grid
	opts   Options
	ctx    context.Context
	start  *grid.Cell
	end    *grid.Cell
	open   *openSet                  // (f, seq) min-heap plus membership
	gScore map[*grid.Cell]int        // absent entries mean +∞
	prev   map[*grid.Cell]*grid.Cell // best-known predecessor
	res    *Result
}

// init seeds gScore[start] = 0 and opens start with f = h(start, end).
func (r *runner) init() {
	r.gScore[r.start] = 0
	r.open.push(r.start, Manhattan(r.start.Coord(), r.end.Coord()))
	r.res.Discovered++
}

// process is the main loop. It stops on cancellation, on popping end,
// or when the open set is exhausted.
func (r *runner) process() *Result {
	for r.open.Len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-r.ctx.Done():
			r.res.Outcome = Cancelled
			return r.res
		default:
		}

		current := r.open.pop()
		r.res.Expanded++
		r.opts.OnExpand(current)

		if current == r.end {
			r.res.Outcome = PathFound
			r.res.Cost = r.gScore[current]
			r.res.Predecessor = ancestry(r.prev, current)
			return r.res
		}

		r.relax(current)

		if current != r.start {
			r.mark(current, grid.Visited)
		}
	}

	r.res.Outcome = NoPathExists
	return r.res
}

// relax tries every neighbor of current with a unit edge cost.
// A neighbor is updated only on a strictly better gScore; if it is not yet
// open it is pushed with the next sequence and marked Frontier, otherwise
// its open entry is re-prioritised in place.
func (r *runner) relax(current *grid.Cell) {
	tentative := r.gScore[current] + 1
	for _, nb := range r.g.NeighborsOf(current) {
		if old, seen := r.gScore[nb]; seen && tentative >= old {
			continue
		}
		r.prev[nb] = current
		r.gScore[nb] = tentative
		f := tentative + Manhattan(nb.Coord(), r.end.Coord())

		if r.open.contains(nb) {
			r.open.decrease(nb, f)
			continue
		}
		r.open.push(nb, f)
		r.res.Discovered++
		r.mark(nb, grid.Frontier)
	}
}

// mark applies a search state and notifies OnStep on a real transition.
func (r *runner) mark(c *grid.Cell, s grid.State) {
	if c.Mark(s) {
		r.opts.OnStep(c)
	}
}

// ancestry copies the predecessor chain of c out of the working map.
func ancestry(prev map[*grid.Cell]*grid.Cell, c *grid.Cell) map[*grid.Cell]*grid.Cell {
	out := make(map[*grid.Cell]*grid.Cell)
	for p, ok := prev[c]; ok; p, ok = prev[c] {
		out[c] = p
		c = p
	}
	return out
}

package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/astarviz/grid"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Run.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoints indicates a missing, identical, foreign or
	// obstacle-occupied start or end cell. It is always wrapped with detail.
	ErrInvalidEndpoints = errors.New("astar: invalid endpoints")
)

// Outcome is the terminal state of a single Run.
type Outcome int

const (
	// PathFound means end was reached; Result.Predecessor is populated.
	PathFound Outcome = iota
	// NoPathExists means every reachable cell was expanded without reaching end.
	NoPathExists
	// Cancelled means the context was done before the search finished.
	Cancelled
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case PathFound:
		return "path_found"
	case NoPathExists:
		return "no_path"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result describes a finished search.
//
// Predecessor is nil unless Outcome is PathFound; it then holds exactly
// the goal's ancestry: pred[end] … down to the cell whose predecessor is
// start. Cost is gScore[end], the number of moves on the shortest path.
// Expanded counts cells popped from the open set; Discovered counts
// insertions into it, including start.
type Result struct {
	Outcome     Outcome
	Start       *grid.Cell
	End         *grid.Cell
	Predecessor map[*grid.Cell]*grid.Cell
	Cost        int
	Expanded    int
	Discovered  int
}

// Found reports whether a path was found.
func (r *Result) Found() bool { return r.Outcome == PathFound }

// Path returns start…end for a successful search and nil otherwise.
func (r *Result) Path() []*grid.Cell {
	if r.Outcome != PathFound {
		return nil
	}
	return Path(r.Predecessor, r.End)
}

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds the cancellation context and observation hooks for Run.
type Options struct {
	// Ctx is polled once per loop iteration; when done, Run returns Cancelled.
	Ctx context.Context

	// OnStep is called synchronously after every cell state transition
	// performed by the engine (Frontier on discovery, Visited on expansion).
	OnStep func(c *grid.Cell)

	// OnExpand is called when a cell is popped from the open set, before
	// its neighbors are scanned. It does not imply a state transition.
	OnExpand func(c *grid.Cell)
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnStep:   func(*grid.Cell) {},
		OnExpand: func(*grid.Cell) {},
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers the observation hook. A nil fn is ignored.
func WithOnStep(fn func(c *grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnExpand registers the expansion hook. A nil fn is ignored.
func WithOnExpand(fn func(c *grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

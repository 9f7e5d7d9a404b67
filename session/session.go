// Package session holds the caller-side state of an interactive search:
// the grid, the chosen start and end cells, and whether a search has
// already run on this board. It applies the editing rules of the
// visualizer (place, erase, clear) and drives astar.Run.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/astarviz/astar"
	"github.com/katalvlaran/astarviz/grid"
	"github.com/katalvlaran/astarviz/internal/logging"
)

// ErrNotReady is returned by Run when start or end is missing, or when a
// search already ran on the current grid.
var ErrNotReady = errors.New("session: start and end must be placed on a fresh grid")

// Observer receives the result of every search. metrics.Collector implements it.
type Observer interface {
	Observe(res *astar.Result, elapsed time.Duration)
	ObserveError(err error)
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// WithObserver registers a search observer; nil is ignored.
func WithObserver(o Observer) Option {
	return func(s *State) {
		if o != nil {
			s.observer = o
		}
	}
}

// State is the session: one grid, its endpoints and the done flag.
// It is owned by a single goroutine.
type State struct {
	Grid  *grid.Grid
	Start *grid.Cell
	End   *grid.Cell
	// Done is set once a search has run; the board is then read-only
	// until Clear.
	Done bool

	log      *slog.Logger
	observer Observer
}

// New builds a session over an empty rows×rows grid.
func New(rows, dimension int, opts ...Option) (*State, error) {
	g, err := grid.Build(rows, dimension)
	if err != nil {
		return nil, err
	}
	s := &State{Grid: g, log: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// FromGrid wraps an existing grid, e.g. one parsed from ASCII, with its
// already-located endpoints (either may be nil).
func FromGrid(g *grid.Grid, start, end *grid.Cell, opts ...Option) *State {
	s := &State{Grid: g, Start: start, End: end, log: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Place applies a primary click at (row, col): the first placement sets
// Start, the second sets End, later ones add obstacles. Start and End are
// never overwritten. It is a no-op once Done.
func (s *State) Place(row, col int) error {
	if s.Done {
		return nil
	}
	c, err := s.Grid.At(row, col)
	if err != nil {
		return err
	}
	switch {
	case s.Start == nil && c != s.End:
		s.Start = c
		c.SetState(grid.Start)
	case s.End == nil && c != s.Start:
		s.End = c
		c.SetState(grid.End)
	case c != s.Start && c != s.End:
		c.SetState(grid.Obstacle)
	}
	return nil
}

// Erase applies a secondary click at (row, col): the cell becomes Empty
// and, if it was an endpoint, that endpoint is forgotten. No-op once Done.
func (s *State) Erase(row, col int) error {
	if s.Done {
		return nil
	}
	c, err := s.Grid.At(row, col)
	if err != nil {
		return err
	}
	c.Reset()
	switch c {
	case s.Start:
		s.Start = nil
	case s.End:
		s.End = nil
	}
	return nil
}

// Ready reports whether Run may be called.
func (s *State) Ready() bool {
	return s.Start != nil && s.End != nil && !s.Done
}

// Clear replaces the grid with a fresh empty one of the same size and
// forgets the endpoints and the done flag.
func (s *State) Clear() {
	s.Grid = s.Grid.Clear()
	s.Start, s.End = nil, nil
	s.Done = false
}

// Run refreshes neighbor caches, searches from Start to End and, when a
// path is found, paints it. onStep (may be nil) sees every state change
// in algorithm order. Any terminal outcome sets Done.
func (s *State) Run(ctx context.Context, onStep func(c *grid.Cell)) (*astar.Result, error) {
	if !s.Ready() {
		return nil, ErrNotReady
	}
	s.Grid.UpdateNeighbors()

	began := time.Now()
	res, err := astar.Run(s.Grid, s.Start, s.End, astar.WithContext(ctx), astar.WithOnStep(onStep))
	elapsed := time.Since(began)
	if err != nil {
		s.log.Warn("search rejected", "error", err)
		if s.observer != nil {
			s.observer.ObserveError(err)
		}
		return nil, fmt.Errorf("session: %w", err)
	}
	s.Done = true

	var painted int
	if res.Found() {
		painted = len(astar.Reconstruct(res.Predecessor, res.End, onStep))
	}
	if s.observer != nil {
		s.observer.Observe(res, elapsed)
	}
	s.log.Info("search finished",
		"outcome", res.Outcome.String(),
		"cost", res.Cost,
		"expanded", res.Expanded,
		"path_cells", painted,
		"elapsed", elapsed,
	)
	return res, nil
}

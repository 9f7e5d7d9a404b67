package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarviz/grid"
)

//----------------------------------------------------------------------------//
// Build and bounds
//----------------------------------------------------------------------------//

// TestBuild_Errors verifies that Build rejects bad shapes.
func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name      string
		rows, dim int
		err       error
	}{
		{"ZeroRows", 0, 100, grid.ErrBadRows},
		{"NegativeRows", -3, 100, grid.ErrBadRows},
		{"NegativeDimension", 5, -1, grid.ErrBadDimension},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Build(tc.rows, tc.dim)
			if !errors.Is(err, tc.err) {
				t.Errorf("Build(%d,%d) error = %v; want %v", tc.rows, tc.dim, err, tc.err)
			}
		})
	}
}

// TestBuild_Shape checks dimensions, coordinates and initial states.
func TestBuild_Shape(t *testing.T) {
	g, err := grid.Build(4, 1000)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, 1000, g.Dimension())
	assert.Equal(t, 250, g.Gap())

	seen := 0
	g.Cells(func(c *grid.Cell) {
		assert.Equal(t, grid.Empty, c.State())
		assert.Nil(t, c.Neighbors(), "neighbors are populated lazily")
		assert.Same(t, c, g.MustAt(c.Row(), c.Col()))
		seen++
	})
	assert.Equal(t, 16, seen)
	assert.Equal(t, 16, g.Count(grid.Empty))
}

// TestAt_OutOfBounds checks At and InBounds at the edges.
func TestAt_OutOfBounds(t *testing.T) {
	g, err := grid.Build(3, 30)
	require.NoError(t, err)

	for _, rc := range [][2]int{{0, 0}, {2, 2}, {1, 2}} {
		assert.True(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
	for _, rc := range [][2]int{{-1, 0}, {3, 0}, {0, 3}, {2, -1}} {
		assert.False(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
		_, err := g.At(rc[0], rc[1])
		assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	}
	assert.Panics(t, func() { g.MustAt(5, 5) })
}

// TestContains distinguishes cells of different grids with equal coordinates.
func TestContains(t *testing.T) {
	a, _ := grid.Build(2, 0)
	b, _ := grid.Build(2, 0)
	assert.True(t, a.Contains(a.MustAt(1, 1)))
	assert.False(t, a.Contains(b.MustAt(1, 1)))
	assert.False(t, a.Contains(nil))
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

func coords(cells []*grid.Cell) []grid.Coord {
	out := make([]grid.Coord, len(cells))
	for i, c := range cells {
		out[i] = c.Coord()
	}
	return out
}

// TestNeighborsOf_Order pins the down, up, right, left order.
func TestNeighborsOf_Order(t *testing.T) {
	g, _ := grid.Build(3, 0)
	center := g.MustAt(1, 1)
	got := coords(g.NeighborsOf(center))
	want := []grid.Coord{{2, 1}, {0, 1}, {1, 2}, {1, 0}}
	assert.Equal(t, want, got)
	assert.Equal(t, want, coords(center.Neighbors()), "result is cached on the cell")
}

// TestNeighborsOf_EdgesAndObstacles checks bounds clipping and obstacle exclusion.
func TestNeighborsOf_EdgesAndObstacles(t *testing.T) {
	g, _ := grid.Build(3, 0)
	corner := g.MustAt(0, 0)
	assert.Equal(t, []grid.Coord{{1, 0}, {0, 1}}, coords(g.NeighborsOf(corner)))

	g.MustAt(1, 0).SetState(grid.Obstacle)
	assert.Equal(t, []grid.Coord{{0, 1}}, coords(g.NeighborsOf(corner)))

	g.MustAt(0, 1).SetState(grid.Obstacle)
	assert.Empty(t, g.NeighborsOf(corner))
}

// TestUpdateNeighbors refreshes stale caches after obstacle placement.
func TestUpdateNeighbors(t *testing.T) {
	g, _ := grid.Build(2, 0)
	g.UpdateNeighbors()
	assert.Len(t, g.MustAt(0, 0).Neighbors(), 2)

	g.MustAt(0, 1).SetState(grid.Obstacle)
	assert.Len(t, g.MustAt(0, 0).Neighbors(), 2, "cache is stale until refreshed")
	g.UpdateNeighbors()
	assert.Len(t, g.MustAt(0, 0).Neighbors(), 1)
	g.Cells(func(c *grid.Cell) {
		for _, n := range c.Neighbors() {
			assert.False(t, n.IsObstacle(), "obstacle %v listed as neighbor of %v", n, c)
		}
	})
}

//----------------------------------------------------------------------------//
// States, Clear and Reset
//----------------------------------------------------------------------------//

// TestMark_PreservesRoles verifies search marks never overwrite Start/End.
func TestMark_PreservesRoles(t *testing.T) {
	g, _ := grid.Build(2, 0)
	s, e, c := g.MustAt(0, 0), g.MustAt(1, 1), g.MustAt(0, 1)
	s.SetState(grid.Start)
	e.SetState(grid.End)

	assert.False(t, s.Mark(grid.Visited))
	assert.False(t, e.Mark(grid.Frontier))
	assert.Equal(t, grid.Start, s.State())
	assert.Equal(t, grid.End, e.State())

	assert.True(t, c.Mark(grid.Frontier))
	assert.False(t, c.Mark(grid.Frontier), "no transition when state is unchanged")
	assert.True(t, c.Mark(grid.Visited))
	assert.Equal(t, grid.Visited, c.State())
}

// TestClear_Idempotent checks that clearing twice yields identical empty grids.
func TestClear_Idempotent(t *testing.T) {
	g, _, _, err := grid.ParseString("S#.\n.#.\n..E\n", 300)
	require.NoError(t, err)
	once := g.Clear()
	twice := once.Clear()

	assert.Equal(t, g.Rows(), once.Rows())
	assert.Equal(t, once.Rows(), twice.Rows())
	assert.Equal(t, once.Dimension(), twice.Dimension())
	assert.Equal(t, once.Lines(), twice.Lines())
	assert.Equal(t, 9, twice.Count(grid.Empty))
	assert.Equal(t, grid.Obstacle, g.MustAt(0, 1).State(), "original grid untouched")
}

// TestReset_SearchStates wipes only search marks by default.
func TestReset_SearchStates(t *testing.T) {
	g, _, _, err := grid.ParseString("Sox\n#*.\n..E\n", 0)
	require.NoError(t, err)

	g.Reset()
	assert.Equal(t, []string{"S..", "#..", "..E"}, g.Lines())

	g.Reset(grid.Obstacle, grid.Start)
	assert.Equal(t, []string{"...", "...", "..E"}, g.Lines())
}

// TestStateNames covers String and ParseState.
func TestStateNames(t *testing.T) {
	for s := grid.Empty; s <= grid.Path; s++ {
		got, err := grid.ParseState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := grid.ParseState("lava")
	assert.Error(t, err)
	assert.Equal(t, "state(42)", grid.State(42).String())
}

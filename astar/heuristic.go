package astar

import "github.com/katalvlaran/astarviz/grid"

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
// It never overestimates the remaining cost of unit 4-directional moves
// and is consistent, which the optimality of Run depends on.
func Manhattan(a, b grid.Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

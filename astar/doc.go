// Package astar implements an incremental A* shortest-path search over a
// grid.Grid with unit-cost 4-directional moves and the Manhattan heuristic.
//
// The engine expands one cell per loop iteration and reports every cell
// state transition (Frontier, Visited) through an observation hook, so a
// caller can render the search as it progresses. On success, Reconstruct
// walks the predecessor map and marks the shortest path.
//
// Ordering:
//
//	The open set is a min-heap keyed by (fScore, insertionSequence). Cells
//	with equal fScore pop in the order they were first discovered, which
//	makes the expansion order, the hook sequence and the chosen path fully
//	reproducible for a given grid, start and end.
//
// Complexity:
//
//   - Time:  O(N log N) for N = rows² cells; each cell enters the heap once.
//   - Space: O(N) for gScore, predecessor and open-set membership.
//
// Outcomes:
//
//   - PathFound:    Result.Predecessor holds the chain end → … → start.
//   - NoPathExists: the open set emptied; a definitive verdict.
//   - Cancelled:    the context was done at the top of a loop iteration.
//
// Errors (sentinel):
//
//   - ErrNilGrid:          nil grid.
//   - ErrInvalidEndpoints: nil, identical, foreign or obstacle endpoints.
//
// Example usage:
//
//	res, err := astar.Run(g, start, end, astar.WithOnStep(draw))
//	if err != nil {
//	    return err
//	}
//	if res.Outcome == astar.PathFound {
//	    astar.Reconstruct(res.Predecessor, res.End, draw)
//	}
package astar

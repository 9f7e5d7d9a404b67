// Package astarviz is an A* shortest-path visualizer for square grids.
//
// A board of R×R cells holds one start, one end and any number of walls.
// The search expands cells in order of f = g + h, with h the Manhattan
// distance, and reports every state change as it happens so a display can
// animate it cell by cell.
//
// Packages:
//
//	grid/      — cells, states, 4-neighbour adjacency, ASCII layouts, regions
//	astar/     — the search, its open set and path reconstruction
//	session/   — click rules, the done flag and a single search run
//	trace/     — recording, YAML storage and replay of search steps
//	metrics/   — Prometheus counters and histograms for searches
//
// The astarviz command (cmd/astarviz) drives these from a terminal board,
// from ASCII files, or over HTTP.
//
// Quick example:
//
//	g, start, end, _ := grid.ParseString("S..\n.#.\n..E", 0)
//	res, _ := astar.Run(g, start, end)
//	fmt.Println(res.Outcome, res.Cost) // path_found 4
package astarviz

// Version is the release of this module.
const Version = "0.3.0"

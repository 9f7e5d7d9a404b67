// Package grid models the square board an A* search runs on: a fixed
// rows×rows arrangement of Cells, each carrying a lifecycle State.
//
// What:
//
//   - Grid owns every Cell; dimensions and cell coordinates never change.
//   - Cell holds its (row, col), a State and a cached 4-neighbor list.
//   - NeighborsOf computes orthogonal adjacency on demand, in the fixed
//     order down, up, right, left, skipping obstacles.
//   - Parse / Format convert between a Grid and a compact ASCII layout.
//   - Regions labels the connected open areas of the board.
//
// Why:
//
//   - The search engine mutates only States; roles (Start/End/Obstacle)
//     are assigned by the caller before a run.
//   - A fixed neighbor order makes search traces reproducible.
//
// Complexity:
//
//   - Build, Clear: O(R²) time and memory.
//   - NeighborsOf: O(1).
//   - Regions: O(R²).
//
// Errors:
//
//   - ErrBadRows: rows ≤ 0.
//   - ErrBadDimension: negative display dimension.
//   - ErrOutOfBounds: coordinates outside the grid.
//   - ErrEmptyGrid, ErrNotSquare, ErrBadRune, ErrDuplicateRole: ASCII parsing.
package grid

package grid

// Regions labels the connected areas of non-obstacle cells under
// 4-connectivity. It returns one slice of cells per region, each in BFS
// order from its first row-major cell; regions are ordered by that cell.
//
// Time:   O(R²).
// Memory: O(R²) for the seen flags and output.
func (g *Grid) Regions() [][]*Cell {
	seen := make([]bool, g.rows*g.rows)
	var regions [][]*Cell

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.rows; c++ {
			first := g.cells[r][c]
			if first.IsObstacle() || seen[g.index(r, c)] {
				continue
			}
			// BFS to collect region
			queue := []*Cell{first}
			seen[g.index(r, c)] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range neighborOffsets {
					vr, vc := u.row+d[0], u.col+d[1]
					if !g.InBounds(vr, vc) || g.cells[vr][vc].IsObstacle() {
						continue
					}
					if vi := g.index(vr, vc); !seen[vi] {
						seen[vi] = true
						queue = append(queue, g.cells[vr][vc])
					}
				}
			}
			regions = append(regions, queue)
		}
	}
	return regions
}

// Connected reports whether a and b belong to the same open region.
// Obstacle or foreign cells are never connected.
func (g *Grid) Connected(a, b *Cell) bool {
	if !g.Contains(a) || !g.Contains(b) || a.IsObstacle() || b.IsObstacle() {
		return false
	}
	for _, region := range g.Regions() {
		inA, inB := false, false
		for _, c := range region {
			inA = inA || c == a
			inB = inB || c == b
		}
		if inA || inB {
			return inA && inB
		}
	}
	return false
}

// index maps (row, col) to a row-major index.
func (g *Grid) index(row, col int) int {
	return row*g.rows + col
}

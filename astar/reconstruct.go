package astar

import "github.com/katalvlaran/astarviz/grid"

// Reconstruct walks pred from end back to the start (the first cell with
// no predecessor) and marks every cell in between as grid.Path, calling
// onStep once per marked cell in goal-to-start order. end and start keep
// their roles and are not part of the returned slice.
//
// The result is empty when end has no predecessor or is adjacent to start.
// onStep may be nil.
func Reconstruct(pred map[*grid.Cell]*grid.Cell, end *grid.Cell, onStep func(c *grid.Cell)) []*grid.Cell {
	var marked []*grid.Cell
	for cur, ok := pred[end]; ok; cur, ok = pred[cur] {
		if _, more := pred[cur]; !more {
			break // cur is the start
		}
		marked = append(marked, cur)
		if cur.Mark(grid.Path) && onStep != nil {
			onStep(cur)
		}
	}
	return marked
}

// Path returns the cells from start to end inclusive by following pred.
// It does not modify any cell. When end has no predecessor the result is
// just [end].
func Path(pred map[*grid.Cell]*grid.Cell, end *grid.Cell) []*grid.Cell {
	path := []*grid.Cell{end}
	for cur, ok := pred[end]; ok; cur, ok = pred[cur] {
		path = append(path, cur)
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

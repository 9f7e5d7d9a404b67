package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var stateRunes = [...]rune{
	Empty:    '.',
	Obstacle: '#',
	Start:    'S',
	End:      'E',
	Frontier: 'o',
	Visited:  'x',
	Path:     '*',
}

// Rune returns the ASCII symbol used by Format and Parse for s.
func (s State) Rune() rune {
	if int(s) < len(stateRunes) {
		return stateRunes[s]
	}
	return '?'
}

func stateFromRune(r rune) (State, bool) {
	for i, sr := range stateRunes {
		if sr == r {
			return State(i), true
		}
	}
	return Empty, false
}

// Parse reads a square ASCII layout, one row per line, and builds a Grid
// with the given display dimension. Blank lines are skipped and trailing
// whitespace is trimmed. The returned start and end are nil when the
// layout has no 'S' or 'E'.
//
// Symbols: '.' empty, '#' obstacle, 'S' start, 'E' end, 'o' frontier,
// 'x' visited, '*' path.
func Parse(r io.Reader, dimension int) (g *Grid, start, end *Cell, err error) {
	var lines [][]rune
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		lines = append(lines, []rune(line))
	}
	if err = sc.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("grid: read layout: %w", err)
	}
	if len(lines) == 0 {
		return nil, nil, nil, ErrEmptyGrid
	}
	n := len(lines)
	for i, line := range lines {
		if len(line) != n {
			return nil, nil, nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, i, len(line), n)
		}
	}

	if g, err = Build(n, dimension); err != nil {
		return nil, nil, nil, err
	}
	for row, line := range lines {
		for col, ch := range line {
			s, ok := stateFromRune(ch)
			if !ok {
				return nil, nil, nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadRune, ch, row, col)
			}
			c := g.cells[row][col]
			c.state = s
			switch s {
			case Start:
				if start != nil {
					return nil, nil, nil, fmt.Errorf("%w: second start at (%d,%d)", ErrDuplicateRole, row, col)
				}
				start = c
			case End:
				if end != nil {
					return nil, nil, nil, fmt.Errorf("%w: second end at (%d,%d)", ErrDuplicateRole, row, col)
				}
				end = c
			}
		}
	}

	return g, start, end, nil
}

// ParseString is Parse over a string layout.
func ParseString(layout string, dimension int) (*Grid, *Cell, *Cell, error) {
	return Parse(strings.NewReader(layout), dimension)
}

// Lines renders the grid as one string per row.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	var b strings.Builder
	for r, row := range g.cells {
		b.Reset()
		for _, c := range row {
			b.WriteRune(c.state.Rune())
		}
		out[r] = b.String()
	}
	return out
}

// Format renders the grid in the layout accepted by Parse, newline-terminated.
func (g *Grid) Format() string {
	return strings.Join(g.Lines(), "\n") + "\n"
}

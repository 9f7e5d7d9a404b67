package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/astarviz/grid"
)

// CellWidth is the number of terminal columns per grid cell; two columns
// per row keeps cells roughly square in most fonts.
const CellWidth = 2

// View paints a grid onto a tcell.Screen. Row r, column c occupies screen
// row r and columns [c*CellWidth, (c+1)*CellWidth). The status line sits
// directly below the board.
type View struct {
	screen  tcell.Screen
	palette Palette
}

// NewView binds a palette to a screen.
func NewView(s tcell.Screen, p Palette) *View {
	return &View{screen: s, palette: p}
}

// DrawCell paints one cell. Cells outside the screen are skipped.
func (v *View) DrawCell(c *grid.Cell) {
	st := v.palette.Style(c.State())
	x0, y := c.Col()*CellWidth, c.Row()
	for dx := 0; dx < CellWidth; dx++ {
		v.screen.SetContent(x0+dx, y, ' ', nil, st)
	}
}

// Draw clears the screen and paints every cell.
func (v *View) Draw(g *grid.Grid) {
	v.screen.Clear()
	g.Cells(v.DrawCell)
}

// Status writes msg on the line below a board of g's size.
func (v *View) Status(g *grid.Grid, msg string) {
	y := g.Rows()
	w, _ := v.screen.Size()
	x := 0
	for _, r := range msg {
		if x >= w {
			break
		}
		v.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
	for ; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// Show flushes pending changes to the terminal.
func (v *View) Show() {
	v.screen.Show()
}

// CellAt maps a screen position to grid coordinates.
func (v *View) CellAt(g *grid.Grid, x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y, x/CellWidth
	if !g.InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

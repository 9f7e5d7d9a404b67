// Package render draws grids for people: an interactive tcell board and a
// coloured ASCII printer. Colours live here, keyed by grid.State; the
// search packages know nothing about them.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/astarviz/grid"
)

// Palette maps each grid.State to a colour.
type Palette struct {
	colors [grid.Path + 1]tcell.Color
	line   tcell.Color
}

// DefaultPalette returns the classic visualizer colours.
func DefaultPalette() Palette {
	var p Palette
	p.colors[grid.Empty] = tcell.NewRGBColor(255, 255, 255)
	p.colors[grid.Obstacle] = tcell.NewRGBColor(0, 0, 0)
	p.colors[grid.Start] = tcell.NewRGBColor(0, 255, 0)
	p.colors[grid.End] = tcell.NewRGBColor(64, 224, 208)
	p.colors[grid.Frontier] = tcell.NewRGBColor(255, 255, 0)
	p.colors[grid.Visited] = tcell.NewRGBColor(255, 0, 0)
	p.colors[grid.Path] = tcell.NewRGBColor(128, 0, 128)
	p.line = tcell.NewRGBColor(128, 128, 128)
	return p
}

// Color returns the colour for s; unknown states get the line colour.
func (p Palette) Color(s grid.State) tcell.Color {
	if int(s) < len(p.colors) {
		return p.colors[s]
	}
	return p.line
}

// Style returns the board style for a cell in state s.
func (p Palette) Style(s grid.State) tcell.Style {
	return tcell.StyleDefault.Background(p.Color(s)).Foreground(p.line)
}

// Hex returns the colour for s as "#rrggbb".
func (p Palette) Hex(s grid.State) string {
	return fmt.Sprintf("#%06x", p.Color(s).Hex())
}

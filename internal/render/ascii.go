package render

import (
	"bufio"
	"io"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/astarviz/grid"
)

// PrintASCII writes g one row per line using grid.State runes, coloured
// with p under the given profile. termenv.Ascii disables colour.
func PrintASCII(w io.Writer, g *grid.Grid, p Palette, profile termenv.Profile) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Rows(); c++ {
			st := g.MustAt(r, c).State()
			s := string(st.Rune())
			if profile != termenv.Ascii {
				s = profile.String(s).Foreground(profile.Color(p.Hex(st))).String()
			}
			if _, err := bw.WriteString(s); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

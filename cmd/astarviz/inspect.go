package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/astarviz/grid"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE|-",
	Short: "Report the open regions of an ASCII grid",
	Long: `Lists the 4-connected regions of non-wall cells in row-major order and
whether the start can reach the end at all.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	g, start, end, err := readGrid(cmd, args[0], cfg.Dimension)
	if err != nil {
		return err
	}

	regions := g.Regions()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "rows=%d open=%d regions=%d\n", g.Rows(), g.Rows()*g.Rows()-g.Count(grid.Obstacle), len(regions))
	for i, r := range regions {
		fmt.Fprintf(out, "  region %d: %d cells from %v\n", i, len(r), r[0].Coord())
	}
	if start != nil && end != nil {
		fmt.Fprintf(out, "start %v reaches end %v: %t\n", start.Coord(), end.Coord(), g.Connected(start, end))
	}
	return nil
}

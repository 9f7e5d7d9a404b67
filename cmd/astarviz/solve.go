package main

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/astarviz/astar"
	"github.com/katalvlaran/astarviz/grid"
	"github.com/katalvlaran/astarviz/internal/render"
	"github.com/katalvlaran/astarviz/session"
	"github.com/katalvlaran/astarviz/trace"
)

var solveCmd = &cobra.Command{
	Use:   "solve FILE|-",
	Short: "Solve an ASCII grid and print the explored board",
	Long: `Reads a square grid, one row per line: '.' empty, '#' wall, 'S' start,
'E' end. Marks left by an earlier search ('o', 'x', '*') are cleared first.
Use - to read standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().String("trace", "", "Write the step trace as YAML to this file")
	solveCmd.Flags().Bool("no-color", false, "Print plain ASCII")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	g, start, end, err := readGrid(cmd, args[0], cfg.Dimension)
	if err != nil {
		return err
	}
	g.Reset()

	var rec trace.Recorder
	sess := session.FromGrid(g, start, end, session.WithLogger(log))
	res, err := sess.Run(cmd.Context(), rec.OnStep)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := render.PrintASCII(out, g, render.DefaultPalette(), colorProfile(cmd)); err != nil {
		return err
	}
	printSummary(out, res)

	if path, _ := cmd.Flags().GetString("trace"); path != "" {
		if err := writeTrace(path, rec.Trace(g, res)); err != nil {
			return err
		}
		log.Info("trace written", "path", path, "steps", rec.Len())
	}
	return nil
}

func readGrid(cmd *cobra.Command, name string, dimension int) (*grid.Grid, *grid.Cell, *grid.Cell, error) {
	var r io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, nil, nil, err
		}
		defer f.Close()
		r = f
	}
	return grid.Parse(r, dimension)
}

func writeTrace(path string, t *trace.Trace) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := trace.Encode(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func colorProfile(cmd *cobra.Command) termenv.Profile {
	if off, _ := cmd.Flags().GetBool("no-color"); off {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

func printSummary(w io.Writer, res *astar.Result) {
	if res.Found() {
		fmt.Fprintf(w, "outcome=%s cost=%d expanded=%d\n", res.Outcome, res.Cost, res.Expanded)
		return
	}
	fmt.Fprintf(w, "outcome=%s expanded=%d\n", res.Outcome, res.Expanded)
}

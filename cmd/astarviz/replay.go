package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/astarviz/grid"
	"github.com/katalvlaran/astarviz/internal/render"
	"github.com/katalvlaran/astarviz/session"
	"github.com/katalvlaran/astarviz/trace"
)

var errTraceMismatch = errors.New("trace does not match a fresh search of its board")

var replayCmd = &cobra.Command{
	Use:   "replay TRACE.yaml",
	Short: "Replay a recorded trace and print the final board",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Bool("verify", false, "Search the traced board again and compare")
	replayCmd.Flags().Bool("no-color", false, "Print plain ASCII")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	t, err := trace.Decode(f)
	f.Close()
	if err != nil {
		return err
	}

	g, err := grid.Build(t.Rows, cfg.Dimension)
	if err != nil {
		return err
	}
	if err := trace.Replay(g, t, nil); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := render.PrintASCII(out, g, render.DefaultPalette(), colorProfile(cmd)); err != nil {
		return err
	}
	fmt.Fprintf(out, "outcome=%s steps=%d\n", t.Outcome, len(t.Steps))

	if verify, _ := cmd.Flags().GetBool("verify"); !verify {
		return nil
	}
	fresh, err := rerun(cmd, t, cfg.Dimension)
	if err != nil {
		return err
	}
	if !trace.Equal(t, fresh) {
		return errTraceMismatch
	}
	fmt.Fprintln(out, "verified")
	return nil
}

// rerun searches t's board from scratch and records a new trace.
func rerun(cmd *cobra.Command, t *trace.Trace, dimension int) (*trace.Trace, error) {
	g, err := grid.Build(t.Rows, dimension)
	if err != nil {
		return nil, err
	}
	if err := t.Layout(g); err != nil {
		return nil, err
	}
	var rec trace.Recorder
	sess := session.FromGrid(g, g.MustAt(t.Start.Row, t.Start.Col), g.MustAt(t.End.Row, t.End.Col))
	res, err := sess.Run(cmd.Context(), rec.OnStep)
	if err != nil {
		return nil, err
	}
	return rec.Trace(g, res), nil
}

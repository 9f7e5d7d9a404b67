package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/astarviz/internal/config"
	"github.com/katalvlaran/astarviz/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "astarviz",
	Short: "astarviz animates A* shortest-path search on a square grid",
	Long: `astarviz lets you place a start, an end and walls on a grid, then watch
A* explore it cell by cell. Without a subcommand it starts the interactive
terminal board; solve, replay and serve work headless.`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	addRunFlags(rootCmd)
}

// loadConfig reads --config and applies --log-level over it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	return cfg, cfg.Validate()
}

// newLogger builds the stderr logger for cfg.
func newLogger(cfg config.Config) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl, os.Stderr), nil
}

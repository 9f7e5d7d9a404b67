package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/astarviz/internal/config"
	"github.com/katalvlaran/astarviz/internal/logging"
	"github.com/katalvlaran/astarviz/internal/render"
	"github.com/katalvlaran/astarviz/metrics"
	"github.com/katalvlaran/astarviz/session"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive board (default)",
	Long: `Left click places the start, then the end, then walls. Right click erases.
Space runs the search, c clears the board, q or Esc quits.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Int("rows", 0, "Board size in cells per side (overrides config)")
	cmd.Flags().Duration("frame-delay", -1, "Pause after each drawn step (overrides config)")
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus /metrics on this address while running")
	cmd.Flags().String("log-file", "", "Write logs here; the terminal is owned by the board")
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyRunFlags(cmd, &cfg); err != nil {
		return err
	}

	log, closeLog, err := interactiveLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	reg := prometheus.NewRegistry()
	sess, err := session.New(cfg.Rows, cfg.Dimension,
		session.WithLogger(log),
		session.WithObserver(metrics.NewCollector(reg)),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server", "err", err)
			}
		}()
		defer shutdown(srv, log)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	log.Info("board started", "rows", cfg.Rows, "frame_delay", cfg.FrameDelay)
	app := render.NewApp(screen, sess,
		render.WithFrameDelay(cfg.FrameDelay),
		render.WithAppLogger(log),
	)
	return app.Run(ctx)
}

func applyRunFlags(cmd *cobra.Command, cfg *config.Config) error {
	if n, _ := cmd.Flags().GetInt("rows"); n != 0 {
		cfg.Rows = n
	}
	if d, _ := cmd.Flags().GetDuration("frame-delay"); d >= 0 {
		cfg.FrameDelay = d
	}
	if addr, _ := cmd.Flags().GetString("metrics-addr"); addr != "" {
		cfg.MetricsAddr = addr
	}
	return cfg.Validate()
}

// interactiveLogger logs to --log-file when given and discards otherwise,
// since stderr shares the terminal with the board.
func interactiveLogger(cmd *cobra.Command, cfg config.Config) (*slog.Logger, func(), error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		return logging.NewNop(), func() {}, nil
	}
	lvl, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(lvl, f), func() { f.Close() }, nil
}

func shutdown(srv *http.Server, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("graceful shutdown did not complete", "err", err)
		srv.Close()
	}
}

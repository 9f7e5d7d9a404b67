package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/astarviz/internal/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP solve API",
	Long: `Serves POST /v1/solve, GET /healthz and GET /metrics. Every request is
solved on its own board.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (overrides config listen_addr)")
	serveCmd.Flags().Int("max-rows", httpapi.DefaultMaxRows, "Largest board a request may submit")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.ListenAddr = addr
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	maxRows, _ := cmd.Flags().GetInt("max-rows")

	srv := &http.Server{
		Addr: cfg.ListenAddr,
		Handler: httpapi.NewHandler(
			httpapi.WithLogger(log),
			httpapi.WithRegistry(prometheus.NewRegistry()),
			httpapi.WithMaxRows(maxRows),
		),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdown(srv, log)
		return nil
	}
}

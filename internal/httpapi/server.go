// Package httpapi exposes headless solving over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/astarviz/astar"
	"github.com/katalvlaran/astarviz/grid"
	"github.com/katalvlaran/astarviz/internal/logging"
	"github.com/katalvlaran/astarviz/metrics"
	"github.com/katalvlaran/astarviz/session"
	"github.com/katalvlaran/astarviz/trace"
)

const (
	// DefaultMaxRows bounds the board size a request may submit.
	DefaultMaxRows = 256
	maxBodyBytes   = 1 << 20
)

// SolveRequest is the body of POST /v1/solve. Grid holds one string per
// row in the grid package's ASCII notation.
type SolveRequest struct {
	Grid  []string `json:"grid"`
	Trace bool     `json:"trace,omitempty"`
}

// SolveResponse reports one search. Path runs start to end inclusive and
// is empty unless Outcome is path_found.
type SolveResponse struct {
	Outcome  string       `json:"outcome"`
	Cost     int          `json:"cost"`
	Expanded int          `json:"expanded"`
	Path     []grid.Coord `json:"path"`
	Grid     []string     `json:"grid"`
	Trace    *trace.Trace `json:"trace,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server handles API requests. Each request solves on its own grid.
type Server struct {
	log      *slog.Logger
	metrics  *metrics.Collector
	gatherer prometheus.Gatherer
	maxRows  int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRegistry registers the search metrics on reg and serves them at
// GET /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.metrics = metrics.NewCollector(reg)
			s.gatherer = reg
		}
	}
}

// WithMaxRows overrides DefaultMaxRows.
func WithMaxRows(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxRows = n
		}
	}
}

// NewHandler builds the chi router.
func NewHandler(opts ...Option) http.Handler {
	s := &Server{log: logging.NewNop(), maxRows: DefaultMaxRows}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.Healthz)
	r.Post("/v1/solve", s.Solve)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Healthz handles GET /healthz.
func (s *Server) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok\n"))
}

// Solve handles POST /v1/solve.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	var body SolveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		s.fail(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if len(body.Grid) > s.maxRows {
		s.fail(w, http.StatusBadRequest, fmt.Errorf("grid has %d rows, limit is %d", len(body.Grid), s.maxRows))
		return
	}

	g, start, end, err := grid.ParseString(strings.Join(body.Grid, "\n"), 0)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	g.Reset()

	var opts []session.Option
	opts = append(opts, session.WithLogger(s.log))
	if s.metrics != nil {
		opts = append(opts, session.WithObserver(s.metrics))
	}
	sess := session.FromGrid(g, start, end, opts...)

	var rec trace.Recorder
	var onStep func(*grid.Cell)
	if body.Trace {
		onStep = rec.OnStep
	}
	res, err := sess.Run(r.Context(), onStep)
	switch {
	case errors.Is(err, session.ErrNotReady), errors.Is(err, astar.ErrInvalidEndpoints):
		s.fail(w, http.StatusUnprocessableEntity, err)
		return
	case err != nil:
		s.fail(w, http.StatusInternalServerError, err)
		return
	}

	resp := SolveResponse{
		Outcome:  res.Outcome.String(),
		Cost:     res.Cost,
		Expanded: res.Expanded,
		Path:     []grid.Coord{},
		Grid:     g.Lines(),
	}
	for _, c := range res.Path() {
		resp.Path = append(resp.Path, c.Coord())
	}
	if body.Trace {
		resp.Trace = rec.Trace(g, res)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	s.log.Warn("solve rejected", "status", status, "err", err)
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encode failed", "err", err)
	}
}

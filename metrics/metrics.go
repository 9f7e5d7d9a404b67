// Package metrics exports Prometheus instrumentation for searches.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/astarviz/astar"
)

// OutcomeInvalid labels searches rejected with astar.ErrInvalidEndpoints.
const OutcomeInvalid = "invalid"

// Collector groups the search metrics. It satisfies session.Observer.
type Collector struct {
	searches *prometheus.CounterVec
	expanded prometheus.Counter
	length   prometheus.Histogram
	duration prometheus.Histogram
}

// NewCollector creates the metrics and registers them with reg.
// A nil reg registers nothing, which suits tests and one-shot commands.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "astarviz_searches_total",
			Help: "Searches by terminal outcome.",
		}, []string{"outcome"}),
		expanded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "astarviz_cells_expanded_total",
			Help: "Cells popped from the open set across all searches.",
		}),
		length: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "astarviz_path_length",
			Help:    "Moves on found paths.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "astarviz_search_duration_seconds",
			Help:    "Wall time of searches, including observation hooks.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(c.searches, c.expanded, c.length, c.duration)
	}
	return c
}

// Observe records a finished search.
func (c *Collector) Observe(res *astar.Result, elapsed time.Duration) {
	c.searches.WithLabelValues(res.Outcome.String()).Inc()
	c.expanded.Add(float64(res.Expanded))
	c.duration.Observe(elapsed.Seconds())
	if res.Found() {
		c.length.Observe(float64(res.Cost))
	}
}

// ObserveError records a rejected search. Errors other than invalid
// endpoints are not counted.
func (c *Collector) ObserveError(err error) {
	if errors.Is(err, astar.ErrInvalidEndpoints) {
		c.searches.WithLabelValues(OutcomeInvalid).Inc()
	}
}

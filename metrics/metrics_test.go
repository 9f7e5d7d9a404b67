package metrics_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarviz/astar"
	"github.com/katalvlaran/astarviz/metrics"
)

func TestCollector_Observe(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	c := metrics.NewCollector(reg)

	c.Observe(&astar.Result{Outcome: astar.PathFound, Cost: 8, Expanded: 20}, 3*time.Millisecond)
	c.Observe(&astar.Result{Outcome: astar.NoPathExists, Expanded: 5}, time.Millisecond)
	c.Observe(&astar.Result{Outcome: astar.Cancelled}, time.Millisecond)
	c.ObserveError(fmt.Errorf("wrapped: %w", astar.ErrInvalidEndpoints))
	c.ObserveError(astar.ErrNilGrid)

	expected := `
# HELP astarviz_searches_total Searches by terminal outcome.
# TYPE astarviz_searches_total counter
astarviz_searches_total{outcome="cancelled"} 1
astarviz_searches_total{outcome="invalid"} 1
astarviz_searches_total{outcome="no_path"} 1
astarviz_searches_total{outcome="path_found"} 1
# HELP astarviz_cells_expanded_total Cells popped from the open set across all searches.
# TYPE astarviz_cells_expanded_total counter
astarviz_cells_expanded_total 25
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"astarviz_searches_total", "astarviz_cells_expanded_total"))

	count, err := testutil.GatherAndCount(reg, "astarviz_path_length", "astarviz_search_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewCollector_NilRegisterer(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.NewCollector(nil).Observe(&astar.Result{Outcome: astar.PathFound, Cost: 1}, 0)
	})
}

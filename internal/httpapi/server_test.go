package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarviz/grid"
	"github.com/katalvlaran/astarviz/internal/httpapi"
)

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/solve", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) httpapi.SolveResponse {
	t.Helper()
	var resp httpapi.SolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthz(t *testing.T) {
	h := httpapi.NewHandler()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok\n", w.Body.String())
}

func TestSolve_PathFound(t *testing.T) {
	h := httpapi.NewHandler()
	w := post(t, h, `{"grid": ["S..", "...", "..E"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode(t, w)
	assert.Equal(t, "path_found", resp.Outcome)
	assert.Equal(t, 4, resp.Cost)
	assert.Equal(t, 9, resp.Expanded)
	require.Len(t, resp.Path, 5)
	assert.Equal(t, grid.Coord{Row: 0, Col: 0}, resp.Path[0])
	assert.Equal(t, grid.Coord{Row: 2, Col: 2}, resp.Path[4])
	assert.Equal(t, []string{"Sxx", "*xx", "**E"}, resp.Grid)
	assert.Nil(t, resp.Trace)
}

func TestSolve_Trace(t *testing.T) {
	h := httpapi.NewHandler()
	w := post(t, h, `{"grid": ["S..", "...", "..E"], "trace": true}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	require.NotNil(t, resp.Trace)
	assert.Equal(t, 3, resp.Trace.Rows)
	assert.Len(t, resp.Trace.Steps, 14+3)
	assert.Equal(t, grid.Path, resp.Trace.Steps[len(resp.Trace.Steps)-1].State)
}

func TestSolve_StaleMarksIgnored(t *testing.T) {
	h := httpapi.NewHandler()
	w := post(t, h, `{"grid": ["Sxx", "*xx", "**E"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Sxx", "*xx", "**E"}, decode(t, w).Grid)
}

func TestSolve_NoPath(t *testing.T) {
	h := httpapi.NewHandler()
	w := post(t, h, `{"grid": ["S#.", "##.", "..E"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "no_path", resp.Outcome)
	assert.Empty(t, resp.Path)
	assert.Contains(t, w.Body.String(), `"path":[]`)
}

func TestSolve_Rejections(t *testing.T) {
	h := httpapi.NewHandler(httpapi.WithMaxRows(3))
	cases := []struct {
		name string
		body string
		code int
	}{
		{"not json", `{`, http.StatusBadRequest},
		{"unknown field", `{"grid": ["SE"], "extra": 1}`, http.StatusBadRequest},
		{"empty grid", `{"grid": []}`, http.StatusBadRequest},
		{"not square", `{"grid": ["S.", "..E"]}`, http.StatusBadRequest},
		{"bad rune", `{"grid": ["S?", ".E"]}`, http.StatusBadRequest},
		{"two starts", `{"grid": ["SS", ".E"]}`, http.StatusBadRequest},
		{"too big", `{"grid": ["S...", "....", "....", "...E"]}`, http.StatusBadRequest},
		{"no end", `{"grid": ["S.", ".."]}`, http.StatusUnprocessableEntity},
		{"no start", `{"grid": ["..", ".E"]}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := post(t, h, tc.body)
			assert.Equal(t, tc.code, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := httpapi.NewHandler(httpapi.WithRegistry(reg))
	require.Equal(t, http.StatusOK, post(t, h, `{"grid": ["S.", ".E"]}`).Code)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `astarviz_searches_total{outcome="path_found"} 1`)
}

func TestMetrics_NotMountedWithoutRegistry(t *testing.T) {
	h := httpapi.NewHandler()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/PeterChiang0101/CSCE679-Assignment1/internal/adapter/http"
	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/domain"
	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/observability"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

type mockCharts struct {
	err   error
	modes []domain.DisplayMode
}

// pngHeader is enough for the handler; decoding is covered in render tests.
var pngHeader = []byte("\x89PNG\r\n\x1a\n")

func (m *mockCharts) PNG(mode domain.DisplayMode) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.modes = append(m.modes, mode)
	return pngHeader, nil
}

func newTestServer(readyErr error, charts httpadapter.ChartProvider) *httpadapter.Server {
	metrics := observability.NewMetricsForTesting()
	modes := httpadapter.NewModeController(metrics)
	return httpadapter.NewServer(":0", charts, modes, &mockReadiness{err: readyErr}, slog.Default(), metrics)
}

func TestHealthzReturns200(t *testing.T) {
	srv := newTestServer(nil, &mockCharts{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	srv := newTestServer(nil, &mockCharts{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	srv := newTestServer(fmt.Errorf("dataset has not been loaded yet"), &mockCharts{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "dataset has not been loaded yet", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(nil, &mockCharts{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestChartServesCurrentMode(t *testing.T) {
	charts := &mockCharts{}
	srv := newTestServer(nil, charts)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chart.png", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, pngHeader, rec.Body.Bytes())
	assert.Equal(t, []domain.DisplayMode{domain.ShowMax}, charts.modes)
}

func TestChartModeQueryOverridesWithoutTogglingState(t *testing.T) {
	charts := &mockCharts{}
	srv := newTestServer(nil, charts)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chart.png?mode=min", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chart.png", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Second request still used the untouched default mode.
	assert.Equal(t, []domain.DisplayMode{domain.ShowMin, domain.ShowMax}, charts.modes)
}

func TestChartRejectsUnknownMode(t *testing.T) {
	srv := newTestServer(nil, &mockCharts{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chart.png?mode=median", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChartRenderFailure(t *testing.T) {
	srv := newTestServer(nil, &mockCharts{err: errors.New("boom")})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chart.png", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestToggleFlipsMode(t *testing.T) {
	charts := &mockCharts{}
	srv := newTestServer(nil, charts)

	toggle := func() string {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/toggle", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body["mode"]
	}

	assert.Equal(t, "min", toggle())
	assert.Equal(t, "max", toggle())

	// The chart now follows the flag again.
	srv.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/toggle", nil))
	srv.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/chart.png", nil))
	assert.Equal(t, []domain.DisplayMode{domain.ShowMin}, charts.modes)
}

func TestModeController(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	c := httpadapter.NewModeController(metrics)

	assert.Equal(t, domain.ShowMax, c.Mode())
	assert.Equal(t, domain.ShowMin, c.Toggle())
	assert.Equal(t, domain.ShowMin, c.Mode())
	assert.Equal(t, domain.ShowMax, c.Toggle())
	assert.Equal(t, domain.ShowMax, c.Mode())
}

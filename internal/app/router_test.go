package app_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/publish-data/publish-data/internal/app"
	"github.com/publish-data/publish-data/internal/datafiles"
	"github.com/publish-data/publish-data/internal/observability"
	"github.com/publish-data/publish-data/internal/shared"
	"github.com/publish-data/publish-data/internal/view"
	_ "github.com/publish-data/publish-data/testing"
)

func newTestRouter(t *testing.T) (http.Handler, *observability.Metrics) {
	t.Helper()
	templates, err := view.NewEngine()
	require.NoError(t, err)
	metrics := observability.NewMetrics()
	clock := shared.FixedClock{At: time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)}
	handler := datafiles.NewHandler(nil, datafiles.NewResolver(), templates, clock, metrics)
	router := app.NewRouter(app.RouterParams{
		Config:           &app.Config{AppEnv: "test", AppRateLimit: 100, AppRequestTimeout: 5 * time.Second},
		DatafilesHandler: handler,
		Metrics:          metrics,
	})
	return router, metrics
}

func TestRouterHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	require.NotEmpty(t, rec.Header().Get("X-Ratelimit-Limit"))
}

func TestRouterResolveRecordsMetrics(t *testing.T) {
	router, _ := newTestRouter(t)

	body := bytes.NewBufferString(`{"frequency":"monthly","start_month":"6","start_year":"2019"}`)
	req := httptest.NewRequest(http.MethodPost, "/datafiles/dates/resolve", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "2019-06-01", payload["start_date"])
	require.Equal(t, "2019-06-30", payload["end_date"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	out, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(out), `publish_datafile_date_resolutions_total{frequency="monthly",outcome="resolved"} 1`)
	require.Contains(t, string(out), `publish_http_requests_total{code="200",route="/datafiles/dates/resolve"} 1`)
}

func TestRouterUnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/datafiles/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

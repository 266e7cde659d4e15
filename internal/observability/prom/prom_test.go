package prom

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internhub/marketplace-web/internal/observability/metrics"
)

func TestCanonicalPath(t *testing.T) {
	tests := map[string]string{
		"/internships/42":               "/internships/:id",
		"/org/internships/7/edit":       "/org/internships/:id/edit",
		"/org/applications/3/resume":    "/org/applications/:id/resume",
		"/static/css/app.css":           "/static/*",
		"/admin/organizations":          "/admin/organizations",
		"/internships/42/favourite/901": "/internships/:id/favourite/:id",
	}
	for in, want := range tests {
		assert.Equal(t, want, CanonicalPath(in), in)
	}
}

func TestMetrics_SinkRoutesKnownNames(t *testing.T) {
	m := New("test")
	metrics.EmitUpstreamCall(m, metrics.UpstreamCall{Operation: "internships.list", Status: 200, Duration: time.Millisecond})
	metrics.EmitSessionInit(m, "anonymous")
	m.Count("custom.thing", 2, nil)
	m.Gauge(metrics.NameViewCacheSize, 5, nil)

	assert.InDelta(t, 1, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("internships.list", "2xx", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.sessionInit.WithLabelValues("anonymous")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.events.WithLabelValues("custom.thing")), 0)
	assert.InDelta(t, 5, testutil.ToFloat64(m.gauges.WithLabelValues(metrics.NameViewCacheSize)), 0)
}

func TestMetrics_InstrumentAndExpose(t *testing.T) {
	m := New("test")
	h := m.InstrumentHandler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/internships/9", nil))
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/internships/:id", "418")), 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "test_http_requests_total"))
}

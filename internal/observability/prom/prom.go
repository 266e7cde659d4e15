// Package prom exposes metrics in the Prometheus exposition format.
// Metrics implements the statsd.Sink interface so the rest of the code emits
// through one abstraction regardless of backend.
package prom

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/internhub/marketplace-web/internal/observability/metrics"
	"github.com/internhub/marketplace-web/internal/observability/statsd"
)

const defaultNamespace = "internhub_web"

// Metrics holds an isolated registry and the collectors registered on it.
type Metrics struct {
	Registry *prometheus.Registry

	httpInFlight     prometheus.Gauge
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	sessionInit      *prometheus.CounterVec
	viewLoads        *prometheus.CounterVec
	viewLoadDuration *prometheus.HistogramVec
	gauges           *prometheus.GaugeVec
	events           *prometheus.CounterVec
	eventDuration    *prometheus.HistogramVec
}

var _ statsd.Sink = (*Metrics)(nil)

// New registers the collectors on a fresh registry.
func New(namespace string) *Metrics {
	ns := strings.TrimSpace(namespace)
	if ns == "" {
		ns = defaultNamespace
	}
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Subsystem: "http", Name: "inflight_requests",
			Help: "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "http", Name: "requests_total",
			Help: "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns, Subsystem: "http", Name: "request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "path"}),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "upstream", Name: "requests_total",
			Help: "Outbound marketplace API calls.",
		}, []string{"operation", "status_class", "result"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns, Subsystem: "upstream", Name: "request_duration_seconds",
			Help:    "Duration of outbound marketplace API calls.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		}, []string{"operation"}),
		sessionInit: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "session", Name: "initialize_total",
			Help: "Session initialisations by outcome.",
		}, []string{"outcome"}),
		viewLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "view", Name: "loads_total",
			Help: "Resource view loads by view and result.",
		}, []string{"view", "result"}),
		viewLoadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns, Subsystem: "view", Name: "load_duration_seconds",
			Help:    "Duration of resource view loads.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		}, []string{"view"}),
		gauges: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: ns, Name: "gauge",
			Help: "Named gauges emitted through the metrics sink.",
		}, []string{"name"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Name: "events_total",
			Help: "Named counters emitted through the metrics sink.",
		}, []string{"name"}),
		eventDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns, Name: "event_duration_seconds",
			Help:    "Named timings emitted through the metrics sink.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
		}, []string{"name"}),
	}

	m.Registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.upstreamRequests,
		m.upstreamDuration,
		m.sessionInit,
		m.viewLoads,
		m.viewLoadDuration,
		m.gauges,
		m.events,
		m.eventDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
	return m
}

// Handler returns an HTTP handler exposing the registered metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Count maps known metric names onto dedicated collectors; others land in events_total.
func (m *Metrics) Count(name string, value int64, tags map[string]string) {
	v := float64(value)
	switch name {
	case metrics.NameUpstreamRequest:
		m.upstreamRequests.WithLabelValues(tags["operation"], tags["status_class"], tags["result"]).Add(v)
	case metrics.NameSessionInit:
		m.sessionInit.WithLabelValues(tags["outcome"]).Add(v)
	case metrics.NameViewLoad:
		m.viewLoads.WithLabelValues(tags["view"], tags["result"]).Add(v)
	default:
		m.events.WithLabelValues(name).Add(v)
	}
}

func (m *Metrics) Gauge(name string, value float64, _ map[string]string) {
	m.gauges.WithLabelValues(name).Set(value)
}

func (m *Metrics) Timing(name string, value time.Duration, tags map[string]string) {
	secs := value.Seconds()
	switch name {
	case metrics.NameUpstreamDuration:
		m.upstreamDuration.WithLabelValues(tags["operation"]).Observe(secs)
	case metrics.NameViewLoad:
		m.viewLoadDuration.WithLabelValues(tags["view"]).Observe(secs)
	default:
		m.eventDuration.WithLabelValues(name).Observe(secs)
	}
}

// InstrumentHandler wraps next with HTTP request metrics.
func (m *Metrics) InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		m.httpInFlight.Inc()
		defer m.httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		path := CanonicalPath(r.URL.Path)
		method := strings.ToUpper(r.Method)
		m.httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		m.httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	})
}

var numericSegment = regexp.MustCompile(`/\d+(/|$)`)

// CanonicalPath collapses numeric ids and static asset names to keep label cardinality bounded.
func CanonicalPath(p string) string {
	if strings.HasPrefix(p, "/static/") {
		return "/static/*"
	}
	for numericSegment.MatchString(p) {
		p = numericSegment.ReplaceAllString(p, "/:id$1")
	}
	if p == "" {
		return "/"
	}
	return p
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

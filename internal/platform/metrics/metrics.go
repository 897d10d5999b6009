// Package metrics provides Prometheus instrumentation for the HTTP surface:
// a request counter and a latency histogram, both exposed in the text
// exposition format on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// latencyBuckets are the histogram boundaries in seconds.
var latencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}

// Metrics holds the service's Prometheus collectors behind a private registry
// so tests can create isolated instances.
type Metrics struct {
	registry       *prometheus.Registry
	requestCount   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// New creates a Metrics instance with a fresh registry and registers the
// request counter and latency histogram on it.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: latencyBuckets,
		},
		[]string{"method", "path"},
	)

	registry.MustRegister(requestCount, requestLatency)

	return &Metrics{
		registry:       registry,
		requestCount:   requestCount,
		requestLatency: requestLatency,
	}
}

// Middleware records a count and latency observation for every request.
// The path label uses the chi route pattern (e.g. /api/tasks/{id}) rather
// than the raw URL, keeping label cardinality bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start).Seconds()

		path := r.URL.Path
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
			if pattern := routeCtx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		status := strconv.Itoa(ww.Status())
		m.requestCount.WithLabelValues(r.Method, path, status).Inc()
		m.requestLatency.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// Handler returns the /metrics endpoint serving the registry's collectors in
// the Prometheus text exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, primarily for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

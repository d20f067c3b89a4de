package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instrumentation for the HTTP server.
// Each Metrics instance carries its own registry so that servers can be
// created and torn down independently (and repeatedly in tests) without
// duplicate registration panics.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	activeRequests prometheus.Gauge
	requestsTotal  *prometheus.CounterVec
	evalDuration   prometheus.Histogram
	evalErrors     *prometheus.CounterVec
}

// NewMetrics creates and registers the server metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bigcalc_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bigcalc_requests_total",
			Help: "Total number of HTTP requests received.",
		}, []string{"endpoint"}),
		evalDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bigcalc_eval_duration_seconds",
			Help:    "Duration of expression evaluations in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		}),
		evalErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bigcalc_eval_errors_total",
			Help: "Total number of failed expression evaluations.",
		}, []string{"reason"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.activeRequests,
		m.requestsTotal,
		m.evalDuration,
		m.evalErrors,
	)

	// Touch the vectors so they appear in scrapes before the first request.
	m.requestsTotal.WithLabelValues("eval").Add(0)
	m.evalErrors.WithLabelValues("syntax").Add(0)

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return m
}

// IncrementActiveRequests increments the active requests gauge.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests decrements the active requests gauge.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// CountRequest increments the request counter for the given endpoint.
func (m *Metrics) CountRequest(endpoint string) {
	m.requestsTotal.WithLabelValues(endpoint).Inc()
}

// ObserveEvalDuration records the duration of a completed evaluation.
func (m *Metrics) ObserveEvalDuration(seconds float64) {
	m.evalDuration.Observe(seconds)
}

// CountEvalError increments the evaluation error counter for the reason.
func (m *Metrics) CountEvalError(reason string) {
	m.evalErrors.WithLabelValues(reason).Inc()
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

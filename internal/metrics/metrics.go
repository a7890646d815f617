// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors registered on one registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	httpInFlight   prometheus.Gauge
	searches       *prometheus.CounterVec
	searchResults  prometheus.Histogram
	historyErrors  prometheus.Counter
	identityErrors *prometheus.CounterVec
}

// New creates the collectors on a fresh registry, alongside the Go runtime
// and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		httpInFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests being served",
		}),
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "leadfinder_searches_total",
			Help: "Total number of lead searches by outcome",
		}, []string{"outcome"}),
		searchResults: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "leadfinder_search_results",
			Help:    "Number of leads returned by a search",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		historyErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "leadfinder_search_history_errors_total",
			Help: "Total number of search history writes that failed",
		}),
		identityErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "leadfinder_identity_errors_total",
			Help: "Total number of failed identity service calls by operation",
		}, []string{"operation"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// RequestStarted increments the in-flight gauge; call the returned
// function when the request is done.
func (m *Metrics) RequestStarted() func() {
	m.httpInFlight.Inc()
	return m.httpInFlight.Dec
}

// ObserveRequest records one served request. route is the route pattern,
// not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// SearchCompleted records a successful search and its result count.
func (m *Metrics) SearchCompleted(results int) {
	m.searches.WithLabelValues("ok").Inc()
	m.searchResults.Observe(float64(results))
}

// SearchFailed records a search aborted by a store error.
func (m *Metrics) SearchFailed() {
	m.searches.WithLabelValues("error").Inc()
}

// HistoryWriteFailed records a search history write that did not happen.
func (m *Metrics) HistoryWriteFailed() {
	m.historyErrors.Inc()
}

// IdentityFailed records a failed identity service call.
func (m *Metrics) IdentityFailed(operation string) {
	m.identityErrors.WithLabelValues(operation).Inc()
}

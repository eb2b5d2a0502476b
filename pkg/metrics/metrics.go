// Package metrics exposes Prometheus instrumentation for the detection
// service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all metrics for the application.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal    prometheus.Counter
	requestDuration  prometheus.Histogram
	requestsInFlight prometheus.Gauge

	detectionsTotal   *prometheus.CounterVec
	detectionDuration prometheus.Histogram
	topConfidence     prometheus.Histogram

	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

// NewMetrics creates a metrics instance backed by its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		requestsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}),

		requestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		requestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		}),

		detectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "detections_total",
				Help: "Total number of detection requests",
			},
			[]string{"language", "status"},
		),

		detectionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "detection_duration_seconds",
			Help:    "Detection duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
		}),

		topConfidence: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "detection_top_confidence",
			Help:    "Distribution of top-ranked confidence values",
			Buckets: []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "result_cache_hits_total",
			Help: "Total number of result cache hits",
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "result_cache_misses_total",
			Help: "Total number of result cache misses",
		}),
	}
}

// RecordRequest records a new HTTP request.
func (m *Metrics) RecordRequest() {
	m.requestsTotal.Inc()
}

// RecordRequestDuration records the duration of an HTTP request.
func (m *Metrics) RecordRequestDuration(duration time.Duration) {
	m.requestDuration.Observe(duration.Seconds())
}

// IncRequestsInFlight increments the in-flight requests gauge.
func (m *Metrics) IncRequestsInFlight() {
	m.requestsInFlight.Inc()
}

// DecRequestsInFlight decrements the in-flight requests gauge.
func (m *Metrics) DecRequestsInFlight() {
	m.requestsInFlight.Dec()
}

// RecordDetection records a completed detection with its reported language.
func (m *Metrics) RecordDetection(language, status string, duration time.Duration) {
	m.detectionsTotal.WithLabelValues(language, status).Inc()
	m.detectionDuration.Observe(duration.Seconds())
}

// RecordTopConfidence records the winning confidence of a detection.
func (m *Metrics) RecordTopConfidence(value float64) {
	m.topConfidence.Observe(value)
}

// RecordCacheHit records a result cache hit.
func (m *Metrics) RecordCacheHit() {
	m.cacheHits.Inc()
}

// RecordCacheMiss records a result cache miss.
func (m *Metrics) RecordCacheMiss() {
	m.cacheMisses.Inc()
}

// Handler returns an HTTP handler serving the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// GetRegistry returns the underlying registry.
func (m *Metrics) GetRegistry() prometheus.Gatherer {
	return m.registry
}

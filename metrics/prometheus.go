// Package metrics provides Prometheus metrics for the showdown duel service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the duel service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Core Business Metrics
	duelsPlayed   *prometheus.CounterVec
	rejectedHands *prometheus.CounterVec
	duelDuration  prometheus.Histogram

	// Operational Health Metrics
	activeSessions prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "showdown",
		subsystem:        "server",
		histogramBuckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50},
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Core Business Metrics
	m.duelsPlayed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "duels_total",
			Help:      "Total number of duels played, labelled by outcome",
		},
		[]string{"outcome"},
	)

	m.rejectedHands = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rejected_hands_total",
			Help:      "Total number of hand submissions rejected by validation, labelled by reason",
		},
		[]string{"reason"},
	)

	m.duelDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duel_duration_milliseconds",
		Help:      "Histogram of duel evaluation duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	// Operational Health Metrics
	m.activeSessions = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "active_sessions",
		Help:      "Current number of connected websocket sessions",
	})

	// HTTP Performance Metrics
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint, method, and status code",
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// RecordDuel increments the duels counter for the given outcome.
func RecordDuel(outcome string) {
	globalManager.duelsPlayed.WithLabelValues(outcome).Inc()
}

// RecordRejectedHand increments the rejected hands counter for the given reason.
func RecordRejectedHand(reason string) {
	globalManager.rejectedHands.WithLabelValues(reason).Inc()
}

// RecordDuelDuration records duel evaluation duration in milliseconds.
func RecordDuelDuration(latencyMs float64) {
	globalManager.duelDuration.Observe(latencyMs)
}

// UpdateActiveSessions sets the current number of websocket sessions.
func UpdateActiveSessions(count int) {
	globalManager.activeSessions.Set(float64(count))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

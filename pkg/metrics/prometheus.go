// Package metrics provides Prometheus metrics for the activity signup service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Core business metrics
	signupsTotal             prometheus.Counter
	unregistrationsTotal     prometheus.Counter
	signupConflictsTotal     prometheus.Counter
	unregisterConflictsTotal prometheus.Counter
	unknownActivityTotal     prometheus.Counter
	capacityRejectionsTotal  prometheus.Counter

	// Roster state gauges
	activities   prometheus.Gauge
	participants prometheus.Gauge

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error tracking
	errorsByEndpoint *prometheus.CounterVec
	errorsByType     *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "mhs",
		subsystem:        "signups",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.signupsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "signups_total",
		Help:      "Total number of successful activity signups",
	})

	m.unregistrationsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unregistrations_total",
		Help:      "Total number of successful activity unregistrations",
	})

	m.signupConflictsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "signup_conflicts_total",
		Help:      "Total number of signups rejected because the student was already registered",
	})

	m.unregisterConflictsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unregister_conflicts_total",
		Help:      "Total number of unregistrations rejected because the student was not registered",
	})

	m.unknownActivityTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unknown_activity_total",
		Help:      "Total number of requests naming an activity that does not exist",
	})

	m.capacityRejectionsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "capacity_rejections_total",
		Help:      "Total number of signups rejected by capacity enforcement (disabled by default)",
	})

	m.activities = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "activities",
		Help:      "Number of activities in the registry",
	})

	m.participants = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "participants",
		Help:      "Total number of participant entries across all activities",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint, method, and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.errorsByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Total number of error responses by endpoint, method, and error type",
	}, []string{"endpoint", "method", "error_type"})

	m.errorsByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_type_total",
		Help:      "Total number of error responses by error type and severity",
	}, []string{"error_type", "severity"})
}

// GetRegistry returns the custom Prometheus registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordSignup increments the successful signup counter.
func RecordSignup() {
	if globalManager.enabled {
		globalManager.signupsTotal.Inc()
	}
}

// RecordUnregistration increments the successful unregistration counter.
func RecordUnregistration() {
	if globalManager.enabled {
		globalManager.unregistrationsTotal.Inc()
	}
}

// RecordSignupConflict increments the already-registered rejection counter.
func RecordSignupConflict() {
	if globalManager.enabled {
		globalManager.signupConflictsTotal.Inc()
	}
}

// RecordUnregisterConflict increments the not-registered rejection counter.
func RecordUnregisterConflict() {
	if globalManager.enabled {
		globalManager.unregisterConflictsTotal.Inc()
	}
}

// RecordUnknownActivity increments the unknown activity counter.
func RecordUnknownActivity() {
	if globalManager.enabled {
		globalManager.unknownActivityTotal.Inc()
	}
}

// RecordCapacityRejection increments the capacity rejection counter.
func RecordCapacityRejection() {
	if globalManager.enabled {
		globalManager.capacityRejectionsTotal.Inc()
	}
}

// UpdateActivities sets the activity count gauge.
func UpdateActivities(n int) {
	if globalManager.enabled {
		globalManager.activities.Set(float64(n))
	}
}

// UpdateParticipants sets the total participant count gauge.
func UpdateParticipants(n int) {
	if globalManager.enabled {
		globalManager.participants.Set(float64(n))
	}
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration observes the HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
	}
}

// RecordErrorByEndpoint increments the per-endpoint error counter.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if globalManager.enabled {
		globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// RecordErrorByType increments the per-type error counter.
func RecordErrorByType(errorType, severity string) {
	if globalManager.enabled {
		globalManager.errorsByType.WithLabelValues(errorType, severity).Inc()
	}
}

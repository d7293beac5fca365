// Package metrics provides Prometheus metrics for the scorecard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the scorecard service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Business metrics
	recordsTotal      prometheus.Gauge
	mutations         *prometheus.CounterVec
	ingestionLoaded   prometheus.Counter
	ingestionSkipped  prometheus.Counter
	viewBuildDuration prometheus.Histogram
	storeLatency      prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error tracking
	errorsByComponent *prometheus.CounterVec
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
		namespace:        "scorecard",
		subsystem:        "core",
		histogramBuckets: prometheus.DefBuckets,
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

	m.recordsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_total",
		Help:      "Current number of company records in the store",
	})

	m.mutations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "mutations_total",
			Help:      "Store mutations by operation and outcome",
		},
		[]string{"op", "outcome"},
	)

	m.ingestionLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ingestion_rows_loaded_total",
		Help:      "Rows accepted by bulk ingestion",
	})

	m.ingestionSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ingestion_rows_skipped_total",
		Help:      "Rows skipped by bulk ingestion (duplicate or empty names)",
	})

	m.viewBuildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "view_build_duration_milliseconds",
		Help:      "Time to rebuild the scored and ranked projection",
		Buckets:   m.histogramBuckets,
	})

	m.storeLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_operation_latency_milliseconds",
		Help:      "Latency of record store mutations",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Errors by component and kind",
		},
		[]string{"component", "kind"},
	)
}

// GetRegistry returns the custom Prometheus registry used by the global
// manager, for serving via promhttp.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// UpdateRecordsTotal sets the current record count gauge.
func UpdateRecordsTotal(n int) {
	globalManager.recordsTotal.Set(float64(n))
}

// RecordMutation counts a store mutation by operation and outcome.
func RecordMutation(op, outcome string) {
	globalManager.mutations.WithLabelValues(op, outcome).Inc()
}

// RecordIngestionRows counts accepted and skipped rows of a bulk load.
func RecordIngestionRows(loaded, skipped int) {
	globalManager.ingestionLoaded.Add(float64(loaded))
	globalManager.ingestionSkipped.Add(float64(skipped))
}

// RecordViewBuildDuration observes one projection rebuild, in milliseconds.
func RecordViewBuildDuration(ms float64) {
	globalManager.viewBuildDuration.Observe(ms)
}

// RecordStoreLatency observes one store mutation, in milliseconds.
func RecordStoreLatency(ms float64) {
	globalManager.storeLatency.Observe(ms)
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request duration, in
// milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}

// RecordErrorByComponent counts an error for a component.
func RecordErrorByComponent(component, kind string) {
	globalManager.errorsByComponent.WithLabelValues(component, kind).Inc()
}

// internal/utils/metrics.go
package utils

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const metricsNamespace = "segmentation"

// APIMetrics represents API-specific metrics. Each instance owns its registry
// so several routers can coexist in one process.
type APIMetrics struct {
	registry *prometheus.Registry
	logger   *zap.Logger

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	errorsTotal     *prometheus.CounterVec
	segmentsTotal   prometheus.Counter
	segmentsPerText prometheus.Histogram
	textBytes       prometheus.Histogram
}

// NewAPIMetrics creates a new API metrics instance
func NewAPIMetrics(logger *zap.Logger) *APIMetrics {
	if logger == nil {
		logger = zap.NewNop()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &APIMetrics{
		registry: reg,
		logger:   logger,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of API requests",
		}, []string{"method", "path", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"method", "path"}),
		errorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "api",
			Name:      "errors_total",
			Help:      "Error responses by error code",
		}, []string{"code"}),
		segmentsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "segments_total",
			Help:      "Total number of segments produced",
		}),
		segmentsPerText: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "segments_per_text",
			Help:      "Number of segments produced per request",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		textBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "text_bytes",
			Help:      "Size of segmented input text in bytes",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
		}),
	}
}

// RecordAPIRequest records metrics for an API request
func (am *APIMetrics) RecordAPIRequest(path, method string, statusCode int, duration time.Duration) {
	am.requestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	am.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordSegmentation records the outcome of one segmentation call
func (am *APIMetrics) RecordSegmentation(textBytes, segments int) {
	am.segmentsTotal.Add(float64(segments))
	am.segmentsPerText.Observe(float64(segments))
	am.textBytes.Observe(float64(textBytes))
}

// RecordError records an error response by its public code
func (am *APIMetrics) RecordError(code string) {
	am.errorsTotal.WithLabelValues(code).Inc()
}

// Registry exposes the underlying registry, mainly for tests
func (am *APIMetrics) Registry() *prometheus.Registry {
	return am.registry
}

// Handler serves the Prometheus exposition format for this instance
func (am *APIMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(am.registry, promhttp.HandlerOpts{
		ErrorLog: zap.NewStdLog(am.logger),
	})
}

// ErrorCount returns the counter for one error code
func (am *APIMetrics) ErrorCount(code string) prometheus.Counter {
	return am.errorsTotal.WithLabelValues(code)
}

// SegmentsTotal returns the produced-segments counter
func (am *APIMetrics) SegmentsTotal() prometheus.Counter {
	return am.segmentsTotal
}

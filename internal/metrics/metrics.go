// Package metrics provides Prometheus metrics collection for the rate service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QuotesTotal tracks rate quote computations by outcome.
	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_quotes_total",
			Help: "Total number of shipping rate quotes",
		},
		[]string{"status"},
	)

	// QuoteDuration tracks quote computation duration.
	QuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rate_quote_duration_seconds",
			Help:    "Shipping rate quote computation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// TariffEntries tracks the entry count of the active tariff snapshot.
	TariffEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tariff_snapshot_entries",
			Help: "Number of entries in the active tariff table snapshot",
		},
	)

	// TariffRegions tracks the region count of the active tariff snapshot.
	TariffRegions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tariff_snapshot_regions",
			Help: "Number of regions in the active tariff table snapshot",
		},
	)

	// TariffVersion tracks the version of the active tariff snapshot.
	TariffVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tariff_snapshot_version",
			Help: "Version of the active tariff table snapshot",
		},
	)

	// CacheOperationsTotal tracks quote cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_cache_operations_total",
			Help: "Total number of quote cache operations",
		},
		[]string{"operation", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuote records metrics for one quote computation.
func RecordQuote(duration time.Duration, status string) {
	QuoteDuration.Observe(duration.Seconds())
	QuotesTotal.WithLabelValues(status).Inc()
}

// RecordCacheOperation records metrics for a quote cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateTariffSnapshot updates the tariff snapshot gauges after a swap.
func UpdateTariffSnapshot(entries, regions int, version int64) {
	TariffEntries.Set(float64(entries))
	TariffRegions.Set(float64(regions))
	TariffVersion.Set(float64(version))
}

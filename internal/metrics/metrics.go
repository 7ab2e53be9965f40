// Package metrics exposes Prometheus metrics for HTTP requests and processing runs.
package metrics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var collectors = []prometheus.Collector{
	requestCount,
	requestDuration,
	itemsProcessed,
	itemsFailed,
	itemsWarned,
	processDuration,
}

// Register registers all metrics with the default registry.
func Register() error {
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

// Unregister removes all metrics from the default registry.
//
// This is needed to cleanly exit and to configure a new router in tests.
func Unregister() bool {
	ok := true
	for _, c := range collectors {
		ok = prometheus.Unregister(c) && ok
	}

	return ok
}

// Handler returns the gin handler serving the metrics.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

var itemsProcessed = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "recurring_items_processed_total",
		Help: "How many recurring items were turned into transactions and advanced.",
	},
)

var itemsFailed = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "recurring_items_failed_total",
		Help: "How many recurring items failed to process and were left unchanged.",
	},
)

var itemsWarned = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "recurring_items_warnings_total",
		Help: "How many recurring items were recorded in the ledger, but could not be advanced.",
	},
)

var processDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name: "recurring_process_duration_seconds",
		Help: "The duration of processing runs in seconds.",
	},
)

// ObserveRun records the outcome of a processing run.
func ObserveRun(processed, failed, warnings int, elapsed time.Duration) {
	itemsProcessed.Add(float64(processed))
	itemsFailed.Add(float64(failed))
	itemsWarned.Add(float64(warnings))
	processDuration.Observe(elapsed.Seconds())
}

// Middleware updates the HTTP request metrics.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := time.Since(start).Seconds()

		// Replace all URL parameters with their name to reduce cardinality
		// https://prometheus.io/docs/practices/naming/#labels
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}

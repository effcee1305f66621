package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	adviceComputedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glowyze_advice_computed_total",
			Help: "Recommendation lists computed",
		},
		[]string{"locale", "with_scan"},
	)

	adviceItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "glowyze_advice_items",
			Help:    "Number of ingredients in a computed recommendation list",
			Buckets: []float64{1, 2, 3, 5, 8, 10, 14},
		},
	)

	scansRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "glowyze_scans_recorded_total",
			Help: "Skin scans recorded",
		},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glowyze_http_requests_total",
			Help: "HTTP requests by route and status",
		},
		[]string{"route", "method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "glowyze_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"route", "method"},
	)
)

// ObserveAdvice records one computed recommendation list.
func ObserveAdvice(locale string, withScan bool, items int) {
	adviceComputedTotal.WithLabelValues(locale, strconv.FormatBool(withScan)).Inc()
	adviceItems.Observe(float64(items))
}

// IncScansRecorded increments the recorded scans counter.
func IncScansRecorded() {
	scansRecordedTotal.Inc()
}

// Middleware records request counts and latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

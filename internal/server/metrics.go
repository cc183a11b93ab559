package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var httpRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
	},
	[]string{"method", "path", "status"},
)

// MetricsMiddleware records per-request duration labeled by route template.
func MetricsMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	httpRequestDuration.
		WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
		Observe(time.Since(start).Seconds())
}

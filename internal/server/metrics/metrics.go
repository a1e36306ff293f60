// Package metrics holds the server's Prometheus collectors and the gin
// middleware that feeds the HTTP ones.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// - http_requests_total: requests by route, method and status
// - http_request_duration_seconds: latency by route and method
// - tokens_issued_total: successful logins
// - blogs_created_total: blogs stored through the API
var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests by path, method and status."},
		[]string{"path", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request latency in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"path", "method"},
	)
	TokensIssued = prometheus.NewCounter(prometheus.CounterOpts{Name: "tokens_issued_total", Help: "Identity tokens issued."})
	BlogsCreated = prometheus.NewCounter(prometheus.CounterOpts{Name: "blogs_created_total", Help: "Blogs created."})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, TokensIssued, BlogsCreated)
}

// Handler returns the middleware recording request count and latency.
// Unmatched routes share the "unmatched" path label.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		dur := time.Since(start).Seconds()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPLatency.WithLabelValues(path, c.Request.Method).Observe(dur)
		HTTPRequests.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Exposer serves the default registry in the Prometheus text format.
func Exposer() gin.HandlerFunc { return gin.WrapH(promhttp.Handler()) }

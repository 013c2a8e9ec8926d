package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPRecorder receives one observation per request. *metrics.Metrics
// satisfies it.
type HTTPRecorder interface {
	RecordHTTPRequest(method, route string, status int, took time.Duration)
}

// Metrics records Prometheus request counters and latency. Routes are
// labelled by their pattern so ids do not explode cardinality.
func Metrics(rec HTTPRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		rec.RecordHTTPRequest(c.Request.Method, routeOf(c), c.Writer.Status(), time.Since(start))
	}
}

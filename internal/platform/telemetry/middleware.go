package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// TraceIDHeader carries the active trace id back to the caller.
const TraceIDHeader = "X-Trace-ID"

// httpInstruments are the OTel instruments recorded per request.
type httpInstruments struct {
	requestDuration metric.Float64Histogram
	activeRequests  metric.Int64UpDownCounter
}

func newHTTPInstruments() (*httpInstruments, error) {
	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &httpInstruments{requestDuration: requestDuration, activeRequests: activeRequests}, nil
}

// Middleware records OTel request metrics and echoes the trace id in the
// X-Trace-ID response header. Install it after TracingMiddleware.
func Middleware() gin.HandlerFunc {
	inst, err := newHTTPInstruments()
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		start := time.Now()
		ctx := c.Request.Context()

		if id := TraceID(ctx); id != "" {
			c.Header(TraceIDHeader, id)
		}

		if inst == nil {
			c.Next()

			return
		}

		route := attribute.String("http.route", c.FullPath())
		method := attribute.String("http.method", c.Request.Method)

		inst.activeRequests.Add(ctx, 1, metric.WithAttributes(method, route))
		defer inst.activeRequests.Add(ctx, -1, metric.WithAttributes(method, route))

		c.Next()

		inst.requestDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
			method, route, attribute.Int("http.status_code", c.Writer.Status()),
		))
	}
}

// TracingMiddleware starts a server span per request.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}

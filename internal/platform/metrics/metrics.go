// Package metrics exposes Prometheus collectors for the numerology service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen/numerology-service/internal/domain/numerology"
)

const namespace = "numerology"

// Metrics holds all Prometheus collectors.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RateLimitHits       *prometheus.CounterVec

	ReadingsComputed *prometheus.CounterVec // by number kind and value
	ReadingsDeleted  prometheus.Counter
	ReportsRendered  *prometheus.CounterVec // by status
	ReportsPruned    prometheus.Counter
	AuthAttempts     *prometheus.CounterVec // by operation and status
}

// New registers every collector with reg, or with the default registerer when
// reg is nil.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),

		RateLimitHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_hits_total",
			Help:      "Requests rejected by the rate limiter, by route.",
		}, []string{"route"}),

		ReadingsComputed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "readings_computed_total",
			Help:      "Computed numbers by kind (life_path, expression, soul_urge) and value.",
		}, []string{"kind", "value"}),

		ReadingsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "readings_deleted_total",
			Help:      "Readings deleted by their owners.",
		}),

		ReportsRendered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_rendered_total",
			Help:      "PDF reports rendered, by status.",
		}, []string{"status"}),

		ReportsPruned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_pruned_total",
			Help:      "PDF reports removed by the retention job.",
		}),

		AuthAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Registration and login attempts by operation and status.",
		}, []string{"operation", "status"}),
	}
}

// RecordHTTPRequest records one finished request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, took time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(took.Seconds())
}

// RecordRateLimitHit counts a rejected request.
func (m *Metrics) RecordRateLimitHit(route string) {
	m.RateLimitHits.WithLabelValues(route).Inc()
}

// RecordReading counts each number of a computed reading.
func (m *Metrics) RecordReading(n numerology.Numbers) {
	m.ReadingsComputed.WithLabelValues("life_path", strconv.Itoa(n.LifePath)).Inc()
	m.ReadingsComputed.WithLabelValues("expression", strconv.Itoa(n.Expression)).Inc()
	m.ReadingsComputed.WithLabelValues("soul_urge", strconv.Itoa(n.SoulUrge)).Inc()
}

// RecordReadingDeleted counts a deleted reading.
func (m *Metrics) RecordReadingDeleted() {
	m.ReadingsDeleted.Inc()
}

// RecordReport counts a render attempt. Status is "success" or "failure".
func (m *Metrics) RecordReport(status string) {
	m.ReportsRendered.WithLabelValues(status).Inc()
}

// RecordPruned adds n pruned reports.
func (m *Metrics) RecordPruned(n int) {
	m.ReportsPruned.Add(float64(n))
}

// RecordAuth counts an auth attempt. Operation is "register" or "login".
func (m *Metrics) RecordAuth(operation, status string) {
	m.AuthAttempts.WithLabelValues(operation, status).Inc()
}

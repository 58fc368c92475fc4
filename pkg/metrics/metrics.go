package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the instruments recorded around outbound provider calls. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestRetries  *prometheus.CounterVec
	ProviderErrors  *prometheus.CounterVec
}

// NewMetrics registers the instruments with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smsactivate_requests_total",
				Help: "Total number of provider requests by action and outcome",
			},
			[]string{"action", "outcome"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "smsactivate_request_duration_seconds",
				Help:    "Duration of provider requests in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15, 30},
			},
			[]string{"action"},
		),
		RequestRetries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smsactivate_request_retries_total",
				Help: "Total number of retried provider requests after connection errors",
			},
			[]string{"action"},
		),
		ProviderErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smsactivate_provider_errors_total",
				Help: "Total number of provider status codes classified as errors",
			},
			[]string{"code"},
		),
	}
}

func (m *Metrics) ObserveRequest(action, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(action, outcome).Inc()
	m.RequestDuration.WithLabelValues(action).Observe(duration.Seconds())
}

func (m *Metrics) RecordRetry(action string) {
	if m == nil {
		return
	}
	m.RequestRetries.WithLabelValues(action).Inc()
}

func (m *Metrics) RecordProviderError(code string) {
	if m == nil {
		return
	}
	m.ProviderErrors.WithLabelValues(code).Inc()
}

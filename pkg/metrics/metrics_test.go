package metrics_test

import (
	"testing"
	"time"

	"github.com/Behyna/sms-services/smsactivate/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())

	m.ObserveRequest("getNumber", "success", 120*time.Millisecond)
	m.ObserveRequest("getNumber", "success", 80*time.Millisecond)
	m.ObserveRequest("getNumber", "NO_NUMBERS", 50*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("getNumber", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("getNumber", "NO_NUMBERS")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestMetrics_Counters(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())

	m.RecordRetry("getBalance")
	m.RecordProviderError("BANNED")
	m.RecordProviderError("BANNED")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestRetries.WithLabelValues("getBalance")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ProviderErrors.WithLabelValues("BANNED")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest("getStatus", "success", time.Second)
		m.RecordRetry("getStatus")
		m.RecordProviderError("BAD_KEY")
	})
}

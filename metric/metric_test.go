package metric

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	m := New()
	reg := prometheus.NewRegistry()

	require.NoError(t, m.Register(reg))

	// Re-registering the same collectors must fail.
	assert.Error(t, m.Register(reg))
}

func TestRecordPublish(t *testing.T) {
	m := New()

	m.RecordPublish("updates", 3, 20*time.Millisecond)
	m.RecordPublish("updates", 1, 5*time.Millisecond)
	m.RecordPublish("alerts", 1, 5*time.Millisecond)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.MessagesPublished.WithLabelValues("updates")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MessagesPublished.WithLabelValues("alerts")))
}

func TestRecordError(t *testing.T) {
	m := New()

	m.RecordError("transport")
	m.RecordError("transport")
	m.RecordError("http")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("transport")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("http")))
}

func TestNilMetricsNoOp(t *testing.T) {
	var m *Metrics

	// Must not panic.
	m.RecordPublish("updates", 1, time.Millisecond)
	m.RecordError("transport")
}

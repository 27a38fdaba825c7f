package publisher

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xsellco/grip/format"
	"github.com/xsellco/grip/metric"
)

func TestPublishRecordsSuccessMetrics(t *testing.T) {
	m := metric.New()
	doer := &fakeDoer{status: 200, body: "result"}
	c := New("http://proxy.example", WithTransport(doer), WithMetrics(m))

	items := []format.Item{testItem(), testItem()}
	require.NoError(t, c.Publish(context.Background(), "updates", items...))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.MessagesPublished.WithLabelValues("updates")))
}

func TestPublishRecordsErrorMetricsByKind(t *testing.T) {
	m := metric.New()

	transport := New("http://proxy.example",
		WithTransport(&fakeDoer{err: stderrors.New("refused")}), WithMetrics(m))
	httpFail := New("http://proxy.example",
		WithTransport(&fakeDoer{status: 500, body: "fail"}), WithMetrics(m))

	require.Error(t, transport.Publish(context.Background(), "channel", testItem()))
	require.Error(t, httpFail.Publish(context.Background(), "channel", testItem()))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("transport")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("http")))
}

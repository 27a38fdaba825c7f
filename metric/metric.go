// Package metric provides prometheus instrumentation for publish traffic.
// A nil *Metrics is a valid no-op recorder, so instrumentation stays
// optional for library consumers.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all publish-side collectors.
type Metrics struct {
	MessagesPublished *prometheus.CounterVec
	ErrorsTotal       *prometheus.CounterVec
	PublishDuration   prometheus.Histogram
}

// New creates a Metrics instance with all publish collectors.
func New() *Metrics {
	return &Metrics{
		MessagesPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "grip",
				Subsystem: "publish",
				Name:      "messages_total",
				Help:      "Total number of items accepted by the publish endpoint",
			},
			[]string{"channel"},
		),

		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "grip",
				Subsystem: "publish",
				Name:      "errors_total",
				Help:      "Total number of failed publish calls by failure kind",
			},
			[]string{"kind"},
		),

		PublishDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "grip",
				Subsystem: "publish",
				Name:      "duration_seconds",
				Help:      "Publish call duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
}

// Register registers all collectors with the given registerer.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, collector := range []prometheus.Collector{
		m.MessagesPublished,
		m.ErrorsTotal,
		m.PublishDuration,
	} {
		if err := reg.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

// RecordPublish records a successful publish of count items to a channel.
func (m *Metrics) RecordPublish(channel string, count int, duration time.Duration) {
	if m == nil {
		return
	}
	m.MessagesPublished.WithLabelValues(channel).Add(float64(count))
	m.PublishDuration.Observe(duration.Seconds())
}

// RecordError records a failed publish call by failure kind.
func (m *Metrics) RecordError(kind string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(kind).Inc()
}

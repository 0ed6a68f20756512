package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the reminder module.
type Metrics struct {
	// Dispatch attempts by outcome (sent, failed, skipped).
	RemindersTotal *prometheus.CounterVec

	// End-to-end latency of a single reminder dispatch.
	SendLatency prometheus.Histogram

	// Documents requested per bulk run.
	BulkSize prometheus.Histogram
}

// New creates a new Metrics instance with all reminder module metrics registered.
func New() *Metrics {
	return &Metrics{
		RemindersTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "optmark_reminders_total",
			Help: "Reminder dispatch attempts by outcome",
		}, []string{"outcome"}),

		SendLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "optmark_reminder_send_duration_seconds",
			Help:    "Duration of a single reminder dispatch including delivery",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),

		BulkSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "optmark_reminder_bulk_size",
			Help:    "Number of documents requested per bulk reminder run",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		}),
	}
}

// RecordOutcome counts one dispatch attempt.
func (m *Metrics) RecordOutcome(outcome string) {
	if m != nil {
		m.RemindersTotal.WithLabelValues(outcome).Inc()
	}
}

// ObserveSendLatency records the duration of one dispatch.
func (m *Metrics) ObserveSendLatency(d time.Duration) {
	if m != nil {
		m.SendLatency.Observe(d.Seconds())
	}
}

// ObserveBulkSize records the size of one bulk run.
func (m *Metrics) ObserveBulkSize(n int) {
	if m != nil {
		m.BulkSize.Observe(float64(n))
	}
}

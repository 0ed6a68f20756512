package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the compliance module.
type Metrics struct {
	// Documents observed per status on each fleet summary.
	DocumentsByStatus *prometheus.GaugeVec

	// Data-quality warnings: documents missing their required dates.
	MalformedDocuments prometheus.Counter

	// Fleet listing latency, dominated by the directory store.
	ListLatency prometheus.Histogram
}

// New creates a new Metrics instance with all compliance module metrics registered.
func New() *Metrics {
	return &Metrics{
		DocumentsByStatus: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "optmark_compliance_documents",
			Help: "Documents in the fleet by compliance status, as of the last summary",
		}, []string{"status"}),

		MalformedDocuments: promauto.NewCounter(prometheus.CounterOpts{
			Name: "optmark_compliance_malformed_documents_total",
			Help: "Documents classified unknown because a required date was missing",
		}),

		ListLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "optmark_compliance_list_duration_seconds",
			Help:    "Duration of fleet document listing including classification",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// SetStatusCount records the current fleet count for one status.
func (m *Metrics) SetStatusCount(status string, n int) {
	if m != nil {
		m.DocumentsByStatus.WithLabelValues(status).Set(float64(n))
	}
}

// RecordMalformed counts data-quality warnings.
func (m *Metrics) RecordMalformed(n int) {
	if m != nil && n > 0 {
		m.MalformedDocuments.Add(float64(n))
	}
}

// ObserveListLatency records the duration of one fleet listing.
func (m *Metrics) ObserveListLatency(d time.Duration) {
	if m != nil {
		m.ListLatency.Observe(d.Seconds())
	}
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the company registry module.
type Metrics struct {
	// Lookups by outcome (found, not_found, already_onboarded, error).
	LookupsTotal *prometheus.CounterVec

	// Cache effectiveness (hit, miss).
	CacheTotal *prometheus.CounterVec

	// Round-trip latency against the external register.
	RegistryLatency prometheus.Histogram

	// 1 while the circuit to the register is open.
	BreakerOpen prometheus.Gauge
}

// New creates a new Metrics instance with all registry module metrics registered.
func New() *Metrics {
	return &Metrics{
		LookupsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "optmark_registry_lookups_total",
			Help: "Company register lookups by outcome",
		}, []string{"outcome"}),

		CacheTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "optmark_registry_cache_total",
			Help: "Company lookup cache hits and misses",
		}, []string{"status"}),

		RegistryLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "optmark_registry_request_duration_seconds",
			Help:    "Round-trip duration of external register requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),

		BreakerOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "optmark_registry_breaker_open",
			Help: "Whether the circuit breaker to the register is open",
		}),
	}
}

// RecordLookup counts one lookup by outcome.
func (m *Metrics) RecordLookup(outcome string) {
	if m != nil {
		m.LookupsTotal.WithLabelValues(outcome).Inc()
	}
}

// RecordCache counts one cache hit or miss.
func (m *Metrics) RecordCache(status string) {
	if m != nil {
		m.CacheTotal.WithLabelValues(status).Inc()
	}
}

// ObserveRegistryLatency records the duration of one register round trip.
func (m *Metrics) ObserveRegistryLatency(d time.Duration) {
	if m != nil {
		m.RegistryLatency.Observe(d.Seconds())
	}
}

// SetBreakerOpen reflects the breaker state.
func (m *Metrics) SetBreakerOpen(open bool) {
	if m == nil {
		return
	}
	if open {
		m.BreakerOpen.Set(1)
	} else {
		m.BreakerOpen.Set(0)
	}
}

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// StatusOK labels a computation that produced a series.
	StatusOK = "ok"
	// StatusSkipped labels a computation aborted by a configuration miss.
	StatusSkipped = "skipped"
)

// Metrics holds the Prometheus metrics of the pipeline.
type Metrics struct {
	// Computations counts indicator and strategy computations per instrument
	// by family ("indicator" or "strategy"), name and status.
	Computations *prometheus.CounterVec
	// Warnings counts configuration misses surfaced as warnings.
	Warnings prometheus.Counter
	// ObservedDays counts cleaned days backed by a raw record.
	ObservedDays prometheus.Counter
	// FilledDays counts cleaned days forward-filled from an earlier day.
	FilledDays prometheus.Counter
	// Buckets counts aggregated entries emitted, by timeframe.
	Buckets *prometheus.CounterVec
	// ComputeDuration observes the duration of a single instrument's
	// computation in seconds, by family.
	ComputeDuration *prometheus.HistogramVec
}

// NewMetrics creates the pipeline metrics and registers them with the
// provided registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tradesignal_computations_total",
			Help: "Total indicator and strategy computations per instrument",
		}, []string{"family", "name", "status"}),
		Warnings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tradesignal_warnings_total",
			Help: "Total configuration misses reported as warnings",
		}),
		ObservedDays: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tradesignal_observed_days_total",
			Help: "Cleaned days backed by a raw record",
		}),
		FilledDays: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tradesignal_filled_days_total",
			Help: "Cleaned days forward-filled from an earlier day",
		}),
		Buckets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tradesignal_buckets_total",
			Help: "Aggregated entries emitted (by timeframe)",
		}, []string{"timeframe"}),
		ComputeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tradesignal_compute_duration_seconds",
			Help:    "Per instrument computation latency",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"family"}),
	}

	collectors := []prometheus.Collector{
		m.Computations,
		m.Warnings,
		m.ObservedDays,
		m.FilledDays,
		m.Buckets,
		m.ComputeDuration,
	}
	for _, collector := range collectors {
		err := reg.Register(collector)
		if err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}

	return m, nil
}

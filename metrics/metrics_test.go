package metrics

import (
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	// Ensure metrics can be created and registered.
	m, err := NewMetrics(reg)
	assert.NoError(t, err)

	// Ensure collectors can be updated.
	m.Computations.WithLabelValues("indicator", "SMA", StatusOK).Inc()
	m.Computations.WithLabelValues("indicator", "SMA", StatusOK).Inc()
	m.Computations.WithLabelValues("strategy", "PSAR", StatusSkipped).Inc()
	m.FilledDays.Add(3)
	m.ObservedDays.Add(5)
	m.Buckets.WithLabelValues("week").Add(2)
	m.ComputeDuration.WithLabelValues("indicator").Observe(0.002)

	assert.Equal(t, testutil.ToFloat64(m.Computations.WithLabelValues("indicator", "SMA", StatusOK)), float64(2))
	assert.Equal(t, testutil.ToFloat64(m.Computations.WithLabelValues("strategy", "PSAR", StatusSkipped)), float64(1))
	assert.Equal(t, testutil.ToFloat64(m.FilledDays), float64(3))
	assert.Equal(t, testutil.ToFloat64(m.ObservedDays), float64(5))
	assert.Equal(t, testutil.ToFloat64(m.Buckets.WithLabelValues("week")), float64(2))
	assert.Equal(t, testutil.CollectAndCount(m.ComputeDuration), 1)

	// Ensure registering twice with the same registry errors.
	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sidc-converter/internal/diagnostic"
)

func TestMetrics_ObserveConversion(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	var mask diagnostic.Mask
	mask.Add(diagnostic.CategoryEntity)
	mask.Add(diagnostic.CategoryLegacySymbol)

	m.ObserveConversion("2525D", "Old", 0)
	m.ObserveConversion("2525D", "Old", 0)
	m.ObserveConversion("2525C", "Invalid", mask)

	assert.InDelta(t, 2, testutil.ToFloat64(m.Conversions.WithLabelValues("2525D", "Old")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Conversions.WithLabelValues("2525C", "Invalid")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LookupFailures.WithLabelValues("Entity")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LookupFailures.WithLabelValues("Legacy Symbol")), 0)

	count, err := testutil.GatherAndCount(reg, "sidc_conversions_total", "sidc_lookup_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveConversion("2525D", "New", diagnostic.Mask(diagnostic.CategoryAll))
	})
}

func TestNew_NilRegistry(t *testing.T) {
	m := New(nil)

	m.ObserveConversion("2525D", "New", 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Conversions.WithLabelValues("2525D", "New")), 0)
}

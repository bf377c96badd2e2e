package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, g.Write(m))
	return m.GetGauge().GetValue()
}

func TestObserveStateSetsGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveState(57, 3, 1, true, false)

	require.Equal(t, float64(57), gaugeValue(t, c.FreeMemory))
	require.Equal(t, float64(3), gaugeValue(t, c.ResidentJobs))
	require.Equal(t, float64(1), gaugeValue(t, c.LongTermDepth))
	require.Equal(t, float64(1), gaugeValue(t, c.DrumBusy))
	require.Equal(t, float64(0), gaugeValue(t, c.DiskBusy))
}

func TestRecordHandlerIncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHandler("crint")
	c.RecordHandler("crint")
	c.RecordHandler("tro")

	m := &dto.Metric{}
	require.NoError(t, c.Handlers.WithLabelValues("crint").Write(m))
	require.Equal(t, float64(2), m.GetCounter().GetValue())
}

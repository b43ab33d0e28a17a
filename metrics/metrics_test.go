package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andersfylling/chronosync/timeval"
)

type fakeClock struct{ now timeval.LocalTime }

func (c *fakeClock) Now() timeval.LocalTime { return c.now }

func mLocal(s float64) timeval.LocalTime { return timeval.TimeFromSeconds[timeval.LocalTag](s) }
func mDt(s float64) timeval.LocalDt      { return timeval.DtFromSeconds[timeval.LocalTag](s) }

func TestRecordGaugeCreatesOnFirstUse(t *testing.T) {
	clk := &fakeClock{now: mLocal(0)}
	m := New(clk, mDt(10))

	_, ok := m.Gauge("fps")
	require.False(t, ok)

	m.RecordGauge("fps", 60)
	g, ok := m.Gauge("fps")
	require.True(t, ok)
	require.Equal(t, 1, g.Len())
	require.Equal(t, 60.0, g.Mean())
}

func TestGaugeStatistics(t *testing.T) {
	clk := &fakeClock{now: mLocal(0)}
	m := New(clk, mDt(100))

	for _, v := range []float64{10, 20, 30} {
		m.RecordGauge("latency", v)
	}

	g, _ := m.Gauge("latency")
	require.Equal(t, 20.0, g.Mean())
	min, _ := g.Min()
	max, _ := g.Max()
	require.Equal(t, 10.0, min)
	require.Equal(t, 30.0, max)
	require.Greater(t, g.StdDev(), 0.0)
}

func TestAdvanceEvictsStaleGaugesWithoutNewWrites(t *testing.T) {
	clk := &fakeClock{now: mLocal(0)}
	m := New(clk, mDt(1))

	m.RecordGauge("residual", 5)
	require.Equal(t, 1, mustGauge(t, m, "residual").Len())

	clk.now = mLocal(10)
	m.Advance()
	require.Equal(t, 0, mustGauge(t, m, "residual").Len())
}

func TestPlotPointsAreRelativeToStart(t *testing.T) {
	clk := &fakeClock{now: mLocal(100)}
	m := New(clk, mDt(1000))

	m.RecordGauge("x", 1)
	clk.now = mLocal(105)
	m.RecordGauge("x", 2)

	g, _ := m.Gauge("x")
	points := g.PlotPoints(mLocal(100))
	require.Equal(t, []PlotPoint{{Seconds: 0, Value: 1}, {Seconds: 5, Value: 2}}, points)
}

func mustGauge(t *testing.T, m *Metrics, name string) *Gauge {
	t.Helper()
	g, ok := m.Gauge(name)
	require.True(t, ok)
	return g
}

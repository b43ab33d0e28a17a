package sample

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andersfylling/chronosync/timeval"
)

type fakeClock struct {
	now timeval.LocalTime
}

func (c *fakeClock) Now() timeval.LocalTime { return c.now }

func seconds(s float64) timeval.LocalTime {
	return timeval.TimeFromSeconds[timeval.LocalTag](s)
}

func TestWindowEvictsRelativeToNow(t *testing.T) {
	clk := &fakeClock{now: seconds(0)}
	w := New[float64](clk, timeval.DtFromSeconds[timeval.LocalTag](1.0))

	clk.now = seconds(0)
	w.Record(seconds(0), 1.0)
	clk.now = seconds(0.5)
	w.Record(seconds(0.5), 2.0)

	require.Equal(t, 2, w.Len())

	// Advance "now" far enough that the first sample (1.2s old) ages
	// out while the second (0.7s old) is still within maxAge.
	clk.now = seconds(1.2)
	w.Record(seconds(1.2), 3.0)

	require.Equal(t, []float64{2.0, 3.0}, w.Values())
}

func TestWindowFrontBack(t *testing.T) {
	clk := &fakeClock{now: seconds(0)}
	w := New[int](clk, timeval.DtFromSeconds[timeval.LocalTag](100))

	_, ok := w.Front()
	require.False(t, ok)

	w.Record(seconds(0), 1)
	w.Record(seconds(1), 2)
	w.Record(seconds(2), 3)

	front, ok := w.Front()
	require.True(t, ok)
	require.Equal(t, 1, front.Value)

	back, ok := w.Back()
	require.True(t, ok)
	require.Equal(t, 3, back.Value)

	require.Equal(t, 3, w.Len())
}

package periodic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andersfylling/chronosync/timeval"
)

func secs(s float64) timeval.LocalDt {
	return timeval.DtFromSeconds[timeval.LocalTag](s)
}

// TestTriggerCountIndependentOfStepSize verifies spec.md §8: for any
// sequence of Advance(d_i) with sum T, the number of Trigger() == true
// calls equals floor(T / period), regardless of step granularity.
func TestTriggerCountIndependentOfStepSize(t *testing.T) {
	const period = 0.05 // 50ms, spec.md §8 scenario 6

	coarse := New(secs(period))
	coarseCount := 0
	for i := 0; i < 60; i++ {
		coarse.Advance(secs(0.01667)) // ~16.67ms, one render frame at 60 FPS
		for coarse.Trigger() {
			coarseCount++
		}
	}

	fine := New(secs(period))
	fineCount := 0
	for i := 0; i < 6000; i++ {
		fine.Advance(secs(0.0001667))
		for fine.Trigger() {
			fineCount++
		}
	}

	require.InDelta(t, 20, coarseCount, 1)
	require.InDelta(t, coarseCount, fineCount, 1)
}

func TestTriggerFiresMultipleTimesOnLongFrame(t *testing.T) {
	timer := New(secs(0.1))
	timer.Advance(secs(0.35))

	count := 0
	for timer.Trigger() {
		count++
	}
	require.Equal(t, 3, count)
	require.InDelta(t, 0.05, timer.Accumulator().Seconds(), 1e-9)
}

func TestTriggerFalseBelowPeriod(t *testing.T) {
	timer := New(secs(1.0))
	timer.Advance(secs(0.5))
	require.False(t, timer.Trigger())
}

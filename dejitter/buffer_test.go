package dejitter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andersfylling/chronosync/timeval"
)

func ldt(s float64) timeval.LocalDt  { return timeval.DtFromSeconds[timeval.LocalTag](s) }
func ltime(s float64) timeval.LocalTime { return timeval.TimeFromSeconds[timeval.LocalTag](s) }

func TestPopStallsWithoutEnoughEvidence(t *testing.T) {
	now := ltime(0)
	b := New[string](ldt(0), ldt(5), func() timeval.LocalTime { return now })

	b.Insert(now, 0, "tick0")

	_, _, ok := b.Pop()
	require.False(t, ok, "fewer than two samples must stall pop")
}

func TestPopReleasesInIncreasingOrder(t *testing.T) {
	now := ltime(0)
	b := New[string](ldt(0), ldt(5), func() timeval.LocalTime { return now })

	// Seed enough evidence for time_mapping to fit: arrival time tracks
	// tick number 1:1, so predicted stream time tracks "now" exactly.
	for i := timeval.TickNum(0); i < 5; i++ {
		now = ltime(float64(i))
		b.Insert(now, i, "t")
	}

	var popped []timeval.TickNum
	for {
		num, _, ok := b.Pop()
		if !ok {
			break
		}
		popped = append(popped, num)
	}

	for i := 1; i < len(popped); i++ {
		require.Greater(t, popped[i], popped[i-1])
	}
	require.NotEmpty(t, popped)
}

func TestInsertRejectsStaleAndDuplicateTicks(t *testing.T) {
	now := ltime(0)
	b := New[string](ldt(0), ldt(5), func() timeval.LocalTime { return now })

	for i := timeval.TickNum(0); i < 3; i++ {
		now = ltime(float64(i))
		b.Insert(now, i, "t")
	}
	_, _, _ = b.Pop() // pops tick 0, sets lastPopped

	before := b.Len()
	b.Insert(now, 0, "stale")
	require.Equal(t, before, b.Len(), "stale tick must be rejected")

	b.Insert(now, 1, "duplicate")
	require.Equal(t, before, b.Len(), "exact duplicate must be dropped")
}

package tickplay

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andersfylling/chronosync/playback"
	"github.com/andersfylling/chronosync/timeval"
)

func tpLocal(s float64) timeval.LocalTime { return timeval.TimeFromSeconds[timeval.LocalTag](s) }
func tpGame(s float64) timeval.GameTime   { return timeval.TimeFromSeconds[timeval.GameTag](s) }
func tpLDt(s float64) timeval.LocalDt     { return timeval.DtFromSeconds[timeval.LocalTag](s) }
func tpGDt(s float64) timeval.GameDt      { return timeval.DtFromSeconds[timeval.GameTag](s) }

func newTestPlayback(now *timeval.LocalTime) *TickPlayback[int] {
	return New[int](func() timeval.LocalTime { return *now }, Config{
		PlaybackParams: playback.Params{
			Delay:        tpGDt(0),
			MaxOvertake:  tpGDt(10),
			MaxSampleAge: tpLDt(5),
		},
		MaxResidual: tpGDt(1),
	})
}

func TestAdvanceReleasesTicksInOrder(t *testing.T) {
	now := tpLocal(0)
	tp := newTestPlayback(&now)

	for i := 0; i < 10; i++ {
		now = tpLocal(float64(i) * 0.05)
		tp.RecordTick(now, tpGame(float64(i)*0.05), i)
	}

	var released []int
	for i := 0; i < 10; i++ {
		now = tpLocal(now.Seconds() + 0.05)
		for _, st := range tp.Advance(tpLDt(0.05)) {
			released = append(released, st.Value)
		}
	}

	for i := 1; i < len(released); i++ {
		require.Greater(t, released[i], released[i-1])
	}
}

func TestRecordTickDropsAlreadyPastTicks(t *testing.T) {
	now := tpLocal(0)
	tp := newTestPlayback(&now)

	tp.RecordTick(now, tpGame(0), 0)
	tp.RecordTick(now, tpGame(0.01), 1)
	// Manually push playback ahead of a late-arriving, already-past tick.
	tp.clock.SetPlaybackTime(tpGame(5))
	tp.RecordTick(now, tpGame(1), 2)

	_, _, ok := tp.NextTick()
	// The playback clock is now at t=5, so the fresh tick at game
	// time 1 must have been dropped as already-past.
	if ok {
		next, _, _ := tp.NextTick()
		require.NotEqual(t, tpGame(1).Seconds(), next.Seconds())
	}
}

func TestInterpolationAlphaInRange(t *testing.T) {
	now := tpLocal(0)
	tp := newTestPlayback(&now)

	tp.RecordTick(now, tpGame(0), 10)
	tp.RecordTick(now, tpGame(0.05), 20)

	for i := 0; i < 5; i++ {
		now = tpLocal(now.Seconds() + 0.01)
		tp.Advance(tpLDt(0.01))
	}

	interp, ok := tp.Interpolation()
	if ok {
		require.GreaterOrEqual(t, interp.Alpha, 0.0)
		require.LessOrEqual(t, interp.Alpha, 1.0)
	}
}

func TestJumpAheadRecoveryOnRunawayResidual(t *testing.T) {
	now := tpLocal(0)
	tp := newTestPlayback(&now)

	tp.RecordTick(now, tpGame(0), 0)
	tp.RecordTick(now, tpGame(0.05), 1)

	// Simulate a long stall: no advances for a long stretch, then one
	// huge dt, like a driver-clamped catch-up frame.
	now = tpLocal(5)
	tp.RecordTick(now, tpGame(5), 2)
	tp.Advance(tpLDt(5))

	// Playback should have jumped to the newest buffered tick's time
	// rather than crawling toward it at warp <= 2x.
	require.InDelta(t, 5.0, tp.clock.PlaybackTime().Seconds(), 0.01)
}

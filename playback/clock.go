// Package playback implements PlaybackClock (spec.md §4.5): a
// smoothly-advancing local game-time clock that chases a predicted
// stream time with a configured delay, accelerating or decelerating
// via a warp function rather than snapping, and never overtaking what
// has actually been received by more than a bounded tolerance.
package playback

import (
	"math"

	"github.com/andersfylling/chronosync/mapping"
	"github.com/andersfylling/chronosync/sample"
	"github.com/andersfylling/chronosync/timeval"
)

// Params configures a Clock. Delay is how far behind the predicted
// stream time playback should stay; MaxOvertake bounds how far ahead
// of the newest received sample playback is ever allowed to run;
// MaxSampleAge bounds how long a stream-time sample is retained.
type Params struct {
	Delay        timeval.GameDt
	MaxOvertake  timeval.GameDt
	MaxSampleAge timeval.LocalDt
}

// warpHalfWidth is the 0.005s time constant from spec.md §4.5's warp
// sigmoid. It is hand-tuned for 20 Hz ticks and typical jitter and
// MUST NOT be exposed as a parameter — the spec requires this exact
// formula as the reference behaviour.
const warpHalfWidth = 0.005

// warp maps a residual (target - playback_time, in seconds) to a
// multiplier in [0.5, 2.0]: 1.0 at residual=0, dropping toward 0.5
// when playback is ahead of where it should be (slow down), rising
// toward 2.0 when playback has fallen behind (catch up).
func warp(residualSeconds float64) float64 {
	return 0.5 + 1.5/(1+2*math.Exp(-residualSeconds/warpHalfWidth))
}

// Clock derives playback_time from a window of received stream-time
// samples. It is driven by a single owner (the driver loop) and reads
// the shared LocalClock's current time on every Advance.
type Clock struct {
	params       Params
	localNow     func() timeval.LocalTime
	streamSamples *sample.Window[timeval.GameTime]
	mappingCfg   mapping.Config
	playbackTime timeval.GameTime
}

// New creates a Clock. localNow reports the shared LocalClock's
// current reading; it is a function rather than an interface so
// callers can pass (*clock.LocalClock).Now directly.
func New(params Params, localNow func() timeval.LocalTime) *Clock {
	return &Clock{
		params:   params,
		localNow: localNow,
		streamSamples: sample.New[timeval.GameTime](
			localNowClock{localNow}, params.MaxSampleAge,
		),
		mappingCfg: mapping.Config{MaxEvidenceLen: 32},
	}
}

type localNowClock struct {
	localNow func() timeval.LocalTime
}

func (c localNowClock) Now() timeval.LocalTime { return c.localNow() }

// RecordStreamTime appends a (receiveTime, streamTime) observation to
// the stream-time sample window.
func (c *Clock) RecordStreamTime(receiveTime timeval.LocalTime, streamTime timeval.GameTime) {
	c.streamSamples.Record(receiveTime, streamTime)
}

// Advance moves playback_time forward by up to dt, scaled by the warp
// factor on the current residual, and returns that residual so
// callers can detect runaway divergence. If fewer than two stream-time
// samples have been recorded, there is no prediction: playback_time
// holds and the returned residual is zero.
func (c *Clock) Advance(dt timeval.LocalDt) timeval.GameDt {
	predicted, ok := mapping.PredictStreamTime(
		c.mappingCfg, c.streamSamples.Entries(), c.localNow(),
		timeval.GameTime.Seconds, timeval.TimeFromSeconds[timeval.GameTag],
	)
	if !ok {
		return timeval.DtFromSeconds[timeval.GameTag](0)
	}

	target := predicted.Add(c.params.Delay.Neg())
	residual := target.Sub(c.playbackTime)

	ceiling := c.maxStreamSample().Add(c.params.MaxOvertake)

	step := timeval.LocalDtToGameDt(dt).Mul(warp(residual.Seconds()))
	advanced := c.playbackTime.Add(step)
	if advanced.After(ceiling) {
		advanced = ceiling
	}
	c.playbackTime = advanced

	return residual
}

func (c *Clock) maxStreamSample() timeval.GameTime {
	values := c.streamSamples.Values()
	if len(values) == 0 {
		return timeval.TimeFromSeconds[timeval.GameTag](0)
	}
	max := values[0]
	for _, v := range values[1:] {
		if v.After(max) {
			max = v
		}
	}
	return max
}

// PlaybackTime returns the current playback_time.
func (c *Clock) PlaybackTime() timeval.GameTime {
	return c.playbackTime
}

// StreamTime returns the currently predicted stream time (the same
// value Advance computes internally), or zero if insufficient
// evidence exists.
func (c *Clock) StreamTime() timeval.GameTime {
	predicted, ok := mapping.PredictStreamTime(
		c.mappingCfg, c.streamSamples.Entries(), c.localNow(),
		timeval.GameTime.Seconds, timeval.TimeFromSeconds[timeval.GameTag],
	)
	if !ok {
		return timeval.TimeFromSeconds[timeval.GameTag](0)
	}
	return predicted
}

// SetPlaybackTime forcibly jumps playback_time ahead. This is an
// emergency escape hatch used only by TickPlayback's stall-recovery
// path (spec.md §4.7) — it is the one sanctioned violation of
// Advance's monotonic, warp-governed progression.
func (c *Clock) SetPlaybackTime(t timeval.GameTime) {
	c.playbackTime = t
}

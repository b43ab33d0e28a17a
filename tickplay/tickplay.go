// Package tickplay implements TickPlayback (spec.md §4.7): a
// PlaybackClock wrapped around an ordered buffer of received
// game-state ticks, releasing ticks in order as playback time catches
// up to them and recovering from stalls by jumping the clock ahead.
package tickplay

import (
	"sort"

	"github.com/andersfylling/chronosync/playback"
	"github.com/andersfylling/chronosync/timeval"
)

// Config configures a TickPlayback.
type Config struct {
	PlaybackParams playback.Params
	// MaxResidual is the runaway-divergence threshold: once
	// PlaybackClock.Advance reports a residual beyond this, TickPlayback
	// treats playback as hopelessly behind and jumps ahead (spec.md
	// §4.7), which typically follows a frame stall such as a hidden
	// browser tab or a driver-clamped dt.
	MaxResidual timeval.GameDt
}

type buffered[V any] struct {
	at    timeval.GameTime
	value V
}

// TickPlayback releases received ticks in order, at the pace its
// embedded PlaybackClock chases the stream.
type TickPlayback[V any] struct {
	clock       *playback.Clock
	maxResidual timeval.GameDt

	buffer  []buffered[V]
	current *buffered[V]
}

// New creates a TickPlayback. localNow reports the shared LocalClock's
// current reading.
func New[V any](localNow func() timeval.LocalTime, cfg Config) *TickPlayback[V] {
	return &TickPlayback[V]{
		clock:       playback.New(cfg.PlaybackParams, localNow),
		maxResidual: cfg.MaxResidual,
	}
}

// RecordTick feeds the playback clock's stream-time window and, unless
// the tick is already in the past or an exact duplicate, inserts it
// into the ordered buffer at its sorted position by game time.
func (tp *TickPlayback[V]) RecordTick(receiveTime timeval.LocalTime, tickGameTime timeval.GameTime, value V) {
	tp.clock.RecordStreamTime(receiveTime, tickGameTime)

	if tickGameTime.Before(tp.clock.PlaybackTime()) {
		return
	}

	i := sort.Search(len(tp.buffer), func(i int) bool { return !tp.buffer[i].at.Before(tickGameTime) })
	if i < len(tp.buffer) && tp.buffer[i].at.Equal(tickGameTime) {
		return
	}
	tp.buffer = append(tp.buffer, buffered[V]{})
	copy(tp.buffer[i+1:], tp.buffer[i:])
	tp.buffer[i] = buffered[V]{at: tickGameTime, value: value}
}

// Advance steps the playback clock by dt, applies jump-ahead stall
// recovery if the residual has run away beyond MaxResidual, then pops
// every buffered tick whose game time has been reached, returning them
// in order as "started ticks".
func (tp *TickPlayback[V]) Advance(dt timeval.LocalDt) []StartedTick[V] {
	residual := tp.clock.Advance(dt)

	if residual.Seconds() > tp.maxResidual.Seconds() && len(tp.buffer) > 0 {
		newest := tp.buffer[len(tp.buffer)-1]
		tp.clock.SetPlaybackTime(newest.at)
		tp.buffer = []buffered[V]{newest}
	}

	var started []StartedTick[V]
	playbackTime := tp.clock.PlaybackTime()
	for len(tp.buffer) > 0 && !tp.buffer[0].at.After(playbackTime) {
		popped := tp.buffer[0]
		tp.buffer = tp.buffer[1:]
		tp.current = &popped
		started = append(started, StartedTick[V]{At: popped.at, Value: popped.value})
	}
	return started
}

// StartedTick is one tick released by Advance.
type StartedTick[V any] struct {
	At    timeval.GameTime
	Value V
}

// Predictable is an extension seam for client-side prediction: a host
// game-state type may implement it to speculate past the last
// confirmed tick and reconcile once the authoritative one arrives.
// TickPlayback never calls these methods itself and performs no
// rollback or resimulation of its own — that is deliberately
// unspecified (spec.md §9) — this interface only gives a host that
// wants the behavior a named boundary to build it against.
type Predictable[V any] interface {
	// Predict extrapolates a speculative value for a game time beyond
	// the last confirmed tick, starting from that tick's value.
	Predict(last V, at timeval.GameTime) V
	// Reconcile corrects a previously predicted value once the
	// authoritative tick for the same game time has arrived.
	Reconcile(predicted, authoritative V) V
}

// StreamTime returns the embedded playback clock's currently
// predicted stream time.
func (tp *TickPlayback[V]) StreamTime() timeval.GameTime {
	return tp.clock.StreamTime()
}

// CurrentTick returns the most recently popped tick, if any.
func (tp *TickPlayback[V]) CurrentTick() (timeval.GameTime, V, bool) {
	if tp.current == nil {
		var zero V
		return timeval.GameTime{}, zero, false
	}
	return tp.current.at, tp.current.value, true
}

// NextTick returns the oldest remaining buffered tick, if any.
func (tp *TickPlayback[V]) NextTick() (timeval.GameTime, V, bool) {
	if len(tp.buffer) == 0 {
		var zero V
		return timeval.GameTime{}, zero, false
	}
	return tp.buffer[0].at, tp.buffer[0].value, true
}

// Interpolation describes where playback_time sits between the
// current and next tick.
type Interpolation[V any] struct {
	CurrentTime timeval.GameTime
	Current     V
	NextTime    timeval.GameTime
	Next        V
	// Alpha is in [0, 1]: (playback_time - CurrentTime) / (NextTime - CurrentTime).
	Alpha float64
}

// Interpolation returns the current/next tick pair and the playback
// clock's fractional position between them, or false if either side
// is missing.
func (tp *TickPlayback[V]) Interpolation() (Interpolation[V], bool) {
	if tp.current == nil || len(tp.buffer) == 0 {
		return Interpolation[V]{}, false
	}
	current := *tp.current
	next := tp.buffer[0]

	span := next.at.Sub(current.at).Seconds()
	alpha := 0.0
	if span > 0 {
		alpha = tp.clock.PlaybackTime().Sub(current.at).Seconds() / span
		if alpha < 0 {
			alpha = 0
		} else if alpha > 1 {
			alpha = 1
		}
	}

	return Interpolation[V]{
		CurrentTime: current.at,
		Current:     current.value,
		NextTime:    next.at,
		Next:        next.value,
		Alpha:       alpha,
	}, true
}

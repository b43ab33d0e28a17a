// Package dejitter implements DejitterBuffer (spec.md §4.6): an
// ordered buffer for streams keyed by dense, monotone tick numbers
// (typically a client's input stream as seen by the server), gated on
// a predicted stream time so ticks are released in order and only
// once enough of the stream has plausibly arrived.
package dejitter

import (
	"sort"

	"github.com/andersfylling/chronosync/mapping"
	"github.com/andersfylling/chronosync/sample"
	"github.com/andersfylling/chronosync/timeval"
)

type queued[V any] struct {
	num   timeval.TickNum
	value V
}

// Buffer holds received (TickNum, value) pairs and releases them
// in strictly increasing tick-number order, gated on a predicted
// stream time so it never yields a tick before enough of the stream
// has plausibly been received.
type Buffer[V any] struct {
	localNow func() timeval.LocalTime
	delay    timeval.LocalDt

	samples    *sample.Window[timeval.TickTime]
	mappingCfg mapping.Config

	queue        []queued[V]
	lastPopped   timeval.TickNum
	everPopped   bool
}

// New creates a Buffer. delay shifts the local clock backward before
// predicting stream time, so pop() only releases ticks the stream has
// had "delay" worth of time to actually arrive for. maxSampleAge
// bounds how long tick-arrival evidence is retained.
func New[V any](delay timeval.LocalDt, maxSampleAge timeval.LocalDt, localNow func() timeval.LocalTime) *Buffer[V] {
	return &Buffer[V]{
		localNow:   localNow,
		delay:      delay,
		samples:    sample.New[timeval.TickTime](localNowClock{localNow}, maxSampleAge),
		mappingCfg: mapping.Config{MaxEvidenceLen: 32},
	}
}

type localNowClock struct {
	localNow func() timeval.LocalTime
}

func (c localNowClock) Now() timeval.LocalTime { return c.localNow() }

// Insert records a received tick. Ticks at or before the last popped
// tick number are rejected as stale; exact-tick duplicates already
// queued are dropped.
func (b *Buffer[V]) Insert(receiveTime timeval.LocalTime, tickNum timeval.TickNum, value V) {
	if b.everPopped && tickNum <= b.lastPopped {
		return
	}

	b.samples.Record(receiveTime, tickNum.ToTickTime())

	i := sort.Search(len(b.queue), func(i int) bool { return b.queue[i].num >= tickNum })
	if i < len(b.queue) && b.queue[i].num == tickNum {
		return
	}
	b.queue = append(b.queue, queued[V]{})
	copy(b.queue[i+1:], b.queue[i:])
	b.queue[i] = queued[V]{num: tickNum, value: value}
}

// Pop releases the oldest queued tick if the predicted stream time
// (evaluated "delay" seconds in the past) has reached its tick
// number; otherwise it returns false. With fewer than two arrival
// samples, prediction fails and Pop stalls deliberately — the server
// waits for enough evidence to fit a model.
func (b *Buffer[V]) Pop() (timeval.TickNum, V, bool) {
	var zero V

	predicted, ok := mapping.PredictStreamTime(
		b.mappingCfg, b.samples.Entries(), b.localNow().Add(b.delay.Neg()),
		timeval.TickTime.Seconds, timeval.TimeFromSeconds[timeval.TickTag],
	)
	if !ok || len(b.queue) == 0 {
		return 0, zero, false
	}

	streamNum := timeval.TickNumFromTickTime(predicted)
	oldest := b.queue[0]
	if oldest.num > streamNum {
		return 0, zero, false
	}

	b.queue = b.queue[1:]
	b.lastPopped = oldest.num
	b.everPopped = true
	return oldest.num, oldest.value, true
}

// Len returns the number of ticks currently queued.
func (b *Buffer[V]) Len() int {
	return len(b.queue)
}

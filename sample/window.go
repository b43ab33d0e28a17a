// Package sample implements the age-bounded sample window from
// spec.md §4.2: an append-only, roughly-ordered sequence of
// (LocalTime, Value) observations that ages out entries relative to
// the current wall-clock reading rather than relative to the sample's
// own timestamp.
//
// Measuring recency against "now" instead of the sample's own
// timestamp is deliberate (spec.md §9, Open Questions): it means a
// stalled producer — one that stops sending samples entirely — ages
// its last few samples out of the window on schedule, instead of a
// burst of identically-timestamped samples defeating eviction.
package sample

import "github.com/andersfylling/chronosync/timeval"

// Clock supplies the "now" a Window evicts against.
type Clock interface {
	Now() timeval.LocalTime
}

// Entry is one observation in a Window.
type Entry[V any] struct {
	At    timeval.LocalTime
	Value V
}

// Window is an age-bounded deque of (LocalTime, Value) observations.
// Insertion is append-only; the sender is expected (but not required)
// to deliver samples in increasing time order — consumers must
// tolerate small unsortedness, per spec.md §3.
type Window[V any] struct {
	clock   Clock
	maxAge  timeval.LocalDt
	entries []Entry[V]
}

// New creates a Window that evicts entries older than maxAge relative
// to clock.Now() at the time of each Record call.
func New[V any](clock Clock, maxAge timeval.LocalDt) *Window[V] {
	return &Window[V]{clock: clock, maxAge: maxAge}
}

// Record appends (at, value) and evicts any entries older than
// maxAge relative to the clock's current reading.
func (w *Window[V]) Record(at timeval.LocalTime, value V) {
	w.entries = append(w.entries, Entry[V]{At: at, Value: value})
	w.evict()
}

func (w *Window[V]) evict() {
	now := w.clock.Now()
	cutoff := 0
	for cutoff < len(w.entries) {
		age := now.Sub(w.entries[cutoff].At)
		if age.LessEqual(w.maxAge) {
			break
		}
		cutoff++
	}
	if cutoff > 0 {
		w.entries = append([]Entry[V]{}, w.entries[cutoff:]...)
	}
}

// Entries returns the window's current entries, oldest first. The
// returned slice must not be mutated.
func (w *Window[V]) Entries() []Entry[V] {
	return w.entries
}

// Values returns the window's current values, oldest first.
func (w *Window[V]) Values() []V {
	values := make([]V, len(w.entries))
	for i, e := range w.entries {
		values[i] = e.Value
	}
	return values
}

// Front returns the oldest entry, if any.
func (w *Window[V]) Front() (Entry[V], bool) {
	if len(w.entries) == 0 {
		var zero Entry[V]
		return zero, false
	}
	return w.entries[0], true
}

// Back returns the newest entry, if any.
func (w *Window[V]) Back() (Entry[V], bool) {
	if len(w.entries) == 0 {
		var zero Entry[V]
		return zero, false
	}
	return w.entries[len(w.entries)-1], true
}

// Evict forces an age-eviction pass against the clock's current
// reading, independent of Record. Useful for periodic drains (see
// metrics.Metrics.Advance) where a gauge that has stopped receiving
// samples should still shed stale entries.
func (w *Window[V]) Evict() {
	w.evict()
}

// Len returns the number of entries currently in the window.
func (w *Window[V]) Len() int {
	return len(w.entries)
}

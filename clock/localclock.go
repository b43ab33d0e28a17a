// Package clock provides LocalClock, the single shared wall-clock
// reading that drives every other component in this module (spec.md
// §3 "Ownership", §5 "Shared resources").
//
// The driver (the host game loop) is the sole writer; every other
// component — the playback clock, metrics, the network simulator,
// tick playback — is a reader. Because the whole core runs inside one
// cooperative, single-threaded event loop (spec.md §5), there is no
// mutex here: a pointer receiver shared by reference is sufficient,
// matching the "interior mutability by reference" modeling spec.md
// §9 calls out explicitly.
package clock

import "github.com/andersfylling/chronosync/timeval"

// LocalClock holds the current LocalTime. Share it by pointer: every
// reader that needs "now" holds a *LocalClock and calls Now.
type LocalClock struct {
	now timeval.LocalTime
}

// New creates a LocalClock initialized to the zero instant.
func New() *LocalClock {
	return &LocalClock{}
}

// Now returns the clock's current reading.
func (c *LocalClock) Now() timeval.LocalTime {
	return c.now
}

// Set advances the clock to t and returns the elapsed LocalDt since
// the previous reading, clamped to be nonnegative: a time source that
// runs backwards (a wall-clock adjustment, a replayed log) must never
// produce a negative dt for downstream accumulators (spec.md §6).
func (c *LocalClock) Set(t timeval.LocalTime) timeval.LocalDt {
	dt := t.Sub(c.now)
	c.now = t
	if dt.Less(timeval.DtFromSeconds[timeval.LocalTag](0)) {
		return timeval.DtFromSeconds[timeval.LocalTag](0)
	}
	return dt
}

// Package periodic implements PeriodicTimer (spec.md §4.3): an
// accumulator-and-period timer used to drive fixed-step simulation
// from variable per-frame deltas.
package periodic

import "github.com/andersfylling/chronosync/timeval"

// Timer accumulates elapsed local time and reports when a full period
// has elapsed. Callers drive fixed-step logic with:
//
//	timer.Advance(dt)
//	for timer.Trigger() {
//		doTick()
//	}
//
// so a single long frame can still fire multiple ticks. It is the
// caller's responsibility to clamp dt to a sane ceiling before calling
// Advance — this is the "catastrophic-lag policy" of spec.md §4.3,
// enforced by the driver, not the timer.
type Timer struct {
	period      timeval.LocalDt
	accumulator timeval.LocalDt
}

// New creates a Timer with the given period. The period must be
// nonnegative.
func New(period timeval.LocalDt) *Timer {
	return &Timer{period: period}
}

// Advance adds dt to the accumulator.
func (t *Timer) Advance(dt timeval.LocalDt) {
	t.accumulator = t.accumulator.Add(dt)
}

// Trigger subtracts one period from the accumulator and returns true
// if it held at least one full period; otherwise it returns false and
// leaves the accumulator untouched.
func (t *Timer) Trigger() bool {
	if t.accumulator.Less(t.period) {
		return false
	}
	t.accumulator = t.accumulator.Sub(t.period)
	return true
}

// Accumulator returns the current accumulator value, mostly useful for
// diagnostics/metrics.
func (t *Timer) Accumulator() timeval.LocalDt {
	return t.accumulator
}

// Package timeval implements the typed time algebra described in
// spec.md §4.1: instants (Time) and durations (Dt) tagged by a
// zero-sized phantom marker so that values from different timelines
// (wall-clock local time, simulated game time, per-tick stream time)
// can never be mixed by accident. Cross-tag arithmetic is a compile
// error; bridging between tags goes through named conversions only
// (LocalDtToGameDt, GameDtToLocalDt, TickNum.ToGameTime).
package timeval

// LocalTag marks values on the receiver's wall-clock-ish timeline.
type LocalTag struct{}

// GameTag marks values on the simulated-world timeline, shared (up to
// delay) between client and server.
type GameTag struct{}

// TickTag marks values on the dimensionless per-tick stream timeline
// used internally by the regression machinery, where one tick is
// defined to equal one second of TickTime.
type TickTag struct{}

// LocalTime is an instant on the local wall clock.
type LocalTime = Time[LocalTag]

// LocalDt is a duration on the local wall clock.
type LocalDt = Dt[LocalTag]

// GameTime is an instant in simulated game time.
type GameTime = Time[GameTag]

// GameDt is a duration in simulated game time.
type GameDt = Dt[GameTag]

// TickTime is an instant on the tick-number timeline (one tick = one
// second, a scaling chosen purely so the regression code in package
// mapping can be reused for tick prediction).
type TickTime = Time[TickTag]

// TickDt is a duration on the tick-number timeline.
type TickDt = Dt[TickTag]

package timeval

import "math"

// Dt is a duration tagged by timeline T. The zero value is a
// zero-length duration.
type Dt[T any] struct {
	secs float64
}

// DtFromSeconds constructs a duration from a count of seconds.
// Panics if secs is not finite: non-finite input is a precondition
// violation, per spec.md §3, never a recoverable runtime error.
func DtFromSeconds[T any](secs float64) Dt[T] {
	assertFinite(secs, "timeval: non-finite duration")
	return Dt[T]{secs: secs}
}

// DtFromMillis constructs a duration from a count of milliseconds.
func DtFromMillis[T any](ms float64) Dt[T] {
	return DtFromSeconds[T](ms / 1000.0)
}

// DtFromMinutes constructs a duration from a count of minutes.
func DtFromMinutes[T any](minutes float64) Dt[T] {
	return DtFromSeconds[T](minutes * 60.0)
}

// Seconds returns the duration as a count of seconds.
func (d Dt[T]) Seconds() float64 { return d.secs }

// Millis returns the duration as a count of milliseconds.
func (d Dt[T]) Millis() float64 { return d.secs * 1000.0 }

// Minutes returns the duration as a count of minutes.
func (d Dt[T]) Minutes() float64 { return d.secs / 60.0 }

// Add returns d + other.
func (d Dt[T]) Add(other Dt[T]) Dt[T] {
	return Dt[T]{secs: d.secs + other.secs}
}

// Sub returns d - other.
func (d Dt[T]) Sub(other Dt[T]) Dt[T] {
	return Dt[T]{secs: d.secs - other.secs}
}

// Mul returns d scaled by a dimensionless factor.
func (d Dt[T]) Mul(scalar float64) Dt[T] {
	return Dt[T]{secs: d.secs * scalar}
}

// DivDt returns the dimensionless ratio d / other.
func (d Dt[T]) DivDt(other Dt[T]) float64 {
	return d.secs / other.secs
}

// Neg returns -d.
func (d Dt[T]) Neg() Dt[T] {
	return Dt[T]{secs: -d.secs}
}

// Less reports whether d < other.
func (d Dt[T]) Less(other Dt[T]) bool { return d.secs < other.secs }

// LessEqual reports whether d <= other.
func (d Dt[T]) LessEqual(other Dt[T]) bool { return d.secs <= other.secs }

// Equal reports bit-exact equality, per spec.md §4.1.
func (d Dt[T]) Equal(other Dt[T]) bool { return d.secs == other.secs }

// IsZero reports whether d is exactly zero.
func (d Dt[T]) IsZero() bool { return d.secs == 0 }

// DtMin returns the smaller of a and b.
func DtMin[T any](a, b Dt[T]) Dt[T] {
	if a.secs < b.secs {
		return a
	}
	return b
}

// DtMax returns the larger of a and b.
func DtMax[T any](a, b Dt[T]) Dt[T] {
	if a.secs > b.secs {
		return a
	}
	return b
}

// GameDtFromHz returns the game-time period of a frequency of f Hz,
// i.e. Dt = 1/f seconds, per spec.md §4.1.
func GameDtFromHz(f float64) GameDt {
	return DtFromSeconds[GameTag](1.0 / f)
}

func assertFinite(v float64, msg string) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(msg)
	}
}

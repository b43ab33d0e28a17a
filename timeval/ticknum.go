package timeval

// TickNum is a 64-bit monotonic tick index (spec.md §3). It converts
// to and from TickTime (where one tick equals one second, purely so
// the linear-regression machinery in package mapping can be reused
// for tick prediction) and to GameTime given a fixed tick period.
type TickNum int64

// ZeroTick is the first tick.
const ZeroTick TickNum = 0

// ToTickTime converts n to the tick-time timeline.
func (n TickNum) ToTickTime() TickTime {
	return TimeFromSeconds[TickTag](float64(n))
}

// TickNumFromTickTime converts a tick-time instant back to a tick
// number, truncating toward zero. Round-trips with ToTickTime for
// integral inputs, per spec.md §3's round-trip requirement.
func TickNumFromTickTime(t TickTime) TickNum {
	return TickNum(int64(t.Seconds()))
}

// ToGameTime converts n to a game-time instant, given the fixed
// duration of one tick (spec.md §3: "TickNum × tick_dt → GameTime").
func (n TickNum) ToGameTime(tickDt GameDt) GameTime {
	return TimeFromSeconds[GameTag](float64(n) * tickDt.Seconds())
}

// Next returns the successor tick number.
func (n TickNum) Next() TickNum {
	return n + 1
}

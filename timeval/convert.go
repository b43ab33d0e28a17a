package timeval

// LocalDtToGameDt converts a LocalDt to a GameDt. The conversion is the
// identity on the numeric value: local time and game time both
// advance at one second per second in steady state (spec.md §4.4);
// apparent drift between the two domains is jitter, not clock skew,
// and is handled by the playback clock's warp, not by this
// conversion. This and GameDtToLocalDt are the ONLY sanctioned
// bridges between the Local and Game timelines — there is no
// implicit conversion, by design (spec.md §4.1).
func LocalDtToGameDt(d LocalDt) GameDt {
	return DtFromSeconds[GameTag](d.Seconds())
}

// GameDtToLocalDt converts a GameDt to a LocalDt. See LocalDtToGameDt.
func GameDtToLocalDt(d GameDt) LocalDt {
	return DtFromSeconds[LocalTag](d.Seconds())
}

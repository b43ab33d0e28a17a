package netsim

import "github.com/andersfylling/chronosync/timeval"

// Named latency profiles, ported from the named link presets used to
// drive demo scenarios: a few representative network conditions to
// pick from without hand-tuning Params every time.

// PerfectProfile is a zero-latency, zero-jitter, zero-loss link.
func PerfectProfile() Params {
	return Params{}
}

// ZenFastProfile is a stable, fast link: 20ms flat latency, no jitter,
// no loss.
func ZenFastProfile() Params {
	return Params{LatencyMean: timeval.DtFromMillis[timeval.LocalTag](20)}
}

// ZenSlowProfile is a stable, slow link: 150ms flat latency, no
// jitter, no loss.
func ZenSlowProfile() Params {
	return Params{LatencyMean: timeval.DtFromMillis[timeval.LocalTag](150)}
}

// WonkyFastProfile is a fast but jittery and slightly lossy link:
// 20ms mean latency, 5ms std dev, 2.5% loss.
func WonkyFastProfile() Params {
	return Params{
		LatencyMean:   timeval.DtFromMillis[timeval.LocalTag](20),
		LatencyStdDev: timeval.DtFromMillis[timeval.LocalTag](5),
		Loss:          0.025,
	}
}

// WonkySlowProfile is a slow, jittery, slightly lossy link: 100ms mean
// latency, 10ms std dev, 2.5% loss.
func WonkySlowProfile() Params {
	return Params{
		LatencyMean:   timeval.DtFromMillis[timeval.LocalTag](100),
		LatencyStdDev: timeval.DtFromMillis[timeval.LocalTag](10),
		Loss:          0.025,
	}
}

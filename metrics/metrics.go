// Package metrics implements the sliding-window gauge store from
// spec.md §4.9: named gauges, each an age-bounded sample window of
// float64 values, used by demos and tests to watch convergence
// behaviour over time.
package metrics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/andersfylling/chronosync/sample"
	"github.com/andersfylling/chronosync/timeval"
)

// Gauge is a single named sliding-window metric.
type Gauge struct {
	window *sample.Window[float64]
}

func newGauge(clock sample.Clock, maxAge timeval.LocalDt) *Gauge {
	return &Gauge{window: sample.New[float64](clock, maxAge)}
}

// Record appends a (time, value) observation.
func (g *Gauge) Record(at timeval.LocalTime, value float64) {
	g.window.Record(at, value)
}

// Mean returns the arithmetic mean of the window's current values, or
// 0 if the window is empty.
func (g *Gauge) Mean() float64 {
	values := g.window.Values()
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// StdDev returns the sample standard deviation of the window's
// current values, or 0 if fewer than two values are present.
func (g *Gauge) StdDev() float64 {
	values := g.window.Values()
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}

// Min returns the smallest current value, if any.
func (g *Gauge) Min() (float64, bool) {
	values := g.window.Values()
	if len(values) == 0 {
		return 0, false
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min, true
}

// Max returns the largest current value, if any.
func (g *Gauge) Max() (float64, bool) {
	values := g.window.Values()
	if len(values) == 0 {
		return 0, false
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max, true
}

// Len returns the number of values currently retained.
func (g *Gauge) Len() int {
	return g.window.Len()
}

// PlotPoint is one (elapsed seconds, value) sample, suitable for
// feeding straight into a plotting library.
type PlotPoint struct {
	Seconds float64
	Value   float64
}

// PlotPoints returns the window's entries as (seconds-since-start,
// value) pairs, where start is the instant the caller passes in.
func (g *Gauge) PlotPoints(start timeval.LocalTime) []PlotPoint {
	entries := g.window.Entries()
	points := make([]PlotPoint, len(entries))
	for i, e := range entries {
		points[i] = PlotPoint{Seconds: e.At.Sub(start).Seconds(), Value: e.Value}
	}
	return points
}

// Metrics is a name -> Gauge store, all gauges sharing one clock and
// one max-age.
type Metrics struct {
	clock  sample.Clock
	maxAge timeval.LocalDt
	start  timeval.LocalTime
	gauges map[string]*Gauge
}

// New creates an empty Metrics store. Every gauge it creates ages
// entries out after maxAge relative to clock.Now().
func New(clock sample.Clock, maxAge timeval.LocalDt) *Metrics {
	return &Metrics{
		clock:  clock,
		maxAge: maxAge,
		start:  clock.Now(),
		gauges: make(map[string]*Gauge),
	}
}

// RecordGauge appends value to the named gauge at the clock's current
// time, creating the gauge on first use.
func (m *Metrics) RecordGauge(name string, value float64) {
	g, ok := m.gauges[name]
	if !ok {
		g = newGauge(m.clock, m.maxAge)
		m.gauges[name] = g
	}
	g.Record(m.clock.Now(), value)
}

// Gauge returns the named gauge, if it has ever been recorded to.
func (m *Metrics) Gauge(name string) (*Gauge, bool) {
	g, ok := m.gauges[name]
	return g, ok
}

// Advance forces every gauge to age-evict against the clock's current
// reading. RecordGauge already evicts on every write, so Advance only
// matters for a gauge that has stopped receiving samples but should
// still shed stale entries when something reads it later (e.g. a
// demo's periodic metrics dump).
func (m *Metrics) Advance() {
	for _, g := range m.gauges {
		g.window.Evict()
	}
}

// Names returns the currently known gauge names, in no particular order.
func (m *Metrics) Names() []string {
	names := make([]string, 0, len(m.gauges))
	for name := range m.gauges {
		names = append(names, name)
	}
	return names
}

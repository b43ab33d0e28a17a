// Package netsim implements the deterministic (given a seeded RNG)
// in-process network simulator from spec.md §4.8: per-link latency
// with Gaussian jitter and independent packet loss, backed by a
// min-heap in-flight queue, aggregated per player into a MockNet.
package netsim

import (
	"container/heap"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/andersfylling/chronosync/timeval"
)

// Params configures one direction of one Channel.
type Params struct {
	LatencyMean   timeval.LocalDt
	LatencyStdDev timeval.LocalDt
	Loss          float64 // in [0, 1]
}

// Arrived is one message popped from a Channel, tagged with the
// simulated local time it arrived.
type Arrived[M any] struct {
	At  timeval.LocalTime
	Msg M
}

type inFlight[M any] struct {
	arrival timeval.LocalTime
	seq     uint64
	msg     M
}

type inFlightHeap[M any] []inFlight[M]

func (h inFlightHeap[M]) Len() int { return len(h) }
func (h inFlightHeap[M]) Less(i, j int) bool {
	if !h[i].arrival.Equal(h[j].arrival) {
		return h[i].arrival.Before(h[j].arrival)
	}
	return h[i].seq < h[j].seq
}
func (h inFlightHeap[M]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *inFlightHeap[M]) Push(x any)   { *h = append(*h, x.(inFlight[M])) }
func (h *inFlightHeap[M]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Channel is one direction of a simulated link: sent messages are
// delayed by Gaussian jitter around a mean latency and independently
// dropped with probability Loss, then delivered in arrival order.
type Channel[M any] struct {
	params Params
	rng    *rand.Rand
	queue  inFlightHeap[M]
	seq    uint64
}

// NewChannel creates a Channel. rng drives both the loss coin-flip and
// the latency jitter draw; pass a seeded *rand.Rand for deterministic
// tests, or a process-global one for demos.
func NewChannel[M any](params Params, rng *rand.Rand) *Channel[M] {
	return &Channel[M]{params: params, rng: rng}
}

// SetParams replaces the channel's latency/loss parameters.
func (c *Channel[M]) SetParams(params Params) {
	c.params = params
}

// Send enqueues msg for delivery, sent at local time t. A fraction
// Loss of sends are dropped outright; survivors are delayed by a
// Normal(LatencyMean, LatencyStdDev) draw, clamped to nonnegative.
func (c *Channel[M]) Send(t timeval.LocalTime, msg M) {
	if c.rng.Float64() < c.params.Loss {
		return
	}

	dist := distuv.Normal{
		Mu:    c.params.LatencyMean.Seconds(),
		Sigma: c.params.LatencyStdDev.Seconds(),
		Src:   c.rng,
	}
	residual := dist.Rand()
	if residual < 0 {
		residual = 0
	}

	arrival := t.Add(timeval.DtFromSeconds[timeval.LocalTag](residual))
	heap.Push(&c.queue, inFlight[M]{arrival: arrival, seq: c.seq, msg: msg})
	c.seq++
}

// Receive pops every message whose simulated arrival time is at or
// before t, in arrival order.
func (c *Channel[M]) Receive(t timeval.LocalTime) []Arrived[M] {
	var out []Arrived[M]
	for c.queue.Len() > 0 && !c.queue[0].arrival.After(t) {
		item := heap.Pop(&c.queue).(inFlight[M])
		out = append(out, Arrived[M]{At: item.arrival, Msg: item.msg})
	}
	return out
}

// Pending returns the number of messages still in flight.
func (c *Channel[M]) Pending() int {
	return c.queue.Len()
}

package netsim

import (
	"math/rand"
	"sort"

	"github.com/andersfylling/chronosync/ids"
	"github.com/andersfylling/chronosync/timeval"
)

// SocketParams configures both directions of a player's socket.
type SocketParams struct {
	ServerOut Params // server -> client
	ClientOut Params // client -> server
}

type socket[C2S, S2C any] struct {
	serverOut *Channel[S2C]
	clientOut *Channel[C2S]
}

// MockNet aggregates one Socket per player: a server-out channel
// carrying S2C messages and a client-out channel carrying C2S
// messages, each with independently configurable latency and loss.
type MockNet[C2S, S2C any] struct {
	localNow func() timeval.LocalTime
	rng      *rand.Rand
	sockets  map[ids.PlayerId]*socket[C2S, S2C]
}

// NewMockNet creates a MockNet with one socket per player in players,
// all using defaultParams until SetParams overrides them.
func NewMockNet[C2S, S2C any](players []ids.PlayerId, defaultParams SocketParams, localNow func() timeval.LocalTime, rng *rand.Rand) *MockNet[C2S, S2C] {
	n := &MockNet[C2S, S2C]{
		localNow: localNow,
		rng:      rng,
		sockets:  make(map[ids.PlayerId]*socket[C2S, S2C], len(players)),
	}
	for _, p := range players {
		n.sockets[p] = &socket[C2S, S2C]{
			serverOut: NewChannel[S2C](defaultParams.ServerOut, rng),
			clientOut: NewChannel[C2S](defaultParams.ClientOut, rng),
		}
	}
	return n
}

// SetParams replaces one player's socket parameters.
func (n *MockNet[C2S, S2C]) SetParams(player ids.PlayerId, params SocketParams) {
	s, ok := n.sockets[player]
	if !ok {
		return
	}
	s.serverOut.SetParams(params.ServerOut)
	s.clientOut.SetParams(params.ClientOut)
}

// SendToServer simulates a client sending msg to the server.
func (n *MockNet[C2S, S2C]) SendToServer(player ids.PlayerId, msg C2S) {
	s, ok := n.sockets[player]
	if !ok {
		return
	}
	s.clientOut.Send(n.localNow(), msg)
}

// SendToClient simulates the server sending msg to a client.
func (n *MockNet[C2S, S2C]) SendToClient(player ids.PlayerId, msg S2C) {
	s, ok := n.sockets[player]
	if !ok {
		return
	}
	s.serverOut.Send(n.localNow(), msg)
}

// ReceivedFromClient is one message the server has received, tagged
// with the sending player and simulated arrival time.
type ReceivedFromClient[C2S any] struct {
	At     timeval.LocalTime
	Player ids.PlayerId
	Msg    C2S
}

// ReceiveFromClients drains every client-out channel at the current
// local time and returns the messages sorted by arrival time, with
// ties broken by player id — modeling the single inbound stream a
// server socket would actually see.
func (n *MockNet[C2S, S2C]) ReceiveFromClients() []ReceivedFromClient[C2S] {
	now := n.localNow()
	var out []ReceivedFromClient[C2S]
	for player, s := range n.sockets {
		for _, a := range s.clientOut.Receive(now) {
			out = append(out, ReceivedFromClient[C2S]{At: a.At, Player: player, Msg: a.Msg})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].At.Equal(out[j].At) {
			return out[i].At.Before(out[j].At)
		}
		return out[i].Player < out[j].Player
	})
	return out
}

// ReceiveFromServer drains one player's server-out channel at the
// current local time.
func (n *MockNet[C2S, S2C]) ReceiveFromServer(player ids.PlayerId) []Arrived[S2C] {
	s, ok := n.sockets[player]
	if !ok {
		return nil
	}
	return s.serverOut.Receive(n.localNow())
}

// Package callsign generates human-readable demo labels for player
// ids, for use in log lines and terminal output where a bare
// PlayerId(7) is harder to scan than "WONKY-FALCON-7".
package callsign

import (
	"fmt"
	"math/rand"

	"github.com/andersfylling/chronosync/ids"
)

var adjectives = [...]string{
	"ZEN", "WONKY", "SWIFT", "LAGGY", "CALM", "JUMPY", "STEADY", "RUSTY",
}

var nouns = [...]string{
	"FALCON", "OTTER", "COMET", "BADGER", "RELAY", "PULSAR", "ECHO", "DRIFTER",
}

// Label deterministically derives a human-readable callsign from a
// player id: the same id always produces the same label, so demo logs
// stay readable across a run without needing a lookup table.
func Label(player ids.PlayerId) string {
	rng := rand.New(rand.NewSource(int64(player)))
	return fmt.Sprintf("%s-%s-%d", adjectives[rng.Intn(len(adjectives))], nouns[rng.Intn(len(nouns))], player)
}

package system

import (
	"time"

	coresys "github.com/breachpoint/server/internal/core/system"
	"github.com/breachpoint/server/internal/match"
	"github.com/breachpoint/server/internal/net/packet"
	"github.com/breachpoint/server/internal/world"
)

// SnapshotSystem serializes world and round state each tick and hands
// the packets to a transport sink.
type SnapshotSystem struct {
	world *world.State
	coord *match.Coordinator
	send  func([]byte)
}

func NewSnapshotSystem(w *world.State, c *match.Coordinator, send func([]byte)) *SnapshotSystem {
	return &SnapshotSystem{world: w, coord: c, send: send}
}

func (s *SnapshotSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *SnapshotSystem) Update(dt time.Duration) {
	for _, d := range s.world.Doors() {
		s.send(packet.EncodeDoorState(d))
	}
	for _, p := range s.world.Roster() {
		if p == nil {
			continue
		}
		s.send(packet.EncodePlayerState(p))
	}
	s.send(packet.EncodeRoundInfo(
		s.coord.CurrentRound(),
		s.coord.Attacker().Points(),
		s.coord.Defender().Points(),
		s.coord.RemainingTime().Milliseconds(),
		s.coord.InIntermission()))
}

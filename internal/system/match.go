package system

import (
	"time"

	"go.uber.org/zap"

	coresys "github.com/breachpoint/server/internal/core/system"
	"github.com/breachpoint/server/internal/match"
)

// MatchSystem runs the round coordinator once per tick and logs the
// transition into the won state.
type MatchSystem struct {
	coord *match.Coordinator
	game  match.Game
	log   *zap.Logger

	state match.State
}

func NewMatchSystem(coord *match.Coordinator, game match.Game, log *zap.Logger) *MatchSystem {
	return &MatchSystem{coord: coord, game: game, log: log}
}

func (s *MatchSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

// MatchState returns the signal from the most recent tick.
func (s *MatchSystem) MatchState() match.State { return s.state }

func (s *MatchSystem) Update(dt time.Duration) {
	prev := s.state
	s.state = s.coord.Update(s.game, dt)
	if s.state == match.StateWinner && prev != match.StateWinner {
		s.log.Info("match decided",
			zap.Int("rounds", s.coord.CurrentRound()),
			zap.Int("attacker_score", s.coord.Attacker().Points()),
			zap.Int("defender_score", s.coord.Defender().Points()))
	}
}

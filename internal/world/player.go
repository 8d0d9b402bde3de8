package world

import (
	"time"

	"github.com/breachpoint/server/internal/match"
)

// LookAtDeathDelay is how long a freshly dead player watches their own
// death before the coordinator switches them onto a spectate target.
const LookAtDeathDelay = 2 * time.Second

// PlayerInfo is the in-world bookkeeping for one roster slot. Accessed
// only from the game loop goroutine.
type PlayerInfo struct {
	PlayerID match.PlayerID
	Name     string
	TeamID   string

	// Ent is the player's physical presence: position and collision
	// bounds, consumed by door blocking checks.
	Ent Entity

	Dead bool
	// PureSpectator marks players who never spawn.
	PureSpectator bool

	spectating  match.Player
	lookTimer   time.Duration
	lookStarted bool
}

var _ match.Player = (*PlayerInfo)(nil)

func (p *PlayerInfo) ID() match.PlayerID    { return p.PlayerID }
func (p *PlayerInfo) IsPureSpectator() bool { return p.PureSpectator }
func (p *PlayerInfo) IsDead() bool          { return p.Dead }

func (p *PlayerInfo) IsSpectating() bool {
	return p.spectating != nil
}

func (p *PlayerInfo) Spectating() match.Player {
	return p.spectating
}

// ApplyLookAtDeathDelay starts the death-camera timer; repeated calls
// while it runs do not restart it.
func (p *PlayerInfo) ApplyLookAtDeathDelay() {
	if !p.lookStarted {
		p.lookTimer = LookAtDeathDelay
		p.lookStarted = true
	}
}

func (p *PlayerInfo) UpdateLookAtDeathTime(dt time.Duration) {
	if p.lookStarted && p.lookTimer > 0 {
		p.lookTimer -= dt
	}
}

func (p *PlayerInfo) ReadyToLookAwayFromDeath() bool {
	return p.lookStarted && p.lookTimer <= 0
}

// SetSpectating switches the player onto target (nil clears) and rewinds
// the death-camera state.
func (p *PlayerInfo) SetSpectating(target match.Player) {
	p.spectating = target
	p.lookStarted = false
	p.lookTimer = 0
}

// Revive puts the player back into play at their current position.
func (p *PlayerInfo) Revive() {
	p.Dead = false
	p.SetSpectating(nil)
}

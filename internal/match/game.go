package match

import "time"

// PlayerID identifies a roster slot for the match lifetime.
type PlayerID = int32

// Game is the slice of the host simulation the coordinator consumes:
// bulk reset and respawn hooks plus the player roster.
type Game interface {
	// KillAll force-kills every live entity at round start.
	KillAll()
	// SpawnPlayer respawns the player at a team spawn point.
	SpawnPlayer(id PlayerID)
	// Players returns the roster in slot order. Slots may be nil.
	Players() []Player
}

// Team is the capability set of a team roster reference. The attacker
// and defender handles are fixed for the whole match.
type Team interface {
	ID() string
	// IsTeamDead reports whether every rostered player is dead.
	IsTeamDead() bool
	TeamSize() int
	// Score awards points to the team's ledger.
	Score(points int)
	Points() int
}

// Player is the per-player bookkeeping the coordinator touches between
// win-condition checks: death-camera delay and spectate switching.
type Player interface {
	ID() PlayerID
	IsPureSpectator() bool
	IsSpectating() bool
	IsDead() bool
	// ApplyLookAtDeathDelay starts the look-at-own-death timer if it is
	// not already running.
	ApplyLookAtDeathDelay()
	UpdateLookAtDeathTime(dt time.Duration)
	// ReadyToLookAwayFromDeath reports whether the delay has elapsed.
	ReadyToLookAwayFromDeath() bool
	SetSpectating(target Player)
}

package match

// Objective is the capability set the round coordinator depends on.
// Concrete objectives (plant sites, capture points, Lua-scripted goals)
// stay opaque beyond these four hooks.
type Objective interface {
	// Init arms the objective when the match starts.
	Init(g Game)
	// IsCompleted reports whether the objective has been captured this
	// round, evaluated against current game state.
	IsCompleted(g Game) bool
	// IsInProgress reports whether an attacker is actively working the
	// objective right now.
	IsInProgress(g Game) bool
	// Reset re-arms the objective for the next round.
	Reset(g Game)
}

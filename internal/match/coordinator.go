package match

import (
	"time"

	"go.uber.org/zap"

	"github.com/breachpoint/server/internal/core/event"
	"github.com/breachpoint/server/internal/geom"
)

// State is the overall match-level signal returned by Update.
type State int

const (
	StateInProgress State = iota
	StateWinner
)

// Config carries the fixed match parameters.
type Config struct {
	// MaxScore is the number of completed rounds that ends the match.
	MaxScore int
	// RoundTime is the active-round time budget.
	RoundTime time.Duration
	// RoundDelay is the intermission length between rounds.
	RoundDelay time.Duration
}

// Coordinator drives the round progression of an objective match:
// intermission, active round, and the win-condition checks that end a
// round. Single-threaded; the host calls Update once per simulation tick.
type Coordinator struct {
	cfg Config

	currentRound   int
	remaining      time.Duration
	currentDelay   time.Duration
	inIntermission bool

	// outstanding and completed partition the full objective set. An
	// objective moves to completed at most once per round and merges
	// back at round start.
	outstanding []Objective
	completed   []Objective

	attacker Team
	defender Team

	attackerSpawns []geom.Vec2
	defenderSpawns []geom.Vec2

	bus *event.Bus
	log *zap.Logger
}

// NewCoordinator builds a coordinator starting in intermission. The
// attacker/defender handles and spawn lists are fixed for the match; the
// bus handle is acquired once here and lives for the match session.
func NewCoordinator(cfg Config, objectives []Objective, attacker, defender Team,
	attackerSpawns, defenderSpawns []geom.Vec2, bus *event.Bus, log *zap.Logger) *Coordinator {

	return &Coordinator{
		cfg:            cfg,
		remaining:      cfg.RoundTime,
		currentDelay:   cfg.RoundDelay,
		inIntermission: true,
		outstanding:    objectives,
		completed:      make([]Objective, 0, len(objectives)),
		attacker:       attacker,
		defender:       defender,
		attackerSpawns: attackerSpawns,
		defenderSpawns: defenderSpawns,
		bus:            bus,
		log:            log,
	}
}

func (c *Coordinator) Attacker() Team                   { return c.attacker }
func (c *Coordinator) Defender() Team                   { return c.defender }
func (c *Coordinator) AttackerSpawnPoints() []geom.Vec2 { return c.attackerSpawns }
func (c *Coordinator) DefenderSpawnPoints() []geom.Vec2 { return c.defenderSpawns }
func (c *Coordinator) CurrentRound() int                { return c.currentRound }
func (c *Coordinator) RemainingTime() time.Duration     { return c.remaining }
func (c *Coordinator) InIntermission() bool             { return c.inIntermission }

// Outstanding returns a copy of the objectives not yet completed this round.
func (c *Coordinator) Outstanding() []Objective {
	out := make([]Objective, len(c.outstanding))
	copy(out, c.outstanding)
	return out
}

// Completed returns a copy of the objectives completed this round.
func (c *Coordinator) Completed() []Objective {
	out := make([]Objective, len(c.completed))
	copy(out, c.completed)
	return out
}

// Start initializes every objective once at match start.
func (c *Coordinator) Start(g Game) {
	for _, o := range c.outstanding {
		o.Init(g)
	}
}

// IsInProgress reports the coordinator as live while the match has no
// winner and it is not sitting in intermission. The single tick on which
// the intermission countdown still equals its full reset value counts as
// in progress: a deliberate one-tick grace window after a round ends.
func (c *Coordinator) IsInProgress() bool {
	return c.currentRound < c.cfg.MaxScore &&
		(!c.inIntermission || c.currentDelay == c.cfg.RoundDelay)
}

// Update advances the match by one tick and reports the overall state.
func (c *Coordinator) Update(g Game, dt time.Duration) State {
	if c.currentRound >= c.cfg.MaxScore {
		return StateWinner
	}

	if c.inIntermission {
		c.currentDelay -= dt
		if c.currentDelay <= 0 {
			c.startRound(g)
		}
	} else {
		c.tickRound(g, dt)
	}

	if c.currentRound >= c.cfg.MaxScore {
		return StateWinner
	}
	return StateInProgress
}

// tickRound evaluates objectives and the round-end conditions for one
// active-round tick.
func (c *Coordinator) tickRound(g Game, dt time.Duration) {
	c.remaining -= dt

	// Scan the pre-tick outstanding set in full before removing anything,
	// so one objective's status never depends on another's removal within
	// the same tick. Attackers still working an objective keep the round
	// alive even if their whole team is dead.
	inProgress := 0
	for _, o := range c.outstanding {
		if o.IsCompleted(g) {
			c.completed = append(c.completed, o)
		} else if o.IsInProgress(g) {
			inProgress++
		}
	}
	c.outstanding = subtract(c.outstanding, c.completed)

	// First matching condition ends the round; the order is load-bearing.
	switch {
	case len(c.outstanding) == 0 && len(c.completed) > 0:
		c.EndRound(c.attacker)
	case c.defender.IsTeamDead() && c.defender.TeamSize() > 0:
		c.EndRound(c.attacker)
	case c.remaining <= 0:
		c.EndRound(c.defender)
	case c.attacker.IsTeamDead() && c.attacker.TeamSize() > 0 && inProgress == 0:
		c.EndRound(c.defender)
	default:
		c.tickSpectators(g, dt)
	}
}

// tickSpectators runs the dead-player housekeeping: start the
// look-at-own-death delay, and once it elapses, switch the player onto
// the next eligible target.
func (c *Coordinator) tickSpectators(g Game, dt time.Duration) {
	players := g.Players()
	for _, p := range players {
		if p == nil {
			continue
		}
		if !p.IsPureSpectator() && !p.IsSpectating() && p.IsDead() {
			p.ApplyLookAtDeathDelay()
		}
		p.UpdateLookAtDeathTime(dt)
		if !p.IsPureSpectator() && !p.IsSpectating() && p.ReadyToLookAwayFromDeath() {
			p.SetSpectating(nextPlayerToSpectate(players, p))
		}
	}
}

// EndRound finishes the current round. A nil winner (administrative
// termination) skips the score award; the round-ended notification still
// fires.
func (c *Coordinator) EndRound(winner Team) {
	c.currentRound++
	c.currentDelay = c.cfg.RoundDelay
	c.inIntermission = true

	name := ""
	if winner != nil {
		winner.Score(1)
		name = winner.ID()
	}

	elapsed := c.cfg.RoundTime - c.remaining
	event.Publish(c.bus, event.RoundEnded{
		Round:         c.currentRound,
		Winner:        name,
		AttackerScore: c.attacker.Points(),
		DefenderScore: c.defender.Points(),
		Elapsed:       elapsed,
	})

	c.log.Info("round ended",
		zap.Int("round", c.currentRound),
		zap.String("winner", name),
		zap.Duration("elapsed", elapsed))
}

// startRound leaves intermission: wipe the field, re-arm every objective,
// merge completed back into outstanding, respawn everyone who plays, and
// reset the clock.
func (c *Coordinator) startRound(g Game) {
	c.inIntermission = false

	g.KillAll()

	for _, o := range c.completed {
		o.Reset(g)
	}
	for _, o := range c.outstanding {
		o.Reset(g)
	}
	c.outstanding = append(c.outstanding, c.completed...)
	c.completed = c.completed[:0]

	for _, p := range g.Players() {
		if p != nil && !p.IsPureSpectator() {
			g.SpawnPlayer(p.ID())
		}
	}

	c.remaining = c.cfg.RoundTime

	event.Publish(c.bus, event.RoundStarted{Round: c.currentRound + 1})
	c.log.Info("round started", zap.Int("round", c.currentRound+1))
}

// subtract returns items minus everything present in remove, preserving
// order. Identity comparison: the same Objective value moved between the
// two collections.
func subtract(items, remove []Objective) []Objective {
	if len(remove) == 0 {
		return items
	}
	kept := items[:0]
	for _, it := range items {
		removed := false
		for _, r := range remove {
			if it == r {
				removed = true
				break
			}
		}
		if !removed {
			kept = append(kept, it)
		}
	}
	return kept
}

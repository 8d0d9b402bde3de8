package match

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/breachpoint/server/internal/core/event"
)

// --- fakes ---

type fakeObjective struct {
	completed  bool
	inProgress bool
	initCount  int
	resetCount int
}

func (o *fakeObjective) Init(g Game)             { o.initCount++ }
func (o *fakeObjective) IsCompleted(g Game) bool { return o.completed }
func (o *fakeObjective) IsInProgress(g Game) bool {
	return o.inProgress
}
func (o *fakeObjective) Reset(g Game) {
	o.resetCount++
	o.completed = false
	o.inProgress = false
}

type fakeTeam struct {
	id     string
	dead   bool
	size   int
	points int
}

func (t *fakeTeam) ID() string       { return t.id }
func (t *fakeTeam) IsTeamDead() bool { return t.dead }
func (t *fakeTeam) TeamSize() int    { return t.size }
func (t *fakeTeam) Score(points int) { t.points += points }
func (t *fakeTeam) Points() int      { return t.points }

type fakePlayer struct {
	id          PlayerID
	dead        bool
	pure        bool
	spectating  Player
	lookApplied int
	ready       bool
}

func (p *fakePlayer) ID() PlayerID          { return p.id }
func (p *fakePlayer) IsPureSpectator() bool { return p.pure }
func (p *fakePlayer) IsSpectating() bool    { return p.spectating != nil }
func (p *fakePlayer) IsDead() bool          { return p.dead }
func (p *fakePlayer) ApplyLookAtDeathDelay() {
	p.lookApplied++
}
func (p *fakePlayer) UpdateLookAtDeathTime(dt time.Duration) {}
func (p *fakePlayer) ReadyToLookAwayFromDeath() bool         { return p.ready }
func (p *fakePlayer) SetSpectating(target Player)            { p.spectating = target }

type fakeGame struct {
	players  []Player
	killAlls int
	spawned  []PlayerID
}

func (g *fakeGame) KillAll() {
	g.killAlls++
	for _, p := range g.players {
		if fp, ok := p.(*fakePlayer); ok && fp != nil {
			fp.dead = true
		}
	}
}

func (g *fakeGame) SpawnPlayer(id PlayerID) {
	g.spawned = append(g.spawned, id)
	for _, p := range g.players {
		if fp, ok := p.(*fakePlayer); ok && fp != nil && fp.id == id {
			fp.dead = false
		}
	}
}

func (g *fakeGame) Players() []Player { return g.players }

// --- helpers ---

const (
	testRoundTime  = time.Minute
	testRoundDelay = 5 * time.Second
)

func newTestCoordinator(objs []Objective, attacker, defender Team) (*Coordinator, *event.Bus) {
	bus := event.NewBus()
	cfg := Config{MaxScore: 3, RoundTime: testRoundTime, RoundDelay: testRoundDelay}
	return NewCoordinator(cfg, objs, attacker, defender, nil, nil, bus, zap.NewNop()), bus
}

func liveTeams() (*fakeTeam, *fakeTeam) {
	return &fakeTeam{id: "red", size: 2}, &fakeTeam{id: "blue", size: 2}
}

// enterRound burns the whole intermission in one update.
func enterRound(t *testing.T, c *Coordinator, g Game) {
	t.Helper()
	c.Update(g, testRoundDelay)
	if c.InIntermission() {
		t.Fatal("setup: coordinator should have left intermission")
	}
}

// --- tests ---

func TestCoordinator_StartsInIntermission(t *testing.T) {
	att, def := liveTeams()
	c, _ := newTestCoordinator([]Objective{&fakeObjective{}}, att, def)

	if !c.InIntermission() {
		t.Error("new coordinator should start in intermission")
	}
	if c.CurrentRound() != 0 {
		t.Errorf("current round = %d, want 0", c.CurrentRound())
	}
	// Fresh countdown still equals the full delay: the grace tick.
	if !c.IsInProgress() {
		t.Error("IsInProgress should be true on the grace tick")
	}
}

func TestCoordinator_IntermissionCountdown(t *testing.T) {
	att, def := liveTeams()
	c, _ := newTestCoordinator([]Objective{&fakeObjective{}}, att, def)
	g := &fakeGame{}

	c.Update(g, time.Second)
	if !c.InIntermission() {
		t.Error("should still be in intermission after 1s of 5s")
	}
	if c.IsInProgress() {
		t.Error("IsInProgress should be false mid-countdown")
	}

	c.Update(g, 4*time.Second)
	if c.InIntermission() {
		t.Error("intermission should end when the countdown reaches zero")
	}
	if !c.IsInProgress() {
		t.Error("IsInProgress should be true during the active round")
	}
}

func TestCoordinator_RoundStartResetsField(t *testing.T) {
	att, def := liveTeams()
	obj := &fakeObjective{}
	c, bus := newTestCoordinator([]Objective{obj}, att, def)

	var started []event.RoundStarted
	event.Subscribe(bus, func(ev event.RoundStarted) { started = append(started, ev) })

	g := &fakeGame{players: []Player{
		&fakePlayer{id: 1},
		nil,
		&fakePlayer{id: 2, pure: true},
		&fakePlayer{id: 3},
	}}
	enterRound(t, c, g)

	if g.killAlls != 1 {
		t.Errorf("KillAll calls = %d, want 1", g.killAlls)
	}
	if obj.resetCount != 1 {
		t.Errorf("objective reset count = %d, want 1", obj.resetCount)
	}
	if len(g.spawned) != 2 {
		t.Fatalf("spawned = %v, want exactly the two non-spectator players", g.spawned)
	}
	if g.spawned[0] != 1 || g.spawned[1] != 3 {
		t.Errorf("spawned = %v, want [1 3]", g.spawned)
	}
	if c.RemainingTime() != testRoundTime {
		t.Errorf("remaining = %v, want full round time", c.RemainingTime())
	}

	bus.SwapBuffers()
	bus.DispatchAll()
	if len(started) != 1 || started[0].Round != 1 {
		t.Errorf("round-started events = %+v, want one for round 1", started)
	}
}

func TestCoordinator_AllObjectivesCompleteAttackerWins(t *testing.T) {
	att, def := liveTeams()
	obj := &fakeObjective{}
	c, bus := newTestCoordinator([]Objective{obj}, att, def)

	var ended []event.RoundEnded
	event.Subscribe(bus, func(ev event.RoundEnded) { ended = append(ended, ev) })

	g := &fakeGame{}
	enterRound(t, c, g)

	obj.completed = true
	c.Update(g, 50*time.Millisecond)

	if att.points != 1 {
		t.Errorf("attacker points = %d, want 1", att.points)
	}
	if def.points != 0 {
		t.Errorf("defender points = %d, want 0", def.points)
	}
	if !c.InIntermission() {
		t.Error("round end should enter intermission")
	}
	if c.CurrentRound() != 1 {
		t.Errorf("current round = %d, want 1", c.CurrentRound())
	}

	bus.SwapBuffers()
	bus.DispatchAll()
	if len(ended) != 1 {
		t.Fatalf("round-ended events = %d, want 1", len(ended))
	}
	if ended[0].Winner != "red" || ended[0].Round != 1 {
		t.Errorf("event = %+v, want winner red, round 1", ended[0])
	}
}

func TestCoordinator_ObjectiveCompletionBeatsTimeExpiry(t *testing.T) {
	att, def := liveTeams()
	obj := &fakeObjective{}
	c, _ := newTestCoordinator([]Objective{obj}, att, def)
	g := &fakeGame{}
	enterRound(t, c, g)

	// Same tick: final objective completes and the clock hits zero.
	obj.completed = true
	c.Update(g, testRoundTime)

	if att.points != 1 || def.points != 0 {
		t.Errorf("points = %d/%d, want attacker to take the tie", att.points, def.points)
	}
}

func TestCoordinator_DefenderTeamDeadAttackerWins(t *testing.T) {
	att, def := liveTeams()
	c, _ := newTestCoordinator([]Objective{&fakeObjective{}}, att, def)
	g := &fakeGame{}
	enterRound(t, c, g)

	def.dead = true
	c.Update(g, 50*time.Millisecond)

	if att.points != 1 {
		t.Errorf("attacker points = %d, want 1", att.points)
	}
}

func TestCoordinator_TimeExpiryDefenderWins(t *testing.T) {
	att, def := liveTeams()
	c, _ := newTestCoordinator([]Objective{&fakeObjective{}}, att, def)
	g := &fakeGame{}
	enterRound(t, c, g)

	c.Update(g, testRoundTime)

	if def.points != 1 {
		t.Errorf("defender points = %d, want 1", def.points)
	}
	if att.points != 0 {
		t.Errorf("attacker points = %d, want 0", att.points)
	}
}

func TestCoordinator_AttackerDeadDefenderWins(t *testing.T) {
	att, def := liveTeams()
	c, _ := newTestCoordinator([]Objective{&fakeObjective{}}, att, def)
	g := &fakeGame{}
	enterRound(t, c, g)

	att.dead = true
	c.Update(g, 50*time.Millisecond)

	if def.points != 1 {
		t.Errorf("defender points = %d, want 1", def.points)
	}
}

func TestCoordinator_InProgressObjectiveKeepsRoundAlive(t *testing.T) {
	att, def := liveTeams()
	obj := &fakeObjective{}
	c, _ := newTestCoordinator([]Objective{obj}, att, def)
	g := &fakeGame{}
	enterRound(t, c, g)

	// Whole attacking team dead, but their plant is still ticking.
	obj.inProgress = true
	att.dead = true
	c.Update(g, 50*time.Millisecond)

	if def.points != 0 {
		t.Errorf("defender points = %d, want 0 while an objective is in progress", def.points)
	}
	if c.InIntermission() {
		t.Error("round should continue while an objective is in progress")
	}

	// The moment it stops being worked, the defenders take the round.
	obj.inProgress = false
	c.Update(g, 50*time.Millisecond)
	if def.points != 1 {
		t.Errorf("defender points = %d, want 1 once nothing is in progress", def.points)
	}
}

func TestCoordinator_EmptyTeamIsNotDead(t *testing.T) {
	att := &fakeTeam{id: "red", size: 2}
	def := &fakeTeam{id: "blue", size: 0, dead: true} // vacuously dead
	c, _ := newTestCoordinator([]Objective{&fakeObjective{}}, att, def)
	g := &fakeGame{}
	enterRound(t, c, g)

	c.Update(g, 50*time.Millisecond)

	if att.points != 0 {
		t.Errorf("attacker points = %d, an empty defender roster must not end the round", att.points)
	}
}

func TestCoordinator_PartitionInvariant(t *testing.T) {
	att, def := liveTeams()
	objs := []Objective{&fakeObjective{}, &fakeObjective{}, &fakeObjective{}}
	c, _ := newTestCoordinator(objs, att, def)
	g := &fakeGame{}
	enterRound(t, c, g)

	check := func(label string) {
		t.Helper()
		total := len(c.Outstanding()) + len(c.Completed())
		if total != len(objs) {
			t.Fatalf("%s: outstanding %d + completed %d != %d",
				label, len(c.Outstanding()), len(c.Completed()), len(objs))
		}
	}

	check("after round start")

	objs[1].(*fakeObjective).completed = true
	c.Update(g, 50*time.Millisecond)
	check("after one completion")
	if len(c.Completed()) != 1 {
		t.Errorf("completed = %d, want 1", len(c.Completed()))
	}

	// Completed objectives are completed once; later ticks must not
	// double-count them.
	c.Update(g, 50*time.Millisecond)
	check("after a second tick")
	if len(c.Completed()) != 1 {
		t.Errorf("completed = %d after second tick, want still 1", len(c.Completed()))
	}
}

func TestCoordinator_RoundStartMergesCompletedBack(t *testing.T) {
	att, def := liveTeams()
	objA := &fakeObjective{}
	objB := &fakeObjective{}
	c, _ := newTestCoordinator([]Objective{objA, objB}, att, def)
	g := &fakeGame{}
	enterRound(t, c, g)

	objA.completed = true
	objB.completed = true
	c.Update(g, 50*time.Millisecond) // attacker wins, intermission
	if !c.InIntermission() {
		t.Fatal("setup: expected intermission after attacker win")
	}

	c.Update(g, testRoundDelay) // next round starts
	if got := len(c.Outstanding()); got != 2 {
		t.Errorf("outstanding after merge = %d, want 2", got)
	}
	if got := len(c.Completed()); got != 0 {
		t.Errorf("completed after merge = %d, want 0", got)
	}
	// Reset once at each round start: both objectives re-armed twice now.
	if objA.resetCount != 2 || objB.resetCount != 2 {
		t.Errorf("reset counts = %d/%d, want 2/2", objA.resetCount, objB.resetCount)
	}
}

func TestCoordinator_MatchEndsAtMaxScore(t *testing.T) {
	att, def := liveTeams()
	obj := &fakeObjective{}
	c, _ := newTestCoordinator([]Objective{obj}, att, def)
	g := &fakeGame{}

	for round := 0; round < 3; round++ {
		c.Update(g, testRoundDelay)
		obj.completed = true
		state := c.Update(g, 50*time.Millisecond)
		obj.completed = false
		if round < 2 && state != StateInProgress {
			t.Fatalf("round %d: state = %v, want in progress", round, state)
		}
	}

	if att.points != 3 {
		t.Errorf("attacker points = %d, want 3", att.points)
	}
	if got := c.Update(g, 50*time.Millisecond); got != StateWinner {
		t.Errorf("state after max score = %v, want winner", got)
	}
	if c.IsInProgress() {
		t.Error("IsInProgress should be false once the match is decided")
	}
	// A decided match never starts another round.
	c.Update(g, testRoundDelay)
	if g.killAlls != 3 {
		t.Errorf("KillAll calls = %d, want 3 (no round after the match ends)", g.killAlls)
	}
}

func TestCoordinator_EndRoundNilWinner(t *testing.T) {
	att, def := liveTeams()
	c, bus := newTestCoordinator([]Objective{&fakeObjective{}}, att, def)

	var ended []event.RoundEnded
	event.Subscribe(bus, func(ev event.RoundEnded) { ended = append(ended, ev) })

	g := &fakeGame{}
	enterRound(t, c, g)

	c.EndRound(nil)

	if att.points != 0 || def.points != 0 {
		t.Errorf("points = %d/%d, want no score on administrative termination", att.points, def.points)
	}
	if !c.InIntermission() {
		t.Error("EndRound should enter intermission")
	}

	bus.SwapBuffers()
	bus.DispatchAll()
	if len(ended) != 1 || ended[0].Winner != "" {
		t.Errorf("events = %+v, want one with empty winner", ended)
	}
}

func TestCoordinator_GraceTickAfterRoundEnd(t *testing.T) {
	att, def := liveTeams()
	c, _ := newTestCoordinator([]Objective{&fakeObjective{}}, att, def)
	g := &fakeGame{}
	enterRound(t, c, g)

	def.dead = true
	c.Update(g, 50*time.Millisecond)
	def.dead = false

	// Countdown was just reset to the full delay: still in progress.
	if !c.IsInProgress() {
		t.Error("IsInProgress should be true on the tick the round ended")
	}

	c.Update(g, 50*time.Millisecond)
	if c.IsInProgress() {
		t.Error("IsInProgress should be false once the countdown is running")
	}
}

func TestCoordinator_SpectateHousekeeping(t *testing.T) {
	att, def := liveTeams()
	c, _ := newTestCoordinator([]Objective{&fakeObjective{}}, att, def)

	dead := &fakePlayer{id: 1, dead: true}
	alive := &fakePlayer{id: 2}
	pure := &fakePlayer{id: 3, pure: true}
	g := &fakeGame{players: []Player{dead, alive, pure}}
	enterRound(t, c, g)

	// KillAll at round start killed everyone; revive the targets.
	alive.dead = false
	pure.dead = false
	dead.dead = true

	c.Update(g, 50*time.Millisecond)
	if dead.lookApplied == 0 {
		t.Error("dead player should get the look-at-death delay")
	}
	if dead.spectating != nil {
		t.Error("player should not spectate before the delay elapses")
	}

	dead.ready = true
	c.Update(g, 50*time.Millisecond)
	if dead.spectating != alive {
		t.Errorf("spectating = %v, want the live non-spectator player", dead.spectating)
	}

	// Pure spectators never enter the death-camera flow.
	if pure.lookApplied != 0 {
		t.Error("pure spectator should not get the look-at-death delay")
	}
}

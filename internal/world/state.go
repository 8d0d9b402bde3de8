package world

import (
	"go.uber.org/zap"

	"github.com/breachpoint/server/internal/geom"
	"github.com/breachpoint/server/internal/match"
)

// DoorUseRequest is a queued interaction: a player asked to handle a
// door. Posted by the host transport, drained once per tick.
type DoorUseRequest struct {
	PlayerID match.PlayerID
	DoorID   EntityID
}

// ObjectiveUseRequest is a queued objective interaction, for example a
// plant or a defuse at a bomb site.
type ObjectiveUseRequest struct {
	PlayerID    match.PlayerID
	ObjectiveID string
	Action      string
}

// State is the live match world: the roster, teams, doors and the
// outbound sound queue. Mutated only from the game loop goroutine.
type State struct {
	log *zap.Logger

	nextID  EntityID
	doors   []*Door
	players []*PlayerInfo // slot order; nil slots allowed
	teams   map[string]*TeamInfo

	spawnPoints map[string][]geom.Vec2
	spawnCursor map[string]int

	sounds        []SoundEvent
	doorUses      []DoorUseRequest
	objectiveUses []ObjectiveUseRequest
}

var _ match.Game = (*State)(nil)

func NewState(log *zap.Logger) *State {
	return &State{
		log:         log,
		teams:       make(map[string]*TeamInfo),
		spawnPoints: make(map[string][]geom.Vec2),
		spawnCursor: make(map[string]int),
	}
}

// NextPersistentID allocates an entity ID stable for the match lifetime.
func (s *State) NextPersistentID() EntityID {
	s.nextID++
	return s.nextID
}

func (s *State) AddTeam(t *TeamInfo) {
	s.teams[t.TeamID] = t
}

func (s *State) Team(id string) *TeamInfo {
	return s.teams[id]
}

// AddPlayer appends a roster slot. Slots keep their order for the match.
func (s *State) AddPlayer(p *PlayerInfo) {
	s.players = append(s.players, p)
}

// Roster returns the raw slot sequence, nil slots included.
func (s *State) Roster() []*PlayerInfo { return s.players }

// Players adapts the roster to the coordinator's capability view,
// preserving slot order and nil slots.
func (s *State) Players() []match.Player {
	out := make([]match.Player, len(s.players))
	for i, p := range s.players {
		if p != nil {
			out[i] = p
		}
	}
	return out
}

func (s *State) PlayerByID(id match.PlayerID) *PlayerInfo {
	for _, p := range s.players {
		if p != nil && p.PlayerID == id {
			return p
		}
	}
	return nil
}

// KillAll force-kills every live player. Doors persist across rounds.
func (s *State) KillAll() {
	for _, p := range s.players {
		if p != nil {
			p.Dead = true
		}
	}
}

// SetSpawnPoints installs a team's fixed, ordered spawn list.
func (s *State) SetSpawnPoints(teamID string, points []geom.Vec2) {
	s.spawnPoints[teamID] = points
	s.spawnCursor[teamID] = 0
}

func (s *State) SpawnPoints(teamID string) []geom.Vec2 {
	return s.spawnPoints[teamID]
}

// SpawnPlayer revives the player at their team's next spawn point,
// cycling through the list in order. Unknown IDs are ignored.
func (s *State) SpawnPlayer(id match.PlayerID) {
	p := s.PlayerByID(id)
	if p == nil {
		return
	}
	if points := s.spawnPoints[p.TeamID]; len(points) > 0 {
		cursor := s.spawnCursor[p.TeamID]
		pt := points[cursor%len(points)]
		s.spawnCursor[p.TeamID] = cursor + 1
		p.Ent.Pos = pt
		p.Ent.Bounds.CenterAround(pt)
	} else {
		s.log.Warn("no spawn points for team", zap.String("team", p.TeamID))
	}
	p.Revive()
}

func (s *State) AddDoor(d *Door) {
	s.doors = append(s.doors, d)
}

func (s *State) Doors() []*Door { return s.doors }

func (s *State) DoorByID(id EntityID) *Door {
	for _, d := range s.doors {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// DoesTouchPlayers probes the door's swept panel against every live
// player's bounds.
func (s *State) DoesTouchPlayers(d *Door) bool {
	for _, p := range s.players {
		if p == nil || p.Dead {
			continue
		}
		if d.IsTouching(p.Ent.Bounds) {
			return true
		}
	}
	return false
}

// EmitSound queues a fire-and-forget audio cue for the host layer.
func (s *State) EmitSound(src EntityID, st SoundType, pos geom.Vec2) {
	s.sounds = append(s.sounds, SoundEvent{Source: src, Type: st, Pos: pos})
}

// DrainSounds returns and clears the queued sounds.
func (s *State) DrainSounds() []SoundEvent {
	out := s.sounds
	s.sounds = nil
	return out
}

// QueueDoorUse posts a door interaction to be handled next tick.
func (s *State) QueueDoorUse(playerID match.PlayerID, doorID EntityID) {
	s.doorUses = append(s.doorUses, DoorUseRequest{PlayerID: playerID, DoorID: doorID})
}

// DrainDoorUses returns and clears the queued interactions.
func (s *State) DrainDoorUses() []DoorUseRequest {
	out := s.doorUses
	s.doorUses = nil
	return out
}

// QueueObjectiveUse posts an objective interaction to be handled next tick.
func (s *State) QueueObjectiveUse(playerID match.PlayerID, objectiveID, action string) {
	s.objectiveUses = append(s.objectiveUses, ObjectiveUseRequest{
		PlayerID:    playerID,
		ObjectiveID: objectiveID,
		Action:      action,
	})
}

// DrainObjectiveUses returns and clears the queued interactions.
func (s *State) DrainObjectiveUses() []ObjectiveUseRequest {
	out := s.objectiveUses
	s.objectiveUses = nil
	return out
}

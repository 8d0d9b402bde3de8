package system

import (
	"time"

	"go.uber.org/zap"

	coresys "github.com/breachpoint/server/internal/core/system"
	"github.com/breachpoint/server/internal/scripting"
	"github.com/breachpoint/server/internal/world"
)

// InputSystem drains queued door and objective interactions. Requests
// from dead or unknown players are dropped; out-of-reach door
// interactions no-op inside the door itself.
type InputSystem struct {
	world      *world.State
	objectives map[string]*scripting.LuaObjective
	log        *zap.Logger
}

func NewInputSystem(w *world.State, objectives map[string]*scripting.LuaObjective, log *zap.Logger) *InputSystem {
	return &InputSystem{world: w, objectives: objectives, log: log}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(dt time.Duration) {
	for _, req := range s.world.DrainDoorUses() {
		p := s.world.PlayerByID(req.PlayerID)
		if p == nil || p.Dead {
			continue
		}
		d := s.world.DoorByID(req.DoorID)
		if d == nil {
			s.log.Warn("door use for unknown door",
				zap.Int32("player", req.PlayerID),
				zap.Int32("door", int32(req.DoorID)))
			continue
		}
		d.HandleDoor(&p.Ent)
	}

	for _, req := range s.world.DrainObjectiveUses() {
		p := s.world.PlayerByID(req.PlayerID)
		if p == nil || p.Dead {
			continue
		}
		obj := s.objectives[req.ObjectiveID]
		if obj == nil {
			s.log.Warn("use of unknown objective",
				zap.Int32("player", req.PlayerID),
				zap.String("objective", req.ObjectiveID))
			continue
		}
		obj.Trigger(req.Action, s.world)
	}
}

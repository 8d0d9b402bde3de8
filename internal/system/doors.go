package system

import (
	"time"

	coresys "github.com/breachpoint/server/internal/core/system"
	"github.com/breachpoint/server/internal/world"
)

// DoorSystem ticks every door's swing simulation.
type DoorSystem struct {
	world *world.State
}

func NewDoorSystem(w *world.State) *DoorSystem {
	return &DoorSystem{world: w}
}

func (s *DoorSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *DoorSystem) Update(dt time.Duration) {
	for _, d := range s.world.Doors() {
		d.Tick(dt)
	}
}

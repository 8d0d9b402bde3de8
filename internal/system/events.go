package system

import (
	"time"

	"github.com/breachpoint/server/internal/core/event"
	coresys "github.com/breachpoint/server/internal/core/system"
)

// EventDispatchSystem rotates the bus buffers at tick start so handlers
// see everything published last tick.
type EventDispatchSystem struct {
	bus *event.Bus
}

func NewEventDispatchSystem(bus *event.Bus) *EventDispatchSystem {
	return &EventDispatchSystem{bus: bus}
}

func (s *EventDispatchSystem) Phase() coresys.Phase { return coresys.PhasePreUpdate }

func (s *EventDispatchSystem) Update(dt time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}

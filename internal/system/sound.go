package system

import (
	"time"

	"go.uber.org/zap"

	coresys "github.com/breachpoint/server/internal/core/system"
	"github.com/breachpoint/server/internal/net/packet"
	"github.com/breachpoint/server/internal/world"
)

// SoundSystem drains the world's sound queue each tick, encodes each cue
// and hands it to the transport sink.
type SoundSystem struct {
	world *world.State
	send  func([]byte)
	log   *zap.Logger
}

func NewSoundSystem(w *world.State, send func([]byte), log *zap.Logger) *SoundSystem {
	return &SoundSystem{world: w, send: send, log: log}
}

func (s *SoundSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *SoundSystem) Update(dt time.Duration) {
	for _, ev := range s.world.DrainSounds() {
		s.send(packet.EncodeSound(ev))
		s.log.Debug("sound",
			zap.String("type", ev.Type.String()),
			zap.Int32("source", int32(ev.Source)),
			zap.Float64("x", ev.Pos.X),
			zap.Float64("y", ev.Pos.Y))
	}
}

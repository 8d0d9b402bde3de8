package system

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/breachpoint/server/internal/geom"
	"github.com/breachpoint/server/internal/net/packet"
	"github.com/breachpoint/server/internal/world"
)

func TestSoundSystem_EncodesAndDrains(t *testing.T) {
	s := world.NewState(zap.NewNop())
	s.EmitSound(7, world.SoundDoorOpen, geom.Vec2{X: 100, Y: 200})

	var sent [][]byte
	sys := NewSoundSystem(s, func(pkt []byte) { sent = append(sent, pkt) }, zap.NewNop())
	sys.Update(50 * time.Millisecond)

	if len(sent) != 1 {
		t.Fatalf("sent %d packets, want 1", len(sent))
	}
	if sent[0][0] != packet.OpSound {
		t.Errorf("opcode = %#x, want %#x", sent[0][0], packet.OpSound)
	}
	if len(sent[0])%4 != 0 {
		t.Errorf("packet length %d not padded to 4 bytes", len(sent[0]))
	}

	sent = sent[:0]
	sys.Update(50 * time.Millisecond)
	if len(sent) != 0 {
		t.Errorf("sent %d packets on an empty queue, want 0", len(sent))
	}
}

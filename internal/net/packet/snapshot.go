package packet

import (
	"github.com/breachpoint/server/internal/world"
)

// Server packet opcodes.
const (
	OpDoorState   byte = 0x10
	OpPlayerState byte = 0x11
	OpRoundInfo   byte = 0x12
	OpSound       byte = 0x13
)

// EncodeDoorState builds a door snapshot. The hinge code plus position
// and orientation are enough for a viewer to reconstruct the full door
// geometry locally.
func EncodeDoorState(d *world.Door) []byte {
	w := NewWriterWithOpcode(OpDoorState)
	w.WriteD(int32(d.ID))
	w.WriteC(d.Hinge().NetValue())
	w.WriteF32(float32(d.Pos.X))
	w.WriteF32(float32(d.Pos.Y))
	w.WriteF32(float32(d.Orientation))
	return w.Bytes()
}

// EncodePlayerState builds a player snapshot.
func EncodePlayerState(p *world.PlayerInfo) []byte {
	w := NewWriterWithOpcode(OpPlayerState)
	w.WriteD(int32(p.PlayerID))
	w.WriteS(p.TeamID)
	if p.Dead {
		w.WriteC(1)
	} else {
		w.WriteC(0)
	}
	w.WriteF32(float32(p.Ent.Pos.X))
	w.WriteF32(float32(p.Ent.Pos.Y))
	w.WriteF32(float32(p.Ent.Orientation))
	return w.Bytes()
}

// EncodeRoundInfo builds the round status line shown in the HUD.
func EncodeRoundInfo(round int, attackerScore, defenderScore int, remainingMillis int64, intermission bool) []byte {
	w := NewWriterWithOpcode(OpRoundInfo)
	w.WriteH(uint16(round))
	w.WriteH(uint16(attackerScore))
	w.WriteH(uint16(defenderScore))
	w.WriteD(int32(remainingMillis))
	if intermission {
		w.WriteC(1)
	} else {
		w.WriteC(0)
	}
	return w.Bytes()
}

// EncodeSound builds a positional sound cue.
func EncodeSound(ev world.SoundEvent) []byte {
	w := NewWriterWithOpcode(OpSound)
	w.WriteD(int32(ev.Source))
	w.WriteC(byte(ev.Type))
	w.WriteF32(float32(ev.Pos.X))
	w.WriteF32(float32(ev.Pos.Y))
	return w.Bytes()
}

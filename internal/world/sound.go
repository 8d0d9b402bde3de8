package world

import "github.com/breachpoint/server/internal/geom"

// SoundType identifies a fire-and-forget audio cue for the host layer.
type SoundType byte

const (
	SoundDoorOpen SoundType = iota
	SoundDoorOpenBlocked
	SoundDoorClose
	SoundDoorCloseBlocked
)

func (s SoundType) String() string {
	switch s {
	case SoundDoorOpen:
		return "door_open"
	case SoundDoorOpenBlocked:
		return "door_open_blocked"
	case SoundDoorClose:
		return "door_close"
	case SoundDoorCloseBlocked:
		return "door_close_blocked"
	default:
		return "unknown"
	}
}

// SoundEvent is a queued audio emission: which entity made which sound where.
type SoundEvent struct {
	Source EntityID
	Type   SoundType
	Pos    geom.Vec2
}

package world

import (
	"fmt"
	"math"
	"time"

	"github.com/breachpoint/server/internal/geom"
)

// Door geometry constants. The panel reaches handleReach units out from
// each hinge anchor; the rear anchor sits doorWidth units along the hinge
// axis; the interaction zone is a touchSize square beside the hinge.
const (
	handleReach = 64.0
	doorWidth   = 10.0
	touchSize   = 64.0

	// doorSwingSpeed is the panel's angular rate in radians per second.
	doorSwingSpeed = math.Pi
)

// DoorState is the door's open/close machine state. Exactly one holds at
// a time; mutated only by Open, Close, HandleDoor and Tick.
type DoorState byte

const (
	DoorClosed DoorState = iota
	DoorOpening
	DoorOpened
	DoorClosing
)

func (s DoorState) String() string {
	switch s {
	case DoorClosed:
		return "closed"
	case DoorOpening:
		return "opening"
	case DoorOpened:
		return "opened"
	case DoorClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// DoorHinge is the fixed edge the door rotates about. Immutable after
// construction; derived once from the door's initial facing vector.
type DoorHinge byte

const (
	HingeNorthEnd DoorHinge = iota
	HingeSouthEnd
	HingeEastEnd
	HingeWestEnd
)

// NetValue is the hinge's small-integer wire code.
func (h DoorHinge) NetValue() byte {
	return byte(h)
}

// ClosedOrientation returns the door's fully-closed facing angle.
func (h DoorHinge) ClosedOrientation() float64 {
	switch h {
	case HingeNorthEnd:
		return 3 * math.Pi / 2
	case HingeSouthEnd:
		return math.Pi / 2
	case HingeEastEnd:
		return math.Pi
	case HingeWestEnd:
		return 0
	default:
		panic(fmt.Sprintf("door hinge %d not assigned", h))
	}
}

// RearHingePos returns the rear hinge anchor: the door position offset by
// the panel width along the hinge axis.
func (h DoorHinge) RearHingePos(pos geom.Vec2) geom.Vec2 {
	switch h {
	case HingeNorthEnd, HingeSouthEnd:
		return geom.Vec2{X: pos.X + doorWidth, Y: pos.Y}
	case HingeEastEnd, HingeWestEnd:
		return geom.Vec2{X: pos.X, Y: pos.Y + doorWidth}
	default:
		panic(fmt.Sprintf("door hinge %d not assigned", h))
	}
}

// HingeFromFacing derives the hinge from the door's initial facing vector.
func HingeFromFacing(facing geom.Vec2) DoorHinge {
	switch {
	case facing.X > 0:
		return HingeEastEnd
	case facing.X < 0:
		return HingeWestEnd
	case facing.Y > 0:
		return HingeSouthEnd
	case facing.Y < 0:
		return HingeNorthEnd
	default:
		return HingeEastEnd
	}
}

// DoorEnv is the slice of the game a door consumes: collision queries
// against live players and sound emission.
type DoorEnv interface {
	DoesTouchPlayers(d *Door) bool
	EmitSound(src EntityID, s SoundType, pos geom.Vec2)
}

// Door is an interactive door entity. It swings about a fixed hinge,
// pauses while a live player obstructs the panel, and resumes once the
// obstruction clears.
type Door struct {
	Entity

	state DoorState
	hinge DoorHinge

	frontHandle  geom.Vec2
	rearHandle   geom.Vec2
	rearHingePos geom.Vec2
	touchRect    geom.Rect

	rotation  *SmoothOrientation
	target    float64
	hasTarget bool
	blocked   bool

	env DoorEnv
}

// NewDoor creates a closed door at pos whose initial facing determines
// the hinge. Doors live for the whole level and are never recreated
// between rounds.
func NewDoor(id EntityID, pos, facing geom.Vec2, env DoorEnv) *Door {
	d := &Door{
		state:     DoorClosed,
		hinge:     HingeFromFacing(facing),
		touchRect: geom.NewRect(touchSize, touchSize),
		env:       env,
	}
	d.ID = id
	d.Pos = pos
	d.Bounds = geom.NewRect(touchSize, touchSize)
	d.Bounds.CenterAround(pos)
	d.CanTakeDamage = true
	d.Touchable = true
	d.Behavior = d

	d.rotation = NewSmoothOrientation(doorSwingSpeed)
	d.rotation.SetOrientation(d.hinge.ClosedOrientation())
	d.rearHingePos = d.hinge.RearHingePos(pos)
	d.updateHandles()
	d.Orientation = d.rotation.Orientation()
	return d
}

func (d *Door) State() DoorState  { return d.state }
func (d *Door) Hinge() DoorHinge  { return d.hinge }
func (d *Door) IsBlocked() bool   { return d.blocked }
func (d *Door) IsOpened() bool    { return d.state == DoorOpened }
func (d *Door) IsOpening() bool   { return d.state == DoorOpening }
func (d *Door) IsClosed() bool    { return d.state == DoorClosed }
func (d *Door) IsClosing() bool   { return d.state == DoorClosing }
func (d *Door) Handle() geom.Vec2 { return d.frontHandle }

// updateHandles re-derives both handle points from the current facing.
// Handles are always handleReach units out from their hinge anchors;
// they are never set independently.
func (d *Door) updateHandles() {
	facing := d.rotation.Facing()
	d.frontHandle = d.Pos.MulAdd(facing, handleReach)
	d.rearHandle = d.rearHingePos.MulAdd(facing, handleReach)
}

// Tick advances the swing. Handle geometry is recomputed after the
// rotation step and before the player collision probe, since blocking
// depends on the newly swept panel.
func (d *Door) Tick(dt time.Duration) {
	current := d.rotation.Orientation()

	switch d.state {
	case DoorOpening:
		d.advance(dt, current, SoundDoorOpenBlocked, DoorOpened)
	case DoorClosing:
		d.advance(dt, current, SoundDoorCloseBlocked, DoorClosed)
	default:
		d.blocked = false
	}

	d.Orientation = d.rotation.Orientation()
}

// advance performs one swing step toward the target, freezing on
// obstruction and completing into done when the interpolator settles.
func (d *Door) advance(dt time.Duration, current float64, blockSound SoundType, done DoorState) {
	if !d.hasTarget {
		// Ambiguous interaction left no swing direction; hold still
		// until another interaction resolves it.
		return
	}

	d.rotation.SetDesiredOrientation(d.target)
	d.rotation.Update(dt)
	d.updateHandles()

	if d.env.DoesTouchPlayers(d) {
		if !d.blocked {
			d.env.EmitSound(d.ID, blockSound, d.Pos)
		}
		d.blocked = true

		// Snap back so the panel acts as a shield for the entity.
		d.rotation.SetOrientation(current)
		d.updateHandles()
	} else if !d.rotation.Moved() {
		d.state = done
		d.blocked = false
	}
}

// HandleDoor is the external interaction entry point. Opened doors close,
// closed doors open, and a door blocked mid-swing toggles its intended
// direction rather than reversing instantaneously.
func (d *Door) HandleDoor(ent *Entity) {
	switch {
	case d.IsOpened():
		d.Close(ent)
	case d.IsClosed():
		d.Open(ent)
	case d.blocked:
		if d.IsOpening() {
			d.Close(ent)
		} else {
			d.Open(ent)
		}
	case d.IsOpening() && !d.hasTarget:
		// A previous open left no swing direction; try to resolve it.
		d.Open(ent)
	}
}

// Open starts the door swinging away from the interacting entity's side.
// No-op when already opened or opening, or when ent is out of reach.
func (d *Door) Open(ent *Entity) {
	if d.state == DoorOpened || (d.state == DoorOpening && d.hasTarget) {
		return
	}
	if !d.CanBeHandledBy(ent) {
		return
	}

	resolving := d.state == DoorOpening
	d.state = DoorOpening
	if !resolving {
		d.env.EmitSound(d.ID, SoundDoorOpen, d.Pos)
	}

	// The entity's side of the hinge picks the target orientation. An
	// entity exactly on the hinge axis leaves no target: the door holds
	// still until a later interaction resolves the direction.
	entPos := ent.Center()
	handle := d.frontHandle
	d.hasTarget = false
	switch d.hinge {
	case HingeNorthEnd, HingeSouthEnd:
		if entPos.X < handle.X {
			d.setTarget(0)
		} else if entPos.X > handle.X {
			d.setTarget(math.Pi)
		}
	case HingeEastEnd, HingeWestEnd:
		if entPos.Y < handle.Y {
			d.setTarget(math.Pi / 2)
		} else if entPos.Y > handle.Y {
			d.setTarget(3 * math.Pi / 2)
		}
	}
}

// Close starts the door swinging back to its closed orientation. No-op
// when already closed or closing, or when ent is out of reach.
func (d *Door) Close(ent *Entity) {
	if d.state == DoorClosed || d.state == DoorClosing {
		return
	}
	if !d.CanBeHandledBy(ent) {
		return
	}

	d.state = DoorClosing
	d.setTarget(d.hinge.ClosedOrientation())
	d.env.EmitSound(d.ID, SoundDoorClose, d.Pos)
}

func (d *Door) setTarget(rad float64) {
	d.target = rad
	d.hasTarget = true
}

// CanBeHandledBy tests whether ent is within reach of the door handle.
// The interaction rectangle is repositioned beside the hinge on the
// entity's side; an entity exactly on the hinge axis leaves it where the
// previous interaction put it.
func (d *Door) CanBeHandledBy(ent *Entity) bool {
	entPos := ent.Center()
	hingePos := d.Pos

	switch d.hinge {
	case HingeNorthEnd:
		if entPos.X < hingePos.X {
			d.touchRect.SetLocation(hingePos.X-touchSize, hingePos.Y-touchSize)
		} else if entPos.X > hingePos.X {
			d.touchRect.SetLocation(hingePos.X, hingePos.Y-touchSize)
		}
	case HingeSouthEnd:
		if entPos.X < hingePos.X {
			d.touchRect.SetLocation(hingePos.X-touchSize, hingePos.Y)
		} else if entPos.X > hingePos.X {
			d.touchRect.SetLocation(hingePos.X, hingePos.Y)
		}
	case HingeEastEnd:
		if entPos.Y < hingePos.Y {
			d.touchRect.SetLocation(hingePos.X-touchSize, hingePos.Y-touchSize)
		} else if entPos.Y > hingePos.Y {
			d.touchRect.SetLocation(hingePos.X-touchSize, hingePos.Y)
		}
	case HingeWestEnd:
		if entPos.Y < hingePos.Y {
			d.touchRect.SetLocation(hingePos.X, hingePos.Y-touchSize)
		} else if entPos.Y > hingePos.Y {
			d.touchRect.SetLocation(hingePos.X, hingePos.Y)
		}
	}

	return d.touchRect.Intersects(ent.Bounds)
}

// IsTouching models the swept panel as two segments, hinge to handle,
// and tests them against the given bounds.
func (d *Door) IsTouching(bounds geom.Rect) bool {
	return geom.SegmentIntersectsRect(d.Pos, d.frontHandle, bounds) ||
		geom.SegmentIntersectsRect(d.rearHingePos, d.rearHandle, bounds)
}

// OnDamage is intentionally empty: doors accept damage and ignore it.
func (d *Door) OnDamage(from EntityID, amount int) {}

package world

import (
	"time"

	"github.com/breachpoint/server/internal/geom"
)

// EntityID uniquely identifies a simulated object for the match lifetime.
type EntityID int32

// Behavior is the kind-specific component of a simulated object. Doors,
// pickups and other interactive objects each supply one implementation;
// the base Entity stays a plain struct instead of an inheritance root.
type Behavior interface {
	// Tick advances the object's own simulation by dt.
	Tick(dt time.Duration)
	// OnDamage is invoked when the object is hit. Implementations may
	// ignore it entirely (doors do).
	OnDamage(from EntityID, amount int)
}

// Entity is the shared physical core of every simulated object: identity,
// placement, collision bounds and capability flags.
type Entity struct {
	ID          EntityID
	Pos         geom.Vec2
	Orientation float64 // radians
	Bounds      geom.Rect

	// CanTakeDamage gates OnDamage delivery.
	CanTakeDamage bool
	// Touchable marks the entity as participating in touch resolution
	// against other entities.
	Touchable bool

	Behavior Behavior
}

// Facing returns the unit direction of the entity's current orientation.
func (e *Entity) Facing() geom.Vec2 {
	return geom.FacingOf(e.Orientation)
}

// Center returns the center of the entity's collision bounds.
func (e *Entity) Center() geom.Vec2 {
	return e.Bounds.Center()
}

// Damage routes a hit through the capability flag to the behavior.
func (e *Entity) Damage(from EntityID, amount int) {
	if e.CanTakeDamage && e.Behavior != nil {
		e.Behavior.OnDamage(from, amount)
	}
}

package world

import (
	"math"
	"time"

	"github.com/breachpoint/server/internal/geom"
)

const twoPi = 2 * math.Pi

// SmoothOrientation eases a facing angle toward a desired angle at a
// bounded angular rate, always taking the shorter rotational direction.
type SmoothOrientation struct {
	orientation float64
	desired     float64
	speed       float64 // radians per second
	moved       bool
}

func NewSmoothOrientation(speed float64) *SmoothOrientation {
	return &SmoothOrientation{speed: speed}
}

// Update advances the current angle toward the desired angle by at most
// speed*dt radians. Pure numeric update, no failure modes.
func (o *SmoothOrientation) Update(dt time.Duration) {
	diff := normalizeAngle(o.desired - o.orientation)
	if diff > math.Pi {
		diff -= twoPi // rotate the short way around
	}
	if diff == 0 {
		o.moved = false
		return
	}

	step := o.speed * dt.Seconds()
	if math.Abs(diff) <= step {
		o.orientation = o.desired
	} else if diff > 0 {
		o.orientation = normalizeAngle(o.orientation + step)
	} else {
		o.orientation = normalizeAngle(o.orientation - step)
	}
	o.moved = true
}

// Moved reports whether the last Update changed the angle.
func (o *SmoothOrientation) Moved() bool {
	return o.moved
}

func (o *SmoothOrientation) Orientation() float64 {
	return o.orientation
}

// SetOrientation overrides the current angle directly. Used to freeze
// motion when a door is blocked mid-swing.
func (o *SmoothOrientation) SetOrientation(rad float64) {
	o.orientation = normalizeAngle(rad)
}

func (o *SmoothOrientation) DesiredOrientation() float64 {
	return o.desired
}

func (o *SmoothOrientation) SetDesiredOrientation(rad float64) {
	o.desired = normalizeAngle(rad)
}

// Facing returns the unit direction of the current angle.
func (o *SmoothOrientation) Facing() geom.Vec2 {
	return geom.FacingOf(o.orientation)
}

// normalizeAngle maps any angle into [0, 2π).
func normalizeAngle(rad float64) float64 {
	rad = math.Mod(rad, twoPi)
	if rad < 0 {
		rad += twoPi
	}
	return rad
}

package geom

import "math"

// Vec2 is a 2D point or direction in world units.
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// MulAdd returns v + dir*scale. Used to place points at a fixed radial
// distance along a facing direction.
func (v Vec2) MulAdd(dir Vec2, scale float64) Vec2 {
	return Vec2{v.X + dir.X*scale, v.Y + dir.Y*scale}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// facingEpsilon absorbs the rounding error of math.Sin/Cos at multiples
// of π/2, so cardinal orientations yield exact axis-aligned directions.
const facingEpsilon = 1e-12

// FacingOf returns the unit direction for an orientation in radians.
// The four cardinal orientations produce exact components: points placed
// along a cardinal facing stay exactly on that axis, which side-of-axis
// comparisons rely on.
func FacingOf(orientation float64) Vec2 {
	x := math.Cos(orientation)
	y := math.Sin(orientation)
	if math.Abs(x) < facingEpsilon {
		x = 0
	}
	if math.Abs(y) < facingEpsilon {
		y = 0
	}
	return Vec2{x, y}
}

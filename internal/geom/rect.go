package geom

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func NewRect(w, h float64) Rect {
	return Rect{W: w, H: h}
}

// SetLocation moves the rectangle's top-left corner.
func (r *Rect) SetLocation(x, y float64) {
	r.X = x
	r.Y = y
}

// CenterAround positions the rectangle so its center sits on p.
func (r *Rect) CenterAround(p Vec2) {
	r.X = p.X - r.W/2
	r.Y = p.Y - r.H/2
}

func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

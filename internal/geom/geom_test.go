package geom

import (
	"math"
	"testing"
)

func TestFacingOf_CardinalsAreExact(t *testing.T) {
	cases := []struct {
		rad  float64
		want Vec2
	}{
		{0, Vec2{1, 0}},
		{math.Pi / 2, Vec2{0, 1}},
		{math.Pi, Vec2{-1, 0}},
		{3 * math.Pi / 2, Vec2{0, -1}},
	}
	for _, c := range cases {
		if got := FacingOf(c.rad); got != c.want {
			t.Errorf("FacingOf(%v) = %+v, want exactly %+v", c.rad, got, c.want)
		}
	}
	// A point placed along a cardinal facing stays exactly on the axis.
	h := Vec2{100, 100}.MulAdd(FacingOf(math.Pi), 64)
	if h != (Vec2{36, 100}) {
		t.Errorf("handle = %+v, want exactly {36 100}", h)
	}
}

func TestMulAdd_PlacesPointAtDistance(t *testing.T) {
	p := Vec2{10, 20}
	got := p.MulAdd(Vec2{0, 1}, 64)
	if got.X != 10 || got.Y != 84 {
		t.Errorf("MulAdd = %+v, want {10 84}", got)
	}
}

func TestRect_CenterAround(t *testing.T) {
	r := NewRect(64, 64)
	r.CenterAround(Vec2{100, 100})
	if r.X != 68 || r.Y != 68 {
		t.Errorf("top-left = (%v, %v), want (68, 68)", r.X, r.Y)
	}
	c := r.Center()
	if c.X != 100 || c.Y != 100 {
		t.Errorf("center = %+v, want {100 100}", c)
	}
}

func TestRect_Intersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: 5, W: 10, H: 10}
	c := Rect{X: 20, Y: 20, W: 10, H: 10}
	if !a.Intersects(b) {
		t.Error("overlapping rects should intersect")
	}
	if a.Intersects(c) {
		t.Error("disjoint rects should not intersect")
	}
}

func TestRect_Intersects_EdgeTouchIsOpen(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 10, Y: 0, W: 10, H: 10}
	if a.Intersects(b) {
		t.Error("rects sharing only an edge should not intersect")
	}
}

func TestSegmentIntersectsRect_Crossing(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 10, H: 10}
	if !SegmentIntersectsRect(Vec2{0, 15}, Vec2{30, 15}, r) {
		t.Error("segment through the rect should intersect")
	}
}

func TestSegmentIntersectsRect_EndpointInside(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 10, H: 10}
	if !SegmentIntersectsRect(Vec2{15, 15}, Vec2{100, 100}, r) {
		t.Error("segment starting inside the rect should intersect")
	}
}

func TestSegmentIntersectsRect_Miss(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 10, H: 10}
	if SegmentIntersectsRect(Vec2{0, 0}, Vec2{30, 5}, r) {
		t.Error("segment passing above the rect should not intersect")
	}
}

func TestSegmentIntersectsRect_GrazesCorner(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 10, H: 10}
	// Diagonal through the top-left corner point.
	if !SegmentIntersectsRect(Vec2{0, 20}, Vec2{20, 0}, r) {
		t.Error("segment through a corner should count as touching")
	}
}

func TestSegmentsCross_CollinearOverlap(t *testing.T) {
	if !segmentsCross(Vec2{0, 0}, Vec2{10, 0}, Vec2{5, 0}, Vec2{15, 0}) {
		t.Error("collinear overlapping segments should cross")
	}
	if segmentsCross(Vec2{0, 0}, Vec2{10, 0}, Vec2{11, 0}, Vec2{20, 0}) {
		t.Error("collinear disjoint segments should not cross")
	}
}

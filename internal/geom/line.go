package geom

// SegmentIntersectsRect reports whether the segment a-b touches the
// rectangle. Either endpoint inside counts as touching; otherwise the
// segment must cross one of the four edges.
func SegmentIntersectsRect(a, b Vec2, r Rect) bool {
	if r.Contains(a) || r.Contains(b) {
		return true
	}

	tl := Vec2{r.X, r.Y}
	tr := Vec2{r.X + r.W, r.Y}
	bl := Vec2{r.X, r.Y + r.H}
	br := Vec2{r.X + r.W, r.Y + r.H}

	return segmentsCross(a, b, tl, tr) ||
		segmentsCross(a, b, tr, br) ||
		segmentsCross(a, b, br, bl) ||
		segmentsCross(a, b, bl, tl)
}

// segmentsCross reports whether segments p1-p2 and p3-p4 intersect,
// including collinear overlap at endpoints.
func segmentsCross(p1, p2, p3, p4 Vec2) bool {
	d1 := cross(p3, p4, p1)
	d2 := cross(p3, p4, p2)
	d3 := cross(p1, p2, p3)
	d4 := cross(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(p3, p4, p1):
		return true
	case d2 == 0 && onSegment(p3, p4, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, p3):
		return true
	case d4 == 0 && onSegment(p1, p2, p4):
		return true
	}
	return false
}

// cross returns the z-component of (b-a) x (p-a).
func cross(a, b, p Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// onSegment assumes p is collinear with a-b and checks it lies between them.
func onSegment(a, b, p Vec2) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}

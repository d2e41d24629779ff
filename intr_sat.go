package geom

// Intersection tests between boxes and triangles based on the separating axis
// theorem: two convex polytopes are disjoint if and only if their projections
// onto one of finitely many candidate axes are disjoint. The candidates are
// the face normals of both shapes and, in 3D, the cross products of their
// edge directions. All tests treat the shapes as closed, so touching shapes
// intersect.

// TestAlignedBoxAlignedBox reports whether two axis-aligned boxes intersect.
func TestAlignedBoxAlignedBox[T Real, V Vector[T, V]](a, b AlignedBox[T, V]) TestResult {
	for i := range a.Min.Dim() {
		if a.Max.Comp(i) < b.Min.Comp(i) || b.Max.Comp(i) < a.Min.Comp(i) {
			return TestResult{false}
		}
	}
	return TestResult{true}
}

// FindAlignedBoxAlignedBox returns the intersection of two axis-aligned boxes,
// which is itself an axis-aligned box, possibly with zero extent along some
// axes.
func FindAlignedBoxAlignedBox[T Real, V Vector[T, V]](a, b AlignedBox[T, V]) AlignedBoxIntersection[T, V] {
	if !TestAlignedBoxAlignedBox(a, b).Intersect {
		return AlignedBoxIntersection[T, V]{}
	}
	return AlignedBoxIntersection[T, V]{
		Intersect: true,
		Box:       AlignedBox[T, V]{Min: MaxVec(a.Min, b.Min), Max: MinVec(a.Max, b.Max)},
	}
}

// TestOrientedBox2OrientedBox2 reports whether two oriented rectangles
// intersect. The candidate axes are the four box axes.
func TestOrientedBox2OrientedBox2[T Real](a, b OrientedBox2[T]) TestResult {
	d := b.Center.Sub(a.Center)
	for _, l := range [4]Vec2[T]{a.Axis[0], a.Axis[1], b.Axis[0], b.Axis[1]} {
		if abs(d.Dot(l)) > a.projectionRadius(l)+b.projectionRadius(l) {
			return TestResult{false}
		}
	}
	return TestResult{true}
}

// boxAxes3 returns the 15 candidate separating axes of two oriented boxes:
// the axes of a, the axes of b and their pairwise cross products. Cross
// products of nearly parallel axes are omitted; the face axes already
// separate such boxes if anything does.
func boxAxes3[T Real](a, b OrientedBox3[T], tol Tolerance[T]) []Vec3[T] {
	axes := make([]Vec3[T], 0, 15)
	axes = append(axes, a.Axis[:]...)
	axes = append(axes, b.Axis[:]...)
	for _, u := range a.Axis {
		for _, v := range b.Axis {
			l := u.Cross(v)
			if tol.Negligible(l.Hypot2(), u.Hypot2()*v.Hypot2()) {
				continue
			}
			axes = append(axes, l)
		}
	}
	return axes
}

// TestOrientedBox3OrientedBox3 reports whether two oriented boxes intersect.
func TestOrientedBox3OrientedBox3[T Real](a, b OrientedBox3[T], tol Tolerance[T]) TestResult {
	d := b.Center.Sub(a.Center)
	for _, l := range boxAxes3(a, b, tol) {
		if abs(d.Dot(l)) > a.projectionRadius(l)+b.projectionRadius(l) {
			return TestResult{false}
		}
	}
	return TestResult{true}
}

// TestAlignedBox3OrientedBox3 reports whether an axis-aligned box and an
// oriented box intersect.
func TestAlignedBox3OrientedBox3[T Real](a AlignedBox3[T], b OrientedBox3[T], tol Tolerance[T]) TestResult {
	return TestOrientedBox3OrientedBox3(OrientedFromAligned(a), b, tol)
}

// TestTriangle3OrientedBox3 reports whether a triangle and an oriented box
// intersect. The candidate axes are the triangle's normal, the box axes, and
// the cross products of the triangle's edges with the box axes.
func TestTriangle3OrientedBox3[T Real](tri Triangle3[T], b OrientedBox3[T], tol Tolerance[T]) TestResult {
	v := [3]Vec3[T]{
		tri.V[0].Sub(b.Center),
		tri.V[1].Sub(b.Center),
		tri.V[2].Sub(b.Center),
	}
	separates := func(l Vec3[T]) bool {
		p0, p1, p2 := v[0].Dot(l), v[1].Dot(l), v[2].Dot(l)
		r := b.projectionRadius(l)
		return min(p0, p1, p2) > r || max(p0, p1, p2) < -r
	}

	for _, l := range b.Axis {
		if separates(l) {
			return TestResult{false}
		}
	}
	edges := [3]Vec3[T]{v[1].Sub(v[0]), v[2].Sub(v[1]), v[0].Sub(v[2])}
	if n := edges[0].Cross(edges[1]); !tol.Negligible(n.Hypot2(), edges[0].Hypot2()*edges[1].Hypot2()) {
		if separates(n) {
			return TestResult{false}
		}
	}
	for _, e := range edges {
		for _, u := range b.Axis {
			l := e.Cross(u)
			if tol.Negligible(l.Hypot2(), e.Hypot2()) {
				continue
			}
			if separates(l) {
				return TestResult{false}
			}
		}
	}
	return TestResult{true}
}

// TestTriangle2Triangle2 reports whether two triangles in the plane intersect.
// The candidate axes are the six edge normals. The vertex order of either
// triangle doesn't matter.
//
// Degenerate triangles act as the segment or point they collapse to. Their
// edge normals coincide or vanish, so the edge directions and the offset
// between the triangles are tried as axes, too.
func TestTriangle2Triangle2[T Real](t0, t1 Triangle2[T]) TestResult {
	project := func(t Triangle2[T], l Vec2[T]) (T, T) {
		p0, p1, p2 := t.V[0].Dot(l), t.V[1].Dot(l), t.V[2].Dot(l)
		return min(p0, p1, p2), max(p0, p1, p2)
	}
	separates := func(l Vec2[T]) bool {
		min0, max0 := project(t0, l)
		min1, max1 := project(t1, l)
		return max0 < min1 || max1 < min0
	}
	degenerate := SignedArea(t0) == 0 || SignedArea(t1) == 0
	for _, t := range [2]Triangle2[T]{t0, t1} {
		for _, e := range t.Edges() {
			d := e.P1.Sub(e.P0)
			if separates(d.Perp()) || (degenerate && separates(d)) {
				return TestResult{false}
			}
		}
	}
	if degenerate && separates(t1.V[0].Sub(t0.V[0])) {
		return TestResult{false}
	}
	return TestResult{true}
}

// sweptInterval narrows [t0, t1] to the times t at which lo ≤ s + t·ds ≤ hi.
// It reports false if the result is empty.
func sweptInterval[T Real](t0, t1 *T, s, ds, lo, hi T) bool {
	if ds == 0 {
		return s >= lo && s <= hi
	}
	ta, tb := (lo-s)/ds, (hi-s)/ds
	if ta > tb {
		ta, tb = tb, ta
	}
	*t0 = max(*t0, ta)
	*t1 = min(*t1, tb)
	return *t0 <= *t1
}

// sweptResult converts the time interval during which two moving shapes
// overlap into a result for the time window [0, tmax].
func sweptResult[T Real](t0, t1, tmax T) SweptResult[T] {
	if t1 < 0 || t0 > tmax || t0 > t1 {
		return SweptResult[T]{}
	}
	r := SweptResult[T]{Intersect: true, ContactTime: max(t0, 0)}
	for _, t := range [2]T{t0, t1} {
		if t >= 0 && t <= tmax {
			r.NumIntersections++
		}
	}
	return r
}

// TestMovingAlignedBoxes reports whether two axis-aligned boxes, moving with
// constant velocities va and vb, intersect at some time in [0, tmax], and
// when they first touch.
func TestMovingAlignedBoxes[T Real, V Vector[T, V]](a AlignedBox[T, V], va V, b AlignedBox[T, V], vb V, tmax T) SweptResult[T] {
	v := vb.Sub(va)
	t0, t1 := inf[T](-1), inf[T](1)
	for i := range v.Dim() {
		// b overlaps a along axis i while a.Min ≤ b.Max + t·v and b.Min + t·v ≤ a.Max,
		// that is, while b.Min − a.Max + t·v ∈ [−(|a|+|b|), 0].
		s := b.Min.Comp(i) - a.Max.Comp(i)
		width := (a.Max.Comp(i) - a.Min.Comp(i)) + (b.Max.Comp(i) - b.Min.Comp(i))
		if !sweptInterval(&t0, &t1, s, v.Comp(i), -width, 0) {
			return SweptResult[T]{}
		}
	}
	return sweptResult(t0, t1, tmax)
}

// TestMovingOrientedBoxes3 reports whether two oriented boxes, translating with
// constant velocities va and vb, intersect at some time in [0, tmax], and
// when they first touch. The boxes don't rotate, so the candidate separating
// axes are fixed and the boxes overlap exactly when their projections overlap
// on all of them.
func TestMovingOrientedBoxes3[T Real](a OrientedBox3[T], va Vec3[T], b OrientedBox3[T], vb Vec3[T], tmax T, tol Tolerance[T]) SweptResult[T] {
	d := b.Center.Sub(a.Center)
	v := vb.Sub(va)
	t0, t1 := inf[T](-1), inf[T](1)
	for _, l := range boxAxes3(a, b, tol) {
		r := a.projectionRadius(l) + b.projectionRadius(l)
		if !sweptInterval(&t0, &t1, d.Dot(l), v.Dot(l), -r, r) {
			return SweptResult[T]{}
		}
	}
	return sweptResult(t0, t1, tmax)
}

package geom

// Intersections of lines, rays and segments with solid shapes. Each query
// computes the parameter interval over which the underlying line lies inside
// the shape and clips it to the component's own parameter interval.

// clipInterval returns the intersection for the parameter interval [t0, t1]
// of l's line. Points at infinite parameters are left as zero vectors.
func clipInterval[T Real, V Vector[T, V]](l linear[T, V], t0, t1 T) LinearIntersection[T, V] {
	t0 = max(t0, l.lo)
	t1 = min(t1, l.hi)
	if !(t0 <= t1) {
		return LinearIntersection[T, V]{}
	}
	r := LinearIntersection[T, V]{
		Intersect:        true,
		NumIntersections: 2,
		Parameter:        [2]T{t0, t1},
	}
	if t0 == t1 {
		r.NumIntersections = 1
	}
	for i, t := range r.Parameter {
		if !isInf(t) {
			r.Point[i] = l.eval(t)
		}
	}
	return r
}

// clipWhole returns the whole parameter interval of l, for components that
// lie inside the other shape. A component without direction is the single
// point at its origin.
func clipWhole[T Real, V Vector[T, V]](l linear[T, V]) LinearIntersection[T, V] {
	if l.direction.Hypot2() == 0 {
		t := clamp(0, l.lo, l.hi)
		return clipInterval(l, t, t)
	}
	return clipInterval(l, inf[T](-1), inf[T](1))
}

// relocate recomputes the points of r, found for a copy of l expressed in
// another frame, on l itself.
func relocate[T Real, V Vector[T, V]](r LinearIntersection[T, V], l linear[T, V]) LinearIntersection[T, V] {
	if !r.Intersect {
		return r
	}
	for i, t := range r.Parameter {
		if !isInf(t) {
			r.Point[i] = l.eval(t)
		}
	}
	return r
}

// findLinearTriangle3 returns the parameter at which l crosses the triangle.
// Components parallel to the triangle's plane are reported as not crossing it,
// even when they lie in the plane.
func findLinearTriangle3[T Real](l linear[T, Vec3[T]], tri Triangle3[T], tol Tolerance[T]) (T, bool) {
	n := Normal(tri)
	denom := n.Dot(l.direction)
	if denom == 0 || tol.Negligible(denom*denom, n.Hypot2()*l.direction.Hypot2()) {
		return 0, false
	}
	t := n.Dot(tri.V[0].Sub(l.origin)) / denom
	if t < l.lo || t > l.hi {
		return 0, false
	}
	u, v, ok := tri.Barycentric(l.eval(t), tol)
	if !ok || u < 0 || v < 0 || u+v > 1 {
		return 0, false
	}
	return t, true
}

func findLinearRectangle3[T Real](l linear[T, Vec3[T]], rect Rectangle3[T], tol Tolerance[T]) (T, bool) {
	n := rect.Normal()
	denom := n.Dot(l.direction)
	if denom == 0 || tol.Negligible(denom*denom, l.direction.Hypot2()) {
		return 0, false
	}
	t := n.Dot(rect.Center.Sub(l.origin)) / denom
	if t < l.lo || t > l.hi {
		return 0, false
	}
	p := rect.ToLocal(l.eval(t))
	if abs(p.X) > rect.Extent.X || abs(p.Y) > rect.Extent.Y {
		return 0, false
	}
	return t, true
}

func findLinearFace[T Real](l linear[T, Vec3[T]], t T, ok bool) LinearIntersection[T, Vec3[T]] {
	if !ok {
		return LinearIntersection[T, Vec3[T]]{}
	}
	return clipInterval(l, t, t)
}

// FindLine3Triangle3 returns the point where the line crosses the triangle. A
// line parallel to the triangle doesn't intersect it, even if it lies in the
// triangle's plane.
func FindLine3Triangle3[T Real](l Line3[T], tri Triangle3[T], tol Tolerance[T]) LinearIntersection[T, Vec3[T]] {
	t, ok := findLinearTriangle3(l.linear(), tri, tol)
	return findLinearFace(l.linear(), t, ok)
}

func FindRay3Triangle3[T Real](r Ray3[T], tri Triangle3[T], tol Tolerance[T]) LinearIntersection[T, Vec3[T]] {
	t, ok := findLinearTriangle3(r.linear(), tri, tol)
	return findLinearFace(r.linear(), t, ok)
}

func FindSegment3Triangle3[T Real](s Segment3[T], tri Triangle3[T], tol Tolerance[T]) LinearIntersection[T, Vec3[T]] {
	t, ok := findLinearTriangle3(s.linear(), tri, tol)
	return findLinearFace(s.linear(), t, ok)
}

// FindLine3Rectangle3 returns the point where the line crosses the rectangle.
func FindLine3Rectangle3[T Real](l Line3[T], rect Rectangle3[T], tol Tolerance[T]) LinearIntersection[T, Vec3[T]] {
	t, ok := findLinearRectangle3(l.linear(), rect, tol)
	return findLinearFace(l.linear(), t, ok)
}

func FindSegment3Rectangle3[T Real](s Segment3[T], rect Rectangle3[T], tol Tolerance[T]) LinearIntersection[T, Vec3[T]] {
	t, ok := findLinearRectangle3(s.linear(), rect, tol)
	return findLinearFace(s.linear(), t, ok)
}

func findLinearPlane3[T Real](l linear[T, Vec3[T]], p Plane3[T], tol Tolerance[T]) LinearIntersection[T, Vec3[T]] {
	denom := p.Normal.Dot(l.direction)
	dist := p.SignedDistance(l.origin)
	if denom == 0 || tol.Negligible(denom*denom, l.direction.Hypot2()) {
		if dist == 0 || tol.Negligible(dist, max(abs(p.Constant), l.origin.Hypot())) {
			return clipWhole(l)
		}
		return LinearIntersection[T, Vec3[T]]{}
	}
	t := -dist / denom
	return clipInterval(l, t, t)
}

// FindLine3Plane3 returns the point where the line crosses the plane. A line
// lying in the plane intersects it along its whole length.
func FindLine3Plane3[T Real](l Line3[T], p Plane3[T], tol Tolerance[T]) LinearIntersection[T, Vec3[T]] {
	return findLinearPlane3(l.linear(), p, tol)
}

func FindRay3Plane3[T Real](r Ray3[T], p Plane3[T], tol Tolerance[T]) LinearIntersection[T, Vec3[T]] {
	return findLinearPlane3(r.linear(), p, tol)
}

func FindSegment3Plane3[T Real](s Segment3[T], p Plane3[T], tol Tolerance[T]) LinearIntersection[T, Vec3[T]] {
	return findLinearPlane3(s.linear(), p, tol)
}

func findLinearHypersphere[T Real, V Vector[T, V]](l linear[T, V], s Hypersphere[T, V]) LinearIntersection[T, V] {
	q := l.origin.Sub(s.Center)
	a := l.direction.Hypot2()
	c := q.Hypot2() - s.Radius*s.Radius
	if a == 0 {
		if c <= 0 {
			return clipWhole(l)
		}
		return LinearIntersection[T, V]{}
	}
	roots, n := SolveQuadratic(c, 2*l.direction.Dot(q), a)
	switch n {
	case 2:
		return clipInterval(l, roots[0], roots[1])
	case 1:
		return clipInterval(l, roots[0], roots[0])
	default:
		return LinearIntersection[T, V]{}
	}
}

// FindLineHypersphere returns the chord of the ball cut out by the line.
func FindLineHypersphere[T Real, V Vector[T, V]](l Line[T, V], s Hypersphere[T, V]) LinearIntersection[T, V] {
	return findLinearHypersphere(l.linear(), s)
}

// FindRayHypersphere returns the part of the ray inside the ball. A ray
// starting inside the ball intersects it from parameter 0.
func FindRayHypersphere[T Real, V Vector[T, V]](r Ray[T, V], s Hypersphere[T, V]) LinearIntersection[T, V] {
	return findLinearHypersphere(r.linear(), s)
}

func FindSegmentHypersphere[T Real, V Vector[T, V]](seg Segment[T, V], s Hypersphere[T, V]) LinearIntersection[T, V] {
	return findLinearHypersphere(seg.linear(), s)
}

func TestLineHypersphere[T Real, V Vector[T, V]](l Line[T, V], s Hypersphere[T, V]) TestResult {
	return TestResult{DistPointLine(s.Center, l).SqrDistance <= s.Radius*s.Radius}
}

func TestRayHypersphere[T Real, V Vector[T, V]](r Ray[T, V], s Hypersphere[T, V]) TestResult {
	return TestResult{DistPointRay(s.Center, r).SqrDistance <= s.Radius*s.Radius}
}

func TestSegmentHypersphere[T Real, V Vector[T, V]](seg Segment[T, V], s Hypersphere[T, V]) TestResult {
	return TestResult{DistPointSegment(s.Center, seg).SqrDistance <= s.Radius*s.Radius}
}

// slabs clips the parameter interval of l against the box, one pair of
// parallel faces at a time.
func slabs[T Real, V Vector[T, V]](l linear[T, V], b AlignedBox[T, V]) LinearIntersection[T, V] {
	t0, t1 := inf[T](-1), inf[T](1)
	for i := range l.origin.Dim() {
		o, d := l.origin.Comp(i), l.direction.Comp(i)
		lo, hi := b.Min.Comp(i), b.Max.Comp(i)
		if d == 0 {
			if o < lo || o > hi {
				return LinearIntersection[T, V]{}
			}
			continue
		}
		ta, tb := (lo-o)/d, (hi-o)/d
		if ta > tb {
			ta, tb = tb, ta
		}
		t0 = max(t0, ta)
		t1 = min(t1, tb)
		if t0 > t1 {
			return LinearIntersection[T, V]{}
		}
	}
	if isInf(t0) && isInf(t1) {
		return clipWhole(l)
	}
	return clipInterval(l, t0, t1)
}

// FindLineAlignedBox returns the part of the line inside the box.
func FindLineAlignedBox[T Real, V Vector[T, V]](l Line[T, V], b AlignedBox[T, V]) LinearIntersection[T, V] {
	return slabs(l.linear(), b)
}

func FindRayAlignedBox[T Real, V Vector[T, V]](r Ray[T, V], b AlignedBox[T, V]) LinearIntersection[T, V] {
	return slabs(r.linear(), b)
}

func FindSegmentAlignedBox[T Real, V Vector[T, V]](s Segment[T, V], b AlignedBox[T, V]) LinearIntersection[T, V] {
	return slabs(s.linear(), b)
}

func findLinearOrientedBox3[T Real](l linear[T, Vec3[T]], b OrientedBox3[T]) LinearIntersection[T, Vec3[T]] {
	local := linear[T, Vec3[T]]{
		origin: b.ToLocal(l.origin),
		direction: Vec3[T]{
			l.direction.Dot(b.Axis[0]),
			l.direction.Dot(b.Axis[1]),
			l.direction.Dot(b.Axis[2]),
		},
		lo: l.lo,
		hi: l.hi,
	}
	return relocate(slabs(local, AlignedBox3[T]{Min: b.Extent.Negate(), Max: b.Extent}), l)
}

// FindLine3OrientedBox3 returns the part of the line inside the box.
func FindLine3OrientedBox3[T Real](l Line3[T], b OrientedBox3[T]) LinearIntersection[T, Vec3[T]] {
	return findLinearOrientedBox3(l.linear(), b)
}

func FindRay3OrientedBox3[T Real](r Ray3[T], b OrientedBox3[T]) LinearIntersection[T, Vec3[T]] {
	return findLinearOrientedBox3(r.linear(), b)
}

func FindSegment3OrientedBox3[T Real](s Segment3[T], b OrientedBox3[T]) LinearIntersection[T, Vec3[T]] {
	return findLinearOrientedBox3(s.linear(), b)
}

func findLinearEllipsoid3[T Real](l linear[T, Vec3[T]], e Ellipsoid3[T]) LinearIntersection[T, Vec3[T]] {
	// In the frame of the ellipsoid scaled by its extents, the ellipsoid is the
	// unit ball and parameters are preserved.
	o := e.ToLocal(l.origin)
	local := linear[T, Vec3[T]]{
		origin: Vec3[T]{o.X / e.Extent.X, o.Y / e.Extent.Y, o.Z / e.Extent.Z},
		direction: Vec3[T]{
			l.direction.Dot(e.Axis[0]) / e.Extent.X,
			l.direction.Dot(e.Axis[1]) / e.Extent.Y,
			l.direction.Dot(e.Axis[2]) / e.Extent.Z,
		},
		lo: l.lo,
		hi: l.hi,
	}
	return relocate(findLinearHypersphere(local, Sphere3[T]{Radius: 1}), l)
}

// FindLine3Ellipsoid3 returns the part of the line inside the ellipsoid.
func FindLine3Ellipsoid3[T Real](l Line3[T], e Ellipsoid3[T]) LinearIntersection[T, Vec3[T]] {
	return findLinearEllipsoid3(l.linear(), e)
}

func FindRay3Ellipsoid3[T Real](r Ray3[T], e Ellipsoid3[T]) LinearIntersection[T, Vec3[T]] {
	return findLinearEllipsoid3(r.linear(), e)
}

func FindSegment3Ellipsoid3[T Real](s Segment3[T], e Ellipsoid3[T]) LinearIntersection[T, Vec3[T]] {
	return findLinearEllipsoid3(s.linear(), e)
}

func findLinearCylinder3[T Real](l linear[T, Vec3[T]], c Cylinder3[T], tol Tolerance[T]) LinearIntersection[T, Vec3[T]] {
	u := c.Axis.Direction
	q := l.origin.Sub(c.Axis.Origin)
	hq, hd := q.Dot(u), l.direction.Dot(u)
	rq := q.Sub(u.Mul(hq))
	rd := l.direction.Sub(u.Mul(hd))

	// Radial constraint: |rq + t·rd| ≤ Radius.
	t0, t1 := inf[T](-1), inf[T](1)
	a := rd.Hypot2()
	cc := rq.Hypot2() - c.Radius*c.Radius
	if a == 0 || tol.Negligible(a, l.direction.Hypot2()) {
		if cc > 0 {
			return LinearIntersection[T, Vec3[T]]{}
		}
	} else {
		roots, n := SolveQuadratic(cc, 2*rq.Dot(rd), a)
		switch n {
		case 2:
			t0, t1 = roots[0], roots[1]
		case 1:
			t0, t1 = roots[0], roots[0]
		default:
			return LinearIntersection[T, Vec3[T]]{}
		}
	}

	// Axial constraint: |hq + t·hd| ≤ Height/2.
	if !isInf(c.Height) {
		half := c.Height / 2
		if hd == 0 {
			if abs(hq) > half {
				return LinearIntersection[T, Vec3[T]]{}
			}
		} else {
			ta, tb := (-half-hq)/hd, (half-hq)/hd
			if ta > tb {
				ta, tb = tb, ta
			}
			t0, t1 = max(t0, ta), min(t1, tb)
		}
	}
	return clipInterval(l, t0, t1)
}

// FindLine3Cylinder3 returns the part of the line inside the cylinder.
func FindLine3Cylinder3[T Real](l Line3[T], c Cylinder3[T], tol Tolerance[T]) LinearIntersection[T, Vec3[T]] {
	return findLinearCylinder3(l.linear(), c, tol)
}

func FindRay3Cylinder3[T Real](r Ray3[T], c Cylinder3[T], tol Tolerance[T]) LinearIntersection[T, Vec3[T]] {
	return findLinearCylinder3(r.linear(), c, tol)
}

func FindSegment3Cylinder3[T Real](s Segment3[T], c Cylinder3[T], tol Tolerance[T]) LinearIntersection[T, Vec3[T]] {
	return findLinearCylinder3(s.linear(), c, tol)
}

package geom

// project returns the parameter of the point on l closest to pt, clamped to
// l's parameter interval. A degenerate direction yields the parameter closest
// to 0.
func (l linear[T, V]) project(pt V) T {
	dd := l.direction.Hypot2()
	if dd == 0 {
		return clamp(0, l.lo, l.hi)
	}
	return clamp(l.direction.Dot(pt.Sub(l.origin))/dd, l.lo, l.hi)
}

func distPointLinear[T Real, V Vector[T, V]](pt V, l linear[T, V]) DistanceResult[T, V] {
	t := l.project(pt)
	r := newDistanceResult(pt, l.eval(t))
	r.Parameter[1] = t
	return r
}

// DistPointLine returns the distance from pt to the line.
func DistPointLine[T Real, V Vector[T, V]](pt V, l Line[T, V]) DistanceResult[T, V] {
	return distPointLinear(pt, l.linear())
}

// DistPointRay returns the distance from pt to the ray.
func DistPointRay[T Real, V Vector[T, V]](pt V, r Ray[T, V]) DistanceResult[T, V] {
	return distPointLinear(pt, r.linear())
}

// DistPointSegment returns the distance from pt to the segment. A zero-length
// segment behaves like the point P0.
func DistPointSegment[T Real, V Vector[T, V]](pt V, s Segment[T, V]) DistanceResult[T, V] {
	return distPointLinear(pt, s.linear())
}

// distLinearLinear minimizes |l0(s) − l1(t)|² jointly over the parameter
// intervals of both linear components.
//
// The squared distance is a convex quadratic in (s, t). If its unconstrained
// minimum lies inside the parameter domain, that's the answer. Otherwise the
// minimum is on the domain's boundary, where one parameter is fixed at a
// finite bound and the other is the clamped projection onto its component.
// Near-parallel components are detected relative to the lengths of the
// directions and resolved on the boundary as well, preferring the smallest s
// among equally close candidates.
func distLinearLinear[T Real, V Vector[T, V]](l0, l1 linear[T, V], tol Tolerance[T]) DistanceResult[T, V] {
	d0, d1 := l0.direction, l1.direction
	a := d0.Dot(d0)
	b := d0.Dot(d1)
	c := d1.Dot(d1)
	diff := l0.origin.Sub(l1.origin)
	d := d0.Dot(diff)
	e := d1.Dot(diff)
	det := a*c - b*b

	scale := max(l0.origin.Hypot(), l1.origin.Hypot())
	result := func(s, t T) DistanceResult[T, V] {
		r := snapContact(newDistanceResult(l0.eval(s), l1.eval(t)), scale, tol)
		r.Parameter = [2]T{s, t}
		return r
	}

	if det > 0 && !tol.Negligible(det, a*c) {
		s := (b*e - c*d) / det
		t := (a*e - b*d) / det
		if s >= l0.lo && s <= l0.hi && t >= l1.lo && t <= l1.hi {
			return result(s, t)
		}
	}

	var best option[DistanceResult[T, V]]
	consider := func(s, t T) {
		r := result(s, t)
		if !best.isSet {
			best.set(r)
			return
		}
		cur := best.unwrap()
		scale := max(r.SqrDistance, cur.SqrDistance)
		switch {
		case r.SqrDistance < cur.SqrDistance && !tol.Negligible(cur.SqrDistance-r.SqrDistance, scale):
			best.set(r)
		case tol.Negligible(cur.SqrDistance-r.SqrDistance, scale) && s < cur.Parameter[0]:
			best.set(r)
		}
	}
	for _, s := range [2]T{l0.lo, l0.hi} {
		if !isInf(s) {
			consider(s, l1.project(l0.eval(s)))
		}
	}
	for _, t := range [2]T{l1.lo, l1.hi} {
		if !isInf(t) {
			consider(l0.project(l1.eval(t)), t)
		}
	}
	if !best.isSet {
		// Two parallel lines: every point of l0 is equally close.
		s := clamp(0, l0.lo, l0.hi)
		consider(s, l1.project(l0.eval(s)))
	}
	return best.unwrap()
}

// snapContact turns a distance that is only rounding error into an exact
// contact at the midpoint of the closest points. scale bounds the magnitude of
// the values the closest points were computed from.
func snapContact[T Real, V Vector[T, V]](r DistanceResult[T, V], scale T, tol Tolerance[T]) DistanceResult[T, V] {
	if r.Distance == 0 {
		return r
	}
	scale = max(scale, r.ClosestPoint[0].Hypot(), r.ClosestPoint[1].Hypot())
	if !tol.Negligible(r.Distance, scale) {
		return r
	}
	m := Midpoint(r.ClosestPoint[0], r.ClosestPoint[1])
	r.Distance, r.SqrDistance = 0, 0
	r.ClosestPoint = [2]V{m, m}
	return r
}

// DistLineLine returns the distance between two lines. For parallel lines the
// closest point on l0 is its origin.
func DistLineLine[T Real, V Vector[T, V]](l0, l1 Line[T, V], tol Tolerance[T]) DistanceResult[T, V] {
	return distLinearLinear(l0.linear(), l1.linear(), tol)
}

func DistLineRay[T Real, V Vector[T, V]](l Line[T, V], r Ray[T, V], tol Tolerance[T]) DistanceResult[T, V] {
	return distLinearLinear(l.linear(), r.linear(), tol)
}

func DistLineSegment[T Real, V Vector[T, V]](l Line[T, V], s Segment[T, V], tol Tolerance[T]) DistanceResult[T, V] {
	return distLinearLinear(l.linear(), s.linear(), tol)
}

func DistRayRay[T Real, V Vector[T, V]](r0, r1 Ray[T, V], tol Tolerance[T]) DistanceResult[T, V] {
	return distLinearLinear(r0.linear(), r1.linear(), tol)
}

func DistRaySegment[T Real, V Vector[T, V]](r Ray[T, V], s Segment[T, V], tol Tolerance[T]) DistanceResult[T, V] {
	return distLinearLinear(r.linear(), s.linear(), tol)
}

// DistSegmentSegment returns the distance between two segments. Parameters are
// in [0, 1]. When several pairs of points are closest, as for overlapping
// parallel segments, the pair with the smallest parameter on s0 is returned.
func DistSegmentSegment[T Real, V Vector[T, V]](s0, s1 Segment[T, V], tol Tolerance[T]) DistanceResult[T, V] {
	return distLinearLinear(s0.linear(), s1.linear(), tol)
}

package geom

// Distances between linear components and planar faces. If the component
// crosses the face, the distance is zero at the crossing. Otherwise the
// minimum is attained either on the face's boundary, against the component,
// or at one of the component's endpoints, against the face.

func distLinearFace[T Real](
	l linear[T, Vec3[T]],
	crossing func(linear[T, Vec3[T]], Tolerance[T]) (T, bool),
	edges []Segment3[T],
	pointDist func(Vec3[T]) DistanceResult[T, Vec3[T]],
	tol Tolerance[T],
) DistanceResult[T, Vec3[T]] {
	if t, ok := crossing(l, tol); ok {
		p := l.eval(t)
		r := newDistanceResult(p, p)
		r.Parameter[0] = t
		return r
	}

	var best option[DistanceResult[T, Vec3[T]]]
	consider := func(r DistanceResult[T, Vec3[T]]) {
		if !best.isSet || r.SqrDistance < best.unwrap().SqrDistance {
			best.set(r)
		}
	}
	for _, e := range edges {
		r := distLinearLinear(l, e.linear(), tol)
		r.Parameter[1] = 0
		consider(r)
	}
	for _, t := range [2]T{l.lo, l.hi} {
		if isInf(t) {
			continue
		}
		r := snapContact(pointDist(l.eval(t)), l.origin.Hypot(), tol)
		r.Parameter = [2]T{t, 0}
		consider(r)
	}
	return best.unwrap()
}

func distLinearTriangle3[T Real](l linear[T, Vec3[T]], tri Triangle3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	edges := tri.Edges()
	return distLinearFace(l,
		func(l linear[T, Vec3[T]], tol Tolerance[T]) (T, bool) { return findLinearTriangle3(l, tri, tol) },
		edges[:],
		func(pt Vec3[T]) DistanceResult[T, Vec3[T]] { return DistPointTriangle(pt, tri, tol) },
		tol)
}

func distLinearRectangle3[T Real](l linear[T, Vec3[T]], rect Rectangle3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	edges := rect.Edges()
	return distLinearFace(l,
		func(l linear[T, Vec3[T]], tol Tolerance[T]) (T, bool) { return findLinearRectangle3(l, rect, tol) },
		edges[:],
		func(pt Vec3[T]) DistanceResult[T, Vec3[T]] { return DistPointRectangle3(pt, rect) },
		tol)
}

// DistLine3Triangle3 returns the distance between a line and a triangle.
func DistLine3Triangle3[T Real](l Line3[T], tri Triangle3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	return distLinearTriangle3(l.linear(), tri, tol)
}

func DistRay3Triangle3[T Real](r Ray3[T], tri Triangle3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	return distLinearTriangle3(r.linear(), tri, tol)
}

func DistSegment3Triangle3[T Real](s Segment3[T], tri Triangle3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	return distLinearTriangle3(s.linear(), tri, tol)
}

// DistLine3Rectangle3 returns the distance between a line and a rectangle.
func DistLine3Rectangle3[T Real](l Line3[T], rect Rectangle3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	return distLinearRectangle3(l.linear(), rect, tol)
}

func DistRay3Rectangle3[T Real](r Ray3[T], rect Rectangle3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	return distLinearRectangle3(r.linear(), rect, tol)
}

func DistSegment3Rectangle3[T Real](s Segment3[T], rect Rectangle3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	return distLinearRectangle3(s.linear(), rect, tol)
}

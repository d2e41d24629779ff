package geom

// counterclockwise returns the triangle's vertices as a counterclockwise
// polygon.
func counterclockwise[T Real](t Triangle2[T]) ConvexPolygon2[T] {
	if SignedArea(t) < 0 {
		return ConvexPolygon2[T]{t.V[0], t.V[2], t.V[1]}
	}
	return ConvexPolygon2[T]{t.V[0], t.V[1], t.V[2]}
}

func polygonResult[T Real](p ConvexPolygon2[T]) PolygonIntersection[T] {
	if len(p) < 3 || p.Area() <= 0 {
		return PolygonIntersection[T]{}
	}
	return PolygonIntersection[T]{Intersect: true, Polygon: p}
}

// FindPolygon2Polygon2 returns the intersection of two convex polygons, both in
// counterclockwise order, by clipping b against the half-plane left of each
// edge of a. Intersections without positive area, such as shared edges or
// vertices, are reported as empty.
func FindPolygon2Polygon2[T Real](a, b ConvexPolygon2[T]) PolygonIntersection[T] {
	out := b
	for i, v := range a {
		out = out.ClipHalfspace(LeftOf(v, a[(i+1)%len(a)]))
		if len(out) == 0 {
			return PolygonIntersection[T]{}
		}
	}
	return polygonResult(out)
}

// FindTriangle2Triangle2 returns the intersection of two triangles in the
// plane, a convex polygon with up to six vertices. The triangles may be given
// in either orientation; the result is counterclockwise.
func FindTriangle2Triangle2[T Real](t0, t1 Triangle2[T]) PolygonIntersection[T] {
	return FindPolygon2Polygon2(counterclockwise(t0), counterclockwise(t1))
}

// FindHalfspace2Polygon2 returns the part of the convex polygon inside the
// half-plane.
func FindHalfspace2Polygon2[T Real](h Halfspace2[T], p ConvexPolygon2[T]) PolygonIntersection[T] {
	return polygonResult(p.ClipHalfspace(h))
}

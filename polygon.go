package geom

// ConvexPolygon2 is a convex polygon given by its vertices in counterclockwise
// order. The last vertex connects back to the first.
type ConvexPolygon2[T Real] []Vec2[T]

// Area returns the polygon's signed area, which is positive for
// counterclockwise polygons.
func (p ConvexPolygon2[T]) Area() T {
	if len(p) < 3 {
		return 0
	}
	var a T
	for i, v := range p {
		a += v.Cross(p[(i+1)%len(p)])
	}
	return 0.5 * a
}

// Contains reports whether pt lies in the closed polygon.
func (p ConvexPolygon2[T]) Contains(pt Vec2[T]) bool {
	if len(p) < 3 {
		return false
	}
	for i, v := range p {
		if !LeftOf(v, p[(i+1)%len(p)]).Contains(pt) {
			return false
		}
	}
	return true
}

// ClipHalfspace returns the part of the polygon inside h, clipping it against
// h's boundary line in the manner of Sutherland and Hodgman. A vertex is
// inserted wherever an edge crosses the line. The result keeps the polygon's
// winding. Consecutive duplicate vertices are removed.
func (p ConvexPolygon2[T]) ClipHalfspace(h Halfspace2[T]) ConvexPolygon2[T] {
	if len(p) == 0 {
		return nil
	}
	out := make(ConvexPolygon2[T], 0, len(p)+1)
	emit := func(v Vec2[T]) {
		if n := len(out); n > 0 && out[n-1] == v {
			return
		}
		out = append(out, v)
	}
	prev := p[len(p)-1]
	prevDist := h.Normal.Dot(prev) - h.Constant
	for _, cur := range p {
		curDist := h.Normal.Dot(cur) - h.Constant
		switch {
		case curDist >= 0:
			if prevDist < 0 {
				emit(crossing(prev, cur, prevDist, curDist))
			}
			emit(cur)
		case prevDist >= 0:
			if prevDist > 0 {
				emit(crossing(prev, cur, prevDist, curDist))
			}
		}
		prev, prevDist = cur, curDist
	}
	if n := len(out); n > 1 && out[0] == out[n-1] {
		out = out[:n-1]
	}
	return out
}

// crossing returns the point where the edge from p to q crosses the line at
// which the signed distance is zero.
func crossing[T Real](p, q Vec2[T], dp, dq T) Vec2[T] {
	return p.Lerp(q, dp/(dp-dq))
}

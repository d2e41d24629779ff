package geom

// A TestQuery decides whether two shapes intersect, without computing where.
// R is typically [TestResult] or [SweptResult].
type TestQuery[A, B, R any] interface {
	Test(a A, b B) R
}

// A FindQuery computes the full relationship between two shapes: the
// intersection set or the distance and closest points. R is typically
// [DistanceResult], [LinearIntersection] or [PolygonIntersection].
type FindQuery[A, B, R any] interface {
	Find(a A, b B) R
}

// TestFunc adapts an ordinary function to [TestQuery].
type TestFunc[A, B, R any] func(a A, b B) R

func (f TestFunc[A, B, R]) Test(a A, b B) R { return f(a, b) }

// FindFunc adapts an ordinary function to [FindQuery].
type FindFunc[A, B, R any] func(a A, b B) R

func (f FindFunc[A, B, R]) Find(a A, b B) R { return f(a, b) }

// Swapped turns a query for the pair (A, B) into a query for (B, A). swap
// converts the result to refer to the arguments in their new order; it may be
// nil for results that are symmetric, such as [TestResult].
func Swapped[A, B, R any](q FindQuery[A, B, R], swap func(R) R) FindFunc[B, A, R] {
	return func(b B, a A) R {
		r := q.Find(a, b)
		if swap != nil {
			r = swap(r)
		}
		return r
	}
}

// TestResult is the result of a boolean intersection test.
type TestResult struct {
	Intersect bool
}

// SweptResult is the result of an intersection test between shapes moving with
// constant velocities over a time interval [0, tmax].
type SweptResult[T Real] struct {
	Intersect bool
	// ContactTime is the first time in [0, tmax] at which the shapes touch. It
	// is 0 if they intersect at the start of the interval.
	ContactTime T
	// NumIntersections counts the boundary events (first contact and
	// separation) that fall inside the time interval. It is at most 2.
	NumIntersections int
}

// DistanceResult is the result of a closest-point query.
type DistanceResult[T Real, V any] struct {
	Distance    T
	SqrDistance T
	// Parameter holds the curve parameters of the closest points, for those
	// arguments that are lines, rays or segments. Entries for other shapes are
	// zero.
	Parameter [2]T
	// ClosestPoint holds a closest point on each shape, in argument order. The
	// points coincide when the shapes intersect.
	ClosestPoint [2]V
}

// Intersect reports whether the shapes touch, that is, whether the distance is
// zero.
func (r DistanceResult[T, V]) Intersect() bool {
	return r.Distance == 0
}

// Swap returns the result with the roles of the two arguments exchanged.
func (r DistanceResult[T, V]) Swap() DistanceResult[T, V] {
	r.Parameter[0], r.Parameter[1] = r.Parameter[1], r.Parameter[0]
	r.ClosestPoint[0], r.ClosestPoint[1] = r.ClosestPoint[1], r.ClosestPoint[0]
	return r
}

func newDistanceResult[T Real, V Vector[T, V]](p0, p1 V) DistanceResult[T, V] {
	d2 := p1.Sub(p0).Hypot2()
	return DistanceResult[T, V]{
		Distance:     sqrt(d2),
		SqrDistance:  d2,
		ClosestPoint: [2]V{p0, p1},
	}
}

// LinearIntersection is the intersection of a line, ray or segment with a
// solid shape. The intersection of a linear component with a convex solid is a
// single parameter interval.
type LinearIntersection[T Real, V any] struct {
	Intersect bool
	// NumIntersections is 0 if there is no intersection, 1 if the linear
	// component touches the shape at a single point and 2 if it passes through
	// the shape along an interval.
	NumIntersections int
	// Parameter holds the endpoints of the intersection interval on the linear
	// component. When NumIntersections is 1, both entries are equal.
	Parameter [2]T
	// Point holds the points at Parameter. Entries for infinite parameters,
	// as for a line lying in a plane, are zero.
	Point [2]V
}

// PolygonIntersection is the intersection of two convex 2D regions.
type PolygonIntersection[T Real] struct {
	Intersect bool
	// Polygon holds the vertices of the intersection in counterclockwise
	// order. It is empty if Intersect is false.
	Polygon ConvexPolygon2[T]
}

// AlignedBoxIntersection is the intersection of two axis-aligned boxes.
type AlignedBoxIntersection[T Real, V Vector[T, V]] struct {
	Intersect bool
	Box       AlignedBox[T, V]
}

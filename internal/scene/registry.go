package scene

import (
	"fmt"

	"honnef.co/go/geom"
)

type (
	vec2      = geom.Vec2[float64]
	vec3      = geom.Vec3[float64]
	triangle2 = geom.Triangle2[float64]
	abox3     = geom.AlignedBox3[float64]
	sphere3   = geom.Sphere3[float64]
	plane3    = geom.Plane3[float64]
	tolerance = geom.Tolerance[float64]
)

// Result is the outcome of a query, independent of the shapes' types.
type Result struct {
	Intersect bool
	// Distance is set by distance queries.
	Distance *float64
	// ClosestPoints holds a closest point on each shape, in argument order.
	ClosestPoints [][]float64
	// Points holds the points describing an intersection set, such as the
	// endpoints of a clipped segment or the vertices of a polygon.
	Points [][]float64
	// Detail describes the intersection further where a query distinguishes
	// several kinds.
	Detail string
}

// Swap returns the result for the arguments in reverse order.
func (r Result) Swap() Result {
	if len(r.ClosestPoints) == 2 {
		r.ClosestPoints = [][]float64{r.ClosestPoints[1], r.ClosestPoints[0]}
	}
	return r
}

// Query is a query on two shapes of fixed kinds.
type Query = geom.FindQuery[Shape, Shape, Result]

type key struct {
	op   Op
	a, b Kind
}

// Registry maps operations on ordered pairs of shape kinds to queries.
type Registry struct {
	queries map[key]Query
}

// NewRegistry returns a registry holding all queries of the geom package that
// operate on the shape kinds of this package, using tol for those that take a
// tolerance.
func NewRegistry(tol tolerance) *Registry {
	r := &Registry{queries: make(map[key]Query)}
	registerDistances(r, tol)
	registerTests(r, tol)
	registerFinds(r, tol)
	return r
}

// Register adds a query for the operation on shapes of kinds a and b. Unless a
// query is registered for b and a explicitly, it is also used for the reverse
// order.
func (r *Registry) Register(op Op, a, b Kind, q Query) {
	r.queries[key{op, a, b}] = q
	if a == b {
		return
	}
	rev := key{op, b, a}
	if _, ok := r.queries[rev]; !ok {
		r.queries[rev] = geom.Swapped(q, Result.Swap)
	}
}

// Lookup returns the query for the operation on shapes of kinds a and b. Tests
// fall back to distance queries, with shapes intersecting at distance zero.
func (r *Registry) Lookup(op Op, a, b Kind) (Query, error) {
	if q, ok := r.queries[key{op, a, b}]; ok {
		return q, nil
	}
	if op == Test {
		if q, ok := r.queries[key{Distance, a, b}]; ok {
			return geom.FindFunc[Shape, Shape, Result](func(x, y Shape) Result {
				res := q.Find(x, y)
				return Result{Intersect: res.Intersect}
			}), nil
		}
	}
	return nil, fmt.Errorf("%w: %s %s %s", ErrUnsupportedPair, op, a, b)
}

// Pairs returns the number of registered (operation, kind, kind) entries.
func (r *Registry) Pairs() int {
	return len(r.queries)
}

func coords[V geom.Vector[float64, V]](v V) []float64 {
	out := make([]float64, v.Dim())
	for i := range out {
		out[i] = v.Comp(i)
	}
	return out
}

func fromDistance[V geom.Vector[float64, V]](r geom.DistanceResult[float64, V]) Result {
	d := r.Distance
	return Result{
		Intersect:     r.Intersect(),
		Distance:      &d,
		ClosestPoints: [][]float64{coords(r.ClosestPoint[0]), coords(r.ClosestPoint[1])},
	}
}

func fromTest(r geom.TestResult) Result {
	return Result{Intersect: r.Intersect}
}

func fromLinear(r geom.LinearIntersection[float64, vec3]) Result {
	res := Result{Intersect: r.Intersect}
	for i := range r.NumIntersections {
		res.Points = append(res.Points, coords(r.Point[i]))
	}
	return res
}

func fromPolygon(r geom.PolygonIntersection[float64]) Result {
	res := Result{Intersect: r.Intersect}
	for _, v := range r.Polygon {
		res.Points = append(res.Points, coords(v))
	}
	return res
}

// The adapters below turn typed query functions into queries on shapes. They
// rely on the registry pairing each kind with the geom type Build produces for
// it.

func dist[A, B any, V geom.Vector[float64, V]](f func(A, B) geom.DistanceResult[float64, V]) Query {
	return geom.FindFunc[Shape, Shape, Result](func(a, b Shape) Result {
		return fromDistance(f(a.Value.(A), b.Value.(B)))
	})
}

func distTol[A, B any, V geom.Vector[float64, V]](f func(A, B, tolerance) geom.DistanceResult[float64, V], tol tolerance) Query {
	return dist(func(a A, b B) geom.DistanceResult[float64, V] { return f(a, b, tol) })
}

func test[A, B any](f func(A, B) geom.TestResult) Query {
	return geom.FindFunc[Shape, Shape, Result](func(a, b Shape) Result {
		return fromTest(f(a.Value.(A), b.Value.(B)))
	})
}

func testTol[A, B any](f func(A, B, tolerance) geom.TestResult, tol tolerance) Query {
	return test(func(a A, b B) geom.TestResult { return f(a, b, tol) })
}

func linear[A, B any](f func(A, B) geom.LinearIntersection[float64, vec3]) Query {
	return geom.FindFunc[Shape, Shape, Result](func(a, b Shape) Result {
		return fromLinear(f(a.Value.(A), b.Value.(B)))
	})
}

func linearTol[A, B any](f func(A, B, tolerance) geom.LinearIntersection[float64, vec3], tol tolerance) Query {
	return linear(func(a A, b B) geom.LinearIntersection[float64, vec3] { return f(a, b, tol) })
}

func registerDistances(r *Registry, tol tolerance) {
	r.Register(Distance, Point3, Segment3, dist(geom.DistPointSegment[float64, vec3]))
	r.Register(Distance, Point3, Ray3, dist(geom.DistPointRay[float64, vec3]))
	r.Register(Distance, Point3, Line3, dist(geom.DistPointLine[float64, vec3]))
	r.Register(Distance, Point3, Triangle3, distTol(geom.DistPointTriangle[float64, vec3], tol))
	r.Register(Distance, Point2, Triangle2, distTol(geom.DistPointTriangle[float64, vec2], tol))
	r.Register(Distance, Point3, Rectangle3, dist(geom.DistPointRectangle3[float64]))
	r.Register(Distance, Point3, AlignedBox3, dist(geom.DistPointAlignedBox[float64, vec3]))
	r.Register(Distance, Point3, OrientedBox3, dist(geom.DistPointOrientedBox3[float64]))
	r.Register(Distance, Point3, Sphere3, dist(geom.DistPointHypersphere[float64, vec3]))
	r.Register(Distance, Point3, Capsule3, dist(geom.DistPointCapsule3[float64]))
	r.Register(Distance, Point3, Cylinder3, dist(geom.DistPointCylinder3[float64]))
	r.Register(Distance, Point3, Cone3, dist(geom.DistPointCone3[float64]))
	r.Register(Distance, Point3, Ellipsoid3, distTol(geom.DistPointEllipsoid3[float64], tol))
	r.Register(Distance, Point3, Plane3, dist(geom.DistPointPlane3[float64]))
	r.Register(Distance, Point3, Halfspace3, dist(geom.DistPointHalfspace3[float64]))

	r.Register(Distance, Line3, Line3, distTol(geom.DistLineLine[float64, vec3], tol))
	r.Register(Distance, Line3, Ray3, distTol(geom.DistLineRay[float64, vec3], tol))
	r.Register(Distance, Line3, Segment3, distTol(geom.DistLineSegment[float64, vec3], tol))
	r.Register(Distance, Ray3, Ray3, distTol(geom.DistRayRay[float64, vec3], tol))
	r.Register(Distance, Ray3, Segment3, distTol(geom.DistRaySegment[float64, vec3], tol))
	r.Register(Distance, Segment3, Segment3, distTol(geom.DistSegmentSegment[float64, vec3], tol))

	r.Register(Distance, Line3, Triangle3, distTol(geom.DistLine3Triangle3[float64], tol))
	r.Register(Distance, Ray3, Triangle3, distTol(geom.DistRay3Triangle3[float64], tol))
	r.Register(Distance, Segment3, Triangle3, distTol(geom.DistSegment3Triangle3[float64], tol))
	r.Register(Distance, Line3, Rectangle3, distTol(geom.DistLine3Rectangle3[float64], tol))
	r.Register(Distance, Ray3, Rectangle3, distTol(geom.DistRay3Rectangle3[float64], tol))
	r.Register(Distance, Segment3, Rectangle3, distTol(geom.DistSegment3Rectangle3[float64], tol))

	r.Register(Distance, AlignedBox3, OrientedBox3, distTol(geom.DistAlignedBox3OrientedBox3[float64], tol))
	r.Register(Distance, AlignedBox3, AlignedBox3, distTol(geom.DistAlignedBox3AlignedBox3[float64], tol))
	r.Register(Distance, OrientedBox3, OrientedBox3, distTol(geom.DistOrientedBox3OrientedBox3[float64], tol))
	r.Register(Distance, Rectangle3, OrientedBox3, distTol(geom.DistRectangle3OrientedBox3[float64], tol))
	r.Register(Distance, Segment3, OrientedBox3, distTol(geom.DistSegment3OrientedBox3[float64], tol))
	r.Register(Distance, Segment3, AlignedBox3, distTol(geom.DistSegment3AlignedBox3[float64], tol))
	r.Register(Distance, Triangle3, OrientedBox3, distTol(geom.DistTriangle3OrientedBox3[float64], tol))
	r.Register(Distance, Triangle3, Triangle3, distTol(geom.DistTriangle3Triangle3[float64], tol))
	r.Register(Distance, Triangle3, Rectangle3, distTol(geom.DistTriangle3Rectangle3[float64], tol))
	r.Register(Distance, Rectangle3, Rectangle3, distTol(geom.DistRectangle3Rectangle3[float64], tol))

	// Pairs of convex solids without a dedicated query go through the
	// general convex distance.
	convex := []Kind{Segment3, Triangle3, Rectangle3, AlignedBox3, OrientedBox3, Sphere3, Capsule3}
	for i, a := range convex {
		for _, b := range convex[i:] {
			if _, ok := r.queries[key{Distance, a, b}]; ok {
				continue
			}
			r.Register(Distance, a, b, geom.FindFunc[Shape, Shape, Result](func(x, y Shape) Result {
				return fromDistance(geom.DistConvex3(x.Value.(geom.Support3[float64]), y.Value.(geom.Support3[float64]), tol))
			}))
		}
	}
}

func registerTests(r *Registry, tol tolerance) {
	r.Register(Test, AlignedBox3, AlignedBox3, test(geom.TestAlignedBoxAlignedBox[float64, vec3]))
	r.Register(Test, AlignedBox3, OrientedBox3, testTol(geom.TestAlignedBox3OrientedBox3[float64], tol))
	r.Register(Test, OrientedBox3, OrientedBox3, testTol(geom.TestOrientedBox3OrientedBox3[float64], tol))
	r.Register(Test, Triangle3, OrientedBox3, testTol(geom.TestTriangle3OrientedBox3[float64], tol))
	r.Register(Test, Triangle2, Triangle2, test(geom.TestTriangle2Triangle2[float64]))

	r.Register(Test, Sphere3, Sphere3, test(geom.TestHypersphereHypersphere[float64, vec3]))
	r.Register(Test, Sphere3, Cone3, test(geom.TestSphere3Cone3[float64]))
	r.Register(Test, Sphere3, AlignedBox3, test(geom.TestSphere3AlignedBox3[float64]))
	r.Register(Test, Sphere3, OrientedBox3, test(geom.TestSphere3OrientedBox3[float64]))
	r.Register(Test, Sphere3, Triangle3, testTol(geom.TestSphere3Triangle3[float64], tol))
	r.Register(Test, Sphere3, Capsule3, test(geom.TestSphere3Capsule3[float64]))
	r.Register(Test, Capsule3, Capsule3, testTol(geom.TestCapsule3Capsule3[float64], tol))
	r.Register(Test, Segment3, Capsule3, testTol(geom.TestSegment3Capsule3[float64], tol))

	r.Register(Test, Line3, Sphere3, test(geom.TestLineHypersphere[float64, vec3]))
	r.Register(Test, Ray3, Sphere3, test(geom.TestRayHypersphere[float64, vec3]))
	r.Register(Test, Segment3, Sphere3, test(geom.TestSegmentHypersphere[float64, vec3]))

	r.Register(Test, Halfspace3, Sphere3, test(geom.TestHalfspace3Sphere3[float64]))
	r.Register(Test, Halfspace3, OrientedBox3, test(geom.TestHalfspace3OrientedBox3[float64]))
	r.Register(Test, Halfspace3, Segment3, test(geom.TestHalfspace3Segment3[float64]))
	r.Register(Test, Halfspace3, Triangle3, test(geom.TestHalfspace3Triangle3[float64]))
	r.Register(Test, Halfspace3, Capsule3, test(geom.TestHalfspace3Capsule3[float64]))

	r.Register(Test, Plane3, Sphere3, test(geom.TestPlane3Sphere3[float64]))
	r.Register(Test, Plane3, OrientedBox3, test(geom.TestPlane3OrientedBox3[float64]))
	r.Register(Test, Plane3, Triangle3, test(geom.TestPlane3Triangle3[float64]))
}

func registerFinds(r *Registry, tol tolerance) {
	r.Register(Find, Line3, Sphere3, linear(geom.FindLineHypersphere[float64, vec3]))
	r.Register(Find, Ray3, Sphere3, linear(geom.FindRayHypersphere[float64, vec3]))
	r.Register(Find, Segment3, Sphere3, linear(geom.FindSegmentHypersphere[float64, vec3]))
	r.Register(Find, Line3, AlignedBox3, linear(geom.FindLineAlignedBox[float64, vec3]))
	r.Register(Find, Ray3, AlignedBox3, linear(geom.FindRayAlignedBox[float64, vec3]))
	r.Register(Find, Segment3, AlignedBox3, linear(geom.FindSegmentAlignedBox[float64, vec3]))
	r.Register(Find, Line3, OrientedBox3, linear(geom.FindLine3OrientedBox3[float64]))
	r.Register(Find, Ray3, OrientedBox3, linear(geom.FindRay3OrientedBox3[float64]))
	r.Register(Find, Segment3, OrientedBox3, linear(geom.FindSegment3OrientedBox3[float64]))
	r.Register(Find, Line3, Ellipsoid3, linear(geom.FindLine3Ellipsoid3[float64]))
	r.Register(Find, Ray3, Ellipsoid3, linear(geom.FindRay3Ellipsoid3[float64]))
	r.Register(Find, Segment3, Ellipsoid3, linear(geom.FindSegment3Ellipsoid3[float64]))
	r.Register(Find, Line3, Cylinder3, linearTol(geom.FindLine3Cylinder3[float64], tol))
	r.Register(Find, Ray3, Cylinder3, linearTol(geom.FindRay3Cylinder3[float64], tol))
	r.Register(Find, Segment3, Cylinder3, linearTol(geom.FindSegment3Cylinder3[float64], tol))
	r.Register(Find, Line3, Plane3, linearTol(geom.FindLine3Plane3[float64], tol))
	r.Register(Find, Ray3, Plane3, linearTol(geom.FindRay3Plane3[float64], tol))
	r.Register(Find, Segment3, Plane3, linearTol(geom.FindSegment3Plane3[float64], tol))
	r.Register(Find, Line3, Triangle3, linearTol(geom.FindLine3Triangle3[float64], tol))
	r.Register(Find, Ray3, Triangle3, linearTol(geom.FindRay3Triangle3[float64], tol))
	r.Register(Find, Segment3, Triangle3, linearTol(geom.FindSegment3Triangle3[float64], tol))
	r.Register(Find, Line3, Rectangle3, linearTol(geom.FindLine3Rectangle3[float64], tol))
	r.Register(Find, Segment3, Rectangle3, linearTol(geom.FindSegment3Rectangle3[float64], tol))

	r.Register(Find, Triangle2, Triangle2, geom.FindFunc[Shape, Shape, Result](func(a, b Shape) Result {
		return fromPolygon(geom.FindTriangle2Triangle2(a.Value.(triangle2), b.Value.(triangle2)))
	}))
	r.Register(Find, AlignedBox3, AlignedBox3, geom.FindFunc[Shape, Shape, Result](func(a, b Shape) Result {
		res := geom.FindAlignedBoxAlignedBox(a.Value.(abox3), b.Value.(abox3))
		if !res.Intersect {
			return Result{}
		}
		return Result{Intersect: true, Points: [][]float64{coords(res.Box.Min), coords(res.Box.Max)}}
	}))
	r.Register(Find, Sphere3, Sphere3, geom.FindFunc[Shape, Shape, Result](func(a, b Shape) Result {
		res := geom.FindSphere3Sphere3(a.Value.(sphere3), b.Value.(sphere3), tol)
		out := Result{Intersect: res.Intersect, Detail: res.Kind.String()}
		switch res.Kind {
		case geom.SpheresCircle:
			out.Points = [][]float64{coords(res.Circle.Center)}
		case geom.SpheresPoint:
			out.Points = [][]float64{coords(res.Point)}
		}
		return out
	}))
	r.Register(Find, Plane3, Plane3, geom.FindFunc[Shape, Shape, Result](func(a, b Shape) Result {
		res := geom.FindPlane3Plane3(a.Value.(plane3), b.Value.(plane3), tol)
		out := Result{Intersect: res.Intersect}
		switch {
		case res.Coincident:
			out.Detail = "coincident"
		case res.Intersect:
			out.Detail = "line"
			out.Points = [][]float64{coords(res.Line.Origin), coords(res.Line.Eval(1))}
		}
		return out
	}))
}

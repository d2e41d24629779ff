package geom

// Intersection tests involving spheres, capsules, cones, half-spaces and
// planes. Most reduce to a distance query against the shape's core (a point
// for spheres, a segment for capsules) compared with the radius, or to the
// sign of a projection onto a normal.

// TestHypersphereHypersphere reports whether two balls intersect.
func TestHypersphereHypersphere[T Real, V Vector[T, V]](a, b Hypersphere[T, V]) TestResult {
	r := a.Radius + b.Radius
	return TestResult{b.Center.Sub(a.Center).Hypot2() <= r*r}
}

// SphereIntersectionKind classifies how two spheres intersect.
type SphereIntersectionKind int

const (
	// The spheres are disjoint.
	SpheresDisjoint SphereIntersectionKind = iota + 1
	// One sphere lies strictly inside the other.
	SpheresContained
	// The spheres' surfaces meet in a circle.
	SpheresCircle
	// The spheres touch in a single point, from the outside or the inside.
	SpheresPoint
	// The spheres are the same.
	SpheresSame
)

func (k SphereIntersectionKind) String() string {
	switch k {
	case SpheresDisjoint:
		return "disjoint"
	case SpheresContained:
		return "contained"
	case SpheresCircle:
		return "circle"
	case SpheresPoint:
		return "point"
	case SpheresSame:
		return "same"
	default:
		return "invalid"
	}
}

// SphereIntersection is the intersection of two spheres.
type SphereIntersection[T Real] struct {
	Intersect bool
	Kind      SphereIntersectionKind
	// Inner is the index of the inner sphere, for SpheresContained.
	Inner int
	// Circle is the circle in which the surfaces meet, for SpheresCircle.
	// Its normal points from the first sphere's center to the second's.
	Circle Circle3[T]
	// Point is the point of contact, for SpheresPoint.
	Point Vec3[T]
}

// FindSphere3Sphere3 classifies the intersection of two spheres and computes
// where their surfaces meet. Tangency is decided relative to the squared sum of
// the radii.
func FindSphere3Sphere3[T Real](a, b Sphere3[T], tol Tolerance[T]) SphereIntersection[T] {
	d := b.Center.Sub(a.Center)
	dd := d.Hypot2()
	sum := (a.Radius + b.Radius) * (a.Radius + b.Radius)
	diff := (a.Radius - b.Radius) * (a.Radius - b.Radius)

	switch {
	case dd == 0 && (a.Radius == b.Radius || tol.Negligible(diff, sum)):
		return SphereIntersection[T]{Intersect: true, Kind: SpheresSame}
	case tol.Negligible(dd-sum, sum):
		n, _ := Normalize(d)
		return SphereIntersection[T]{Intersect: true, Kind: SpheresPoint, Point: a.Center.Add(n.Mul(a.Radius))}
	case dd > sum:
		return SphereIntersection[T]{Kind: SpheresDisjoint}
	case dd > 0 && tol.Negligible(dd-diff, sum):
		n, _ := Normalize(d)
		p := a.Center.Add(n.Mul(a.Radius))
		if b.Radius > a.Radius {
			p = b.Center.Sub(n.Mul(b.Radius))
		}
		return SphereIntersection[T]{Intersect: true, Kind: SpheresPoint, Point: p}
	case dd < diff:
		r := SphereIntersection[T]{Intersect: true, Kind: SpheresContained}
		if b.Radius < a.Radius {
			r.Inner = 1
		}
		return r
	}

	// The plane of the circle is at parameter t along the line of centers.
	t := 0.5 * (1 + (a.Radius*a.Radius-b.Radius*b.Radius)/dd)
	n := d.Mul(1 / sqrt(dd))
	return SphereIntersection[T]{
		Intersect: true,
		Kind:      SpheresCircle,
		Circle: Circle3[T]{
			Center: a.Center.Add(d.Mul(t)),
			Normal: n,
			Radius: sqrt(max(a.Radius*a.Radius-t*t*dd, 0)),
		},
	}
}

// TestMovingHyperspheres reports whether two balls, moving with constant
// velocities va and vb, intersect at some time in [0, tmax], and when they
// first touch.
func TestMovingHyperspheres[T Real, V Vector[T, V]](a Hypersphere[T, V], va V, b Hypersphere[T, V], vb V, tmax T) SweptResult[T] {
	d := b.Center.Sub(a.Center)
	v := vb.Sub(va)
	r := a.Radius + b.Radius
	c := d.Hypot2() - r*r
	vv := v.Hypot2()
	if vv == 0 {
		if c <= 0 {
			return sweptResult(inf[T](-1), inf[T](1), tmax)
		}
		return SweptResult[T]{}
	}
	roots, n := SolveQuadratic(c, 2*d.Dot(v), vv)
	switch n {
	case 2:
		return sweptResult(roots[0], roots[1], tmax)
	case 1:
		return sweptResult(roots[0], roots[0], tmax)
	default:
		return SweptResult[T]{}
	}
}

// TestSphere3Cone3 reports whether a sphere and a solid cone intersect. The
// sphere intersects the cone exactly when its center is within Radius of it.
// The distance is found in the plane through the axis and the center, where
// the part of the cone's boundary closest to the center depends on whether
// the center lies below the minimum height, above the maximum height or in
// between.
func TestSphere3Cone3[T Real](s Sphere3[T], c Cone3[T]) TestResult {
	return TestResult{DistPointCone3(s.Center, c).SqrDistance <= s.Radius*s.Radius}
}

func TestSphere3AlignedBox3[T Real](s Sphere3[T], b AlignedBox3[T]) TestResult {
	return TestResult{DistPointAlignedBox(s.Center, b).SqrDistance <= s.Radius*s.Radius}
}

func TestSphere3OrientedBox3[T Real](s Sphere3[T], b OrientedBox3[T]) TestResult {
	return TestResult{DistPointOrientedBox3(s.Center, b).SqrDistance <= s.Radius*s.Radius}
}

func TestSphere3Triangle3[T Real](s Sphere3[T], tri Triangle3[T], tol Tolerance[T]) TestResult {
	return TestResult{DistPointTriangle(s.Center, tri, tol).SqrDistance <= s.Radius*s.Radius}
}

func TestSphere3Capsule3[T Real](s Sphere3[T], c Capsule3[T]) TestResult {
	r := s.Radius + c.Radius
	return TestResult{DistPointSegment(s.Center, c.Segment).SqrDistance <= r*r}
}

// TestCapsule3Capsule3 reports whether two capsules intersect, that is,
// whether their segments are within the sum of the radii of each other.
func TestCapsule3Capsule3[T Real](a, b Capsule3[T], tol Tolerance[T]) TestResult {
	r := a.Radius + b.Radius
	return TestResult{DistSegmentSegment(a.Segment, b.Segment, tol).SqrDistance <= r*r}
}

func TestSegment3Capsule3[T Real](s Segment3[T], c Capsule3[T], tol Tolerance[T]) TestResult {
	return TestResult{DistSegmentSegment(s, c.Segment, tol).SqrDistance <= c.Radius*c.Radius}
}

func TestHalfspace3Sphere3[T Real](h Halfspace3[T], s Sphere3[T]) TestResult {
	return TestResult{h.Normal.Dot(s.Center)-h.Constant >= -s.Radius}
}

func TestHalfspace3OrientedBox3[T Real](h Halfspace3[T], b OrientedBox3[T]) TestResult {
	return TestResult{h.Normal.Dot(b.Center)-h.Constant >= -b.projectionRadius(h.Normal)}
}

func TestHalfspace3Segment3[T Real](h Halfspace3[T], s Segment3[T]) TestResult {
	return TestResult{max(h.Normal.Dot(s.P0), h.Normal.Dot(s.P1)) >= h.Constant}
}

func TestHalfspace3Triangle3[T Real](h Halfspace3[T], tri Triangle3[T]) TestResult {
	return TestResult{h.Normal.Dot(tri.Support(h.Normal)) >= h.Constant}
}

func TestHalfspace3Capsule3[T Real](h Halfspace3[T], c Capsule3[T]) TestResult {
	return TestResult{max(h.Normal.Dot(c.Segment.P0), h.Normal.Dot(c.Segment.P1)) >= h.Constant-c.Radius}
}

func TestPlane3Sphere3[T Real](p Plane3[T], s Sphere3[T]) TestResult {
	return TestResult{abs(p.SignedDistance(s.Center)) <= s.Radius}
}

func TestPlane3OrientedBox3[T Real](p Plane3[T], b OrientedBox3[T]) TestResult {
	return TestResult{abs(p.SignedDistance(b.Center)) <= b.projectionRadius(p.Normal)}
}

// TestPlane3Triangle3 reports whether the triangle touches the plane, that is,
// whether its vertices don't all lie strictly on one side.
func TestPlane3Triangle3[T Real](p Plane3[T], tri Triangle3[T]) TestResult {
	d0, d1, d2 := p.SignedDistance(tri.V[0]), p.SignedDistance(tri.V[1]), p.SignedDistance(tri.V[2])
	return TestResult{min(d0, d1, d2) <= 0 && max(d0, d1, d2) >= 0}
}

// PlaneIntersection is the intersection of two planes.
type PlaneIntersection[T Real] struct {
	Intersect bool
	// Coincident is set if the planes are the same, in which case Line is
	// unset.
	Coincident bool
	// Line is the line in which the planes meet. Its direction is the
	// normalized cross product of the first and second normal.
	Line Line3[T]
}

// FindPlane3Plane3 returns the line in which two planes meet. Parallel planes
// either coincide or don't intersect.
func FindPlane3Plane3[T Real](p0, p1 Plane3[T], tol Tolerance[T]) PlaneIntersection[T] {
	dot := p0.Normal.Dot(p1.Normal)
	cross := p0.Normal.Cross(p1.Normal)
	if tol.Negligible(cross.Hypot2(), 1) {
		c1 := p1.Constant
		if dot < 0 {
			c1 = -c1
		}
		if p0.Constant == c1 || tol.Negligible(p0.Constant-c1, max(abs(p0.Constant), abs(c1))) {
			return PlaneIntersection[T]{Intersect: true, Coincident: true}
		}
		return PlaneIntersection[T]{}
	}

	// The line's origin is the point of the form a·n0 + b·n1 lying on both
	// planes.
	inv := 1 / (1 - dot*dot)
	a := (p0.Constant - dot*p1.Constant) * inv
	b := (p1.Constant - dot*p0.Constant) * inv
	dir, _ := Normalize(cross)
	return PlaneIntersection[T]{
		Intersect: true,
		Line: Line3[T]{
			Origin:    p0.Normal.Mul(a).Add(p1.Normal.Mul(b)),
			Direction: dir,
		},
	}
}

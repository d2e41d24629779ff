package geom

// Support3 is implemented by convex shapes in space. Support returns a point of
// the shape that is extreme in direction d, that is, a point p maximizing p·d.
// Any such point may be returned when several are extreme. For d = 0 any point
// of the shape may be returned.
type Support3[T Real] interface {
	Support(d Vec3[T]) Vec3[T]
}

func (s Segment[T, V]) Support(d V) V {
	if s.P1.Dot(d) > s.P0.Dot(d) {
		return s.P1
	}
	return s.P0
}

func (t Triangle[T, V]) Support(d V) V {
	best := t.V[0]
	bd := best.Dot(d)
	for _, v := range t.V[1:] {
		if vd := v.Dot(d); vd > bd {
			best, bd = v, vd
		}
	}
	return best
}

func (b AlignedBox[T, V]) Support(d V) V {
	out := b.Min
	for i := range d.Dim() {
		if d.Comp(i) >= 0 {
			out = out.WithComp(i, b.Max.Comp(i))
		}
	}
	return out
}

func (s Hypersphere[T, V]) Support(d V) V {
	n, ok := Normalize(d)
	if !ok {
		return s.Center
	}
	return s.Center.Add(n.Mul(s.Radius))
}

func (b OrientedBox3[T]) Support(d Vec3[T]) Vec3[T] {
	l := b.Extent
	if b.Axis[0].Dot(d) < 0 {
		l.X = -l.X
	}
	if b.Axis[1].Dot(d) < 0 {
		l.Y = -l.Y
	}
	if b.Axis[2].Dot(d) < 0 {
		l.Z = -l.Z
	}
	return b.FromLocal(l)
}

func (r Rectangle3[T]) Support(d Vec3[T]) Vec3[T] {
	l := r.Extent
	if r.Axis[0].Dot(d) < 0 {
		l.X = -l.X
	}
	if r.Axis[1].Dot(d) < 0 {
		l.Y = -l.Y
	}
	return r.FromLocal(l)
}

func (c Capsule3[T]) Support(d Vec3[T]) Vec3[T] {
	p := c.Segment.Support(d)
	if n, ok := Normalize(d); ok {
		p = p.Add(n.Mul(c.Radius))
	}
	return p
}

// A simplexVertex is a point w = a − b of the Minkowski difference together
// with the support points it was built from.
type simplexVertex[T Real] struct {
	w, a, b Vec3[T]
}

// A simplex holds up to four vertices and the barycentric weights of the
// point of the simplex closest to the origin.
type simplex[T Real] struct {
	v      [4]simplexVertex[T]
	lambda [4]T
	n      int
}

func (s *simplex[T]) closest() Vec3[T] {
	var p Vec3[T]
	for i := range s.n {
		p = p.Add(s.v[i].w.Mul(s.lambda[i]))
	}
	return p
}

func (s *simplex[T]) witnesses() (Vec3[T], Vec3[T]) {
	var pa, pb Vec3[T]
	for i := range s.n {
		pa = pa.Add(s.v[i].a.Mul(s.lambda[i]))
		pb = pb.Add(s.v[i].b.Mul(s.lambda[i]))
	}
	return pa, pb
}

func (s *simplex[T]) contains(w Vec3[T]) bool {
	for i := range s.n {
		if s.v[i].w == w {
			return true
		}
	}
	return false
}

func (s *simplex[T]) maxNorm2() T {
	var m T
	for i := range s.n {
		m = max(m, s.v[i].w.Hypot2())
	}
	return m
}

// reduce replaces the simplex by its smallest face containing the point
// closest to the origin and stores that point's weights. It reports whether
// the origin lies inside a full tetrahedron.
func (s *simplex[T]) reduce() bool {
	switch s.n {
	case 1:
		s.lambda[0] = 1
	case 2:
		*s = closestSegment(s.v[0], s.v[1])
	case 3:
		*s = closestTriangle(s.v[0], s.v[1], s.v[2])
	case 4:
		var inside bool
		*s, inside = closestTetrahedron(s.v[0], s.v[1], s.v[2], s.v[3])
		return inside
	}
	return false
}

func vertexSimplex[T Real](vs ...simplexVertex[T]) simplex[T] {
	var s simplex[T]
	s.n = copy(s.v[:], vs)
	return s
}

func closestSegment[T Real](a, b simplexVertex[T]) simplex[T] {
	ab := b.w.Sub(a.w)
	t := -a.w.Dot(ab)
	if t <= 0 {
		s := vertexSimplex(a)
		s.lambda[0] = 1
		return s
	}
	denom := ab.Hypot2()
	if t >= denom {
		s := vertexSimplex(b)
		s.lambda[0] = 1
		return s
	}
	t /= denom
	s := vertexSimplex(a, b)
	s.lambda[0], s.lambda[1] = 1-t, t
	return s
}

// closestTriangle finds the feature of the triangle closest to the origin by
// testing its Voronoi regions in turn, after Ericson, "Real-Time Collision
// Detection", 5.1.5.
func closestTriangle[T Real](a, b, c simplexVertex[T]) simplex[T] {
	ab := b.w.Sub(a.w)
	ac := c.w.Sub(a.w)
	ap := a.w.Negate()
	d1, d2 := ab.Dot(ap), ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		s := vertexSimplex(a)
		s.lambda[0] = 1
		return s
	}

	bp := b.w.Negate()
	d3, d4 := ab.Dot(bp), ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		s := vertexSimplex(b)
		s.lambda[0] = 1
		return s
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		s := vertexSimplex(a, b)
		s.lambda[0], s.lambda[1] = 1-v, v
		return s
	}

	cp := c.w.Negate()
	d5, d6 := ab.Dot(cp), ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		s := vertexSimplex(c)
		s.lambda[0] = 1
		return s
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		s := vertexSimplex(a, c)
		s.lambda[0], s.lambda[1] = 1-w, w
		return s
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		s := vertexSimplex(b, c)
		s.lambda[0], s.lambda[1] = 1-w, w
		return s
	}

	sum := va + vb + vc
	if sum <= 0 {
		// Degenerate triangle: the closest point is on one of its edges.
		best := closestSegment(a, b)
		for _, e := range [2]simplex[T]{closestSegment(b, c), closestSegment(a, c)} {
			if e.closest().Hypot2() < best.closest().Hypot2() {
				best = e
			}
		}
		return best
	}
	v, w := vb/sum, vc/sum
	s := vertexSimplex(a, b, c)
	s.lambda[0], s.lambda[1], s.lambda[2] = 1-v-w, v, w
	return s
}

// closestTetrahedron reports true if the origin lies inside the tetrahedron,
// in which case the simplex keeps all four vertices with the origin's
// barycentric weights. Otherwise the closest point lies on one of the faces
// that have the origin on their outer side.
func closestTetrahedron[T Real](a, b, c, d simplexVertex[T]) (simplex[T], bool) {
	faces := [4][4]simplexVertex[T]{
		{a, b, c, d},
		{a, c, d, b},
		{a, d, b, c},
		{b, d, c, a},
	}
	var best simplex[T]
	bestDist := inf[T](1)
	outside := false
	for _, f := range faces {
		if !originOutside(f[0].w, f[1].w, f[2].w, f[3].w) {
			continue
		}
		outside = true
		s := closestTriangle(f[0], f[1], f[2])
		if d := s.closest().Hypot2(); d < bestDist {
			best, bestDist = s, d
		}
	}
	if outside {
		return best, false
	}

	ab, ac, ad := b.w.Sub(a.w), c.w.Sub(a.w), d.w.Sub(a.w)
	ao := a.w.Negate()
	det := ab.Dot(ac.Cross(ad))
	s := vertexSimplex(a, b, c, d)
	s.lambda[1] = ao.Dot(ac.Cross(ad)) / det
	s.lambda[2] = ab.Dot(ao.Cross(ad)) / det
	s.lambda[3] = ab.Dot(ac.Cross(ao)) / det
	s.lambda[0] = 1 - s.lambda[1] - s.lambda[2] - s.lambda[3]
	return s, true
}

// originOutside reports whether the origin and d lie on opposite sides of the
// plane through a, b and c. A d on the plane makes the tetrahedron flat, and
// every face counts as having the origin outside.
func originOutside[T Real](a, b, c, d Vec3[T]) bool {
	n := b.Sub(a).Cross(c.Sub(a))
	so := -a.Dot(n)
	sd := d.Sub(a).Dot(n)
	if sd == 0 {
		return true
	}
	return so*sd < 0
}

// DistConvex3 returns the distance between two convex shapes, described by
// their support functions, using the Gilbert–Johnson–Keerthi algorithm.
//
// The algorithm iteratively refines a simplex inside the Minkowski difference
// A − B towards the origin. It terminates when the next support point fails to
// improve the distance estimate v by more than tol.Relative·|v|², when the
// origin is enclosed, or after tol.MaxIterations iterations, in which case the
// current estimate is returned. The closest points are recovered from the
// barycentric weights of the final simplex. Intersecting shapes have distance
// zero and a common closest point inside both.
func DistConvex3[T Real](a, b Support3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	d0 := Vec3[T]{1, 0, 0}
	sa, sb := a.Support(d0), b.Support(d0.Negate())
	v := sa.Sub(sb)
	s := simplex[T]{v: [4]simplexVertex[T]{{w: v, a: sa, b: sb}}, lambda: [4]T{1}, n: 1}

	for range tol.iterations() {
		vv := v.Hypot2()
		if vv == 0 {
			break
		}
		sa, sb := a.Support(v.Negate()), b.Support(v)
		w := sa.Sub(sb)
		if s.contains(w) || vv-v.Dot(w) <= tol.Relative*vv {
			break
		}
		next := s
		next.v[next.n] = simplexVertex[T]{w: w, a: sa, b: sb}
		next.n++
		inside := next.reduce()
		if inside {
			s = next
			v = Vec3[T]{}
			break
		}
		nv := next.closest()
		if nv.Hypot2() >= vv {
			// No progress; numerical noise has taken over.
			break
		}
		s, v = next, nv
		if v.Hypot2() <= tol.Relative*tol.Relative*s.maxNorm2() {
			v = Vec3[T]{}
			break
		}
	}

	pa, pb := s.witnesses()
	if v == (Vec3[T]{}) {
		return newDistanceResult(pa, pa)
	}
	return newDistanceResult(pa, pb)
}

func DistAlignedBox3OrientedBox3[T Real](a AlignedBox3[T], b OrientedBox3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	return DistConvex3[T](a, b, tol)
}

func DistAlignedBox3AlignedBox3[T Real](a, b AlignedBox3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	return DistConvex3[T](a, b, tol)
}

func DistOrientedBox3OrientedBox3[T Real](a, b OrientedBox3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	return DistConvex3[T](a, b, tol)
}

func DistRectangle3OrientedBox3[T Real](r Rectangle3[T], b OrientedBox3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	return DistConvex3[T](r, b, tol)
}

func DistTriangle3OrientedBox3[T Real](t Triangle3[T], b OrientedBox3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	return DistConvex3[T](t, b, tol)
}

func DistTriangle3Triangle3[T Real](t0, t1 Triangle3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	return DistConvex3[T](t0, t1, tol)
}

func DistTriangle3Rectangle3[T Real](t Triangle3[T], r Rectangle3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	return DistConvex3[T](t, r, tol)
}

func DistRectangle3Rectangle3[T Real](r0, r1 Rectangle3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	return DistConvex3[T](r0, r1, tol)
}

// DistSegment3OrientedBox3 returns the distance between a segment and a box.
// Parameter[0] is the segment parameter of the closest point.
func DistSegment3OrientedBox3[T Real](s Segment3[T], b OrientedBox3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	r := DistConvex3[T](s, b, tol)
	r.Parameter[0] = s.linear().project(r.ClosestPoint[0])
	return r
}

func DistSegment3AlignedBox3[T Real](s Segment3[T], b AlignedBox3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	r := DistConvex3[T](s, b, tol)
	r.Parameter[0] = s.linear().project(r.ClosestPoint[0])
	return r
}

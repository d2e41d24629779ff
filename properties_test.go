package geom

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

const propertyRuns = 500

func randFloat(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func randVec3(rng *rand.Rand, r float64) Vec3[float64] {
	return V3(randFloat(rng, -r, r), randFloat(rng, -r, r), randFloat(rng, -r, r))
}

func randSegment3(rng *rand.Rand) Segment3[float64] {
	return Segment3[float64]{P0: randVec3(rng, 5), P1: randVec3(rng, 5)}
}

func randQuaternion(rng *rand.Rand) Quaternion[float64] {
	axis, ok := Normalize(randVec3(rng, 1))
	if !ok {
		return IdentityQuaternion[float64]()
	}
	return QuatAxisAngle(axis, randFloat(rng, 0, 2*math.Pi))
}

func randOrientedBox3(rng *rand.Rand) OrientedBox3[float64] {
	extent := V3(randFloat(rng, 0.1, 2), randFloat(rng, 0.1, 2), randFloat(rng, 0.1, 2))
	return NewOrientedBox3(randVec3(rng, 4), extent, randQuaternion(rng))
}

func randTriangle3(rng *rand.Rand) Triangle3[float64] {
	c := randVec3(rng, 4)
	return Tri(c.Add(randVec3(rng, 2)), c.Add(randVec3(rng, 2)), c.Add(randVec3(rng, 2)))
}

// checkDistance verifies the invariants shared by all distance results: a
// non-negative distance that matches its square and the distance between the
// closest points.
func checkDistance[V Vector[float64, V]](t *testing.T, r DistanceResult[float64, V]) {
	t.Helper()
	if r.Distance < 0 || math.IsNaN(r.Distance) {
		t.Fatalf("got distance %v", r.Distance)
	}
	if math.Abs(r.Distance*r.Distance-r.SqrDistance) > 1e-9*(1+r.SqrDistance) {
		t.Errorf("distance %v doesn't match squared distance %v", r.Distance, r.SqrDistance)
	}
	if d := Distance[float64](r.ClosestPoint[0], r.ClosestPoint[1]); math.Abs(d-r.Distance) > 1e-6*(1+r.Distance) {
		t.Errorf("closest points %s and %s are %v apart, expected %v", r.ClosestPoint[0], r.ClosestPoint[1], d, r.Distance)
	}
}

func TestPropertySegmentSegment(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	tol := DefaultTolerance[float64]()
	type result = DistanceResult[float64, Vec3[float64]]
	q := FindFunc[Segment3[float64], Segment3[float64], result](func(a, b Segment3[float64]) result {
		return DistSegmentSegment(a, b, tol)
	})
	swapped := Swapped[Segment3[float64], Segment3[float64], result](q, result.Swap)

	for range propertyRuns {
		a, b := randSegment3(rng), randSegment3(rng)
		r := q.Find(a, b)
		checkDistance(t, r)

		// The closest points lie on the segments at the reported parameters.
		diff(t, a.Eval(r.Parameter[0]), r.ClosestPoint[0], cmpopts.EquateApprox(0, 1e-9))
		diff(t, b.Eval(r.Parameter[1]), r.ClosestPoint[1], cmpopts.EquateApprox(0, 1e-9))
		for _, s := range r.Parameter {
			if s < 0 || s > 1 {
				t.Fatalf("parameter %v outside of [0, 1]", s)
			}
		}

		// Symmetry.
		rs := swapped.Find(b, a)
		diff(t, r.Distance, rs.Distance, cmpopts.EquateApprox(0, 1e-9))

		// No point of either segment is closer than the reported distance.
		for range 8 {
			p0 := a.Eval(rng.Float64())
			p1 := b.Eval(rng.Float64())
			if Distance(p0, p1) < r.Distance-1e-9 {
				t.Fatalf("points %s and %s are closer than %v", p0, p1, r.Distance)
			}
		}

		// Translation invariance.
		off := randVec3(rng, 100)
		rt := DistSegmentSegment(
			Segment3[float64]{P0: a.P0.Add(off), P1: a.P1.Add(off)},
			Segment3[float64]{P0: b.P0.Add(off), P1: b.P1.Add(off)},
			tol)
		diff(t, r.Distance, rt.Distance, cmpopts.EquateApprox(0, 1e-7))
	}
}

func TestPropertyCrossingSegments(t *testing.T) {
	// Components that cross at a point computed in floating point must
	// report an exact contact.
	rng := rand.New(rand.NewPCG(11, 12))
	tol := DefaultTolerance[float64]()
	crossing := func(p, d Vec3[float64]) Segment3[float64] {
		return Segment3[float64]{P0: p.Sub(d.Mul(randFloat(rng, 0.1, 1))), P1: p.Add(d.Mul(randFloat(rng, 0.1, 1)))}
	}
	for range propertyRuns {
		// In the plane.
		p2 := Vec(randFloat(rng, -3, 3), randFloat(rng, -3, 3))
		d0, d1 := Vec(randFloat(rng, -1, 1), randFloat(rng, -1, 1)), Vec(randFloat(rng, -1, 1), randFloat(rng, -1, 1))
		if abs(d0.Cross(d1)) > 0.1*d0.Hypot()*d1.Hypot() {
			a := Segment2[float64]{P0: p2.Sub(d0.Mul(randFloat(rng, 0.1, 1))), P1: p2.Add(d0.Mul(randFloat(rng, 0.1, 1)))}
			b := Segment2[float64]{P0: p2.Sub(d1.Mul(randFloat(rng, 0.1, 1))), P1: p2.Add(d1.Mul(randFloat(rng, 0.1, 1)))}
			r := DistSegmentSegment(a, b, tol)
			if !r.Intersect() || r.SqrDistance != 0 || r.ClosestPoint[0] != r.ClosestPoint[1] {
				t.Errorf("crossing segments %v and %v: got distance %v", a, b, r.Distance)
			}
		}

		// In space.
		p3 := randVec3(rng, 3)
		e0, e1 := randVec3(rng, 1), randVec3(rng, 1)
		if e0.Cross(e1).Hypot() > 0.1*e0.Hypot()*e1.Hypot() {
			a, b := crossing(p3, e0), crossing(p3, e1)
			if r := DistSegmentSegment(a, b, tol); !r.Intersect() {
				t.Errorf("crossing segments %v and %v: got distance %v", a, b, r.Distance)
			}
		}

		// A segment in the plane of a triangle, crossing one of its edges.
		tri := randTriangle3(rng)
		if Normal(tri).Hypot() < 0.5 {
			continue
		}
		x := tri.V[0].Lerp(tri.V[1], randFloat(rng, 0.2, 0.8))
		w := tri.V[2].Sub(x).Mul(0.5)
		seg := Segment3[float64]{P0: x.Sub(w), P1: x.Add(w)}
		if r := DistSegment3Triangle3(seg, tri, tol); !r.Intersect() {
			t.Errorf("segment %v crossing triangle %v: got distance %v", seg, tri, r.Distance)
		}
	}
}

func TestPropertyRepeatable(t *testing.T) {
	// Repeated calls with the same input give bit-identical results.
	rng := rand.New(rand.NewPCG(13, 14))
	tol := DefaultTolerance[float64]()
	for range propertyRuns / 5 {
		s0, s1 := randSegment3(rng), randSegment3(rng)
		if DistSegmentSegment(s0, s1, tol) != DistSegmentSegment(s0, s1, tol) {
			t.Errorf("segment distance differs between calls for %v and %v", s0, s1)
		}
		b0, b1 := randOrientedBox3(rng), randOrientedBox3(rng)
		if DistOrientedBox3OrientedBox3(b0, b1, tol) != DistOrientedBox3OrientedBox3(b0, b1, tol) {
			t.Errorf("box distance differs between calls for %v and %v", b0, b1)
		}
		if TestOrientedBox3OrientedBox3(b0, b1, tol) != TestOrientedBox3OrientedBox3(b0, b1, tol) {
			t.Errorf("box test differs between calls for %v and %v", b0, b1)
		}
		t0, t1 := randTriangle3(rng), randTriangle3(rng)
		if DistTriangle3Triangle3(t0, t1, tol) != DistTriangle3Triangle3(t0, t1, tol) {
			t.Errorf("triangle distance differs between calls for %v and %v", t0, t1)
		}
		e := NewEllipsoid3(randVec3(rng, 2), V3(randFloat(rng, 0.5, 3), randFloat(rng, 0.5, 3), randFloat(rng, 0.5, 3)), randQuaternion(rng))
		pt := randVec3(rng, 6)
		if DistPointEllipsoid3(pt, e, tol) != DistPointEllipsoid3(pt, e, tol) {
			t.Errorf("ellipsoid distance differs between calls for %v and %v", pt, e)
		}
		a := Sphere3[float64]{Center: randVec3(rng, 2), Radius: randFloat(rng, 0.5, 2)}
		b := Sphere3[float64]{Center: randVec3(rng, 2), Radius: randFloat(rng, 0.5, 2)}
		if FindSphere3Sphere3(a, b, tol) != FindSphere3Sphere3(a, b, tol) {
			t.Errorf("sphere intersection differs between calls for %v and %v", a, b)
		}
		c := Cylinder3[float64]{Axis: Line3[float64]{Origin: randVec3(rng, 1), Direction: randQuaternion(rng).Rotate(UnitZ[float64]())}, Radius: 1, Height: 3}
		if FindSegment3Cylinder3(s0, c, tol) != FindSegment3Cylinder3(s0, c, tol) {
			t.Errorf("cylinder intersection differs between calls for %v and %v", s0, c)
		}
		q0 := Tri(Vec(s0.P0.X, s0.P0.Y), Vec(s0.P1.X, s0.P1.Y), Vec(s1.P0.X, s1.P0.Y))
		q1 := Tri(Vec(s1.P1.X, s1.P1.Y), Vec(t0.V[0].X, t0.V[0].Y), Vec(t0.V[1].X, t0.V[1].Y))
		diff(t, FindTriangle2Triangle2(q0, q1), FindTriangle2Triangle2(q0, q1))
	}
}

func TestPropertyPointDistances(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	tol := DefaultTolerance[float64]()

	type shape struct {
		name string
		dist func(pt Vec3[float64]) DistanceResult[float64, Vec3[float64]]
	}
	for range propertyRuns / 10 {
		box := randOrientedBox3(rng)
		tri := randTriangle3(rng)
		seg := randSegment3(rng)
		sphere := Sphere3[float64]{Center: randVec3(rng, 3), Radius: randFloat(rng, 0.1, 3)}
		shapes := []shape{
			{"box", func(pt Vec3[float64]) DistanceResult[float64, Vec3[float64]] { return DistPointOrientedBox3(pt, box) }},
			{"triangle", func(pt Vec3[float64]) DistanceResult[float64, Vec3[float64]] { return DistPointTriangle(pt, tri, tol) }},
			{"segment", func(pt Vec3[float64]) DistanceResult[float64, Vec3[float64]] { return DistPointSegment(pt, seg) }},
			{"sphere", func(pt Vec3[float64]) DistanceResult[float64, Vec3[float64]] { return DistPointHypersphere(pt, sphere) }},
		}
		for _, s := range shapes {
			for range 10 {
				p, q := randVec3(rng, 8), randVec3(rng, 8)
				rp, rq := s.dist(p), s.dist(q)
				checkDistance(t, rp)

				// The closest point is its own closest point.
				if d := s.dist(rp.ClosestPoint[1]).Distance; d > 1e-9 {
					t.Errorf("%s: closest point %s is %v away from the shape", s.name, rp.ClosestPoint[1], d)
				}
				// Distance to a shape is 1-Lipschitz.
				if math.Abs(rp.Distance-rq.Distance) > Distance(p, q)+1e-9 {
					t.Errorf("%s: distances %v and %v differ by more than |p−q| = %v", s.name, rp.Distance, rq.Distance, Distance(p, q))
				}
			}
		}
	}
}

func TestPropertyBoxesSATAndGJK(t *testing.T) {
	// The separating axis test and the convex distance engine must agree on
	// whether two boxes intersect, away from touching configurations.
	rng := rand.New(rand.NewPCG(5, 6))
	tol := DefaultTolerance[float64]()
	var hits, misses int
	for range propertyRuns {
		a, b := randOrientedBox3(rng), randOrientedBox3(rng)
		d := DistOrientedBox3OrientedBox3(a, b, tol)
		checkDistance(t, d)
		sat := TestOrientedBox3OrientedBox3(a, b, tol).Intersect
		switch {
		case d.Distance > 1e-6 && sat:
			t.Errorf("boxes %v and %v are %v apart but the axis test reports an intersection", a, b, d.Distance)
		case d.Distance == 0 && !sat:
			t.Errorf("boxes %v and %v overlap but the axis test reports none", a, b)
		}
		if sat {
			hits++
		} else {
			misses++
		}

		// Both closest points lie in their boxes.
		if d.Distance > 0 {
			inflate := func(b OrientedBox3[float64]) OrientedBox3[float64] {
				b.Extent = b.Extent.Add(V3(1e-6, 1e-6, 1e-6))
				return b
			}
			if !inflate(a).Contains(d.ClosestPoint[0]) || !inflate(b).Contains(d.ClosestPoint[1]) {
				t.Errorf("closest points %s and %s aren't on the boxes", d.ClosestPoint[0], d.ClosestPoint[1])
			}
		}
	}
	if hits == 0 || misses == 0 {
		t.Fatalf("degenerate sample: %d intersecting and %d disjoint pairs", hits, misses)
	}
}

func TestPropertyTrianglesSATAndClipping(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	randTri := func() Triangle2[float64] {
		c := Vec(randFloat(rng, -3, 3), randFloat(rng, -3, 3))
		v := func() Vec2[float64] { return c.Add(Vec(randFloat(rng, -2, 2), randFloat(rng, -2, 2))) }
		return Tri(v(), v(), v())
	}
	for range propertyRuns {
		a, b := randTri(), randTri()
		sat := TestTriangle2Triangle2(a, b).Intersect
		r := FindTriangle2Triangle2(a, b)
		// A polygon with area implies overlap. The converse fails only for
		// triangles that touch without overlapping.
		if r.Intersect && !sat {
			t.Errorf("triangles %v and %v overlap in %v but the axis test reports no intersection", a, b, r.Polygon)
		}
		if r.Intersect {
			if area := r.Polygon.Area(); area <= 0 || area > math.Abs(SignedArea(a))+1e-9 || area > math.Abs(SignedArea(b))+1e-9 {
				t.Errorf("got intersection area %v for triangles of area %v and %v", area, SignedArea(a), SignedArea(b))
			}
		}
		diff(t, sat, TestTriangle2Triangle2(b, a).Intersect)
	}
}

func TestPropertyFloat32(t *testing.T) {
	// Single precision results track double precision ones.
	rng := rand.New(rand.NewPCG(9, 10))
	tol32 := DefaultTolerance[float32]()
	tol64 := DefaultTolerance[float64]()
	to32 := func(v Vec3[float64]) Vec3[float32] {
		return V3(float32(v.X), float32(v.Y), float32(v.Z))
	}
	for range propertyRuns / 5 {
		a, b := randSegment3(rng), randSegment3(rng)
		r64 := DistSegmentSegment(a, b, tol64)
		r32 := DistSegmentSegment(
			Segment3[float32]{P0: to32(a.P0), P1: to32(a.P1)},
			Segment3[float32]{P0: to32(b.P0), P1: to32(b.P1)},
			tol32)
		if math.Abs(float64(r32.Distance)-r64.Distance) > 1e-3 {
			t.Errorf("float32 distance %v differs from float64 distance %v", r32.Distance, r64.Distance)
		}

		pt := randVec3(rng, 5)
		s := Sphere3[float64]{Center: randVec3(rng, 2), Radius: 1.5}
		d64 := DistPointHypersphere(pt, s)
		d32 := DistPointHypersphere(to32(pt), Sphere3[float32]{Center: to32(s.Center), Radius: 1.5})
		if math.Abs(float64(d32.Distance)-d64.Distance) > 1e-4 {
			t.Errorf("float32 distance %v differs from float64 distance %v", d32.Distance, d64.Distance)
		}
	}
}

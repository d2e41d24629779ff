package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func unitBox3() AlignedBox3[float64] {
	return AlignedBox3[float64]{Min: V3(-1.0, -1.0, -1.0), Max: V3(1.0, 1.0, 1.0)}
}

func identityAxes() [3]Vec3[float64] {
	return [3]Vec3[float64]{UnitX[float64](), UnitY[float64](), UnitZ[float64]()}
}

func TestDistPointSegmentEndpoint(t *testing.T) {
	s := Segment3[float64]{P0: V3(1.0, 0.0, 0.0), P1: V3(3.0, 0.0, 0.0)}
	r := DistPointSegment(V3(0.0, 0.0, 0.0), s)
	diff(t, 1.0, r.Distance)
	diff(t, 1.0, r.SqrDistance)
	diff(t, V3(1.0, 0.0, 0.0), r.ClosestPoint[1])
	diff(t, 0.0, r.Parameter[1])

	r32 := DistPointSegment(V3[float32](0, 0, 0), Segment3[float32]{P0: V3[float32](1, 0, 0), P1: V3[float32](3, 0, 0)})
	diff(t, float32(1), r32.Distance)
}

func TestDistAlignedBoxOrientedBox(t *testing.T) {
	b := OrientedBox3[float64]{
		Center: V3(2.5, 3.0, 3.5),
		Axis:   identityAxes(),
		Extent: V3(0.5, 1.0, 1.5),
	}
	r := DistAlignedBox3OrientedBox3(unitBox3(), b, DefaultTolerance[float64]())
	diff(t, math.Sqrt(3), r.Distance, approx)
	diff(t, [2]Vec3[float64]{V3(1.0, 1.0, 1.0), V3(2.0, 2.0, 2.0)}, r.ClosestPoint, approx)
	if r.Intersect() {
		t.Error("disjoint boxes reported as intersecting")
	}

	a32 := AlignedBox3[float32]{Min: V3[float32](-1, -1, -1), Max: V3[float32](1, 1, 1)}
	b32 := OrientedBox3[float32]{
		Center: V3[float32](2.5, 3, 3.5),
		Axis:   [3]Vec3[float32]{UnitX[float32](), UnitY[float32](), UnitZ[float32]()},
		Extent: V3[float32](0.5, 1, 1.5),
	}
	r32 := DistAlignedBox3OrientedBox3(a32, b32, DefaultTolerance[float32]())
	diff(t, float32(math.Sqrt(3)), r32.Distance, cmpopts.EquateApprox(0, 1e-5))
}

func TestDistSegmentSegmentParallel(t *testing.T) {
	s0 := Segment3[float64]{P0: V3(0.0, 0.0, 0.0), P1: V3(1.0, 0.0, 0.0)}
	s1 := Segment3[float64]{P0: V3(3.0, 1.0, 0.0), P1: V3(5.0, 1.0, 0.0)}
	r := DistSegmentSegment(s0, s1, DefaultTolerance[float64]())
	diff(t, math.Sqrt(5), r.Distance, approx)
	diff(t, [2]Vec3[float64]{V3(1.0, 0.0, 0.0), V3(3.0, 1.0, 0.0)}, r.ClosestPoint)
	diff(t, [2]float64{1, 0}, r.Parameter)

	// Reversing the second segment doesn't change the closest pair.
	r = DistSegmentSegment(s0, s1.Reverse(), DefaultTolerance[float64]())
	diff(t, [2]Vec3[float64]{V3(1.0, 0.0, 0.0), V3(3.0, 1.0, 0.0)}, r.ClosestPoint)
	diff(t, [2]float64{1, 1}, r.Parameter)
}

func TestDistSegmentSegmentOverlapping(t *testing.T) {
	// Overlapping collinear segments: every point of the overlap is closest,
	// and the one with the smallest parameter on the first segment wins.
	s0 := Segment2[float64]{P0: Vec(0.0, 0.0), P1: Vec(4.0, 0.0)}
	s1 := Segment2[float64]{P0: Vec(2.0, 0.0), P1: Vec(6.0, 0.0)}
	r := DistSegmentSegment(s0, s1, DefaultTolerance[float64]())
	diff(t, 0.0, r.Distance)
	diff(t, 0.5, r.Parameter[0])
	diff(t, Vec(2.0, 0.0), r.ClosestPoint[0])
}

func TestDistSegmentSegmentCrossing(t *testing.T) {
	// The closest points of these segments are evaluated a rounding error
	// apart.
	s0 := Segment2[float64]{P0: Vec(-0.1294, 1.0924), P1: Vec(0.3981, 0.6025)}
	s1 := Segment2[float64]{P0: Vec(0.1357, 0.8626), P1: Vec(0.1266, 0.7616)}
	r := DistSegmentSegment(s0, s1, DefaultTolerance[float64]())
	if !r.Intersect() {
		t.Fatalf("crossing segments are %v apart", r.Distance)
	}
	diff(t, 0.0, r.SqrDistance)
	diff(t, r.ClosestPoint[0], r.ClosestPoint[1])
	diff(t, Vec(0.134336158234, 0.847462855130), r.ClosestPoint[0], approx)
	diff(t, [2]float64{0.49997375968618, 0.14987272148773}, r.Parameter, approx)
}

func TestDistLinearLinear(t *testing.T) {
	tol := DefaultTolerance[float64]()
	x := UnitX[float64]()
	y := UnitY[float64]()

	tests := []struct {
		name   string
		r      DistanceResult[float64, Vec3[float64]]
		dist   float64
		params [2]float64
		points [2]Vec3[float64]
	}{
		{
			"skew lines",
			DistLineLine(Line3[float64]{Direction: x}, Line3[float64]{Origin: V3(0.0, 0.0, 1.0), Direction: y}, tol),
			1, [2]float64{0, 0}, [2]Vec3[float64]{V3(0.0, 0.0, 0.0), V3(0.0, 0.0, 1.0)},
		},
		{
			"crossing segments",
			DistSegmentSegment(
				Segment3[float64]{P0: V3(0.0, 0.0, 0.0), P1: V3(2.0, 2.0, 0.0)},
				Segment3[float64]{P0: V3(0.0, 2.0, 0.0), P1: V3(2.0, 0.0, 0.0)}, tol),
			0, [2]float64{0.5, 0.5}, [2]Vec3[float64]{V3(1.0, 1.0, 0.0), V3(1.0, 1.0, 0.0)},
		},
		{
			"diverging rays",
			DistRayRay(Ray3[float64]{Direction: x}, Ray3[float64]{Origin: V3(-1.0, 1.0, 0.0), Direction: x.Negate()}, tol),
			math.Sqrt(2), [2]float64{0, 0}, [2]Vec3[float64]{V3(0.0, 0.0, 0.0), V3(-1.0, 1.0, 0.0)},
		},
		{
			"line and segment beyond its end",
			DistLineSegment(Line3[float64]{Direction: x}, Segment3[float64]{P0: V3(0.0, 1.0, 1.0), P1: V3(0.0, 1.0, 3.0)}, tol),
			math.Sqrt(2), [2]float64{0, 0}, [2]Vec3[float64]{V3(0.0, 0.0, 0.0), V3(0.0, 1.0, 1.0)},
		},
		{
			"line and ray",
			DistLineRay(Line3[float64]{Direction: x}, Ray3[float64]{Origin: V3(2.0, 0.0, 3.0), Direction: V3(0.0, 0.0, -1.0)}, tol),
			0, [2]float64{2, 3}, [2]Vec3[float64]{V3(2.0, 0.0, 0.0), V3(2.0, 0.0, 0.0)},
		},
		{
			"ray and segment",
			DistRaySegment(Ray3[float64]{Direction: x}, Segment3[float64]{P0: V3(-3.0, 1.0, 0.0), P1: V3(-3.0, 5.0, 0.0)}, tol),
			math.Sqrt(10), [2]float64{0, 0}, [2]Vec3[float64]{V3(0.0, 0.0, 0.0), V3(-3.0, 1.0, 0.0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.dist, tt.r.Distance, approx)
			diff(t, tt.params, tt.r.Parameter, approx)
			diff(t, tt.points, tt.r.ClosestPoint, approx)
		})
	}
}

func TestDistPointShapes(t *testing.T) {
	tol := DefaultTolerance[float64]()
	s := math.Sqrt2 / 2

	tests := []struct {
		name    string
		r       DistanceResult[float64, Vec3[float64]]
		dist    float64
		closest Vec3[float64]
	}{
		{
			"line",
			DistPointLine(V3(1.0, 2.0, 0.0), Line3[float64]{Direction: V3(2.0, 0.0, 0.0)}),
			2, V3(1.0, 0.0, 0.0),
		},
		{
			"ray behind origin",
			DistPointRay(V3(-1.0, 1.0, 0.0), Ray3[float64]{Direction: UnitX[float64]()}),
			math.Sqrt2, V3(0.0, 0.0, 0.0),
		},
		{
			"box inside",
			DistPointAlignedBox(V3(0.5, 0.0, -0.5), unitBox3()),
			0, V3(0.5, 0.0, -0.5),
		},
		{
			"box outside",
			DistPointAlignedBox(V3(3.0, 0.5, -2.0), unitBox3()),
			math.Sqrt(5), V3(1.0, 0.5, -1.0),
		},
		{
			"oriented box",
			DistPointOrientedBox3(V3(5.0, 0.0, 0.0), NewOrientedBox3(V3(0.0, 0.0, 0.0), V3(1.0, 1.0, 1.0), QuatAxisAngle(UnitZ[float64](), math.Pi/4))),
			5 - math.Sqrt2, V3(math.Sqrt2, 0.0, 0.0),
		},
		{
			"sphere",
			DistPointHypersphere(V3(0.0, 3.0, 4.0), Sphere3[float64]{Radius: 1}),
			4, V3(0.0, 0.6, 0.8),
		},
		{
			"plane below",
			DistPointPlane3(V3(1.0, 2.0, -1.0), Plane3[float64]{Normal: UnitZ[float64](), Constant: 1}),
			2, V3(1.0, 2.0, 1.0),
		},
		{
			"halfspace outside",
			DistPointHalfspace3(V3(1.0, 2.0, -1.0), Halfspace3[float64]{Normal: UnitZ[float64](), Constant: 1}),
			2, V3(1.0, 2.0, 1.0),
		},
		{
			"halfspace inside",
			DistPointHalfspace3(V3(1.0, 2.0, 3.0), Halfspace3[float64]{Normal: UnitZ[float64](), Constant: 1}),
			0, V3(1.0, 2.0, 3.0),
		},
		{
			"triangle face",
			DistPointTriangle(V3(0.25, 0.25, 1.0), Tri(V3(0.0, 0.0, 0.0), V3(1.0, 0.0, 0.0), V3(0.0, 1.0, 0.0)), tol),
			1, V3(0.25, 0.25, 0.0),
		},
		{
			"triangle vertex",
			DistPointTriangle(V3(2.0, -1.0, 0.0), Tri(V3(0.0, 0.0, 0.0), V3(1.0, 0.0, 0.0), V3(0.0, 1.0, 0.0)), tol),
			math.Sqrt2, V3(1.0, 0.0, 0.0),
		},
		{
			"degenerate triangle",
			DistPointTriangle(V3(1.0, 1.0, 0.0), Tri(V3(0.0, 0.0, 0.0), V3(1.0, 0.0, 0.0), V3(2.0, 0.0, 0.0)), tol),
			1, V3(1.0, 0.0, 0.0),
		},
		{
			"rectangle",
			DistPointRectangle3(V3(3.0, 0.0, 4.0), Rectangle3[float64]{
				Axis:   [2]Vec3[float64]{UnitX[float64](), UnitY[float64]()},
				Extent: Vec(2.0, 1.0),
			}),
			math.Sqrt(17), V3(2.0, 0.0, 0.0),
		},
		{
			"capsule side",
			DistPointCapsule3(V3(3.0, 0.0, 1.0), Capsule3[float64]{Segment: Segment3[float64]{P1: V3(0.0, 0.0, 2.0)}, Radius: 1}),
			2, V3(1.0, 0.0, 1.0),
		},
		{
			"capsule cap",
			DistPointCapsule3(V3(0.0, 0.0, 4.0), Capsule3[float64]{Segment: Segment3[float64]{P1: V3(0.0, 0.0, 2.0)}, Radius: 1}),
			1, V3(0.0, 0.0, 3.0),
		},
		{
			"cylinder side",
			DistPointCylinder3(V3(3.0, 0.0, 0.0), Cylinder3[float64]{Axis: Line3[float64]{Direction: UnitZ[float64]()}, Radius: 1, Height: 2}),
			2, V3(1.0, 0.0, 0.0),
		},
		{
			"cylinder rim",
			DistPointCylinder3(V3(3.0, 0.0, 3.0), Cylinder3[float64]{Axis: Line3[float64]{Direction: UnitZ[float64]()}, Radius: 1, Height: 2}),
			2 * math.Sqrt2, V3(1.0, 0.0, 1.0),
		},
		{
			"cylinder inside",
			DistPointCylinder3(V3(0.5, 0.0, 0.0), Cylinder3[float64]{Axis: Line3[float64]{Direction: UnitZ[float64]()}, Radius: 1, Height: 2}),
			0, V3(0.5, 0.0, 0.0),
		},
		{
			"cone side",
			DistPointCone3(V3(1.0, 0.0, 0.0), NewCone(Ray3[float64]{Direction: UnitZ[float64]()}, math.Pi/4)),
			s, V3(0.5, 0.0, 0.5),
		},
		{
			"cone inside",
			DistPointCone3(V3(0.0, 0.5, 2.0), NewCone(Ray3[float64]{Direction: UnitZ[float64]()}, math.Pi/4)),
			0, V3(0.0, 0.5, 2.0),
		},
		{
			"frustum below",
			DistPointCone3(V3(0.0, 0.0, 2.0), NewConeFrustum(Ray3[float64]{Direction: UnitZ[float64]()}, math.Pi/4, 3, 5)),
			1, V3(0.0, 0.0, 3.0),
		},
		{
			"frustum above",
			DistPointCone3(V3(1.0, 0.0, 7.0), NewConeFrustum(Ray3[float64]{Direction: UnitZ[float64]()}, math.Pi/4, 3, 5)),
			2, V3(1.0, 0.0, 5.0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.dist, tt.r.Distance, approx)
			diff(t, tt.dist*tt.dist, tt.r.SqrDistance, approx)
			diff(t, tt.closest, tt.r.ClosestPoint[1], approx)
		})
	}
}

func TestDistPointOrientedBox2(t *testing.T) {
	b := NewOrientedBox2(Vec(0.0, 0.0), Vec(1.0, 1.0), math.Pi/4)
	r := DistPointOrientedBox2(Vec(2.0, 0.0), b)
	diff(t, 2-math.Sqrt2, r.Distance, approx)
	diff(t, Vec(math.Sqrt2, 0.0), r.ClosestPoint[1], approx)

	r = DistPointOrientedBox2(Vec(0.5, 0.5), b)
	diff(t, 0.0, r.Distance)
}

func TestDistLinearFace(t *testing.T) {
	tol := DefaultTolerance[float64]()
	tri := Tri(V3(0.0, 0.0, 0.0), V3(4.0, 0.0, 0.0), V3(0.0, 4.0, 0.0))

	r := DistSegment3Triangle3(Segment3[float64]{P0: V3(1.0, 1.0, -1.0), P1: V3(1.0, 1.0, 1.0)}, tri, tol)
	diff(t, 0.0, r.Distance, approx)
	diff(t, 0.5, r.Parameter[0], approx)
	diff(t, V3(1.0, 1.0, 0.0), r.ClosestPoint[1], approx)

	r = DistSegment3Triangle3(Segment3[float64]{P0: V3(1.0, 1.0, 1.0), P1: V3(1.0, 1.0, 3.0)}, tri, tol)
	diff(t, 1.0, r.Distance, approx)
	diff(t, 0.0, r.Parameter[0], approx)
	diff(t, [2]Vec3[float64]{V3(1.0, 1.0, 1.0), V3(1.0, 1.0, 0.0)}, r.ClosestPoint, approx)

	// A line parallel to the triangle's plane, passing over an edge.
	r = DistLine3Triangle3(Line3[float64]{Origin: V3(0.0, -1.0, 2.0), Direction: UnitX[float64]()}, tri, tol)
	diff(t, math.Sqrt(5), r.Distance, approx)

	r = DistRay3Triangle3(Ray3[float64]{Origin: V3(1.0, 1.0, 2.0), Direction: UnitZ[float64]()}, tri, tol)
	diff(t, 2.0, r.Distance, approx)
	diff(t, V3(1.0, 1.0, 2.0), r.ClosestPoint[0], approx)

	rect := Rectangle3[float64]{
		Axis:   [2]Vec3[float64]{UnitX[float64](), UnitY[float64]()},
		Extent: Vec(1.0, 1.0),
	}
	r = DistLine3Rectangle3(Line3[float64]{Origin: V3(3.0, 0.0, 1.0), Direction: UnitY[float64]()}, rect, tol)
	diff(t, math.Sqrt(5), r.Distance, approx)
	r = DistSegment3Rectangle3(Segment3[float64]{P0: V3(0.5, 0.5, 1.0), P1: V3(0.5, 0.5, -1.0)}, rect, tol)
	diff(t, 0.0, r.Distance, approx)
	diff(t, 0.5, r.Parameter[0], approx)
	r = DistRay3Rectangle3(Ray3[float64]{Origin: V3(0.0, 0.0, 3.0), Direction: UnitZ[float64]()}, rect, tol)
	diff(t, 3.0, r.Distance, approx)
}

func TestDistConvex(t *testing.T) {
	tol := DefaultTolerance[float64]()
	q := QuatAxisAngle(UnitZ[float64](), math.Pi/4)

	t.Run("rotated boxes", func(t *testing.T) {
		a := OrientedFromAligned(unitBox3())
		b := NewOrientedBox3(V3(4.0, 0.0, 0.0), V3(1.0, 1.0, 1.0), q)
		r := DistOrientedBox3OrientedBox3(a, b, tol)
		diff(t, 3-math.Sqrt2, r.Distance, cmpopts.EquateApprox(0, 1e-6))
		diff(t, 1.0, r.ClosestPoint[0].X, cmpopts.EquateApprox(0, 1e-6))
		diff(t, 4-math.Sqrt2, r.ClosestPoint[1].X, cmpopts.EquateApprox(0, 1e-6))
	})

	t.Run("overlapping boxes", func(t *testing.T) {
		b := AlignedBox3[float64]{Min: V3(0.5, 0.5, 0.5), Max: V3(3.0, 3.0, 3.0)}
		r := DistAlignedBox3AlignedBox3(unitBox3(), b, tol)
		diff(t, 0.0, r.Distance)
		if !r.Intersect() {
			t.Error("overlapping boxes reported as disjoint")
		}
		diff(t, r.ClosestPoint[0], r.ClosestPoint[1])
	})

	t.Run("touching boxes", func(t *testing.T) {
		b := AlignedBox3[float64]{Min: V3(1.0, -0.5, -0.5), Max: V3(2.0, 0.5, 0.5)}
		r := DistAlignedBox3AlignedBox3(unitBox3(), b, tol)
		if r.Distance > 1e-6 {
			t.Errorf("got distance %v for touching boxes", r.Distance)
		}
	})

	t.Run("point and box", func(t *testing.T) {
		pt := V3(3.0, 0.5, -2.0)
		want := DistPointAlignedBox(pt, unitBox3())
		got := DistSegment3AlignedBox3(Segment3[float64]{P0: pt, P1: pt}, unitBox3(), tol)
		diff(t, want.Distance, got.Distance, cmpopts.EquateApprox(0, 1e-6))
		diff(t, want.ClosestPoint[1], got.ClosestPoint[1], cmpopts.EquateApprox(0, 1e-6))
	})

	t.Run("segment and oriented box", func(t *testing.T) {
		b := NewOrientedBox3(V3(0.0, 0.0, 0.0), V3(1.0, 1.0, 1.0), q)
		s := Segment3[float64]{P0: V3(-3.0, 0.0, 2.0), P1: V3(3.0, 0.0, 2.0)}
		r := DistSegment3OrientedBox3(s, b, tol)
		diff(t, 1.0, r.Distance, cmpopts.EquateApprox(0, 1e-6))
		diff(t, 2.0, r.ClosestPoint[0].Z, cmpopts.EquateApprox(0, 1e-6))
		diff(t, s.Eval(r.Parameter[0]), r.ClosestPoint[0], cmpopts.EquateApprox(0, 1e-6))
	})

	t.Run("spheres", func(t *testing.T) {
		a := Sphere3[float64]{Center: V3(0.0, 0.0, 0.0), Radius: 1}
		b := Sphere3[float64]{Center: V3(3.0, 4.0, 0.0), Radius: 2}
		r := DistConvex3[float64](a, b, tol)
		diff(t, 2.0, r.Distance, cmpopts.EquateApprox(0, 1e-6))
		diff(t, V3(0.6, 0.8, 0.0), r.ClosestPoint[0], cmpopts.EquateApprox(0, 1e-4))
	})

	t.Run("parallel triangles", func(t *testing.T) {
		t0 := Tri(V3(0.0, 0.0, 0.0), V3(1.0, 0.0, 0.0), V3(0.0, 1.0, 0.0))
		t1 := Tri(V3(0.0, 0.0, 2.0), V3(1.0, 0.0, 2.0), V3(0.0, 1.0, 2.0))
		r := DistTriangle3Triangle3(t0, t1, tol)
		diff(t, 2.0, r.Distance, cmpopts.EquateApprox(0, 1e-9))
	})

	t.Run("triangle and rectangle", func(t *testing.T) {
		tri := Tri(V3(3.0, 0.0, -1.0), V3(3.0, 0.0, 1.0), V3(5.0, 0.0, 0.0))
		rect := Rectangle3[float64]{
			Axis:   [2]Vec3[float64]{UnitX[float64](), UnitY[float64]()},
			Extent: Vec(1.0, 1.0),
		}
		r := DistTriangle3Rectangle3(tri, rect, tol)
		diff(t, 2.0, r.Distance, cmpopts.EquateApprox(0, 1e-6))
		diff(t, V3(3.0, 0.0, 0.0), r.ClosestPoint[0], cmpopts.EquateApprox(0, 1e-6))
	})

	t.Run("capsules", func(t *testing.T) {
		a := Capsule3[float64]{Segment: Segment3[float64]{P0: V3(0.0, 0.0, -1.0), P1: V3(0.0, 0.0, 1.0)}, Radius: 0.5}
		b := Capsule3[float64]{Segment: Segment3[float64]{P0: V3(3.0, -1.0, 0.0), P1: V3(3.0, 1.0, 0.0)}, Radius: 0.5}
		r := DistConvex3[float64](a, b, tol)
		diff(t, 2.0, r.Distance, cmpopts.EquateApprox(0, 1e-6))
	})
}

func TestDistConvexFloat32(t *testing.T) {
	tol := DefaultTolerance[float32]()
	a := AlignedBox3[float32]{Min: V3[float32](0, 0, 0), Max: V3[float32](1, 1, 1)}
	b := AlignedBox3[float32]{Min: V3[float32](3, 0, 0), Max: V3[float32](4, 1, 1)}
	r := DistAlignedBox3AlignedBox3(a, b, tol)
	diff(t, float32(2), r.Distance, cmpopts.EquateApprox(0, 1e-5))
}

func TestDistanceResultSwap(t *testing.T) {
	s := Segment3[float64]{P0: V3(1.0, 0.0, 0.0), P1: V3(3.0, 0.0, 0.0)}
	r := DistPointSegment(V3(2.0, 1.0, 0.0), s)
	sw := r.Swap()
	diff(t, r.Distance, sw.Distance)
	diff(t, [2]Vec3[float64]{V3(2.0, 0.0, 0.0), V3(2.0, 1.0, 0.0)}, sw.ClosestPoint)
	diff(t, [2]float64{0.5, 0}, sw.Parameter)
	diff(t, r, sw.Swap())
}

func BenchmarkDistSegmentSegment(b *testing.B) {
	tol := DefaultTolerance[float64]()
	s0 := Segment3[float64]{P0: V3(0.0, 0.0, 0.0), P1: V3(1.0, 2.0, 3.0)}
	s1 := Segment3[float64]{P0: V3(4.0, -1.0, 2.0), P1: V3(-1.0, 3.0, 0.5)}
	for range b.N {
		DistSegmentSegment(s0, s1, tol)
	}
}

func BenchmarkDistConvex3(b *testing.B) {
	tol := DefaultTolerance[float64]()
	q := QuatAxisAngle(V3(1.0, 1.0, 1.0).Normalize(), 0.6)
	box0 := NewOrientedBox3(V3(0.0, 0.0, 0.0), V3(1.0, 2.0, 0.5), q)
	box1 := NewOrientedBox3(V3(4.0, 1.0, -1.0), V3(0.5, 0.5, 2.0), q.Conjugate())
	sphere := Sphere3[float64]{Center: V3(-3.0, 2.0, 1.0), Radius: 1.5}
	tri := Tri(V3(0.0, 5.0, 0.0), V3(2.0, 6.0, 1.0), V3(-1.0, 7.0, 2.0))

	for _, bench := range []struct {
		name string
		a, b Support3[float64]
	}{
		{"boxes", box0, box1},
		{"box and sphere", box0, sphere},
		{"box and triangle", box0, tri},
	} {
		b.Run(bench.name, func(b *testing.B) {
			for range b.N {
				DistConvex3[float64](bench.a, bench.b, tol)
			}
		})
	}
}

package geom_test

import (
	"fmt"
	"math"

	"honnef.co/go/geom"
)

func ExampleDistSegmentSegment() {
	s0 := geom.Segment3[float64]{P0: geom.V3(0.0, 0.0, 0.0), P1: geom.V3(1.0, 0.0, 0.0)}
	s1 := geom.Segment3[float64]{P0: geom.V3(3.0, 1.0, 0.0), P1: geom.V3(4.0, 1.0, 0.0)}
	r := geom.DistSegmentSegment(s0, s1, geom.DefaultTolerance[float64]())
	fmt.Printf("distance %.4f at s = %.1f, t = %.1f\n", r.Distance, r.Parameter[0], r.Parameter[1])
	// Output:
	// distance 2.2361 at s = 1.0, t = 0.0
}

func ExampleDistConvex3() {
	// Any pair of convex shapes that can report their support points works,
	// here a sphere and a rotated box.
	tol := geom.DefaultTolerance[float64]()
	sphere := geom.Sphere3[float64]{Center: geom.V3(0.0, 0.0, 5.0), Radius: 1}
	box := geom.NewOrientedBox3(
		geom.V3(0.0, 0.0, 0.0),
		geom.V3(1.0, 1.0, 1.0),
		geom.QuatAxisAngle(geom.UnitZ[float64](), math.Pi/4))
	r := geom.DistConvex3[float64](sphere, box, tol)
	fmt.Printf("%.4f\n", r.Distance)
	// Output:
	// 3.0000
}

func ExampleTestSphere3Cone3() {
	cone := geom.NewConeFrustum(geom.Ray3[float64]{Direction: geom.UnitZ[float64]()}, 0.5, 4, 16)
	for _, s := range []geom.Sphere3[float64]{
		{Center: geom.V3(1.0, 2.0, 3.0), Radius: 1},
		{Center: geom.V3(0.0, 0.0, 10.0), Radius: 1},
	} {
		fmt.Println(geom.TestSphere3Cone3(s, cone).Intersect)
	}
	// Output:
	// false
	// true
}

func ExampleFindTriangle2Triangle2() {
	t0 := geom.Tri(geom.Vec(0.0, 0.0), geom.Vec(4.0, 0.0), geom.Vec(0.0, 4.0))
	t1 := geom.Tri(geom.Vec(1.0, 1.0), geom.Vec(5.0, 1.0), geom.Vec(1.0, 5.0))
	r := geom.FindTriangle2Triangle2(t0, t1)
	fmt.Printf("%d vertices, area %.4f\n", len(r.Polygon), r.Polygon.Area())
	// Output:
	// 3 vertices, area 2.0000
}

func ExampleFindSphere3Sphere3() {
	a := geom.Sphere3[float64]{Radius: 1}
	b := geom.Sphere3[float64]{Center: geom.V3(1.0, 0.0, 0.0), Radius: 1}
	r := geom.FindSphere3Sphere3(a, b, geom.DefaultTolerance[float64]())
	fmt.Printf("%s of radius %.4f around x = %.1f\n", r.Kind, r.Circle.Radius, r.Circle.Center.X)
	// Output:
	// circle of radius 0.8660 around x = 0.5
}

func ExampleTestMovingHyperspheres() {
	a := geom.Sphere3[float64]{Radius: 1}
	b := geom.Sphere3[float64]{Center: geom.V3(10.0, 0.0, 0.0), Radius: 1}
	var still geom.Vec3[float64]
	r := geom.TestMovingHyperspheres(a, still, b, geom.V3(-2.0, 0.0, 0.0), 5)
	fmt.Println(r.Intersect, r.ContactTime, r.NumIntersections)
	// Output:
	// true 4 1
}

func ExampleSwapped() {
	pointBox := geom.FindFunc[geom.Vec3[float64], geom.AlignedBox3[float64], geom.DistanceResult[float64, geom.Vec3[float64]]](
		geom.DistPointAlignedBox[float64, geom.Vec3[float64]])
	boxPoint := geom.Swapped[geom.Vec3[float64], geom.AlignedBox3[float64]](pointBox, geom.DistanceResult[float64, geom.Vec3[float64]].Swap)

	box := geom.AlignedBox3[float64]{Min: geom.V3(0.0, 0.0, 0.0), Max: geom.V3(1.0, 1.0, 1.0)}
	r := boxPoint.Find(box, geom.V3(3.0, 0.5, 0.5))
	fmt.Printf("%.1f from %.1f to %.1f\n", r.Distance, r.ClosestPoint[0].X, r.ClosestPoint[1].X)
	// Output:
	// 2.0 from 1.0 to 3.0
}

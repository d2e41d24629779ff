package geom

import (
	"fmt"
	"math"
)

// Hypersphere is the solid ball of the given radius around Center. In 2D it
// is a disk, in 3D a ball.
type Hypersphere[T Real, V Vector[T, V]] struct {
	Center V
	Radius T
}

type (
	Circle2[T Real] = Hypersphere[T, Vec2[T]]
	Sphere3[T Real] = Hypersphere[T, Vec3[T]]
)

// Contains reports whether pt lies in the closed ball.
func (s Hypersphere[T, V]) Contains(pt V) bool {
	return pt.Sub(s.Center).Hypot2() <= s.Radius*s.Radius
}

func (s Hypersphere[T, V]) Translate(v V) Hypersphere[T, V] {
	return Hypersphere[T, V]{
		Center: s.Center.Add(v),
		Radius: s.Radius,
	}
}

// Volume returns the area of a circle or the volume of a sphere.
func (s Hypersphere[T, V]) Volume() T {
	r := abs(s.Radius)
	switch s.Center.Dim() {
	case 2:
		return math.Pi * r * r
	case 3:
		return 4.0 / 3.0 * math.Pi * r * r * r
	default:
		panic("unsupported dimension")
	}
}

// BoundingBox returns the smallest axis-aligned box containing the sphere.
func (s Hypersphere[T, V]) BoundingBox() AlignedBox[T, V] {
	return AlignedBox[T, V]{Min: s.Center, Max: s.Center}.Inflate(abs(s.Radius))
}

func (s Hypersphere[T, V]) IsInf() bool {
	return s.Center.IsInf() || isInf(s.Radius)
}

func (s Hypersphere[T, V]) IsNaN() bool {
	return s.Center.IsNaN() || isNaN(s.Radius)
}

// Capsule3 is the set of points within Radius of Segment.
type Capsule3[T Real] struct {
	Segment Segment3[T]
	Radius  T
}

func (c Capsule3[T]) Contains(pt Vec3[T]) bool {
	return DistPointSegment(pt, c.Segment).SqrDistance <= c.Radius*c.Radius
}

// Circle3 is a circle in space: the points at distance Radius from Center in
// the plane through Center perpendicular to the unit vector Normal.
type Circle3[T Real] struct {
	Center Vec3[T]
	Normal Vec3[T]
	Radius T
}

func (c Circle3[T]) String() string {
	return fmt.Sprintf("Circle3{Center: %v, Normal: %v, Radius: %g}", c.Center, c.Normal, c.Radius)
}

package geom

import "fmt"

// Cone3 is a solid cone with apex Ray.Origin and unit axis Ray.Direction. The
// cone consists of the points whose angle with the axis, measured at the apex,
// is at most Angle, and whose height along the axis lies in [MinHeight,
// MaxHeight].
//
// A cone with MinHeight 0 and infinite MaxHeight is an infinite cone. A
// positive MinHeight truncates the apex. A finite MaxHeight caps the cone with
// a disk; with both a positive MinHeight and a finite MaxHeight the cone is a
// frustum.
//
// Use [NewCone] or [Cone3.SetAngle] rather than setting Angle directly, so that
// the cached trigonometric values stay consistent.
type Cone3[T Real] struct {
	Ray   Ray3[T]
	Angle T
	// Cached values derived from Angle.
	CosAngle, SinAngle, TanAngle T
	CosAngleSqr, SinAngleSqr     T
	InvSinAngle                  T

	MinHeight T
	MaxHeight T
}

// NewCone returns the infinite cone with the given apex ray and half-angle,
// which must be in (0, π/2).
func NewCone[T Real](ray Ray3[T], angle T) Cone3[T] {
	c := Cone3[T]{Ray: ray}
	c.SetAngle(angle)
	c.MakeInfiniteCone()
	return c
}

// NewConeFrustum returns the cone with the given apex ray and half-angle
// restricted to heights in [hmin, hmax].
func NewConeFrustum[T Real](ray Ray3[T], angle, hmin, hmax T) Cone3[T] {
	c := Cone3[T]{Ray: ray}
	c.SetAngle(angle)
	c.MakeConeFrustum(hmin, hmax)
	return c
}

// SetAngle sets the half-angle and updates the cached trigonometric values. It
// panics if angle is not in (0, π/2).
func (c *Cone3[T]) SetAngle(angle T) {
	if !(angle > 0 && angle < 1.5707963267948966) {
		panic(fmt.Sprintf("cone angle %g out of range (0, π/2)", angle))
	}
	c.Angle = angle
	c.SinAngle, c.CosAngle = sincos(angle)
	c.TanAngle = tan(angle)
	c.CosAngleSqr = c.CosAngle * c.CosAngle
	c.SinAngleSqr = c.SinAngle * c.SinAngle
	c.InvSinAngle = 1 / c.SinAngle
}

// MakeInfiniteCone sets the heights to [0, ∞).
func (c *Cone3[T]) MakeInfiniteCone() {
	c.MinHeight = 0
	c.MaxHeight = inf[T](1)
}

// MakeInfiniteTruncatedCone sets the heights to [hmin, ∞).
func (c *Cone3[T]) MakeInfiniteTruncatedCone(hmin T) {
	if hmin < 0 {
		panic("negative minimum height")
	}
	c.MinHeight = hmin
	c.MaxHeight = inf[T](1)
}

// MakeFiniteCone sets the heights to [0, hmax].
func (c *Cone3[T]) MakeFiniteCone(hmax T) {
	if hmax <= 0 {
		panic("non-positive maximum height")
	}
	c.MinHeight = 0
	c.MaxHeight = hmax
}

// MakeConeFrustum sets the heights to [hmin, hmax].
func (c *Cone3[T]) MakeConeFrustum(hmin, hmax T) {
	if hmin < 0 || hmax <= hmin {
		panic(fmt.Sprintf("invalid frustum heights [%g, %g]", hmin, hmax))
	}
	c.MinHeight = hmin
	c.MaxHeight = hmax
}

func (c Cone3[T]) IsFinite() bool {
	return !isInf(c.MaxHeight)
}

func (c Cone3[T]) IsInfinite() bool {
	return isInf(c.MaxHeight)
}

// Contains reports whether pt lies in the solid cone.
func (c Cone3[T]) Contains(pt Vec3[T]) bool {
	h, r := c.heightRadius(pt)
	return h >= c.MinHeight && h <= c.MaxHeight && r <= h*c.TanAngle
}

// heightRadius returns the height of pt along the axis and its distance from
// the axis.
func (c Cone3[T]) heightRadius(pt Vec3[T]) (h, r T) {
	d := pt.Sub(c.Ray.Origin)
	h = d.Dot(c.Ray.Direction)
	r = d.Sub(c.Ray.Direction.Mul(h)).Hypot()
	return h, r
}

// Rotate returns the cone with its axis rotated by q about the apex.
func (c Cone3[T]) Rotate(q Quaternion[T]) Cone3[T] {
	d, ok := Normalize(q.Normalize().Rotate(c.Ray.Direction))
	if ok {
		c.Ray.Direction = d
	}
	return c
}

// Cylinder3 is a solid cylinder of the given radius around Axis, centered at
// Axis.Origin and extending Height/2 in either direction. Axis.Direction must be
// unit length. An infinite Height describes an infinite cylinder.
type Cylinder3[T Real] struct {
	Axis   Line3[T]
	Radius T
	Height T
}

func (c Cylinder3[T]) Contains(pt Vec3[T]) bool {
	d := pt.Sub(c.Axis.Origin)
	h := d.Dot(c.Axis.Direction)
	r2 := d.Sub(c.Axis.Direction.Mul(h)).Hypot2()
	return abs(h) <= c.Height/2 && r2 <= c.Radius*c.Radius
}

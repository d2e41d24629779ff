package geom

import "math"

// Ellipse2 is a solid ellipse. Axis must be orthonormal; Extent holds the
// semi-axis lengths along Axis[0] and Axis[1].
type Ellipse2[T Real] struct {
	Center Vec2[T]
	Axis   [2]Vec2[T]
	Extent Vec2[T]
}

// NewEllipse2 creates a new ellipse with a given center, radii, and rotation.
//
// The returned ellipse will be the result of taking a circle, stretching
// it by the radii along the x and y axes, then rotating it from the
// x axis by xRotation radians, before finally translating the center
// to center.
func NewEllipse2[T Real](center Vec2[T], radii Vec2[T], xRotation T) Ellipse2[T] {
	u := VecFromAngle(xRotation)
	// Since the circle is symmetric about the x and y axes, using absolute values for the
	// radii results in the same ellipse.
	return Ellipse2[T]{
		Center: center,
		Axis:   [2]Vec2[T]{u, u.Perp().Negate()},
		Extent: Vec2[T]{abs(radii.X), abs(radii.Y)},
	}
}

// NewEllipse2FromAffine creates an ellipse from an affine transformation of the
// unit circle.
func NewEllipse2FromAffine[T Real](aff Affine[T]) Ellipse2[T] {
	radii, rot := aff.svd()
	return NewEllipse2(aff.Translation(), radii, rot)
}

// Affine returns the transformation that maps the unit circle onto the ellipse.
func (e Ellipse2[T]) Affine() Affine[T] {
	return Translate(e.Center).
		Mul(Rotate(e.Axis[0].Angle())).
		Mul(Scale(e.Extent.X, e.Extent.Y))
}

// Transform returns the image of the ellipse under aff.
func (e Ellipse2[T]) Transform(aff Affine[T]) Ellipse2[T] {
	return NewEllipse2FromAffine(aff.Mul(e.Affine()))
}

func (e Ellipse2[T]) Contains(pt Vec2[T]) bool {
	d := pt.Sub(e.Center)
	x := d.Dot(e.Axis[0]) / e.Extent.X
	y := d.Dot(e.Axis[1]) / e.Extent.Y
	return x*x+y*y <= 1
}

func (e Ellipse2[T]) Area() T {
	return math.Pi * e.Extent.X * e.Extent.Y
}

// Ellipsoid3 is a solid ellipsoid. Axis must be orthonormal; Extent holds the
// semi-axis lengths along each axis.
type Ellipsoid3[T Real] struct {
	Center Vec3[T]
	Axis   [3]Vec3[T]
	Extent Vec3[T]
}

// NewEllipsoid3 returns the ellipsoid whose axes are the standard axes rotated by q.
func NewEllipsoid3[T Real](center, extent Vec3[T], q Quaternion[T]) Ellipsoid3[T] {
	return Ellipsoid3[T]{
		Center: center,
		Axis:   q.Axes(),
		Extent: Vec3[T]{abs(extent.X), abs(extent.Y), abs(extent.Z)},
	}
}

// ToLocal returns the coordinates of pt in the ellipsoid's frame.
func (e Ellipsoid3[T]) ToLocal(pt Vec3[T]) Vec3[T] {
	d := pt.Sub(e.Center)
	return Vec3[T]{d.Dot(e.Axis[0]), d.Dot(e.Axis[1]), d.Dot(e.Axis[2])}
}

func (e Ellipsoid3[T]) FromLocal(local Vec3[T]) Vec3[T] {
	return e.Center.
		Add(e.Axis[0].Mul(local.X)).
		Add(e.Axis[1].Mul(local.Y)).
		Add(e.Axis[2].Mul(local.Z))
}

func (e Ellipsoid3[T]) Contains(pt Vec3[T]) bool {
	l := e.ToLocal(pt)
	x, y, z := l.X/e.Extent.X, l.Y/e.Extent.Y, l.Z/e.Extent.Z
	return x*x+y*y+z*z <= 1
}

func (e Ellipsoid3[T]) Volume() T {
	return 4.0 / 3.0 * math.Pi * e.Extent.X * e.Extent.Y * e.Extent.Z
}

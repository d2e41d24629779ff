package geom

// Affine describes a 2D affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Note that this convention is transposed from PostScript and Direct2D, but is
// consistent with the [Wikipedia] formulation of affine transformation as
// augmented matrix. The idea is that (A * B) * v == A * (B * v).
//
// [Wikipedia]: https://en.wikipedia.org/wiki/Affine_transformation
type Affine[T Real] struct {
	// A struct rather than an array, so that the compiler can keep the
	// coefficients in registers.
	N0, N1, N2, N3, N4, N5 T
}

// Identity returns the identity transform.
func Identity[T Real]() Affine[T] {
	return Affine[T]{1, 0, 0, 1, 0, 0}
}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale[T Real](x, y T) Affine[T] {
	return Affine[T]{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate[T Real](v Vec2[T]) Affine[T] {
	return Affine[T]{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y. Thus, in a Y-down coordinate
// system (as is common for graphics), it is a clockwise rotation, and
// in Y-up (traditional for math), it is anti-clockwise.
//
// The angle th is expressed in radians.
func Rotate[T Real](th T) Affine[T] {
	sin, cos := sincos(th)
	return Affine[T]{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout creates an affine transform representing a rotation of th radians
// about center.
//
// See [Rotate] for more info.
func RotateAbout[T Real](th T, center Vec2[T]) Affine[T] {
	return Translate(center.Negate()).ThenRotate(th).ThenTranslate(center)
}

// Reflect creates an affine transform that represents reflection about the line
// point + direction * t, t ∈ [-∞, ∞]
func Reflect[T Real](pt Vec2[T], direction Vec2[T]) Affine[T] {
	n := direction.Perp().Normalize()

	// Compute Householder reflection matrix
	x2 := n.X * n.X
	xy := n.X * n.Y
	y2 := n.Y * n.Y
	// Here we also add in the post translation, because it doesn't require any further calc.
	aff := Affine[T]{
		1.0 - 2.0*x2,
		-2.0 * xy,
		-2.0 * xy,
		1.0 - 2.0*y2,
		pt.X,
		pt.Y,
	}
	return aff.PreTranslate(pt.Negate())
}

// Coefficients returns the the coefficients of the transform.
func (aff Affine[T]) Coefficients() [6]T {
	return [6]T{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

func (aff Affine[T]) Mul(o Affine[T]) Affine[T] {
	return Affine[T]{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenRotate creates aff followed by a rotation of th.
//
// Equivalent to "Rotate(th) * aff"
func (aff Affine[T]) ThenRotate(th T) Affine[T] {
	return Rotate(th).Mul(aff)
}

// ThenRotateAbout creates aff followed by a rotation of th about center.
//
// Equivalent to "RotateAbout(th, center) * aff"
func (aff Affine[T]) ThenRotateAbout(th T, center Vec2[T]) Affine[T] {
	return RotateAbout(th, center).Mul(aff)
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine[T]) PreTranslate(v Vec2[T]) Affine[T] {
	return aff.Mul(Translate(v))
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine[T]) ThenTranslate(v Vec2[T]) Affine[T] {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant computes the determinant.
func (aff Affine[T]) Determinant() T {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine[T]) Invert() Affine[T] {
	invDet := 1 / aff.Determinant()
	return Affine[T]{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// Linear returns the transformation of the direction v, ignoring the translation.
func (aff Affine[T]) Linear(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: aff.N0*v.X + aff.N2*v.Y,
		Y: aff.N1*v.X + aff.N3*v.Y,
	}
}

func (aff Affine[T]) IsInf() bool {
	return isInf(aff.N0) ||
		isInf(aff.N1) ||
		isInf(aff.N2) ||
		isInf(aff.N3) ||
		isInf(aff.N4) ||
		isInf(aff.N5)
}

func (aff Affine[T]) IsNaN() bool {
	return isNaN(aff.N0) ||
		isNaN(aff.N1) ||
		isNaN(aff.N2) ||
		isNaN(aff.N3) ||
		isNaN(aff.N4) ||
		isNaN(aff.N5)
}

// Compute the singular value decomposition of the linear transformation (ignoring the
// translation).
//
// All non-degenerate linear transformations can be represented as
//
//  1. a rotation about the origin.
//  2. a scaling along the x and y axes
//  3. another rotation about the origin
//
// composed together. Decomposing a 2x2 matrix in this way is called a "singular value
// decomposition" and is written "U Σ V^T", where U and V^T are orthogonal (rotations) and Σ
// is a diagonal matrix (a scaling).
//
// This function is used to recover ellipse extents and orientation from an affine map of
// the unit circle. We don't calculate V^T, since a rotation of the unit circle about its
// center always results in the same circle.
//
// First part of the return tuple is the scaling, second part is the angle of rotation (in
// radians)
func (aff Affine[T]) svd() (scale Vec2[T], th T) {
	a := aff.N0
	a2 := a * a
	b := aff.N1
	b2 := b * b
	c := aff.N2
	c2 := c * c
	d := aff.N3
	d2 := d * d
	ab := a * b
	cd := c * d
	th = 0.5 * atan2(2.0*(ab+cd), a2-b2+c2-d2)
	s1 := a2 + b2 + c2 + d2
	s2 := sqrt((a2-b2+c2-d2)*(a2-b2+c2-d2) + 4.0*(ab+cd)*(ab+cd))
	return Vec2[T]{
		X: sqrt(0.5 * (s1 + s2)),
		Y: sqrt(max(0.5*(s1-s2), 0)),
	}, th
}

// Translation returns the translation component of this affine transformation.
func (aff Affine[T]) Translation() Vec2[T] {
	return Vec2[T]{
		X: aff.N4,
		Y: aff.N5,
	}
}

// TransformBoundingBox computes the bounding box of a transformed box.
//
// If the transform is axis-aligned, then this bounding box is "tight", in other words the
// returned box is the transformed box.
func (aff Affine[T]) TransformBoundingBox(box AlignedBox2[T]) AlignedBox2[T] {
	var out AlignedBox2[T]
	for i, v := range box.Vertices2() {
		v = v.Transform(aff)
		if i == 0 {
			out = AlignedBox2[T]{Min: v, Max: v}
		} else {
			out = out.UnionPoint(v)
		}
	}
	return out
}

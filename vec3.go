package geom

import (
	"fmt"
)

type Vec3[T Real] struct {
	X T
	Y T
	Z T
}

var _ Vector[float64, Vec3[float64]] = Vec3[float64]{}

// V3 returns the vector ⟨x, y, z⟩.
func V3[T Real](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// UnitX, UnitY and UnitZ return the standard basis vectors.
func UnitX[T Real]() Vec3[T] { return Vec3[T]{X: 1} }
func UnitY[T Real]() Vec3[T] { return Vec3[T]{Y: 1} }
func UnitZ[T Real]() Vec3[T] { return Vec3[T]{Z: 1} }

// Splat returns the vector's x, y and z coordinates.
func (v Vec3[T]) Splat() (T, T, T) {
	return v.X, v.Y, v.Z
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

func (v Vec3[T]) Dim() int { return 3 }

func (v Vec3[T]) Comp(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(fmt.Sprintf("component index %d out of range", i))
	}
}

func (v Vec3[T]) WithComp(i int, x T) Vec3[T] {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		panic(fmt.Sprintf("component index %d out of range", i))
	}
	return v
}

func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v×o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// UnitCross returns the normalized cross product v×o, or the zero vector if v
// and o are parallel.
func (v Vec3[T]) UnitCross(o Vec3[T]) Vec3[T] {
	n, _ := Normalize(v.Cross(o))
	return n
}

func (v Vec3[T]) Hypot() T {
	return sqrt(v.Hypot2())
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec3[T]) Hypot2() T {
	return v.Dot(v)
}

func (v Vec3[T]) Lerp(o Vec3[T], t T) Vec3[T] {
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns v scaled to unit length. Like [Vec2.Normalize], the result
// is NaN for the zero vector.
func (v Vec3[T]) Normalize() Vec3[T] {
	return v.Mul(1.0 / v.Hypot())
}

func (v Vec3[T]) IsInf() bool {
	return isInf(v.X) || isInf(v.Y) || isInf(v.Z)
}

func (v Vec3[T]) IsNaN() bool {
	return isNaN(v.X) || isNaN(v.Y) || isNaN(v.Z)
}

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vec3[T]) Mul(f T) Vec3[T] {
	return Vec3[T]{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

func (v Vec3[T]) Div(f T) Vec3[T] {
	return Vec3[T]{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

func (v Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Orthonormalize applies Gram-Schmidt to the three vectors, in order. It
// reports false if the vectors are linearly dependent, in which case the
// result is unspecified.
func Orthonormalize[T Real](v [3]Vec3[T]) ([3]Vec3[T], bool) {
	var ok bool
	if v[0], ok = Normalize(v[0]); !ok {
		return v, false
	}
	v[1] = v[1].Sub(v[0].Mul(v[0].Dot(v[1])))
	if v[1], ok = Normalize(v[1]); !ok {
		return v, false
	}
	v[2] = v[2].Sub(v[0].Mul(v[0].Dot(v[2]))).Sub(v[1].Mul(v[1].Dot(v[2])))
	if v[2], ok = Normalize(v[2]); !ok {
		return v, false
	}
	return v, true
}

// OrthonormalBasis completes the unit vector u to a right-handed orthonormal
// basis {u, v, w}.
func OrthonormalBasis[T Real](u Vec3[T]) (v, w Vec3[T]) {
	// Zero out the component of u with the smallest magnitude and swap the
	// other two to get a vector perpendicular to u.
	if abs(u.X) > abs(u.Y) {
		v = Vec3[T]{X: -u.Z, Z: u.X}
	} else {
		v = Vec3[T]{Y: u.Z, Z: -u.Y}
	}
	v = v.Normalize()
	w = u.Cross(v)
	return v, w
}

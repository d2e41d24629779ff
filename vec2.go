package geom

import (
	"fmt"
)

type Vec2[T Real] struct {
	X T
	Y T
}

var _ Vector[float64, Vec2[float64]] = Vec2[float64]{}

// Vec returns the vector ⟨x, y⟩.
func Vec[T Real](x, y T) Vec2[T] {
	return Vec2[T]{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2[T]) Splat() (T, T) {
	return v.X, v.Y
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

func (v Vec2[T]) Dim() int { return 2 }

func (v Vec2[T]) Comp(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic(fmt.Sprintf("component index %d out of range", i))
	}
}

func (v Vec2[T]) WithComp(i int, x T) Vec2[T] {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		panic(fmt.Sprintf("component index %d out of range", i))
	}
	return v
}

// Dot returns the dot product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2[T]) Cross(o Vec2[T]) T {
	return v.X*o.Y - v.Y*o.X
}

// Perp returns the vector rotated by a quarter turn, ⟨y, -x⟩.
//
// For an edge of a counterclockwise polygon, Perp points to the outside.
func (v Vec2[T]) Perp() Vec2[T] {
	return Vec2[T]{
		X: v.Y,
		Y: -v.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec2[T]) Hypot() T {
	return hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2[T]) Hypot2() T {
	return v.Dot(v)
}

// Angle returns the angle in radians between the vector and ⟨1, 0⟩ in the positive y
// direction. This is atan2(y, x).
func (v Vec2[T]) Angle() T {
	return atan2(v.Y, v.X)
}

// VecFromAngle returns a unit vector of the given angle, which is expressed in radians.
// With θ = 0, the result is the positive x unit vector. At π/2, it is the positive y unit
// vector.
func VecFromAngle[T Real](th T) Vec2[T] {
	y, x := sincos(th)
	return Vec2[T]{
		X: x,
		Y: y,
	}
}

// Lerp linearly interpolates between two vectors.
func (v Vec2[T]) Lerp(o Vec2[T], t T) Vec2[T] {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same angle as o.
// This produces a NaN vector if the magnitude is 0. Use the package-level
// [Normalize] to detect that case.
func (v Vec2[T]) Normalize() Vec2[T] {
	return v.Mul(1.0 / v.Hypot())
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2[T]) IsInf() bool {
	return isInf(v.X) || isInf(v.Y)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2[T]) IsNaN() bool {
	return isNaN(v.X) || isNaN(v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2[T]) Mul(f T) Vec2[T] {
	return Vec2[T]{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vec2[T]) Div(f T) Vec2[T] {
	return Vec2[T]{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2[T]) Negate() Vec2[T] {
	return Vec2[T]{
		X: -v.X,
		Y: -v.Y,
	}
}

// Transform applies the affine transformation to the point v.
func (v Vec2[T]) Transform(aff Affine[T]) Vec2[T] {
	return Vec2[T]{
		X: aff.N0*v.X + aff.N2*v.Y + aff.N4,
		Y: aff.N1*v.X + aff.N3*v.Y + aff.N5,
	}
}

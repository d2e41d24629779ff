package geom

import (
	"fmt"
	"strings"
)

// Matrix3 is a 3×3 matrix stored in row-major order.
type Matrix3[T Real] [3][3]T

func Identity3[T Real]() Matrix3[T] {
	return Matrix3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// MatrixFromCols returns the matrix with the given columns.
func MatrixFromCols[T Real](c0, c1, c2 Vec3[T]) Matrix3[T] {
	return Matrix3[T]{
		{c0.X, c1.X, c2.X},
		{c0.Y, c1.Y, c2.Y},
		{c0.Z, c1.Z, c2.Z},
	}
}

// MatrixAxisAngle returns the rotation of angle radians about the unit vector axis.
func MatrixAxisAngle[T Real](axis Vec3[T], angle T) Matrix3[T] {
	return QuatAxisAngle(axis, angle).Matrix()
}

func (m Matrix3[T]) String() string {
	var sb strings.Builder
	for i, row := range m {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%g %g %g", row[0], row[1], row[2])
	}
	return "[" + sb.String() + "]"
}

func (m Matrix3[T]) Row(i int) Vec3[T] {
	return Vec3[T]{m[i][0], m[i][1], m[i][2]}
}

func (m Matrix3[T]) Col(j int) Vec3[T] {
	return Vec3[T]{m[0][j], m[1][j], m[2][j]}
}

func (m Matrix3[T]) Transpose() Matrix3[T] {
	var out Matrix3[T]
	for i := range 3 {
		for j := range 3 {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Mul returns the matrix product m·o.
func (m Matrix3[T]) Mul(o Matrix3[T]) Matrix3[T] {
	var out Matrix3[T]
	for i := range 3 {
		for j := range 3 {
			out[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return out
}

// MulVec returns the product m·v.
func (m Matrix3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: m.Row(0).Dot(v),
		Y: m.Row(1).Dot(v),
		Z: m.Row(2).Dot(v),
	}
}

func (m Matrix3[T]) Determinant() T {
	return m.Row(0).Dot(m.Row(1).Cross(m.Row(2)))
}

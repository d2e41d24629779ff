package geom

import "fmt"

// Quaternion represents a rotation in 3D as a unit quaternion W + Xi + Yj + Zk.
//
// Orientations that are updated incrementally, such as an oriented box being
// turned a little every frame, should accumulate the rotation in a single
// Quaternion and derive the axes from it with [Quaternion.Axes], instead of
// rotating the axis vectors directly. Repeatedly perturbing axis vectors lets
// them drift away from orthonormality.
type Quaternion[T Real] struct {
	X, Y, Z, W T
}

// IdentityQuaternion returns the quaternion that represents no rotation.
func IdentityQuaternion[T Real]() Quaternion[T] {
	return Quaternion[T]{W: 1}
}

// QuatAxisAngle returns the rotation of angle radians about the unit vector axis.
func QuatAxisAngle[T Real](axis Vec3[T], angle T) Quaternion[T] {
	s, c := sincos(angle / 2)
	return Quaternion[T]{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: c,
	}
}

func (q Quaternion[T]) String() string {
	return fmt.Sprintf("(%g + %gi + %gj + %gk)", q.W, q.X, q.Y, q.Z)
}

// Mul returns the Hamilton product q·o, the rotation o followed by q.
func (q Quaternion[T]) Mul(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		X: q.X*o.W + q.W*o.X + q.Y*o.Z - q.Z*o.Y,
		Y: q.Y*o.W + q.W*o.Y + q.Z*o.X - q.X*o.Z,
		Z: q.Z*o.W + q.W*o.Z + q.X*o.Y - q.Y*o.X,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

func (q Quaternion[T]) Length() T {
	return sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns q scaled to unit length. The zero quaternion normalizes to
// the identity.
func (q Quaternion[T]) Normalize() Quaternion[T] {
	l := q.Length()
	if l == 0 {
		return IdentityQuaternion[T]()
	}
	inv := 1 / l
	return Quaternion[T]{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

// Rotate applies the rotation to v. q must be a unit quaternion.
func (q Quaternion[T]) Rotate(v Vec3[T]) Vec3[T] {
	// v + 2w(u×v) + 2u×(u×v), with u the vector part of q.
	u := Vec3[T]{X: q.X, Y: q.Y, Z: q.Z}
	t := u.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(u.Cross(t))
}

// Matrix returns the rotation matrix of q. q must be a unit quaternion.
func (q Quaternion[T]) Matrix() Matrix3[T] {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, xy, xz := q.X*x2, q.X*y2, q.X*z2
	yy, yz, zz := q.Y*y2, q.Y*z2, q.Z*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2
	return Matrix3[T]{
		{1 - (yy + zz), xy - wz, xz + wy},
		{xy + wz, 1 - (xx + zz), yz - wx},
		{xz - wy, yz + wx, 1 - (xx + yy)},
	}
}

// Axes returns the images of the standard basis vectors under the rotation,
// orthonormalized to remove accumulated rounding error.
func (q Quaternion[T]) Axes() [3]Vec3[T] {
	m := q.Normalize().Matrix()
	axes, ok := Orthonormalize([3]Vec3[T]{m.Col(0), m.Col(1), m.Col(2)})
	if !ok {
		return [3]Vec3[T]{UnitX[T](), UnitY[T](), UnitZ[T]()}
	}
	return axes
}

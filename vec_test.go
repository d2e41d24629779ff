package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestQuaternionAxes(t *testing.T) {
	q := QuatAxisAngle(UnitZ[float64](), math.Pi/2)
	axes := q.Axes()
	diff(t, V3(0.0, 1.0, 0.0), axes[0], approx)
	diff(t, V3(-1.0, 0.0, 0.0), axes[1], approx)
	diff(t, V3(0.0, 0.0, 1.0), axes[2], approx)

	v := V3(1.0, 2.0, 3.0)
	diff(t, V3(-2.0, 1.0, 3.0), q.Rotate(v), approx)
	diff(t, q.Rotate(v), q.Matrix().MulVec(v), approx)
	diff(t, 1.0, q.Matrix().Determinant(), approx)
}

func TestQuaternionMul(t *testing.T) {
	a := QuatAxisAngle(UnitX[float64](), 0.3)
	b := QuatAxisAngle(V3(1.0, 1.0, 0.0).Normalize(), -1.1)
	v := V3(0.5, -2.0, 4.0)
	// a·b applies b first.
	diff(t, a.Rotate(b.Rotate(v)), a.Mul(b).Rotate(v), approx)
	diff(t, v, a.Conjugate().Rotate(a.Rotate(v)), approx)
	diff(t, a.Matrix().Mul(b.Matrix()), a.Mul(b).Matrix(), approx)
}

func TestQuaternionNormalize(t *testing.T) {
	diff(t, IdentityQuaternion[float64](), Quaternion[float64]{}.Normalize())
	q := Quaternion[float64]{X: 1, Y: 1, Z: 1, W: 1}.Normalize()
	diff(t, 1.0, q.Length(), approx)

	// Axes of a slightly denormalized quaternion are still orthonormal.
	q = Quaternion[float64]{X: 0.1, Y: 0.2, Z: 0.3, W: 1.02}
	axes := q.Axes()
	for i := range 3 {
		diff(t, 1.0, axes[i].Hypot(), approx)
		for j := range i {
			diff(t, 0.0, axes[i].Dot(axes[j]), cmpopts.EquateApprox(0, 1e-12))
		}
	}
}

func TestOrthonormalize(t *testing.T) {
	axes, ok := Orthonormalize([3]Vec3[float64]{V3(2.0, 0.0, 0.0), V3(1.0, 3.0, 0.0), V3(1.0, 1.0, 5.0)})
	if !ok {
		t.Fatal("independent vectors reported as dependent")
	}
	diff(t, identityAxes(), axes, approx)

	if _, ok := Orthonormalize([3]Vec3[float64]{V3(1.0, 0.0, 0.0), V3(2.0, 0.0, 0.0), V3(0.0, 0.0, 1.0)}); ok {
		t.Error("dependent vectors reported as independent")
	}
	if _, ok := Orthonormalize([3]Vec3[float64]{V3(1.0, 0.0, 0.0), V3(0.0, 1.0, 0.0), V3(1.0, 1.0, 0.0)}); ok {
		t.Error("coplanar vectors reported as independent")
	}
}

func TestOrthonormalBasis(t *testing.T) {
	for _, u := range []Vec3[float64]{
		UnitX[float64](),
		UnitY[float64](),
		UnitZ[float64](),
		V3(1.0, 2.0, -3.0).Normalize(),
		V3(-0.2, 0.1, 0.9).Normalize(),
	} {
		v, w := OrthonormalBasis(u)
		diff(t, 1.0, v.Hypot(), approx)
		diff(t, 1.0, w.Hypot(), approx)
		diff(t, 0.0, u.Dot(v), cmpopts.EquateApprox(0, 1e-12))
		diff(t, 0.0, u.Dot(w), cmpopts.EquateApprox(0, 1e-12))
		// Right-handed.
		diff(t, 1.0, MatrixFromCols(u, v, w).Determinant(), approx)
	}
}

func TestMatrix3(t *testing.T) {
	m := Matrix3[float64]{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}
	diff(t, -3.0, m.Determinant(), approx)
	diff(t, m, m.Mul(Identity3[float64]()))
	diff(t, m, m.Transpose().Transpose())
	diff(t, V3(1.0, 4.0, 7.0), m.Col(0))
	diff(t, V3(14.0, 32.0, 53.0), m.MulVec(V3(1.0, 2.0, 3.0)))
	diff(t, "[1 2 3; 4 5 6; 7 8 10]", m.String())

	r := MatrixAxisAngle(UnitX[float64](), math.Pi/2)
	diff(t, V3(0.0, 0.0, 1.0), r.MulVec(UnitY[float64]()), approx)
}

func TestVecBasics(t *testing.T) {
	v := Vec(3.0, 4.0)
	diff(t, 5.0, v.Hypot())
	diff(t, Vec(4.0, -3.0), v.Perp())
	diff(t, 0.0, v.Dot(v.Perp()))
	diff(t, Vec(0.0, 1.0), VecFromAngle(math.Pi/2), approx)
	diff(t, math.Atan2(4, 3), v.Angle(), approx)
	diff(t, "⟨3, 4⟩", v.String())

	p := V3(1.0, 2.0, 3.0)
	diff(t, V3(-3.0, 6.0, -3.0), p.Cross(V3(4.0, 5.0, 6.0)))
	diff(t, 2.0, p.Comp(1))
	diff(t, V3(1.0, 9.0, 3.0), p.WithComp(1, 9))
	diff(t, V3(2.5, 3.5, 4.5), Midpoint(p, V3(4.0, 5.0, 6.0)))
	diff(t, math.Sqrt(27), Distance(p, V3(4.0, 5.0, 6.0)), approx)
	diff(t, 27.0, DistanceSquared(p, V3(4.0, 5.0, 6.0)))

	if _, ok := Normalize(V3(0.0, 0.0, 0.0)); ok {
		t.Error("normalized the zero vector")
	}
	n, ok := Normalize(V3(0.0, 3.0, 4.0))
	if !ok {
		t.Fatal("couldn't normalize a non-zero vector")
	}
	diff(t, V3(0.0, 0.6, 0.8), n, approx)
}

func TestAlignedBox(t *testing.T) {
	b := NewAlignedBoxFromPoints(V3(2.0, -1.0, 0.0), V3(0.0, 1.0, 4.0))
	diff(t, AlignedBox3[float64]{Min: V3(0.0, -1.0, 0.0), Max: V3(2.0, 1.0, 4.0)}, b)
	diff(t, V3(1.0, 0.0, 2.0), b.Center())
	diff(t, V3(1.0, 1.0, 2.0), b.Extent())
	diff(t, 16.0, b.Volume())
	diff(t, b, NewAlignedBoxFromCenter(b.Center(), b.Extent()))

	if !b.Contains(V3(2.0, 1.0, 4.0)) {
		t.Error("box doesn't contain its corner")
	}
	if b.Contains(V3(2.0, 1.0, 4.5)) {
		t.Error("box contains a point outside of it")
	}

	u := b.UnionPoint(V3(-1.0, 0.0, 0.0))
	diff(t, V3(-1.0, -1.0, 0.0), u.Min)
	diff(t, b.Max, u.Max)
	diff(t, AlignedBox3[float64]{Min: V3(-1.0, -2.0, -1.0), Max: V3(3.0, 2.0, 5.0)}, b.Inflate(1))

	s := Circle2[float64]{Center: Vec(1.0, 1.0), Radius: 2}
	diff(t, AlignedBox2[float64]{Min: Vec(-1.0, -1.0), Max: Vec(3.0, 3.0)}, s.BoundingBox())
	diff(t, 4*math.Pi, s.Volume(), approx)
}

func TestOrientedBox(t *testing.T) {
	b := NewOrientedBox3(V3(1.0, 2.0, 3.0), V3(1.0, 2.0, 3.0), QuatAxisAngle(V3(1.0, -1.0, 2.0).Normalize(), 0.7))
	for _, v := range b.Vertices() {
		diff(t, v, b.FromLocal(b.ToLocal(v)), approx)
		l := b.ToLocal(v)
		diff(t, b.Extent, V3(math.Abs(l.X), math.Abs(l.Y), math.Abs(l.Z)), approx)
	}
	if !b.Contains(b.Center) {
		t.Error("box doesn't contain its center")
	}

	r := NewOrientedBox2(Vec(0.0, 0.0), Vec(2.0, 1.0), math.Pi/2)
	if !r.Contains(Vec(0.0, 1.9)) || r.Contains(Vec(1.5, 0.0)) {
		t.Error("rotated rectangle has the wrong orientation")
	}
	// The vertices of a rectangle wind counterclockwise.
	vs := r.Vertices()
	poly := ConvexPolygon2[float64](vs[:])
	diff(t, 8.0, poly.Area(), approx)
}

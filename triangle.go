package geom

// Triangle is the solid triangle with vertices V[0], V[1], V[2]. Vertex order
// determines edge order: edge i runs from V[i] to V[(i+1)%3].
type Triangle[T Real, V Vector[T, V]] struct {
	V [3]V
}

type (
	Triangle2[T Real] = Triangle[T, Vec2[T]]
	Triangle3[T Real] = Triangle[T, Vec3[T]]
)

// Tri returns the triangle with the given vertices.
func Tri[T Real, V Vector[T, V]](v0, v1, v2 V) Triangle[T, V] {
	return Triangle[T, V]{V: [3]V{v0, v1, v2}}
}

// Edge returns edge i, from V[i] to V[(i+1)%3].
func (t Triangle[T, V]) Edge(i int) Segment[T, V] {
	return Segment[T, V]{P0: t.V[i], P1: t.V[(i+1)%3]}
}

// Edges returns the triangle's three edges in order.
func (t Triangle[T, V]) Edges() [3]Segment[T, V] {
	return [3]Segment[T, V]{t.Edge(0), t.Edge(1), t.Edge(2)}
}

func (t Triangle[T, V]) Centroid() V {
	return t.V[0].Add(t.V[1]).Add(t.V[2]).Mul(1.0 / 3.0)
}

// Eval returns the point with barycentric coordinates (1-u-v, u, v).
func (t Triangle[T, V]) Eval(u, v T) V {
	return t.V[0].
		Add(t.V[1].Sub(t.V[0]).Mul(u)).
		Add(t.V[2].Sub(t.V[0]).Mul(v))
}

// Barycentric returns the coordinates (u, v) such that the orthogonal
// projection of pt onto the triangle's plane is t.Eval(u, v). It reports false
// for degenerate triangles.
func (t Triangle[T, V]) Barycentric(pt V, tol Tolerance[T]) (u, v T, ok bool) {
	e0 := t.V[1].Sub(t.V[0])
	e1 := t.V[2].Sub(t.V[0])
	d := pt.Sub(t.V[0])
	a00, a01, a11 := e0.Dot(e0), e0.Dot(e1), e1.Dot(e1)
	b0, b1 := d.Dot(e0), d.Dot(e1)
	det := a00*a11 - a01*a01
	if det <= 0 || tol.Negligible(det, a00*a11) {
		return 0, 0, false
	}
	u = (a11*b0 - a01*b1) / det
	v = (a00*b1 - a01*b0) / det
	return u, v, true
}

func (t Triangle[T, V]) IsInf() bool {
	return t.V[0].IsInf() || t.V[1].IsInf() || t.V[2].IsInf()
}

func (t Triangle[T, V]) IsNaN() bool {
	return t.V[0].IsNaN() || t.V[1].IsNaN() || t.V[2].IsNaN()
}

// SignedArea returns the signed area of a 2D triangle, positive if the vertices
// are in counterclockwise order.
func SignedArea[T Real](t Triangle2[T]) T {
	return 0.5 * t.V[1].Sub(t.V[0]).Cross(t.V[2].Sub(t.V[0]))
}

// Transform applies aff to the triangle's vertices.
func TransformTriangle[T Real](t Triangle2[T], aff Affine[T]) Triangle2[T] {
	return Triangle2[T]{V: [3]Vec2[T]{
		t.V[0].Transform(aff),
		t.V[1].Transform(aff),
		t.V[2].Transform(aff),
	}}
}

// Normal returns the unnormalized normal (V1−V0)×(V2−V0) of a 3D triangle.
func Normal[T Real](t Triangle3[T]) Vec3[T] {
	return t.V[1].Sub(t.V[0]).Cross(t.V[2].Sub(t.V[0]))
}

// Rectangle3 is a solid rectangle in space: the points
// Center + s·Axis[0] + t·Axis[1] with |s| ≤ Extent.X and |t| ≤ Extent.Y.
// Axis must be orthonormal.
type Rectangle3[T Real] struct {
	Center Vec3[T]
	Axis   [2]Vec3[T]
	Extent Vec2[T]
}

// Vertices returns the corners in the order
// C−e0·A0−e1·A1, C+e0·A0−e1·A1, C−e0·A0+e1·A1, C+e0·A0+e1·A1.
func (r Rectangle3[T]) Vertices() [4]Vec3[T] {
	a0 := r.Axis[0].Mul(r.Extent.X)
	a1 := r.Axis[1].Mul(r.Extent.Y)
	return [4]Vec3[T]{
		r.Center.Sub(a0).Sub(a1),
		r.Center.Add(a0).Sub(a1),
		r.Center.Sub(a0).Add(a1),
		r.Center.Add(a0).Add(a1),
	}
}

// Edges returns the rectangle's four edges in counterclockwise order around
// Axis[0]×Axis[1].
func (r Rectangle3[T]) Edges() [4]Segment3[T] {
	v := r.Vertices()
	return [4]Segment3[T]{
		{P0: v[0], P1: v[1]},
		{P0: v[1], P1: v[3]},
		{P0: v[3], P1: v[2]},
		{P0: v[2], P1: v[0]},
	}
}

// Normal returns the unit normal Axis[0]×Axis[1].
func (r Rectangle3[T]) Normal() Vec3[T] {
	return r.Axis[0].Cross(r.Axis[1])
}

// ToLocal returns the in-plane coordinates of pt's projection onto the
// rectangle's plane.
func (r Rectangle3[T]) ToLocal(pt Vec3[T]) Vec2[T] {
	d := pt.Sub(r.Center)
	return Vec2[T]{d.Dot(r.Axis[0]), d.Dot(r.Axis[1])}
}

func (r Rectangle3[T]) FromLocal(local Vec2[T]) Vec3[T] {
	return r.Center.Add(r.Axis[0].Mul(local.X)).Add(r.Axis[1].Mul(local.Y))
}

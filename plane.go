package geom

// Plane3 is the plane of points x with Normal·x = Constant. Normal must be
// unit length.
type Plane3[T Real] struct {
	Normal   Vec3[T]
	Constant T
}

// NewPlane3 returns the plane through pt with the given unit normal.
func NewPlane3[T Real](normal, pt Vec3[T]) Plane3[T] {
	return Plane3[T]{Normal: normal, Constant: normal.Dot(pt)}
}

// NewPlane3FromPoints returns the plane through three points, with the normal
// oriented by the right-hand rule. It reports false if the points are
// collinear.
func NewPlane3FromPoints[T Real](p0, p1, p2 Vec3[T]) (Plane3[T], bool) {
	n, ok := Normalize(p1.Sub(p0).Cross(p2.Sub(p0)))
	if !ok {
		return Plane3[T]{}, false
	}
	return NewPlane3(n, p0), true
}

// SignedDistance returns the signed distance of pt from the plane, positive on
// the side Normal points to.
func (p Plane3[T]) SignedDistance(pt Vec3[T]) T {
	return p.Normal.Dot(pt) - p.Constant
}

// Project returns the orthogonal projection of pt onto the plane.
func (p Plane3[T]) Project(pt Vec3[T]) Vec3[T] {
	return pt.Sub(p.Normal.Mul(p.SignedDistance(pt)))
}

// Halfspace3 is the closed half-space of points x with Normal·x ≥ Constant.
// Normal must be unit length.
type Halfspace3[T Real] struct {
	Normal   Vec3[T]
	Constant T
}

func (h Halfspace3[T]) Contains(pt Vec3[T]) bool {
	return h.Normal.Dot(pt) >= h.Constant
}

// Boundary returns the plane bounding the half-space.
func (h Halfspace3[T]) Boundary() Plane3[T] {
	return Plane3[T](h)
}

// Halfspace2 is the closed half-plane of points x with Normal·x ≥ Constant.
type Halfspace2[T Real] struct {
	Normal   Vec2[T]
	Constant T
}

// LeftOf returns the half-plane to the left of the directed line through p0
// and p1. The interior of a counterclockwise polygon is the intersection of
// the half-planes left of its edges.
func LeftOf[T Real](p0, p1 Vec2[T]) Halfspace2[T] {
	n := p1.Sub(p0).Perp().Negate()
	return Halfspace2[T]{Normal: n, Constant: n.Dot(p0)}
}

func (h Halfspace2[T]) Contains(pt Vec2[T]) bool {
	return h.Normal.Dot(pt) >= h.Constant
}

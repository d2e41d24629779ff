package geom

// AlignedBox is an axis-aligned box, the set of points x with Min ≤ x ≤ Max
// componentwise.
type AlignedBox[T Real, V Vector[T, V]] struct {
	Min V
	Max V
}

type (
	AlignedBox2[T Real] = AlignedBox[T, Vec2[T]]
	AlignedBox3[T Real] = AlignedBox[T, Vec3[T]]
)

// NewAlignedBoxFromPoints returns the smallest box containing p0 and p1.
func NewAlignedBoxFromPoints[T Real, V Vector[T, V]](p0, p1 V) AlignedBox[T, V] {
	return AlignedBox[T, V]{Min: MinVec(p0, p1), Max: MaxVec(p0, p1)}
}

// NewAlignedBoxFromCenter returns the box with the given center and half-extents.
func NewAlignedBoxFromCenter[T Real, V Vector[T, V]](center, extent V) AlignedBox[T, V] {
	return AlignedBox[T, V]{Min: center.Sub(extent), Max: center.Add(extent)}
}

func (b AlignedBox[T, V]) Center() V {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Extent returns the half-extents of the box.
func (b AlignedBox[T, V]) Extent() V {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// Contains reports whether pt lies in the closed box.
func (b AlignedBox[T, V]) Contains(pt V) bool {
	for i := range pt.Dim() {
		if x := pt.Comp(i); x < b.Min.Comp(i) || x > b.Max.Comp(i) {
			return false
		}
	}
	return true
}

// Volume returns the product of the box's side lengths, which is the area of
// a 2D box.
func (b AlignedBox[T, V]) Volume() T {
	var v T = 1
	for i := range b.Min.Dim() {
		v *= b.Max.Comp(i) - b.Min.Comp(i)
	}
	return v
}

// Union returns the smallest box enclosing b and o.
func (b AlignedBox[T, V]) Union(o AlignedBox[T, V]) AlignedBox[T, V] {
	return AlignedBox[T, V]{
		Min: MinVec(b.Min, o.Min),
		Max: MaxVec(b.Max, o.Max),
	}
}

// UnionPoint computes the union with one point.
//
// Thus, a succession of UnionPoint operations on a series of points yields
// their enclosing box.
func (b AlignedBox[T, V]) UnionPoint(pt V) AlignedBox[T, V] {
	return AlignedBox[T, V]{
		Min: MinVec(b.Min, pt),
		Max: MaxVec(b.Max, pt),
	}
}

// Inflate expands the box by d in every direction.
func (b AlignedBox[T, V]) Inflate(d T) AlignedBox[T, V] {
	for i := range b.Min.Dim() {
		b.Min = b.Min.WithComp(i, b.Min.Comp(i)-d)
		b.Max = b.Max.WithComp(i, b.Max.Comp(i)+d)
	}
	return b
}

func (b AlignedBox[T, V]) Translate(v V) AlignedBox[T, V] {
	return AlignedBox[T, V]{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

func (b AlignedBox[T, V]) IsInf() bool {
	return b.Min.IsInf() || b.Max.IsInf()
}

func (b AlignedBox[T, V]) IsNaN() bool {
	return b.Min.IsNaN() || b.Max.IsNaN()
}

// Vertices2 returns the corners of a 2D box in counterclockwise order, starting
// at Min.
func (b AlignedBox[T, V]) Vertices2() [4]Vec2[T] {
	x0, y0 := b.Min.Comp(0), b.Min.Comp(1)
	x1, y1 := b.Max.Comp(0), b.Max.Comp(1)
	return [4]Vec2[T]{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// OrientedFromAligned returns the box as an oriented box with the standard axes.
func OrientedFromAligned[T Real](b AlignedBox3[T]) OrientedBox3[T] {
	return OrientedBox3[T]{
		Center: b.Center(),
		Axis:   [3]Vec3[T]{UnitX[T](), UnitY[T](), UnitZ[T]()},
		Extent: b.Extent(),
	}
}

// OrientedBox2 is a rectangle in the plane with arbitrary orientation. Axis
// must be orthonormal and Extent holds the non-negative half-extents along
// each axis.
type OrientedBox2[T Real] struct {
	Center Vec2[T]
	Axis   [2]Vec2[T]
	Extent Vec2[T]
}

// NewOrientedBox2 returns the box with the given center and half-extents whose
// first axis makes angle th with the x axis.
func NewOrientedBox2[T Real](center Vec2[T], extent Vec2[T], th T) OrientedBox2[T] {
	u := VecFromAngle(th)
	return OrientedBox2[T]{
		Center: center,
		Axis:   [2]Vec2[T]{u, u.Perp().Negate()},
		Extent: extent,
	}
}

// ToLocal returns the coordinates of pt in the box's frame.
func (b OrientedBox2[T]) ToLocal(pt Vec2[T]) Vec2[T] {
	d := pt.Sub(b.Center)
	return Vec2[T]{d.Dot(b.Axis[0]), d.Dot(b.Axis[1])}
}

// FromLocal is the inverse of [OrientedBox2.ToLocal].
func (b OrientedBox2[T]) FromLocal(local Vec2[T]) Vec2[T] {
	return b.Center.Add(b.Axis[0].Mul(local.X)).Add(b.Axis[1].Mul(local.Y))
}

// Vertices returns the corners of the box in counterclockwise order, assuming
// the axes are right-handed.
func (b OrientedBox2[T]) Vertices() [4]Vec2[T] {
	e := b.Extent
	return [4]Vec2[T]{
		b.FromLocal(Vec2[T]{-e.X, -e.Y}),
		b.FromLocal(Vec2[T]{e.X, -e.Y}),
		b.FromLocal(Vec2[T]{e.X, e.Y}),
		b.FromLocal(Vec2[T]{-e.X, e.Y}),
	}
}

func (b OrientedBox2[T]) Contains(pt Vec2[T]) bool {
	l := b.ToLocal(pt)
	return abs(l.X) <= b.Extent.X && abs(l.Y) <= b.Extent.Y
}

// Transform applies a rigid transformation to the box. Scaling and skewing
// transforms produce a box whose axes are no longer orthonormal.
func (b OrientedBox2[T]) Transform(aff Affine[T]) OrientedBox2[T] {
	return OrientedBox2[T]{
		Center: b.Center.Transform(aff),
		Axis:   [2]Vec2[T]{aff.Linear(b.Axis[0]), aff.Linear(b.Axis[1])},
		Extent: b.Extent,
	}
}

// OrientedBox3 is a box in space with arbitrary orientation. Axis must be
// orthonormal and Extent holds the non-negative half-extents along each axis.
type OrientedBox3[T Real] struct {
	Center Vec3[T]
	Axis   [3]Vec3[T]
	Extent Vec3[T]
}

// NewOrientedBox3 returns the box whose axes are the standard axes rotated by q.
func NewOrientedBox3[T Real](center Vec3[T], extent Vec3[T], q Quaternion[T]) OrientedBox3[T] {
	return OrientedBox3[T]{
		Center: center,
		Axis:   q.Axes(),
		Extent: extent,
	}
}

func (b OrientedBox3[T]) ToLocal(pt Vec3[T]) Vec3[T] {
	d := pt.Sub(b.Center)
	return Vec3[T]{d.Dot(b.Axis[0]), d.Dot(b.Axis[1]), d.Dot(b.Axis[2])}
}

func (b OrientedBox3[T]) FromLocal(local Vec3[T]) Vec3[T] {
	return b.Center.
		Add(b.Axis[0].Mul(local.X)).
		Add(b.Axis[1].Mul(local.Y)).
		Add(b.Axis[2].Mul(local.Z))
}

func (b OrientedBox3[T]) Contains(pt Vec3[T]) bool {
	l := b.ToLocal(pt)
	return abs(l.X) <= b.Extent.X && abs(l.Y) <= b.Extent.Y && abs(l.Z) <= b.Extent.Z
}

// Vertices returns the eight corners of the box. Corner i has local
// coordinate ±Extent along axis j, positive if bit j of i is set.
func (b OrientedBox3[T]) Vertices() [8]Vec3[T] {
	var out [8]Vec3[T]
	for i := range out {
		l := b.Extent
		if i&1 == 0 {
			l.X = -l.X
		}
		if i&2 == 0 {
			l.Y = -l.Y
		}
		if i&4 == 0 {
			l.Z = -l.Z
		}
		out[i] = b.FromLocal(l)
	}
	return out
}

// Rotate returns the box rotated by q about its center. The axes are derived
// from the rotated frame and re-orthonormalized.
func (b OrientedBox3[T]) Rotate(q Quaternion[T]) OrientedBox3[T] {
	m := q.Normalize().Matrix()
	axes := [3]Vec3[T]{m.MulVec(b.Axis[0]), m.MulVec(b.Axis[1]), m.MulVec(b.Axis[2])}
	if o, ok := Orthonormalize(axes); ok {
		axes = o
	}
	b.Axis = axes
	return b
}

// projectionRadius returns the half-length of the box's projection onto the
// axis direction d, scaled by |d|.
func (b OrientedBox3[T]) projectionRadius(d Vec3[T]) T {
	return b.Extent.X*abs(b.Axis[0].Dot(d)) +
		b.Extent.Y*abs(b.Axis[1].Dot(d)) +
		b.Extent.Z*abs(b.Axis[2].Dot(d))
}

func (b OrientedBox2[T]) projectionRadius(d Vec2[T]) T {
	return b.Extent.X*abs(b.Axis[0].Dot(d)) + b.Extent.Y*abs(b.Axis[1].Dot(d))
}

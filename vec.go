package geom

// Vector is implemented by the fixed-size vector types [Vec2] and [Vec3]. It
// allows shapes and queries to be written once for any dimension. V is the
// implementing type itself.
type Vector[T Real, V any] interface {
	Add(o V) V
	Sub(o V) V
	Mul(f T) V
	Dot(o V) T
	Hypot() T
	Hypot2() T
	Lerp(o V, t T) V
	// Dim returns the number of components.
	Dim() int
	// Comp returns the i-th component.
	Comp(i int) T
	// WithComp returns a copy of the vector with the i-th component set to x.
	WithComp(i int, x T) V
	IsNaN() bool
	IsInf() bool
	String() string
}

// Normalize returns v scaled to unit length. It reports false, and returns
// the zero vector, when v has zero length.
func Normalize[T Real, V Vector[T, V]](v V) (V, bool) {
	l := v.Hypot()
	if l == 0 {
		var zero V
		return zero, false
	}
	return v.Mul(1 / l), true
}

// Distance returns the euclidean distance between two points.
func Distance[T Real, V Vector[T, V]](p, q V) T {
	return p.Sub(q).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func DistanceSquared[T Real, V Vector[T, V]](p, q V) T {
	return p.Sub(q).Hypot2()
}

// Midpoint returns the midpoint of two points.
func Midpoint[T Real, V Vector[T, V]](p, q V) V {
	return p.Add(q).Mul(0.5)
}

// componentwise applies f to each component of a and b.
func componentwise[T Real, V Vector[T, V]](a, b V, f func(x, y T) T) V {
	for i := range a.Dim() {
		a = a.WithComp(i, f(a.Comp(i), b.Comp(i)))
	}
	return a
}

// MinVec returns the componentwise minimum of a and b.
func MinVec[T Real, V Vector[T, V]](a, b V) V {
	return componentwise(a, b, func(x, y T) T { return min(x, y) })
}

// MaxVec returns the componentwise maximum of a and b.
func MaxVec[T Real, V Vector[T, V]](a, b V) V {
	return componentwise(a, b, func(x, y T) T { return max(x, y) })
}

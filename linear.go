package geom

// Line is the infinite line Origin + t·Direction, t ∈ (-∞, ∞).
//
// Direction need not be unit length. A zero Direction degenerates the line to
// the point Origin, which all queries handle.
type Line[T Real, V Vector[T, V]] struct {
	Origin    V
	Direction V
}

// Ray is the half-line Origin + t·Direction, t ∈ [0, ∞).
type Ray[T Real, V Vector[T, V]] struct {
	Origin    V
	Direction V
}

// Segment represents a line segment between P0 and P1. Its parametric form is
// P0 + t·(P1 − P0), t ∈ [0, 1].
type Segment[T Real, V Vector[T, V]] struct {
	// The segment's start point.
	P0 V
	// The segment's end point.
	P1 V
}

type (
	Line2[T Real]    = Line[T, Vec2[T]]
	Line3[T Real]    = Line[T, Vec3[T]]
	Ray2[T Real]     = Ray[T, Vec2[T]]
	Ray3[T Real]     = Ray[T, Vec3[T]]
	Segment2[T Real] = Segment[T, Vec2[T]]
	Segment3[T Real] = Segment[T, Vec3[T]]
)

func (l Line[T, V]) Eval(t T) V {
	return l.Origin.Add(l.Direction.Mul(t))
}

func (r Ray[T, V]) Eval(t T) V {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Line returns the line that contains the ray.
func (r Ray[T, V]) Line() Line[T, V] {
	return Line[T, V](r)
}

// NewSegmentCentered returns the segment with the given center, unit direction
// and half-length.
func NewSegmentCentered[T Real, V Vector[T, V]](center, direction V, extent T) Segment[T, V] {
	d := direction.Mul(extent)
	return Segment[T, V]{
		P0: center.Sub(d),
		P1: center.Add(d),
	}
}

// Eval returns the point at parameter t ∈ [0, 1].
func (s Segment[T, V]) Eval(t T) V {
	return s.P0.Lerp(s.P1, t)
}

// Length returns the length of the segment.
func (s Segment[T, V]) Length() T {
	return s.P1.Sub(s.P0).Hypot()
}

// Center returns the segment's midpoint.
func (s Segment[T, V]) Center() V {
	return s.P0.Add(s.P1).Mul(0.5)
}

// CenteredForm returns the segment as center + t·direction, t ∈ [-extent,
// extent], with a unit direction. A zero-length segment has a zero direction.
func (s Segment[T, V]) CenteredForm() (center, direction V, extent T) {
	center = s.Center()
	d, ok := Normalize(s.P1.Sub(s.P0))
	if !ok {
		return center, d, 0
	}
	return center, d, 0.5 * s.Length()
}

// Line returns the line that contains the segment, parametrized such that
// parameters 0 and 1 are the segment's endpoints.
func (s Segment[T, V]) Line() Line[T, V] {
	return Line[T, V]{Origin: s.P0, Direction: s.P1.Sub(s.P0)}
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment[T, V]) Reverse() Segment[T, V] {
	return Segment[T, V]{P0: s.P1, P1: s.P0}
}

func (s Segment[T, V]) IsInf() bool {
	return s.P0.IsInf() || s.P1.IsInf()
}

func (s Segment[T, V]) IsNaN() bool {
	return s.P0.IsNaN() || s.P1.IsNaN()
}

// linear is the common view of lines, rays and segments used by the distance
// queries: Origin + t·Direction with t ∈ [lo, hi].
type linear[T Real, V Vector[T, V]] struct {
	origin    V
	direction V
	lo, hi    T
}

func (l linear[T, V]) eval(t T) V {
	return l.origin.Add(l.direction.Mul(t))
}

func (l Line[T, V]) linear() linear[T, V] {
	return linear[T, V]{l.Origin, l.Direction, inf[T](-1), inf[T](1)}
}

func (r Ray[T, V]) linear() linear[T, V] {
	return linear[T, V]{r.Origin, r.Direction, 0, inf[T](1)}
}

func (s Segment[T, V]) linear() linear[T, V] {
	return linear[T, V]{s.P0, s.P1.Sub(s.P0), 0, 1}
}

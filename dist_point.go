package geom

// The queries in this file treat their second argument as a solid: a point
// inside the shape has distance zero and is its own closest point.

// DistPointAlignedBox returns the distance from pt to the box, found by
// clamping each coordinate to the box's extent.
func DistPointAlignedBox[T Real, V Vector[T, V]](pt V, b AlignedBox[T, V]) DistanceResult[T, V] {
	closest := pt
	for i := range pt.Dim() {
		closest = closest.WithComp(i, clamp(pt.Comp(i), b.Min.Comp(i), b.Max.Comp(i)))
	}
	return newDistanceResult(pt, closest)
}

// DistPointOrientedBox2 returns the distance from pt to the box. The point is
// expressed in the box's frame, where the box is axis-aligned and the
// coordinates can be clamped independently.
func DistPointOrientedBox2[T Real](pt Vec2[T], b OrientedBox2[T]) DistanceResult[T, Vec2[T]] {
	l := b.ToLocal(pt)
	l.X = clamp(l.X, -b.Extent.X, b.Extent.X)
	l.Y = clamp(l.Y, -b.Extent.Y, b.Extent.Y)
	return newDistanceResult(pt, b.FromLocal(l))
}

// DistPointOrientedBox3 returns the distance from pt to the box.
func DistPointOrientedBox3[T Real](pt Vec3[T], b OrientedBox3[T]) DistanceResult[T, Vec3[T]] {
	l := b.ToLocal(pt)
	l.X = clamp(l.X, -b.Extent.X, b.Extent.X)
	l.Y = clamp(l.Y, -b.Extent.Y, b.Extent.Y)
	l.Z = clamp(l.Z, -b.Extent.Z, b.Extent.Z)
	return newDistanceResult(pt, b.FromLocal(l))
}

// DistPointHypersphere returns the distance from pt to the ball. A zero radius
// makes the ball a point.
func DistPointHypersphere[T Real, V Vector[T, V]](pt V, s Hypersphere[T, V]) DistanceResult[T, V] {
	d := pt.Sub(s.Center)
	l := d.Hypot()
	if l <= s.Radius {
		return newDistanceResult(pt, pt)
	}
	return newDistanceResult(pt, s.Center.Add(d.Mul(s.Radius/l)))
}

// DistPointPlane3 returns the distance from pt to the plane. Unlike the
// other queries in this file, the plane has no interior.
func DistPointPlane3[T Real](pt Vec3[T], p Plane3[T]) DistanceResult[T, Vec3[T]] {
	return newDistanceResult(pt, p.Project(pt))
}

// DistPointHalfspace3 returns the distance from pt to the half-space.
func DistPointHalfspace3[T Real](pt Vec3[T], h Halfspace3[T]) DistanceResult[T, Vec3[T]] {
	if h.Contains(pt) {
		return newDistanceResult(pt, pt)
	}
	return newDistanceResult(pt, h.Boundary().Project(pt))
}

// DistPointTriangle returns the distance from pt to the triangle.
//
// The orthogonal projection of pt onto the triangle's plane is the closest
// point if its barycentric coordinates are all non-negative. Otherwise the
// closest point lies on the boundary and is the closest of the edges' closest
// points. Degenerate triangles are handled by their edges alone.
func DistPointTriangle[T Real, V Vector[T, V]](pt V, tri Triangle[T, V], tol Tolerance[T]) DistanceResult[T, V] {
	if u, v, ok := tri.Barycentric(pt, tol); ok && u >= 0 && v >= 0 && u+v <= 1 {
		r := newDistanceResult(pt, tri.Eval(u, v))
		if pt.Dim() == 2 {
			// The projection of a 2D point is the point itself.
			r.Distance, r.SqrDistance, r.ClosestPoint[1] = 0, 0, pt
		}
		return r
	}
	var best DistanceResult[T, V]
	for i := range 3 {
		r := DistPointSegment(pt, tri.Edge(i))
		if i == 0 || r.SqrDistance < best.SqrDistance {
			best = r
		}
	}
	best.Parameter[1] = 0
	return best
}

// DistPointRectangle3 returns the distance from pt to the rectangle.
func DistPointRectangle3[T Real](pt Vec3[T], r Rectangle3[T]) DistanceResult[T, Vec3[T]] {
	l := r.ToLocal(pt)
	l.X = clamp(l.X, -r.Extent.X, r.Extent.X)
	l.Y = clamp(l.Y, -r.Extent.Y, r.Extent.Y)
	return newDistanceResult(pt, r.FromLocal(l))
}

// DistPointCapsule3 returns the distance from pt to the capsule.
func DistPointCapsule3[T Real](pt Vec3[T], c Capsule3[T]) DistanceResult[T, Vec3[T]] {
	return DistPointHypersphere(pt, Sphere3[T]{
		Center: DistPointSegment(pt, c.Segment).ClosestPoint[1],
		Radius: c.Radius,
	})
}

// DistPointCylinder3 returns the distance from pt to the cylinder. The
// cylinder is the product of a disk and an interval along the axis, so the
// radial and axial offsets are clamped independently.
func DistPointCylinder3[T Real](pt Vec3[T], c Cylinder3[T]) DistanceResult[T, Vec3[T]] {
	u := c.Axis.Direction
	d := pt.Sub(c.Axis.Origin)
	h := d.Dot(u)
	radial := d.Sub(u.Mul(h))
	if rl := radial.Hypot(); rl > c.Radius {
		radial = radial.Mul(c.Radius / rl)
	}
	h = clamp(h, -c.Height/2, c.Height/2)
	return newDistanceResult(pt, c.Axis.Origin.Add(u.Mul(h)).Add(radial))
}

// DistPointCone3 returns the distance from pt to the solid cone.
//
// The cone is rotationally symmetric, so the problem reduces to the half-plane
// spanned by the axis and pt, with coordinates (h, r) for the height along the
// axis and the distance from it. There the cone is a trapezoid (a triangle for
// MinHeight 0, unbounded for an infinite MaxHeight) and which parts of its
// boundary can be closest depends on whether pt lies below MinHeight, above
// MaxHeight or in between.
func DistPointCone3[T Real](pt Vec3[T], c Cone3[T]) DistanceResult[T, Vec3[T]] {
	h, r := c.heightRadius(pt)
	if h >= c.MinHeight && h <= c.MaxHeight && r <= h*c.TanAngle {
		return newDistanceResult(pt, pt)
	}

	q := Vec2[T]{h, r}
	lateralDir := Vec2[T]{c.CosAngle, c.SinAngle}
	bottomRim := Vec2[T]{c.MinHeight, c.MinHeight * c.TanAngle}
	var lateral DistanceResult[T, Vec2[T]]
	if c.IsInfinite() {
		lateral = DistPointRay(q, Ray2[T]{Origin: bottomRim, Direction: lateralDir})
	} else {
		topRim := Vec2[T]{c.MaxHeight, c.MaxHeight * c.TanAngle}
		lateral = DistPointSegment(q, Segment2[T]{P0: bottomRim, P1: topRim})
	}

	best := lateral
	switch {
	case h < c.MinHeight:
		bottom := DistPointSegment(q, Segment2[T]{P0: Vec2[T]{c.MinHeight, 0}, P1: bottomRim})
		if bottom.SqrDistance < best.SqrDistance {
			best = bottom
		}
	case h > c.MaxHeight:
		top := DistPointSegment(q, Segment2[T]{
			P0: Vec2[T]{c.MaxHeight, 0},
			P1: Vec2[T]{c.MaxHeight, c.MaxHeight * c.TanAngle},
		})
		if top.SqrDistance < best.SqrDistance {
			best = top
		}
	}

	// Map the closest point in the half-plane back to space.
	axis := c.Ray.Direction
	radial := pt.Sub(c.Ray.Origin).Sub(axis.Mul(h))
	if r > 0 {
		radial = radial.Mul(1 / r)
	} else {
		radial, _ = OrthonormalBasis(axis)
	}
	cp := best.ClosestPoint[1]
	closest := c.Ray.Origin.Add(axis.Mul(cp.X)).Add(radial.Mul(cp.Y))
	return newDistanceResult(pt, closest)
}

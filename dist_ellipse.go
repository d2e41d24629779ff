package geom

import (
	"slices"
)

// Distances to ellipses and ellipsoids have no closed form. The queries below
// follow David Eberly's "Distance from a Point to an Ellipse, an Ellipsoid, or a
// Hyperellipsoid": the point is reflected into the first octant of the shape's
// frame, the axes are sorted by decreasing extent, and the closest point is
// found from the unique root of a monotonic function, bracketed and solved
// with [SolveITP].
//
// Unlike the other point queries, these measure the distance to the boundary
// curve or surface, so a point inside has a positive distance. In particular,
// the center is at the distance of the smallest semi-axis. Use the shapes'
// Contains methods to test for containment.

// DistPointEllipse2 returns the distance from pt to the boundary of the ellipse.
func DistPointEllipse2[T Real](pt Vec2[T], e Ellipse2[T], tol Tolerance[T]) DistanceResult[T, Vec2[T]] {
	d := pt.Sub(e.Center)
	y := [2]T{d.Dot(e.Axis[0]), d.Dot(e.Axis[1])}
	ext := [2]T{e.Extent.X, e.Extent.Y}
	x := closestOnHyperellipsoid(ext[:], y[:], tol)
	closest := e.Center.Add(e.Axis[0].Mul(x[0])).Add(e.Axis[1].Mul(x[1]))
	return newDistanceResult(pt, closest)
}

// DistPointEllipsoid3 returns the distance from pt to the surface of the
// ellipsoid.
func DistPointEllipsoid3[T Real](pt Vec3[T], e Ellipsoid3[T], tol Tolerance[T]) DistanceResult[T, Vec3[T]] {
	l := e.ToLocal(pt)
	y := [3]T{l.X, l.Y, l.Z}
	ext := [3]T{e.Extent.X, e.Extent.Y, e.Extent.Z}
	x := closestOnHyperellipsoid(ext[:], y[:], tol)
	return newDistanceResult(pt, e.FromLocal(Vec3[T]{x[0], x[1], x[2]}))
}

// closestOnHyperellipsoid returns the point on the axis-aligned hyperellipsoid
// with the given extents that is closest to y.
func closestOnHyperellipsoid[T Real](extent, y []T, tol Tolerance[T]) []T {
	n := len(extent)
	// Sort the axes by decreasing extent and reflect y into the first octant.
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(i, j int) int {
		switch {
		case extent[i] > extent[j]:
			return -1
		case extent[i] < extent[j]:
			return 1
		default:
			return 0
		}
	})
	e := make([]T, n)
	ya := make([]T, n)
	for i, p := range perm {
		e[i] = extent[p]
		ya[i] = abs(y[p])
	}

	xa := sortedClosest(e, ya, tol)

	x := make([]T, n)
	for i, p := range perm {
		x[p] = copysign(xa[i], y[p])
	}
	return x
}

// sortedClosest solves the problem for e[0] ≥ e[1] ≥ ... > 0 and y ≥ 0.
func sortedClosest[T Real](e, y []T, tol Tolerance[T]) []T {
	n := len(e)
	x := make([]T, n)
	if n == 1 {
		x[0] = e[0]
		return x
	}

	if y[n-1] > 0 {
		// Find the components of y that are zero. The closest point has zero
		// components there too, and the problem reduces to the positive ones,
		// except that the smallest axis always takes part.
		var idx []int
		for i := range n {
			if y[i] > 0 {
				idx = append(idx, i)
			}
		}
		if len(idx) < n {
			se := make([]T, len(idx))
			sy := make([]T, len(idx))
			for k, i := range idx {
				se[k], sy[k] = e[i], y[i]
			}
			sx := sortedClosest(se, sy, tol)
			for k, i := range idx {
				x[i] = sx[k]
			}
			return x
		}

		z := make([]T, n)
		var g T = -1
		for i := range n {
			z[i] = y[i] / e[i]
			g += z[i] * z[i]
		}
		if g == 0 {
			copy(x, y)
			return x
		}
		r := make([]T, n)
		for i := range n {
			r[i] = (e[i] / e[n-1]) * (e[i] / e[n-1])
		}
		s := hyperellipsoidRoot(r, z, g, tol)
		for i := range n {
			x[i] = r[i] * y[i] / (s + r[i])
		}
		return x
	}

	// y[n-1] == 0. The closest point may leave the hyperplane of the
	// smallest axis if y is close enough to the center.
	emin := e[n-1]
	var discr T = 1
	inside := true
	for i := range n - 1 {
		denom := e[i]*e[i] - emin*emin
		numer := e[i] * y[i]
		if numer >= denom {
			inside = false
			break
		}
		xde := numer / denom
		x[i] = e[i] * xde
		discr -= xde * xde
	}
	if inside && discr > 0 {
		x[n-1] = emin * sqrt(discr)
		return x
	}

	sx := sortedClosest(e[:n-1], y[:n-1], tol)
	copy(x, sx)
	x[n-1] = 0
	return x
}

// hyperellipsoidRoot returns the root of
//
//	F(s) = Σ (r[i]·z[i] / (s + r[i]))² − 1
//
// which is strictly decreasing for s > −1. g is F(0).
func hyperellipsoidRoot[T Real](r, z []T, g T, tol Tolerance[T]) T {
	n := len(r)
	f := func(s T) T {
		var sum T = -1
		for i := range n {
			t := r[i] * z[i] / (s + r[i])
			sum += t * t
		}
		// SolveITP expects an increasing function.
		return -sum
	}

	s0 := z[n-1] - 1
	var s1 T
	if g >= 0 {
		var l2 T
		for i := range n {
			l2 += r[i] * z[i] * r[i] * z[i]
		}
		s1 = sqrt(l2) - 1
	}
	if s1 <= s0 {
		return s0
	}
	eps := tol.Relative * max(abs(s0), abs(s1), 1)
	if eps <= 0 {
		eps = (s1 - s0) / (1 << 20)
	}
	return SolveITP(f, s0, s1, eps, 1, 0.2/(s1-s0), f(s0), f(s1), tol.iterations())
}

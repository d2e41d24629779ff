package geom

// Tolerance controls how queries decide that a configuration is numerically
// degenerate, and how long iterative solvers may run.
//
// All degeneracy tests in this package are relative: a quantity is considered
// zero when its magnitude does not exceed Relative times the magnitudes of the
// values it was computed from. For example, two directions d0 and d1 are
// parallel when |d0×d1|² <= Relative·|d0|²·|d1|². This makes the outcome of a
// query independent of the scale of its inputs.
//
// The zero Tolerance is valid and treats only exact zeros as degenerate, with
// iterative solvers falling back to [DefaultMaxIterations].
type Tolerance[T Real] struct {
	// Relative is the relative epsilon used for degeneracy tests.
	Relative T
	// MaxIterations bounds the number of iterations of iterative solvers, such
	// as the point-ellipsoid distance and the convex distance engine. Solvers
	// that run out of iterations return their best estimate.
	MaxIterations int
}

// DefaultMaxIterations is the iteration budget used when a Tolerance doesn't
// specify one.
const DefaultMaxIterations = 128

// DefaultTolerance returns the tolerance used by the package's examples and
// tests. Relative is 1e-5 for single precision and 1e-10 for double precision.
func DefaultTolerance[T Real]() Tolerance[T] {
	if is32[T]() {
		return Tolerance[T]{Relative: 1e-5, MaxIterations: DefaultMaxIterations}
	}
	return Tolerance[T]{Relative: 1e-10, MaxIterations: DefaultMaxIterations}
}

// Negligible reports whether x is negligible compared to scale, that is,
// |x| <= Relative·|scale|.
func (tol Tolerance[T]) Negligible(x, scale T) bool {
	return abs(x) <= tol.Relative*abs(scale)
}

func (tol Tolerance[T]) iterations() int {
	if tol.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return tol.MaxIterations
}

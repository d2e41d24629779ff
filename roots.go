package geom

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// This function tries to be quite numerically robust. If the equation is nearly
// linear, it will return the root ignoring the quadratic term; the other root
// might be out of representable range. In the degenerate case where all
// coefficients are zero, so that all values of x satisfy the equation, a single
// 0.0 is returned.
//
// Roots are returned in ascending order.
func SolveQuadratic[T Real](c0, c1, c2 T) ([2]T, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if isInf(sc0) || isInf(sc1) || isNaN(sc0) || isNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !isInf(root) && !isNaN(root) {
			return [2]T{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]T{0}, 1
		} else {
			return [2]T{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 T
	if isInf(arg) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]T{}, 0
		} else if arg == 0.0 {
			return [2]T{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + copysign(sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !isInf(root2) && !isNaN(root2) {
		// Sort just to be friendly and make results deterministic.
		if root2 > root1 {
			return [2]T{root1, root2}, 2
		} else {
			return [2]T{root2, root1}, 2
		}
	} else {
		return [2]T{root1}, 1
	}
}

// SolveITP finds a root using the [ITP method].
//
// The ITP method, as described in the paper [An Enhancement of the Bisection
// Method Average Performance Preserving Minmax Optimality], is a modern
// improvement on the bisection method that combines bisection with a secant
// step. It requires f(a) < 0 < f(b), where a and b are the bounds of the
// bracket searched for a solution; ya and yb are f(a) and f(b).
//
// The ITP method has tuning parameters. This implementation hardwires k2 to 2,
// both because it avoids an expensive floating point exponentiation and because
// this value has been tested to work well in practice.
//
// The n0 parameter controls the relative impact of the bisection and secant
// components. When it is 0, the number of iterations is guaranteed to be no
// more than the number required by bisection (thus, this method is strictly
// superior to bisection). However, when the function is smooth, a value of 1
// gives the secant method more of a chance to engage, so the average number of
// iterations is likely lower, though there can be one more iteration than
// bisection in the worst case.
//
// The k1 parameter is harder to characterize, and interested users are referred
// to the paper, as well as encouraged to do empirical testing. To match the
// paper, a value of 0.2 / (b - a) is suggested, and this is confirmed to give
// good results.
//
// maxIter bounds the number of evaluations of f. When the budget runs out, the
// midpoint of the remaining bracket is returned. A value of 0 means no bound
// beyond the one implied by epsilon.
//
// When the function is monotonic, the returned result is guaranteed to be
// within epsilon of the zero crossing, unless maxIter cut the search short.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
func SolveITP[T Real](
	f func(T) T,
	a T,
	b T,
	epsilon T,
	n0 int,
	k1 T,
	ya T,
	yb T,
	maxIter int,
) T {
	n1_2 := 0
	for w := (b - a) / epsilon; w > 2 && !isInf(w); w /= 2 {
		n1_2++
	}
	nmax := n0 + n1_2
	scaledEpsilon := epsilon
	for range nmax {
		scaledEpsilon *= 2
	}
	for iter := 0; b-a > 2.0*epsilon; iter++ {
		if maxIter > 0 && iter >= maxIter {
			break
		}
		x1_2 := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		// This has k2 = 2 hardwired for efficiency.
		delta := k1 * ((b - a) * (b - a))
		var xt T
		if delta <= abs(x1_2-xf) {
			xt = xf + copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp T
		if abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - copysign(r, sigma)
		}
		yitp := f(xitp)
		if yitp > 0.0 {
			b = xitp
			yb = yitp
		} else if yitp < 0.0 {
			a = xitp
			ya = yitp
		} else {
			return xitp
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) unwrap() T {
	if !opt.isSet {
		panic("option isn't set")
	}
	return opt.value
}

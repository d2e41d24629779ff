package geom

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Real is the set of scalar types that shapes and queries can be instantiated
// with.
type Real interface {
	constraints.Float
}

// The scalar helpers below route single-precision values through math32 so
// that float32 queries never round-trip through float64 on the hot path.

func is32[T Real]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

func sqrt[T Real](x T) T {
	if is32[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

func abs[T Real](x T) T {
	if is32[T]() {
		return T(math32.Abs(float32(x)))
	}
	return T(math.Abs(float64(x)))
}

func hypot[T Real](p, q T) T {
	if is32[T]() {
		return T(math32.Hypot(float32(p), float32(q)))
	}
	return T(math.Hypot(float64(p), float64(q)))
}

func atan2[T Real](y, x T) T {
	if is32[T]() {
		return T(math32.Atan2(float32(y), float32(x)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}

func sincos[T Real](x T) (sin, cos T) {
	if is32[T]() {
		s, c := math32.Sincos(float32(x))
		return T(s), T(c)
	}
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

func tan[T Real](x T) T {
	if is32[T]() {
		return T(math32.Tan(float32(x)))
	}
	return T(math.Tan(float64(x)))
}

func copysign[T Real](f, sign T) T {
	if is32[T]() {
		return T(math32.Copysign(float32(f), float32(sign)))
	}
	return T(math.Copysign(float64(f), float64(sign)))
}

func isNaN[T Real](x T) bool {
	return x != x
}

func isInf[T Real](x T) bool {
	if is32[T]() {
		return math32.IsInf(float32(x), 0)
	}
	return math.IsInf(float64(x), 0)
}

// inf returns positive infinity if sign >= 0, negative infinity otherwise.
func inf[T Real](sign int) T {
	if is32[T]() {
		return T(math32.Inf(sign))
	}
	return T(math.Inf(sign))
}

func clamp[T Real](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func sign[T Real](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

package vectorlengths

import "math/big"

// BisectRoot finds, by bisection, the real root of the monotonically
// increasing function f within [lo, hi], to the given precision in bits,
// performing iterations refinement steps. It is a small, dependency-free
// stand-in for a general algebraic arithmetic module, which is out of
// scope here; this is a minimal from-scratch implementation used only to
// seed the reference backend's algebraic-basis test fixtures.
func BisectRoot(f func(*big.Float) *big.Float, lo, hi float64, prec uint, iterations int) *big.Float {
	l := new(big.Float).SetPrec(prec).SetFloat64(lo)
	h := new(big.Float).SetPrec(prec).SetFloat64(hi)

	for i := 0; i < iterations; i++ {
		mid := new(big.Float).SetPrec(prec).Add(l, h)
		mid.Quo(mid, big.NewFloat(2).SetPrec(prec))
		if f(mid).Sign() < 0 {
			l = mid
		} else {
			h = mid
		}
	}

	mid := new(big.Float).SetPrec(prec).Add(l, h)
	mid.Quo(mid, big.NewFloat(2).SetPrec(prec))

	return mid
}

// CubicRoot returns the real root of x^3 + a2*x^2 + a1*x + a0 in [lo, hi]
// (which must bracket exactly one root of the monic cubic), to the given
// precision, via BisectRoot.
func CubicRoot(a2, a1, a0 float64, lo, hi float64, prec uint, iterations int) *big.Float {
	f := func(x *big.Float) *big.Float {
		x2 := new(big.Float).SetPrec(prec).Mul(x, x)
		x3 := new(big.Float).SetPrec(prec).Mul(x2, x)

		out := new(big.Float).SetPrec(prec).Set(x3)
		out.Add(out, new(big.Float).SetPrec(prec).Mul(big.NewFloat(a2).SetPrec(prec), x2))
		out.Add(out, new(big.Float).SetPrec(prec).Mul(big.NewFloat(a1).SetPrec(prec), x))
		out.Add(out, big.NewFloat(a0).SetPrec(prec))

		return out
	}

	return BisectRoot(f, lo, hi, prec, iterations)
}

// SqrtRoot returns the positive square root of d, to the given precision,
// via BisectRoot.
func SqrtRoot(d float64, prec uint, iterations int) *big.Float {
	f := func(x *big.Float) *big.Float {
		out := new(big.Float).SetPrec(prec).Mul(x, x)
		out.Sub(out, big.NewFloat(d).SetPrec(prec))

		return out
	}

	hi := d
	if hi < 1 {
		hi = 1
	}

	return BisectRoot(f, 0, hi+1, prec, iterations)
}

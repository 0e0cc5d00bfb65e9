package quad

import (
	"math"

	"github.com/ember-math/xfloat/xmath"
)

// scaleExponent rebases a finite Quad's exponent by delta, saturating to
// zero/infinity at the same cliffs newFinite enforces. Sentinels pass
// through unchanged. The addition is overflow-checked the same way
// combineExponents checks it in arithmetic.go, since delta is not bounded to
// a small rounding bias here (Exp2 passes the integer part of an arbitrary
// binary64).
func scaleExponent(q Quad, delta int64) Quad {
	switch classify(q) {
	case classZero, classNaN, classPosInf, classNegInf:
		return q
	}
	return newFinite(q.sign(), explicitSignificand(q.fracBits()), combineExponents(q.Exponent, delta, 0))
}

// Pow returns base raised to the power exponent. An integer exponent
// dispatches to repeated squaring for exactness (negative integer exponents
// via the reciprocal of the positive power); a non-integer exponent falls
// back to the binary64 pow of the unit significand via Exp2/Log2, matching
// bigdouble's Pow(b BigDouble, p float64). A negative base raised to a
// non-integer power is NaN, since Quad has no complex result type.
func Pow(base Quad, exponent float64) Quad {
	if base.IsNaN() || math.IsNaN(exponent) {
		return NaN()
	}
	if exponent == 0 {
		return One
	}
	if base.IsZero() {
		if exponent < 0 {
			return Inf(1)
		}
		return Zero
	}
	if isIntegerExponent(exponent) {
		n := int64(exponent)
		if n < 0 {
			return Div(One, powPositive(base, -n))
		}
		return powPositive(base, n)
	}
	if base.IsNegative() {
		return NaN()
	}
	return Exp2(Mul(Log2(base), FromFloat64(exponent)))
}

// isIntegerExponent reports whether p is an integer exponent small enough to
// hand to powPositive's repeated-squaring loop as an int64 without itself
// overflowing on conversion.
func isIntegerExponent(p float64) bool {
	return p == math.Trunc(p) && math.Abs(p) < 1e18
}

func powPositive(base Quad, exponent int64) Quad {
	result := One
	for exponent > 0 {
		if exponent&1 == 1 {
			result = Mul(result, base)
		}
		base = Mul(base, base)
		exponent >>= 1
	}
	return result
}

// Log2 returns the base-2 logarithm of q: the exponent field is already a
// base-2 exponent, so this is just Exponent + log2(1.fraction).
func Log2(q Quad) Quad {
	if q.IsNaN() || q.IsNegative() {
		return NaN()
	}
	if q.IsZero() {
		return Inf(-1)
	}
	if q.IsPositiveInfinity() {
		return Inf(1)
	}
	frac := float64(explicitSignificand(q.fracBits())) / float64(uint64(1)<<63)
	return Add(FromInt64(q.Exponent), FromFloat64(math.Log2(frac)))
}

// Ln returns the natural logarithm of q.
func Ln(q Quad) Quad {
	return Mul(Log2(q), FromFloat64(xmath.Ln2))
}

// Log10 returns the base-10 logarithm of q.
func Log10(q Quad) Quad {
	return Mul(Log2(q), FromFloat64(xmath.Log10_2))
}

// Log returns the logarithm of q in an arbitrary base.
func Log(q Quad, base float64) Quad {
	return Div(Log2(q), FromFloat64(math.Log2(base)))
}

// Exp2 returns 2^q.
func Exp2(q Quad) Quad {
	if q.IsNaN() {
		return NaN()
	}
	if q.IsPositiveInfinity() {
		return Inf(1)
	}
	if q.IsNegativeInfinity() {
		return Zero
	}
	f := q.ToFloat64()
	whole := math.Floor(f)
	frac := f - whole
	mantissaScale := math.Exp2(frac) // in [1, 2)
	return scaleExponent(FromFloat64(mantissaScale), int64(whole))
}

// Exp returns e^q.
func Exp(q Quad) Quad {
	return Exp2(Mul(q, FromFloat64(1/xmath.Ln2)))
}

// Sqrt returns the square root of q, computed directly from the
// significand/exponent split rather than through Log2/Exp2: halving an even
// exponent is exact, and an odd exponent is absorbed into the significand
// before taking its square root in binary64.
func Sqrt(q Quad) Quad {
	if q.IsNaN() || q.IsNegative() {
		return NaN()
	}
	if q.IsZero() {
		return Zero
	}
	if q.IsPositiveInfinity() {
		return Inf(1)
	}

	frac := float64(explicitSignificand(q.fracBits())) / float64(uint64(1)<<63)
	exponent := q.Exponent
	if exponent%2 != 0 {
		frac *= 2
		exponent--
	}
	return scaleExponent(FromFloat64(math.Sqrt(frac)), exponent/2)
}

// Cbrt returns the cube root of q, preserving sign for negative q.
func Cbrt(q Quad) Quad {
	if q.IsNaN() {
		return NaN()
	}
	if q.IsZero() {
		return Zero
	}
	if q.IsNegativeInfinity() {
		return Inf(-1)
	}
	if q.IsPositiveInfinity() {
		return Inf(1)
	}
	if q.IsNegative() {
		return Negate(cbrtPositive(Negate(q)))
	}
	return cbrtPositive(q)
}

func cbrtPositive(q Quad) Quad {
	return Exp2(Div(Log2(q), FromFloat64(3)))
}

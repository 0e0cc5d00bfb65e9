package bigdouble

import (
	"math"

	"github.com/ember-math/xfloat/xmath"
)

// Pow returns b raised to the power p.
//
// Fast path: when p is an integer and the mantissa is exactly 1 (a pure
// power of 10), the result is just a rescaled exponent.
//
// Otherwise let t = exponent * p. If t is itself an integer within
// ExpLimit, new_mantissa = mantissa^p is computed directly and, if finite,
// normalized against t. The general path splits t into its integer and
// fractional parts and folds the fractional part into the mantissa via
// 10^(p*log10(mantissa) + frac); if that overflows binary64, Pow falls back
// to 10^(p * log10(|b|)), fixing the sign back up for a negative base raised
// to an odd integer power.
func Pow(b BigDouble, p float64) BigDouble {
	if b.IsNaN() {
		return NaN()
	}
	if p == 0 {
		return One
	}
	if b.Mantissa == 0 {
		if p < 0 {
			return Inf(1)
		}
		return Zero
	}

	if isInteger(p) && b.Mantissa == 1 {
		t := float64(b.Exponent) * p
		if math.Abs(t) < float64(ExpLimit) {
			return New(1, int64(t))
		}
		if t > 0 {
			return Inf(1)
		}
		return Zero
	}

	t := float64(b.Exponent) * p
	if isInteger(t) && math.Abs(t) < float64(ExpLimit) {
		newM := math.Pow(b.Mantissa, p)
		if !math.IsNaN(newM) && !math.IsInf(newM, 0) {
			return normalize(newM, int64(t))
		}
	}

	newExp := int64(math.Trunc(t))
	frac := t - math.Trunc(t)

	if b.Mantissa < 0 {
		if !isInteger(p) {
			return NaN()
		}
		newM := math.Pow(10, p*math.Log10(-b.Mantissa)+frac)
		if !math.IsNaN(newM) && !math.IsInf(newM, 0) {
			sign := 1.0
			if int64(p)%2 != 0 {
				sign = -1
			}
			return normalize(sign*newM, newExp)
		}
		return absLog10Fallback(b, p)
	}

	newM := math.Pow(10, p*math.Log10(b.Mantissa)+frac)
	if !math.IsNaN(newM) && !math.IsInf(newM, 0) {
		return normalize(newM, newExp)
	}

	return absLog10Fallback(b, p)
}

// absLog10Fallback is the last resort when the direct power computation
// overflows binary64: recompute through the full base-10 log of |b|, then
// restore sign for a negative base raised to an odd integer power.
func absLog10Fallback(b BigDouble, p float64) BigDouble {
	l := AbsLog10(b) * p
	result := Pow10(l)
	if b.Mantissa < 0 && isInteger(p) && int64(p)%2 != 0 {
		return Negate(result)
	}
	return result
}

// Pow10 returns 10^x as a BigDouble, for binary64 x.
func Pow10(x float64) BigDouble {
	if math.IsNaN(x) {
		return NaN()
	}
	newExp := int64(math.Trunc(x))
	frac := x - math.Trunc(x)
	return normalize(math.Pow(10, frac), newExp)
}

// Exp returns e^b.
func Exp(b BigDouble) BigDouble {
	return Pow10(b.ToFloat() * xmath.InvLn10)
}

// Log10 returns log10(b) as a BigDouble: exponent + log10(mantissa).
func Log10(b BigDouble) BigDouble {
	if b.Mantissa < 0 {
		return NaN()
	}
	if b.Mantissa == 0 {
		return Inf(-1)
	}
	if !b.IsFinite() {
		if b.IsPositiveInfinity() {
			return Inf(1)
		}
		return NaN()
	}
	return FromFloat(float64(b.Exponent) + math.Log10(b.Mantissa))
}

// AbsLog10 returns log10(|b|) as a binary64 (not a BigDouble): used
// internally where the exponent is still expected to be convertible.
func AbsLog10(b BigDouble) float64 {
	return float64(b.Exponent) + math.Log10(math.Abs(b.Mantissa))
}

// Ln returns the natural logarithm of b.
func Ln(b BigDouble) BigDouble {
	return Mul(Log10(b), FromFloat(xmath.Ln10))
}

// Log2 returns the base-2 logarithm of b.
func Log2(b BigDouble) BigDouble {
	return Mul(Log10(b), FromFloat(xmath.Log2_10))
}

// Log returns the logarithm of b in the given base.
func Log(b BigDouble, base float64) BigDouble {
	return Div(Log10(b), FromFloat(math.Log10(base)))
}

// Sqrt returns the square root of b.
func Sqrt(b BigDouble) BigDouble {
	if b.Mantissa < 0 {
		return NaN()
	}
	return Pow(b, 0.5)
}

// Cbrt returns the cube root of b, preserving sign for negative b (cube
// roots of negative numbers are real).
func Cbrt(b BigDouble) BigDouble {
	if b.Mantissa < 0 {
		return Negate(Pow(Negate(b), 1.0/3.0))
	}
	return Pow(b, 1.0/3.0)
}

func isInteger(f float64) bool {
	return f == math.Trunc(f) && !math.IsInf(f, 0)
}

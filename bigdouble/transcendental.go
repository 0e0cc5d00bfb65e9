package bigdouble

import "math"

// Sinh, Cosh, and Tanh are computed from Exp/Ln the same way the pack's
// arbitrary-precision libraries derive them: sinh(x) = (e^x - e^-x)/2,
// cosh(x) = (e^x + e^-x)/2, tanh(x) = (e^2x - 1)/(e^2x + 1). No separate
// numerical core is needed; everything routes through the existing Pow10
// and Ln primitives.

func Sinh(b BigDouble) BigDouble {
	ex := Exp(b)
	enx := Reciprocal(ex)
	return Div(Sub(ex, enx), FromFloat(2))
}

func Cosh(b BigDouble) BigDouble {
	ex := Exp(b)
	enx := Reciprocal(ex)
	return Div(Add(ex, enx), FromFloat(2))
}

func Tanh(b BigDouble) BigDouble {
	e2x := Exp(Mul(b, FromFloat(2)))
	return Div(Sub(e2x, One), Add(e2x, One))
}

// Asinh returns the inverse hyperbolic sine: ln(x + sqrt(x^2 + 1)).
func Asinh(b BigDouble) BigDouble {
	return Ln(Add(b, Sqrt(Add(Mul(b, b), One))))
}

// Acosh returns the inverse hyperbolic cosine: ln(x + sqrt(x^2 - 1)). NaN
// for x < 1.
func Acosh(b BigDouble) BigDouble {
	if Cmp(b, One) < 0 {
		return NaN()
	}
	return Ln(Add(b, Sqrt(Sub(Mul(b, b), One))))
}

// Atanh returns the inverse hyperbolic tangent: 0.5 * ln((1+x)/(1-x)). NaN
// for |x| >= 1.
func Atanh(b BigDouble) BigDouble {
	if Cmp(Abs(b), One) >= 0 {
		return NaN()
	}
	return Mul(Ln(Div(Add(One, b), Sub(One, b))), FromFloat(0.5))
}

// Factorial approximates n! using the Stirling series, evaluated in
// BigDouble arithmetic so it does not overflow binary64 for large n:
//
//	n! ≈ sqrt(2*pi*n) * (n/e)^n * (1 + 1/(12n) + 1/(288n^2) - 53/(51840n^3))
//
// Negative integers are poles of the Gamma function and yield NaN;
// non-integer negative n also yields NaN (domain error, matching the
// Log-of-non-positive convention elsewhere in this package).
func Factorial(b BigDouble) BigDouble {
	if b.IsNaN() {
		return NaN()
	}
	if b.Mantissa < 0 {
		return NaN()
	}
	if Equal(b, Zero) || Equal(b, One) {
		return One
	}

	n := b.ToFloat()
	if math.IsInf(n, 0) {
		return Inf(1)
	}

	correction := 1 + 1/(12*n) + 1/(288*n*n) - 53/(51840*n*n*n)
	nOverE := Div(b, FromFloat(math.E))
	return Mul(
		Mul(Sqrt(Mul(FromFloat(2*math.Pi), b)), Pow(nOverE, n)),
		FromFloat(correction),
	)
}

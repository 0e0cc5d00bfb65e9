package quad

import "math"

// Sinh, Cosh, and Tanh are computed from Exp the same way bigdouble derives
// them: sinh(x) = (e^x - e^-x)/2, cosh(x) = (e^x + e^-x)/2,
// tanh(x) = (e^2x - 1)/(e^2x + 1).

func Sinh(q Quad) Quad {
	ex := Exp(q)
	enx := Div(One, ex)
	return Div(Sub(ex, enx), FromFloat64(2))
}

func Cosh(q Quad) Quad {
	ex := Exp(q)
	enx := Div(One, ex)
	return Div(Add(ex, enx), FromFloat64(2))
}

func Tanh(q Quad) Quad {
	e2x := Exp(Mul(q, FromFloat64(2)))
	return Div(Sub(e2x, One), Add(e2x, One))
}

// Asinh returns the inverse hyperbolic sine: ln(x + sqrt(x^2 + 1)).
func Asinh(q Quad) Quad {
	return Ln(Add(q, Sqrt(Add(Mul(q, q), One))))
}

// Acosh returns the inverse hyperbolic cosine: ln(x + sqrt(x^2 - 1)). NaN
// for x < 1.
func Acosh(q Quad) Quad {
	if Cmp(q, One) < 0 {
		return NaN()
	}
	return Ln(Add(q, Sqrt(Sub(Mul(q, q), One))))
}

// Atanh returns the inverse hyperbolic tangent: 0.5 * ln((1+x)/(1-x)). NaN
// for |x| >= 1.
func Atanh(q Quad) Quad {
	if Cmp(Abs(q), One) >= 0 {
		return NaN()
	}
	return Mul(Ln(Div(Add(One, q), Sub(One, q))), FromFloat64(0.5))
}

// Factorial approximates n! using the Stirling series, evaluated in Quad
// arithmetic so the exponent range is not limited to binary64's:
//
//	n! ≈ sqrt(2*pi*n) * (n/e)^n * (1 + 1/(12n) + 1/(288n^2) - 53/(51840n^3))
//
// Negative n yields NaN, matching the domain convention used by Log/Ln.
func Factorial(q Quad) Quad {
	if q.IsNaN() {
		return NaN()
	}
	if q.IsNegative() {
		return NaN()
	}
	if Equal(q, Zero) || Equal(q, One) {
		return One
	}
	if q.IsPositiveInfinity() {
		return Inf(1)
	}

	n := q.ToFloat64()
	correction := 1 + 1/(12*n) + 1/(288*n*n) - 53/(51840*n*n*n)
	nOverE := Div(q, FromFloat64(math.E))
	return Mul(
		Mul(Sqrt(Mul(FromFloat64(2*math.Pi), q)), Pow(nOverE, n)),
		FromFloat64(correction),
	)
}

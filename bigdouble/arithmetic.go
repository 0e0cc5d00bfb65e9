package bigdouble

import "math"

// Add returns a + b. If either operand is zero the other is returned
// unchanged (resolving the "missing right.Mantissa == 0 branch" ambiguity
// noted in the spec by checking both operands explicitly); if either is
// non-finite the result is produced by combining the two mantissas directly
// and letting host float semantics handle NaN/±Inf propagation. Otherwise
// the smaller operand is scaled into the larger one's frame and, if the
// exponents differ by more than MaxSignificantDigits, the smaller operand is
// dropped entirely (it cannot affect the result at this precision).
func Add(a, b BigDouble) BigDouble {
	if a.Mantissa == 0 {
		return b
	}
	if b.Mantissa == 0 {
		return a
	}
	if !a.IsFinite() || !b.IsFinite() {
		return normalize(a.Mantissa+b.Mantissa, 0)
	}

	big, small := a, b
	if small.Exponent > big.Exponent {
		big, small = small, big
	}

	if big.Exponent-small.Exponent > MaxSignificantDigits {
		return big
	}

	scaled := 1e14*big.Mantissa + 1e14*small.Mantissa*pow10(small.Exponent-big.Exponent)
	return normalize(math.Round(scaled), big.Exponent-14)
}

// Sub returns a - b.
func Sub(a, b BigDouble) BigDouble {
	return Add(a, Negate(b))
}

// Mul returns a * b.
func Mul(a, b BigDouble) BigDouble {
	return normalize(a.Mantissa*b.Mantissa, a.Exponent+b.Exponent)
}

// Div returns a / b.
func Div(a, b BigDouble) BigDouble {
	return normalize(a.Mantissa/b.Mantissa, a.Exponent-b.Exponent)
}

// Reciprocal returns 1 / b.
func Reciprocal(b BigDouble) BigDouble {
	return Div(One, b)
}

// Negate returns -b, leaving the exponent untouched.
func Negate(b BigDouble) BigDouble {
	return BigDouble{Mantissa: -b.Mantissa, Exponent: b.Exponent}
}

// Abs returns |b|, leaving the exponent untouched.
func Abs(b BigDouble) BigDouble {
	return BigDouble{Mantissa: math.Abs(b.Mantissa), Exponent: b.Exponent}
}

// Sign returns -1, 0, or 1 according to the sign of b's mantissa. NaN
// reports 0.
func Sign(b BigDouble) int {
	switch {
	case b.IsNaN() || b.Mantissa == 0:
		return 0
	case b.Mantissa < 0:
		return -1
	default:
		return 1
	}
}

// Increment returns b + 1.
func Increment(b BigDouble) BigDouble { return Add(b, One) }

// Decrement returns b - 1.
func Decrement(b BigDouble) BigDouble { return Sub(b, One) }

// Methods below are thin wrappers around the package-level functions, so
// callers can write either b.Add(c) or Add(b, c).

func (b BigDouble) Add(c BigDouble) BigDouble        { return Add(b, c) }
func (b BigDouble) Sub(c BigDouble) BigDouble        { return Sub(b, c) }
func (b BigDouble) Mul(c BigDouble) BigDouble        { return Mul(b, c) }
func (b BigDouble) Div(c BigDouble) BigDouble        { return Div(b, c) }
func (b BigDouble) Neg() BigDouble                   { return Negate(b) }
func (b BigDouble) Reciprocal() BigDouble            { return Reciprocal(b) }
func (b BigDouble) Abs() BigDouble                   { return Abs(b) }
func (b BigDouble) Sign() int                        { return Sign(b) }
func (b BigDouble) Increment() BigDouble             { return Increment(b) }
func (b BigDouble) Decrement() BigDouble             { return Decrement(b) }

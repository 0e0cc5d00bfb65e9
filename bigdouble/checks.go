package bigdouble

import "math"

// IsNaN reports whether b is the not-a-number sentinel.
func (b BigDouble) IsNaN() bool { return math.IsNaN(b.Mantissa) }

// IsInfinity reports whether b is +Inf or -Inf.
func (b BigDouble) IsInfinity() bool { return math.IsInf(b.Mantissa, 0) }

// IsPositiveInfinity reports whether b is exactly +Inf.
func (b BigDouble) IsPositiveInfinity() bool { return math.IsInf(b.Mantissa, 1) }

// IsNegativeInfinity reports whether b is exactly -Inf.
func (b BigDouble) IsNegativeInfinity() bool { return math.IsInf(b.Mantissa, -1) }

// IsFinite reports whether b is neither NaN nor infinite.
func (b BigDouble) IsFinite() bool { return !b.IsNaN() && !b.IsInfinity() }

// IsZero reports whether b is the canonical zero.
func (b BigDouble) IsZero() bool { return b.Mantissa == 0 }

// IsNegative reports whether b is finite and strictly negative, or -Inf.
func (b BigDouble) IsNegative() bool {
	return math.Signbit(b.Mantissa) && b.Mantissa != 0 && !b.IsNaN()
}

// IsPositive reports whether b is finite and strictly positive, or +Inf.
func (b BigDouble) IsPositive() bool {
	return !math.Signbit(b.Mantissa) && b.Mantissa != 0 && !b.IsNaN()
}

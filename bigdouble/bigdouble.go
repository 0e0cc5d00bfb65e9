// Package bigdouble implements an extended-range floating-point number as a
// normalized (mantissa, exponent) pair: mantissa is a binary64 in [1,10) (or
// a sentinel), exponent is a base-10 signed 64-bit integer. It trades the
// ~15-digit precision of binary64 for a representable range far beyond
// 10^±308, at near-native arithmetic cost.
package bigdouble

import (
	"math"

	"github.com/ember-math/xfloat/xmath"
)

// ExpLimit bounds the representable exponent. Operations that would produce
// an exponent >= ExpLimit saturate to ±Inf, and those that would produce an
// exponent <= -ExpLimit saturate to zero. Chosen large enough that no realistic chain of Mul/Pow calls
// reaches it by accident, while leaving headroom below math.MaxInt64 for
// exponent arithmetic (a.exponent + b.exponent, exponent * power) to be
// carried out in int64 without itself overflowing before the bound check
// below runs.
const ExpLimit = int64(1) << 62

// MaxSignificantDigits is the number of decimal digits of precision the
// mantissa can carry reliably; addition of two values whose exponents
// differ by more than this drops the smaller operand entirely.
const MaxSignificantDigits = 17

// DefaultTolerance is the relative tolerance used by EqTol when the caller
// does not supply one.
const DefaultTolerance = 1e-9

// BigDouble is an extended-range decimal floating-point value:
// mantissa * 10^exponent.
//
// In canonical form, Mantissa is either exactly 0 (with Exponent == 0), a
// non-finite sentinel (±Inf, NaN), or has an absolute value in [1, 10).
type BigDouble struct {
	Mantissa float64
	Exponent int64
}

// Zero is the canonical zero value.
var Zero = BigDouble{Mantissa: 0, Exponent: 0}

// One is the canonical value 1.
var One = BigDouble{Mantissa: 1, Exponent: 0}

// NaN returns the canonical not-a-number sentinel.
func NaN() BigDouble {
	return BigDouble{Mantissa: math.NaN(), Exponent: 0}
}

// Inf returns +Inf (sign >= 0) or -Inf (sign < 0).
func Inf(sign int) BigDouble {
	if sign < 0 {
		return BigDouble{Mantissa: math.Inf(-1), Exponent: 0}
	}
	return BigDouble{Mantissa: math.Inf(1), Exponent: 0}
}

// normalize rewrites (m, e) into canonical form: if m is non-finite it is
// returned unchanged; if m is zero the canonical zero is returned; if |m| is
// already in [1, 10) the pair is returned unchanged; otherwise the mantissa
// is rescaled into [1, 10) and the exponent adjusted to compensate.
func normalize(m float64, e int64) BigDouble {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return BigDouble{Mantissa: m, Exponent: 0}
	}
	if m == 0 {
		return Zero
	}

	abs := math.Abs(m)
	if abs >= 1 && abs < 10 {
		return BigDouble{Mantissa: m, Exponent: e}
	}

	k := int64(math.Floor(math.Log10(abs)))
	var scaled float64
	if k == -324 {
		// 10^-324 lies below the smallest binary64 subnormal and rounds to
		// zero, so rescale through 1e-323 (one decade up) instead.
		scaled = m * 10 / 1e-323
	} else {
		scaled = m / pow10(k)
	}

	// log10 rounding can be off by one ULP at the edges of a decade; nudge
	// the scaled mantissa back into [1, 10) rather than re-deriving k.
	if math.Abs(scaled) >= 10 {
		scaled /= 10
		k++
	} else if math.Abs(scaled) < 1 {
		scaled *= 10
		k--
	}

	newExp := e + k
	if newExp >= ExpLimit {
		return Inf(xsign(m))
	}
	if newExp <= -ExpLimit {
		return Zero
	}

	return BigDouble{Mantissa: scaled, Exponent: newExp}
}

// New constructs a normalized BigDouble from a raw mantissa and exponent.
func New(mantissa float64, exponent int64) BigDouble {
	return normalize(mantissa, exponent)
}

// FromFloat converts a binary64 into a BigDouble, propagating NaN, ±Inf and
// 0 to their sentinel forms and normalizing everything else.
func FromFloat(x float64) BigDouble {
	switch {
	case math.IsNaN(x):
		return NaN()
	case math.IsInf(x, 1):
		return Inf(1)
	case math.IsInf(x, -1):
		return Inf(-1)
	case x == 0:
		return Zero
	}
	return normalize(x, 0)
}

// FromInt converts a signed integer into a BigDouble.
func FromInt(n int64) BigDouble {
	return FromFloat(float64(n))
}

func xsign(m float64) int {
	if math.Signbit(m) {
		return -1
	}
	return 1
}

func pow10(k int64) float64 {
	if k >= math.MinInt32 && k <= math.MaxInt32 {
		return xmath.PowersOf10(int(k))
	}
	if k < 0 {
		return 0
	}
	return math.Inf(1)
}

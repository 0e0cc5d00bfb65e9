package bigdouble

import (
	"math"

	"github.com/ember-math/xfloat/xmath"
)

// ToFloat converts a BigDouble back to a binary64, saturating to ±Inf above
// xmath.DoubleExpMax and to 0 below xmath.DoubleExpMin. At the subnormal
// boundary it returns the smallest representable subnormal with the correct
// sign; elsewhere it snaps results within 1e-10 of a non-negative integer to
// that integer, since the inverse scale (mantissa * 10^exponent) introduces
// floating-point noise that would otherwise turn e.g. 116 into 115.999999999.
func (b BigDouble) ToFloat() float64 {
	if math.IsNaN(b.Mantissa) {
		return math.NaN()
	}
	if math.IsInf(b.Mantissa, 0) {
		return b.Mantissa
	}
	if b.Mantissa == 0 {
		return 0
	}

	if b.Exponent > xmath.DoubleExpMax {
		if b.Mantissa < 0 {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if b.Exponent < xmath.DoubleExpMin {
		return 0
	}
	if b.Exponent == xmath.DoubleExpMin {
		if b.Mantissa < 0 {
			return -5e-324
		}
		return 5e-324
	}

	v := b.Mantissa * pow10(b.Exponent)
	if b.Exponent >= 0 && v >= 0 {
		if rounded := math.Round(v); math.Abs(v-rounded) < 1e-10 {
			return rounded
		}
	}
	return v
}

// ToInt truncates a BigDouble to an int64. Non-finite values and magnitudes
// outside the int64 range saturate to math.MaxInt64 / math.MinInt64 (NaN
// saturates to 0).
func (b BigDouble) ToInt() int64 {
	if math.IsNaN(b.Mantissa) {
		return 0
	}
	f := b.ToFloat()
	if math.IsInf(f, 1) || f > math.MaxInt64 {
		return math.MaxInt64
	}
	if math.IsInf(f, -1) || f < math.MinInt64 {
		return math.MinInt64
	}
	return int64(f)
}

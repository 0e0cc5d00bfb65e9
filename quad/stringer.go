package quad

import (
	"fmt"
	"math"
	"strings"
)

// String implements fmt.Stringer; it is equivalent to Format("ScientificApproximate").
func (q Quad) String() string {
	s, _ := q.Format("ScientificApproximate")
	return s
}

// Format renders q according to a named mode:
//
//	"HexExponential"        - sign, then the explicit significand (implicit
//	                          bit included) as 0x<16 hex digits>p<exponent>
//	"DecimalExponential"    - significand/exponent shown as "m x 2^e"
//	"ScientificApproximate" - round through binary64, "%e" notation
//	"ScientificExact"       - full-precision decimal scientific literal
//
// Sentinels always render as "NaN", "Infinity", or "-Infinity" regardless of
// the mode.
func (q Quad) Format(mode string) (string, error) {
	if q.IsNaN() {
		return "NaN", nil
	}
	if q.IsPositiveInfinity() {
		return "Infinity", nil
	}
	if q.IsNegativeInfinity() {
		return "-Infinity", nil
	}

	switch mode {
	case "HexExponential":
		return q.formatHexExponential(), nil
	case "DecimalExponential":
		return q.formatDecimalExponential(), nil
	case "ScientificApproximate", "":
		return formatBinary64E(q.ToFloat64()), nil
	case "ScientificExact":
		return q.formatScientificExact(), nil
	default:
		return "", fmt.Errorf("quad: unknown format mode %q", mode)
	}
}

func formatBinary64E(f float64) string {
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	return fmt.Sprintf("%.17e", f)
}

func (q Quad) formatHexExponential() string {
	if q.IsZero() {
		return "0x0p+0"
	}
	sign := ""
	if q.sign() {
		sign = "-"
	}
	explicit := explicitSignificand(q.fracBits())
	return fmt.Sprintf("%s0x%016Xp%+d", sign, explicit, q.Exponent)
}

func (q Quad) formatDecimalExponential() string {
	if q.IsZero() {
		return "0 x 2^0"
	}
	sign := ""
	if q.sign() {
		sign = "-"
	}
	explicit := explicitSignificand(q.fracBits())
	mantissa := float64(explicit) / float64(uint64(1)<<63)
	return fmt.Sprintf("%s%.18f x 2^%d", sign, mantissa, q.Exponent)
}

// formatScientificExact renders q as an exact decimal scientific literal.
// The value is driven into [1, 10) by dividing by 10^k, where k is
// estimated from Log10 and then nudged into range; this replaces the
// original five-constant (10^19, 10^10, 10^5, 10^3, 10) bisection with a
// single logarithm estimate plus a one-step correction, since Quad already
// has a Log10 primitive the original algorithm didn't have available.
// Fractional digits are then harvested 19 at a time (the number of decimal
// digits a uint64 group can hold) until the remainder rounds to zero or the
// harvest exceeds Quad's true precision.
func (q Quad) formatScientificExact() string {
	if q.IsZero() {
		return "0.0E+0"
	}

	sign := ""
	work := q
	if q.sign() {
		sign = "-"
		work = Negate(q)
	}

	k := int64(math.Floor(Log10(work).ToFloat64()))
	scaled := Div(work, Pow(FromInt64(10), float64(k)))
	for Cmp(scaled, FromInt64(10)) >= 0 {
		scaled = Div(scaled, FromInt64(10))
		k++
	}
	for Cmp(scaled, One) < 0 {
		scaled = Mul(scaled, FromInt64(10))
		k--
	}

	ten19 := Pow(FromInt64(10), 19)
	leadDigit := int64(scaled.ToFloat64())
	if leadDigit > 9 {
		leadDigit = 9
	}
	var digits strings.Builder
	digits.WriteByte(byte('0' + leadDigit))
	frac := Sub(scaled, FromInt64(leadDigit))

	for i := 0; i < 2 && !frac.IsZero(); i++ {
		frac = Mul(frac, ten19)
		group, _ := frac.ToUint64()
		fmt.Fprintf(&digits, "%019d", group)
		frac = Sub(frac, FromUint64(group))
	}

	full := digits.String()
	fracDigits := strings.TrimRight(full[1:], "0")
	if fracDigits == "" {
		fracDigits = "0"
	}
	return fmt.Sprintf("%s%s.%sE%+d", sign, full[:1], fracDigits, k)
}

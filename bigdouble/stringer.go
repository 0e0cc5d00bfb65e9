package bigdouble

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// String implements fmt.Stringer; it is equivalent to Format("G").
func (b BigDouble) String() string {
	s, _ := b.Format("G")
	return s
}

// Format renders b according to a specifier: "G[n]" (compact, default),
// "E[n]" (exponential with n digits after the decimal point), "F[n]" (fixed
// with n digits), or "R" (round-trip; values whose binary64 projection would
// overflow or underflow use G's mantissa/exponent form instead). Sentinels
// always render as "NaN", "Infinity", or "-Infinity" regardless of the
// specifier.
func (b BigDouble) Format(spec string) (string, error) {
	if b.IsNaN() {
		return "NaN", nil
	}
	if b.IsPositiveInfinity() {
		return "Infinity", nil
	}
	if b.IsNegativeInfinity() {
		return "-Infinity", nil
	}

	kind, digits, hasDigits := parseSpec(spec)

	switch kind {
	case 'G', 'g':
		return b.formatG(), nil
	case 'E', 'e':
		n := 6
		if hasDigits {
			n = digits
		}
		return b.formatE(n), nil
	case 'F', 'f':
		n := 6
		if hasDigits {
			n = digits
		}
		return b.formatF(n), nil
	case 'R', 'r':
		f := b.ToFloat()
		if math.IsInf(f, 0) || (f == 0 && b.Mantissa != 0) {
			return b.formatG(), nil
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("bigdouble: unknown format specifier %q", spec)
	}
}

func parseSpec(spec string) (kind byte, digits int, hasDigits bool) {
	if spec == "" {
		return 'G', 0, false
	}
	kind = spec[0]
	if len(spec) == 1 {
		return kind, 0, false
	}
	n, err := strconv.Atoi(spec[1:])
	if err != nil {
		return kind, 0, false
	}
	return kind, n, true
}

// formatG mirrors host ToString within e in [-6, 20]; outside that window
// it falls back to "mantissa E sign exponent".
func (b BigDouble) formatG() string {
	if b.Exponent >= -6 && b.Exponent <= 20 {
		return strconv.FormatFloat(b.ToFloat(), 'g', -1, 64)
	}
	sign := "+"
	if b.Exponent < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%sE%s%d", strconv.FormatFloat(b.Mantissa, 'f', -1, 64), sign, absInt64(b.Exponent))
}

// formatE produces d.ddd...E±e with exactly n digits after the decimal
// point, using host exponential rounding on the mantissa.
func (b BigDouble) formatE(n int) string {
	s := strconv.FormatFloat(b.Mantissa, 'e', n, 64)
	idx := strings.IndexByte(s, 'e')
	carry, _ := strconv.Atoi(s[idx+1:])
	exp := b.Exponent + int64(carry)
	sign := "+"
	if exp < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%sE%s%d", s[:idx], sign, absInt64(exp))
}

// formatF prints n digits after the decimal point. Once the exponent is at
// or beyond MaxSignificantDigits the value is too large for binary64 to
// represent exactly, so the raw mantissa digits are printed directly
// followed by the right number of zeros instead of round-tripping through a
// binary64 that has already lost the low digits.
func (b BigDouble) formatF(n int) string {
	if b.Exponent >= MaxSignificantDigits {
		digits := strings.ReplaceAll(strconv.FormatFloat(b.Mantissa, 'f', MaxSignificantDigits-1, 64), ".", "")
		zeros := int(b.Exponent) - (len(strings.TrimPrefix(digits, "-")) - 1)
		s := digits
		if zeros > 0 {
			s += strings.Repeat("0", zeros)
		}
		if n > 0 {
			s += "." + strings.Repeat("0", n)
		}
		return s
	}
	return strconv.FormatFloat(b.ToFloat(), 'f', n, 64)
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

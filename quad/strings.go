package quad

import (
	"strconv"
	"strings"
)

// Parse converts a string into a Quad. It accepts the sentinel forms "NaN",
// "Infinity", "-Infinity", "0", and the numeric literal form
// [sign] digits [. digits] [(e|E)[+|-] digits]. The mantissa is parsed as a
// binary64 and then scaled by Pow(10, exponent) in Quad arithmetic, so the
// exponent itself is free of binary64's ~308-decade range limit. On failure
// it returns NaN and a *ParseError describing why.
func Parse(s string) (Quad, error) {
	trimmed := strings.TrimSpace(s)
	switch trimmed {
	case "NaN":
		return NaN(), nil
	case "Infinity", "+Infinity":
		return Inf(1), nil
	case "-Infinity":
		return Inf(-1), nil
	case "0", "+0", "-0":
		return Zero, nil
	}

	mantissaPart, expPart, hasExp := splitExponent(trimmed)
	if !hasExp {
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return NaN(), newParseError(s, "not a valid decimal literal")
		}
		return FromFloat64(f), nil
	}

	mantissa, err := strconv.ParseFloat(mantissaPart, 64)
	if err != nil {
		return NaN(), newParseError(s, "invalid mantissa")
	}
	exponent, err := strconv.ParseInt(expPart, 10, 64)
	if err != nil {
		return NaN(), newParseError(s, "invalid exponent")
	}

	return Mul(FromFloat64(mantissa), Pow(FromInt64(10), float64(exponent))), nil
}

// MustParse is like Parse but panics on error; useful for tests and
// compile-time-known literals.
func MustParse(s string) Quad {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func splitExponent(s string) (mantissa, exponent string, ok bool) {
	idx := strings.IndexAny(s, "eE")
	if idx < 0 {
		return s, "", false
	}
	mantissa = s[:idx]
	exponent = strings.TrimSpace(s[idx+1:])
	exponent = strings.TrimPrefix(exponent, "+")
	return mantissa, exponent, true
}

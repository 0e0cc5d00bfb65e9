package bigdouble

import (
	"math"
	"strconv"
	"strings"
)

// Parse converts a string into a BigDouble. It accepts the sentinel forms
// "NaN", "Infinity", "-Infinity", "0", and the numeric literal form
// [sign] digits [. digits] [(e|E)[+|-] digits], with any whitespace around
// the exponent marker trimmed first. A NaN spelling other than exactly "NaN"
// (such as "nan") is rejected. On failure it returns NaN and a *ParseError
// describing why.
func Parse(s string) (BigDouble, error) {
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
		if math.IsNaN(f) {
			return NaN(), newParseError(s, `NaN literal must be exactly "NaN"`)
		}
		return FromFloat(f), nil
	}

	mantissa, err := strconv.ParseFloat(mantissaPart, 64)
	if err != nil || math.IsNaN(mantissa) {
		return NaN(), newParseError(s, "invalid mantissa")
	}
	exponent, err := strconv.ParseInt(expPart, 10, 64)
	if err != nil {
		return NaN(), newParseError(s, "invalid exponent")
	}

	return New(mantissa, exponent), nil
}

// MustParse is like Parse but panics on error; useful for tests and
// compile-time-known literals.
func MustParse(s string) BigDouble {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// splitExponent locates the first exponent marker (e, E), trimming the
// whitespace on both sides of it and an optional '+' sign that follows it.
func splitExponent(s string) (mantissa, exponent string, ok bool) {
	idx := strings.IndexAny(s, "eE")
	if idx < 0 {
		return s, "", false
	}
	mantissa = strings.TrimSpace(s[:idx])
	exponent = strings.TrimSpace(s[idx+1:])
	exponent = strings.TrimPrefix(exponent, "+")
	return mantissa, exponent, true
}

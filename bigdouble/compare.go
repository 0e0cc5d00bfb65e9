package bigdouble

// Equal reports whether a and b are bit-for-bit the same canonical value.
// NaN never equals anything, including another NaN.
func Equal(a, b BigDouble) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a.Mantissa == b.Mantissa && a.Exponent == b.Exponent
}

// Cmp returns -1, 0, or 1 according to whether a is less than, equal to, or
// greater than b. Sentinels defer to host float comparison semantics; among
// finite values of the same sign, the exponent is compared first and the
// mantissa only breaks ties.
func Cmp(a, b BigDouble) int {
	if a.IsNaN() || b.IsNaN() {
		if a.Mantissa < b.Mantissa {
			return -1
		}
		if a.Mantissa > b.Mantissa {
			return 1
		}
		return 0
	}
	if !a.IsFinite() || !b.IsFinite() {
		switch {
		case a.Mantissa < b.Mantissa:
			return -1
		case a.Mantissa > b.Mantissa:
			return 1
		default:
			return 0
		}
	}

	aSign, bSign := Sign(a), Sign(b)
	if aSign != bSign {
		if aSign < bSign {
			return -1
		}
		return 1
	}
	if aSign == 0 {
		return 0
	}

	if a.Exponent != b.Exponent {
		if (a.Exponent < b.Exponent) == (aSign > 0) {
			return -1
		}
		return 1
	}

	switch {
	case a.Mantissa < b.Mantissa:
		return -1
	case a.Mantissa > b.Mantissa:
		return 1
	default:
		return 0
	}
}

// EqTol reports whether a and b are equal within a relative tolerance:
// |a - b| <= max(|a|, |b|) * tolerance.
func EqTol(a, b BigDouble, tolerance float64) bool {
	if Equal(a, b) {
		return true
	}
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	if !a.IsFinite() || !b.IsFinite() {
		return false
	}

	diff := Abs(Sub(a, b))
	bound := Mul(Max(Abs(a), Abs(b)), FromFloat(tolerance))
	return Cmp(diff, bound) <= 0
}

func (a BigDouble) Equal(b BigDouble) bool { return Equal(a, b) }
func (a BigDouble) Cmp(b BigDouble) int    { return Cmp(a, b) }
func (a BigDouble) Less(b BigDouble) bool  { return Cmp(a, b) < 0 }
func (a BigDouble) LessEq(b BigDouble) bool { return Cmp(a, b) <= 0 }
func (a BigDouble) Greater(b BigDouble) bool { return Cmp(a, b) > 0 }
func (a BigDouble) GreaterEq(b BigDouble) bool { return Cmp(a, b) >= 0 }
func (a BigDouble) NotEqual(b BigDouble) bool { return !Equal(a, b) }

// EqTol reports whether a and b are equal within the given relative
// tolerance. If tol is omitted, DefaultTolerance is used.
func (a BigDouble) EqTol(b BigDouble, tol ...float64) bool {
	t := DefaultTolerance
	if len(tol) > 0 {
		t = tol[0]
	}
	return EqTol(a, b, t)
}

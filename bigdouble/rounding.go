package bigdouble

import "math"

// Floor, Ceil, Round, and Truncate operate through binary64 host rounding
// whenever the value is small enough for that to matter (exponent below
// MaxSignificantDigits); beyond that the value is already an integer at
// this scale and is returned unchanged. Values with exponent < -1 collapse
// to 0, except that Floor of a negative value gives -1 and Ceil of a
// positive value gives 1, since such values lie strictly between -1 and 1.

func Floor(b BigDouble) BigDouble {
	if !b.IsFinite() {
		return b
	}
	if b.Exponent < -1 {
		if b.Mantissa < 0 {
			return FromInt(-1)
		}
		return Zero
	}
	if b.Exponent < MaxSignificantDigits {
		return FromFloat(math.Floor(b.ToFloat()))
	}
	return b
}

func Ceil(b BigDouble) BigDouble {
	if !b.IsFinite() {
		return b
	}
	if b.Exponent < -1 {
		if b.Mantissa > 0 {
			return One
		}
		return Zero
	}
	if b.Exponent < MaxSignificantDigits {
		return FromFloat(math.Ceil(b.ToFloat()))
	}
	return b
}

func Round(b BigDouble) BigDouble {
	if !b.IsFinite() {
		return b
	}
	if b.Exponent < -1 {
		return Zero
	}
	if b.Exponent < MaxSignificantDigits {
		return FromFloat(math.Round(b.ToFloat()))
	}
	return b
}

func Truncate(b BigDouble) BigDouble {
	if !b.IsFinite() {
		return b
	}
	if b.Exponent < -1 {
		return Zero
	}
	if b.Exponent < MaxSignificantDigits {
		return FromFloat(math.Trunc(b.ToFloat()))
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b BigDouble) BigDouble {
	if Cmp(a, b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b BigDouble) BigDouble {
	if Cmp(a, b) >= 0 {
		return a
	}
	return b
}

func (b BigDouble) Floor() BigDouble    { return Floor(b) }
func (b BigDouble) Ceil() BigDouble     { return Ceil(b) }
func (b BigDouble) Round() BigDouble    { return Round(b) }
func (b BigDouble) Truncate() BigDouble { return Truncate(b) }

package quad

import (
	"math/bits"

	"github.com/ember-math/xfloat/xmath"
)

// combineRule is the outcome a 6x6 sentinel table assigns to a pair of
// operand classes: either the result is fully determined by the classes
// alone, or neither operand is a sentinel and the caller must fall through
// to real finite-finite arithmetic.
type combineRule uint8

const (
	ruleCompute combineRule = iota
	ruleReturnA
	ruleReturnB
	ruleNaN
	ruleZero
	ruleInfSigned
)

// addRules[a][b] dispatches a+b. Only entries where at least one operand is
// a sentinel (Zero, ±Inf, NaN) are resolved here; the four finite/finite
// combinations always fall through to Add's finite path via ruleCompute,
// which branches on sign to decide between same-sign addition
// (addSameSign) and magnitude subtraction (subMagnitude).
var addRules = [6][6]combineRule{
	classZero:     {classZero: ruleZero, classPosInf: ruleReturnB, classNegInf: ruleReturnB, classNaN: ruleNaN, classPosFinite: ruleReturnB, classNegFinite: ruleReturnB},
	classPosInf:   {classZero: ruleReturnA, classPosInf: ruleReturnA, classNegInf: ruleNaN, classNaN: ruleNaN, classPosFinite: ruleReturnA, classNegFinite: ruleReturnA},
	classNegInf:   {classZero: ruleReturnA, classPosInf: ruleNaN, classNegInf: ruleReturnA, classNaN: ruleNaN, classPosFinite: ruleReturnA, classNegFinite: ruleReturnA},
	classNaN:      {classZero: ruleNaN, classPosInf: ruleNaN, classNegInf: ruleNaN, classNaN: ruleNaN, classPosFinite: ruleNaN, classNegFinite: ruleNaN},
	classPosFinite: {classZero: ruleReturnA, classPosInf: ruleReturnB, classNegInf: ruleReturnB, classNaN: ruleNaN, classPosFinite: ruleCompute, classNegFinite: ruleCompute},
	classNegFinite: {classZero: ruleReturnA, classPosInf: ruleReturnB, classNegInf: ruleReturnB, classNaN: ruleNaN, classPosFinite: ruleCompute, classNegFinite: ruleCompute},
}

// mulRules[a][b] dispatches a*b: zero times infinity is the one case
// addition has no analogue for, so it gets its own NaN entry.
var mulRules = [6][6]combineRule{
	classZero:     {classZero: ruleZero, classPosInf: ruleNaN, classNegInf: ruleNaN, classNaN: ruleNaN, classPosFinite: ruleZero, classNegFinite: ruleZero},
	classPosInf:   {classZero: ruleNaN, classPosInf: ruleInfSigned, classNegInf: ruleInfSigned, classNaN: ruleNaN, classPosFinite: ruleInfSigned, classNegFinite: ruleInfSigned},
	classNegInf:   {classZero: ruleNaN, classPosInf: ruleInfSigned, classNegInf: ruleInfSigned, classNaN: ruleNaN, classPosFinite: ruleInfSigned, classNegFinite: ruleInfSigned},
	classNaN:      {classZero: ruleNaN, classPosInf: ruleNaN, classNegInf: ruleNaN, classNaN: ruleNaN, classPosFinite: ruleNaN, classNegFinite: ruleNaN},
	classPosFinite: {classZero: ruleZero, classPosInf: ruleInfSigned, classNegInf: ruleInfSigned, classNaN: ruleNaN, classPosFinite: ruleCompute, classNegFinite: ruleCompute},
	classNegFinite: {classZero: ruleZero, classPosInf: ruleInfSigned, classNegInf: ruleInfSigned, classNaN: ruleNaN, classPosFinite: ruleCompute, classNegFinite: ruleCompute},
}

// divRules[a][b] dispatches a/b: zero divided by zero and infinity divided
// by infinity are both indeterminate, everything else involving a sentinel
// is either zero or a signed infinity.
var divRules = [6][6]combineRule{
	classZero:     {classZero: ruleNaN, classPosInf: ruleZero, classNegInf: ruleZero, classNaN: ruleNaN, classPosFinite: ruleZero, classNegFinite: ruleZero},
	classPosInf:   {classZero: ruleInfSigned, classPosInf: ruleNaN, classNegInf: ruleNaN, classNaN: ruleNaN, classPosFinite: ruleInfSigned, classNegFinite: ruleInfSigned},
	classNegInf:   {classZero: ruleInfSigned, classPosInf: ruleNaN, classNegInf: ruleNaN, classNaN: ruleNaN, classPosFinite: ruleInfSigned, classNegFinite: ruleInfSigned},
	classNaN:      {classZero: ruleNaN, classPosInf: ruleNaN, classNegInf: ruleNaN, classNaN: ruleNaN, classPosFinite: ruleNaN, classNegFinite: ruleNaN},
	classPosFinite: {classZero: ruleInfSigned, classPosInf: ruleZero, classNegInf: ruleZero, classNaN: ruleNaN, classPosFinite: ruleCompute, classNegFinite: ruleCompute},
	classNegFinite: {classZero: ruleInfSigned, classPosInf: ruleZero, classNegInf: ruleZero, classNaN: ruleNaN, classPosFinite: ruleCompute, classNegFinite: ruleCompute},
}

// addExponentsChecked adds two int64 exponents, reporting whether the
// addition overflowed int64's range and in which direction. Used to combine
// operand exponents before newFinite ever sees the candidate value, since by
// the time int64 addition itself wraps around the overflow/underflow cliff
// has already been missed.
func addExponentsChecked(a, b int64) (sum int64, overflowed int) {
	sum = a + b
	switch {
	case a > 0 && b > 0 && sum < 0:
		return 0, 1
	case a < 0 && b < 0 && sum >= 0:
		return 0, -1
	default:
		return sum, 0
	}
}

// combineExponents adds two finite operand exponents plus a small rounding
// bias (-1, 0, or +1 from renormalization), saturating to expUpperBound or
// expLowerBound instead of silently wrapping through int64 overflow. Both
// a and b are already-stored finite exponents (strictly between
// expLowerBound and expUpperBound), but their sum plus bias can still exceed
// int64's own range when both are legally close to expUpperBound or
// expLowerBound.
func combineExponents(a, b, bias int64) int64 {
	sum, overflowed := addExponentsChecked(a, b)
	if overflowed > 0 {
		return expUpperBound
	}
	if overflowed < 0 {
		return expLowerBound
	}
	sum, overflowed = addExponentsChecked(sum, bias)
	if overflowed > 0 {
		return expUpperBound
	}
	if overflowed < 0 {
		return expLowerBound
	}
	return sum
}

func apply(rule combineRule, a, b Quad, xorSign bool) (Quad, bool) {
	switch rule {
	case ruleReturnA:
		return a, true
	case ruleReturnB:
		return b, true
	case ruleNaN:
		return NaN(), true
	case ruleZero:
		return Zero, true
	case ruleInfSigned:
		return Inf(signOf(xorSign)), true
	default:
		return Quad{}, false
	}
}

// Add returns a+b, dispatching through the sentinel table before falling
// through to same-magnitude alignment for two finite operands.
func Add(a, b Quad) Quad {
	ca, cb := classify(a), classify(b)
	if r, ok := apply(addRules[ca][cb], a, b, a.sign() != b.sign()); ok {
		return r
	}
	if a.sign() == b.sign() {
		return addSameSign(a, b)
	}
	return subMagnitude(a, b)
}

// Sub returns a-b by negating b and delegating to Add, mirroring how the
// sentinel table already encodes every Zero/Inf/NaN interaction for
// addition.
func Sub(a, b Quad) Quad {
	return Add(a, Negate(b))
}

// Negate flips the sign of a finite Quad; sentinels map to their natural
// negation (Zero and NaN are unaffected, the infinities swap).
func Negate(q Quad) Quad {
	switch classify(q) {
	case classZero, classNaN:
		return q
	case classPosInf:
		return Inf(-1)
	case classNegInf:
		return Inf(1)
	default:
		return Quad{Significand: q.Significand ^ signBit, Exponent: q.Exponent}
	}
}

// Abs returns the magnitude of q.
func Abs(q Quad) Quad {
	switch classify(q) {
	case classNegFinite:
		return Quad{Significand: q.Significand &^ signBit, Exponent: q.Exponent}
	case classNegInf:
		return Inf(1)
	default:
		return q
	}
}

func addSameSign(a, b Quad) Quad {
	sign := a.sign()
	if a.Exponent < b.Exponent {
		a, b = b, a
	}
	diff := a.Exponent - b.Exponent
	aExplicit := explicitSignificand(a.fracBits())
	var bShifted uint64
	if diff < 64 {
		bShifted = explicitSignificand(b.fracBits()) >> uint(diff)
	}

	sum, carry := bits.Add64(aExplicit, bShifted, 0)
	exponent := a.Exponent
	if carry != 0 {
		sum = (sum >> 1) | (carry << 63)
		exponent++
	}
	return newFinite(sign, sum, exponent)
}

// subMagnitude handles a+b when a and b carry opposite signs: the result
// magnitude is |a|-|b| or |b|-|a|, whichever operand is larger, with the
// winner's sign.
func subMagnitude(a, b Quad) Quad {
	aExplicit := explicitSignificand(a.fracBits())
	bExplicit := explicitSignificand(b.fracBits())

	diff := a.Exponent - b.Exponent
	var largerExponent int64
	var largerExplicit, smallerShifted uint64
	var sign bool

	switch {
	case diff > 0:
		largerExponent, largerExplicit = a.Exponent, aExplicit
		if diff < 64 {
			smallerShifted = bExplicit >> uint(diff)
		}
		sign = a.sign()
	case diff < 0:
		largerExponent, largerExplicit = b.Exponent, bExplicit
		if -diff < 64 {
			smallerShifted = aExplicit >> uint(-diff)
		}
		sign = b.sign()
	default:
		// Equal exponents: compare raw magnitudes to find the winner.
		if aExplicit == bExplicit {
			return Zero
		}
		if aExplicit > bExplicit {
			largerExponent, largerExplicit, smallerShifted = a.Exponent, aExplicit, bExplicit
			sign = a.sign()
		} else {
			largerExponent, largerExplicit, smallerShifted = b.Exponent, bExplicit, aExplicit
			sign = b.sign()
		}
	}

	result, borrow := bits.Sub64(largerExplicit, smallerShifted, 0)
	if borrow != 0 || result == 0 {
		return Zero
	}
	shift := xmath.Nlz64(result)
	result <<= uint(shift)
	return newFinite(sign, result, largerExponent-int64(shift))
}

// Mul returns a*b.
func Mul(a, b Quad) Quad {
	ca, cb := classify(a), classify(b)
	xorSign := a.sign() != b.sign()
	if r, ok := apply(mulRules[ca][cb], a, b, xorSign); ok {
		return r
	}
	return mulFinite(a, b, xorSign)
}

func mulFinite(a, b Quad, sign bool) Quad {
	aExplicit := explicitSignificand(a.fracBits())
	bExplicit := explicitSignificand(b.fracBits())

	hi, _ := bits.Mul64(aExplicit, bExplicit)
	if hi&signBit != 0 {
		return newFinite(sign, hi, combineExponents(a.Exponent, b.Exponent, 1))
	}
	return newFinite(sign, hi<<1, combineExponents(a.Exponent, b.Exponent, 0))
}

// Div returns a/b.
func Div(a, b Quad) Quad {
	ca, cb := classify(a), classify(b)
	xorSign := a.sign() != b.sign()
	if r, ok := apply(divRules[ca][cb], a, b, xorSign); ok {
		return r
	}
	return divFinite(a, b, xorSign)
}

func divFinite(a, b Quad, sign bool) Quad {
	aExplicit := explicitSignificand(a.fracBits())
	bExplicit := explicitSignificand(b.fracBits())

	// Scale the dividend by 2^63 before dividing so the quotient carries a
	// full 63-64 bits of fraction; the scaled dividend's top word is
	// always strictly less than bExplicit, so the division never
	// overflows the 64-bit quotient bits.Div64 produces.
	hi, lo := bits.Mul64(aExplicit, uint64(1)<<63)
	quotient, _ := bits.Div64(hi, lo, bExplicit)

	// b.Exponent is always a stored finite exponent here (strictly greater
	// than expLowerBound, which is itself far above math.MinInt64), so
	// negating it cannot itself overflow.
	if quotient&signBit != 0 {
		return newFinite(sign, quotient, combineExponents(a.Exponent, -b.Exponent, 0))
	}
	return newFinite(sign, quotient<<1, combineExponents(a.Exponent, -b.Exponent, -1))
}

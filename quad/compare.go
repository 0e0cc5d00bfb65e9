package quad

// cmpRules[a][b] gives the ordering of a pair of classes directly wherever
// it is determined by class alone (e.g. any negative class orders below
// any non-negative one); the diagonal entries for the two finite classes
// mean "classes tie, compare magnitudes" and are resolved in Cmp.
const cmpTie = 2

var cmpRules = [6][6]int8{
	classZero:      {classZero: 0, classPosInf: -1, classNegInf: 1, classPosFinite: -1, classNegFinite: 1},
	classPosInf:    {classZero: 1, classPosInf: 0, classNegInf: 1, classPosFinite: 1, classNegFinite: 1},
	classNegInf:    {classZero: -1, classPosInf: -1, classNegInf: 0, classPosFinite: -1, classNegFinite: -1},
	classPosFinite: {classZero: 1, classPosInf: -1, classNegInf: 1, classPosFinite: cmpTie, classNegFinite: 1},
	classNegFinite: {classZero: -1, classPosInf: -1, classNegInf: 1, classPosFinite: -1, classNegFinite: cmpTie},
}

// Cmp returns -1, 0 or 1 as a<b, a==b or a>b. NaN compares unordered: Cmp
// involving a NaN operand always returns 1, so callers should check IsNaN
// before trusting the result.
func Cmp(a, b Quad) int {
	ca, cb := classify(a), classify(b)
	if ca == classNaN || cb == classNaN {
		return 1
	}
	rule := cmpRules[ca][cb]
	if rule != cmpTie {
		return int(rule)
	}
	return cmpSameSignFinite(a, b)
}

func cmpSameSignFinite(a, b Quad) int {
	flip := 1
	if a.sign() {
		flip = -1
	}
	if a.Exponent != b.Exponent {
		if a.Exponent < b.Exponent {
			return -flip
		}
		return flip
	}
	aExplicit := explicitSignificand(a.fracBits())
	bExplicit := explicitSignificand(b.fracBits())
	switch {
	case aExplicit < bExplicit:
		return -flip
	case aExplicit > bExplicit:
		return flip
	default:
		return 0
	}
}

// Equal reports whether a and b are exactly equal. NaN never equals
// anything, including itself.
func Equal(a, b Quad) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a.Exponent == b.Exponent && a.Significand == b.Significand
}

// Less reports whether a < b.
func Less(a, b Quad) bool { return !a.IsNaN() && !b.IsNaN() && Cmp(a, b) < 0 }

// LessOrEqual reports whether a <= b.
func LessOrEqual(a, b Quad) bool { return !a.IsNaN() && !b.IsNaN() && Cmp(a, b) <= 0 }

// Greater reports whether a > b.
func Greater(a, b Quad) bool { return !a.IsNaN() && !b.IsNaN() && Cmp(a, b) > 0 }

// GreaterOrEqual reports whether a >= b.
func GreaterOrEqual(a, b Quad) bool { return !a.IsNaN() && !b.IsNaN() && Cmp(a, b) >= 0 }

// Min returns the smaller of a and b.
func Min(a, b Quad) Quad {
	if Less(b, a) {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max(a, b Quad) Quad {
	if Greater(b, a) {
		return b
	}
	return a
}

// Sign returns -1, 0 or 1 according to the sign of q.
func Sign(q Quad) int {
	switch classify(q) {
	case classZero:
		return 0
	case classPosFinite, classPosInf:
		return 1
	case classNegFinite, classNegInf:
		return -1
	default:
		return 0
	}
}

// DefaultTolerance is the relative tolerance EqTol uses when the caller
// does not supply one.
const DefaultTolerance = 1e-9

// EqTol reports whether a and b are equal within a relative tolerance.
func EqTol(a, b Quad, tolerance float64) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	if a.IsInfinity() || b.IsInfinity() {
		return Equal(a, b)
	}
	if a.IsZero() || b.IsZero() {
		return a.IsZero() && b.IsZero()
	}
	diff := Abs(Sub(a, b))
	scale := Max(Abs(a), Abs(b))
	return Less(Div(diff, scale), FromFloat64(tolerance)) || Equal(diff, Zero)
}

package quad

// IsNaN reports whether q is the not-a-number sentinel.
func (q Quad) IsNaN() bool { return q.Exponent == expNaN }

// IsInfinity reports whether q is +Infinity or -Infinity.
func (q Quad) IsInfinity() bool { return q.Exponent == expPosInf || q.Exponent == expNegInf }

// IsPositiveInfinity reports whether q is exactly +Infinity.
func (q Quad) IsPositiveInfinity() bool { return q.Exponent == expPosInf }

// IsNegativeInfinity reports whether q is exactly -Infinity.
func (q Quad) IsNegativeInfinity() bool { return q.Exponent == expNegInf }

// IsFinite reports whether q is neither NaN nor infinite.
func (q Quad) IsFinite() bool { return q.Exponent != expNaN && !q.IsInfinity() }

// IsZero reports whether q is the canonical zero.
func (q Quad) IsZero() bool { return q.Exponent == expZero }

// IsNegative reports whether q is finite and strictly negative, or -Infinity.
func (q Quad) IsNegative() bool {
	c := classify(q)
	return c == classNegFinite || c == classNegInf
}

// IsPositive reports whether q is finite and strictly positive, or +Infinity.
func (q Quad) IsPositive() bool {
	c := classify(q)
	return c == classPosFinite || c == classPosInf
}

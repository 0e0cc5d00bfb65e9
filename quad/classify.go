package quad

// class categorizes a Quad into one of six buckets used to index the
// sentinel dispatch tables in arithmetic.go and compare.go.
type class uint8

const (
	classZero class = iota
	classPosInf
	classNegInf
	classNaN
	classPosFinite
	classNegFinite
)

func classify(q Quad) class {
	switch q.Exponent {
	case expZero:
		return classZero
	case expPosInf:
		return classPosInf
	case expNegInf:
		return classNegInf
	case expNaN:
		return classNaN
	}
	if q.sign() {
		return classNegFinite
	}
	return classPosFinite
}

package bigdouble

// Context-aware operations mirror the package-level arithmetic but take an
// optional *Context and raise the Signal bits that explain how the result
// was reached. Grounded on the teacher's Context64-threaded operation style
// in fixedpoint/operations.go, where every arithmetic entry point accepted
// a *context and OR'd outcome bits into it.

// AddCtx returns Add(a, b), raising SignalOverflow/SignalUnderflow/
// SignalInvalidOperation on ctx as appropriate.
func AddCtx(ctx *Context, a, b BigDouble) BigDouble {
	r := Add(a, b)
	raiseArithmeticSignals(ctx, r, a, b)
	return r
}

// SubCtx returns Sub(a, b) with the same signal bookkeeping as AddCtx.
func SubCtx(ctx *Context, a, b BigDouble) BigDouble {
	r := Sub(a, b)
	raiseArithmeticSignals(ctx, r, a, b)
	return r
}

// MulCtx returns Mul(a, b) with the same signal bookkeeping as AddCtx.
func MulCtx(ctx *Context, a, b BigDouble) BigDouble {
	r := Mul(a, b)
	raiseArithmeticSignals(ctx, r, a, b)
	return r
}

// DivCtx returns Div(a, b), additionally raising SignalDivisionByZero when
// b is zero and a is not.
func DivCtx(ctx *Context, a, b BigDouble) BigDouble {
	r := Div(a, b)
	if b.Mantissa == 0 && a.Mantissa != 0 && !a.IsNaN() {
		ctx.raise(SignalDivisionByZero)
	}
	raiseArithmeticSignals(ctx, r, a, b)
	return r
}

// raiseArithmeticSignals classifies a binary operation's result against its
// finite operands: a finite pair producing NaN is an invalid operation, a
// finite pair producing infinity is overflow, and a nonzero finite pair
// producing zero is underflow.
func raiseArithmeticSignals(ctx *Context, result, a, b BigDouble) {
	if ctx == nil {
		return
	}
	operandsFinite := a.IsFinite() && b.IsFinite()
	switch {
	case result.IsNaN() && operandsFinite:
		ctx.raise(SignalInvalidOperation)
	case result.IsInfinity() && operandsFinite:
		ctx.raise(SignalOverflow)
	case result.Mantissa == 0 && operandsFinite && a.Mantissa != 0 && b.Mantissa != 0:
		ctx.raise(SignalUnderflow)
	}
}

// ParseCtx is like Parse but raises SignalConversionSyntax on ctx when the
// literal cannot be parsed.
func ParseCtx(ctx *Context, s string) (BigDouble, error) {
	v, err := Parse(s)
	if err != nil {
		ctx.raise(SignalConversionSyntax)
	}
	return v, err
}

package bigdouble

// Context is an optional companion value that accumulates Signal bits as
// arithmetic operations run. All package-level operations accept a nil
// *Context — observability never changes the returned value, only what is
// recorded about how it was reached.
type Context struct {
	signals Signal
}

// NewContext returns a fresh, clear Context.
func NewContext() *Context { return &Context{} }

// Signal returns the accumulated signal state.
func (c *Context) Signal() Signal {
	if c == nil {
		return SignalClear
	}
	return c.signals
}

// ClearSignals resets the accumulated signal state.
func (c *Context) ClearSignals() {
	if c != nil {
		c.signals = SignalClear
	}
}

// raise ORs sig into the context's accumulated signals if the context is
// non-nil; it is always safe to call on a nil *Context.
func (c *Context) raise(sig Signal) {
	if c != nil {
		c.signals |= sig
	}
}

package bigdouble

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatLocale renders b through golang.org/x/text's locale-aware decimal
// formatter, the same way the currency package this engine's teacher shipped
// rendered its FixedPoint values. It is applied only to finite values whose
// decimal exponent lies within ±15; every other value (including the huge
// and tiny magnitudes that are the whole point of BigDouble) falls back to
// the plain "G" form, since locale-aware grouping of an exponent has no
// sensible rendering.
func (b BigDouble) FormatLocale(tag language.Tag) string {
	if !b.IsFinite() || b.Exponent > 15 || b.Exponent < -15 {
		return b.String()
	}

	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(b.ToFloat()))
}

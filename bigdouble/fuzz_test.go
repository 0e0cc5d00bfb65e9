package bigdouble

import "testing"

// FuzzArithmetic exercises Add/Sub/Mul/Div over bounded random mantissas
// and exponents, checking only the invariants that must hold for every
// input rather than specific values.
func FuzzArithmetic(f *testing.F) {
	f.Add(3.17, int64(2), -8.5, int64(-3))
	f.Add(1.0, int64(0), 1.0, int64(0))
	f.Add(9.999, int64(300), 1.0001, int64(-300))

	f.Fuzz(func(t *testing.T, m1 float64, e1 int64, m2 float64, e2 int64) {
		a := New(m1, e1%1000)
		b := New(m2, e2%1000)

		results := []BigDouble{
			Add(a, b), Sub(a, b), Mul(a, b), Div(a, b),
		}
		for _, r := range results {
			if r.IsNaN() || !r.IsFinite() {
				continue
			}
			abs := r.Mantissa
			if abs < 0 {
				abs = -abs
			}
			if r.Mantissa != 0 && (abs < 1 || abs >= 10) {
				t.Errorf("normalization invariant broken: a=%+v b=%+v result=%+v", a, b, r)
			}
		}
	})
}

func FuzzParseFormatRoundTrip(f *testing.F) {
	f.Add("123.456")
	f.Add("-0.00001")
	f.Add("1e300")
	f.Add("NaN")
	f.Add("Infinity")

	f.Fuzz(func(t *testing.T, s string) {
		v, err := Parse(s)
		if err != nil {
			return
		}
		out, ferr := v.Format("R")
		if ferr != nil {
			t.Fatalf("Format(R) error on %+v: %v", v, ferr)
		}
		back, perr := Parse(out)
		if perr != nil {
			return
		}
		if v.IsFinite() && back.IsFinite() && !EqTol(v, back, 1e-6) {
			t.Errorf("round trip mismatch: %q -> %+v -> %q -> %+v", s, v, out, back)
		}
	})
}

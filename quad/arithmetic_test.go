package quad

import "testing"

func TestAddSmallIntegersStayExact(t *testing.T) {
	got := Add(FromInt64(299), FromInt64(18))
	want := FromInt64(317)
	if !Equal(got, want) {
		t.Fatalf("299 + 18 = %+v; want %+v", got, want)
	}
}

func TestAddFarApartCollapsesToLarger(t *testing.T) {
	big := MustParse("1.23456789e1234")
	small := MustParse("1.23456789e123")
	got := Add(big, small)
	if !EqTol(got, big, 1e-15) {
		t.Fatalf("far-apart add: got %+v; want ~%+v", got, big)
	}
}

func TestCancellationYieldsExactZero(t *testing.T) {
	a := MustParse("1.23456789e1234")
	b := Negate(a)
	got := Add(a, b)
	if !got.IsZero() {
		t.Fatalf("cancellation: got %+v; want Zero", got)
	}
}

func TestToleranceEquality(t *testing.T) {
	a := FromFloat64(300)
	b1 := FromFloat64(300.00000002)
	b2 := FromFloat64(300.0000005)

	if !EqTol(a, b1, 1e-9) {
		t.Error("300 ~= 300.00000002 at 1e-9 should be true")
	}
	if EqTol(a, b2, 1e-9) {
		t.Error("300 ~= 300.0000005 at 1e-9 should be false")
	}
	if !EqTol(a, b2, 1e-8) {
		t.Error("300 ~= 300.0000005 at 1e-8 should be true")
	}
}

func TestPowSurvivesOverflow(t *testing.T) {
	base := FromFloat64(1.15)
	got := Pow(base, 6000)
	if !got.IsFinite() {
		t.Fatalf("Pow(1.15, 6000) should be finite, got %+v", got)
	}
	if l := Log2(got); !l.IsFinite() {
		t.Fatalf("log2 of Pow(1.15, 6000) should be finite, got %+v", l)
	}
}

func TestMulNearUpperBoundSaturatesInsteadOfWrapping(t *testing.T) {
	huge := Quad{Significand: signBit, Exponent: expMax - 65}
	got := Mul(huge, huge)
	if !got.IsPositiveInfinity() {
		t.Fatalf("multiplying two operands whose exponents sum past math.MaxInt64 should saturate to +Inf, got %+v", got)
	}
}

func TestDivNearLowerBoundSaturatesInsteadOfWrapping(t *testing.T) {
	huge := Quad{Significand: signBit, Exponent: expMax - 65}
	tiny := Quad{Significand: signBit, Exponent: expLowerBound + 1}
	got := Div(tiny, huge)
	if !got.IsZero() {
		t.Fatalf("dividing a tiny operand by a huge one whose exponent difference wraps past math.MinInt64 should saturate to Zero, got %+v", got)
	}
}

func TestPowFractionalExponent(t *testing.T) {
	got := Pow(FromFloat64(4), 0.5)
	want := FromFloat64(2)
	if !EqTol(got, want, 1e-9) {
		t.Fatalf("Pow(4, 0.5) = %+v; want ~%+v", got, want)
	}
}

func TestPowNegativeBaseNonIntegerExponentIsNaN(t *testing.T) {
	got := Pow(FromFloat64(-4), 0.5)
	if !got.IsNaN() {
		t.Fatalf("Pow(-4, 0.5) should be NaN, got %+v", got)
	}
}

func TestIdentities(t *testing.T) {
	xs := []Quad{FromFloat64(1), FromFloat64(-7.5), MustParse("1e50"), MustParse("-1e-50")}
	for _, x := range xs {
		if !EqTol(Add(x, Zero), x, 1e-15) {
			t.Errorf("%+v + 0 != %+v", x, x)
		}
		if !EqTol(Mul(x, One), x, 1e-15) {
			t.Errorf("%+v * 1 != %+v", x, x)
		}
		if diff := Sub(x, x); !diff.IsZero() {
			t.Errorf("%+v - %+v != 0, got %+v", x, x, diff)
		}
		if !x.IsZero() {
			if !EqTol(Div(x, x), One, 1e-12) {
				t.Errorf("%+v / %+v != 1", x, x)
			}
		}
	}
}

func TestCommutativity(t *testing.T) {
	a := MustParse("123.456e78")
	b := MustParse("-9.87e-12")
	if !EqTol(Add(a, b), Add(b, a), 1e-12) {
		t.Error("addition not commutative")
	}
	if !EqTol(Mul(a, b), Mul(b, a), 1e-12) {
		t.Error("multiplication not commutative")
	}
}

func TestSignProperties(t *testing.T) {
	x := MustParse("42.5e10")
	if Sign(Abs(x)) < 0 {
		t.Error("Abs should never be negative")
	}
	if Sign(Negate(x)) != -Sign(x) {
		t.Error("Sign(Negate(x)) should be -Sign(x)")
	}
}

func TestDivisionByZero(t *testing.T) {
	got := Div(FromFloat64(5), Zero)
	if !got.IsPositiveInfinity() {
		t.Errorf("5/0 = %+v; want +Inf", got)
	}
	got = Div(FromFloat64(-5), Zero)
	if !got.IsNegativeInfinity() {
		t.Errorf("-5/0 = %+v; want -Inf", got)
	}
	got = Div(Zero, Zero)
	if !got.IsNaN() {
		t.Errorf("0/0 = %+v; want NaN", got)
	}
}

func TestZeroTimesInfinityIsNaN(t *testing.T) {
	if !Mul(Zero, Inf(1)).IsNaN() {
		t.Error("0 * Inf should be NaN")
	}
	if !Mul(Inf(-1), Zero).IsNaN() {
		t.Error("-Inf * 0 should be NaN")
	}
}

func TestInfinityMinusInfinityIsNaN(t *testing.T) {
	if !Sub(Inf(1), Inf(1)).IsNaN() {
		t.Error("Inf - Inf should be NaN")
	}
	if !Add(Inf(1), Inf(-1)).IsNaN() {
		t.Error("Inf + (-Inf) should be NaN")
	}
}

func TestHyperbolicRoundTrip(t *testing.T) {
	x := FromFloat64(0.5)
	s := Sinh(x)
	back := Asinh(s)
	if !EqTol(back, x, 1e-9) {
		t.Errorf("asinh(sinh(0.5)) = %+v; want ~0.5", back)
	}
}

func TestFactorialSmallValues(t *testing.T) {
	cases := []struct {
		n    float64
		want float64
	}{
		{5, 120},
		{10, 3628800},
	}
	for _, c := range cases {
		got := Factorial(FromFloat64(c.n)).ToFloat64()
		if diff := got - c.want; diff < -c.want*0.01 || diff > c.want*0.01 {
			t.Errorf("Factorial(%v) = %v; want ~%v", c.n, got, c.want)
		}
	}
}

func TestSqrtExactPowerOfTwo(t *testing.T) {
	got := Sqrt(FromInt64(1 << 40))
	want := FromInt64(1 << 20)
	if !EqTol(got, want, 1e-12) {
		t.Errorf("Sqrt(2^40) = %+v; want %+v", got, want)
	}
}

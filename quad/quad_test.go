package quad

import (
	"math"
	"testing"
)

func TestFromInt64RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 42, -42, 1 << 40, -(1 << 40), math.MaxInt64, math.MinInt64}
	for _, v := range values {
		q := FromInt64(v)
		got, err := q.ToInt64()
		if err != nil {
			t.Fatalf("FromInt64(%d).ToInt64() error: %v", v, err)
		}
		if got != v {
			t.Errorf("FromInt64(%d).ToInt64() = %d", v, got)
		}
	}
}

func TestFromFloat64RoundTrip(t *testing.T) {
	values := []float64{1, -1, 123.456, -0.0005, 1e10, -1e-10, 3.14159, 5e-324, 1.7976931348623157e308}
	for _, v := range values {
		q := FromFloat64(v)
		got := q.ToFloat64()
		if got != v {
			t.Errorf("FromFloat64(%v).ToFloat64() = %v", v, got)
		}
	}
}

func TestFromFloat64Sentinels(t *testing.T) {
	if !FromFloat64(math.NaN()).IsNaN() {
		t.Error("FromFloat64(NaN) should be NaN")
	}
	if !FromFloat64(math.Inf(1)).IsPositiveInfinity() {
		t.Error("FromFloat64(+Inf) should be +Inf")
	}
	if !FromFloat64(math.Inf(-1)).IsNegativeInfinity() {
		t.Error("FromFloat64(-Inf) should be -Inf")
	}
	if !FromFloat64(0).IsZero() {
		t.Error("FromFloat64(0) should be zero")
	}
	if !FromFloat64(math.Copysign(0, -1)).IsZero() {
		t.Error("FromFloat64(-0) should still be the unique zero")
	}
}

func TestNormalizationInvariant(t *testing.T) {
	samples := []Quad{
		FromFloat64(123.456),
		FromFloat64(-0.0001),
		Add(FromInt64(1<<62), FromInt64(1<<62)),
		Mul(MustParse("1e200"), MustParse("1e200")),
	}
	for _, s := range samples {
		if s.IsZero() || !s.IsFinite() {
			continue
		}
		// The implicit leading bit means the explicit significand must
		// always have its top bit set for a finite, nonzero value.
		if explicitSignificand(s.fracBits())&signBit == 0 {
			t.Errorf("explicit significand not normalized: %+v", s)
		}
	}
}

func TestToInt64Overflow(t *testing.T) {
	if _, err := MustParse("1e30").ToInt64(); err == nil {
		t.Error("1e30.ToInt64() should overflow")
	}
	if _, err := NaN().ToInt64(); err == nil {
		t.Error("NaN.ToInt64() should error")
	}
}

func TestToUint64Negative(t *testing.T) {
	if _, err := FromInt64(-5).ToUint64(); err == nil {
		t.Error("(-5).ToUint64() should error")
	}
}

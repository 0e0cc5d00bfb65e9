package bigdouble

import "testing"

func TestParseSentinels(t *testing.T) {
	tests := []struct {
		input string
		check func(BigDouble) bool
	}{
		{"NaN", BigDouble.IsNaN},
		{"Infinity", BigDouble.IsPositiveInfinity},
		{"-Infinity", BigDouble.IsNegativeInfinity},
		{"0", BigDouble.IsZero},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.input, err)
		}
		if !tt.check(got) {
			t.Errorf("Parse(%q) = %+v; failed predicate", tt.input, got)
		}
	}
}

func TestParseExponential(t *testing.T) {
	tests := []string{"1e308", "1E308", "1e+308", "1E+308"}
	for _, s := range tests {
		got, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", s, err)
		}
		want := FromFloat(1e308)
		if !EqTol(got, want, 1e-9) {
			t.Errorf("Parse(%q) = %+v; want ~%+v", s, got, want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("not-a-number")
	if err == nil {
		t.Error("Parse(\"not-a-number\") should error")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	v := MustParse("123.456e78")
	s, err := v.Format("R")
	if err != nil {
		t.Fatalf("Format(R) error: %v", err)
	}
	back, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", s, err)
	}
	if !EqTol(back, v, 1e-6) {
		t.Errorf("round trip through R: %+v -> %q -> %+v", v, s, back)
	}
}

func TestFormatG(t *testing.T) {
	v := FromFloat(3.14)
	s, _ := v.Format("G")
	if s != "3.14" {
		t.Errorf("Format(G) = %q; want %q", s, "3.14")
	}
}

func TestFormatESpecifiesDigits(t *testing.T) {
	v := MustParse("1.23456789e50")
	s, _ := v.Format("E3")
	want := "1.235E+50"
	if s != want {
		t.Errorf("Format(E3) = %q; want %q", s, want)
	}
}

func TestFormatSentinels(t *testing.T) {
	if NaN().String() != "NaN" {
		t.Error("NaN string mismatch")
	}
	if Inf(1).String() != "Infinity" {
		t.Error("+Inf string mismatch")
	}
	if Inf(-1).String() != "-Infinity" {
		t.Error("-Inf string mismatch")
	}
}

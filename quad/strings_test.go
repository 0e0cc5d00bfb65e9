package quad

import "testing"

func TestParseSentinels(t *testing.T) {
	tests := []struct {
		input string
		check func(Quad) bool
	}{
		{"NaN", Quad.IsNaN},
		{"Infinity", Quad.IsPositiveInfinity},
		{"-Infinity", Quad.IsNegativeInfinity},
		{"0", Quad.IsZero},
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
		want := FromFloat64(1e308)
		if !EqTol(got, want, 1e-9) {
			t.Errorf("Parse(%q) = %+v; want ~%+v", s, got, want)
		}
	}
}

func TestParseBeyondFloat64Range(t *testing.T) {
	got, err := Parse("1e500")
	if err != nil {
		t.Fatalf("Parse(1e500) error: %v", err)
	}
	if !got.IsFinite() {
		t.Errorf("Parse(1e500) = %+v; want finite (binary64 would overflow here)", got)
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("not-a-number")
	if err == nil {
		t.Error("Parse(\"not-a-number\") should error")
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

func TestFormatHexExponentialRoundTripsSign(t *testing.T) {
	v := MustParse("-123.456")
	s, err := v.Format("HexExponential")
	if err != nil {
		t.Fatalf("Format(HexExponential) error: %v", err)
	}
	if s[0] != '-' {
		t.Errorf("HexExponential of a negative value should start with '-', got %q", s)
	}
}

func TestFormatScientificExact(t *testing.T) {
	v := MustParse("123.456e78")
	s, err := v.Format("ScientificExact")
	if err != nil {
		t.Fatalf("Format(ScientificExact) error: %v", err)
	}
	back, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", s, err)
	}
	if !EqTol(back, v, 1e-9) {
		t.Errorf("round trip through ScientificExact: %+v -> %q -> %+v", v, s, back)
	}
}

func TestUnknownFormatMode(t *testing.T) {
	_, err := FromInt64(1).Format("Bogus")
	if err == nil {
		t.Error("unknown format mode should error")
	}
}

package currency

import (
	"math"
	"testing"
)

func TestParseBRL(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"1.234,56", 1234.56},
		{"R$ 1.234,56", 1234.56},
		{"R$1.234,56", 1234.56},
		{"1234,56", 1234.56},
		{"1234.56", 1234.56},
		{"1234", 1234},
		{"0,01", 0.01},
		{"12.345.678,90", 12345678.90},
		{"1.234.567", 1234567},
		{"-1.234,56", -1234.56},
		{"  250,00  ", 250},
	}

	for _, tc := range cases {
		got, err := ParseBRL(tc.input)
		if err != nil {
			t.Fatalf("ParseBRL(%q) returned error: %v", tc.input, err)
		}
		if math.Abs(got-tc.want) > 0.001 {
			t.Fatalf("ParseBRL(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseBRL_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "R$", "12,34,56x"} {
		if _, err := ParseBRL(input); err == nil {
			t.Fatalf("ParseBRL(%q) expected error, got none", input)
		}
	}
}

func TestParseBRLOrZero(t *testing.T) {
	if got := ParseBRLOrZero("not a number"); got != 0 {
		t.Fatalf("expected 0 for unparseable input, got %v", got)
	}
	if got := ParseBRLOrZero("10,50"); got != 10.50 {
		t.Fatalf("expected 10.50, got %v", got)
	}
}

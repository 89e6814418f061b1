package core

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	// Variables, so the sum is rounded in float64 rather than folded exactly.
	a, b := 0.1, 0.2

	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"integer", 42, "42"},
		{"negative integer", -42, "-42"},
		{"decimal", 2.5, "2.5"},
		{"float noise", a + b, "0.30000000000000004"},
		{"large integer", 123456789012, "123456789012"},
		{"exponent large", 1e21, "1e+21"},
		{"exponent small", 1.5e-7, "1.5e-7"},
		{"small but plain", 0.000001, "0.000001"},
		{"nan", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := FormatNumber(tc.input)
			if result != tc.expected {
				t.Errorf("FormatNumber(%v) = %q, expected %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		input string
		value int
		ok    bool
	}{
		{"64", 64, true},
		{"-42", -42, true},
		{"05", 5, true},
		{"12.5", 0, false},
		{"NaN", 0, false},
		{"", 0, false},
		{"1e+21", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tc := range tests {
		value, ok := ParseInteger(tc.input)
		if ok != tc.ok || value != tc.value {
			t.Errorf("ParseInteger(%q) = (%d, %v), expected (%d, %v)", tc.input, value, ok, tc.value, tc.ok)
		}
	}
}

func TestSignHelpers(t *testing.T) {
	neg, rest := SplitSign("-123")
	if !neg || rest != "123" {
		t.Errorf("SplitSign(-123) = (%v, %q)", neg, rest)
	}
	neg, rest = SplitSign("7")
	if neg || rest != "7" {
		t.Errorf("SplitSign(7) = (%v, %q)", neg, rest)
	}
	if WithSign(true, "5") != "-5" {
		t.Error("WithSign(true, 5) should be -5")
	}
	if WithSign(false, "5") != "5" {
		t.Error("WithSign(false, 5) should be 5")
	}
}

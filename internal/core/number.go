// Package core provides fundamental types and utilities for the broken calculator.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"math"
	"strconv"
	"strings"
)

// Text forms for values that have no decimal rendering.
const (
	NaNText    = "NaN"
	InfText    = "Infinity"
	NegInfText = "-Infinity"
)

// FormatNumber renders v as its default decimal text: the shortest string that
// round-trips, no trailing ".0" for integers, and exponent notation only for
// very large (>= 1e21) or very small (< 1e-6) magnitudes.
// Negative zero renders as "0".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return NaNText
	case math.IsInf(v, 1):
		return InfText
	case math.IsInf(v, -1):
		return NegInfText
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		// Go pads the exponent to two digits ("1e-07"), drop the padding.
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mantissa + "e" + sign + digits
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseInteger parses s as a whole base-10 integer with an optional sign.
// Fractional, exponent, non-numeric and overflowing text is rejected.
func ParseInteger(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SplitSign separates a leading minus sign from the rest of s.
func SplitSign(s string) (negative bool, rest string) {
	if strings.HasPrefix(s, "-") {
		return true, s[1:]
	}
	return false, s
}

// WithSign prefixes s with a minus sign when negative is set.
func WithSign(negative bool, s string) string {
	if negative {
		return "-" + s
	}
	return s
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

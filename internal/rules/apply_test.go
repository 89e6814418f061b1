package rules

import (
	"testing"

	"github.com/damiensmith1/broken-calculator/internal/core"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		rule     RuleID
		input    float64
		expected string
	}{
		{"offByOne", OffByOne, 49, "50"},
		{"offByOne negative", OffByOne, -5, "-4"},
		{"plusHundred", PlusHundred, 42, "142"},
		{"doubled", Doubled, 32, "64"},
		{"doubled negative", Doubled, -3, "-6"},
		{"halved", Halved, 50, "25"},
		{"halved tie rounds away from zero", Halved, 5, "3"},
		{"halved negative tie", Halved, -5, "-3"},
		{"negated", Negated, 42, "-42"},
		{"negated negative", Negated, -42, "42"},
		{"negated zero", Negated, 0, "0"},
		{"squared", Squared, 13, "169"},
		{"squared negative", Squared, -13, "169"},
		{"timesThree", TimesThree, 33, "99"},
		{"reverseDigits", ReverseDigits, 85, "58"},
		{"reverseDigits negative", ReverseDigits, -123, "-321"},
		{"reverseDigits keeps leading zero", ReverseDigits, 120, "021"},
		{"reverseDigits decimal", ReverseDigits, 2.5, "5.2"},
		{"complementTo100", ComplementTo100, 25, "75"},
		{"complementTo100 overshoot", ComplementTo100, 150, "-50"},
		{"stuckFive", StuckFive, 73, "735"},
		{"stuckFive negative", StuckFive, -7, "-75"},
		{"digitRotation", DigitRotation, 25, "52"},
		{"digitRotation single digit", DigitRotation, 5, "5"},
		{"digitRotation negative", DigitRotation, -123, "-231"},
		{"digitRotation leading zero", DigitRotation, 50, "05"},
		{"digitProduct", DigitProduct, 46, "24"},
		{"digitProduct negative", DigitProduct, -46, "-24"},
		{"digitProduct zero digit", DigitProduct, 105, "0"},
		{"digitProduct decimal", DigitProduct, 2.5, "NaN"},
		{"sumOfSquares", SumOfSquares, 17, "50"},
		{"sumOfSquares negative", SumOfSquares, -17, "-50"},
		{"digitalRoot", DigitalRoot, 99, "9"},
		{"digitalRoot negative", DigitalRoot, -99, "-9"},
		{"digitalRoot ten", DigitalRoot, 10, "1"},
		{"digitalRoot single digit doubles", DigitalRoot, 5, "10"},
		{"digitalRoot negative single digit", DigitalRoot, -5, "-10"},
		{"collatz even", Collatz, 32, "16"},
		{"collatz odd", Collatz, 5, "16"},
		{"collatz negative", Collatz, -5, "-16"},
		{"collatz decimal", Collatz, 2.5, "8.5"},
		{"digitSum", DigitSum, 99, "18"},
		{"digitSum negative", DigitSum, -99, "-18"},
		{"kaprekar", Kaprekar, 63, "27"},
		{"kaprekar pads single digit", Kaprekar, 5, "45"},
		{"kaprekar negative", Kaprekar, -63, "-27"},
		{"kaprekar zero", Kaprekar, 0, "0"},
		{"kaprekar decimal", Kaprekar, 2.5, "NaN"},
		{"onesComplement", OnesComplement, 35, "64"},
		{"onesComplement negative", OnesComplement, -35, "-64"},
		{"onesComplement decimal", OnesComplement, 2.5, "7.4"},
		{"modulo13", Modulo13, 20, "7"},
		{"modulo13 exact multiple", Modulo13, 13, "0"},
		{"modulo13 small value shifted", Modulo13, 7, "20"},
		{"modulo13 negative small", Modulo13, -7, "-20"},
		{"modulo13 negative", Modulo13, -20, "-7"},
		{"absoluteValue", AbsoluteValue, -37, "37"},
		{"lastTwoDigits", LastTwoDigits, 107, "7"},
		{"lastTwoDigits negative", LastTwoDigits, -1234, "-34"},
		{"firstDigitOnly", FirstDigitOnly, 987, "9"},
		{"firstDigitOnly negative", FirstDigitOnly, -456, "-4"},
		{"firstDigitOnly zero", FirstDigitOnly, 0, "0"},
		{"roundToTen", RoundToTen, 114, "110"},
		{"roundToTen tie", RoundToTen, 115, "120"},
		{"roundToTen negative tie", RoundToTen, -115, "-120"},
		{"ignoreZeros", IgnoreZeros, 105, "15"},
		{"ignoreZeros all zeros", IgnoreZeros, 0, "0"},
		{"ignoreZeros negative", IgnoreZeros, -100, "-1"},
		{"sortDigits", SortDigits, 531, "135"},
		{"sortDigits character order", SortDigits, 10, "01"},
		{"sortDigits negative", SortDigits, -321, "-123"},
		{"swapPlusAndTimes is identity", SwapPlusAndTimes, 10, "10"},
		{"brokenSubtraction is identity", BrokenSubtraction, -4, "-4"},
		{"brokenDivision is identity", BrokenDivision, 2.5, "2.5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Apply(tc.input, tc.rule)
			if result != tc.expected {
				t.Errorf("Apply(%v, %s) = %q, expected %q", tc.input, tc.rule, result, tc.expected)
			}
		})
	}
}

func TestSignPolicy(t *testing.T) {
	// Rules that work on |result| and put the sign back.
	signKeeping := []RuleID{
		ReverseDigits, DigitRotation, DigitProduct, SumOfSquares, DigitalRoot,
		Collatz, DigitSum, Kaprekar, OnesComplement, Modulo13, LastTwoDigits,
		FirstDigitOnly, IgnoreZeros, SortDigits, StuckFive,
	}
	for _, rule := range signKeeping {
		for _, n := range []float64{17, 64, 123, 987} {
			result := Apply(-n, rule)
			if result[0] != '-' {
				t.Errorf("Apply(%v, %s) = %q, expected a negative result", -n, rule, result)
			}
			if positive := Apply(n, rule); "-"+positive != result {
				t.Errorf("Apply(%v, %s) = %q, expected the sign of %q flipped", -n, rule, result, positive)
			}
		}
	}

	for _, n := range []float64{3, 17, 64} {
		if result := Apply(-n, Squared); result[0] == '-' {
			t.Errorf("squared should never be negative, got %q", result)
		}
		if result := Apply(-n, AbsoluteValue); result[0] == '-' {
			t.Errorf("absoluteValue should never be negative, got %q", result)
		}
		if result := Apply(n, Negated); result[0] != '-' {
			t.Errorf("negated should flip %v, got %q", n, result)
		}
	}
}

func TestOnesComplementRoundTrip(t *testing.T) {
	for _, n := range []float64{35, 123, 4567, -81} {
		once := Apply(n, OnesComplement)
		parsed, ok := core.ParseInteger(once)
		if !ok {
			t.Fatalf("Apply(%v, onesComplement) = %q is not an integer", n, once)
		}
		twice := Apply(float64(parsed), OnesComplement)
		if twice != core.FormatNumber(n) {
			t.Errorf("onesComplement twice on %v = %q, expected %q", n, twice, core.FormatNumber(n))
		}
	}
}

func TestReverseDigitsPalindrome(t *testing.T) {
	for _, n := range []float64{7, 121, 4554, -1331} {
		if result := Apply(n, ReverseDigits); result != core.FormatNumber(n) {
			t.Errorf("reverseDigits(%v) = %q, expected unchanged", n, result)
		}
	}
}

func TestSortDigitsIdempotent(t *testing.T) {
	for _, n := range []float64{531, 987654, 2718, -4312} {
		once := Apply(n, SortDigits)
		parsed, ok := core.ParseInteger(once)
		if !ok {
			t.Fatalf("Apply(%v, sortDigits) = %q is not an integer", n, once)
		}
		if twice := Apply(float64(parsed), SortDigits); twice != once {
			t.Errorf("sortDigits twice on %v = %q, once = %q", n, twice, once)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, info := range All() {
		id, err := Parse(info.Name)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", info.Name, err)
		}
		if id != info.ID {
			t.Errorf("Parse(%q) = %v, expected %v", info.Name, id, info.ID)
		}
	}

	if _, err := Parse("tripled"); err == nil {
		t.Error("Parse should reject unknown rule names")
	}
}

func TestKinds(t *testing.T) {
	expression := map[RuleID]bool{
		SwapPlusAndTimes:  true,
		BrokenSubtraction: true,
		BrokenDivision:    true,
	}
	for _, info := range All() {
		want := KindResult
		if expression[info.ID] {
			want = KindExpression
		}
		if info.Kind != want {
			t.Errorf("%s kind = %s, expected %s", info.Name, info.Kind, want)
		}
	}
}

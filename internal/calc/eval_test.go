package calc

import (
	"errors"
	"testing"

	"github.com/damiensmith1/broken-calculator/internal/core"
	"github.com/damiensmith1/broken-calculator/internal/rules"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"literal", "32", 32},
		{"addition", "2+3", 5},
		{"precedence", "2+3*4", 14},
		{"precedence reversed", "2*3+4", 10},
		{"left associative subtraction", "10-4-3", 3},
		{"left associative division", "100/10/5", 2},
		{"parentheses", "(2+3)*4", 20},
		{"nested parentheses", "((1+2)*(3+4))", 21},
		{"decimal", "1.5*2", 3},
		{"leading dot", ".5+.5", 1},
		{"trailing dot", "5.+1", 6},
		{"unary minus", "-5+2", -3},
		{"unary after operator", "2*-3", -6},
		{"unary plus", "+4", 4},
		{"separated signs", "5- -3", 8},
		{"whitespace", " 6 / 3 ", 2},
		{"zero literal", "0", 0},
		{"zero decimal", "0.25*4", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.input, err)
			}
			if result != tc.expected {
				t.Errorf("Parse(%q) = %v, expected %v", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"dangling operator", "5+"},
		{"leading binary operator", "*5"},
		{"double operator", "5*/2"},
		{"increment", "5++3"},
		{"decrement", "5--3"},
		{"unclosed parenthesis", "(2+3"},
		{"extra closing parenthesis", "2+3)"},
		{"empty parentheses", "()"},
		{"two decimal points", "1.2.3"},
		{"lone decimal point", "."},
		{"leading zero", "07+1"},
		{"identifier", "alert(1)"},
		{"function call", "Math.max(1,2)"},
		{"exponent operator", "2**3"},
		{"division by zero", "5/0"},
		{"zero over zero", "0/0"},
		{"adjacent numbers", "2 3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Errorf("Parse(%q) error = %v, expected *SyntaxError", tc.input, err)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "   "} {
		if _, err := Parse(input); !errors.Is(err, ErrEmpty) {
			t.Errorf("Parse(%q) error = %v, expected ErrEmpty", input, err)
		}
	}
}

func TestEvaluateFailsSoft(t *testing.T) {
	for _, input := range []string{"5+", "", "abc", "1/0", "(", "2..3"} {
		if result := Evaluate(input, rules.Doubled); result != 0 {
			t.Errorf("Evaluate(%q) = %v, expected 0", input, result)
		}
	}
}

// Decimal arithmetic keeps binary floating point noise in the true result.
func TestEvaluateFloatNoise(t *testing.T) {
	result := Evaluate("0.1+0.2", rules.OffByOne)
	if got := core.FormatNumber(result); got != "0.30000000000000004" {
		t.Errorf("Evaluate(\"0.1+0.2\") formats as %q, expected \"0.30000000000000004\"", got)
	}
}

func TestRewrite(t *testing.T) {
	tests := []struct {
		name     string
		rule     rules.RuleID
		input    string
		expected string
	}{
		{"swap plus and times", rules.SwapPlusAndTimes, "2+3*4", "2*3+4"},
		{"swap is symmetric", rules.SwapPlusAndTimes, "1*2*3+4+5", "1+2+3*4*5"},
		{"swap without operators", rules.SwapPlusAndTimes, "42", "42"},
		{"broken subtraction", rules.BrokenSubtraction, "10-6-1", "10+6+1"},
		{"broken division", rules.BrokenDivision, "12/4", "12*4"},
		{"result rule untouched", rules.Doubled, "2+3*4", "2+3*4"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Rewrite(tc.input, tc.rule)
			if result != tc.expected {
				t.Errorf("Rewrite(%q, %s) = %q, expected %q", tc.input, tc.rule, result, tc.expected)
			}
			// Applying the swap twice restores the original text.
			if tc.rule == rules.SwapPlusAndTimes {
				if back := Rewrite(result, tc.rule); back != tc.input {
					t.Errorf("Rewrite twice = %q, expected %q", back, tc.input)
				}
			}
		})
	}
}

func TestEvaluateWithExpressionRules(t *testing.T) {
	tests := []struct {
		name     string
		rule     rules.RuleID
		input    string
		expected float64
	}{
		{"swap plus and times", rules.SwapPlusAndTimes, "2+3*4", 10},
		{"broken subtraction", rules.BrokenSubtraction, "10-6", 16},
		{"broken division", rules.BrokenDivision, "12/4", 48},
		{"result rule evaluates normally", rules.OffByOne, "2+3*4", 14},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Evaluate(tc.input, tc.rule)
			if result != tc.expected {
				t.Errorf("Evaluate(%q, %s) = %v, expected %v", tc.input, tc.rule, result, tc.expected)
			}
		})
	}
}

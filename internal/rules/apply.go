package rules

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/damiensmith1/broken-calculator/internal/core"
)

// Apply computes the broken display value for a true result under the given rule.
//
// Digit rules work on the default decimal text of the value, not on a
// re-parsed magnitude, so leading zeros produced by a transform stay visible.
// Unless a rule says otherwise the transform runs on |result| and the original
// sign is put back in front. Expression rules already did their damage before
// evaluation and return the number unchanged.
func Apply(result float64, id RuleID) string {
	abs := math.Abs(result)
	negative := result < 0

	switch id {
	case OffByOne:
		return core.FormatNumber(result + 1)
	case PlusHundred:
		return core.FormatNumber(result + 100)
	case Doubled:
		return core.FormatNumber(result * 2)
	case Halved:
		return core.FormatNumber(math.Round(result / 2))
	case Negated:
		return core.FormatNumber(-result)
	case Squared:
		return core.FormatNumber(result * result)
	case TimesThree:
		return core.FormatNumber(result * 3)
	case ComplementTo100:
		return core.FormatNumber(100 - result)
	case AbsoluteValue:
		return core.FormatNumber(abs)
	case RoundToTen:
		return core.FormatNumber(math.Round(result/10) * 10)

	case ReverseDigits:
		neg, digits := core.SplitSign(core.FormatNumber(result))
		return core.WithSign(neg, reverse(digits))

	case StuckFive:
		return core.FormatNumber(result) + "5"

	case DigitRotation:
		s := core.FormatNumber(abs)
		if len(s) < 2 {
			return core.FormatNumber(result)
		}
		return core.WithSign(negative, s[1:]+s[:1])

	case DigitProduct:
		digits, ok := digitValues(core.FormatNumber(abs))
		if !ok {
			return core.NaNText
		}
		product := 1.0
		for _, d := range digits {
			product *= float64(d)
		}
		return signed(negative, product)

	case SumOfSquares:
		digits, ok := digitValues(core.FormatNumber(abs))
		if !ok {
			return core.NaNText
		}
		sum := 0.0
		for _, d := range digits {
			sum += float64(d * d)
		}
		return signed(negative, sum)

	case DigitSum:
		sum, ok := digitSum(abs)
		if !ok {
			return core.NaNText
		}
		return signed(negative, sum)

	case DigitalRoot:
		// Single digits would be their own root; they are doubled instead.
		if abs < 10 {
			return signed(negative, abs*2)
		}
		n := abs
		for n >= 10 {
			sum, ok := digitSum(n)
			if !ok {
				return core.NaNText
			}
			n = sum
		}
		return signed(negative, n)

	case Collatz:
		next := 3*abs + 1
		if math.Mod(abs, 2) == 0 {
			next = abs / 2
		}
		return signed(negative, next)

	case Kaprekar:
		s := core.FormatNumber(abs)
		if len(s) < 2 {
			s = strings.Repeat("0", 2-len(s)) + s
		}
		if _, ok := digitValues(s); !ok {
			return core.NaNText
		}
		asc := sortChars(s)
		desc := reverse(asc)
		high, _ := strconv.ParseFloat(desc, 64)
		low, _ := strconv.ParseFloat(asc, 64)
		return signed(negative, high-low)

	case OnesComplement:
		neg, digits := core.SplitSign(core.FormatNumber(result))
		complemented := strings.Map(func(r rune) rune {
			if core.IsDigit(r) {
				return '9' - (r - '0')
			}
			return r
		}, digits)
		return core.WithSign(neg, complemented)

	case Modulo13:
		// Values below 13 would come out unchanged, so they are pushed up by 13.
		if abs < 13 {
			return signed(negative, abs+13)
		}
		return signed(negative, math.Mod(abs, 13))

	case LastTwoDigits:
		return signed(negative, math.Mod(abs, 100))

	case FirstDigitOnly:
		s := core.FormatNumber(abs)
		return core.WithSign(negative, s[:1])

	case IgnoreZeros:
		s := strings.ReplaceAll(core.FormatNumber(abs), "0", "")
		if s == "" {
			return "0"
		}
		return core.WithSign(negative, s)

	case SortDigits:
		// Character order, not numeric order: "10" sorts to "01".
		return core.WithSign(negative, sortChars(core.FormatNumber(abs)))

	case SwapPlusAndTimes, BrokenSubtraction, BrokenDivision:
		return core.FormatNumber(result)
	}

	return core.FormatNumber(result)
}

// signed formats v with the sign of the original result.
func signed(negative bool, v float64) string {
	if negative {
		v = -v
	}
	return core.FormatNumber(v)
}

// digitValues returns the numeric digits of s.
// Returns false if s contains anything other than decimal digits.
func digitValues(s string) ([]int, bool) {
	digits := make([]int, 0, len(s))
	for _, r := range s {
		if !core.IsDigit(r) {
			return nil, false
		}
		digits = append(digits, int(r-'0'))
	}
	return digits, len(digits) > 0
}

func digitSum(v float64) (float64, bool) {
	digits, ok := digitValues(core.FormatNumber(v))
	if !ok {
		return 0, false
	}
	sum := 0
	for _, d := range digits {
		sum += d
	}
	return float64(sum), true
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func sortChars(s string) string {
	b := []byte(s)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}

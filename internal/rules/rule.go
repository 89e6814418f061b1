// Package rules implements the catalog of distortion rules that break the calculator.
package rules

import "fmt"

// RuleID identifies one distortion rule. The set is closed: adding a rule means
// adding a constant here and a case to every switch in this package.
type RuleID int

const (
	OffByOne RuleID = iota
	PlusHundred
	Doubled
	Halved
	Negated
	Squared
	TimesThree
	ReverseDigits
	ComplementTo100
	StuckFive
	DigitRotation
	DigitProduct
	SumOfSquares
	DigitalRoot
	Collatz
	DigitSum
	Kaprekar
	OnesComplement
	Modulo13
	AbsoluteValue
	LastTwoDigits
	FirstDigitOnly
	RoundToTen
	IgnoreZeros
	SortDigits
	SwapPlusAndTimes
	BrokenSubtraction
	BrokenDivision

	ruleCount // sentinel, keep last
)

// Kind classifies how a rule distorts the calculation.
type Kind int

const (
	// KindResult rules map the true result to a broken display value.
	KindResult Kind = iota
	// KindExpression rules rewrite the expression text before evaluation.
	KindExpression
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindExpression {
		return "expression"
	}
	return "result"
}

// Info describes a rule for listings.
type Info struct {
	ID          RuleID
	Name        string
	Kind        Kind
	Description string
}

var catalog = [ruleCount]Info{
	OffByOne:          {Name: "offByOne", Description: "result + 1"},
	PlusHundred:       {Name: "plusHundred", Description: "result + 100"},
	Doubled:           {Name: "doubled", Description: "result x 2"},
	Halved:            {Name: "halved", Description: "result / 2, rounded half away from zero"},
	Negated:           {Name: "negated", Description: "-result"},
	Squared:           {Name: "squared", Description: "result x result"},
	TimesThree:        {Name: "timesThree", Description: "result x 3"},
	ReverseDigits:     {Name: "reverseDigits", Description: "digits reversed, sign kept"},
	ComplementTo100:   {Name: "complementTo100", Description: "100 - result"},
	StuckFive:         {Name: "stuckFive", Description: "a 5 appended to the result"},
	DigitRotation:     {Name: "digitRotation", Description: "first digit moved to the end"},
	DigitProduct:      {Name: "digitProduct", Description: "product of the digits"},
	SumOfSquares:      {Name: "sumOfSquares", Description: "sum of squared digits"},
	DigitalRoot:       {Name: "digitalRoot", Description: "repeated digit sum, single digits doubled"},
	Collatz:           {Name: "collatz", Description: "one Collatz step"},
	DigitSum:          {Name: "digitSum", Description: "sum of the digits"},
	Kaprekar:          {Name: "kaprekar", Description: "descending digits minus ascending digits"},
	OnesComplement:    {Name: "onesComplement", Description: "every digit d becomes 9 - d"},
	Modulo13:          {Name: "modulo13", Description: "result mod 13, small values shifted by 13"},
	AbsoluteValue:     {Name: "absoluteValue", Description: "|result|"},
	LastTwoDigits:     {Name: "lastTwoDigits", Description: "|result| mod 100, sign kept"},
	FirstDigitOnly:    {Name: "firstDigitOnly", Description: "only the leading digit survives"},
	RoundToTen:        {Name: "roundToTen", Description: "rounded to the nearest ten"},
	IgnoreZeros:       {Name: "ignoreZeros", Description: "every 0 removed"},
	SortDigits:        {Name: "sortDigits", Description: "digit characters sorted ascending"},
	SwapPlusAndTimes:  {Name: "swapPlusAndTimes", Kind: KindExpression, Description: "+ and * trade places"},
	BrokenSubtraction: {Name: "brokenSubtraction", Kind: KindExpression, Description: "- behaves like +"},
	BrokenDivision:    {Name: "brokenDivision", Kind: KindExpression, Description: "/ behaves like *"},
}

var byName = func() map[string]RuleID {
	m := make(map[string]RuleID, ruleCount)
	for i := range catalog {
		m[catalog[i].Name] = RuleID(i)
	}
	return m
}()

// Valid reports whether id names a rule in the catalog.
func (id RuleID) Valid() bool {
	return id >= 0 && id < ruleCount
}

// String returns the rule's catalog name (e.g. "reverseDigits").
func (id RuleID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("RuleID(%d)", int(id))
	}
	return catalog[id].Name
}

// Kind returns whether the rule acts on the result or on the expression.
func (id RuleID) Kind() Kind {
	if !id.Valid() {
		return KindResult
	}
	return catalog[id].Kind
}

// Info returns the catalog entry for the rule.
func (id RuleID) Info() Info {
	if !id.Valid() {
		return Info{ID: id, Name: id.String()}
	}
	info := catalog[id]
	info.ID = id
	return info
}

// Parse looks up a rule by its catalog name.
func Parse(name string) (RuleID, error) {
	id, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("rules: unknown rule %q", name)
	}
	return id, nil
}

// All returns every rule in catalog order.
func All() []Info {
	result := make([]Info, 0, ruleCount)
	for i := RuleID(0); i < ruleCount; i++ {
		result = append(result, i.Info())
	}
	return result
}

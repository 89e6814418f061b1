package calc

import (
	"math"
	"strings"

	"github.com/damiensmith1/broken-calculator/internal/rules"
)

// swapPlaceholder stands in for '+' while '*' is turned into '+'.
// It is outside the expression alphabet, so it can never collide with input.
const swapPlaceholder = "\x00"

// Rewrite applies an expression rule's character substitution to expr.
// Result rules leave the expression untouched.
func Rewrite(expr string, rule rules.RuleID) string {
	switch rule {
	case rules.SwapPlusAndTimes:
		expr = strings.ReplaceAll(expr, "+", swapPlaceholder)
		expr = strings.ReplaceAll(expr, "*", "+")
		return strings.ReplaceAll(expr, swapPlaceholder, "*")
	case rules.BrokenSubtraction:
		return strings.ReplaceAll(expr, "-", "+")
	case rules.BrokenDivision:
		return strings.ReplaceAll(expr, "/", "*")
	}
	return expr
}

// Evaluate rewrites expr for the rule and evaluates it.
// Any malformed input, including a non-finite result, evaluates to 0.
func Evaluate(expr string, rule rules.RuleID) float64 {
	value, err := Parse(Rewrite(expr, rule))
	if err != nil {
		return 0
	}
	return value
}

// Parse evaluates a plain arithmetic expression with conventional precedence.
// Returns ErrEmpty for blank input and a *SyntaxError for anything malformed.
func Parse(expr string) (float64, error) {
	if strings.TrimSpace(expr) == "" {
		return 0, ErrEmpty
	}

	tokens, err := tokenize(expr)
	if err != nil {
		return 0, err
	}

	p := &parser{tokens: tokens}
	value, err := p.expr()
	if err != nil {
		return 0, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return 0, &SyntaxError{Pos: tok.pos, Msg: "unexpected token"}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &SyntaxError{Pos: 0, Msg: "result is not a finite number"}
	}

	return value, nil
}

// parser is a recursive-descent parser over a token slice.
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := ('+' | '-') unary | primary
//	primary := number | '(' expr ')'
type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expr() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}

	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			right, err := p.term()
			if err != nil {
				return 0, err
			}
			left += right
		case tokMinus:
			p.next()
			right, err := p.term()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (p *parser) term() (float64, error) {
	left, err := p.unary()
	if err != nil {
		return 0, err
	}

	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			right, err := p.unary()
			if err != nil {
				return 0, err
			}
			left *= right
		case tokSlash:
			p.next()
			right, err := p.unary()
			if err != nil {
				return 0, err
			}
			left /= right
		default:
			return left, nil
		}
	}
}

func (p *parser) unary() (float64, error) {
	switch p.peek().kind {
	case tokPlus:
		p.next()
		return p.unary()
	case tokMinus:
		p.next()
		v, err := p.unary()
		return -v, err
	}
	return p.primary()
}

func (p *parser) primary() (float64, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		return tok.value, nil
	case tokLParen:
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return 0, &SyntaxError{Pos: closing.pos, Msg: "missing closing parenthesis"}
		}
		return v, nil
	case tokEOF:
		return 0, &SyntaxError{Pos: tok.pos, Msg: "unexpected end of expression"}
	}
	return 0, &SyntaxError{Pos: tok.pos, Msg: "unexpected operator"}
}

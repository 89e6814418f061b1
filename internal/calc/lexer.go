// Package calc evaluates calculator expressions.
//
// The grammar is restricted to decimal literals, the four arithmetic operators
// and parentheses. Anything else is a syntax error; Evaluate turns every error
// into 0 so invalid player input never stops the game.
package calc

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrEmpty is returned when there is nothing to evaluate.
var ErrEmpty = errors.New("calc: empty expression")

// SyntaxError reports a malformed expression and where parsing stopped.
type SyntaxError struct {
	Pos int    // Byte offset into the expression
	Msg string // What went wrong
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("calc: %s at position %d", e.Msg, e.Pos)
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind  tokenKind
	value float64
	pos   int
}

// tokenize splits the expression into tokens, skipping whitespace.
func tokenize(expr string) ([]token, error) {
	var tokens []token

	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t':
			i++
			continue
		case isDigit(c) || c == '.':
			tok, next, err := lexNumber(expr, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next
			continue
		}

		var kind tokenKind
		switch c {
		case '+':
			kind = tokPlus
		case '-':
			kind = tokMinus
		case '*':
			kind = tokStar
		case '/':
			kind = tokSlash
		case '(':
			kind = tokLParen
		case ')':
			kind = tokRParen
		default:
			return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("unexpected character %q", c)}
		}

		// "++" and "--" are increment/decrement, not arithmetic.
		if (c == '+' || c == '-') && i+1 < len(expr) && expr[i+1] == c {
			return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("unexpected %q", string([]byte{c, c}))}
		}

		tokens = append(tokens, token{kind: kind, pos: i})
		i++
	}

	tokens = append(tokens, token{kind: tokEOF, pos: len(expr)})
	return tokens, nil
}

// lexNumber reads a decimal literal starting at start: "12", "1.5", ".5" or "5.".
func lexNumber(expr string, start int) (token, int, error) {
	i := start
	intDigits := 0
	for i < len(expr) && isDigit(expr[i]) {
		i++
		intDigits++
	}

	fracDigits := 0
	hasDot := false
	if i < len(expr) && expr[i] == '.' {
		hasDot = true
		i++
		for i < len(expr) && isDigit(expr[i]) {
			i++
			fracDigits++
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		return token{}, 0, &SyntaxError{Pos: start, Msg: "lone decimal point"}
	}
	if intDigits > 1 && expr[start] == '0' {
		return token{}, 0, &SyntaxError{Pos: start, Msg: "leading zero in number"}
	}
	if i < len(expr) && (expr[i] == '.' || isDigit(expr[i])) {
		return token{}, 0, &SyntaxError{Pos: i, Msg: "malformed number"}
	}

	text := expr[start:i]
	if hasDot && fracDigits == 0 {
		text = text[:len(text)-1]
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, 0, &SyntaxError{Pos: start, Msg: "malformed number"}
	}

	return token{kind: tokNumber, value: value, pos: start}, i, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

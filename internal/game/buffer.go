package game

import "strings"

// tokenAlphabet lists every character the expression buffer accepts.
const tokenAlphabet = "0123456789.+-*/()"

// ValidToken reports whether token is non-empty and made only of calculator characters.
func ValidToken(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !strings.ContainsRune(tokenAlphabet, r) {
			return false
		}
	}
	return true
}

// Buffer holds the raw expression text the player is typing.
type Buffer struct {
	text string
}

// Append adds a token to the end of the expression.
// Returns false if the token contains characters outside the calculator alphabet.
func (b *Buffer) Append(token string) bool {
	if !ValidToken(token) {
		return false
	}
	b.text += token
	return true
}

// Replace discards the current text and starts over with token.
func (b *Buffer) Replace(token string) bool {
	if !ValidToken(token) {
		return false
	}
	b.text = token
	return true
}

// Backspace removes the last character, if any.
func (b *Buffer) Backspace() {
	if b.text != "" {
		b.text = b.text[:len(b.text)-1]
	}
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.text = ""
}

// Text returns the current expression.
func (b *Buffer) Text() string {
	return b.text
}

// Empty reports whether nothing has been typed.
func (b *Buffer) Empty() bool {
	return b.text == ""
}

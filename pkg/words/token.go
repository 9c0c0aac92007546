package words

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Token construction errors.
var (
	// ErrEmptyToken indicates the token text was empty.
	ErrEmptyToken = errors.New("token is empty")

	// ErrTokenContainsSpace indicates the token text contained whitespace.
	ErrTokenContainsSpace = errors.New("token contains space")
)

// TokenError reports why a piece of text could not become a Token.
type TokenError struct {
	// Text is the rejected input.
	Text string
	// Err is ErrEmptyToken or ErrTokenContainsSpace.
	Err error
}

// Error returns the error message including the rejected text.
func (e *TokenError) Error() string {
	if e.Text == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Text)
}

// Unwrap returns the underlying error.
func (e *TokenError) Unwrap() error {
	return e.Err
}

// Token is a non-empty, whitespace-free unit of text.
//
// Tokens are immutable values. Two tokens are equal when their text is equal,
// so Token can be compared with == and used as a map key.
// The zero Token is not a valid token; it marks an absent fragment.
type Token struct {
	text string
}

// NewToken validates text and returns it as a Token.
// It fails with a *TokenError wrapping ErrEmptyToken or ErrTokenContainsSpace.
func NewToken(text string) (Token, error) {
	if err := validate(text); err != nil {
		return Token{}, &TokenError{Text: text, Err: err}
	}
	return Token{text: text}, nil
}

// MustToken is like NewToken but panics if text is not a valid token.
// Use it only for text that has already been validated.
func MustToken(text string) Token {
	tok, err := NewToken(text)
	if err != nil {
		panic(err)
	}
	return tok
}

func validate(text string) error {
	if text == "" {
		return ErrEmptyToken
	}
	if strings.IndexFunc(text, unicode.IsSpace) >= 0 {
		return ErrTokenContainsSpace
	}
	return nil
}

// Text returns the token's text.
func (t Token) Text() string {
	return t.text
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return t.text
}

// Len returns the length of the token in bytes.
func (t Token) Len() int {
	return len(t.text)
}

// IsZero reports whether t is the zero Token.
func (t Token) IsZero() bool {
	return t.text == ""
}

// Compare orders tokens by content. The result is -1, 0 or +1.
func (t Token) Compare(other Token) int {
	return strings.Compare(t.text, other.text)
}

// split cuts the n bytes starting at pos out of the token and returns what
// lies before and after them. Either side is the zero Token when empty.
func (t Token) split(pos, n int) (leading, trailing Token) {
	if pos > 0 {
		leading = Token{text: t.text[:pos]}
	}
	if end := pos + n; end < len(t.text) {
		trailing = Token{text: t.text[end:]}
	}
	return leading, trailing
}

package words

import (
	"fmt"
	"strings"
)

// Literal recognizes a word kind whose whole identity is one fixed string,
// such as a punctuation mark. The literal is found wherever it sits inside
// a token, so callers do not need to pre-split on punctuation.
type Literal[W Word] struct {
	text     string
	build    func() W
	priority Priority
}

// NewLiteral returns a Literal recognizer for text at Highest priority.
// build is called once per recognized occurrence. It panics if text is not a
// valid Token or build is nil.
func NewLiteral[W Word](text string, build func() W) Literal[W] {
	if err := validate(text); err != nil {
		panic(fmt.Sprintf("words: literal %q: %v", text, err))
	}
	if build == nil {
		panic("words: literal " + text + " has no constructor")
	}
	return Literal[W]{text: text, build: build, priority: Highest}
}

// WithPriority returns a copy of l tried at priority p.
func (l Literal[W]) WithPriority(p Priority) Literal[W] {
	l.priority = p
	return l
}

// Text returns the literal string.
func (l Literal[W]) Text() string {
	return l.text
}

// TryParse matches the whole token if it equals the literal. Otherwise it
// splits the token around the first occurrence of the literal.
func (l Literal[W]) TryParse(tok Token) Outcome[W] {
	if tok.Len() == len(l.text) {
		if tok.Text() == l.text {
			return Matched(l.build())
		}
		return NoMatch[W](tok)
	}

	pos := strings.Index(tok.Text(), l.text)
	if pos < 0 {
		return NoMatch[W](tok)
	}
	leading, trailing := tok.split(pos, len(l.text))
	return Partial(leading, l.build(), trailing)
}

// Priority returns the priority the literal is registered at.
func (l Literal[W]) Priority() Priority {
	return l.priority
}

// MultiToken returns false.
func (l Literal[W]) MultiToken() bool {
	return false
}

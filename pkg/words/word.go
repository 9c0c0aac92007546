package words

import "strings"

// Word is a recognized piece of text.
// Word values are immutable and hold only the text they matched.
type Word interface {
	// RawText returns the exact substring this word matched.
	RawText() string
}

// Recognizer interprets tokens as words of kind W.
//
// TryParse must be pure. When it returns a partial match, the leading text,
// the word's raw text and the trailing text must rebuild the token exactly.
type Recognizer[W Word] interface {
	TryParse(tok Token) Outcome[W]
	// Priority decides when the recognizer is tried relative to others.
	Priority() Priority
	// MultiToken reports whether the word kind may span several tokens.
	// It is reserved; the Parser does not consult it.
	MultiToken() bool
}

// Defaults can be embedded in a recognizer to get Mid priority and
// single-token words.
type Defaults struct{}

// Priority returns Mid.
func (Defaults) Priority() Priority { return Mid }

// MultiToken returns false.
func (Defaults) MultiToken() bool { return false }

// RecognizerFunc adapts a function to the Recognizer interface with the
// Defaults priority.
type RecognizerFunc[W Word] func(tok Token) Outcome[W]

// TryParse calls f(tok).
func (f RecognizerFunc[W]) TryParse(tok Token) Outcome[W] { return f(tok) }

// Priority returns Mid.
func (RecognizerFunc[W]) Priority() Priority { return Mid }

// MultiToken returns false.
func (RecognizerFunc[W]) MultiToken() bool { return false }

type prioritized[W Word] struct {
	Recognizer[W]
	priority Priority
}

func (r prioritized[W]) Priority() Priority { return r.priority }

// WithPriority returns r with its priority replaced by p.
func WithPriority[W Word](r Recognizer[W], p Priority) Recognizer[W] {
	return prioritized[W]{Recognizer: r, priority: p}
}

// Normal is the fallback word. It wraps any text verbatim.
type Normal struct {
	text string
}

// NewNormal returns a Normal word for text.
func NewNormal(text string) Normal {
	return Normal{text: text}
}

// RawText returns the wrapped text.
func (n Normal) RawText() string { return n.text }

// String implements fmt.Stringer.
func (n Normal) String() string { return n.text }

// NormalRecognizer matches every token as a Normal word at Lowest priority.
type NormalRecognizer struct{}

// TryParse always returns a full match.
func (NormalRecognizer) TryParse(tok Token) Outcome[Normal] {
	return Matched(NewNormal(tok.Text()))
}

// Priority returns Lowest.
func (NormalRecognizer) Priority() Priority { return Lowest }

// MultiToken returns false.
func (NormalRecognizer) MultiToken() bool { return false }

// Words is an ordered sequence of recognized words.
type Words []Word

// Texts returns the raw text of every word, in order.
func (ws Words) Texts() []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.RawText()
	}
	return out
}

// Text concatenates the raw text of every word.
func (ws Words) Text() string {
	var sb strings.Builder
	for _, w := range ws {
		sb.WriteString(w.RawText())
	}
	return sb.String()
}

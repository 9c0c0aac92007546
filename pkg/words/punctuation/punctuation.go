// Package punctuation provides single-literal punctuation word kinds.
package punctuation

import "github.com/shapestone/shape-words/pkg/words"

// Exclamation is "!".
type Exclamation struct{}

// RawText returns "!".
func (Exclamation) RawText() string { return "!" }

// QuestionMark is "?".
type QuestionMark struct{}

// RawText returns "?".
func (QuestionMark) RawText() string { return "?" }

// Period is ".".
type Period struct{}

// RawText returns ".".
func (Period) RawText() string { return "." }

// Comma is ",".
type Comma struct{}

// RawText returns ",".
func (Comma) RawText() string { return "," }

// Colon is ":".
type Colon struct{}

// RawText returns ":".
func (Colon) RawText() string { return ":" }

// Semicolon is ";".
type Semicolon struct{}

// RawText returns ";".
func (Semicolon) RawText() string { return ";" }

// Ellipsis is "...".
type Ellipsis struct{}

// RawText returns "...".
func (Ellipsis) RawText() string { return "..." }

// literal builds the recognizer for a punctuation kind from its zero value.
func literal[W words.Word]() words.Literal[W] {
	var zero W
	return words.NewLiteral(zero.RawText(), func() W { return zero })
}

// Recognizers for each punctuation kind, at Highest priority.

func ExclamationRecognizer() words.Literal[Exclamation]   { return literal[Exclamation]() }
func QuestionMarkRecognizer() words.Literal[QuestionMark] { return literal[QuestionMark]() }
func PeriodRecognizer() words.Literal[Period]             { return literal[Period]() }
func CommaRecognizer() words.Literal[Comma]               { return literal[Comma]() }
func ColonRecognizer() words.Literal[Colon]               { return literal[Colon]() }
func SemicolonRecognizer() words.Literal[Semicolon]       { return literal[Semicolon]() }
func EllipsisRecognizer() words.Literal[Ellipsis]         { return literal[Ellipsis]() }

// Register adds every punctuation kind to p. Ellipsis is registered before
// Period so that "..." is not taken apart into three periods.
func Register(p *words.Parser) {
	words.Register[Ellipsis](p, EllipsisRecognizer())
	words.Register[Exclamation](p, ExclamationRecognizer())
	words.Register[QuestionMark](p, QuestionMarkRecognizer())
	words.Register[Period](p, PeriodRecognizer())
	words.Register[Comma](p, CommaRecognizer())
	words.Register[Colon](p, ColonRecognizer())
	words.Register[Semicolon](p, SemicolonRecognizer())
}

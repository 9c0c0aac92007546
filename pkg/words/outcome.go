package words

import "fmt"

// MatchKind tells which of the three outcomes a recognizer produced.
type MatchKind int

const (
	// KindNoMatch means the token was not recognized and is handed back unchanged.
	KindNoMatch MatchKind = iota
	// KindMatched means the whole token was consumed.
	KindMatched
	// KindPartial means the word was found inside the token, possibly with
	// leftover text before and after it.
	KindPartial
)

// String returns the name of the match kind.
func (k MatchKind) String() string {
	switch k {
	case KindNoMatch:
		return "no-match"
	case KindMatched:
		return "matched"
	case KindPartial:
		return "partial"
	default:
		return fmt.Sprintf("MatchKind(%d)", int(k))
	}
}

// Outcome is the result of offering a Token to a recognizer.
//
// For a partial match the leading text, the word's raw text and the trailing
// text concatenate back to the original token exactly.
type Outcome[W Word] struct {
	kind     MatchKind
	word     W
	leading  Token
	trailing Token
	rest     Token
}

// Matched returns an outcome for a word that consumed the whole token.
func Matched[W Word](w W) Outcome[W] {
	return Outcome[W]{kind: KindMatched, word: w}
}

// Partial returns an outcome for a word embedded in a larger token.
// Pass the zero Token for an empty leading or trailing side.
func Partial[W Word](leading Token, w W, trailing Token) Outcome[W] {
	return Outcome[W]{kind: KindPartial, word: w, leading: leading, trailing: trailing}
}

// NoMatch returns an outcome handing tok back unrecognized.
func NoMatch[W Word](tok Token) Outcome[W] {
	return Outcome[W]{kind: KindNoMatch, rest: tok}
}

// Kind reports which outcome this is.
func (o Outcome[W]) Kind() MatchKind {
	return o.kind
}

// Word returns the recognized word. It is the zero W for KindNoMatch.
func (o Outcome[W]) Word() W {
	return o.word
}

// Leading returns the text before the word of a partial match, if any.
func (o Outcome[W]) Leading() (Token, bool) {
	return o.leading, !o.leading.IsZero()
}

// Trailing returns the text after the word of a partial match, if any.
func (o Outcome[W]) Trailing() (Token, bool) {
	return o.trailing, !o.trailing.IsZero()
}

// Rest returns the unrecognized token of a KindNoMatch outcome.
func (o Outcome[W]) Rest() Token {
	return o.rest
}

// erase converts an outcome for a concrete word kind into one over Word.
func erase[W Word](o Outcome[W]) Outcome[Word] {
	switch o.kind {
	case KindMatched:
		return Matched[Word](o.word)
	case KindPartial:
		return Partial[Word](o.leading, o.word, o.trailing)
	default:
		return NoMatch[Word](o.rest)
	}
}

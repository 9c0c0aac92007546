package tokenizer

import (
	"unicode"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for running text.
// The tokenizer matches tokens in order of specificity:
// 1. Newlines (CRLF before LF to match longer sequence first)
// 2. Horizontal whitespace runs
// 3. Text runs (any non-whitespace character)
//
// Every character of the input belongs to exactly one token, so the
// tokenizer never stalls on unexpected input.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		// Newlines (CRLF before LF for greedy matching)
		tokenizer.StringMatcherFunc(TokenNewline, "\r\n"),
		tokenizer.StringMatcherFunc(TokenNewline, "\n"),

		SpaceMatcher(),
		TextMatcher(),
	)
}

// NewTokenizerWithStream creates a tokenizer using a pre-configured stream.
// This is used internally to support streaming from io.Reader.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// SpaceMatcher matches a run of whitespace that does not start a line
// terminator. A lone CR counts as whitespace.
func SpaceMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		return runMatcher(stream, TokenSpace, isSpace)
	}
}

// TextMatcher matches a run of non-whitespace characters.
//
// Grammar:
//
//	Text = Character+ ;
//	Character = <any character except whitespace> ;
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		return runMatcher(stream, TokenText, isText)
	}
}

func isSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

func isText(r rune) bool {
	return !unicode.IsSpace(r)
}

// runMatcher consumes the longest run of runes accepted by keep.
func runMatcher(stream tokenizer.Stream, kind string, keep func(rune) bool) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || !keep(r) {
			break
		}
		// Leave CR for the CRLF newline matcher
		if r == '\r' && len(value) > 0 {
			break
		}

		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(kind, value)
}

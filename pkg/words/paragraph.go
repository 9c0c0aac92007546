package words

import (
	"fmt"
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-words/internal/segmenter"
)

// Element is a token of a paragraph together with where it starts in the
// source text.
type Element struct {
	Token  Token
	Offset int
	Row    int
	Column int
}

// Position returns the element's start as an AST position.
func (e Element) Position() ast.Position {
	return ast.NewPosition(e.Offset, e.Row, e.Column)
}

// Paragraph is an ordered sequence of whitespace-delimited tokens.
type Paragraph struct {
	elements []Element
}

// NewParagraph builds a paragraph from tokens with no position information.
func NewParagraph(toks ...Token) Paragraph {
	elems := make([]Element, len(toks))
	for i, tok := range toks {
		elems[i] = Element{Token: tok}
	}
	return Paragraph{elements: elems}
}

// Len returns the number of tokens in the paragraph.
func (p Paragraph) Len() int {
	return len(p.elements)
}

// Elements returns a copy of the paragraph's elements in order.
func (p Paragraph) Elements() []Element {
	out := make([]Element, len(p.elements))
	copy(out, p.elements)
	return out
}

// Tokens returns the paragraph's tokens in order.
func (p Paragraph) Tokens() []Token {
	toks := make([]Token, len(p.elements))
	for i, e := range p.elements {
		toks[i] = e.Token
	}
	return toks
}

// OversizeMode specifies how SplitParagraphs handles over-long tokens.
type OversizeMode = segmenter.OversizeMode

const (
	// OversizeError returns an error on an over-long token (default).
	OversizeError = segmenter.OversizeError
	// OversizeWarn calls WarningCallback and drops the token.
	OversizeWarn = segmenter.OversizeWarn
	// OversizeSkip silently drops the token.
	OversizeSkip = segmenter.OversizeSkip
)

// ErrTokenTooLarge indicates a token exceeded SplitOptions.MaxTokenSize.
var ErrTokenTooLarge = segmenter.ErrSegmentTooLarge

// SplitOptions configures paragraph splitting.
type SplitOptions struct {
	// MaxTokenSize is the maximum allowed size of a token in bytes.
	// 0 means no limit.
	MaxTokenSize int

	// OnOversize specifies how to handle tokens longer than MaxTokenSize.
	// Default: OversizeError
	OnOversize OversizeMode

	// WarningCallback is invoked for warnings (when OnOversize is OversizeWarn).
	// If nil, warnings are silently ignored.
	WarningCallback func(line int, message string)
}

// DefaultSplitOptions returns the default splitting configuration.
func DefaultSplitOptions() SplitOptions {
	return SplitOptions{
		MaxTokenSize: 0,
		OnOversize:   OversizeError,
	}
}

// SplitParagraphs splits text into paragraphs of whitespace-delimited tokens.
// Paragraphs are separated by blank lines.
//
// Example:
//
//	paras, err := words.SplitParagraphs("Hello, world!\n\nBye.")
//	// paras[0].Tokens() -> ["Hello,", "world!"]
//	// paras[1].Tokens() -> ["Bye."]
func SplitParagraphs(text string) ([]Paragraph, error) {
	return SplitParagraphsWithOptions(text, DefaultSplitOptions())
}

// SplitParagraphsWithOptions is SplitParagraphs with custom options.
func SplitParagraphsWithOptions(text string, opts SplitOptions) ([]Paragraph, error) {
	return split(segmenter.NewSegmenterWithOptions(text, segmenterOptions(opts)))
}

// SplitParagraphsReader splits text read from r into paragraphs.
// The whole input is read before splitting; a read error is returned
// instead of a partial result.
func SplitParagraphsReader(r io.Reader) ([]Paragraph, error) {
	return SplitParagraphsReaderWithOptions(r, DefaultSplitOptions())
}

// SplitParagraphsReaderWithOptions is SplitParagraphsReader with custom options.
func SplitParagraphsReaderWithOptions(r io.Reader, opts SplitOptions) ([]Paragraph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading text: %w", err)
	}
	return SplitParagraphsWithOptions(string(data), opts)
}

func segmenterOptions(opts SplitOptions) segmenter.Options {
	return segmenter.Options{
		MaxSegmentSize:  opts.MaxTokenSize,
		OnOversize:      opts.OnOversize,
		WarningCallback: opts.WarningCallback,
	}
}

func split(s *segmenter.Segmenter) ([]Paragraph, error) {
	raw, err := s.Paragraphs()
	if err != nil {
		return nil, err
	}

	paragraphs := make([]Paragraph, 0, len(raw))
	for _, segs := range raw {
		elems := make([]Element, 0, len(segs))
		for _, seg := range segs {
			tok, err := NewToken(seg.Text)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", seg.Row, seg.Column, err)
			}
			elems = append(elems, Element{
				Token:  tok,
				Offset: seg.Offset,
				Row:    seg.Row,
				Column: seg.Column,
			})
		}
		paragraphs = append(paragraphs, Paragraph{elements: elems})
	}
	return paragraphs, nil
}

// ParseParagraph classifies every token of par and concatenates the results.
func (p *Parser) ParseParagraph(par Paragraph) Words {
	return p.ParseTokens(par.Tokens()...)
}

// Package segmenter groups whitespace-delimited text runs into paragraphs.
//
// A paragraph is a sequence of text runs. Paragraphs are separated by blank
// lines: two or more line terminators with nothing but whitespace between
// them.
package segmenter

import (
	"errors"
	"fmt"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-words/internal/tokenizer"
)

// OversizeMode specifies how to handle text runs longer than MaxSegmentSize.
type OversizeMode int

const (
	// OversizeError returns an error (default).
	OversizeError OversizeMode = iota
	// OversizeWarn reports a warning and drops the run.
	OversizeWarn
	// OversizeSkip silently drops the run.
	OversizeSkip
)

// ErrSegmentTooLarge indicates a text run exceeded MaxSegmentSize.
var ErrSegmentTooLarge = errors.New("segment exceeds maximum size")

// SegmentError is an error tied to a position in the input.
type SegmentError struct {
	// Row is the line of the offending segment (1-indexed).
	Row int
	// Column is the column of the offending segment (1-indexed).
	Column int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *SegmentError) Error() string {
	return fmt.Sprintf("segment error on line %d, column %d: %v", e.Row, e.Column, e.Err)
}

// Unwrap returns the underlying error.
func (e *SegmentError) Unwrap() error {
	return e.Err
}

// Options configures the segmenter behavior.
type Options struct {
	// MaxSegmentSize is the maximum allowed size of a text run in bytes. 0 means no limit.
	MaxSegmentSize int
	// OnOversize specifies how to handle oversized runs. Default: OversizeError
	OnOversize OversizeMode
	// WarningCallback is invoked for warnings when OnOversize is OversizeWarn
	WarningCallback func(line int, message string)
}

// DefaultOptions returns default segmenter options.
func DefaultOptions() Options {
	return Options{
		MaxSegmentSize: 0,
		OnOversize:     OversizeError,
	}
}

// Segment is one run of non-whitespace text and where it starts.
type Segment struct {
	Text   string
	Offset int
	Row    int
	Column int
}

// Paragraph is an ordered run of segments.
type Paragraph []Segment

// Segmenter reads tokens and groups text runs into paragraphs.
// It maintains a single token lookahead.
type Segmenter struct {
	tokenizer *shapetokenizer.Tokenizer
	current   *shapetokenizer.Token
	hasToken  bool
	opts      Options
}

// NewSegmenterWithOptions creates a segmenter for the given input string.
// Callers reading from an io.Reader load the input fully first.
func NewSegmenterWithOptions(input string, opts Options) *Segmenter {
	tok := tokenizer.NewTokenizerWithStream(shapetokenizer.NewStream(input))

	s := &Segmenter{
		tokenizer: &tok,
		opts:      opts,
	}
	s.advance() // Load first token
	return s
}

// Paragraphs reads the whole input and returns its paragraphs.
// Empty paragraphs are never returned.
func (s *Segmenter) Paragraphs() ([]Paragraph, error) {
	var paragraphs []Paragraph
	var current Paragraph
	newlines := 0

	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, current)
			current = nil
		}
	}

	for s.hasToken {
		token := s.peek()
		switch token.Kind() {
		case tokenizer.TokenNewline:
			newlines++
			if newlines >= 2 {
				flush()
			}
		case tokenizer.TokenText:
			newlines = 0
			seg, keep, err := s.segment(token)
			if err != nil {
				return nil, err
			}
			if keep {
				current = append(current, seg)
			}
		}
		// Spaces neither break nor continue a paragraph
		s.advance()
	}
	flush()

	return paragraphs, nil
}

// segment converts a text token, enforcing MaxSegmentSize.
// keep is false when an oversized run is dropped.
func (s *Segmenter) segment(token *shapetokenizer.Token) (seg Segment, keep bool, err error) {
	seg = Segment{
		Text:   token.ValueString(),
		Offset: token.Offset(),
		Row:    token.Row(),
		Column: token.Column(),
	}

	if s.opts.MaxSegmentSize > 0 && len(seg.Text) > s.opts.MaxSegmentSize {
		sizeErr := &SegmentError{
			Row:    seg.Row,
			Column: seg.Column,
			Err:    fmt.Errorf("%w (%d > %d)", ErrSegmentTooLarge, len(seg.Text), s.opts.MaxSegmentSize),
		}
		return Segment{}, false, s.handleOversize(seg.Row, sizeErr)
	}

	return seg, true, nil
}

// handleOversize handles an oversized run based on OnOversize mode.
// Returns nil if segmenting should continue, or the error if it should stop.
func (s *Segmenter) handleOversize(line int, err error) error {
	switch s.opts.OnOversize {
	case OversizeSkip:
		return nil
	case OversizeWarn:
		if s.opts.WarningCallback != nil {
			s.opts.WarningCallback(line, err.Error())
		}
		return nil
	default:
		return err
	}
}

// Helper methods

// peek returns current token without advancing.
func (s *Segmenter) peek() *shapetokenizer.Token {
	return s.current
}

// advance moves to next token.
func (s *Segmenter) advance() {
	token, ok := s.tokenizer.NextToken()
	if ok {
		s.current = token
		s.hasToken = true
	} else {
		s.hasToken = false
		s.current = nil
	}
}

package words

import "fmt"

// constructor is a recognizer with its word kind erased.
type constructor func(Token) Outcome[Word]

// Parser classifies tokens into words using registered recognizers.
//
// A Parser is built with Register calls and then used read-only. Parse and
// its variants are safe for concurrent use once registration is complete.
// Register must not run concurrently with anything else on the same Parser.
type Parser struct {
	buckets [len(priorities)][]constructor
}

// NewParser returns a Parser with no recognizers. Such a parser wraps every
// token in a single Normal word.
func NewParser() *Parser {
	return &Parser{}
}

// Register adds r to p. Recognizers are tried from Highest to Lowest
// priority and, within one priority, in registration order.
// It panics if r reports an invalid priority.
func Register[W Word](p *Parser, r Recognizer[W]) {
	prio := r.Priority()
	if !prio.Valid() {
		panic(fmt.Sprintf("words: recognizer %T has invalid priority %v", r, prio))
	}
	c := func(tok Token) Outcome[Word] {
		return erase(r.TryParse(tok))
	}
	i := prio.index()
	p.buckets[i] = append(p.buckets[i], c)
}

// Len returns the number of registered recognizers.
func (p *Parser) Len() int {
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

// Parse classifies tok. The raw texts of the returned words concatenate to
// tok's text, and the result is never empty.
func (p *Parser) Parse(tok Token) Words {
	return p.dispatch(tok, make(Words, 0, 4))
}

// ParseString validates text as a Token and classifies it.
func (p *Parser) ParseString(text string) (Words, error) {
	tok, err := NewToken(text)
	if err != nil {
		return nil, err
	}
	return p.Parse(tok), nil
}

// ParseTokens classifies each token independently and concatenates the
// results in input order.
func (p *Parser) ParseTokens(toks ...Token) Words {
	out := make(Words, 0, len(toks))
	for _, tok := range toks {
		out = p.dispatch(tok, out)
	}
	return out
}

// dispatch appends the words for tok to out.
//
// The first recognizer that matches, in priority order, decides the fragment.
// Leftovers of a partial match are strictly shorter than tok, so the
// recursion ends.
func (p *Parser) dispatch(tok Token, out Words) Words {
	for _, bucket := range p.buckets {
		for _, c := range bucket {
			o := c(tok)
			switch o.Kind() {
			case KindMatched:
				return append(out, o.Word())
			case KindPartial:
				if leading, ok := o.Leading(); ok {
					out = p.dispatch(leading, out)
				}
				out = append(out, o.Word())
				if trailing, ok := o.Trailing(); ok {
					out = p.dispatch(trailing, out)
				}
				return out
			}
		}
	}
	return append(out, NewNormal(tok.Text()))
}

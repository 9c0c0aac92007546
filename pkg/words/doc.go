// Package words classifies runs of non-whitespace text into typed words.
//
// The set of word kinds is not fixed. Callers register recognizers on a
// Parser, and the Parser offers every token to them in priority order. A
// recognizer may match a whole token, find its word embedded inside the
// token, or decline. Text around an embedded word is classified again by the
// same Parser, so a single recognizer for "!" is enough to break "dis!das"
// into "dis", "!" and "das". Text nobody recognizes becomes a Normal word.
//
// # Recognizers
//
// A recognizer for word kind W implements Recognizer[W]:
//
//	type Recognizer[W Word] interface {
//	    TryParse(tok Token) Outcome[W]
//	    Priority() Priority
//	    MultiToken() bool
//	}
//
// TryParse answers with one of three outcomes built by Matched, Partial or
// NoMatch. Register takes the word kind as an explicit type argument. Word
// kinds whose identity is a single fixed string use Literal, which handles
// the splitting and defaults to Highest priority.
//
// # Example usage:
//
//	p := words.NewParser()
//	words.Register[Bang](p, words.NewLiteral("!", func() Bang { return Bang{} }))
//
//	ws, err := p.ParseString("dis!das")
//	if err != nil {
//	    // handle error
//	}
//	// ws.Texts() -> ["dis", "!", "das"]
//
// # Thread Safety
//
// Register calls must complete before the Parser is shared. After that, all
// Parse methods are safe for concurrent use: dispatch only reads the
// registry and allocates its own results.
//
//	// Safe: Concurrent parsing after setup
//	go func() { p.ParseString(input1) }()
//	go func() { p.ParseString(input2) }()
//
// # Paragraphs
//
// SplitParagraphs performs the whitespace splitting that feeds a Parser and
// ParseDocument returns the classified words as a Shape AST.
package words

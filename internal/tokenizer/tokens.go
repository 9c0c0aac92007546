// Package tokenizer provides whitespace-aware text tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for running text.
//
// Note: The tokenizer only separates text runs from the whitespace between
// them. Classifying a text run into words is done by the words package.
const (
	// Separator tokens
	TokenNewline = "Newline" // \n or \r\n (line terminator)
	TokenSpace   = "Space"   // run of whitespace other than line terminators

	// Content token
	TokenText = "Text" // run of non-whitespace characters
)

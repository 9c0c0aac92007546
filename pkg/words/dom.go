package words

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/ast"
)

// ParseParagraphNode classifies par and returns its words as an
// *ast.ArrayDataNode of *ast.LiteralNode string values.
//
// Each literal is positioned at the first character of its word: the
// element's offset and column advanced by the characters of the words before
// it in the same token.
func (p *Parser) ParseParagraphNode(par Paragraph) *ast.ArrayDataNode {
	nodes := make([]ast.SchemaNode, 0, par.Len())
	for _, e := range par.elements {
		for _, wp := range placeWords(e, p.Parse(e.Token)) {
			nodes = append(nodes, ast.NewLiteralNode(wp.word.RawText(), wp.position()))
		}
	}
	return ast.NewArrayDataNode(nodes, firstPosition(par))
}

// ParseDocument splits text into paragraphs and classifies each one.
//
// Returns an ast.ArrayDataNode representing the document:
//   - *ast.ArrayDataNode for the document (array of paragraphs)
//   - Each paragraph is an *ast.ArrayDataNode of words
//   - Each word is an *ast.LiteralNode containing its raw text
//
// Example:
//
//	p := words.NewParser()
//	punctuation.Register(p)
//	node, err := p.ParseDocument("Hi there!\n\nBye.")
//	paragraphs := node.(*ast.ArrayDataNode).Elements()
func (p *Parser) ParseDocument(text string) (ast.SchemaNode, error) {
	paragraphs, err := SplitParagraphs(text)
	if err != nil {
		return nil, err
	}
	return p.documentNode(paragraphs), nil
}

// ParseDocumentReader is ParseDocument reading from r.
func (p *Parser) ParseDocumentReader(r io.Reader) (ast.SchemaNode, error) {
	paragraphs, err := SplitParagraphsReader(r)
	if err != nil {
		return nil, err
	}
	return p.documentNode(paragraphs), nil
}

func (p *Parser) documentNode(paragraphs []Paragraph) *ast.ArrayDataNode {
	nodes := make([]ast.SchemaNode, len(paragraphs))
	for i, par := range paragraphs {
		nodes[i] = p.ParseParagraphNode(par)
	}
	return ast.NewArrayDataNode(nodes, ast.ZeroPosition())
}

// NodeTexts returns the raw texts held by a paragraph node built by
// ParseParagraphNode.
func NodeTexts(node ast.SchemaNode) ([]string, error) {
	arrayNode, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected *ast.ArrayDataNode, got %T", node)
	}

	elements := arrayNode.Elements()
	texts := make([]string, 0, len(elements))
	for i, elem := range elements {
		literalNode, ok := elem.(*ast.LiteralNode)
		if !ok {
			return nil, fmt.Errorf("word %d: expected *ast.LiteralNode, got %T", i, elem)
		}
		value, ok := literalNode.Value().(string)
		if !ok {
			return nil, fmt.Errorf("word %d: expected string value, got %T", i, literalNode.Value())
		}
		texts = append(texts, value)
	}
	return texts, nil
}

// placedWord is a word and the source location of its first character.
type placedWord struct {
	word   Word
	offset int
	row    int
	column int
}

func (w placedWord) position() ast.Position {
	return ast.NewPosition(w.offset, w.row, w.column)
}

// placeWords locates each word of ws inside e. The words' raw texts
// concatenate to e's token, so each one starts where the previous ended.
func placeWords(e Element, ws Words) []placedWord {
	placed := make([]placedWord, len(ws))
	offset, column := e.Offset, e.Column
	for i, w := range ws {
		placed[i] = placedWord{word: w, offset: offset, row: e.Row, column: column}
		n := utf8.RuneCountInString(w.RawText())
		offset += n
		column += n
	}
	return placed
}

func firstPosition(par Paragraph) ast.Position {
	if par.Len() == 0 {
		return ast.ZeroPosition()
	}
	return par.elements[0].Position()
}

// Package treesitter wraps the upstream JavaScript parser the translator
// treats as a black box: tree-sitter's javascript grammar via go-tree-sitter.
// Nothing in this package interprets JavaScript semantics; it only produces
// the concrete syntax tree internal/translator walks.
package treesitter

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	"github.com/surma/jsxx-go/internal/diag"
)

// Parser parses ECMAScript-2022-era source text into a tree-sitter CST.
// A Parser is not safe for concurrent use; translating multiple modules in
// parallel means instantiating one Parser per goroutine, matching the
// translator's own single-threaded contract.
type Parser struct {
	ts *tree_sitter.Parser
}

// New creates a Parser bound to the JavaScript grammar.
func New() (*Parser, error) {
	ts := tree_sitter.NewParser()
	lang := tree_sitter.NewLanguage(tree_sitter_javascript.Language())
	if err := ts.SetLanguage(lang); err != nil {
		ts.Close()
		return nil, fmt.Errorf("treesitter: set javascript language: %w", err)
	}
	return &Parser{ts: ts}, nil
}

// ParseModule parses source text and returns the module's CST.
// The caller owns the returned tree and must call tree.Close() when done.
func (p *Parser) ParseModule(source []byte) (*tree_sitter.Tree, error) {
	tree := p.ts.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("%w: treesitter: parser returned no tree", diag.ErrParse)
	}
	return tree, nil
}

// Close releases the underlying tree-sitter parser resources.
func (p *Parser) Close() {
	if p == nil || p.ts == nil {
		return
	}
	p.ts.Close()
}

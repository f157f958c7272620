package translator

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// text returns a node's exact source slice.
func text(n *tree_sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(src)
}

// namedChildren returns a node's named children in order, skipping
// punctuation and keyword tokens.
func namedChildren(n *tree_sitter.Node) []*tree_sitter.Node {
	if n == nil {
		return nil
	}
	count := n.NamedChildCount()
	out := make([]*tree_sitter.Node, 0, count)
	for i := uint(0); i < count; i++ {
		out = append(out, n.NamedChild(i))
	}
	return out
}

// allChildren returns every child (named and anonymous) in order.
func allChildren(n *tree_sitter.Node) []*tree_sitter.Node {
	if n == nil {
		return nil
	}
	count := n.ChildCount()
	out := make([]*tree_sitter.Node, 0, count)
	for i := uint(0); i < count; i++ {
		out = append(out, n.Child(i))
	}
	return out
}

// childWithText returns the first direct child (named or not) whose source
// text exactly matches one of wants. Used to locate operator tokens that
// tree-sitter-javascript does not expose as a named field.
func childWithText(n *tree_sitter.Node, src []byte, wants ...string) *tree_sitter.Node {
	for _, c := range allChildren(n) {
		t := text(c, src)
		for _, w := range wants {
			if t == w {
				return c
			}
		}
	}
	return nil
}

// hasChildOfKind reports whether n has a direct child of the given kind.
func hasChildOfKind(n *tree_sitter.Node, kind string) bool {
	for _, c := range allChildren(n) {
		if c.Kind() == kind {
			return true
		}
	}
	return false
}

// unwrapExpressionStatement returns the bare expression inside an
// expression_statement node (the grammar wraps a for-statement's
// initializer/condition clauses this way, semicolon included). Any other
// node kind is returned unchanged.
func unwrapExpressionStatement(n *tree_sitter.Node) *tree_sitter.Node {
	if n == nil || n.Kind() != "expression_statement" {
		return n
	}
	return firstNamedNonComment(n)
}

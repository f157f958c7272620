package translator

import (
	"fmt"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/surma/jsxx-go/internal/diag"
)

// lambdaSignature is the fixed parameter list every lowered function takes:
// a function's parameter list is never translated to a C++ parameter list.
// This constant documents that contract; lowering functions interpolate it
// verbatim.
const lambdaSignature = "JSValue thisArg, std::vector<JSValue>& args"

// paramIdentifiers normalizes a formal_parameters node (or a bare
// identifier, for an unparenthesized single-argument arrow) into its
// ordered parameter nodes.
func paramIdentifiers(paramsNode *tree_sitter.Node) []*tree_sitter.Node {
	if paramsNode == nil {
		return nil
	}
	if paramsNode.Kind() == "identifier" {
		return []*tree_sitter.Node{paramsNode}
	}
	var out []*tree_sitter.Node
	for _, c := range namedChildren(paramsNode) {
		if c.Kind() == "comment" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// translateParams lowers a parameter list to a one-assignment-per-param
// prelude binding each name off the args vector. Only plain identifier
// patterns are supported; anything else (destructuring, defaults, rest)
// fails unsupported-construct.
func (t *Translator) translateParams(paramsNode *tree_sitter.Node, src []byte) (string, error) {
	idents := paramIdentifiers(paramsNode)
	lines := make([]string, 0, len(idents))
	for idx, p := range idents {
		if p.Kind() != "identifier" {
			return "", fmt.Errorf("%w: only plain identifier parameters are supported", diag.ErrUnsupportedConstruct)
		}
		lines = append(lines, fmt.Sprintf("JSValue %s = args[%d];", text(p, src), idx))
	}
	return strings.Join(lines, "\n"), nil
}

// translateFunctionBlockBody lowers a statement_block's direct statements,
// one per line, without the enclosing braces (the caller supplies those as
// part of the lambda template).
func (t *Translator) translateFunctionBlockBody(n *tree_sitter.Node, src []byte) (string, error) {
	var stmts []string
	for _, c := range namedChildren(n) {
		if c.Kind() == "comment" {
			continue
		}
		s, err := t.translateStatement(c, src)
		if err != nil {
			return "", err
		}
		stmts = append(stmts, s+";")
	}
	return strings.Join(stmts, "\n"), nil
}

// translateFunctionLike lowers a function_declaration, function_expression,
// generator_function(_declaration), or object method_definition node to its
// lambda expression, handling both the ordinary-function and generator
// forms.
func (t *Translator) translateFunctionLike(n *tree_sitter.Node, src []byte, isGenerator bool) (string, error) {
	paramsNode := n.ChildByFieldName("parameters")
	bodyNode := n.ChildByFieldName("body")
	if bodyNode == nil {
		return "", fmt.Errorf("%w: function missing a body", diag.ErrMalformedAST)
	}
	if bodyNode.Kind() != "statement_block" {
		return "", fmt.Errorf("%w: function body must be a block", diag.ErrMalformedAST)
	}

	paramBindings, err := t.translateParams(paramsNode, src)
	if err != nil {
		return "", err
	}

	if isGenerator {
		bodyStr, err := t.withGenerator(func() (string, error) {
			return t.translateFunctionBlockBody(bodyNode, src)
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			"JSValue::new_generator_function([=](%s) mutable -> JSGeneratorAdapter {\n%s\n%s\nco_return;\n})",
			lambdaSignature, paramBindings, bodyStr,
		), nil
	}

	bodyStr, err := t.translateFunctionBlockBody(bodyNode, src)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"JSValue::new_function([=](%s) mutable {\n%s\n%s\nreturn JSValue::undefined();\n})",
		lambdaSignature, paramBindings, bodyStr,
	), nil
}

// translateArrow lowers an arrow function. Expression-bodied arrows emit a
// single return statement; block-bodied arrows behave like an ordinary
// function expression (including the guaranteed undefined trailing return).
// Arrow functions are never generators in ECMAScript.
func (t *Translator) translateArrow(n *tree_sitter.Node, src []byte) (string, error) {
	paramsNode := n.ChildByFieldName("parameters")
	if paramsNode == nil {
		paramsNode = n.ChildByFieldName("parameter")
	}
	bodyNode := n.ChildByFieldName("body")
	if bodyNode == nil {
		return "", fmt.Errorf("%w: arrow function missing a body", diag.ErrMalformedAST)
	}

	paramBindings, err := t.translateParams(paramsNode, src)
	if err != nil {
		return "", err
	}

	var bodyStr string
	if bodyNode.Kind() == "statement_block" {
		stmts, err := t.translateFunctionBlockBody(bodyNode, src)
		if err != nil {
			return "", err
		}
		bodyStr = stmts + "\nreturn JSValue::undefined();"
	} else {
		exprStr, err := t.translateExpr(bodyNode, src)
		if err != nil {
			return "", err
		}
		bodyStr = fmt.Sprintf("return %s;", exprStr)
	}

	return fmt.Sprintf(
		"JSValue::new_function([=](%s) mutable {\n%s\n%s\n})",
		lambdaSignature, paramBindings, bodyStr,
	), nil
}

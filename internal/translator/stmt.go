package translator

import (
	"fmt"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/surma/jsxx-go/internal/diag"
)

// translateStatement dispatches one statement node to its lowering rule.
// Any kind not handled here fails with unsupported-construct naming the
// node kind.
func (t *Translator) translateStatement(n *tree_sitter.Node, src []byte) (string, error) {
	switch n.Kind() {
	case "expression_statement":
		return t.translateExpressionStatement(n, src)
	case "lexical_declaration", "variable_declaration":
		return t.translateVarDecl(n, src)
	case "function_declaration":
		return t.translateFunctionDeclaration(n, src, false)
	case "generator_function_declaration":
		return t.translateFunctionDeclaration(n, src, true)
	case "statement_block":
		return t.translateBlock(n, src)
	case "return_statement":
		return t.translateReturn(n, src)
	case "if_statement":
		return t.translateIf(n, src)
	case "for_statement":
		return t.translateFor(n, src)
	case "for_in_statement":
		return t.translateForOf(n, src)
	case "while_statement":
		return t.translateWhile(n, src)
	case "break_statement":
		return t.translateBreak(n, src)
	case "throw_statement":
		return t.translateThrow(n, src)
	case "try_statement":
		return t.translateTry(n, src)
	case "empty_statement":
		return "", nil
	default:
		return "", fmt.Errorf("%w: statement kind %q", diag.ErrUnsupportedConstruct, n.Kind())
	}
}

func firstNamedNonComment(n *tree_sitter.Node) *tree_sitter.Node {
	for _, c := range namedChildren(n) {
		if c.Kind() != "comment" {
			return c
		}
	}
	return nil
}

func (t *Translator) translateExpressionStatement(n *tree_sitter.Node, src []byte) (string, error) {
	inner := firstNamedNonComment(n)
	if inner == nil {
		return "", nil
	}
	expr, err := t.translateExpr(inner, src)
	if err != nil {
		return "", err
	}
	return expr, nil
}

func (t *Translator) translateVarDecl(n *tree_sitter.Node, src []byte) (string, error) {
	keyword := text(n.Child(0), src)
	if n.Kind() == "variable_declaration" || keyword == "var" {
		return "", fmt.Errorf("%w: `var` declarations are not supported, only `let`", diag.ErrUnsupportedConstruct)
	}
	if keyword == "const" {
		return "", fmt.Errorf("%w: `const` declarations are not supported, only `let`", diag.ErrUnsupportedConstruct)
	}

	declarators := make([]*tree_sitter.Node, 0, 1)
	for _, c := range namedChildren(n) {
		if c.Kind() == "variable_declarator" {
			declarators = append(declarators, c)
		}
	}
	if len(declarators) != 1 {
		return "", fmt.Errorf("%w: only a single declarator per `let` statement is supported", diag.ErrUnsupportedConstruct)
	}
	return t.translateVarDeclarator(declarators[0], src)
}

func (t *Translator) translateVarDeclarator(n *tree_sitter.Node, src []byte) (string, error) {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil || nameNode.Kind() != "identifier" {
		return "", fmt.Errorf("%w: only plain identifier bindings are supported", diag.ErrUnsupportedConstruct)
	}
	name := text(nameNode, src)

	valueNode := n.ChildByFieldName("value")
	if valueNode == nil {
		return fmt.Sprintf("JSValue %s", name), nil
	}
	initExpr, err := t.translateExpr(valueNode, src)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("JSValue %s = *(%s).value", name, initExpr), nil
}

func (t *Translator) translateFunctionDeclaration(n *tree_sitter.Node, src []byte, isGenerator bool) (string, error) {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return "", fmt.Errorf("%w: function declaration without a name", diag.ErrMalformedAST)
	}
	fnExpr, err := t.translateFunctionLike(n, src, isGenerator)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("JSValue %s = %s;", text(nameNode, src), fnExpr), nil
}

func (t *Translator) translateBlock(n *tree_sitter.Node, src []byte) (string, error) {
	var stmts []string
	for _, c := range namedChildren(n) {
		if c.Kind() == "comment" {
			continue
		}
		s, err := t.translateStatement(c, src)
		if err != nil {
			return "", err
		}
		stmts = append(stmts, s)
	}
	return "{ " + strings.Join(stmts, ";\n") + " }", nil
}

func (t *Translator) translateReturn(n *tree_sitter.Node, src []byte) (string, error) {
	kw := "return"
	if t.isGenerator {
		kw = "co_return"
	}
	arg := firstNamedNonComment(n)
	if arg == nil {
		return kw, nil
	}
	val, err := t.translateExpr(arg, src)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s", kw, val), nil
}

func (t *Translator) translateIf(n *tree_sitter.Node, src []byte) (string, error) {
	cond := n.ChildByFieldName("condition")
	cons := n.ChildByFieldName("consequence")
	alt := n.ChildByFieldName("alternative")
	if cond == nil || cons == nil {
		return "", fmt.Errorf("%w: if statement missing condition or consequence", diag.ErrMalformedAST)
	}
	// The grammar's condition node is the parenthesized_expression itself;
	// lower the expression inside it so the parens are not doubled.
	if cond.Kind() == "parenthesized_expression" {
		cond = firstNamedNonComment(cond)
	}
	condExpr, err := t.translateExpr(cond, src)
	if err != nil {
		return "", err
	}
	consStmt, err := t.translateStatement(cons, src)
	if err != nil {
		return "", err
	}
	altStmt := ""
	if alt != nil {
		altBody := firstNamedNonComment(alt)
		if altBody == nil {
			return "", fmt.Errorf("%w: else clause missing its statement", diag.ErrMalformedAST)
		}
		altStmt, err = t.translateStatement(altBody, src)
		if err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("if ((%s).coerce_to_bool()) { %s; } else { %s; }", condExpr, consStmt, altStmt), nil
}

func (t *Translator) translateFor(n *tree_sitter.Node, src []byte) (string, error) {
	init := n.ChildByFieldName("initializer")
	cond := n.ChildByFieldName("condition")
	update := n.ChildByFieldName("increment")
	body := n.ChildByFieldName("body")
	if body == nil {
		return "", fmt.Errorf("%w: for statement missing body", diag.ErrMalformedAST)
	}

	initStr := ""
	if init != nil {
		switch init.Kind() {
		case "lexical_declaration", "variable_declaration":
			s, err := t.translateVarDecl(init, src)
			if err != nil {
				return "", err
			}
			initStr = s
		default:
			initExpr := unwrapExpressionStatement(init)
			if initExpr == nil {
				return "", fmt.Errorf("%w: for statement initializer missing its expression", diag.ErrMalformedAST)
			}
			s, err := t.translateExpr(initExpr, src)
			if err != nil {
				return "", err
			}
			initStr = s
		}
	}

	condStr := ""
	if cond != nil {
		condExpr := unwrapExpressionStatement(cond)
		if condExpr == nil {
			return "", fmt.Errorf("%w: for statement condition missing its expression", diag.ErrMalformedAST)
		}
		s, err := t.translateExpr(condExpr, src)
		if err != nil {
			return "", err
		}
		condStr = fmt.Sprintf("(%s).coerce_to_bool()", s)
	}

	updateStr := ""
	if update != nil {
		s, err := t.translateExpr(update, src)
		if err != nil {
			return "", err
		}
		updateStr = s
	}

	bodyStr, err := t.translateStatement(body, src)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("for (%s; %s; %s) { %s; }", initStr, condStr, updateStr, bodyStr), nil
}

func (t *Translator) translateForOf(n *tree_sitter.Node, src []byte) (string, error) {
	if childWithText(n, src, "in") != nil && childWithText(n, src, "of") == nil {
		return "", fmt.Errorf("%w: `for...in` is not supported, only `for...of`", diag.ErrUnsupportedConstruct)
	}

	kind := n.ChildByFieldName("kind")
	left := n.ChildByFieldName("left")
	right := n.ChildByFieldName("right")
	body := n.ChildByFieldName("body")
	if left == nil || right == nil || body == nil {
		return "", fmt.Errorf("%w: for...of statement missing a clause", diag.ErrMalformedAST)
	}
	if kind == nil || text(kind, src) != "let" {
		return "", fmt.Errorf("%w: for...of requires a `let` declarator", diag.ErrUnsupportedConstruct)
	}
	if left.Kind() != "identifier" {
		return "", fmt.Errorf("%w: only plain identifier bindings are supported", diag.ErrUnsupportedConstruct)
	}
	declarator := fmt.Sprintf("JSValue %s", text(left, src))

	rightExpr, err := t.translateExpr(right, src)
	if err != nil {
		return "", err
	}
	bodyStr, err := t.translateStatement(body, src)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("for (%s : %s) { %s; }", declarator, rightExpr, bodyStr), nil
}

func (t *Translator) translateWhile(n *tree_sitter.Node, src []byte) (string, error) {
	cond := n.ChildByFieldName("condition")
	body := n.ChildByFieldName("body")
	if cond == nil || body == nil {
		return "", fmt.Errorf("%w: while statement missing condition or body", diag.ErrMalformedAST)
	}
	if cond.Kind() == "parenthesized_expression" {
		cond = firstNamedNonComment(cond)
	}
	condExpr, err := t.translateExpr(cond, src)
	if err != nil {
		return "", err
	}
	bodyStr, err := t.translateStatement(body, src)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("while ((%s).coerce_to_bool()) { %s; }", condExpr, bodyStr), nil
}

func (t *Translator) translateBreak(n *tree_sitter.Node, src []byte) (string, error) {
	if firstNamedNonComment(n) != nil {
		return "", fmt.Errorf("%w: labeled break is not supported", diag.ErrUnsupportedConstruct)
	}
	return "break", nil
}

func (t *Translator) translateThrow(n *tree_sitter.Node, src []byte) (string, error) {
	if !t.FeatureExceptions {
		return "", fmt.Errorf("%w: throw requires exceptions to be enabled", diag.ErrFeatureGateViolation)
	}
	arg := firstNamedNonComment(n)
	if arg == nil {
		return "", fmt.Errorf("%w: throw statement missing its argument", diag.ErrMalformedAST)
	}
	val, err := t.translateExpr(arg, src)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("throw (%s)", val), nil
}

func (t *Translator) translateTry(n *tree_sitter.Node, src []byte) (string, error) {
	if !t.FeatureExceptions {
		return "", fmt.Errorf("%w: try/catch requires exceptions to be enabled", diag.ErrFeatureGateViolation)
	}
	body := n.ChildByFieldName("body")
	handler := n.ChildByFieldName("handler")
	finalizer := n.ChildByFieldName("finalizer")
	if finalizer != nil {
		return "", fmt.Errorf("%w: `finally` clauses are not supported", diag.ErrUnsupportedConstruct)
	}
	if body == nil || handler == nil {
		return "", fmt.Errorf("%w: try statement requires a catch clause", diag.ErrUnsupportedConstruct)
	}
	bodyStr, err := t.translateBlock(body, src)
	if err != nil {
		return "", err
	}

	param := handler.ChildByFieldName("parameter")
	if param == nil {
		return "", fmt.Errorf("%w: catch without a binding is not supported", diag.ErrUnsupportedConstruct)
	}
	if param.Kind() != "identifier" {
		return "", fmt.Errorf("%w: catch binding must be a plain identifier", diag.ErrUnsupportedConstruct)
	}
	handlerBody := handler.ChildByFieldName("body")
	if handlerBody == nil {
		return "", fmt.Errorf("%w: catch clause without a body", diag.ErrMalformedAST)
	}
	handlerBodyStr, err := t.translateBlock(handlerBody, src)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("try %s catch (JSValue %s) %s", bodyStr, text(param, src), handlerBodyStr), nil
}

package translator

import (
	"fmt"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/surma/jsxx-go/internal/diag"
)

// binaryOperatorTokens is the set of binary operators this translator
// lowers. === and !== fold onto == and != respectively — observably
// incorrect, kept intentionally, see DESIGN.md.
var binaryOperatorTokens = []string{
	"+", "*", "%", ">", ">=", "<", "<=", "==", "!=", "===", "!==", "&&", "||",
}

// translateExpr dispatches one expression node to its lowering rule.
func (t *Translator) translateExpr(n *tree_sitter.Node, src []byte) (string, error) {
	if n == nil {
		return "", fmt.Errorf("%w: nil expression node", diag.ErrMalformedAST)
	}
	switch n.Kind() {
	case "identifier":
		return text(n, src), nil
	case "number":
		return translateNumber(n, src)
	case "string":
		return translateString(n, src)
	case "true":
		return "JSValue{true}", nil
	case "false":
		return "JSValue{false}", nil
	case "array":
		return t.translateArray(n, src)
	case "object":
		return t.translateObject(n, src)
	case "member_expression":
		return t.translateMemberExpr(n, src)
	case "subscript_expression":
		return t.translateSubscriptExpr(n, src)
	case "call_expression":
		return t.translateCall(n, src)
	case "arrow_function":
		return t.translateArrow(n, src)
	case "function_expression":
		return t.translateFunctionLike(n, src, false)
	case "generator_function":
		return t.translateFunctionLike(n, src, true)
	case "this":
		return "thisArg", nil
	case "parenthesized_expression":
		return t.translateParen(n, src)
	case "binary_expression":
		return t.translateBinary(n, src)
	case "ternary_expression":
		return t.translateTernary(n, src)
	case "assignment_expression":
		return t.translateAssignment(n, src)
	case "update_expression":
		return t.translateUpdate(n, src)
	case "yield_expression":
		return t.translateYield(n, src)
	case "template_string":
		return t.translateTemplate(n, src)
	case "tagged_template_expression":
		return t.translateTaggedTemplate(n, src)
	default:
		return "", fmt.Errorf("%w: expression kind %q", diag.ErrUnsupportedConstruct, n.Kind())
	}
}

func translateNumber(n *tree_sitter.Node, src []byte) (string, error) {
	raw := text(n, src)
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0o") || strings.HasPrefix(lower, "0b") {
		return "", fmt.Errorf("%w: hex/octal/binary numeric literals are not supported", diag.ErrUnsupportedConstruct)
	}
	if strings.HasSuffix(lower, "n") {
		return "", fmt.Errorf("%w: BigInt literals are not supported", diag.ErrUnsupportedConstruct)
	}
	clean := strings.ReplaceAll(raw, "_", "")
	return fmt.Sprintf("JSValue{static_cast<double>(%s)}", clean), nil
}

func translateString(n *tree_sitter.Node, src []byte) (string, error) {
	raw := text(n, src)
	if len(raw) < 2 {
		return "", fmt.Errorf("%w: malformed string literal", diag.ErrMalformedAST)
	}
	return fmt.Sprintf(`JSValue{"%s"}`, raw[1:len(raw)-1]), nil
}

func (t *Translator) translateArray(n *tree_sitter.Node, src []byte) (string, error) {
	var elems []string
	expectingValue := true
	for _, c := range allChildren(n) {
		switch c.Kind() {
		case "[", "]", "comment":
			continue
		case ",":
			if expectingValue {
				return "", fmt.Errorf("%w: elided array elements are not supported", diag.ErrUnsupportedConstruct)
			}
			expectingValue = true
		case "spread_element":
			return "", fmt.Errorf("%w: array spread is not supported", diag.ErrUnsupportedConstruct)
		default:
			if !c.IsNamed() {
				continue
			}
			v, err := t.translateExpr(c, src)
			if err != nil {
				return "", err
			}
			elems = append(elems, v)
			expectingValue = false
		}
	}
	return fmt.Sprintf("JSValue::new_array({%s})", strings.Join(elems, ", ")), nil
}

// propKeyExpr lowers an object-literal (or method) key node to its emitted
// JSValue expression, and also returns a textual dedup key used to merge a
// getter/setter pair declared for the same property.
func (t *Translator) propKeyExpr(keyNode *tree_sitter.Node, src []byte) (expr string, dedupKey string, err error) {
	switch keyNode.Kind() {
	case "property_identifier":
		name := text(keyNode, src)
		return fmt.Sprintf(`JSValue{"%s"}`, name), name, nil
	case "string":
		s, err := translateString(keyNode, src)
		if err != nil {
			return "", "", err
		}
		return s, text(keyNode, src), nil
	case "computed_property_name":
		inner := firstNamedNonComment(keyNode)
		if inner == nil {
			return "", "", fmt.Errorf("%w: computed property name missing its expression", diag.ErrMalformedAST)
		}
		exprStr, err := t.translateExpr(inner, src)
		if err != nil {
			return "", "", err
		}
		return exprStr, exprStr, nil
	default:
		return "", "", fmt.Errorf("%w: object key kind %q", diag.ErrUnsupportedConstruct, keyNode.Kind())
	}
}

type accessorPair struct {
	keyExpr string
	getter  string
	setter  string
}

func (t *Translator) translateObject(n *tree_sitter.Node, src []byte) (string, error) {
	var entries []string
	accessors := map[string]*accessorPair{}
	// accessorOrder tracks the insertion index (into entries) reserved for
	// each accessor key the first time it is seen, so a getter/setter pair
	// declared out of order still lands in source order.
	accessorOrder := map[string]int{}

	for _, c := range namedChildren(n) {
		switch c.Kind() {
		case "comment":
			continue
		case "spread_element":
			return "", fmt.Errorf("%w: object spread is not supported", diag.ErrUnsupportedConstruct)
		case "shorthand_property_identifier":
			name := text(c, src)
			entries = append(entries, fmt.Sprintf(`{JSValue{"%s"}, %s}`, name, name))
		case "pair":
			keyNode := c.ChildByFieldName("key")
			valueNode := c.ChildByFieldName("value")
			if keyNode == nil || valueNode == nil {
				return "", fmt.Errorf("%w: object property missing a key or value", diag.ErrMalformedAST)
			}
			keyExpr, _, err := t.propKeyExpr(keyNode, src)
			if err != nil {
				return "", err
			}
			valExpr, err := t.translateExpr(valueNode, src)
			if err != nil {
				return "", err
			}
			entries = append(entries, fmt.Sprintf("{%s, %s}", keyExpr, valExpr))
		case "method_definition":
			nameNode := c.ChildByFieldName("name")
			bodyNode := c.ChildByFieldName("body")
			if nameNode == nil || bodyNode == nil {
				return "", fmt.Errorf("%w: method missing a name or body", diag.ErrMalformedAST)
			}
			keyExpr, dedupKey, err := t.propKeyExpr(nameNode, src)
			if err != nil {
				return "", err
			}

			first := c.Child(0)
			isGetter := first != nil && first != nameNode && text(first, src) == "get"
			isSetter := first != nil && first != nameNode && text(first, src) == "set"

			if isGetter || isSetter {
				fnExpr, err := t.translateFunctionLike(c, src, false)
				if err != nil {
					return "", err
				}
				acc, ok := accessors[dedupKey]
				if !ok {
					acc = &accessorPair{keyExpr: keyExpr, getter: "JSValue::undefined()", setter: "JSValue::undefined()"}
					accessors[dedupKey] = acc
					accessorOrder[dedupKey] = len(entries)
					entries = append(entries, "") // placeholder, filled below
				}
				if isGetter {
					acc.getter = fnExpr
				} else {
					acc.setter = fnExpr
				}
				continue
			}

			isGenerator := hasChildOfKind(c, "*")
			fnExpr, err := t.translateFunctionLike(c, src, isGenerator)
			if err != nil {
				return "", err
			}
			entries = append(entries, fmt.Sprintf("{%s, %s}", keyExpr, fnExpr))
		default:
			return "", fmt.Errorf("%w: object property kind %q", diag.ErrUnsupportedConstruct, c.Kind())
		}
	}

	for key, idx := range accessorOrder {
		acc := accessors[key]
		entries[idx] = fmt.Sprintf("{%s, JSValueBinding::with_getter_setter(%s, %s)}", acc.keyExpr, acc.getter, acc.setter)
	}

	return fmt.Sprintf("JSValue::new_object({ %s })", strings.Join(entries, ", ")), nil
}

func (t *Translator) translateMemberExpr(n *tree_sitter.Node, src []byte) (string, error) {
	objNode := n.ChildByFieldName("object")
	propNode := n.ChildByFieldName("property")
	if objNode == nil || propNode == nil {
		return "", fmt.Errorf("%w: member expression missing object or property", diag.ErrMalformedAST)
	}
	objExpr, err := t.translateExpr(objNode, src)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`%s[JSValue{"%s"}]`, objExpr, text(propNode, src)), nil
}

func (t *Translator) translateSubscriptExpr(n *tree_sitter.Node, src []byte) (string, error) {
	objNode := n.ChildByFieldName("object")
	idxNode := n.ChildByFieldName("index")
	if objNode == nil || idxNode == nil {
		return "", fmt.Errorf("%w: subscript expression missing object or index", diag.ErrMalformedAST)
	}
	objExpr, err := t.translateExpr(objNode, src)
	if err != nil {
		return "", err
	}
	idxExpr, err := t.translateExpr(idxNode, src)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s[%s]", objExpr, idxExpr), nil
}

func (t *Translator) translateCall(n *tree_sitter.Node, src []byte) (string, error) {
	calleeNode := n.ChildByFieldName("function")
	argsNode := n.ChildByFieldName("arguments")
	if calleeNode == nil || argsNode == nil {
		return "", fmt.Errorf("%w: call expression missing callee or arguments", diag.ErrMalformedAST)
	}
	// A tagged template (tag`...`) parses as a call whose arguments node is
	// the template_string itself.
	if argsNode.Kind() == "template_string" {
		return t.translateTaggedTemplate(n, src)
	}
	calleeExpr, err := t.translateExpr(calleeNode, src)
	if err != nil {
		return "", err
	}
	var args []string
	for _, a := range namedChildren(argsNode) {
		if a.Kind() == "comment" {
			continue
		}
		if a.Kind() == "spread_element" {
			return "", fmt.Errorf("%w: spread call arguments are not supported", diag.ErrUnsupportedConstruct)
		}
		argExpr, err := t.translateExpr(a, src)
		if err != nil {
			return "", err
		}
		args = append(args, fmt.Sprintf("*(%s).value", argExpr))
	}
	return fmt.Sprintf("%s({%s})", calleeExpr, strings.Join(args, ", ")), nil
}

func (t *Translator) translateParen(n *tree_sitter.Node, src []byte) (string, error) {
	inner := firstNamedNonComment(n)
	if inner == nil {
		return "", fmt.Errorf("%w: empty parenthesized expression", diag.ErrMalformedAST)
	}
	innerExpr, err := t.translateExpr(inner, src)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s)", innerExpr), nil
}

func (t *Translator) translateBinary(n *tree_sitter.Node, src []byte) (string, error) {
	leftNode := n.ChildByFieldName("left")
	rightNode := n.ChildByFieldName("right")
	if leftNode == nil || rightNode == nil {
		return "", fmt.Errorf("%w: binary expression missing an operand", diag.ErrMalformedAST)
	}
	opNode := childWithText(n, src, binaryOperatorTokens...)
	if opNode == nil {
		return "", fmt.Errorf("%w: unsupported binary operator", diag.ErrUnsupportedConstruct)
	}
	op := text(opNode, src)
	switch op {
	case "===":
		op = "=="
	case "!==":
		op = "!="
	}
	leftExpr, err := t.translateExpr(leftNode, src)
	if err != nil {
		return "", err
	}
	rightExpr, err := t.translateExpr(rightNode, src)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s)%s(%s)", leftExpr, op, rightExpr), nil
}

func (t *Translator) translateTernary(n *tree_sitter.Node, src []byte) (string, error) {
	condNode := n.ChildByFieldName("condition")
	consNode := n.ChildByFieldName("consequence")
	altNode := n.ChildByFieldName("alternative")
	if condNode == nil || consNode == nil || altNode == nil {
		return "", fmt.Errorf("%w: ternary expression missing a branch", diag.ErrMalformedAST)
	}
	condExpr, err := t.translateExpr(condNode, src)
	if err != nil {
		return "", err
	}
	consExpr, err := t.translateExpr(consNode, src)
	if err != nil {
		return "", err
	}
	altExpr, err := t.translateExpr(altNode, src)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s).coerce_to_bool()?(%s):(%s)", condExpr, consExpr, altExpr), nil
}

func (t *Translator) translateAssignment(n *tree_sitter.Node, src []byte) (string, error) {
	leftNode := n.ChildByFieldName("left")
	rightNode := n.ChildByFieldName("right")
	if leftNode == nil || rightNode == nil {
		return "", fmt.Errorf("%w: assignment missing an operand", diag.ErrMalformedAST)
	}
	// Compound operators (+=, -=, ...) parse as augmented_assignment_expression,
	// a distinct node kind the expression dispatcher never routes here, so
	// the only operator this function ever sees is plain `=`.
	if childWithText(n, src, "=") == nil {
		return "", fmt.Errorf("%w: only the `=` assignment operator is supported", diag.ErrUnsupportedConstruct)
	}

	leftExpr, err := t.withLHS(func() (string, error) {
		return t.translateExpr(leftNode, src)
	})
	if err != nil {
		return "", err
	}
	rightExpr, err := t.translateExpr(rightNode, src)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s = *(%s).value", leftExpr, rightExpr), nil
}

func (t *Translator) translateUpdate(n *tree_sitter.Node, src []byte) (string, error) {
	argNode := n.ChildByFieldName("argument")
	opNode := childWithText(n, src, "++", "--")
	if argNode == nil || opNode == nil {
		return "", fmt.Errorf("%w: update expression missing its operand or operator", diag.ErrMalformedAST)
	}
	argExpr, err := t.translateExpr(argNode, src)
	if err != nil {
		return "", err
	}
	op := text(opNode, src)
	if opNode.StartByte() < argNode.StartByte() {
		return fmt.Sprintf("%s(%s)", op, argExpr), nil
	}
	return fmt.Sprintf("(%s)%s", argExpr, op), nil
}

func (t *Translator) translateYield(n *tree_sitter.Node, src []byte) (string, error) {
	delegate := hasChildOfKind(n, "*")
	arg := firstNamedNonComment(n)

	if !delegate {
		if arg == nil {
			return "co_yield JSValue::undefined()", nil
		}
		v, err := t.translateExpr(arg, src)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("co_yield %s", v), nil
	}

	if arg == nil {
		return "", fmt.Errorf("%w: yield* requires a delegate expression", diag.ErrMalformedAST)
	}
	delegateExpr, err := t.translateExpr(arg, src)
	if err != nil {
		return "", err
	}
	// yield* has no direct coroutine primitive; it is lowered to a loop
	// re-yielding every value the delegate produces. This only composes
	// correctly when used in statement position, matching how the spec's
	// round-trip scenarios use it.
	return fmt.Sprintf("{ for (auto __jsxx_yv : (%s)) { co_yield __jsxx_yv; } }", delegateExpr), nil
}

func (t *Translator) translateTemplate(n *tree_sitter.Node, src []byte) (string, error) {
	if hasChildOfKind(n, "template_substitution") {
		return "", fmt.Errorf("%w: template literal interpolation is not supported", diag.ErrUnsupportedConstruct)
	}
	raw := text(n, src)
	if len(raw) < 2 {
		return "", fmt.Errorf("%w: malformed template literal", diag.ErrMalformedAST)
	}
	return fmt.Sprintf(`JSValue{"%s"}`, raw[1:len(raw)-1]), nil
}

func (t *Translator) translateTaggedTemplate(n *tree_sitter.Node, src []byte) (string, error) {
	tagNode := n.ChildByFieldName("function")
	var tplNode *tree_sitter.Node
	for _, c := range namedChildren(n) {
		if c.Kind() == "template_string" {
			tplNode = c
			continue
		}
		if tagNode == nil && c.Kind() != "template_string" {
			tagNode = c
		}
	}
	if tagNode == nil || tplNode == nil {
		return "", fmt.Errorf("%w: tagged template missing its tag or template", diag.ErrMalformedAST)
	}
	if hasChildOfKind(tplNode, "template_substitution") {
		return "", fmt.Errorf("%w: tagged template interpolation is not supported", diag.ErrUnsupportedConstruct)
	}
	tag, err := t.translateExpr(tagNode, src)
	if err != nil {
		return "", err
	}
	if tag != "raw_cpp" {
		return "", fmt.Errorf("%w: tagged template expressions are only supported for the `raw_cpp` tag", diag.ErrUnsupportedConstruct)
	}
	raw := text(tplNode, src)
	return raw[1 : len(raw)-1], nil
}

package translator

import (
	"fmt"
	"sort"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/surma/jsxx-go/internal/diag"
)

// TranslateModule assembles the complete C++ translation unit for the
// parsed module: include directives, the runtime header, global
// materialization, the lowered program body, and a main() wrapper
// returning zero. The first lowering failure aborts the translation; no
// partial output is ever returned.
func (t *Translator) TranslateModule(tree *tree_sitter.Tree, src []byte) (string, error) {
	if tree == nil {
		return "", fmt.Errorf("%w: nil tree", diag.ErrMalformedAST)
	}
	root := tree.RootNode()
	if root == nil {
		return "", fmt.Errorf("%w: tree has no root node", diag.ErrMalformedAST)
	}
	if root.HasError() {
		return "", fmt.Errorf("%w: source contains a syntax error", diag.ErrParse)
	}

	headerSet := make(map[string]struct{})
	var inits, globalExprs []string
	for _, g := range t.Globals {
		for _, h := range g.AdditionalHeaders {
			headerSet[h] = struct{}{}
		}
		if g.Init != "" {
			inits = append(inits, g.Init)
		}
		globalExprs = append(globalExprs, fmt.Sprintf("auto %s = %s;", g.Name, g.Factory))
	}
	headers := make([]string, 0, len(headerSet))
	for h := range headerSet {
		headers = append(headers, h)
	}
	sort.Strings(headers)

	hasGenerator, err := moduleHasGenerator(root)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, h := range headers {
		fmt.Fprintf(&out, "#include \"%s\"\n", h)
	}
	out.WriteString("#include \"runtime/js_value.hpp\"\n")
	if hasGenerator {
		out.WriteString("#include <experimental/coroutine>\n")
	}
	out.WriteString("\nint main() {\n")
	for _, init := range inits {
		out.WriteString(init)
		out.WriteString("\n")
	}
	for _, ge := range globalExprs {
		out.WriteString(ge)
		out.WriteString("\n")
	}

	stmts, err := t.translateProgramBody(root, src)
	if err != nil {
		return "", err
	}
	for _, s := range stmts {
		out.WriteString(s)
		out.WriteString(";\n")
	}
	out.WriteString("return 0;\n}\n")

	if t.isLHS || t.isGenerator {
		// Defensive: every lowering helper that sets these flags restores
		// them before returning. Reaching here with either still set is a
		// translator bug, not a user-facing error.
		panic("translator: lowering context flags not restored after translation")
	}

	return out.String(), nil
}

// translateProgramBody lowers every top-level statement of the program
// node. Module-level import/export declarations fail with
// unsupported-construct; this translator has no module-linking story.
func (t *Translator) translateProgramBody(program *tree_sitter.Node, src []byte) ([]string, error) {
	var out []string
	for _, child := range namedChildren(program) {
		switch child.Kind() {
		case "import_statement", "export_statement":
			return nil, fmt.Errorf("%w: module imports/exports are not supported", diag.ErrUnsupportedConstruct)
		case "comment", "hash_bang_line":
			continue
		default:
			s, err := t.translateStatement(child, src)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
	}
	return out, nil
}

// moduleHasGenerator reports whether any generator function (declaration,
// expression or object method) appears anywhere in the module, so the assembler knows whether to
// include <experimental/coroutine>.
func moduleHasGenerator(n *tree_sitter.Node) (bool, error) {
	found := false
	var walk func(n *tree_sitter.Node)
	walk = func(n *tree_sitter.Node) {
		if n == nil || found {
			return
		}
		switch n.Kind() {
		case "generator_function_declaration", "generator_function":
			found = true
			return
		case "method_definition":
			if hasChildOfKind(n, "*") {
				found = true
				return
			}
		}
		for _, c := range namedChildren(n) {
			walk(c)
			if found {
				return
			}
		}
	}
	walk(n)
	return found, nil
}

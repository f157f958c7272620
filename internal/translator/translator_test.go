package translator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/surma/jsxx-go/internal/diag"
	"github.com/surma/jsxx-go/internal/treesitter"
)

// translate is a test helper that parses source through the real
// tree-sitter-javascript grammar and runs it through a fresh Translator
// with the default global registry.
func translate(t *testing.T, source string) (string, error) {
	t.Helper()
	p, err := treesitter.New()
	require.NoError(t, err)
	defer p.Close()

	tree, err := p.ParseModule([]byte(source))
	require.NoError(t, err)
	defer tree.Close()

	tr := New(DefaultGlobals())
	return tr.TranslateModule(tree, []byte(source))
}

func TestLiteralNumber(t *testing.T) {
	out, err := translate(t, "let x = 1;")
	require.NoError(t, err)
	require.Contains(t, out, "JSValue x = *(JSValue{static_cast<double>(1)}).value")
}

func TestLiteralString(t *testing.T) {
	out, err := translate(t, `let x = "hi";`)
	require.NoError(t, err)
	require.Contains(t, out, `JSValue x = *(JSValue{"hi"}).value`)
}

func TestLiteralBoolean(t *testing.T) {
	out, err := translate(t, "let x = true;")
	require.NoError(t, err)
	require.Contains(t, out, "JSValue x = *(JSValue{true}).value")
}

func TestLiteralArray(t *testing.T) {
	out, err := translate(t, "let x = [1, 2, 3];")
	require.NoError(t, err)
	require.Contains(t, out, "JSValue::new_array({")
}

func TestLiteralObject(t *testing.T) {
	out, err := translate(t, "let x = { a: 1, b: 2 };")
	require.NoError(t, err)
	require.Contains(t, out, "JSValue::new_object({")
}

func TestIncrementPostfix(t *testing.T) {
	out, err := translate(t, "let x = 0;\nx++;")
	require.NoError(t, err)
	require.Contains(t, out, "(x)++")
}

func TestIncrementPrefix(t *testing.T) {
	out, err := translate(t, "let x = 0;\n++x;")
	require.NoError(t, err)
	require.Contains(t, out, "++(x)")
}

func TestBasicProgram(t *testing.T) {
	out, err := translate(t, "let x = 1;\nlet y = 2;")
	require.NoError(t, err)
	require.Contains(t, out, "int main() {")
	require.Contains(t, out, "return 0;")
}

func TestTernary(t *testing.T) {
	out, err := translate(t, "let x = true ? 1 : 2;")
	require.NoError(t, err)
	require.Contains(t, out, ".coerce_to_bool()?(")
}

func TestVariableAssign(t *testing.T) {
	out, err := translate(t, "let x = 1;\nx = 2;")
	require.NoError(t, err)
	require.Contains(t, out, "x = *(JSValue{static_cast<double>(2)}).value")
}

func TestGeneratorFunction(t *testing.T) {
	out, err := translate(t, "function* gen() { yield 1; }")
	require.NoError(t, err)
	require.Contains(t, out, "new_generator_function")
	require.Contains(t, out, "co_yield")
	require.Contains(t, out, "#include <experimental/coroutine>")
}

func TestYieldDelegate(t *testing.T) {
	out, err := translate(t, "function* gen() { yield* other(); }")
	require.NoError(t, err)
	require.Contains(t, out, "__jsxx_yv")
}

func TestBoundaryMultipleLetDeclarators(t *testing.T) {
	_, err := translate(t, "let x = 1, y = 2;")
	require.ErrorIs(t, err, diag.ErrUnsupportedConstruct)
}

func TestBoundaryVarRejected(t *testing.T) {
	_, err := translate(t, "var x = 1;")
	require.ErrorIs(t, err, diag.ErrUnsupportedConstruct)
}

func TestBoundaryConstRejected(t *testing.T) {
	_, err := translate(t, "const x = 1;")
	require.ErrorIs(t, err, diag.ErrUnsupportedConstruct)
}

func TestBoundaryNonIdentifierParam(t *testing.T) {
	_, err := translate(t, "function f({a}) { return a; }")
	require.ErrorIs(t, err, diag.ErrUnsupportedConstruct)
}

func TestBoundaryTemplateInterpolationRejected(t *testing.T) {
	_, err := translate(t, "let x = 1;\nlet y = `value: ${x}`;")
	require.ErrorIs(t, err, diag.ErrUnsupportedConstruct)
}

func TestBoundaryModuleImportRejected(t *testing.T) {
	_, err := translate(t, `import { foo } from "bar";`)
	require.ErrorIs(t, err, diag.ErrUnsupportedConstruct)
}

func TestBoundaryModuleExportRejected(t *testing.T) {
	_, err := translate(t, "export let x = 1;")
	require.ErrorIs(t, err, diag.ErrUnsupportedConstruct)
}

func TestThrowRequiresExceptionsFeature(t *testing.T) {
	p, err := treesitter.New()
	require.NoError(t, err)
	defer p.Close()

	src := []byte(`throw "boom";`)
	tree, err := p.ParseModule(src)
	require.NoError(t, err)
	defer tree.Close()

	tr := New(DefaultGlobals())
	tr.FeatureExceptions = false
	_, err = tr.TranslateModule(tree, src)
	require.ErrorIs(t, err, diag.ErrFeatureGateViolation)
}

func TestRawCppEscapeHatch(t *testing.T) {
	out, err := translate(t, "let x = raw_cpp`1 + 1`;")
	require.NoError(t, err)
	require.Contains(t, out, "JSValue x = *(1 + 1).value")
}

package translator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// These scenarios are drawn from original_source/src/test.rs, which the
// distilled spec dropped but which exercise value-vs-reference behavior
// central to the runtime's JSValue copy contract: assignment and call
// arguments always copy (*(<expr>).value), so the lowered C++ must never
// let two JS bindings alias the same value slot.

func TestCopyBehaviorNumberAssignmentDereferences(t *testing.T) {
	out, err := translate(t, "let x = 1;\nlet y = x;\ny = 2;")
	require.NoError(t, err)
	require.Contains(t, out, "JSValue y = *(x).value")
	require.Contains(t, out, "y = *(JSValue{static_cast<double>(2)}).value")
}

func TestCopyBehaviorStringAssignmentDereferences(t *testing.T) {
	out, err := translate(t, `let x = "a";` + "\nlet y = x;")
	require.NoError(t, err)
	require.Contains(t, out, "JSValue y = *(x).value")
}

func TestCopyBehaviorFunctionArgumentsDereference(t *testing.T) {
	out, err := translate(t, "function f(a) { return a; }\nlet x = 1;\nf(x);")
	require.NoError(t, err)
	require.Contains(t, out, "f({*(x).value})")
}

func TestVariableDeclarationWithoutInitializer(t *testing.T) {
	out, err := translate(t, "let x;")
	require.NoError(t, err)
	require.Contains(t, out, "JSValue x")
	require.NotContains(t, out, "JSValue x =")
}

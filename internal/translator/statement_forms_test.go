package translator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIfElse(t *testing.T) {
	out, err := translate(t, `
		let x = 1;
		if (x) {
			x = 2;
		} else {
			x = 3;
		}
	`)
	require.NoError(t, err)
	require.Contains(t, out, "if ((x).coerce_to_bool())")
	require.Contains(t, out, "x = *(JSValue{static_cast<double>(2)}).value")
	require.Contains(t, out, "else { { x = *(JSValue{static_cast<double>(3)}).value }")
}

func TestIfWithoutElse(t *testing.T) {
	out, err := translate(t, `
		let x = 1;
		if (x) {
			x = 2;
		}
	`)
	require.NoError(t, err)
	require.Contains(t, out, "if ((x).coerce_to_bool())")
}

func TestForLoop(t *testing.T) {
	out, err := translate(t, `
		let sum = 0;
		for (let i = 0; i < 10; i++) {
			sum = sum + i;
		}
	`)
	require.NoError(t, err)
	require.Contains(t, out, "for (JSValue i = *(JSValue{static_cast<double>(0)}).value; ((i)<(JSValue{static_cast<double>(10)})).coerce_to_bool(); (i)++)")
}

func TestForLoopBareExpressionClauses(t *testing.T) {
	out, err := translate(t, `
		let i = 0;
		let sum = 0;
		for (i = 0; i < 10; i = i + 1) {
			sum = sum + i;
		}
	`)
	require.NoError(t, err)
	require.Contains(t, out, "for (i = *(JSValue{static_cast<double>(0)}).value;")
}

func TestForOf(t *testing.T) {
	out, err := translate(t, `
		function* gen() {
			yield 1;
		}
		for (let v of gen()) {
			v;
		}
	`)
	require.NoError(t, err)
	require.Contains(t, out, "for (JSValue v : ")
}

func TestForInRejected(t *testing.T) {
	_, err := translate(t, `
		let obj = {};
		for (let k in obj) {
			k;
		}
	`)
	require.Error(t, err)
}

func TestWhileLoop(t *testing.T) {
	out, err := translate(t, `
		let x = 0;
		while (x) {
			x = 0;
		}
	`)
	require.NoError(t, err)
	require.Contains(t, out, "while ((x).coerce_to_bool())")
}

func TestTryCatch(t *testing.T) {
	out, err := translate(t, `
		try {
			throw "boom";
		} catch (e) {
			e;
		}
	`)
	require.NoError(t, err)
	require.Contains(t, out, "try {")
	require.Contains(t, out, "catch (JSValue e)")
	require.Contains(t, out, `throw (JSValue{"boom"})`)
}

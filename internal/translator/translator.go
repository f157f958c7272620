// Package translator implements the AST-directed translation engine: a
// traversal over a parsed JavaScript module that lowers each supported
// syntactic construct into C++20 source text targeting the jsxx runtime's
// value model (runtime/js_value.hpp and friends).
//
// The parser (internal/treesitter) is an external collaborator; this
// package only ever reads the concrete syntax tree it hands back. No
// intermediate representation distinct from that tree is built — lowering
// produces string fragments directly, concatenated in emission order.
package translator

import (
	"log/slog"
	"os"
)

// Global describes one host object injected into the generated main().
type Global struct {
	// Name is the identifier the generated code binds the object to.
	Name string
	// AdditionalHeaders are runtime include paths this global requires.
	AdditionalHeaders []string
	// Init is an optional statement emitted before any global is
	// materialized. Empty means none.
	Init string
	// Factory is the expression whose value initializes Name.
	Factory string
}

// Translator holds the mutable state of one translation. A Translator
// instance is not safe for concurrent use; translating modules in parallel
// means constructing one Translator per goroutine.
type Translator struct {
	// Globals is the ordered list of host objects to inject into main().
	// Insertion order is preserved for deterministic output; duplicates are
	// allowed but discouraged.
	Globals []Global

	// FeatureExceptions controls whether throw/try lower to C++ exceptions.
	// When false, throw/try fail with diag.ErrFeatureGateViolation.
	FeatureExceptions bool

	// isLHS is true while lowering the left operand of an assignment.
	// Reserved for property-slot access distinction; member-access
	// emission does not currently diverge on it, matching spec behavior.
	isLHS bool

	// isGenerator is true while lowering the body of a generator function,
	// so that return statements emit co_return instead of return.
	isGenerator bool

	// Logger is the sink for non-fatal diagnostic tracing; the lowering code
	// in this package writes no records to it. Never used for control flow
	// and never written to stdout.
	Logger *slog.Logger
}

// New creates a Translator with the given global registry. Exceptions are
// enabled by default; callers targeting WebAssembly should set
// FeatureExceptions to false after construction.
func New(globals []Global) *Translator {
	return &Translator{
		Globals:           globals,
		FeatureExceptions: true,
		Logger:            slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
}

// withGenerator sets isGenerator for the duration of fn and restores the
// previous value afterward, regardless of whether fn succeeds. Nested
// generators (a generator function declared inside another generator's
// body) are handled correctly because each entry saves and restores its
// own caller's value.
func (t *Translator) withGenerator(fn func() (string, error)) (string, error) {
	prev := t.isGenerator
	t.isGenerator = true
	defer func() { t.isGenerator = prev }()
	return fn()
}

// withLHS sets isLHS for the duration of fn and restores the previous value
// afterward.
func (t *Translator) withLHS(fn func() (string, error)) (string, error) {
	prev := t.isLHS
	t.isLHS = true
	defer func() { t.isLHS = prev }()
	return fn()
}

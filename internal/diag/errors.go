// Package diag defines the translator's error taxonomy.
//
// Every lowering failure is fatal to the current translation: callers wrap
// one of the sentinels below with fmt.Errorf("%w: ...", Sentinel, detail) so
// that errors.Is still matches the kind while the message carries enough
// context (node kind, source fragment) for a human to locate the offending
// construct.
package diag

import "errors"

var (
	// ErrParse is returned when the upstream parser fails to produce a tree,
	// or the tree it produced contains an ERROR node.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedConstruct is returned for AST nodes the translator does
	// not lower (var/const, destructuring, classes, async, spread, module
	// import/export, non-identifier parameters, non-`=` compound assignment).
	ErrUnsupportedConstruct = errors.New("unsupported construct")

	// ErrMalformedAST is returned when a required child node is missing
	// (function without body, getter without body, catch clause without a
	// body).
	ErrMalformedAST = errors.New("malformed ast")

	// ErrFeatureGateViolation is returned when throw/try is encountered
	// while the exceptions feature flag is disabled.
	ErrFeatureGateViolation = errors.New("feature gate violation")

	// ErrIO is returned for file or process failures in the compile driver.
	ErrIO = errors.New("io error")
)

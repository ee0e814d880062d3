//go:build !debug

// Package debug provides assertions that can be enabled with the debug build
// tag or will otherwise compile to no-ops.
//
// The fixed package uses them to check its production code paths against
// slower reference implementations, e.g.
//
//	go test -tags debug ./...
package debug

// Guard assertions that need extra work to evaluate with `if debug.Enabled{...}`,
// otherwise the work isn't removed in release builds.
const Enabled = false

// Assert panics if b is false.
func Assert(b bool, message string) {}

// AssertEqual panics if got and want differ.
func AssertEqual[T comparable](got, want T, message string) {}

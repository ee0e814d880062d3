//go:build debug

package debug

import "fmt"

// Guard assertions that need extra work to evaluate with `if debug.Enabled{...}`,
// otherwise the work isn't removed in release builds.
const Enabled = true

func Assert(b bool, message string) {
	if !b {
		panic(message)
	}
}

func AssertEqual[T comparable](got, want T, message string) {
	if got != want {
		panic(fmt.Sprintf("%s: got %v, want %v", message, got, want))
	}
}

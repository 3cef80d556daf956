package testkit

import (
	"sync"
	"testing"
)

var seamMu sync.Mutex

// Swap replaces a package-level seam (func var, clock, client) for the test and restores it on cleanup
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// Serial holds a global lock until the test ends so seam swaps never overlap
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(func() { seamMu.Unlock() })
}

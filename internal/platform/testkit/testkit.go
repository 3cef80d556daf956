// Package testkit provides testing helpers
package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MustPanic asserts that fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustNotPanic asserts that fn does not panic
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain asserts that haystack contains needle. If not, writes haystack to a temp file for debugging
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\n\nfull output written to %s", needle, dump(t, haystack))
	}
}

// MustNotContain asserts that needle never shows up in haystack, used for secrets in logs and bodies
func MustNotContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if needle != "" && strings.Contains(haystack, needle) {
		t.Fatalf("output unexpectedly contains %q\n\nfull output written to %s", needle, dump(t, haystack))
	}
}

func dump(t *testing.T, s string) string {
	tmpfile := filepath.Join(t.TempDir(), "test_output.txt")
	_ = os.WriteFile(tmpfile, []byte(s), 0o600)
	return tmpfile
}

// Package strings provides small string helpers shared by handlers and adapters
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// IsBlank reports whether s has no non-whitespace content
func IsBlank(s string) bool { return std.TrimSpace(s) == "" }

// Or returns s unless it is blank, then def
func Or(s, def string) string {
	if IsBlank(s) {
		return def
	}
	return s
}

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if IsBlank(s) {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes and asserts a root path like /patch or /meta
// ensures a single leading slash and no trailing slash except for the root itself
// panics if the input is empty after trimming
func MustPrefix(s string) string {
	s = std.TrimSpace(s)
	s = "/" + std.Trim(s, " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Truncate cuts s to at most n bytes without splitting a UTF-8 sequence
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !startsRune(s[cut]) {
		cut--
	}
	return s[:cut]
}

func startsRune(b byte) bool { return b&0xC0 != 0x80 }

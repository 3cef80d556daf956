// Package raw provides a minimal env reader used during bootstrap.
// It has NO dependency on the logger package so the logger can read its own settings
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a namespaced view over environment variables (e.g., "LOG_")
type Conf struct{ prefix string }

// New returns a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix returns a child Conf with an additional prefix (e.g. "LOG_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) val(key string) string { return strings.TrimSpace(os.Getenv(c.prefix + key)) }

// Get returns the trimmed env var or the provided default if empty
func (c Conf) Get(key, def string) string {
	if v := c.val(key); v != "" {
		return v
	}
	return def
}

// GetBool parses a bool-like env ("1|true|yes") with default fallback
func (c Conf) GetBool(key string, def bool) bool {
	v := strings.ToLower(c.val(key))
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes"
}

// GetInt parses a non-negative integer with default fallback
func (c Conf) GetInt(key string, def int) int {
	n, err := strconv.Atoi(c.val(key))
	if err != nil || n < 0 {
		return def
	}
	return n
}

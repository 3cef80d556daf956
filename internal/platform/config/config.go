// Package config handles application configuration via environment variables
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"patchgate/internal/platform/config/raw"
	"patchgate/internal/platform/logger"

	"github.com/joho/godotenv"
)

// Conf is a namespaced view over environment variables (e.g., "CORE_API_")
// Use New() for global access, or Prefix("CORE_API_") for module scopes.
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("GH_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// key composes the fully-qualified env var name
func (c Conf) key(k string) string { return c.prefix + k }

// lookup returns the trimmed env value for key
func (c Conf) lookup(key string) string { return strings.TrimSpace(os.Getenv(c.key(key))) }

// LoadDotenv loads KEY=VALUE pairs from a .env file into the process env before any Conf reads.
// Existing env vars win. A missing file is not an error; CORE_DOTENV overrides the path.
func LoadDotenv(paths ...string) error {
	if p := raw.New().Get("CORE_DOTENV", ""); p != "" {
		paths = []string{p}
	}
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var found []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			found = append(found, p)
		}
	}
	if len(found) == 0 {
		return nil
	}
	return godotenv.Load(found...)
}

// Has reports whether the key is set to a non-blank value
func (c Conf) Has(key string) bool { return c.lookup(key) != "" }

// MustString panics if the given key is missing or empty
func (c Conf) MustString(key string) string {
	v := c.lookup(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// MustURL panics if the given key is missing, empty, or not a valid absolute URL
func (c Conf) MustURL(key string) *url.URL {
	s := c.MustString(key)
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid absolute URL")
	}
	return u
}

// MayAddr returns a listen addr like ":4000"; a bare port gets a colon, out of range ports fall back to def
// port 0 is allowed and asks the kernel for an ephemeral port
func (c Conf) MayAddr(key, def string) string {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	port := s
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		port = s[i+1:]
	}
	if p, err := strconv.Atoi(port); err != nil || p < 0 || p > 65535 {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Str("default", def).Msg("invalid TCP port; using default")
		return def
	}
	if !strings.Contains(s, ":") {
		return ":" + s
	}
	return s
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MaySecret is MayString for credentials, the value is never echoed into logs
func (c Conf) MaySecret(key string) string { return c.lookup(key) }

// MayInt returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayInt(key string, def int) int {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Int("default", def).Msg("invalid int; using default")
	return def
}

// MayFloat64 returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayFloat64(key string, def float64) float64 {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Float64("default", def).
		Msg("invalid float64; using default")
	return def
}

// MayBool returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
	return def
}

// MayDuration returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
	return def
}

// MayCSV returns a slice of strings from a comma-separated env var; def if missing/empty
func (c Conf) MayCSV(key string, def []string) []string {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	out := make([]string, 0, 4)
	for p := range strings.SplitSeq(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayKV parses "a=1,b=2" into a map; malformed pairs are logged and skipped
func (c Conf) MayKV(key string) map[string]string {
	out := map[string]string{}
	for _, pair := range c.MayCSV(key, nil) {
		k, v, ok := strings.Cut(pair, "=")
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if !ok || k == "" || v == "" {
			logger.Get().Warn().Str("key", c.key(key)).Str("pair", pair).Msg("invalid name=value pair; skipped")
			continue
		}
		out[k] = v
	}
	return out
}

package github

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// maxBodyBytes bounds how much of a rejection body is kept as diagnostic text
const maxBodyBytes = 4 << 10

// StatusError wraps non-2xx HTTP responses from GitHub
type StatusError struct {
	Status int
	Body   string
}

// Error interface
func (e *StatusError) Error() string { return fmt.Sprintf("github status %d", e.Status) }

// HTTPStatus interface
func (e *StatusError) HTTPStatus() int { return e.Status }

func parseRateHeaders(h http.Header) (remaining int, reset time.Time, retryAfter int) {
	remaining = atoi(h.Get("X-RateLimit-Remaining"))
	if sec := atoi(h.Get("X-RateLimit-Reset")); sec > 0 {
		reset = time.Unix(int64(sec), 0).UTC()
	}
	retryAfter = atoi(h.Get("Retry-After"))
	return
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	i, _ := strconv.Atoi(s)
	return i
}

// readBounded reads at most maxBodyBytes and closes the body
func readBounded(rc io.ReadCloser) string {
	b, _ := io.ReadAll(io.LimitReader(rc, maxBodyBytes))
	_ = drainAndClose(rc)
	return string(b)
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}

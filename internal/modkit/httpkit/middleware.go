package httpkit

import (
	"net/http"
	"time"

	"patchgate/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// Origins allowed by CORS, empty means any
	Origins []string
	// Timeout bounds a whole request, 0 uses 30s
	Timeout time.Duration
	// Slow marks access log lines at warn when a request takes at least this long
	Slow time.Duration
}

// CommonStack returns the baseline middleware slice for the API scope
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),

		// cross-origin, preflights stop here
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.Timeout(timeout),
	}
}

// RateLimit wires the per-client limiter for a module's write routes
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	return middleware.RateLimit(middleware.RateLimitOptions{RPS: rps, Burst: burst})
}

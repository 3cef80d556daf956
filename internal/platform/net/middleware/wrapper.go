// Package middleware provides thin adapters over chi middleware without leaking chi types
package middleware

import (
	"net/http"
	"time"

	pstrings "patchgate/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// RequestID attaches or propagates X-Request-ID and stores it on context
func RequestID() func(http.Handler) http.Handler { return chimw.RequestID }

// RealIP sets RemoteAddr to the upstream IP based on X-Forwarded-For headers
func RealIP() func(http.Handler) http.Handler { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// NoCache sets headers to disable client and proxy caching
func NoCache() func(http.Handler) http.Handler { return chimw.NoCache }

// CORSOptions is a narrow surface over go-chi/cors
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// CORS wraps go-chi/cors with defaults suited to a browser form posting JSON
// Preflights are answered here and never reach route handlers
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{"GET", "POST", "OPTIONS"}),
		AllowedHeaders: pstrings.IfEmpty(
			o.AllowedHeaders,
			[]string{
				"Accept",
				"Content-Type",
				"X-Request-ID",
			},
		),
		ExposedHeaders:   pstrings.IfEmpty(o.ExposedHeaders, []string{"X-Request-ID"}),
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}

// Package net provides utilities for working with request contexts
package net

import (
	"context"
	"net"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest annotates context with the request id so chimw.GetReqID can find it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// ClientIP returns the caller address without port
// RealIP middleware has already rewritten RemoteAddr from X-Forwarded-For when mounted
func ClientIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

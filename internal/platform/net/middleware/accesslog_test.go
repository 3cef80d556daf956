package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"patchgate/internal/platform/net/middleware"
)

func TestAccessLogZerolog_PassThrough(t *testing.T) {
	cases := []struct {
		name   string
		opt    middleware.AccessLogOptions
		status int
		body   string
	}{
		{"plain", middleware.AccessLogOptions{}, http.StatusOK, "ok"},
		{"slow", middleware.AccessLogOptions{Slow: time.Nanosecond}, http.StatusOK, "slow"},
		{"server error", middleware.AccessLogOptions{}, http.StatusInternalServerError, "bad"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body[:1])
				_, _ = io.WriteString(w, tc.body[1:])
			})
			rr := httptest.NewRecorder()
			middleware.AccessLogZerolog(tc.opt)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/x", nil))

			if rr.Code != tc.status || rr.Body.String() != tc.body {
				t.Fatalf("got %d %q, want %d %q", rr.Code, rr.Body.String(), tc.status, tc.body)
			}
		})
	}
}

package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func applyStack(h http.Handler, stack []func(http.Handler) http.Handler) http.Handler {
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}
	return h
}

func TestCommonStack_RequestReachesHandler(t *testing.T) {
	hit := 0
	root := applyStack(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit++
		w.WriteHeader(http.StatusNoContent)
	}), CommonStack(StackOptions{}))

	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if hit != 1 || rr.Code != http.StatusNoContent {
		t.Fatalf("hit=%d code=%d", hit, rr.Code)
	}
}

func TestCommonStack_CORSPreflightAnswered(t *testing.T) {
	hit := 0
	root := applyStack(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { hit++ }),
		CommonStack(StackOptions{Origins: []string{"https://patch.example"}}))

	req := httptest.NewRequest(http.MethodOptions, "/patch", nil)
	req.Header.Set("Origin", "https://patch.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, req)

	if hit != 0 {
		t.Fatalf("preflight should not reach the handler")
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://patch.example" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestCommonStack_RecoversPanics(t *testing.T) {
	root := applyStack(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }),
		CommonStack(StackOptions{}))
	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 from recover, got %d", rr.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	h := RateLimit(0, 0)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) }))
	for range 3 {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
		if rr.Code != http.StatusAccepted {
			t.Fatalf("disabled limiter should pass through, got %d", rr.Code)
		}
	}
}

package httpkit

import (
	"net/http"
	"testing"
)

func TestMountUnder_AppliesMiddleware_And_CallsMount(t *testing.T) {
	root := &fakeRouter{}
	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }

	MountUnder(root, "/patch", []func(http.Handler) http.Handler{mwA, mwB}, func(sub Router) {
		Preflight(sub, "/")
	})

	if len(root.prefixes) != 1 || root.prefixes[0] != "/patch" {
		t.Fatalf("expected Route with /patch, got %v", root.prefixes)
	}
	if root.useCalls != 1 || root.lastMWLen != 2 {
		t.Fatalf("expected Use once with 2 middleware, got calls=%d len=%d", root.useCalls, root.lastMWLen)
	}
	if len(root.regs) != 1 || root.regs[0].verb != http.MethodOptions {
		t.Fatalf("expected OPTIONS registration, got %+v", root.regs)
	}
}

func TestMountUnder_NoMiddleware_SkipsUse(t *testing.T) {
	root := &fakeRouter{}
	MountUnder(root, "/x", nil, func(Router) {})
	if root.useCalls != 0 {
		t.Fatalf("Use should not be called without middleware, got %d", root.useCalls)
	}
}

func TestMountUnder_EmptyPrefixGroups(t *testing.T) {
	root := &fakeRouter{}
	MountUnder(root, "", []func(http.Handler) http.Handler{func(h http.Handler) http.Handler { return h }}, func(Router) {})
	if root.groups != 1 || len(root.prefixes) != 0 || root.useCalls != 1 {
		t.Fatalf("expected a group with middleware, got groups=%d prefixes=%v use=%d",
			root.groups, root.prefixes, root.useCalls)
	}
}

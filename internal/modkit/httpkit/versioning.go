package httpkit

import (
	"net/http"
	"strings"
)

// MountAPI mounts a subrouter under /api/{version}, applies any per-scope middleware,
// then invokes mount to register routes on that scoped router
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, "/api/"+strings.TrimPrefix(version, "/"), mw, mount)
}

// MountAPIV1 is a convenience for MountAPI with version v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}

// MountRoot applies mw to a group at the root path so unversioned routes like /patch share the stack
func MountRoot(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Group(func(g Router) {
		if len(mw) > 0 {
			g.Use(mw...)
		}
		mount(g)
	})
}

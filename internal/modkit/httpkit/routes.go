package httpkit

import "net/http"

// MountUnder mounts a subrouter at prefix and applies per-module middlewares
// an empty prefix mounts as a group on r itself
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	if prefix == "" || prefix == "/" {
		MountRoot(r, mw, mount)
		return
	}
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

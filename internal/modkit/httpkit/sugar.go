package httpkit

import (
	"net/http"

	phttp "patchgate/internal/platform/net/http"
	"patchgate/internal/platform/net/http/bind"
)

// JSONOptions re-exports the bind options for modules
type JSONOptions = bind.JSONOptions

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// PostJSON mounts a JSON body handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...JSONOptions) {
	r.Post(path, phttp.JSONHandler(h, opts...))
}

// Preflight answers OPTIONS on path with an empty 200
func Preflight(r Router, path string) {
	phttp.Preflight(r, path)
}

// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "patchgate/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Call adapts a handler that takes no JSON body
// a returned Response passes through untouched, anything else is wrapped in OK
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.JSONHandlerNoBody(fn)
}

// Handle lets you directly adapt a Response-returning function
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}

// NotFound answers with the JSON 404 envelope
func NotFound(w http.ResponseWriter, r *http.Request) { phttp.NotFound(w, r) }

// MethodNotAllowed answers with the JSON 405 envelope
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) { phttp.MethodNotAllowed(w, r) }

// Param returns a path parameter such as {target}
func Param(r *http.Request, name string) string { return phttp.URLParam(r, name) }

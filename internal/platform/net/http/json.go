package http

import (
	"net/http"

	"patchgate/internal/platform/net/http/bind"
)

// JSONHandler adapts a pure JSON handler to a platform Handler
// a returned Response is written as is, any other value is wrapped in OK
// opts are handed to bind.ParseJSON unchanged
func JSONHandler[T any](fn func(*http.Request, T) (any, error), opts ...bind.JSONOptions) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r, opts...)
		if err != nil {
			return Error(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return OK(out)
	})
}

// JSONHandlerNoBody calls fn without parsing a request body; results are wrapped like JSONHandler
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return OK(out)
	})
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// chiRouter adapts any chi.Router (root mux or subrouter) to Router
type chiRouter struct{ r chi.Router }

// toStd wraps a platform Handler into a stdlib HandlerFunc
func toStd(h Handler) http.HandlerFunc { return http.HandlerFunc(h) }

// AdaptChi adapts a *chi.Mux to a Router
func AdaptChi(m *chi.Mux) Router { return chiRouter{r: m} }

func (c chiRouter) Get(p string, h Handler)     { c.r.Method(http.MethodGet, p, toStd(h)) }
func (c chiRouter) Post(p string, h Handler)    { c.r.Method(http.MethodPost, p, toStd(h)) }
func (c chiRouter) Put(p string, h Handler)     { c.r.Method(http.MethodPut, p, toStd(h)) }
func (c chiRouter) Patch(p string, h Handler)   { c.r.Method(http.MethodPatch, p, toStd(h)) }
func (c chiRouter) Delete(p string, h Handler)  { c.r.Method(http.MethodDelete, p, toStd(h)) }
func (c chiRouter) Head(p string, h Handler)    { c.r.Method(http.MethodHead, p, toStd(h)) }
func (c chiRouter) Options(p string, h Handler) { c.r.Method(http.MethodOptions, p, toStd(h)) }

func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) NotFound(h Handler)         { c.r.NotFound(toStd(h)) }
func (c chiRouter) MethodNotAllowed(h Handler) { c.r.MethodNotAllowed(toStd(h)) }

// Mux returns the underlying handler; chi.Router implements http.Handler
func (c chiRouter) Mux() http.Handler { return c.r }

// URLParam returns the named path parameter captured by the router
func URLParam(r *http.Request, key string) string { return chi.URLParam(r, key) }

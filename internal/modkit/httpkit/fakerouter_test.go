package httpkit

import (
	"net/http"

	phttp "patchgate/internal/platform/net/http"
)

type reg struct {
	verb string
	path string
	h    phttp.Handler
}

// fakeRouter records every call made against the Router seam
type fakeRouter struct {
	prefixes  []string
	groups    int
	useCalls  int
	lastMWLen int
	regs      []reg
}

func (f *fakeRouter) add(verb, path string, h phttp.Handler) {
	f.regs = append(f.regs, reg{verb: verb, path: path, h: h})
}

func (f *fakeRouter) Get(p string, h phttp.Handler)     { f.add(http.MethodGet, p, h) }
func (f *fakeRouter) Post(p string, h phttp.Handler)    { f.add(http.MethodPost, p, h) }
func (f *fakeRouter) Put(p string, h phttp.Handler)     { f.add(http.MethodPut, p, h) }
func (f *fakeRouter) Patch(p string, h phttp.Handler)   { f.add(http.MethodPatch, p, h) }
func (f *fakeRouter) Delete(p string, h phttp.Handler)  { f.add(http.MethodDelete, p, h) }
func (f *fakeRouter) Head(p string, h phttp.Handler)    { f.add(http.MethodHead, p, h) }
func (f *fakeRouter) Options(p string, h phttp.Handler) { f.add(http.MethodOptions, p, h) }
func (f *fakeRouter) Handle(p string, _ http.Handler)   { f.add("HANDLE", p, nil) }

func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) {
	f.useCalls++
	f.lastMWLen = len(mw)
}

func (f *fakeRouter) Group(fn func(Router)) {
	f.groups++
	fn(f)
}

func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

func (f *fakeRouter) NotFound(phttp.Handler)         {}
func (f *fakeRouter) MethodNotAllowed(phttp.Handler) {}
func (f *fakeRouter) Mux() http.Handler              { return http.NewServeMux() }

var _ Router = (*fakeRouter)(nil)

package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func header(name string) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Set(name, "1")
			next.ServeHTTP(w, req)
		})
	}
}

func status(code int) Handler {
	return func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(code) }
}

func TestAdaptChi_MiddlewareGroupsAndRoutes(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Use(header("X-Root"))
	r.Get("/root", status(200))

	r.Group(func(gr Router) {
		gr.Use(header("X-Group"))
		if gr.Mux() == nil {
			t.Fatalf("group Mux() returned nil")
		}
		gr.Get("/g/ping", status(200))
	})

	r.Route("/api", func(sr Router) {
		sr.Use(header("X-Route"))
		sr.Route("/v1", func(nr Router) {
			nr.Post("/patch", status(200))
		})
	})

	do := func(method, path string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(method, path, nil))
		return rr
	}

	if rr := do("GET", "/root"); rr.Code != 200 || rr.Header().Get("X-Root") != "1" {
		t.Fatalf("GET /root => %d", rr.Code)
	}
	if rr := do("GET", "/g/ping"); rr.Code != 200 || rr.Header().Get("X-Group") != "1" || rr.Header().Get("X-Root") != "1" {
		t.Fatalf("GET /g/ping => %d", rr.Code)
	}
	if rr := do("POST", "/api/v1/patch"); rr.Code != 200 || rr.Header().Get("X-Route") != "1" {
		t.Fatalf("POST /api/v1/patch => %d", rr.Code)
	}
}

func TestAdaptChi_AllVerbsAndFallbacks(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.NotFound(status(499))
	r.MethodNotAllowed(status(498))

	r.Route("/v", func(sr Router) {
		sr.Get("/", status(200))
		sr.Post("/", status(201))
		sr.Put("/", status(202))
		sr.Patch("/", status(203))
		sr.Delete("/", status(204))
		sr.Head("/", status(200))
		sr.Options("/", status(200))
		sr.Handle("/std", stdhttp.HandlerFunc(status(206)))
	})

	cases := []struct {
		method, path string
		want         int
	}{
		{"GET", "/v/", 200},
		{"POST", "/v/", 201},
		{"PUT", "/v/", 202},
		{"PATCH", "/v/", 203},
		{"DELETE", "/v/", 204},
		{"HEAD", "/v/", 200},
		{"OPTIONS", "/v/", 200},
		{"GET", "/v/std", 206},
		{"GET", "/nope", 499},
		{"TRACE", "/v/", 498},
	}
	for _, c := range cases {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(c.method, c.path, nil))
		if rr.Code != c.want {
			t.Fatalf("%s %s => %d, want %d", c.method, c.path, rr.Code, c.want)
		}
	}
}

func TestURLParam(t *testing.T) {
	r := AdaptChi(chi.NewRouter())
	var got string
	r.Route("/patch", func(sub Router) {
		sub.Post("/{target}", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			got = URLParam(req, "target")
			w.WriteHeader(stdhttp.StatusOK)
		})
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodPost, "/patch/android16", nil))
	if rec.Code != stdhttp.StatusOK || got != "android16" {
		t.Fatalf("code=%d target=%q", rec.Code, got)
	}
}

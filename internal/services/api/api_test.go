package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"patchgate/internal/modkit/module"
	"patchgate/internal/modkit/swaggerkit"
	"patchgate/internal/platform/config"
	"patchgate/internal/platform/logger"
	phttp "patchgate/internal/platform/net/http"
	kit "patchgate/internal/platform/testkit"
)

const secret = "ghp_apiIntegrationSecret"

func newAPI(t *testing.T, withToken bool) (http.Handler, *int32) {
	t.Helper()

	var calls int32
	gh := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(gh.Close)

	t.Setenv("APT_GH_BASE_URL", gh.URL)
	t.Setenv("APT_GH_TOKEN", "")
	if withToken {
		t.Setenv("APT_GH_TOKEN", secret)
	}
	t.Cleanup(module.Reset)
	t.Cleanup(swaggerkit.Reset)

	cfg := config.New().Prefix("APT_")
	srv := phttp.NewServer(cfg)
	r := srv.Router()
	Mount(r, Options{Config: cfg, Logger: logger.Get(), EnableSwagger: true})
	return r.Mux(), &calls
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	h.ServeHTTP(rec, req)
	return rec
}

const form = `{
	"framework_jar_url": "https://dl/framework.jar",
	"services_jar_url": "https://dl/services.jar",
	"miui_services_jar_url": "https://dl/miui-services.jar",
	"android_api_level": 35,
	"custom_device_name": "Xiaomi 14",
	"custom_version": "OS2.0"
}`

func TestAPI_PatchAccepted(t *testing.T) {
	h, calls := newAPI(t, true)

	rec := do(h, http.MethodPost, "/api/v1/patch", form)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	kit.MustContain(t, rec.Body.String(), "Workflow triggered successfully")
	kit.MustNotContain(t, rec.Body.String(), secret)
	kit.MustContain(t, rec.Body.String(), `"request_id"`)
	if atomic.LoadInt32(calls) != 1 {
		t.Fatalf("calls = %d", atomic.LoadInt32(calls))
	}
}

func TestAPI_PatchWithoutToken(t *testing.T) {
	h, calls := newAPI(t, false)

	rec := do(h, http.MethodPost, "/api/v1/patch", form)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	kit.MustContain(t, rec.Body.String(), "GitHub token not set in environment")

	// the token check runs before the body is decoded
	for _, body := range []string{``, `{"frameworkJarUrl":"x"}`, `not json`} {
		rec := do(h, http.MethodPost, "/api/v1/patch", body)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("body %q: status = %d %s", body, rec.Code, rec.Body.String())
		}
		kit.MustContain(t, rec.Body.String(), "GitHub token not set in environment")
		kit.MustNotContain(t, rec.Body.String(), "unknown field")
	}
	if atomic.LoadInt32(calls) != 0 {
		t.Fatalf("calls = %d", atomic.LoadInt32(calls))
	}

	ready := do(h, http.MethodGet, "/api/v1/meta/ready", "")
	var env struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	_ = json.Unmarshal(ready.Body.Bytes(), &env)
	if ready.Code != http.StatusOK || env.Data.Status != "fail" {
		t.Fatalf("ready = %d %s", ready.Code, ready.Body.String())
	}
}

func TestAPI_MethodsAndFallbacks(t *testing.T) {
	h, _ := newAPI(t, true)

	for _, m := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		if rec := do(h, m, "/api/v1/patch", ""); rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s /patch = %d", m, rec.Code)
		}
	}
	if rec := do(h, http.MethodOptions, "/api/v1/patch", ""); rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("OPTIONS = %d %q", rec.Code, rec.Body.String())
	}
	if rec := do(h, http.MethodGet, "/api/v1/nope", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown path = %d", rec.Code)
	}
}

func TestAPI_DocsAndRegistry(t *testing.T) {
	h, _ := newAPI(t, true)

	rec := do(h, http.MethodGet, "/api/docs/doc.json", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("doc.json = %d", rec.Code)
	}
	var spec map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode spec: %v", err)
	}
	if _, ok := spec["paths"].(map[string]any)["/patch"]; !ok {
		t.Fatalf("spec is missing /patch")
	}
	if _, ok := spec["x-dispatch-targets"]; !ok {
		t.Fatalf("dispatch mutator did not run")
	}
	kit.MustNotContain(t, rec.Body.String(), secret)

	// meta exposes no ports, so only dispatch is registered
	names := module.Names()
	if len(names) != 1 || names[0] != "dispatch" {
		t.Fatalf("registry = %v", names)
	}
}

package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "patchgate/internal/platform/errors"
	lumnet "patchgate/internal/platform/net"
	phttp "patchgate/internal/platform/net/http"
)

func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(lumnet.WithRequest(req.Context(), rid))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v (%q)", err, rec.Body.String())
	}
	return env
}

func TestJSONHelper(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot || rec.Header().Get("Content-Type") == "" {
		t.Fatalf("JSON status/content-type mismatch: %d", rec.Code)
	}
}

func TestRespondHelpers(t *testing.T) {
	req := reqWithReqID("GET", "/x", "rid-1")

	recE := httptest.NewRecorder()
	phttp.RespondEmpty(recE, req)
	if recE.Code != http.StatusOK || recE.Body.Len() != 0 {
		t.Fatalf("RespondEmpty code=%d body=%q", recE.Code, recE.Body.String())
	}
}

func TestRespondErrorCarriesDetailAndField(t *testing.T) {
	err := perr.WithDetail(perr.New(perr.ErrorCodeUpstreamRejected, "workflow dispatch rejected"), `{"message":"bad ref"}`)

	rec := httptest.NewRecorder()
	phttp.RespondError(rec, reqWithReqID("POST", "/p", "rid-3"), err)
	env := decode(t, rec)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if env.Message != "workflow dispatch rejected" || env.Error != `{"message":"bad ref"}` || env.RequestID != "rid-3" {
		t.Fatalf("bad error envelope: %+v", env)
	}

	rec2 := httptest.NewRecorder()
	phttp.RespondError(rec2, reqWithReqID("POST", "/p", ""), perr.WithField(perr.New(perr.ErrorCodeValidation, "x is required"), "x"))
	env2 := decode(t, rec2)
	if rec2.Code != http.StatusBadRequest || env2.Field != "x" || env2.Error != "" {
		t.Fatalf("bad validation envelope: %+v", env2)
	}
}

func TestFallbackHandlers(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.MethodNotAllowed(rec, reqWithReqID("DELETE", "/patch", ""))
	if rec.Code != http.StatusMethodNotAllowed || decode(t, rec).Message != "method not allowed" {
		t.Fatalf("MethodNotAllowed mismatch: %d %q", rec.Code, rec.Body.String())
	}

	rec2 := httptest.NewRecorder()
	phttp.NotFound(rec2, reqWithReqID("GET", "/nope", ""))
	if rec2.Code != http.StatusNotFound || decode(t, rec2).Message != "not found" {
		t.Fatalf("NotFound mismatch: %d %q", rec2.Code, rec2.Body.String())
	}
}

func TestReturnStyle(t *testing.T) {
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.OK(map[string]any{"x": 1}).WithMessage("done")
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/ok", "rid-4"))
	if env := decode(t, rec); rec.Code != 200 || env.Message != "done" || env.RequestID != "rid-4" {
		t.Fatalf("handle OK mismatch: %d %+v", rec.Code, env)
	}

	hn := phttp.Handle(func(r *http.Request) phttp.Response { return phttp.NoContent() })
	recN := httptest.NewRecorder()
	hn(recN, reqWithReqID("DELETE", "/no", ""))
	if recN.Code != http.StatusNoContent || recN.Body.Len() != 0 {
		t.Fatalf("handle NoContent code=%d body=%q", recN.Code, recN.Body.String())
	}

	hHdr := phttp.Handle(func(r *http.Request) phttp.Response {
		resp := phttp.OK("hello")
		resp.Header = http.Header{"X-Dispatch-Id": []string{"abc"}}
		return resp
	})
	recH := httptest.NewRecorder()
	hHdr(recH, reqWithReqID("GET", "/hdr", ""))
	if got := recH.Header().Get("X-Dispatch-Id"); got != "abc" {
		t.Fatalf("expected header, got %q", got)
	}

	hGen := phttp.Handle(func(r *http.Request) phttp.Response { return phttp.Error(errors.New("boom")) })
	recG := httptest.NewRecorder()
	hGen(recG, reqWithReqID("GET", "/gen", ""))
	if recG.Code != http.StatusInternalServerError || decode(t, recG).Message != "boom" {
		t.Fatalf("generic error mapping mismatch: %d", recG.Code)
	}
}

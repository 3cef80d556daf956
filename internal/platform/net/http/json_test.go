package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"patchgate/internal/platform/net/http/bind"
)

type inDTO struct {
	Ref string `json:"ref" validate:"notblank"`
}

func TestJSONHandler_Success(t *testing.T) {
	t.Parallel()

	h := JSONHandler(func(_ *http.Request, in inDTO) (any, error) {
		return map[string]string{"echo": in.Ref}, nil
	})

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(`{"ref":"main"}`)))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"echo":"main"`) {
		t.Fatalf("body %q missing echo", rr.Body.String())
	}
}

func TestJSONHandler_BindAndValidationErrors(t *testing.T) {
	t.Parallel()

	h := JSONHandler(func(_ *http.Request, _ inDTO) (any, error) {
		t.Error("handler should not be called")
		return nil, nil
	})

	for _, body := range []string{`{`, `{"ref":"  "}`} {
		rr := httptest.NewRecorder()
		h(rr, httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(body)))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rr.Code)
		}
	}
}

func TestJSONHandler_OptionsForwarded(t *testing.T) {
	t.Parallel()

	called := false
	h := JSONHandler(func(_ *http.Request, in inDTO) (any, error) {
		called = true
		return in, nil
	}, bind.JSONOptions{DisallowUnknown: true, SkipValidate: true})

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(`{"ref":""}`)))
	if !called || rr.Code != http.StatusOK {
		t.Fatalf("SkipValidate not honored: called=%v code=%d", called, rr.Code)
	}
}

func TestJSONHandler_HandlerError(t *testing.T) {
	t.Parallel()

	h := JSONHandlerNoBody(func(_ *http.Request) (any, error) {
		return nil, errors.New("boom")
	})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on handler error, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "boom") {
		t.Fatalf("expected error message in body, got %q", rr.Body.String())
	}
}

func TestJSONHandler_ResponsePassthrough(t *testing.T) {
	t.Parallel()

	h := JSONHandler(func(_ *http.Request, in inDTO) (any, error) {
		return OK(in.Ref).WithMessage("Workflow triggered successfully"), nil
	})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(`{"ref":"main"}`)))

	if !strings.Contains(rr.Body.String(), `"message":"Workflow triggered successfully"`) ||
		!strings.Contains(rr.Body.String(), `"data":"main"`) {
		t.Fatalf("response not passed through: %s", rr.Body.String())
	}
}

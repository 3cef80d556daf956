// Package http provides http transport for dispatch
package http

import (
	stdhttp "net/http"

	"patchgate/internal/modkit/httpkit"
	perr "patchgate/internal/platform/errors"
	phttp "patchgate/internal/platform/net/http"
	"patchgate/internal/services/api/dispatch/domain"
	svc "patchgate/internal/services/api/dispatch/service"
)

// MessageAccepted is the caller facing message for a triggered workflow
const MessageAccepted = "Workflow triggered successfully"

// bodyOptions decode the form strictly; the service does the field checks
var bodyOptions = httpkit.JSONOptions{
	MaxBytes:        64 << 10,
	DisallowUnknown: true,
	SkipValidate:    true,
}

// Register mounts the routes; submit is wrapped by limit when it is not nil
func Register(r httpkit.Router, s svc.Service, limit func(stdhttp.Handler) stdhttp.Handler) {
	h := &handlers{svc: s}

	httpkit.Preflight(r, "/")
	httpkit.Preflight(r, "/{target}")
	httpkit.Get(r, "/targets", h.targets)

	r.Group(func(w httpkit.Router) {
		w.Use(requireCredential(s))
		if limit != nil {
			w.Use(limit)
		}
		httpkit.PostJSON(w, "/", h.submit, bodyOptions)
		httpkit.PostJSON(w, "/{target}", h.submitTarget, bodyOptions)
	})
}

type handlers struct{ svc svc.Service }

// requireCredential answers 500 before the body is read when no token is configured
func requireCredential(s svc.Service) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			if !s.Configured() {
				phttp.RespondError(w, r, perr.WithOp(perr.Configf(svc.MessageNoCredential), "dispatch.credential"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// @Summary Dispatch the default patch workflow
// @Tags patch
// @Accept json
// @Produce json
// @Param payload body domain.PatchRequest true "Patch form"
// @Success 200 {object} domain.Accepted "Workflow triggered successfully"
// @Failure 400 {object} httpkit.Envelope "missing fields or bad JSON"
// @Failure 500 {object} httpkit.Envelope "credential, rejection or transport failure"
// @Router /patch [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.PatchRequest) (any, error) {
	return h.dispatch(r, "", in)
}

// @Summary Dispatch the workflow bound to a target
// @Tags patch
// @Param target path string true "Target name"
// @Failure 404 {object} httpkit.Envelope "unknown target"
// @Router /patch/{target} [post]
func (h *handlers) submitTarget(r *stdhttp.Request, in domain.PatchRequest) (any, error) {
	return h.dispatch(r, httpkit.Param(r, "target"), in)
}

func (h *handlers) dispatch(r *stdhttp.Request, target string, in domain.PatchRequest) (any, error) {
	out, err := h.svc.Dispatch(r.Context(), target, in)
	if err != nil {
		return nil, err
	}
	return httpkit.OK(out).WithMessage(MessageAccepted), nil
}

// @Summary List dispatch targets
// @Tags patch
// @Success 200 {object} domain.Targets "ok"
// @Router /patch/targets [get]
func (h *handlers) targets(_ *stdhttp.Request) (any, error) {
	return h.svc.Targets(), nil
}

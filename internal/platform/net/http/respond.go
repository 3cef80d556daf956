// Package http provides helpers for writing JSON responses with a consistent envelope
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "patchgate/internal/platform/errors"
	lumnet "patchgate/internal/platform/net"
)

// Envelope is the standard response body for all endpoints
// Message is the short caller-facing summary; Error carries an optional opaque diagnostic
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Message    string         `json:"message,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorEnvelope maps any error to status + envelope
func errorEnvelope(err error, reqID string) (int, Envelope) {
	status := perr.HTTPStatus(err)
	wr := perr.WireFrom(err)
	return status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		Code:       wr.Code,
		Message:    wr.Message,
		Error:      wr.Detail,
		Field:      wr.Field,
		RequestID:  reqID,
	}
}

//
// Effectful helpers (Respond*) for classic handlers
//

// RespondEmpty writes a bare 200 with no body (preflight style replies)
func RespondEmpty(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	w.WriteHeader(stdhttp.StatusOK)
}

// RespondError maps a project error into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := errorEnvelope(err, lumnet.RequestID(r.Context()))
	JSON(w, status, env)
}

// NotFound is the router fallback for unmatched paths
func NotFound(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	RespondError(w, r, perr.NotFoundf("not found"))
}

// MethodNotAllowed is the router fallback for a known path hit with an unserved verb
func MethodNotAllowed(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	RespondError(w, r, perr.MethodNotAllowedf("method not allowed"))
}

//
// Return-style helpers for early returns in handlers
//

// Response is a functional response object for return-style handlers
type Response struct {
	Status  int
	Message string
	Body    any
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}

	reqID := lumnet.RequestID(r.Context())

	// an error body decides the status itself
	if err, ok := resp.Body.(error); ok && err != nil {
		st, env := errorEnvelope(err, reqID)
		JSON(w, st, env)
		return
	}

	JSON(w, status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		Message:    resp.Message,
		RequestID:  reqID,
		Data:       resp.Body,
	})
}

// WithMessage sets the caller-facing message on a success response
func (resp Response) WithMessage(msg string) Response {
	resp.Message = msg
	return resp
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }

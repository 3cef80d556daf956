package middleware

import (
	stdjson "encoding/json"
	stdhttp "net/http"
	"runtime/debug"

	perr "patchgate/internal/platform/errors"
	"patchgate/internal/platform/logger"
	pnet "patchgate/internal/platform/net"
)

// errorWire mirrors the response envelope for errors written before a handler runs
type errorWire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Message    string         `json:"message"`
	RequestID  string         `json:"request_id,omitempty"`
}

func writeError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status := perr.HTTPStatus(err)
	wr := perr.WireFrom(err)
	reqID := pnet.RequestID(r.Context())
	if reqID != "" {
		w.Header().Set("X-Request-ID", reqID)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = stdjson.NewEncoder(w).Encode(errorWire{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		Code:       wr.Code,
		Message:    wr.Message,
		RequestID:  reqID,
	})
}

// RecoverJSON converts panics into a JSON 500 and logs stack with request id
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Str("stack", string(debug.Stack())).
				Msg("panic recovered")

			writeError(w, r, perr.PanicErrf("internal server error"))
		}()
		next.ServeHTTP(w, r)
	})
}

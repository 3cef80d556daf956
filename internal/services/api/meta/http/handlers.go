// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"patchgate/internal/core/version"
	"patchgate/internal/modkit/httpkit"
)

// Credential is satisfied by modules that can say whether their secret is configured
type Credential interface {
	Configured() bool
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Dispatch    Credential
	Now         func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"patchgate-api"`
	Started string `json:"started"  example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"github_token"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"not configured"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"patchgate-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Readiness probe, reports whether dispatch can authenticate
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	tok := ReadyCheck{Name: "github_token", Status: "skipped"}
	if h.deps.Dispatch != nil {
		tok.Status = "ok"
		if !h.deps.Dispatch.Configured() {
			tok.Status, tok.Error = "fail", "not configured"
		}
	}

	overall := "ok"
	if tok.Status == "fail" {
		overall = "fail"
	}
	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{tok},
		Now:    h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.deps.Now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

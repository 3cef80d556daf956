// Package module wires dispatch into the API using modkit
package module

import (
	"net/http"

	gh "patchgate/internal/adapters/github"
	modkit "patchgate/internal/modkit"
	"patchgate/internal/modkit/httpkit"
	"patchgate/internal/modkit/swaggerkit"

	dhttp "patchgate/internal/services/api/dispatch/http"
	dsvc "patchgate/internal/services/api/dispatch/service"
)

// Module implements the dispatch API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc dsvc.Service
}

// New constructs the dispatch module from config
// a missing token does not stop the process, dispatch fails closed and readiness reports it
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("dispatch"),
		modkit.WithPrefix("/patch"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	log := deps.Logger("dispatch")

	ghc := gh.NewClient(gh.Options{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
		Token:     cfg.Token,
	})
	if !ghc.HasToken() {
		log.Warn().Msg("GH_TOKEN not set, dispatch requests will fail until it is configured")
	}

	svc := dsvc.New(ghDispatcher{c: ghc, owner: cfg.Owner, repo: cfg.Repo}, dsvc.Options{
		Configured: ghc.HasToken,
		Ref:        cfg.Ref,
		Default:    cfg.Workflow,
		Targets:    cfg.Workflows,
	})

	log.Info().
		Str("owner", cfg.Owner).
		Str("repo", cfg.Repo).
		Str("workflow", cfg.Workflow).
		Str("ref", cfg.Ref).
		Strs("targets", svc.Targets().Names).
		Dur("timeout", cfg.Timeout).
		Msg("dispatch configured")

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Readiness: adaptReadiness{svc: svc}}

	var limit func(http.Handler) http.Handler
	if cfg.SubmitRPS > 0 {
		limit = httpkit.RateLimit(cfg.SubmitRPS, cfg.SubmitBurst)
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		dhttp.Register(r, m.svc, limit)
		external(r)
	}

	swaggerkit.Register(func(spec map[string]any) {
		spec["x-dispatch-targets"] = svc.Targets().Names
	})
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		rr.NotFound(httpkit.NotFound)
		rr.MethodNotAllowed(httpkit.MethodNotAllowed)
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		m.register(rr)
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }

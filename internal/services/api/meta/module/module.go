// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	modkit "patchgate/internal/modkit"
	"patchgate/internal/modkit/httpkit"
	str "patchgate/internal/platform/strings"

	metahttp "patchgate/internal/services/api/meta/http"
)

// Ports declares what meta accepts from other modules, all optional
type Ports struct {
	Dispatch metahttp.Credential
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	injected, _ := modkit.PortsAs[Ports](b)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		startedAt: time.Now(),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: deps.Cfg.MayString("SERVICE_NAME", "patchgate-api"),
			StartedAt:   m.startedAt,
			Dispatch:    injected.Dispatch,
		})
		external(r)
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		m.register(rr)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }

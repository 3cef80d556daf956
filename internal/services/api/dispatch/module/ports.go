package module

import (
	"patchgate/internal/services/api/dispatch/domain"
	dsvc "patchgate/internal/services/api/dispatch/service"
)

// Ports is what the dispatch module offers other modules
type Ports struct {
	Readiness domain.Readiness
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptReadiness exposes only the credential presence, never the credential
type adaptReadiness struct{ svc dsvc.Service }

func (a adaptReadiness) Configured() bool { return a.svc.Configured() }

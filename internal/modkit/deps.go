// Package modkit provides module wiring and core deps
package modkit

import (
	"patchgate/internal/platform/config"
	"patchgate/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
}

// Logger returns Log or a component logger named after the module when unset
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		ll := d.Log.With().Str("component", component).Logger()
		return &ll
	}
	return logger.Named(component)
}

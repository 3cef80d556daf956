// Package api provides the HTTP API for the application
package api

import (
	"time"

	"patchgate/internal/platform/config"
	"patchgate/internal/platform/logger"
	phttp "patchgate/internal/platform/net/http"

	"patchgate/internal/modkit"
	"patchgate/internal/modkit/httpkit"
	"patchgate/internal/modkit/module"
	"patchgate/internal/modkit/swaggerkit"

	"patchgate/internal/services/api/dispatch/domain"
	dispatchmod "patchgate/internal/services/api/dispatch/module"
	metamod "patchgate/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
		Log: opt.Logger,
	}

	// dispatch owns the credential; meta only learns whether it is set
	dispatch := dispatchmod.New(deps)
	ready := module.MustPortsOf[domain.Readiness](dispatch)

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Dispatch: ready})),
		dispatch,
	}

	swaggerkit.Mount(r, swaggerkit.Options{
		Enabled:     opt.EnableSwagger,
		TitleSuffix: opt.Config.MayString("DOCS_TITLE_SUFFIX", ""),
	})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	stack := httpkit.CommonStack(httpkit.StackOptions{
		Origins: opt.Config.MayCSV("CORS_ORIGINS", nil),
		Timeout: opt.Config.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		Slow:    opt.Config.MayDuration("SLOW_REQUEST", 2*time.Second),
	})

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name for cross-module lookups
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}

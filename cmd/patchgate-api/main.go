// @title         patchgate API
// @version       1.0
// @description   Forwards patch form submissions to a GitHub Actions workflow_dispatch

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"patchgate/internal/platform/config"
	"patchgate/internal/platform/logger"
	phttp "patchgate/internal/platform/net/http"

	"patchgate/internal/services/api"
)

func main() {
	// .env first so LOG_* and CORE_API_* see it
	if err := config.LoadDotenv(); err != nil {
		logger.Get().Warn().Err(err).Msg("failed to load .env")
	}

	// bring up logging early
	l := logger.Get()

	// service-scoped config (CORE_API_*)
	apiCfg := config.New().Prefix("CORE_API_")

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}

package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"patchgate/internal/platform/config"
	"patchgate/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	addr  string
	grace time.Duration
	mux   *chi.Mux
	srv   *stdhttp.Server
}

// NewServer creates an http server reading API_PORT and SHUTDOWN_GRACE from cfg
// opts receive the *chi.Mux so callers can mount routes/mw
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayAddr("API_PORT", ":4000")
	m := chi.NewRouter()
	m.NotFound(NotFound)
	m.MethodNotAllowed(MethodNotAllowed)
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr:  addr,
		grace: cfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
		mux:   m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router {
	return AdaptChi(s.mux)
}

// Addr returns the configured listening address
func (s *Server) Addr() string { return s.addr }

// Run listens and serves until ctx is cancelled, then drains in-flight requests for the grace period
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	g, gctx := errgroup.WithContext(ctx)
	stopped := make(chan struct{})

	g.Go(func() error {
		defer close(stopped)
		if err := s.srv.Serve(ln); !errors.Is(err, stdhttp.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-stopped:
			return nil
		case <-gctx.Done():
		}
		log.Info().Dur("grace", s.grace).Msg("http shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), s.grace)
		defer cancel()
		return s.srv.Shutdown(sctx)
	})

	return g.Wait()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

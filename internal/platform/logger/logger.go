// Package logger provides a zerolog wrapper with opinionated defaults and
// request-scoped logging support
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"patchgate/internal/platform/config/raw"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Options configures the logger
type Options struct {
	Level        string
	Format       string
	Service      string
	Writer       io.Writer
	WithCaller   bool
	StaticFields map[string]string
}

// FromEnv builds Options using the logging-free raw config view
func FromEnv() Options {
	rc := raw.New().Prefix("LOG_")
	return Options{
		Level:      strings.ToLower(rc.Get("LEVEL", "info")),
		Format:     strings.ToLower(rc.Get("FORMAT", "console")),
		Service:    rc.Get("SERVICE", "patchgate-api"),
		WithCaller: rc.GetBool("CALLER", false),
	}
}

var (
	once   sync.Once
	root   atomic.Pointer[zerolog.Logger]
	inited atomic.Bool
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Get returns the process-wide root logger
func Get() *Logger {
	if !inited.Load() {
		Init(FromEnv())
	}
	return root.Load()
}

// Init configures zerolog and builds the root logger, only the first call wins
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		var w io.Writer = os.Stdout
		if opt.Writer != nil {
			w = opt.Writer
		}
		if opt.Format == "console" {
			w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		}

		ctx := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			ctx = ctx.Str("go_version", bi.GoVersion)
		}
		if opt.Service != "" {
			ctx = ctx.Str("service", opt.Service)
		}
		for k, v := range opt.StaticFields {
			ctx = ctx.Str(k, v)
		}

		log := ctx.Logger()
		if opt.WithCaller {
			log = log.With().Caller().Logger()
		}

		root.Store(&log)
		inited.Store(true)
	})
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}

type ctxKey struct{ name string }

var keyRequestID = ctxKey{"req_id"}

// WithRequest annotates ctx with the request id for later C(ctx) calls
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, reqID)
}

// C returns a child logger enriched with the request id found on ctx
// falls back to the chi request id set by the RequestID middleware
func C(ctx context.Context) *Logger {
	id, _ := ctx.Value(keyRequestID).(string)
	if id == "" {
		id = chimw.GetReqID(ctx)
	}
	if id == "" {
		return Get()
	}
	ll := Get().With().Str("request_id", id).Logger()
	return &ll
}

// Named returns a child logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	ll := Get().With().Str("component", component).Logger()
	return &ll
}

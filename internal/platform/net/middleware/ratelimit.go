package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	perr "patchgate/internal/platform/errors"
	"patchgate/internal/platform/logger"
	pnet "patchgate/internal/platform/net"

	"golang.org/x/time/rate"
)

// RateLimitOptions configures a per-client token bucket
type RateLimitOptions struct {
	// RPS is the sustained rate per client, <= 0 disables limiting
	RPS float64
	// Burst is the bucket size, defaults to 1
	Burst int
	// Idle evicts a client's bucket after this long without requests, defaults to 10m
	Idle time.Duration
	// Key picks the client identity, defaults to the client ip
	Key func(*http.Request) string
}

type clientBucket struct {
	lim  *rate.Limiter
	seen time.Time
}

type limiterSet struct {
	mu      sync.Mutex
	opt     RateLimitOptions
	clients map[string]*clientBucket
	swept   time.Time
	now     func() time.Time
}

func (s *limiterSet) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.swept) >= s.opt.Idle {
		for k, b := range s.clients {
			if now.Sub(b.seen) >= s.opt.Idle {
				delete(s.clients, k)
			}
		}
		s.swept = now
	}

	b, ok := s.clients[key]
	if !ok {
		b = &clientBucket{lim: rate.NewLimiter(rate.Limit(s.opt.RPS), s.opt.Burst)}
		s.clients[key] = b
	}
	b.seen = now
	return b.lim
}

// RateLimit rejects requests over the per-client budget with 429 and Retry-After
func RateLimit(o RateLimitOptions) func(http.Handler) http.Handler {
	if o.RPS <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if o.Burst <= 0 {
		o.Burst = 1
	}
	if o.Idle <= 0 {
		o.Idle = 10 * time.Minute
	}
	if o.Key == nil {
		o.Key = pnet.ClientIP
	}
	set := &limiterSet{opt: o, clients: map[string]*clientBucket{}, now: time.Now}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// preflights never count against the budget
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			key := o.Key(r)
			lim := set.get(key)
			if res := lim.Reserve(); res.OK() {
				if d := res.Delay(); d > 0 {
					res.Cancel()
					w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(d.Seconds()))))
					logger.C(r.Context()).Warn().Str("client", key).Dur("retry_after", d).Msg("rate limited")
					writeError(w, r, perr.TooManyf("too many requests"))
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

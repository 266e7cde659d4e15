package httpx

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginLimiterConfig configures LoginLimiter.
type LoginLimiterConfig struct {
	// PerMinute is the sustained number of attempts allowed per client.
	PerMinute int
	Burst     int
	// IdleTTL drops limiter state for clients idle this long.
	IdleTTL time.Duration
	// TrustProxy keys clients by the first X-Forwarded-For hop.
	TrustProxy bool
	Now        func() time.Time
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// LoginLimiter throttles credential submissions per client address.
type LoginLimiter struct {
	mu        sync.Mutex
	clients   map[string]*limiterEntry
	cfg       LoginLimiterConfig
	lastSweep time.Time
}

// NewLoginLimiter constructs a LoginLimiter. Zero values fall back to 5/min with a burst of 5.
func NewLoginLimiter(cfg LoginLimiterConfig) *LoginLimiter {
	if cfg.PerMinute <= 0 {
		cfg.PerMinute = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.PerMinute
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 10 * time.Minute
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &LoginLimiter{clients: map[string]*limiterEntry{}, cfg: cfg, lastSweep: cfg.Now()}
}

// Allow reports whether the client behind r may submit credentials now.
// A nil limiter allows everything.
func (l *LoginLimiter) Allow(r *http.Request) bool {
	if l == nil {
		return true
	}
	now := l.cfg.Now()
	key := l.clientKey(r)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.sweepLocked(now)

	e, ok := l.clients[key]
	if !ok {
		e = &limiterEntry{lim: rate.NewLimiter(rate.Limit(float64(l.cfg.PerMinute)/60), l.cfg.Burst)}
		l.clients[key] = e
	}
	e.lastSeen = now
	return e.lim.AllowN(now, 1)
}

// Len returns the number of tracked clients.
func (l *LoginLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *LoginLimiter) sweepLocked(now time.Time) {
	if now.Sub(l.lastSweep) < l.cfg.IdleTTL {
		return
	}
	l.lastSweep = now
	for k, e := range l.clients {
		if now.Sub(e.lastSeen) >= l.cfg.IdleTTL {
			delete(l.clients, k)
		}
	}
}

func (l *LoginLimiter) clientKey(r *http.Request) string {
	if l.cfg.TrustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

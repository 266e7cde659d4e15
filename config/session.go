package config

import (
	"strings"
	"time"
)

// SessionStoreKind selects the session store backend.
type SessionStoreKind string

const (
	SessionStoreRedis  SessionStoreKind = "redis"
	SessionStoreMemory SessionStoreKind = "memory"
)

// SessionConfig controls browser sessions and how they settle.
type SessionConfig struct {
	// Store is redis (shared, survives restarts) or memory (development, tests).
	Store SessionStoreKind `env:"SESSION_STORE" envDefault:"redis"`

	// TTL is used when the access token carries no readable expiry.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// SettleWait bounds how long a request waits for a concurrent settle.
	SettleWait time.Duration `env:"SESSION_SETTLE_WAIT" envDefault:"3s"`

	// RevalidateAfter is how old a validated identity may get before the
	// profile is fetched again.
	RevalidateAfter time.Duration `env:"SESSION_REVALIDATE_AFTER" envDefault:"5m"`

	ValidateTimeout time.Duration `env:"SESSION_VALIDATE_TIMEOUT" envDefault:"5s"`

	KeyPrefix  string `env:"SESSION_KEY_PREFIX"  envDefault:"internhub:session:"`
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session_id"`

	// SweepInterval is how often expired sessions are purged from the memory store.
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

// Sanitize normalises the store kind and restores defaults for non-positive durations.
func (c *SessionConfig) Sanitize() {
	switch SessionStoreKind(strings.ToLower(strings.TrimSpace(string(c.Store)))) {
	case SessionStoreMemory:
		c.Store = SessionStoreMemory
	default:
		c.Store = SessionStoreRedis
	}
	if c.TTL <= 0 {
		c.TTL = 24 * time.Hour
	}
	if c.SettleWait <= 0 {
		c.SettleWait = 3 * time.Second
	}
	if c.RevalidateAfter <= 0 {
		c.RevalidateAfter = 5 * time.Minute
	}
	if c.ValidateTimeout <= 0 {
		c.ValidateTimeout = 5 * time.Second
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = time.Minute
	}
	c.CookieName = strings.TrimSpace(c.CookieName)
	if c.CookieName == "" {
		c.CookieName = "session_id"
	}
}

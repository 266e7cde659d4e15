package config

import "time"

// ViewCacheConfig bounds the in-memory per-session view state.
type ViewCacheConfig struct {
	Capacity int           `env:"VIEW_CACHE_CAPACITY" envDefault:"2048"`
	TTL      time.Duration `env:"VIEW_CACHE_TTL"      envDefault:"15m"`
}

// Sanitize restores defaults for non-positive values.
func (c *ViewCacheConfig) Sanitize() {
	if c.Capacity <= 0 {
		c.Capacity = 2048
	}
	if c.TTL <= 0 {
		c.TTL = 15 * time.Minute
	}
}

// LoginRateConfig limits sign-in and registration attempts per client.
type LoginRateConfig struct {
	PerMinute int `env:"LOGIN_RATE_PER_MINUTE" envDefault:"5"`
	Burst     int `env:"LOGIN_RATE_BURST"      envDefault:"5"`

	// TrustProxy keys clients by the first X-Forwarded-For hop. Only enable
	// behind a proxy that overwrites the header.
	TrustProxy bool `env:"LOGIN_RATE_TRUST_PROXY" envDefault:"false"`
}

// Sanitize restores defaults; burst never drops below one attempt.
func (c *LoginRateConfig) Sanitize() {
	if c.PerMinute <= 0 {
		c.PerMinute = 5
	}
	if c.Burst <= 0 {
		c.Burst = c.PerMinute
	}
}

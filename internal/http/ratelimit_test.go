package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/internhub/marketplace-web/internal/testutil"
)

func requestFrom(addr, xff string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.RemoteAddr = addr
	if xff != "" {
		r.Header.Set("X-Forwarded-For", xff)
	}
	return r
}

func TestLoginLimiter_BurstThenRefill(t *testing.T) {
	clock := testutil.NewTestTimeProvider(testutil.TestTime())
	l := NewLoginLimiter(LoginLimiterConfig{PerMinute: 6, Burst: 2, Now: clock.Now})

	r := requestFrom("10.0.0.1:5555", "")
	assert.True(t, l.Allow(r))
	assert.True(t, l.Allow(r))
	assert.False(t, l.Allow(r), "burst exhausted")

	assert.True(t, l.Allow(requestFrom("10.0.0.2:1", "")), "other clients unaffected")

	clock.AddTime(10 * time.Second)
	assert.True(t, l.Allow(r), "one token per 10s at 6/min")
	assert.False(t, l.Allow(r))
}

func TestLoginLimiter_ProxyKey(t *testing.T) {
	l := NewLoginLimiter(LoginLimiterConfig{PerMinute: 1, Burst: 1, TrustProxy: true})

	assert.True(t, l.Allow(requestFrom("127.0.0.1:1", "203.0.113.9, 10.0.0.1")))
	assert.False(t, l.Allow(requestFrom("127.0.0.1:2", "203.0.113.9")))
	assert.True(t, l.Allow(requestFrom("127.0.0.1:3", "198.51.100.7")))
}

func TestLoginLimiter_SweepsIdleClients(t *testing.T) {
	clock := testutil.NewTestTimeProvider(testutil.TestTime())
	l := NewLoginLimiter(LoginLimiterConfig{IdleTTL: time.Minute, Now: clock.Now})

	l.Allow(requestFrom("10.0.0.1:1", ""))
	l.Allow(requestFrom("10.0.0.2:1", ""))
	assert.Equal(t, 2, l.Len())

	clock.AddTime(2 * time.Minute)
	l.Allow(requestFrom("10.0.0.3:1", ""))
	assert.Equal(t, 1, l.Len())
}

func TestLoginLimiter_NilAllows(t *testing.T) {
	var l *LoginLimiter
	assert.True(t, l.Allow(requestFrom("10.0.0.1:1", "")))
}

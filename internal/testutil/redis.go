package testutil

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisDialTimeout = 2 * time.Second
	redisLeaseTTL    = 30 * time.Minute
	redisLeasePrefix = "internhub:testutil:lease:"
	maxRedisDB       = 15
)

// redisCandidates lists the addresses tried when REDIS_ADDR is unset:
// the compose service, a local default, then TEST_REDIS_ADDR.
func redisCandidates() []string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return []string{addr}
	}
	return []string{"redis:6379", "localhost:6379", envOr("TEST_REDIS_ADDR", "localhost:56379")}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

// redisRequired turns a missing Redis into a failure instead of a skip.
func redisRequired() bool {
	return envBool("TEST_REQUIRE_REDIS") || envBool("TEST_REQUIRE_INFRA")
}

func pingRedis(addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// findRedis returns the first reachable address.
func findRedis(t testing.TB) (string, bool) {
	t.Helper()
	for _, addr := range redisCandidates() {
		client, err := pingRedis(addr, 0)
		if err != nil {
			t.Logf("redis unreachable at %s: %v", addr, err)
			continue
		}
		_ = client.Close()
		return addr, true
	}
	return "", false
}

// leaseRedisDB picks a logical database so packages running in parallel
// never flush each other's keys. Leases live in DB 0 and are released on cleanup.
func leaseRedisDB(t testing.TB, control *redis.Client) int {
	t.Helper()
	if v := os.Getenv("TEST_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil && db >= 0 {
			return db
		}
		t.Logf("ignoring invalid TEST_REDIS_DB=%q", v)
	}

	owner := fmt.Sprintf("%d:%d", os.Getpid(), time.Now().UnixNano())
	for db := 1; db <= maxRedisDB; db++ {
		key := redisLeasePrefix + strconv.Itoa(db)
		ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
		won, err := control.SetNX(ctx, key, owner, redisLeaseTTL).Result()
		cancel()
		if err != nil || !won {
			continue
		}
		t.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
			defer cancel()
			if err := control.Del(ctx, key).Err(); err != nil {
				t.Logf("release redis lease %s: %v", key, err)
			}
		})
		return db
	}
	t.Logf("no free redis database, sharing DB 1")
	return 1
}

// SetupTestRedis returns a client on an empty database. The test is skipped
// when Redis is unreachable unless TEST_REQUIRE_REDIS or TEST_REQUIRE_INFRA is set.
func SetupTestRedis(t testing.TB) *redis.Client {
	t.Helper()

	unavailable := func(format string, args ...any) {
		if redisRequired() {
			t.Fatalf(format, args...)
		}
		t.Skipf(format, args...)
	}

	addr, ok := findRedis(t)
	if !ok {
		unavailable("redis not available for session store tests")
	}

	control, err := pingRedis(addr, 0)
	if err != nil {
		unavailable("redis at %s went away: %v", addr, err)
	}
	t.Cleanup(func() { _ = control.Close() })

	db := leaseRedisDB(t, control)
	client, err := pingRedis(addr, db)
	if err != nil {
		unavailable("redis DB %d at %s: %v", db, addr, err)
	}
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("flush redis DB %d: %v", db, err)
	}
	t.Logf("using redis DB %d at %s", db, addr)
	return client
}

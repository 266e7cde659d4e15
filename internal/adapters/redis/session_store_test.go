package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	"github.com/internhub/marketplace-web/internal/ports"
	"github.com/internhub/marketplace-web/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func signedIn(id string, seq uint64) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		Token:     "tok-" + id,
		Identity:  &domainauth.Identity{ID: 3, Name: "Student", Email: "s@example.com", Role: domainauth.RoleStudent},
		Settled:   true,
		Seq:       seq,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
}

func TestSessionStore_CommitAndGet(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := signedIn("test-session-1", 1)
	require.NoError(t, store.Commit(ctx, session))

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
	assert.Equal(t, session.Token, retrieved.Token)
	require.NotNil(t, retrieved.Identity)
	assert.Equal(t, domainauth.RoleStudent, retrieved.Identity.Role)
	assert.WithinDuration(t, session.ExpiresAt, retrieved.ExpiresAt, time.Second)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)

	_, err := store.Get(context.Background(), "non-existent")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	_, err = store.Get(context.Background(), "")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_NextSeqIsMonotonic(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	var prev uint64
	for range 5 {
		n, err := store.NextSeq(ctx, "seq-session")
		require.NoError(t, err)
		assert.Greater(t, n, prev)
		prev = n
	}
}

func TestSessionStore_StaleCommitRejected(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Commit(ctx, signedIn("cas", 5)))

	stale := signedIn("cas", 4)
	stale.Token = "older"
	assert.ErrorIs(t, store.Commit(ctx, stale), ports.ErrStaleWrite)

	got, err := store.Get(ctx, "cas")
	require.NoError(t, err)
	assert.Equal(t, "tok-cas", got.Token)

	cleared := signedIn("cas", 6).Cleared()
	require.NoError(t, store.Commit(ctx, cleared))
	got, err = store.Get(ctx, "cas")
	require.NoError(t, err)
	assert.False(t, got.TokenPresent())
}

func TestSessionStore_ConcurrentCommitsKeepHighestSeq(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		highest uint64
	)
	for i := uint64(1); i <= 20; i++ {
		wg.Add(1)
		go func(seq uint64) {
			defer wg.Done()
			if err := store.Commit(ctx, signedIn("race", seq)); err == nil {
				mu.Lock()
				highest = max(highest, seq)
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	got, err := store.Get(ctx, "race")
	require.NoError(t, err)
	assert.Equal(t, highest, got.Seq, "the highest successful commit must be the stored one")
}

func TestSessionStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Commit(ctx, signedIn("test-session-delete", 1)))
	require.NoError(t, store.Delete(ctx, "test-session-delete"))

	_, err := store.Get(ctx, "test-session-delete")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
	assert.NoError(t, store.Delete(ctx, ""))
}

func TestSessionStore_TTLExpiration(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := signedIn("test-session-ttl", 1)
	session.ExpiresAt = time.Now().Add(100 * time.Millisecond)
	require.NoError(t, store.Commit(ctx, session))

	time.Sleep(200 * time.Millisecond)

	_, err := store.Get(ctx, "test-session-ttl")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_CustomPrefix(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStoreWithPrefix(client, "test-prefix:")
	ctx := context.Background()

	require.NoError(t, store.Commit(ctx, signedIn("prefix-test", 1)))

	exists := client.Exists(ctx, "test-prefix:{prefix-test}").Val()
	assert.Equal(t, int64(1), exists)

	retrieved, err := store.Get(ctx, "prefix-test")
	require.NoError(t, err)
	assert.Equal(t, "prefix-test", retrieved.ID)
}

func TestSessionStore_CommitRejectsInvalid(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	err := store.Commit(ctx, signedIn("", 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session ID cannot be empty")

	expired := signedIn("expired-session", 1)
	expired.ExpiresAt = time.Now().Add(-time.Hour)
	err = store.Commit(ctx, expired)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session is expired")
}

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	"github.com/internhub/marketplace-web/internal/ports"
)

func TestMemorySessionStore_CommitRespectsSeq(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	_, err := store.Get(ctx, "s1")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)

	first, _ := store.NextSeq(ctx, "s1")
	second, _ := store.NextSeq(ctx, "s1")
	require.Greater(t, second, first)

	require.NoError(t, store.Commit(ctx, domainauth.Session{ID: "s1", Seq: second, Token: "new"}))
	assert.ErrorIs(t, store.Commit(ctx, domainauth.Session{ID: "s1", Seq: first, Token: "old"}), ports.ErrStaleWrite)

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Token)
}

func TestStaticProfiles(t *testing.T) {
	p := NewStaticProfiles(map[string]domainauth.Identity{"t": {ID: 1, Role: domainauth.RoleStudent}})

	id, err := p.Profile(context.Background(), "t")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.ID)

	_, err = p.Profile(context.Background(), "other")
	assert.ErrorIs(t, err, ErrUnknownToken)
	assert.Equal(t, 2, p.CallCount())
}

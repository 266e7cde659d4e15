package httpx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	"github.com/internhub/marketplace-web/internal/testutil"
)

func TestGetUserSessionFromContext(t *testing.T) {
	_, ok := GetUserSessionFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, SessionIDFromContext(context.Background()))

	sess := testutil.SignedInSession("abc", domainauth.RoleStudent)
	ctx := SetSessionInContext(context.Background(), sess)
	s, ok := GetUserSessionFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, sess, s)
	assert.Equal(t, "abc", SessionIDFromContext(ctx))
}

func TestIsAnonymous(t *testing.T) {
	assert.True(t, IsAnonymous(context.Background()))
	assert.True(t, IsAnonymous(SetSessionInContext(context.Background(), testutil.AnonymousSession("a"))))

	org := SetSessionInContext(context.Background(), testutil.SignedInSession("o", domainauth.RoleOrganisation))
	assert.False(t, IsAnonymous(org))
	assert.Equal(t, domainauth.RoleOrganisation, CurrentRole(org))
}

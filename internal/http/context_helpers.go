package httpx

import (
	"context"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type sessionKey struct{}

// SetSessionInContext returns a child context that carries the given session.
func SetSessionInContext(ctx context.Context, session domainauth.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetUserSessionFromContext returns the session from context and a boolean indicating presence.
func GetUserSessionFromContext(ctx context.Context) (domainauth.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(domainauth.Session)
	return s, ok
}

// GetSessionFromContext retrieves the session from the request context.
// A request that never passed the session middleware yields an empty session.
func GetSessionFromContext(ctx context.Context) domainauth.Session {
	s, _ := GetUserSessionFromContext(ctx)
	return s
}

// SessionIDFromContext returns the cookie id of the current session, or "".
func SessionIDFromContext(ctx context.Context) string {
	return GetSessionFromContext(ctx).ID
}

// IsAnonymous reports whether the current request carries no signed-in identity.
func IsAnonymous(ctx context.Context) bool {
	return !GetSessionFromContext(ctx).IsAuthenticated()
}

// CurrentRole returns the signed-in role or "".
func CurrentRole(ctx context.Context) domainauth.Role {
	return GetSessionFromContext(ctx).Role()
}

package ports

// Package ports defines interfaces (hexagonal ports) for session and marketplace behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
)

var (
	// ErrSessionNotFound is returned by SessionStore.Get for unknown or expired sessions.
	ErrSessionNotFound = errors.New("session not found")
	// ErrStaleWrite is returned by SessionStore.Commit when a write with a higher sequence already landed.
	ErrStaleWrite = errors.New("session write superseded")
)

// SessionStore persists server-side sessions with compare-and-set commits.
type SessionStore interface {
	Get(ctx context.Context, id string) (domainauth.Session, error)
	// NextSeq issues the next operation sequence number for a session.
	NextSeq(ctx context.Context, id string) (uint64, error)
	// Commit stores sess unless a session with a higher Seq is already stored.
	Commit(ctx context.Context, sess domainauth.Session) error
	Delete(ctx context.Context, id string) error
}

// ProfileFetcher resolves the identity behind an access token.
type ProfileFetcher interface {
	Profile(ctx context.Context, token string) (domainauth.Identity, error)
}

// Authenticator exchanges credentials for an access token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, in RegisterInput) (string, error)
}

// RegisterInput carries the self-registration fields sent upstream.
type RegisterInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
	Role        domainauth.Role
}

type accessTokenKey struct{}

// WithAccessToken returns a context carrying the bearer token for outbound marketplace calls.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFrom returns the bearer token carried by ctx, if any.
func AccessTokenFrom(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(accessTokenKey{}).(string)
	return tok, ok && tok != ""
}

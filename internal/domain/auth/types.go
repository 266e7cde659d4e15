package auth

// Package auth contains domain-level types for identities, sessions and view access.
// It is pure and free of framework/adapter concerns.

import (
	"slices"
	"strings"
	"time"
)

// Role represents a marketplace account role.
// Keep string form for easy persistence and cookies.
type Role string

const (
	RoleStudent      Role = "student"
	RoleOrganisation Role = "organisation"
	RoleAdmin        Role = "admin"
)

// Valid reports whether the role is one the marketplace issues.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleOrganisation, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole normalizes a role string and reports whether it is supported.
func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	if role.Valid() {
		return role, true
	}
	return "", false
}

// HomePath is where a freshly logged-in identity lands.
func (r Role) HomePath() string {
	switch r {
	case RoleOrganisation:
		return "/org"
	case RoleAdmin:
		return "/admin"
	default:
		return "/"
	}
}

// RoleSet is an allow-list of roles.
type RoleSet []Role

// Roles builds a RoleSet.
func Roles(roles ...Role) RoleSet { return RoleSet(roles) }

// Contains reports whether r is in the set.
func (s RoleSet) Contains(r Role) bool { return slices.Contains(s, r) }

// Identity is the authenticated marketplace user as returned by the profile endpoint.
type Identity struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        Role   `json:"role"`
	Verified    bool   `json:"verified"`
}

// Session is the server-side record kept for one browser.
// ID is the opaque value of the session cookie; Token is the marketplace bearer token.
//
// Invariant: Identity != nil implies Token != "".
type Session struct {
	ID          string    `json:"id"`
	Token       string    `json:"token,omitempty"`
	Identity    *Identity `json:"identity,omitempty"`
	Settled     bool      `json:"settled"`
	Seq         uint64    `json:"seq"`
	ValidatedAt time.Time `json:"validated_at,omitzero"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// TokenPresent reports whether a bearer token is held.
func (s Session) TokenPresent() bool { return s.Token != "" }

// IsAuthenticated reports whether the session carries a known identity.
func (s Session) IsAuthenticated() bool { return s.Identity != nil && s.Token != "" }

// Role returns the identity's role, or "" when anonymous.
func (s Session) Role() Role {
	if s.Identity == nil {
		return ""
	}
	return s.Identity.Role
}

// Consistent reports whether the identity/token invariant holds.
// Once settled, a token must also come with an identity.
func (s Session) Consistent() bool {
	if s.Identity != nil && s.Token == "" {
		return false
	}
	if s.Settled && s.Token != "" && s.Identity == nil {
		return false
	}
	return true
}

// Cleared returns the session with token and identity removed and marked settled.
func (s Session) Cleared() Session {
	s.Token = ""
	s.Identity = nil
	s.Settled = true
	s.ValidatedAt = time.Time{}
	return s
}

// NeedsValidation reports whether the token should be re-checked against the profile endpoint.
func (s Session) NeedsValidation(now time.Time, maxAge time.Duration) bool {
	if s.Token == "" {
		return !s.Settled
	}
	if !s.Settled || s.Identity == nil || s.ValidatedAt.IsZero() {
		return true
	}
	return maxAge > 0 && now.Sub(s.ValidatedAt) >= maxAge
}

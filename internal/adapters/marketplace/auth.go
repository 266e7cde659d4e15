package marketplace

import (
	"context"
	"net/http"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	apperrors "github.com/internhub/marketplace-web/internal/errors"
	"github.com/internhub/marketplace-web/internal/ports"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token"`
}

func (t tokenResponse) value() string {
	if t.AccessToken != "" {
		return t.AccessToken
	}
	return t.Token
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	err := c.do(anonymous(ctx), request{
		op:     "auth.login",
		method: http.MethodPost,
		path:   "/auth/login",
		body:   map[string]string{"email": email, "password": password},
	}, &out)
	if err != nil {
		return "", err
	}
	if out.value() == "" {
		return "", apperrors.New(apperrors.ErrCodeInternal, "Login did not return an access token.")
	}
	return out.value(), nil
}

// Register creates an account and returns its access token.
// The token is read from access_token, falling back to token.
func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (string, error) {
	var out tokenResponse
	err := c.do(anonymous(ctx), request{
		op:     "auth.register",
		method: http.MethodPost,
		path:   "/auth/register",
		body: map[string]string{
			"name":        in.Name,
			"email":       in.Email,
			"phoneNumber": in.PhoneNumber,
			"password":    in.Password,
			"role":        string(in.Role),
		},
	}, &out)
	if err != nil {
		return "", err
	}
	if out.value() == "" {
		return "", apperrors.New(apperrors.ErrCodeInternal, "Registration did not return an access token.")
	}
	return out.value(), nil
}

// Profile fetches the identity behind token.
func (c *Client) Profile(ctx context.Context, token string) (domainauth.Identity, error) {
	var id domainauth.Identity
	err := c.do(ports.WithAccessToken(ctx, token), request{
		op:     "users.profile",
		method: http.MethodGet,
		path:   "/users/profile",
	}, &id)
	if err != nil {
		return domainauth.Identity{}, err
	}
	if role, ok := domainauth.ParseRole(string(id.Role)); ok {
		id.Role = role
	}
	return id, nil
}

// anonymous strips any bearer token from ctx.
func anonymous(ctx context.Context) context.Context {
	return ports.WithAccessToken(ctx, "")
}

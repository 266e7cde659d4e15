package marketplace

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/internhub/marketplace-web/internal/domain/model"
)

const usersPath = "/users"

// ListOrganisations lists organisation accounts, optionally filtered by verification.
func (c *Client) ListOrganisations(ctx context.Context, verified *bool) ([]model.User, error) {
	var query url.Values
	if verified != nil {
		query = url.Values{"verified": {strconv.FormatBool(*verified)}}
	}
	return list[model.User](ctx, c, request{
		op:     "users.list_organisations",
		method: http.MethodGet,
		path:   usersPath + "/organisations",
		query:  query,
	})
}

func (c *Client) UpdateUser(ctx context.Context, id int64, in model.UserUpdate) (model.User, error) {
	var out model.User
	err := c.do(ctx, request{
		op:     "users.update",
		method: http.MethodPatch,
		path:   idPath(usersPath, id),
		body:   in,
	}, &out)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, request{
		op:     "users.delete",
		method: http.MethodDelete,
		path:   idPath(usersPath, id),
	}, nil)
}

package marketplace

import (
	"context"
	"net/http"
	"net/url"

	"github.com/internhub/marketplace-web/internal/domain/model"
)

const internshipsPath = "/internships"

func (c *Client) ListInternships(ctx context.Context, q model.InternshipQuery) ([]model.Internship, error) {
	var query url.Values
	if q.Title != "" {
		query = url.Values{"title": {q.Title}}
	}
	return list[model.Internship](ctx, c, request{
		op:     "internships.list",
		method: http.MethodGet,
		path:   internshipsPath,
		query:  query,
	})
}

func (c *Client) GetInternship(ctx context.Context, id int64) (model.Internship, error) {
	var out model.Internship
	err := c.do(ctx, request{
		op:     "internships.get",
		method: http.MethodGet,
		path:   idPath(internshipsPath, id),
	}, &out)
	return out, err
}

func (c *Client) ListOwnInternships(ctx context.Context) ([]model.Internship, error) {
	return list[model.Internship](ctx, c, request{
		op:     "internships.list_own",
		method: http.MethodGet,
		path:   internshipsPath + "/organisation/own",
	})
}

func (c *Client) CreateInternship(ctx context.Context, in model.InternshipInput) (model.Internship, error) {
	var out model.Internship
	err := c.do(ctx, request{
		op:     "internships.create",
		method: http.MethodPost,
		path:   internshipsPath,
		body:   in,
	}, &out)
	return out, err
}

func (c *Client) UpdateInternship(ctx context.Context, id int64, in model.InternshipInput) (model.Internship, error) {
	var out model.Internship
	err := c.do(ctx, request{
		op:     "internships.update",
		method: http.MethodPatch,
		path:   idPath(internshipsPath, id),
		body:   in,
	}, &out)
	return out, err
}

func (c *Client) DeleteInternship(ctx context.Context, id int64) error {
	return c.do(ctx, request{
		op:     "internships.delete",
		method: http.MethodDelete,
		path:   idPath(internshipsPath, id),
	}, nil)
}

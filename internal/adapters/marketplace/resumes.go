package marketplace

import (
	"context"
	"net/http"

	"github.com/internhub/marketplace-web/internal/domain/model"
)

const resumesPath = "/resumes"

func (c *Client) MyResume(ctx context.Context) (model.Resume, error) {
	var out model.Resume
	err := c.do(ctx, request{
		op:     "resumes.mine",
		method: http.MethodGet,
		path:   resumesPath + "/student/my-resume",
	}, &out)
	return out, err
}

func (c *Client) GetResume(ctx context.Context, id int64) (model.Resume, error) {
	var out model.Resume
	err := c.do(ctx, request{
		op:     "resumes.get",
		method: http.MethodGet,
		path:   idPath(resumesPath, id),
	}, &out)
	return out, err
}

func (c *Client) CreateResume(ctx context.Context, in model.ResumeInput) (model.Resume, error) {
	var out model.Resume
	err := c.do(ctx, request{
		op:     "resumes.create",
		method: http.MethodPost,
		path:   resumesPath,
		body:   in,
	}, &out)
	return out, err
}

func (c *Client) UpdateResume(ctx context.Context, id int64, in model.ResumeInput) (model.Resume, error) {
	var out model.Resume
	err := c.do(ctx, request{
		op:     "resumes.update",
		method: http.MethodPatch,
		path:   idPath(resumesPath, id),
		body:   in,
	}, &out)
	return out, err
}

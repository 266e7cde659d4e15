package marketplace

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/internhub/marketplace-web/internal/domain/model"
)

const applicationsPath = "/applications"

func (c *Client) CreateApplication(ctx context.Context, internshipID int64) (model.Application, error) {
	var out model.Application
	err := c.do(ctx, request{
		op:     "applications.create",
		method: http.MethodPost,
		path:   applicationsPath,
		body:   map[string]int64{"internshipId": internshipID},
	}, &out)
	return out, err
}

// ListApplications lists applications for one internship: the caller's own
// for a student, the applicants for the owning organisation. Zero lists all visible.
func (c *Client) ListApplications(ctx context.Context, internshipID int64) ([]model.Application, error) {
	var query url.Values
	if internshipID > 0 {
		query = url.Values{"internshipId": {strconv.FormatInt(internshipID, 10)}}
	}
	return list[model.Application](ctx, c, request{
		op:     "applications.list",
		method: http.MethodGet,
		path:   applicationsPath,
		query:  query,
	})
}

func (c *Client) ListOwnApplications(ctx context.Context) ([]model.Application, error) {
	return list[model.Application](ctx, c, request{
		op:     "applications.list_own",
		method: http.MethodGet,
		path:   applicationsPath + "/student/own",
	})
}

func (c *Client) UpdateApplicationStatus(
	ctx context.Context,
	id int64,
	status model.ApplicationStatus,
) (model.Application, error) {
	var out model.Application
	err := c.do(ctx, request{
		op:     "applications.update_status",
		method: http.MethodPatch,
		path:   idPath(applicationsPath, id),
		body:   model.ApplicationStatusUpdate{Status: status},
	}, &out)
	return out, err
}

func (c *Client) ApplicationResume(ctx context.Context, id int64) (model.Resume, error) {
	var out model.Resume
	err := c.do(ctx, request{
		op:     "applications.resume",
		method: http.MethodGet,
		path:   idPath(applicationsPath, id, "resume"),
	}, &out)
	return out, err
}

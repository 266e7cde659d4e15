package service

import (
	"context"
	"slices"
	"strconv"

	"github.com/internhub/marketplace-web/internal/domain/model"
	"github.com/internhub/marketplace-web/internal/domain/resource"
	"github.com/internhub/marketplace-web/internal/ports"
)

const (
	ViewInternships      = "internships"
	ViewOwnInternships   = "org.internships"
	ViewAdminInternships = "admin.internships"
)

// InternshipServiceOptions groups dependencies for InternshipService.
type InternshipServiceOptions struct {
	API   ports.InternshipAPI
	Views *ViewRegistry
}

// InternshipService serves the public, organisation and admin internship views.
type InternshipService struct {
	api   ports.InternshipAPI
	views *ViewRegistry
}

// NewInternshipService constructs a new InternshipService.
func NewInternshipService(opts InternshipServiceOptions) *InternshipService {
	views := opts.Views
	if views == nil {
		views = NewViewRegistry(DefaultViewRegistryConfig())
	}
	return &InternshipService{api: opts.API, views: views}
}

// Browse returns the public listing view. view selects between the public
// and the admin listing, which share data but not cache entries.
func (s *InternshipService) Browse(
	ctx context.Context,
	sessionID, view string,
	refresh bool,
) (resource.Snapshot[model.Internship], error) {
	if view != ViewAdminInternships {
		view = ViewInternships
	}
	return Sync[model.Internship](ctx, s.views, ViewKey{Session: sessionID, Name: view}, refresh,
		func(ctx context.Context) ([]model.Internship, error) {
			return s.api.ListInternships(ctx, model.InternshipQuery{})
		})
}

// Latest returns up to n internships, newest first.
func (s *InternshipService) Latest(ctx context.Context, n int) ([]model.Internship, error) {
	items, err := s.api.ListInternships(ctx, model.InternshipQuery{})
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(items, func(a, b model.Internship) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return items[:min(n, len(items))], nil
}

// Get fetches one internship.
func (s *InternshipService) Get(ctx context.Context, id int64) (model.Internship, error) {
	return s.api.GetInternship(ctx, id)
}

// Own returns the organisation's own postings.
func (s *InternshipService) Own(ctx context.Context, sessionID string, refresh bool) (resource.Snapshot[model.Internship], error) {
	key := ViewKey{Session: sessionID, Name: ViewOwnInternships}
	return Sync[model.Internship](ctx, s.views, key, refresh, s.api.ListOwnInternships)
}

// Create validates and posts a new internship. Field problems are returned
// in the map without calling the API.
func (s *InternshipService) Create(
	ctx context.Context,
	sessionID string,
	in model.InternshipInput,
) (model.Internship, map[string]error, error) {
	in.Normalize()
	if errs := in.Validate(); len(errs) > 0 {
		return model.Internship{}, errs, nil
	}

	var created model.Internship
	err := mutate[model.Internship](ctx, s.views, ViewKey{Session: sessionID, Name: ViewOwnInternships},
		func(ctx context.Context) error {
			var err error
			created, err = s.api.CreateInternship(ctx, in)
			return err
		},
		func(items []model.Internship) []model.Internship { return resource.Prepend(created)(items) },
	)
	if err != nil {
		return model.Internship{}, nil, err
	}
	return created, nil, nil
}

// Update validates and saves an existing internship.
func (s *InternshipService) Update(
	ctx context.Context,
	sessionID string,
	id int64,
	in model.InternshipInput,
) (model.Internship, map[string]error, error) {
	in.Normalize()
	if errs := in.Validate(); len(errs) > 0 {
		return model.Internship{}, errs, nil
	}

	var updated model.Internship
	err := mutate[model.Internship](ctx, s.views, ViewKey{Session: sessionID, Name: ViewOwnInternships},
		func(ctx context.Context) error {
			var err error
			updated, err = s.api.UpdateInternship(ctx, id, in)
			return err
		},
		func(items []model.Internship) []model.Internship {
			return resource.ReplaceWhere(byInternshipID(id), func(model.Internship) model.Internship { return updated })(items)
		},
	)
	if err != nil {
		return model.Internship{}, nil, err
	}
	return updated, nil, nil
}

// Delete removes an internship and drops it from every cached listing of the session.
func (s *InternshipService) Delete(ctx context.Context, sessionID string, id int64) error {
	if err := s.api.DeleteInternship(ctx, id); err != nil {
		return err
	}
	remove := resource.RemoveWhere(byInternshipID(id))
	for _, name := range []string{ViewOwnInternships, ViewAdminInternships, ViewInternships} {
		patchOnly[model.Internship](ctx, s.views, ViewKey{Session: sessionID, Name: name}, remove)
	}
	return nil
}

func byInternshipID(id int64) func(model.Internship) bool {
	return func(i model.Internship) bool { return i.ID == id }
}

func viewName(base string, id int64) string {
	return base + ":" + strconv.FormatInt(id, 10)
}

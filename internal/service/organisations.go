package service

import (
	"context"

	"github.com/internhub/marketplace-web/internal/domain/model"
	"github.com/internhub/marketplace-web/internal/domain/resource"
	"github.com/internhub/marketplace-web/internal/ports"
)

const ViewOrganisations = "admin.organisations"

// OrganisationServiceOptions groups dependencies for OrganisationService.
type OrganisationServiceOptions struct {
	API   ports.UserAPI
	Views *ViewRegistry
}

// OrganisationService backs admin moderation of organisation accounts.
type OrganisationService struct {
	api   ports.UserAPI
	views *ViewRegistry
}

// NewOrganisationService constructs a new OrganisationService.
func NewOrganisationService(opts OrganisationServiceOptions) *OrganisationService {
	views := opts.Views
	if views == nil {
		views = NewViewRegistry(DefaultViewRegistryConfig())
	}
	return &OrganisationService{api: opts.API, views: views}
}

func (s *OrganisationService) key(sessionID string) ViewKey {
	return ViewKey{Session: sessionID, Name: ViewOrganisations}
}

// List returns the organisations view filtered to tab. All organisations are
// fetched once; switching tabs reuses them.
func (s *OrganisationService) List(
	ctx context.Context,
	sessionID string,
	tab model.OrganisationTab,
	refresh bool,
) (resource.Snapshot[model.User], error) {
	snap, err := Sync[model.User](ctx, s.views, s.key(sessionID), refresh, func(ctx context.Context) ([]model.User, error) {
		return s.api.ListOrganisations(ctx, nil)
	})
	if err != nil {
		return snap, err
	}
	filtered := make([]model.User, 0, len(snap.Items))
	for _, u := range snap.Items {
		if tab.Matches(u) {
			filtered = append(filtered, u)
		}
	}
	snap.Items = filtered
	return snap, nil
}

// SetVerified approves (or revokes) an organisation.
func (s *OrganisationService) SetVerified(ctx context.Context, sessionID string, id int64, verified bool) error {
	return mutate[model.User](ctx, s.views, s.key(sessionID),
		func(ctx context.Context) error {
			_, err := s.api.UpdateUser(ctx, id, model.UserUpdate{Verified: &verified})
			return err
		},
		resource.ReplaceWhere(byUserID(id), func(u model.User) model.User {
			u.Verified = verified
			return u
		}),
	)
}

// Decline removes an organisation account.
func (s *OrganisationService) Decline(ctx context.Context, sessionID string, id int64) error {
	return mutate[model.User](ctx, s.views, s.key(sessionID),
		func(ctx context.Context) error { return s.api.DeleteUser(ctx, id) },
		resource.RemoveWhere(byUserID(id)),
	)
}

func byUserID(id int64) func(model.User) bool {
	return func(u model.User) bool { return u.ID == id }
}

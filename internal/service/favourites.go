package service

import (
	"context"

	"github.com/internhub/marketplace-web/internal/domain/model"
	"github.com/internhub/marketplace-web/internal/domain/resource"
	"github.com/internhub/marketplace-web/internal/ports"
)

const ViewFavourites = "student.favourites"

// FavouriteServiceOptions groups dependencies for FavouriteService.
type FavouriteServiceOptions struct {
	API   ports.FavouriteAPI
	Views *ViewRegistry
}

// FavouriteService manages a student's saved internships.
type FavouriteService struct {
	api   ports.FavouriteAPI
	views *ViewRegistry
}

// NewFavouriteService constructs a new FavouriteService.
func NewFavouriteService(opts FavouriteServiceOptions) *FavouriteService {
	views := opts.Views
	if views == nil {
		views = NewViewRegistry(DefaultViewRegistryConfig())
	}
	return &FavouriteService{api: opts.API, views: views}
}

func (s *FavouriteService) key(sessionID string) ViewKey {
	return ViewKey{Session: sessionID, Name: ViewFavourites}
}

// List returns the favourites view.
func (s *FavouriteService) List(ctx context.Context, sessionID string, refresh bool) (resource.Snapshot[model.Favourite], error) {
	return Sync[model.Favourite](ctx, s.views, s.key(sessionID), refresh, s.api.ListFavourites)
}

// Set returns the favourited internship ids, reusing cached favourites when loaded.
func (s *FavouriteService) Set(ctx context.Context, sessionID string) (model.FavouriteSet, error) {
	snap, err := s.List(ctx, sessionID, false)
	if err != nil {
		return nil, err
	}
	return model.NewFavouriteSet(snap.Items), nil
}

// IsFavourite asks the API whether one internship is saved.
func (s *FavouriteService) IsFavourite(ctx context.Context, internshipID int64) (bool, error) {
	return s.api.CheckFavourite(ctx, internshipID)
}

// Toggle flips the saved state of an internship and returns the new state.
func (s *FavouriteService) Toggle(ctx context.Context, sessionID string, internshipID int64, saved bool) (bool, error) {
	if saved {
		return false, s.Remove(ctx, sessionID, internshipID)
	}
	if err := s.api.AddFavourite(ctx, internshipID); err != nil {
		return false, err
	}
	key := s.key(sessionID)
	if in, ok := cachedInternship(s.views, sessionID, internshipID); ok {
		patchOnly(ctx, s.views, key, resource.Append(model.Favourite{InternshipID: internshipID, Internship: in}))
	} else {
		// the favourites page lists embedded internships only
		s.views.Invalidate(key)
	}
	return true, nil
}

// Remove unsaves an internship.
func (s *FavouriteService) Remove(ctx context.Context, sessionID string, internshipID int64) error {
	return mutate[model.Favourite](ctx, s.views, s.key(sessionID),
		func(ctx context.Context) error { return s.api.RemoveFavourite(ctx, internshipID) },
		resource.RemoveWhere(func(f model.Favourite) bool { return f.TargetID() == internshipID }),
	)
}

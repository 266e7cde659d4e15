package viewmodel

import "github.com/internhub/marketplace-web/internal/domain/model"

// InternshipCard is one internship in a list with the viewer's saved state.
type InternshipCard struct {
	model.Internship
	Favourite    bool
	CanFavourite bool
	ShowEmployer bool
}

// Cards decorates items with favourite state. saved may be nil.
func Cards(items []model.Internship, saved model.FavouriteSet, canFavourite bool) []InternshipCard {
	out := make([]InternshipCard, 0, len(items))
	for _, it := range items {
		out = append(out, InternshipCard{
			Internship:   it,
			Favourite:    saved.Has(it.ID),
			CanFavourite: canFavourite,
			ShowEmployer: it.EmployerName() != "",
		})
	}
	return out
}

// FavouriteButton is the heart toggle partial.
type FavouriteButton struct {
	InternshipID int64
	Saved        bool
	// Compact renders the icon-only variant used in lists.
	Compact bool
}

// ApplyButton is the application action partial of the detail view.
type ApplyButton struct {
	InternshipID int64
	State        model.ApplyState
}

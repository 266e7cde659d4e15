//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// Favourite links a student to a saved internship.
type Favourite struct {
	ID           int64       `json:"id"`
	InternshipID int64       `json:"internshipId,omitempty"`
	Internship   *Internship `json:"internship,omitempty"`
}

// FavouriteCheck is the response of GET /favourites/check/{id}.
type FavouriteCheck struct {
	IsFavourite bool `json:"isFavourite"`
}

// FavouriteSet is a set of favourited internship ids.
type FavouriteSet map[int64]struct{}

// NewFavouriteSet builds the set from a favourites listing.
func NewFavouriteSet(favs []Favourite) FavouriteSet {
	set := make(FavouriteSet, len(favs))
	for _, f := range favs {
		set.Add(f.TargetID())
	}
	return set
}

// TargetID returns the favourited internship id.
func (f Favourite) TargetID() int64 {
	if f.Internship != nil && f.Internship.ID != 0 {
		return f.Internship.ID
	}
	return f.InternshipID
}

func (s FavouriteSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

func (s FavouriteSet) Add(id int64) { s[id] = struct{}{} }

func (s FavouriteSet) Remove(id int64) { delete(s, id) }

// Internships returns the embedded internships of the favourites, skipping entries without one.
func Internships(favs []Favourite) []Internship {
	out := make([]Internship, 0, len(favs))
	for _, f := range favs {
		if f.Internship != nil {
			out = append(out, *f.Internship)
		}
	}
	return out
}

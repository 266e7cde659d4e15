package viewmodel

// PageLink is one numbered entry of the pager.
type PageLink struct {
	Number   int
	URL      string
	Current  bool
	Ellipsis bool
}

// Pagination contains pagination metadata for list views.
type Pagination struct {
	Page       int
	PageSize   int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	StartIndex int
	EndIndex   int
	TotalCount int
	PrevURL    string
	NextURL    string
	Links      []PageLink
}

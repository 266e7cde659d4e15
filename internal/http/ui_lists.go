package httpx

import (
	"net/http"

	"github.com/internhub/marketplace-web/internal/domain/listing"
	"github.com/internhub/marketplace-web/internal/domain/model"
)

// Swap targets that stay within a view. Requests aimed at them page or
// filter already-fetched data instead of re-fetching.
const (
	mainTarget        = "main-content"
	listResultsTarget = "list-results"
)

// entersView reports whether the request enters a view (full load or nav
// swap) rather than paging or filtering inside it. Entering always re-fetches.
func entersView(r *http.Request) bool {
	return !IsHTMX(r) || HXTarget(r) == mainTarget || IsHistoryRestore(r)
}

// wantsResults reports whether only the list results region should be rendered.
func wantsResults(r *http.Request) bool {
	return WantsPartial(r) && HXTarget(r) == listResultsTarget
}

// listPage applies ?q= and ?page= to items and records the list state in data:
// Query, Pagination and the two distinct empty states NoneExist and NoMatch.
func listPage[T any](r *http.Request, data map[string]any, items []T, basePath string, fields ...func(T) string) []T {
	q := r.URL.Query()
	query := searchQuery(q)
	matched := listing.Filter(items, query, fields...)
	page := listing.Paginate(matched, getPageNumber(q), listing.DefaultPageSize)

	data["Query"] = query
	data["Pagination"] = paginationFor(r, page, basePath)
	data["NoneExist"] = len(items) == 0
	data["NoMatch"] = len(items) > 0 && len(matched) == 0
	return page.Items
}

func internshipTitle(i model.Internship) string    { return i.Title }
func internshipEmployer(i model.Internship) string { return i.EmployerName() }

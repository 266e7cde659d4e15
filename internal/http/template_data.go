package httpx

import (
	"net/http"

	"github.com/internhub/marketplace-web/internal/domain/listing"
	"github.com/internhub/marketplace-web/internal/http/ui/viewmodel"
)

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
	r    *http.Request
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{
		data: basePageData(r, meta),
		r:    r,
	}
}

// WithPagination adds the pager for a list view.
func (b *TemplateDataBuilder) WithPagination(p viewmodel.Pagination) *TemplateDataBuilder {
	b.data["Pagination"] = p
	return b
}

// WithError sets a general error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}

// paginationFor builds the pager of page, linking each entry to basePath with
// the request's other query parameters (the search term) preserved.
func paginationFor[T any](r *http.Request, page listing.Page[T], basePath string) viewmodel.Pagination {
	q := r.URL.Query()
	p := viewmodel.Pagination{
		Page:       page.Number,
		PageSize:   page.Size,
		TotalPages: page.TotalPages,
		HasPrev:    page.HasPrev(),
		HasNext:    page.HasNext(),
		StartIndex: page.StartIndex(),
		EndIndex:   page.EndIndex(),
		TotalCount: page.TotalItems,
	}
	if p.HasPrev {
		p.PrevURL = buildPageURL(basePath, q, page.Number-1)
	}
	if p.HasNext {
		p.NextURL = buildPageURL(basePath, q, page.Number+1)
	}
	for _, l := range listing.Window(page.Number, page.TotalPages, listing.DefaultMaxVisible) {
		link := viewmodel.PageLink{Number: l.Number, Current: l.Current, Ellipsis: l.Ellipsis}
		if !l.Ellipsis {
			link.URL = buildPageURL(basePath, q, l.Number)
		}
		p.Links = append(p.Links, link)
	}
	return p
}

package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	"github.com/internhub/marketplace-web/internal/domain/listing"
	"github.com/internhub/marketplace-web/internal/http/ui/viewmodel"
	"github.com/internhub/marketplace-web/internal/testutil"
)

func TestNewTemplateData_Anonymous(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/internships", nil)
	data := NewTemplateData(r, PageMeta{Title: "Internships", PageTitle: "Browse", CurrentPage: PageInternships}).Build()

	assert.Equal(t, "Internships", data["Title"])
	assert.Equal(t, "Browse", data["PageTitle"])
	assert.Equal(t, PageInternships, data["CurrentPage"])
	assert.Equal(t, false, data["IsAuthenticated"])
	assert.Equal(t, "/", data["HomePath"])
	assert.NotContains(t, data, "User")

	nav, ok := data["Nav"].([]viewmodel.NavItem)
	require.True(t, ok)
	require.Len(t, nav, 3)
	assert.True(t, nav[0].Active)
}

func TestNewTemplateData_SignedIn(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/org/internships", nil)
	r = r.WithContext(SetSessionInContext(r.Context(), testutil.SignedInSession("s", domainauth.RoleOrganisation)))
	data := NewTemplateData(r, PageMeta{PageTitle: "My internships"}).Build()

	assert.Equal(t, "My internships", data["Title"], "title defaults to page title")
	assert.Equal(t, true, data["IsAuthenticated"])
	assert.Equal(t, "/org", data["HomePath"])
	assert.Equal(t, true, data["ShowNotifications"])
	assert.Equal(t, "organisation", data["Role"])
	user, ok := data["User"].(*viewmodel.User)
	require.True(t, ok)
	assert.Equal(t, "organisation@example.com", user.Email)
}

func TestTemplateDataBuilder_Errors(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	data := NewTemplateData(r, PageMeta{}).
		WithError("boom").
		WithFieldErrors(map[string]string{"title": "Title is required"}).
		WithFieldErrors(nil).
		With("Extra", 1).
		Build()

	assert.Equal(t, true, data["Error"])
	assert.Equal(t, "boom", data["ErrorMessage"])
	assert.Equal(t, map[string]string{"title": "Title is required"}, data["Errors"])
	assert.Equal(t, 1, data["Extra"])
}

func TestPaginationFor(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/internships?q=go&page=2&hx-request=true", nil)
	page := listing.Paginate(testutil.Internships(25), 2, listing.DefaultPageSize)

	p := paginationFor(r, page, "/internships")

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 25, p.TotalCount)
	assert.Equal(t, 11, p.StartIndex)
	assert.Equal(t, 20, p.EndIndex)
	assert.Equal(t, "/internships?q=go", p.PrevURL)
	assert.Equal(t, "/internships?page=3&q=go", p.NextURL)
	require.Len(t, p.Links, 3)
	assert.True(t, p.Links[1].Current)
	assert.Equal(t, "/internships?page=2&q=go", p.Links[1].URL)
}

func TestPaginationFor_Ellipsis(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/admin/internships?page=10", nil)
	page := listing.Paginate(testutil.Internships(200), 10, listing.DefaultPageSize)

	p := paginationFor(r, page, "/admin/internships")

	var numbers []int
	for _, l := range p.Links {
		if l.Ellipsis {
			numbers = append(numbers, 0)
			assert.Empty(t, l.URL)
			continue
		}
		numbers = append(numbers, l.Number)
	}
	assert.Equal(t, []int{1, 0, 8, 9, 10, 11, 12, 0, 20}, numbers)
}

func TestBuildPageURL(t *testing.T) {
	q := map[string][]string{"q": {"  "}, "tab": {"verified"}, "hx_target": {"x"}}
	assert.Equal(t, "/admin/organizations?tab=verified", buildPageURL("/admin/organizations", q, 1))
	assert.Equal(t, "/admin/organizations?page=4&tab=verified", buildPageURL("/admin/organizations", q, 4))
	assert.Equal(t, "/x", buildPageURL("/x", nil, 1))
}

package httpx

import (
	"context"
	"html"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	"github.com/internhub/marketplace-web/internal/domain/model"
	"github.com/internhub/marketplace-web/internal/domain/resource"
	"github.com/internhub/marketplace-web/internal/http/ui/viewmodel"
	"github.com/internhub/marketplace-web/internal/service"
)

const errMsgFixBelow = "Please fix the errors below."

// InternshipsService is the UI view of internship listings and postings.
type InternshipsService interface {
	Browse(ctx context.Context, sessionID, view string, refresh bool) (resource.Snapshot[model.Internship], error)
	Latest(ctx context.Context, n int) ([]model.Internship, error)
	Get(ctx context.Context, id int64) (model.Internship, error)
	Own(ctx context.Context, sessionID string, refresh bool) (resource.Snapshot[model.Internship], error)
	Create(ctx context.Context, sessionID string, in model.InternshipInput) (model.Internship, map[string]error, error)
	Update(ctx context.Context, sessionID string, id int64, in model.InternshipInput) (model.Internship, map[string]error, error)
	Delete(ctx context.Context, sessionID string, id int64) error
}

// FavouritesService is a minimal interface for the favourites UI.
type FavouritesService interface {
	List(ctx context.Context, sessionID string, refresh bool) (resource.Snapshot[model.Favourite], error)
	Set(ctx context.Context, sessionID string) (model.FavouriteSet, error)
	IsFavourite(ctx context.Context, internshipID int64) (bool, error)
	Toggle(ctx context.Context, sessionID string, internshipID int64, saved bool) (bool, error)
	Remove(ctx context.Context, sessionID string, internshipID int64) error
}

// ApplicationsService covers student applications and organisation review.
type ApplicationsService interface {
	Standing(ctx context.Context, internshipID int64) (model.ApplyState, error)
	Apply(ctx context.Context, sessionID string, internshipID int64) (model.ApplyState, error)
	Own(ctx context.Context, sessionID string, refresh bool) (resource.Snapshot[model.Application], error)
	Applicants(ctx context.Context, sessionID string, internshipID int64, refresh bool) (resource.Snapshot[model.Application], error)
	Decide(
		ctx context.Context,
		sessionID string,
		internshipID, applicationID int64,
		status model.ApplicationStatus,
	) (model.Application, error)
	ApplicantResume(ctx context.Context, applicationID int64) (model.Resume, bool, error)
}

// ResumesService is a minimal interface for the CV pages.
type ResumesService interface {
	Mine(ctx context.Context) (model.Resume, bool, error)
	Save(ctx context.Context, in model.ResumeInput) (model.Resume, map[string]string, error)
}

// NotificationsService backs the notifications drawer.
type NotificationsService interface {
	List(ctx context.Context) (service.Inbox, error)
	Open(ctx context.Context) (service.Inbox, error)
}

// OrganisationsService backs admin moderation.
type OrganisationsService interface {
	List(ctx context.Context, sessionID string, tab model.OrganisationTab, refresh bool) (resource.Snapshot[model.User], error)
	SetVerified(ctx context.Context, sessionID string, id int64, verified bool) error
	Decline(ctx context.Context, sessionID string, id int64) error
}

// SessionInvalidator drops a session token the marketplace no longer accepts.
type SessionInvalidator interface {
	Invalidate(ctx context.Context, id string) error
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ InternshipsService   = (*service.InternshipService)(nil)
	_ FavouritesService    = (*service.FavouriteService)(nil)
	_ ApplicationsService  = (*service.ApplicationService)(nil)
	_ ResumesService       = (*service.ResumeService)(nil)
	_ NotificationsService = (*service.NotificationService)(nil)
	_ OrganisationsService = (*service.OrganisationService)(nil)
	_ SessionInvalidator   = (*service.SessionService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T               *TemplateRenderer
	Sessions        SessionInvalidator
	InternshipSvc   InternshipsService
	FavouriteSvc    FavouritesService
	ApplicationSvc  ApplicationsService
	ResumeSvc       ResumesService
	NotificationSvc NotificationsService
	OrganisationSvc OrganisationsService
	IsDev           bool // Development mode flag for enhanced error reporting
	Logger          *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// getPageNumber parses ?page= with a floor of 1.
func getPageNumber(q url.Values) int {
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		return n
	}
	return 1
}

// searchQuery returns the trimmed ?q= value.
func searchQuery(q url.Values) string {
	return strings.TrimSpace(q.Get("q"))
}

// buildPageURL returns basePath with page set, preserving other non-empty query params.
func buildPageURL(basePath string, q url.Values, page int) string {
	qq := make(url.Values, len(q))
	for k, v := range q {
		// drop transient/htmx params
		if strings.HasPrefix(k, "hx-") || strings.HasPrefix(k, "hx_") || k == "page" {
			continue
		}
		tmp := make([]string, 0, len(v))
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				tmp = append(tmp, s)
			}
		}
		if len(tmp) > 0 {
			qq[k] = tmp
		}
	}
	if page > 1 {
		qq.Set("page", strconv.Itoa(page))
	}
	if enc := qq.Encode(); enc != "" {
		return basePath + "?" + enc
	}
	return basePath
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	sess := GetSessionFromContext(r.Context())
	role := sess.Role()

	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		CurrentPath: r.URL.Path,
		CSRFToken:   GetCSRFToken(r),
		Nav:         viewmodel.NavFor(role, r.URL.Path),
		HomePath:    "/",
	}
	if layout.Title == "" {
		layout.Title = meta.PageTitle
	}

	if sess.IsAuthenticated() {
		layout.IsAuthenticated = true
		layout.HomePath = role.HomePath()
		layout.ShowNotifications = role == domainauth.RoleStudent || role == domainauth.RoleOrganisation
		layout.User = &viewmodel.User{
			Name:     sess.Identity.Name,
			Email:    sess.Identity.Email,
			Role:     string(role),
			Verified: sess.Identity.Verified,
		}
	}
	return layout
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":             layout.Title,
		"PageTitle":         layout.PageTitle,
		"CurrentPage":       layout.CurrentPage,
		"CurrentPath":       layout.CurrentPath,
		"IsAuthenticated":   layout.IsAuthenticated,
		"Nav":               layout.Nav,
		"HomePath":          layout.HomePath,
		"ShowNotifications": layout.ShowNotifications,
		"CSRFToken":         layout.CSRFToken,
	}
	if layout.User != nil {
		data["User"] = layout.User
		data["Role"] = layout.User.Role
	}
	return data
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, data map[string]any) error
}

// Page builds base data, optionally fetches content data, and renders.
// A failed fetch renders the page's inline error state.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := basePageData(r, spec.Meta)
	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			h.viewFailed(w, r, err, spec.Meta)
			return
		}
	}
	h.renderPage(w, r, data)
}

// renderPage renders a page with htmx partial support.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, data any) {
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// Hint client JS to update nav active state based on current path
	SetHXTrigger(w, "nav:activate", map[string]string{"path": r.URL.Path})

	layout := extractLayoutInfo(data)

	// Include a <title> element so htmx updates document.title on partial swaps
	if _, err := w.Write([]byte(`<title>` + html.EscapeString(layout.Title) + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}
	header := `<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` +
		html.EscapeString(layout.PageTitle) + `</h1>`
	if _, err := w.Write([]byte(header)); err != nil {
		h.logger().Error("failed to write partial header title", "error", err)
		return
	}

	if err := h.T.ExecuteTemplate(w, ContentTemplateFor(layout.CurrentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
	}
}

// renderFragment renders one named partial, used for in-place htmx swaps.
func (h *UIHandlers) renderFragment(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := h.T.RenderNamed(w, name, data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "fragment "+name)
	}
}

func extractLayoutInfo(data any) viewmodel.Layout {
	switch v := data.(type) {
	case viewmodel.LayoutProvider:
		if l := v.LayoutData(); l != nil {
			return *l
		}
	case viewmodel.Layout:
		return v
	case map[string]any:
		var layout viewmodel.Layout
		layout.Title, _ = v["Title"].(string)
		layout.PageTitle, _ = v["PageTitle"].(string)
		layout.CurrentPage, _ = v["CurrentPage"].(string)
		return layout
	}
	return viewmodel.Layout{}
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().ErrorContext(r.Context(), "template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="dev-error"><h2>Template Rendering Error</h2>` +
			`<p><strong>Context:</strong> ` + html.EscapeString(context) + `</p>` +
			`<p><strong>Path:</strong> ` + html.EscapeString(r.URL.Path) + `</p>` +
			`<pre>` + html.EscapeString(err.Error()) + `</pre></div>`))
		return
	}

	http.Error(w, "internal server error", http.StatusInternalServerError)
}

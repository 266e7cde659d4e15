package httpx

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/internhub/marketplace-web/internal/domain/model"
	"github.com/internhub/marketplace-web/internal/service"
)

// OrganisationTabLink is one tab of the organisations view.
type OrganisationTabLink struct {
	Tab    model.OrganisationTab
	Label  string
	URL    string
	Active bool
}

func organisationTabs(active model.OrganisationTab) []OrganisationTabLink {
	tabs := []OrganisationTabLink{
		{Tab: model.OrganisationTabAll, Label: "All"},
		{Tab: model.OrganisationTabUnverified, Label: "Awaiting approval"},
		{Tab: model.OrganisationTabVerified, Label: "Verified"},
	}
	for i := range tabs {
		tabs[i].URL = "/admin/organizations?tab=" + string(tabs[i].Tab)
		tabs[i].Active = tabs[i].Tab == active
	}
	return tabs
}

// AdminDashboard shows moderation counts.
func (h *UIHandlers) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	sid := SessionIDFromContext(r.Context())
	refresh := entersView(r)
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Admin", PageTitle: "Admin dashboard", CurrentPage: PageAdminDashboard},
		Fetch: func(ctx context.Context, data map[string]any) error {
			var (
				orgs        []model.User
				internships []model.Internship
			)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				snap, err := h.OrganisationSvc.List(gctx, sid, model.OrganisationTabAll, refresh)
				orgs = snap.Items
				return err
			})
			g.Go(func() error {
				snap, err := h.InternshipSvc.Browse(gctx, sid, service.ViewAdminInternships, refresh)
				internships = snap.Items
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			unverified := 0
			for _, o := range orgs {
				if model.OrganisationTabUnverified.Matches(o) {
					unverified++
				}
			}
			data["OrganisationCount"] = len(orgs)
			data["UnverifiedCount"] = unverified
			data["InternshipCount"] = len(internships)
			return nil
		},
	})
}

// AdminOrganisations lists organisation accounts by verification tab.
func (h *UIHandlers) AdminOrganisations(w http.ResponseWriter, r *http.Request) {
	meta := PageMeta{Title: "Organisations", PageTitle: "Organisations", CurrentPage: PageAdminOrganisations}
	tab := model.ParseOrganisationTab(r.URL.Query().Get("tab"))
	snap, err := h.OrganisationSvc.List(r.Context(), SessionIDFromContext(r.Context()), tab, entersView(r))
	if err != nil {
		h.viewFailed(w, r, err, meta)
		return
	}
	data := h.organisationsData(r, meta, tab, snap.Items)
	if wantsResults(r) {
		h.renderFragment(w, r, "organisations-results", data)
		return
	}
	h.renderPage(w, r, data)
}

func (h *UIHandlers) organisationsData(r *http.Request, meta PageMeta, tab model.OrganisationTab, orgs []model.User) map[string]any {
	data := basePageData(r, meta)
	data["Organisations"] = listPage(r, data, orgs, "/admin/organizations", userName, userEmail)
	data["Tab"] = tab
	data["Tabs"] = organisationTabs(tab)
	data["ResultsURL"] = "/admin/organizations"
	return data
}

// VerifyOrganisation approves (or revokes) an organisation account.
// POST /admin/organizations/{id}/verify.
func (h *UIHandlers) VerifyOrganisation(w http.ResponseWriter, r *http.Request) {
	h.moderateOrganisation(w, r, "Organisation updated.", func(ctx context.Context, sid string, id int64) error {
		return h.OrganisationSvc.SetVerified(ctx, sid, id, r.PostFormValue("verified") != "false")
	})
}

// DeclineOrganisation removes an organisation account.
// POST /admin/organizations/{id}/decline.
func (h *UIHandlers) DeclineOrganisation(w http.ResponseWriter, r *http.Request) {
	h.moderateOrganisation(w, r, "Organisation declined.", func(ctx context.Context, sid string, id int64) error {
		return h.OrganisationSvc.Decline(ctx, sid, id)
	})
}

// moderateOrganisation runs one moderation action and re-renders the list
// results for the posted tab from the patched view.
func (h *UIHandlers) moderateOrganisation(
	w http.ResponseWriter,
	r *http.Request,
	done string,
	action func(ctx context.Context, sid string, id int64) error,
) {
	id, err := pathID(r, "id")
	if err != nil {
		h.mutationFailed(w, r, err)
		return
	}
	if err := parseForm(w, r); err != nil {
		h.mutationFailed(w, r, err)
		return
	}
	sid := SessionIDFromContext(r.Context())
	if err := action(r.Context(), sid, id); err != nil {
		h.mutationFailed(w, r, err)
		return
	}

	tab := model.ParseOrganisationTab(r.PostFormValue("tab"))
	switch {
	case IsHTMX(r):
		HTMX(w).Toast(done, "success")
		snap, err := h.OrganisationSvc.List(r.Context(), sid, tab, false)
		if err != nil {
			h.mutationFailed(w, r, err)
			return
		}
		meta := PageMeta{Title: "Organisations", PageTitle: "Organisations", CurrentPage: PageAdminOrganisations}
		h.renderFragment(w, r, "organisations-results", h.organisationsData(r, meta, tab, snap.Items))
	case !IsBrowserRequest(r):
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Redirect(w, r, "/admin/organizations?tab="+string(tab), http.StatusSeeOther)
	}
}

// AdminInternships lists every internship for moderation.
func (h *UIHandlers) AdminInternships(w http.ResponseWriter, r *http.Request) {
	meta := PageMeta{Title: "Internships", PageTitle: "All internships", CurrentPage: PageAdminInternships}
	snap, err := h.InternshipSvc.Browse(r.Context(), SessionIDFromContext(r.Context()), service.ViewAdminInternships, entersView(r))
	if err != nil {
		h.viewFailed(w, r, err, meta)
		return
	}
	data := basePageData(r, meta)
	data["Internships"] = listPage(r, data, snap.Items, "/admin/internships", internshipTitle, internshipEmployer)
	data["ResultsURL"] = "/admin/internships"
	if wantsResults(r) {
		h.renderFragment(w, r, "admin-internships-results", data)
		return
	}
	h.renderPage(w, r, data)
}

func userName(u model.User) string  { return u.Name }
func userEmail(u model.User) string { return u.Email }

package httpx

import (
	"context"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	"github.com/internhub/marketplace-web/internal/domain/model"
	apperrors "github.com/internhub/marketplace-web/internal/errors"
	"github.com/internhub/marketplace-web/internal/http/ui/viewmodel"
	"github.com/internhub/marketplace-web/internal/service"
)

const homeLatestCount = 6

// Home serves the landing page with the latest internships.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "InternHub", PageTitle: "Find your internship", CurrentPage: PageHome},
		Fetch: func(ctx context.Context, data map[string]any) error {
			latest, err := h.InternshipSvc.Latest(ctx, homeLatestCount)
			if err != nil {
				return err
			}
			data["Latest"] = viewmodel.Cards(latest, nil, false)
			return nil
		},
	})
}

// Internships serves the public internship list with search, paging and,
// for students, the favourite toggle.
func (h *UIHandlers) Internships(w http.ResponseWriter, r *http.Request) {
	meta := PageMeta{Title: "Internships", PageTitle: "Internships", CurrentPage: PageInternships}
	sid := SessionIDFromContext(r.Context())

	snap, err := h.InternshipSvc.Browse(r.Context(), sid, service.ViewInternships, entersView(r))
	if err != nil {
		h.viewFailed(w, r, err, meta)
		return
	}

	data := basePageData(r, meta)
	items := listPage(r, data, snap.Items, "/internships", internshipTitle, internshipEmployer)

	isStudent := CurrentRole(r.Context()) == domainauth.RoleStudent
	var saved model.FavouriteSet
	if isStudent {
		// hearts fall back to unsaved rather than failing the whole list
		if saved, err = h.FavouriteSvc.Set(r.Context(), sid); err != nil {
			h.logger().WarnContext(r.Context(), "favourites unavailable for list", "error", err)
		}
	}
	data["Internships"] = viewmodel.Cards(items, saved, isStudent)
	data["ResultsURL"] = "/internships"

	if wantsResults(r) {
		h.renderFragment(w, r, "internships-results", data)
		return
	}
	h.renderPage(w, r, data)
}

// Internship serves the detail view. Students also see their saved and
// application state, fetched concurrently with the posting.
func (h *UIHandlers) Internship(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.NotFound(w, r)
		return
	}
	meta := PageMeta{Title: "Internship", PageTitle: "Internship", CurrentPage: PageInternship}
	isStudent := CurrentRole(r.Context()) == domainauth.RoleStudent

	var (
		internship model.Internship
		saved      bool
		standing   model.ApplyState
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		internship, err = h.InternshipSvc.Get(ctx, id)
		return err
	})
	if isStudent {
		g.Go(func() error {
			var err error
			saved, err = h.FavouriteSvc.IsFavourite(ctx, id)
			return err
		})
		g.Go(func() error {
			var err error
			standing, err = h.ApplicationSvc.Standing(ctx, id)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		if apperrors.IsNotFound(err) {
			h.NotFound(w, r)
			return
		}
		h.viewFailed(w, r, err, meta)
		return
	}

	meta.Title = internship.Title
	meta.PageTitle = internship.Title
	data := NewTemplateData(r, meta).
		With("Internship", internship).
		With("IsStudent", isStudent).
		With("Favourite", viewmodel.FavouriteButton{InternshipID: id, Saved: saved}).
		With("Apply", viewmodel.ApplyButton{InternshipID: id, State: standing}).
		Build()
	h.renderPage(w, r, data)
}

// Apply submits an application for the current student. An existing
// application is reported as-is and never re-submitted.
func (h *UIHandlers) Apply(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.mutationFailed(w, r, err)
		return
	}
	state, err := h.ApplicationSvc.Apply(r.Context(), SessionIDFromContext(r.Context()), id)
	if err != nil {
		h.mutationFailed(w, r, err)
		return
	}

	switch {
	case IsHTMX(r):
		msg := "You have already applied to this internship."
		if state.Submitted {
			msg = "Application submitted."
		}
		HTMX(w).Toast(msg, "success")
		h.renderFragment(w, r, "apply-button", viewmodel.ApplyButton{InternshipID: id, State: state})
	case !IsBrowserRequest(r):
		WriteJSON(w, http.StatusOK, map[string]any{"applied": state.Applied, "status": state.Status})
	default:
		http.Redirect(w, r, internshipPath(id), http.StatusSeeOther)
	}
}

// ToggleFavourite flips the saved state of an internship and returns the
// refreshed heart button. The current state is posted by the button itself.
func (h *UIHandlers) ToggleFavourite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.mutationFailed(w, r, err)
		return
	}
	if err := parseForm(w, r); err != nil {
		h.mutationFailed(w, r, apperrors.Validation("The request could not be read."))
		return
	}
	saved, err := h.FavouriteSvc.Toggle(r.Context(), SessionIDFromContext(r.Context()), id, formBool(r, "saved"))
	if err != nil {
		h.mutationFailed(w, r, err)
		return
	}

	switch {
	case IsHTMX(r):
		btn := viewmodel.FavouriteButton{InternshipID: id, Saved: saved, Compact: formBool(r, "compact")}
		h.renderFragment(w, r, "favourite-button", btn)
	case !IsBrowserRequest(r):
		WriteJSON(w, http.StatusOK, map[string]bool{"isFavourite": saved})
	default:
		http.Redirect(w, r, internshipPath(id), http.StatusSeeOther)
	}
}

func internshipPath(id int64) string {
	return "/internships/" + strconv.FormatInt(id, 10)
}

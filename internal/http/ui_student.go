package httpx

import (
	"context"
	"net/http"
	"strconv"

	"github.com/internhub/marketplace-web/internal/domain/model"
	"github.com/internhub/marketplace-web/internal/http/ui/viewmodel"
)

// Favourites lists the student's saved internships.
func (h *UIHandlers) Favourites(w http.ResponseWriter, r *http.Request) {
	meta := PageMeta{Title: "Favourites", PageTitle: "Saved internships", CurrentPage: PageFavourites}
	snap, err := h.FavouriteSvc.List(r.Context(), SessionIDFromContext(r.Context()), entersView(r))
	if err != nil {
		h.viewFailed(w, r, err, meta)
		return
	}

	data := basePageData(r, meta)
	saved := model.Internships(snap.Items)
	items := listPage(r, data, saved, "/favorites", internshipTitle, internshipEmployer)
	data["Internships"] = viewmodel.Cards(items, model.NewFavouriteSet(snap.Items), true)
	data["ResultsURL"] = "/favorites"

	if wantsResults(r) {
		h.renderFragment(w, r, "favourites-results", data)
		return
	}
	h.renderPage(w, r, data)
}

// RemoveFavourite unsaves an internship from the favourites list. htmx
// removes the row with the empty response.
func (h *UIHandlers) RemoveFavourite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.mutationFailed(w, r, err)
		return
	}
	if err := h.FavouriteSvc.Remove(r.Context(), SessionIDFromContext(r.Context()), id); err != nil {
		h.mutationFailed(w, r, err)
		return
	}
	switch {
	case IsHTMX(r):
		HTMX(w).Toast("Removed from favourites.", "success")
		w.WriteHeader(http.StatusOK)
	case !IsBrowserRequest(r):
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Redirect(w, r, "/favorites", http.StatusSeeOther)
	}
}

// Applications lists the student's own applications.
func (h *UIHandlers) Applications(w http.ResponseWriter, r *http.Request) {
	meta := PageMeta{Title: "My applications", PageTitle: "My applications", CurrentPage: PageApplications}
	snap, err := h.ApplicationSvc.Own(r.Context(), SessionIDFromContext(r.Context()), entersView(r))
	if err != nil {
		h.viewFailed(w, r, err, meta)
		return
	}

	data := basePageData(r, meta)
	data["Applications"] = listPage(r, data, snap.Items, "/applications", applicationInternshipTitle)
	data["ResultsURL"] = "/applications"
	if wantsResults(r) {
		h.renderFragment(w, r, "applications-results", data)
		return
	}
	h.renderPage(w, r, data)
}

// Resume shows the student's CV, or the create prompt when there is none.
func (h *UIHandlers) Resume(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "My CV", PageTitle: "My CV", CurrentPage: PageResume},
		Fetch: func(ctx context.Context, data map[string]any) error {
			res, ok, err := h.ResumeSvc.Mine(ctx)
			if err != nil {
				return err
			}
			data["Absent"] = !ok
			data["Resume"] = res
			return nil
		},
	})
}

func resumeFormMeta(exists bool) PageMeta {
	if exists {
		return PageMeta{Title: "Edit CV", PageTitle: "Edit your CV", CurrentPage: PageResumeForm}
	}
	return PageMeta{Title: "Create CV", PageTitle: "Create your CV", CurrentPage: PageResumeForm}
}

// ResumeForm renders the CV editor, pre-filled when a CV exists.
func (h *UIHandlers) ResumeForm(w http.ResponseWriter, r *http.Request) {
	res, ok, err := h.ResumeSvc.Mine(r.Context())
	if err != nil {
		h.viewFailed(w, r, err, resumeFormMeta(false))
		return
	}
	in := model.InputFromResume(res)
	data := basePageData(r, resumeFormMeta(ok))
	addResumeFormData(data, in, nil, ok)
	h.renderPage(w, r, data)
}

// SaveResume creates or updates the CV.
func (h *UIHandlers) SaveResume(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.mutationFailed(w, r, err)
		return
	}
	exists := formBool(r, "exists")
	in, fieldErrs := resumeForm(r)
	rerender := func(err error, errs map[string]string) {
		keep := map[string]any{}
		addResumeFormData(keep, in, errs, exists)
		RenderError(ErrorOpts{
			W: w, R: r, Err: err,
			FieldErrors: errs,
			Renderer:    h.renderPage,
			PageMeta:    resumeFormMeta(exists),
			Data:        keep,
			StatusCode:  formStatus(r),
		})
	}
	if len(fieldErrs) > 0 {
		rerender(nil, fieldErrs)
		return
	}

	_, fieldErrs, err := h.ResumeSvc.Save(r.Context(), in)
	switch {
	case err != nil:
		if handled := h.handleCommonFailure(w, r, err); handled {
			return
		}
		h.logger().WarnContext(r.Context(), "resume save failed", "error", err)
		rerender(err, map[string]string{})
		return
	case len(fieldErrs) > 0:
		rerender(nil, fieldErrs)
		return
	}
	h.formSaved(w, r, "/resume", "Your CV has been saved.")
}

// ResumeRow returns an empty experience or education row for the CV editor.
// GET /resume/rows/{group}?index=N.
func (h *UIHandlers) ResumeRow(w http.ResponseWriter, r *http.Request) {
	group := r.PathValue("group")
	if group != viewmodel.GroupExperiences && group != viewmodel.GroupEducation {
		h.NotFound(w, r)
		return
	}
	idx := int(parseIntQuery(r, "index", 0))
	if idx < 0 {
		idx = 0
	}
	h.renderFragment(w, r, "resume-row-added", viewmodel.ResumeRowAdded{
		Row:    viewmodel.ResumeRow{Group: group, Index: idx},
		Button: viewmodel.AddRowButton{Group: group, NextIndex: idx + 1},
	})
}

func addResumeFormData(data map[string]any, in model.ResumeInput, errs map[string]string, exists bool) {
	data["Form"] = in
	data["Exists"] = exists
	data["ExperienceRows"] = viewmodel.ExperienceRows(in.Experiences, errs)
	data["EducationRows"] = viewmodel.EducationRows(in.Education, errs)
	data["AddExperience"] = viewmodel.AddRowButton{Group: viewmodel.GroupExperiences, NextIndex: len(in.Experiences)}
	data["AddEducation"] = viewmodel.AddRowButton{Group: viewmodel.GroupEducation, NextIndex: len(in.Education)}
}

// formSaved finishes a successful form post: htmx is redirected with a toast,
// plain forms follow a 303.
func (h *UIHandlers) formSaved(w http.ResponseWriter, r *http.Request, dest, message string) {
	switch {
	case IsHTMX(r):
		HTMX(w).Toast(message, "success")
		SetHXRedirect(w, dest)
		w.WriteHeader(http.StatusOK)
	case !IsBrowserRequest(r):
		WriteJSON(w, http.StatusOK, map[string]string{"status": "saved", "redirect_to": dest})
	default:
		http.Redirect(w, r, dest, http.StatusSeeOther)
	}
}

func applicationInternshipTitle(a model.Application) string {
	if a.Internship != nil {
		return a.Internship.Title
	}
	return ""
}

func applicationStudentName(a model.Application) string {
	if a.Student != nil {
		return a.Student.Name + " " + a.Student.Email
	}
	return ""
}

func idString(id int64) string { return strconv.FormatInt(id, 10) }

package httpx

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/internhub/marketplace-web/internal/domain/model"
	apperrors "github.com/internhub/marketplace-web/internal/errors"
)

const orgDashboardRecent = 5

// OrgDashboard summarises the organisation's postings and incoming applications.
func (h *UIHandlers) OrgDashboard(w http.ResponseWriter, r *http.Request) {
	sid := SessionIDFromContext(r.Context())
	refresh := entersView(r)
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Dashboard", PageTitle: "Organisation dashboard", CurrentPage: PageOrgDashboard},
		Fetch: func(ctx context.Context, data map[string]any) error {
			var (
				postings []model.Internship
				apps     []model.Application
			)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				snap, err := h.InternshipSvc.Own(gctx, sid, refresh)
				postings = snap.Items
				return err
			})
			g.Go(func() error {
				snap, err := h.ApplicationSvc.Applicants(gctx, sid, 0, refresh)
				apps = snap.Items
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			pending := 0
			for _, a := range apps {
				if a.CanDecide() {
					pending++
				}
			}
			data["PostingCount"] = len(postings)
			data["ApplicationCount"] = len(apps)
			data["PendingCount"] = pending
			data["Recent"] = postings[:min(orgDashboardRecent, len(postings))]
			return nil
		},
	})
}

// OrgInternships lists the organisation's own postings.
func (h *UIHandlers) OrgInternships(w http.ResponseWriter, r *http.Request) {
	meta := PageMeta{Title: "My internships", PageTitle: "My internships", CurrentPage: PageOrgInternships}
	snap, err := h.InternshipSvc.Own(r.Context(), SessionIDFromContext(r.Context()), entersView(r))
	if err != nil {
		h.viewFailed(w, r, err, meta)
		return
	}
	data := basePageData(r, meta)
	data["Internships"] = listPage(r, data, snap.Items, "/org/internships", internshipTitle)
	data["ResultsURL"] = "/org/internships"
	if wantsResults(r) {
		h.renderFragment(w, r, "org-internships-results", data)
		return
	}
	h.renderPage(w, r, data)
}

func internshipFormMeta(mode FormMode) PageMeta {
	if mode == FormModeEdit {
		return PageMeta{Title: "Edit internship", PageTitle: "Edit internship", CurrentPage: PageOrgInternshipForm}
	}
	return PageMeta{Title: "New internship", PageTitle: "Post an internship", CurrentPage: PageOrgInternshipForm}
}

func internshipFormData(data map[string]any, mode FormMode, id int64, in model.InternshipInput) {
	data["Mode"] = mode
	data["Form"] = in
	data["Action"] = "/org/internships"
	if mode == FormModeEdit {
		data["InternshipID"] = id
		data["Action"] = "/org/internships/" + idString(id)
	}
}

// NewInternshipForm renders the empty posting form.
func (h *UIHandlers) NewInternshipForm(w http.ResponseWriter, r *http.Request) {
	data := basePageData(r, internshipFormMeta(FormModeCreate))
	internshipFormData(data, FormModeCreate, 0, model.InternshipInput{})
	h.renderPage(w, r, data)
}

// EditInternshipForm renders the posting form pre-filled from the API.
func (h *UIHandlers) EditInternshipForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.NotFound(w, r)
		return
	}
	meta := internshipFormMeta(FormModeEdit)
	internship, err := h.InternshipSvc.Get(r.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			h.NotFound(w, r)
			return
		}
		h.viewFailed(w, r, err, meta)
		return
	}
	data := basePageData(r, meta)
	internshipFormData(data, FormModeEdit, id, model.InputFromInternship(internship))
	h.renderPage(w, r, data)
}

// CreateInternship handles POST /org/internships.
func (h *UIHandlers) CreateInternship(w http.ResponseWriter, r *http.Request) {
	h.saveInternship(w, r, FormModeCreate, 0)
}

// UpdateInternship handles POST /org/internships/{id}.
func (h *UIHandlers) UpdateInternship(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.NotFound(w, r)
		return
	}
	h.saveInternship(w, r, FormModeEdit, id)
}

func (h *UIHandlers) saveInternship(w http.ResponseWriter, r *http.Request, mode FormMode, id int64) {
	if err := parseForm(w, r); err != nil {
		h.mutationFailed(w, r, err)
		return
	}
	in, fieldErrs := internshipForm(r)
	rerender := func(err error, errs map[string]string) {
		keep := map[string]any{}
		internshipFormData(keep, mode, id, in)
		RenderError(ErrorOpts{
			W: w, R: r, Err: err,
			FieldErrors: errs,
			Renderer:    h.renderPage,
			PageMeta:    internshipFormMeta(mode),
			Data:        keep,
			StatusCode:  formStatus(r),
		})
	}
	if len(fieldErrs) > 0 {
		rerender(nil, fieldErrs)
		return
	}

	sid := SessionIDFromContext(r.Context())
	var (
		domainErrs map[string]error
		err        error
	)
	if mode == FormModeEdit {
		_, domainErrs, err = h.InternshipSvc.Update(r.Context(), sid, id, in)
	} else {
		_, domainErrs, err = h.InternshipSvc.Create(r.Context(), sid, in)
	}
	switch {
	case err != nil:
		if handled := h.handleCommonFailure(w, r, err); handled {
			return
		}
		h.logger().WarnContext(r.Context(), "internship save failed",
			"mode", string(mode), "internship_id", id, "error_code", apperrors.GetCode(err), "error", err)
		rerender(err, map[string]string{})
		return
	case len(domainErrs) > 0:
		rerender(nil, fieldMessages(domainErrs))
		return
	}

	msg := "Internship posted."
	if mode == FormModeEdit {
		msg = "Internship updated."
	}
	h.formSaved(w, r, "/org/internships", msg)
}

// DeleteInternship removes a posting. It serves both the organisation's own
// list and the admin list; htmx removes the row with the empty response.
func (h *UIHandlers) DeleteInternship(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.mutationFailed(w, r, err)
		return
	}
	if err := h.InternshipSvc.Delete(r.Context(), SessionIDFromContext(r.Context()), id); err != nil {
		h.mutationFailed(w, r, err)
		return
	}
	switch {
	case IsHTMX(r):
		HTMX(w).Toast("Internship deleted.", "success")
		w.WriteHeader(http.StatusOK)
	case !IsBrowserRequest(r):
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Redirect(w, r, safeRedirectPath(r.Header.Get("Referer")), http.StatusSeeOther)
	}
}

// OrgApplications lists applicants, optionally narrowed to one posting with ?internshipId=.
func (h *UIHandlers) OrgApplications(w http.ResponseWriter, r *http.Request) {
	meta := PageMeta{Title: "Applications", PageTitle: "Applications", CurrentPage: PageOrgApplications}
	sid := SessionIDFromContext(r.Context())
	internshipID := max(parseIntQuery(r, "internshipId", 0), 0)
	refresh := entersView(r)

	var (
		apps     []model.Application
		postings []model.Internship
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		snap, err := h.ApplicationSvc.Applicants(ctx, sid, internshipID, refresh)
		apps = snap.Items
		return err
	})
	g.Go(func() error {
		snap, err := h.InternshipSvc.Own(ctx, sid, false)
		postings = snap.Items
		return err
	})
	if err := g.Wait(); err != nil {
		h.viewFailed(w, r, err, meta)
		return
	}

	data := basePageData(r, meta)
	data["Applications"] = listPage(r, data, apps, "/org/applications", applicationStudentName, applicationInternshipTitle)
	data["Postings"] = postings
	data["InternshipID"] = internshipID
	data["ResultsURL"] = "/org/applications"
	if wantsResults(r) {
		h.renderFragment(w, r, "org-applications-results", data)
		return
	}
	h.renderPage(w, r, data)
}

// DecideApplication approves or rejects a pending application and returns
// the updated row, read back from the patched applicants view.
// POST /org/applications/{id}/status.
func (h *UIHandlers) DecideApplication(w http.ResponseWriter, r *http.Request) {
	appID, err := pathID(r, "id")
	if err != nil {
		h.mutationFailed(w, r, err)
		return
	}
	if err := parseForm(w, r); err != nil {
		h.mutationFailed(w, r, err)
		return
	}
	status, ok := model.ParseApplicationStatus(r.PostFormValue("status"))
	if !ok {
		h.mutationFailed(w, r, apperrors.ValidationField("status", "Choose approve or reject."))
		return
	}
	internshipID := max(parseIntQuery(r, "internshipId", 0), 0)
	if v := formValue(r, "internshipId"); v != "" {
		internshipID = max(parseInt64(v), 0)
	}

	sid := SessionIDFromContext(r.Context())
	decided, err := h.ApplicationSvc.Decide(r.Context(), sid, internshipID, appID, status)
	if err != nil {
		h.mutationFailed(w, r, err)
		return
	}

	if snap, err := h.ApplicationSvc.Applicants(r.Context(), sid, internshipID, false); err == nil {
		for _, a := range snap.Items {
			if a.ID == appID {
				decided = a
				break
			}
		}
	}

	switch {
	case IsHTMX(r):
		HTMX(w).Toast("Application "+string(decided.Status)+".", "success")
		h.renderFragment(w, r, "application-row", map[string]any{"App": decided, "InternshipID": internshipID})
	case !IsBrowserRequest(r):
		WriteJSON(w, http.StatusOK, map[string]any{"id": decided.ID, "status": decided.Status})
	default:
		dest := "/org/applications"
		if internshipID > 0 {
			dest += "?internshipId=" + idString(internshipID)
		}
		http.Redirect(w, r, dest, http.StatusSeeOther)
	}
}

// ApplicantResume shows the CV attached to an application.
func (h *UIHandlers) ApplicantResume(w http.ResponseWriter, r *http.Request) {
	appID, err := pathID(r, "id")
	if err != nil {
		h.NotFound(w, r)
		return
	}
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Applicant CV", PageTitle: "Applicant CV", CurrentPage: PageApplicantResume},
		Fetch: func(ctx context.Context, data map[string]any) error {
			res, ok, err := h.ApplicationSvc.ApplicantResume(ctx, appID)
			if err != nil {
				return err
			}
			data["Absent"] = !ok
			data["Resume"] = res
			data["BackURL"] = safeRedirectPath(r.URL.Query().Get("back"))
			return nil
		},
	})
}

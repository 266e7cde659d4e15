package service

import (
	"context"

	"github.com/internhub/marketplace-web/internal/domain/model"
	"github.com/internhub/marketplace-web/internal/domain/resource"
	apperrors "github.com/internhub/marketplace-web/internal/errors"
	"github.com/internhub/marketplace-web/internal/ports"
)

const (
	ViewOwnApplications = "student.applications"
	ViewApplicants      = "org.applications"
)

// ApplicationServiceOptions groups dependencies for ApplicationService.
type ApplicationServiceOptions struct {
	API   ports.ApplicationAPI
	Views *ViewRegistry
}

// ApplicationService covers applying (student) and reviewing applicants (organisation).
type ApplicationService struct {
	api   ports.ApplicationAPI
	views *ViewRegistry
}

// NewApplicationService constructs a new ApplicationService.
func NewApplicationService(opts ApplicationServiceOptions) *ApplicationService {
	views := opts.Views
	if views == nil {
		views = NewViewRegistry(DefaultViewRegistryConfig())
	}
	return &ApplicationService{api: opts.API, views: views}
}

// Standing reports whether the student already applied to an internship.
func (s *ApplicationService) Standing(ctx context.Context, internshipID int64) (model.ApplyState, error) {
	apps, err := s.api.ListApplications(ctx, internshipID)
	if err != nil {
		return model.ApplyState{}, err
	}
	return model.ApplyStateFrom(apps), nil
}

// Apply submits an application unless one already exists; an existing
// application is reported as-is and never re-submitted.
func (s *ApplicationService) Apply(ctx context.Context, sessionID string, internshipID int64) (model.ApplyState, error) {
	state, err := s.Standing(ctx, internshipID)
	if err != nil {
		return model.ApplyState{}, err
	}
	if !state.CanApply() {
		return state, nil
	}

	app, err := s.api.CreateApplication(ctx, internshipID)
	if err != nil {
		return model.ApplyState{}, err
	}
	if !app.Status.Valid() {
		app.Status = model.ApplicationPending
	}
	if app.InternshipID == 0 {
		app.InternshipID = internshipID
	}
	if app.Internship == nil {
		app.Internship, _ = cachedInternship(s.views, sessionID, internshipID)
	}
	key := ViewKey{Session: sessionID, Name: ViewOwnApplications}
	if app.Internship != nil {
		patchOnly(ctx, s.views, key, resource.Prepend(app))
	} else {
		s.views.Invalidate(key)
	}
	return model.ApplyState{Applied: true, Status: app.Status, Submitted: true}, nil
}

// Own returns the student's applications view.
func (s *ApplicationService) Own(ctx context.Context, sessionID string, refresh bool) (resource.Snapshot[model.Application], error) {
	key := ViewKey{Session: sessionID, Name: ViewOwnApplications}
	return Sync[model.Application](ctx, s.views, key, refresh, s.api.ListOwnApplications)
}

// Applicants returns the applicants view for one internship, or for every
// own internship when internshipID is 0.
func (s *ApplicationService) Applicants(
	ctx context.Context,
	sessionID string,
	internshipID int64,
	refresh bool,
) (resource.Snapshot[model.Application], error) {
	key := ViewKey{Session: sessionID, Name: viewName(ViewApplicants, internshipID)}
	return Sync[model.Application](ctx, s.views, key, refresh, func(ctx context.Context) ([]model.Application, error) {
		return s.api.ListApplications(ctx, internshipID)
	})
}

// Decide approves or rejects a pending application and patches the cached
// applicants view. Decisions on already-decided applications are refused.
func (s *ApplicationService) Decide(
	ctx context.Context,
	sessionID string,
	internshipID, applicationID int64,
	status model.ApplicationStatus,
) (model.Application, error) {
	if status != model.ApplicationApproved && status != model.ApplicationRejected {
		return model.Application{}, apperrors.ValidationField("status", "status must be approved or rejected")
	}

	key := ViewKey{Session: sessionID, Name: viewName(ViewApplicants, internshipID)}
	if v, ok := existingView[model.Application](s.views, key); ok {
		for _, app := range v.Snapshot().Items {
			if app.ID == applicationID && !app.CanDecide() {
				return app, apperrors.Conflict("This application has already been " + string(app.Status) + ".")
			}
		}
	}

	var decided model.Application
	err := mutate[model.Application](ctx, s.views, key,
		func(ctx context.Context) error {
			var err error
			decided, err = s.api.UpdateApplicationStatus(ctx, applicationID, status)
			return err
		},
		func(items []model.Application) []model.Application {
			return resource.ReplaceWhere(
				func(a model.Application) bool { return a.ID == applicationID },
				func(a model.Application) model.Application {
					a.Status = status
					return a
				},
			)(items)
		},
	)
	if err != nil {
		return model.Application{}, err
	}
	if !decided.Status.Valid() {
		decided.Status = status
	}
	if decided.ID == 0 {
		decided.ID = applicationID
	}
	return decided, nil
}

// ApplicantResume fetches the resume attached to an application.
// ok is false when the applicant has no resume.
func (s *ApplicationService) ApplicantResume(ctx context.Context, applicationID int64) (model.Resume, bool, error) {
	res, err := s.api.ApplicationResume(ctx, applicationID)
	if apperrors.IsNotFound(err) {
		return model.Resume{}, false, nil
	}
	if err != nil {
		return model.Resume{}, false, err
	}
	return res, true, nil
}

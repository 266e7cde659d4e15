package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/internhub/marketplace-web/internal/domain/model"
	apperrors "github.com/internhub/marketplace-web/internal/errors"
	"github.com/internhub/marketplace-web/internal/mocks"
	"github.com/internhub/marketplace-web/internal/testutil"
)

func newApplicationService(t *testing.T) (*mocks.MockMarketplaceAPI, *ApplicationService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockMarketplaceAPI(ctrl)
	return api, NewApplicationService(ApplicationServiceOptions{API: api, Views: NewViewRegistry(DefaultViewRegistryConfig())})
}

func TestApplicationService_Apply(t *testing.T) {
	internship := testutil.NewInternship(8).Build()

	t.Run("submits when no application exists", func(t *testing.T) {
		api, svc := newApplicationService(t)
		api.EXPECT().ListApplications(gomock.Any(), int64(8)).Return(nil, nil)
		api.EXPECT().CreateApplication(gomock.Any(), int64(8)).
			Return(model.Application{ID: 1, Status: model.ApplicationPending}, nil)

		state, err := svc.Apply(context.Background(), testSessionID, 8)
		require.NoError(t, err)
		assert.True(t, state.Applied)
		assert.True(t, state.Submitted)
		assert.Equal(t, "Application pending", state.Label())
		assert.False(t, state.CanApply())
	})

	t.Run("existing application is never re-submitted", func(t *testing.T) {
		api, svc := newApplicationService(t)
		api.EXPECT().ListApplications(gomock.Any(), int64(8)).Return([]model.Application{
			testutil.Application(3, internship, model.ApplicationPending),
		}, nil)
		api.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).Times(0)

		state, err := svc.Apply(context.Background(), testSessionID, 8)
		require.NoError(t, err)
		assert.Equal(t, model.ApplicationPending, state.Status)
		assert.False(t, state.Submitted)
		assert.Equal(t, "Application pending", state.Label())
	})

	t.Run("missing status defaults to pending and patches own list", func(t *testing.T) {
		api, svc := newApplicationService(t)
		api.EXPECT().ListOwnApplications(gomock.Any()).Return(nil, nil)
		_, err := svc.Own(context.Background(), testSessionID, true)
		require.NoError(t, err)

		seedListing(t, svc.views, internship)

		api.EXPECT().ListApplications(gomock.Any(), int64(8)).Return(nil, nil)
		api.EXPECT().CreateApplication(gomock.Any(), int64(8)).Return(model.Application{ID: 4}, nil)
		state, err := svc.Apply(context.Background(), testSessionID, 8)
		require.NoError(t, err)
		assert.Equal(t, model.ApplicationPending, state.Status)

		own, err := svc.Own(context.Background(), testSessionID, false)
		require.NoError(t, err)
		require.Len(t, own.Items, 1)
		assert.Equal(t, int64(8), own.Items[0].InternshipID)
		require.NotNil(t, own.Items[0].Internship)
		assert.Equal(t, internship.Title, own.Items[0].Internship.Title)
	})

	t.Run("unknown internship refetches own list", func(t *testing.T) {
		api, svc := newApplicationService(t)
		api.EXPECT().ListOwnApplications(gomock.Any()).Return(nil, nil)
		_, err := svc.Own(context.Background(), testSessionID, true)
		require.NoError(t, err)

		api.EXPECT().ListApplications(gomock.Any(), int64(8)).Return(nil, nil)
		api.EXPECT().CreateApplication(gomock.Any(), int64(8)).Return(model.Application{ID: 4}, nil)
		_, err = svc.Apply(context.Background(), testSessionID, 8)
		require.NoError(t, err)

		api.EXPECT().ListOwnApplications(gomock.Any()).Return([]model.Application{
			testutil.Application(4, internship, model.ApplicationPending),
		}, nil)
		own, err := svc.Own(context.Background(), testSessionID, false)
		require.NoError(t, err)
		require.Len(t, own.Items, 1)
		assert.Equal(t, internship.Title, own.Items[0].Internship.Title)
	})
}

func TestApplicationService_Decide(t *testing.T) {
	internship := testutil.NewInternship(12).Build()
	loaded := []model.Application{
		testutil.Application(42, internship, model.ApplicationPending),
		testutil.Application(43, internship, model.ApplicationRejected),
	}

	api, svc := newApplicationService(t)
	ctx := context.Background()
	api.EXPECT().ListApplications(gomock.Any(), int64(12)).Return(loaded, nil)
	_, err := svc.Applicants(ctx, testSessionID, 12, true)
	require.NoError(t, err)

	api.EXPECT().UpdateApplicationStatus(gomock.Any(), int64(42), model.ApplicationApproved).
		Return(model.Application{ID: 42, Status: model.ApplicationApproved}, nil)
	decided, err := svc.Decide(ctx, testSessionID, 12, 42, model.ApplicationApproved)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationApproved, decided.Status)

	snap, err := svc.Applicants(ctx, testSessionID, 12, false)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationApproved, snap.Items[0].Status)
	assert.False(t, snap.Items[0].CanDecide(), "decided rows lose their buttons")

	_, err = svc.Decide(ctx, testSessionID, 12, 43, model.ApplicationApproved)
	assert.True(t, apperrors.IsConflict(err))

	_, err = svc.Decide(ctx, testSessionID, 12, 42, model.ApplicationPending)
	assert.True(t, apperrors.IsValidation(err))
}

func TestApplicationService_Decide_FailureLeavesStatus(t *testing.T) {
	internship := testutil.NewInternship(12).Build()
	api, svc := newApplicationService(t)
	ctx := context.Background()
	api.EXPECT().ListApplications(gomock.Any(), int64(12)).
		Return([]model.Application{testutil.Application(42, internship, model.ApplicationPending)}, nil)
	_, err := svc.Applicants(ctx, testSessionID, 12, true)
	require.NoError(t, err)

	api.EXPECT().UpdateApplicationStatus(gomock.Any(), int64(42), model.ApplicationRejected).
		Return(model.Application{}, apperrors.FromStatus(403, ""))
	_, err = svc.Decide(ctx, testSessionID, 12, 42, model.ApplicationRejected)
	require.Error(t, err)

	snap, _ := svc.Applicants(ctx, testSessionID, 12, false)
	assert.Equal(t, model.ApplicationPending, snap.Items[0].Status)
}

func TestApplicationService_ApplicantResume(t *testing.T) {
	api, svc := newApplicationService(t)
	api.EXPECT().ApplicationResume(gomock.Any(), int64(42)).Return(model.Resume{}, apperrors.FromStatus(404, ""))
	_, ok, err := svc.ApplicantResume(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, ok)

	api.EXPECT().ApplicationResume(gomock.Any(), int64(43)).Return(model.Resume{ID: 5, Title: "CV"}, nil)
	res, ok, err := svc.ApplicantResume(context.Background(), 43)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "CV", res.Title)
}

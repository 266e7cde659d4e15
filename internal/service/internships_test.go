package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/internhub/marketplace-web/internal/domain/model"
	"github.com/internhub/marketplace-web/internal/domain/resource"
	"github.com/internhub/marketplace-web/internal/mocks"
	"github.com/internhub/marketplace-web/internal/testutil"
)

const testSessionID = "sess-1"

func newInternshipService(t *testing.T) (*mocks.MockMarketplaceAPI, *InternshipService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockMarketplaceAPI(ctrl)
	return api, NewInternshipService(InternshipServiceOptions{API: api, Views: NewViewRegistry(DefaultViewRegistryConfig())})
}

func validInput() model.InternshipInput {
	start := testutil.TestTime()
	return model.InternshipInput{
		Title:       "Backend intern",
		Description: "Go services",
		Location:    "Ulaanbaatar",
		StartDate:   start,
		EndDate:     start.AddDate(0, 3, 0),
	}
}

func TestInternshipService_Browse(t *testing.T) {
	api, svc := newInternshipService(t)
	ctx := context.Background()
	api.EXPECT().ListInternships(gomock.Any(), model.InternshipQuery{}).Return(testutil.Internships(3), nil).Times(1)

	snap, err := svc.Browse(ctx, testSessionID, ViewInternships, true)
	require.NoError(t, err)
	assert.Equal(t, resource.StateReady, snap.State)
	assert.Len(t, snap.Items, 3)

	// paging within the same view reuses the fetched items
	snap, err = svc.Browse(ctx, testSessionID, "", false)
	require.NoError(t, err)
	assert.Len(t, snap.Items, 3)
}

func TestInternshipService_Browse_ErrorDropsItems(t *testing.T) {
	api, svc := newInternshipService(t)
	ctx := context.Background()
	api.EXPECT().ListInternships(gomock.Any(), gomock.Any()).Return(testutil.Internships(2), nil)
	api.EXPECT().ListInternships(gomock.Any(), gomock.Any()).Return(nil, errors.New("upstream down"))

	_, err := svc.Browse(ctx, testSessionID, ViewAdminInternships, true)
	require.NoError(t, err)
	snap, err := svc.Browse(ctx, testSessionID, ViewAdminInternships, true)
	require.Error(t, err)
	assert.Equal(t, resource.StateError, snap.State)
	assert.Empty(t, snap.Items)
}

func TestInternshipService_Latest(t *testing.T) {
	api, svc := newInternshipService(t)
	items := testutil.Internships(5)
	for i := range items {
		items[i].CreatedAt = testutil.TestTime().Add(time.Duration(i) * time.Hour)
	}
	api.EXPECT().ListInternships(gomock.Any(), gomock.Any()).Return(items, nil)

	latest, err := svc.Latest(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, latest, 3)
	assert.Equal(t, []int64{5, 4, 3}, []int64{latest[0].ID, latest[1].ID, latest[2].ID})
}

func TestInternshipService_Create(t *testing.T) {
	api, svc := newInternshipService(t)
	ctx := context.Background()
	api.EXPECT().ListOwnInternships(gomock.Any()).Return(testutil.Internships(1), nil)
	_, err := svc.Own(ctx, testSessionID, true)
	require.NoError(t, err)

	created := testutil.NewInternship(99).WithTitle("Backend intern").Build()
	api.EXPECT().CreateInternship(gomock.Any(), gomock.Any()).Return(created, nil)

	got, fieldErrs, err := svc.Create(ctx, testSessionID, validInput())
	require.NoError(t, err)
	assert.Nil(t, fieldErrs)
	assert.Equal(t, int64(99), got.ID)

	snap, err := svc.Own(ctx, testSessionID, false)
	require.NoError(t, err)
	require.Len(t, snap.Items, 2)
	assert.Equal(t, int64(99), snap.Items[0].ID, "new posting is prepended")
}

func TestInternshipService_Create_InvalidSkipsAPI(t *testing.T) {
	_, svc := newInternshipService(t)
	in := validInput()
	in.Title = "  "
	in.EndDate = in.StartDate.AddDate(0, 0, -1)

	_, fieldErrs, err := svc.Create(context.Background(), testSessionID, in)
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "title")
	assert.ErrorIs(t, fieldErrs["endDate"], model.ErrEndBeforeStart)
}

func TestInternshipService_Update_FailureLeavesCache(t *testing.T) {
	api, svc := newInternshipService(t)
	ctx := context.Background()
	api.EXPECT().ListOwnInternships(gomock.Any()).Return(testutil.Internships(2), nil)
	_, err := svc.Own(ctx, testSessionID, true)
	require.NoError(t, err)

	api.EXPECT().UpdateInternship(gomock.Any(), int64(1), gomock.Any()).Return(model.Internship{}, errors.New("409"))
	_, _, err = svc.Update(ctx, testSessionID, 1, validInput())
	require.Error(t, err)

	snap, _ := svc.Own(ctx, testSessionID, false)
	assert.Equal(t, "Internship 1", snap.Items[0].Title)

	updated := testutil.NewInternship(1).WithTitle("Backend intern").Build()
	api.EXPECT().UpdateInternship(gomock.Any(), int64(1), gomock.Any()).Return(updated, nil)
	_, _, err = svc.Update(ctx, testSessionID, 1, validInput())
	require.NoError(t, err)
	snap, _ = svc.Own(ctx, testSessionID, false)
	assert.Equal(t, "Backend intern", snap.Items[0].Title)
}

func TestInternshipService_Delete_PatchesEveryListing(t *testing.T) {
	api, svc := newInternshipService(t)
	ctx := context.Background()
	api.EXPECT().ListInternships(gomock.Any(), gomock.Any()).Return(testutil.Internships(3), nil)
	api.EXPECT().ListOwnInternships(gomock.Any()).Return(testutil.Internships(3), nil)
	_, err := svc.Browse(ctx, testSessionID, ViewAdminInternships, true)
	require.NoError(t, err)
	_, err = svc.Own(ctx, testSessionID, true)
	require.NoError(t, err)

	api.EXPECT().DeleteInternship(gomock.Any(), int64(2)).Return(nil)
	require.NoError(t, svc.Delete(ctx, testSessionID, 2))

	admin, _ := svc.Browse(ctx, testSessionID, ViewAdminInternships, false)
	own, _ := svc.Own(ctx, testSessionID, false)
	for _, snap := range []resource.Snapshot[model.Internship]{admin, own} {
		require.Len(t, snap.Items, 2)
		for _, it := range snap.Items {
			assert.NotEqual(t, int64(2), it.ID)
		}
	}
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/internhub/marketplace-web/internal/domain/model"
	"github.com/internhub/marketplace-web/internal/mocks"
)

func newOrganisationService(t *testing.T) (*mocks.MockMarketplaceAPI, *OrganisationService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockMarketplaceAPI(ctrl)
	return api, NewOrganisationService(OrganisationServiceOptions{API: api, Views: NewViewRegistry(DefaultViewRegistryConfig())})
}

func orgs() []model.User {
	return []model.User{
		{ID: 1, Name: "Acme", Verified: true},
		{ID: 2, Name: "Globex"},
		{ID: 3, Name: "Initech"},
	}
}

func TestOrganisationService_TabsShareOneFetch(t *testing.T) {
	api, svc := newOrganisationService(t)
	ctx := context.Background()
	api.EXPECT().ListOrganisations(gomock.Any(), nil).Return(orgs(), nil).Times(1)

	tests := []struct {
		tab  model.OrganisationTab
		want int
	}{
		{model.OrganisationTabAll, 3},
		{model.OrganisationTabVerified, 1},
		{model.OrganisationTabUnverified, 2},
	}
	for i, tt := range tests {
		snap, err := svc.List(ctx, testSessionID, tt.tab, i == 0)
		require.NoError(t, err)
		assert.Len(t, snap.Items, tt.want, string(tt.tab))
	}
}

func TestOrganisationService_ApproveAndDecline(t *testing.T) {
	api, svc := newOrganisationService(t)
	ctx := context.Background()
	api.EXPECT().ListOrganisations(gomock.Any(), nil).Return(orgs(), nil)
	_, err := svc.List(ctx, testSessionID, model.OrganisationTabAll, true)
	require.NoError(t, err)

	verified := true
	api.EXPECT().UpdateUser(gomock.Any(), int64(2), model.UserUpdate{Verified: &verified}).
		Return(model.User{ID: 2, Verified: true}, nil)
	require.NoError(t, svc.SetVerified(ctx, testSessionID, 2, true))

	api.EXPECT().DeleteUser(gomock.Any(), int64(3)).Return(nil)
	require.NoError(t, svc.Decline(ctx, testSessionID, 3))

	unverified, err := svc.List(ctx, testSessionID, model.OrganisationTabUnverified, false)
	require.NoError(t, err)
	assert.Empty(t, unverified.Items)

	verifiedTab, err := svc.List(ctx, testSessionID, model.OrganisationTabVerified, false)
	require.NoError(t, err)
	assert.Len(t, verifiedTab.Items, 2)
}

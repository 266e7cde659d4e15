package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/internhub/marketplace-web/internal/domain/model"
	apperrors "github.com/internhub/marketplace-web/internal/errors"
	"github.com/internhub/marketplace-web/internal/mocks"
)

func newResumeService(t *testing.T) (*mocks.MockMarketplaceAPI, *ResumeService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockMarketplaceAPI(ctrl)
	return api, NewResumeService(ResumeServiceOptions{API: api})
}

func TestResumeService_Mine(t *testing.T) {
	tests := []struct {
		name    string
		res     model.Resume
		err     error
		wantOK  bool
		wantErr bool
	}{
		{name: "present", res: model.Resume{ID: 2}, wantOK: true},
		{name: "absent is not an error", err: apperrors.FromStatus(404, "Resume not found")},
		{name: "other failures propagate", err: errors.New("down"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, svc := newResumeService(t)
			api.EXPECT().MyResume(gomock.Any()).Return(tt.res, tt.err)
			_, ok, err := svc.Mine(context.Background())
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestResumeService_Save(t *testing.T) {
	in := model.ResumeInput{Title: "Go developer", Skills: "go, sql"}

	t.Run("creates when absent", func(t *testing.T) {
		api, svc := newResumeService(t)
		api.EXPECT().MyResume(gomock.Any()).Return(model.Resume{}, apperrors.FromStatus(404, ""))
		api.EXPECT().CreateResume(gomock.Any(), in).Return(model.Resume{ID: 7, Title: in.Title}, nil)

		saved, fieldErrs, err := svc.Save(context.Background(), in)
		require.NoError(t, err)
		assert.Nil(t, fieldErrs)
		assert.Equal(t, int64(7), saved.ID)
	})

	t.Run("updates when present", func(t *testing.T) {
		api, svc := newResumeService(t)
		api.EXPECT().MyResume(gomock.Any()).Return(model.Resume{ID: 7}, nil)
		api.EXPECT().UpdateResume(gomock.Any(), int64(7), in).Return(model.Resume{ID: 7, Title: in.Title}, nil)

		saved, _, err := svc.Save(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, in.Title, saved.Title)
	})

	t.Run("invalid entries skip the API", func(t *testing.T) {
		_, svc := newResumeService(t)
		bad := model.ResumeInput{Experiences: []model.Experience{{Position: "Intern"}}}
		_, fieldErrs, err := svc.Save(context.Background(), bad)
		require.NoError(t, err)
		assert.Contains(t, fieldErrs, "experiences[0].company")
	})
}

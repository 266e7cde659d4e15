package service

import (
	"context"

	"github.com/internhub/marketplace-web/internal/domain/model"
	apperrors "github.com/internhub/marketplace-web/internal/errors"
	"github.com/internhub/marketplace-web/internal/ports"
)

// ResumeServiceOptions groups dependencies for ResumeService.
type ResumeServiceOptions struct {
	API ports.ResumeAPI
}

// ResumeService manages the student's CV.
type ResumeService struct {
	api ports.ResumeAPI
}

// NewResumeService constructs a new ResumeService.
func NewResumeService(opts ResumeServiceOptions) *ResumeService {
	return &ResumeService{api: opts.API}
}

// Mine returns the student's resume. A missing resume (404) is not an error: ok is false.
func (s *ResumeService) Mine(ctx context.Context) (model.Resume, bool, error) {
	res, err := s.api.MyResume(ctx)
	if apperrors.IsNotFound(err) {
		return model.Resume{}, false, nil
	}
	if err != nil {
		return model.Resume{}, false, err
	}
	return res, true, nil
}

// Save creates the resume when none exists and updates it otherwise.
// Field problems are returned in the map without calling the API.
func (s *ResumeService) Save(ctx context.Context, in model.ResumeInput) (model.Resume, map[string]string, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return model.Resume{}, errs, nil
	}

	current, exists, err := s.Mine(ctx)
	if err != nil {
		return model.Resume{}, nil, err
	}

	var saved model.Resume
	if exists {
		saved, err = s.api.UpdateResume(ctx, current.ID, in)
	} else {
		saved, err = s.api.CreateResume(ctx, in)
	}
	if err != nil {
		return model.Resume{}, nil, err
	}
	return saved, nil, nil
}

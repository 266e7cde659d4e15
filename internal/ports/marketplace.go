package ports

import (
	"context"

	"github.com/internhub/marketplace-web/internal/domain/model"
)

// Marketplace API ports. Calls authenticate with the token carried by ctx (see WithAccessToken).

// InternshipAPI covers internship postings.
type InternshipAPI interface {
	ListInternships(ctx context.Context, q model.InternshipQuery) ([]model.Internship, error)
	GetInternship(ctx context.Context, id int64) (model.Internship, error)
	ListOwnInternships(ctx context.Context) ([]model.Internship, error)
	CreateInternship(ctx context.Context, in model.InternshipInput) (model.Internship, error)
	UpdateInternship(ctx context.Context, id int64, in model.InternshipInput) (model.Internship, error)
	DeleteInternship(ctx context.Context, id int64) error
}

// FavouriteAPI covers a student's saved internships.
type FavouriteAPI interface {
	ListFavourites(ctx context.Context) ([]model.Favourite, error)
	AddFavourite(ctx context.Context, internshipID int64) error
	RemoveFavourite(ctx context.Context, internshipID int64) error
	CheckFavourite(ctx context.Context, internshipID int64) (bool, error)
}

// ApplicationAPI covers applications from both sides.
type ApplicationAPI interface {
	CreateApplication(ctx context.Context, internshipID int64) (model.Application, error)
	ListApplications(ctx context.Context, internshipID int64) ([]model.Application, error)
	ListOwnApplications(ctx context.Context) ([]model.Application, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status model.ApplicationStatus) (model.Application, error)
	ApplicationResume(ctx context.Context, id int64) (model.Resume, error)
}

// ResumeAPI covers the student's CV.
type ResumeAPI interface {
	MyResume(ctx context.Context) (model.Resume, error)
	GetResume(ctx context.Context, id int64) (model.Resume, error)
	CreateResume(ctx context.Context, in model.ResumeInput) (model.Resume, error)
	UpdateResume(ctx context.Context, id int64, in model.ResumeInput) (model.Resume, error)
}

// NotificationAPI covers in-app notifications.
type NotificationAPI interface {
	ListNotifications(ctx context.Context) ([]model.Notification, error)
	MarkNotificationSeen(ctx context.Context, id int64) error
}

// UserAPI covers admin moderation of accounts.
type UserAPI interface {
	ListOrganisations(ctx context.Context, verified *bool) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, in model.UserUpdate) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// MarketplaceAPI is the full outbound surface.
type MarketplaceAPI interface {
	Authenticator
	ProfileFetcher
	InternshipAPI
	FavouriteAPI
	ApplicationAPI
	ResumeAPI
	NotificationAPI
	UserAPI
}

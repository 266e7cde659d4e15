// Package mocks provides mock implementations of the ports used by the web front end.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	api := mocks.NewMockMarketplaceAPI(ctrl)
//	api.EXPECT().GetInternship(gomock.Any(), int64(7)).Return(internship, nil)
package mocks

// Generate mock for MarketplaceAPI interface from internal/ports package.
// MockMarketplaceAPI also satisfies each of the narrower ports it embeds
// (InternshipAPI, FavouriteAPI, ApplicationAPI, ResumeAPI, NotificationAPI, UserAPI, ...).
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=marketplace_api_mock.go github.com/internhub/marketplace-web/internal/ports MarketplaceAPI

// Generate mock for SessionStore interface from internal/ports package.
// This creates MockSessionStore with methods: Get, NextSeq, Commit, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/internhub/marketplace-web/internal/ports SessionStore

// Package testutil provides testing utilities and fixtures for the web front end.
package testutil

import (
	"strconv"
	"time"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	"github.com/internhub/marketplace-web/internal/domain/model"
)

// InternshipBuilder provides a fluent interface for building internships in tests.
type InternshipBuilder struct {
	in model.Internship
}

// NewInternship creates an InternshipBuilder with sensible defaults.
func NewInternship(id int64) *InternshipBuilder {
	start := TestTime()
	return &InternshipBuilder{
		in: model.Internship{
			ID:          id,
			Title:       "Backend intern",
			Description: "Build APIs",
			Location:    "Ulaanbaatar",
			StartDate:   start,
			EndDate:     start.AddDate(0, 3, 0),
			Employer:    &model.User{ID: 100, Name: "Acme LLC", Role: "organisation", Verified: true},
		},
	}
}

// WithTitle sets the title.
func (b *InternshipBuilder) WithTitle(title string) *InternshipBuilder {
	b.in.Title = title
	return b
}

// WithEmployer sets the employer name.
func (b *InternshipBuilder) WithEmployer(name string) *InternshipBuilder {
	b.in.Employer = &model.User{ID: 100, Name: name, Role: "organisation"}
	return b
}

// WithLocation sets the location.
func (b *InternshipBuilder) WithLocation(loc string) *InternshipBuilder {
	b.in.Location = loc
	return b
}

// Build returns the internship.
func (b *InternshipBuilder) Build() model.Internship {
	return b.in
}

// Internships builds n internships with ids 1..n and distinct titles.
func Internships(n int) []model.Internship {
	out := make([]model.Internship, n)
	for i := range out {
		out[i] = NewInternship(int64(i + 1)).WithTitle("Internship " + strconv.Itoa(i+1)).Build()
	}
	return out
}

// Identity returns a verified identity with the given role.
func Identity(id int64, role domainauth.Role) domainauth.Identity {
	return domainauth.Identity{
		ID:       id,
		Name:     string(role) + " user",
		Email:    string(role) + "@example.com",
		Role:     role,
		Verified: true,
	}
}

// SignedInSession returns a settled session holding token for an identity with role.
func SignedInSession(id string, role domainauth.Role) domainauth.Session {
	ident := Identity(1, role)
	return domainauth.Session{
		ID:          id,
		Token:       "token-" + id,
		Identity:    &ident,
		Settled:     true,
		Seq:         1,
		ValidatedAt: time.Now(),
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

// AnonymousSession returns a settled session without a token.
func AnonymousSession(id string) domainauth.Session {
	return domainauth.Session{ID: id, Settled: true, ExpiresAt: time.Now().Add(time.Hour)}
}

// Application returns an application in status for internship.
func Application(id int64, internship model.Internship, status model.ApplicationStatus) model.Application {
	return model.Application{
		ID:         id,
		Status:     status,
		Internship: &internship,
		Student:    &model.User{ID: 7, Name: "Student " + strconv.FormatInt(id, 10), Email: "s@example.com"},
		CreatedAt:  TestTime(),
	}
}

//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInternshipInput_Validate(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	valid := InternshipInput{Title: "Go intern", Description: "d", Location: "UB", StartDate: start, EndDate: start.AddDate(0, 3, 0)}
	assert.Nil(t, valid.Validate())

	errs := InternshipInput{}.Validate()
	for _, field := range []string{"title", "description", "location", "startDate", "endDate"} {
		assert.Contains(t, errs, field)
	}

	backwards := valid
	backwards.EndDate = start.AddDate(0, 0, -1)
	assert.Equal(t, ErrEndBeforeStart, backwards.Validate()["endDate"])
}

func TestInternshipInput_Normalize(t *testing.T) {
	in := InternshipInput{Title: "  Go  ", Location: " UB "}
	in.Normalize()
	assert.Equal(t, "Go", in.Title)
	assert.Equal(t, "UB", in.Location)
}

func TestInternship_EmployerName(t *testing.T) {
	assert.Empty(t, Internship{}.EmployerName())
	assert.Equal(t, "Acme", Internship{Employer: &User{Name: "Acme"}}.EmployerName())
}

func TestOrganisationTab(t *testing.T) {
	assert.Equal(t, OrganisationTabAll, ParseOrganisationTab("bogus"))
	assert.Equal(t, OrganisationTabVerified, ParseOrganisationTab("verified"))
	assert.True(t, OrganisationTabVerified.Matches(User{Verified: true}))
	assert.False(t, OrganisationTabUnverified.Matches(User{Verified: true}))
	assert.True(t, OrganisationTabAll.Matches(User{}))
}

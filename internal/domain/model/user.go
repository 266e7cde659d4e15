//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// User is a marketplace account as embedded in other resources
// (internship employer, applicant) or listed for admin moderation.
type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role,omitempty"`
	Verified    bool   `json:"verified"`
}

// OrganisationTab selects which organisations the admin view lists.
type OrganisationTab string

const (
	OrganisationTabAll        OrganisationTab = "all"
	OrganisationTabVerified   OrganisationTab = "verified"
	OrganisationTabUnverified OrganisationTab = "unverified"
)

// ParseOrganisationTab normalizes a tab name, defaulting to all.
func ParseOrganisationTab(value string) OrganisationTab {
	switch OrganisationTab(value) {
	case OrganisationTabVerified:
		return OrganisationTabVerified
	case OrganisationTabUnverified:
		return OrganisationTabUnverified
	default:
		return OrganisationTabAll
	}
}

// Matches reports whether the organisation belongs in the tab.
func (t OrganisationTab) Matches(u User) bool {
	switch t {
	case OrganisationTabVerified:
		return u.Verified
	case OrganisationTabUnverified:
		return !u.Verified
	default:
		return true
	}
}

// UserUpdate is the partial update accepted by PATCH /users/{id}.
type UserUpdate struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Verified    *bool   `json:"verified,omitempty"`
}

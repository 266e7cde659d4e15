//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrNameRequired     = errors.New("name is required")
	ErrPhoneRequired    = errors.New("phone number is required")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrRoleNotAllowed   = errors.New("role must be student or organisation")
)

// Credentials is the login body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks required fields.
func (c Credentials) Validate() map[string]error {
	errs := map[string]error{}
	if strings.TrimSpace(c.Email) == "" {
		errs["email"] = ErrEmailRequired
	}
	if c.Password == "" {
		errs["password"] = ErrPasswordRequired
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Registration is the self-service sign-up body.
type Registration struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
	Role            string `json:"role"`
}

// Validate checks required fields and the password confirmation.
// Only student and organisation accounts can be self-registered.
func (r Registration) Validate() map[string]error {
	errs := map[string]error{}
	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = ErrNameRequired
	}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = ErrEmailRequired
	}
	if strings.TrimSpace(r.PhoneNumber) == "" {
		errs["phoneNumber"] = ErrPhoneRequired
	}
	if r.Password == "" {
		errs["password"] = ErrPasswordRequired
	} else if r.Password != r.ConfirmPassword {
		errs["confirmPassword"] = ErrPasswordMismatch
	}
	if r.Role != "student" && r.Role != "organisation" {
		errs["role"] = ErrRoleNotAllowed
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the calendar-date form used by HTML date inputs.
const DateLayout = "2006-01-02"

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrLocationRequired    = errors.New("location is required")
	ErrStartDateRequired   = errors.New("start date is required")
	ErrEndDateRequired     = errors.New("end date is required")
	ErrEndBeforeStart      = errors.New("end date must not be before start date")
)

// Internship is a posting published by an organisation.
type Internship struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	SalaryRange string    `json:"salaryRange,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Employer    *User     `json:"employer,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// EmployerName returns the employer's display name or "".
func (i Internship) EmployerName() string {
	if i.Employer == nil {
		return ""
	}
	return i.Employer.Name
}

// InternshipInput is the body for creating or updating an internship.
type InternshipInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	SalaryRange string    `json:"salaryRange,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

// Normalize trims free-text fields.
func (in *InternshipInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	in.SalaryRange = strings.TrimSpace(in.SalaryRange)
}

// Validate checks required fields. Field names match the form inputs.
func (in InternshipInput) Validate() map[string]error {
	errs := map[string]error{}
	if in.Title == "" {
		errs["title"] = ErrTitleRequired
	}
	if in.Description == "" {
		errs["description"] = ErrDescriptionRequired
	}
	if in.Location == "" {
		errs["location"] = ErrLocationRequired
	}
	if in.StartDate.IsZero() {
		errs["startDate"] = ErrStartDateRequired
	}
	if in.EndDate.IsZero() {
		errs["endDate"] = ErrEndDateRequired
	}
	if !in.StartDate.IsZero() && !in.EndDate.IsZero() && in.EndDate.Before(in.StartDate) {
		errs["endDate"] = ErrEndBeforeStart
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// InputFromInternship pre-fills an edit form.
func InputFromInternship(i Internship) InternshipInput {
	return InternshipInput{
		Title:       i.Title,
		Description: i.Description,
		Location:    i.Location,
		SalaryRange: i.SalaryRange,
		StartDate:   i.StartDate,
		EndDate:     i.EndDate,
	}
}

// InternshipQuery filters the public internship listing.
type InternshipQuery struct {
	Title string
}

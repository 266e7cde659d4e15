//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
)

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Valid reports whether the status is supported.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	default:
		return false
	}
}

// ParseApplicationStatus normalizes a status string and reports whether it is supported.
func ParseApplicationStatus(value string) (ApplicationStatus, bool) {
	s := ApplicationStatus(strings.ToLower(strings.TrimSpace(value)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// Label is the human-readable status.
func (s ApplicationStatus) Label() string {
	switch s {
	case ApplicationPending:
		return "Application pending"
	case ApplicationApproved:
		return "Application approved"
	case ApplicationRejected:
		return "Application rejected"
	default:
		return "Apply now"
	}
}

// Application is a student's application to an internship.
type Application struct {
	ID           int64             `json:"id"`
	Status       ApplicationStatus `json:"status"`
	InternshipID int64             `json:"internshipId,omitempty"`
	Internship   *Internship       `json:"internship,omitempty"`
	Student      *User             `json:"student,omitempty"`
	CreatedAt    time.Time         `json:"createdAt,omitzero"`
}

// CanDecide reports whether an organisation may approve or reject the application.
// Decisions are only taken from pending.
func (a Application) CanDecide() bool { return a.Status == ApplicationPending }

// ApplicationStatusUpdate is the body of PATCH /applications/{id}.
type ApplicationStatusUpdate struct {
	Status ApplicationStatus `json:"status"`
}

// ApplyState summarises a student's standing for one internship.
type ApplyState struct {
	Applied bool
	Status  ApplicationStatus
	// Submitted is set when the application was created by this request.
	Submitted bool
}

// CanApply reports whether the "Apply now" action is offered.
func (s ApplyState) CanApply() bool { return !s.Applied }

// Label is the apply button text.
func (s ApplyState) Label() string {
	if !s.Applied {
		return "Apply now"
	}
	return s.Status.Label()
}

// ApplyStateFrom derives the standing from the student's applications for one internship.
func ApplyStateFrom(apps []Application) ApplyState {
	if len(apps) == 0 {
		return ApplyState{}
	}
	return ApplyState{Applied: true, Status: apps[0].Status}
}

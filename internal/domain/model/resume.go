//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strconv"
	"strings"
	"time"
)

// Experience is a work-history entry of a resume.
type Experience struct {
	ID          int64      `json:"id,omitempty"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
}

// Education is a schooling entry of a resume.
type Education struct {
	ID           int64      `json:"id,omitempty"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy,omitempty"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Description  string     `json:"description,omitempty"`
	Location     string     `json:"location,omitempty"`
}

// Resume is a student's CV.
type Resume struct {
	ID             int64        `json:"id"`
	Title          string       `json:"title,omitempty"`
	Summary        string       `json:"summary,omitempty"`
	Skills         string       `json:"skills,omitempty"`
	Languages      string       `json:"languages,omitempty"`
	Certifications string       `json:"certifications,omitempty"`
	Experiences    []Experience `json:"experiences,omitempty"`
	Education      []Education  `json:"education,omitempty"`
	CreatedAt      time.Time    `json:"createdAt,omitzero"`
	UpdatedAt      time.Time    `json:"updatedAt,omitzero"`
}

// SkillList splits the comma-separated skills field.
func (r Resume) SkillList() []string { return splitList(r.Skills) }

// LanguageList splits the comma-separated languages field.
func (r Resume) LanguageList() []string { return splitList(r.Languages) }

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ResumeInput is the body for creating or updating a resume.
type ResumeInput struct {
	Title          string       `json:"title,omitempty"`
	Summary        string       `json:"summary,omitempty"`
	Skills         string       `json:"skills,omitempty"`
	Languages      string       `json:"languages,omitempty"`
	Certifications string       `json:"certifications,omitempty"`
	Experiences    []Experience `json:"experiences"`
	Education      []Education  `json:"education"`
}

// InputFromResume pre-fills the edit form.
func InputFromResume(r Resume) ResumeInput {
	return ResumeInput{
		Title:          r.Title,
		Summary:        r.Summary,
		Skills:         r.Skills,
		Languages:      r.Languages,
		Certifications: r.Certifications,
		Experiences:    r.Experiences,
		Education:      r.Education,
	}
}

// Validate checks the required fields of nested entries. Keys use the
// form input names, e.g. "experiences[0].company".
func (in ResumeInput) Validate() map[string]string {
	errs := map[string]string{}
	for i, e := range in.Experiences {
		if strings.TrimSpace(e.Company) == "" {
			errs[indexed("experiences", i, "company")] = "Company is required"
		}
		if strings.TrimSpace(e.Position) == "" {
			errs[indexed("experiences", i, "position")] = "Position is required"
		}
		if e.StartDate.IsZero() {
			errs[indexed("experiences", i, "startDate")] = "Start date is required"
		}
	}
	for i, e := range in.Education {
		if strings.TrimSpace(e.School) == "" {
			errs[indexed("education", i, "school")] = "School is required"
		}
		if strings.TrimSpace(e.Degree) == "" {
			errs[indexed("education", i, "degree")] = "Degree is required"
		}
		if e.StartDate.IsZero() {
			errs[indexed("education", i, "startDate")] = "Start date is required"
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func indexed(group string, i int, field string) string {
	return group + "[" + strconv.Itoa(i) + "]." + field
}

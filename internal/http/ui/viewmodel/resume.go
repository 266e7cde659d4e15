package viewmodel

import (
	"fmt"

	"github.com/internhub/marketplace-web/internal/domain/model"
)

// Resume row groups, matching the indexed form input names.
const (
	GroupExperiences = "experiences"
	GroupEducation   = "education"
)

// ResumeRow is one editable experience or education entry of the CV form.
type ResumeRow struct {
	Group      string
	Index      int
	Experience model.Experience
	Education  model.Education
	Errors     map[string]string
}

// Name returns the input name of field in this row, e.g. experiences[2].company.
func (r ResumeRow) Name(field string) string {
	return fmt.Sprintf("%s[%d].%s", r.Group, r.Index, field)
}

// Error returns the validation message for field in this row, if any.
func (r ResumeRow) Error(field string) string {
	return r.Errors[r.Name(field)]
}

// ExperienceRows builds the experience rows of the form.
func ExperienceRows(items []model.Experience, errs map[string]string) []ResumeRow {
	rows := make([]ResumeRow, 0, len(items))
	for i, e := range items {
		rows = append(rows, ResumeRow{Group: GroupExperiences, Index: i, Experience: e, Errors: errs})
	}
	return rows
}

// EducationRows builds the education rows of the form.
func EducationRows(items []model.Education, errs map[string]string) []ResumeRow {
	rows := make([]ResumeRow, 0, len(items))
	for i, e := range items {
		rows = append(rows, ResumeRow{Group: GroupEducation, Index: i, Education: e, Errors: errs})
	}
	return rows
}

// AddRowButton is the "add entry" control; it carries the index the next row will get.
type AddRowButton struct {
	Group     string
	NextIndex int
}

// ResumeRowAdded is the fragment appended when a row is added.
type ResumeRowAdded struct {
	Row    ResumeRow
	Button AddRowButton
}

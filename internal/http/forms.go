package httpx

import (
	"maps"
	"net/http"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/internhub/marketplace-web/internal/domain/model"
	"github.com/internhub/marketplace-web/internal/http/validation"
)

// maxFormBytes bounds urlencoded bodies; the resume form is the largest.
const maxFormBytes = 1 << 20

//nolint:gochecknoglobals // compiled once
var (
	phonePattern  = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{4,19}$`)
	nestedPattern = regexp.MustCompile(`^(experiences|education)\[(\d+)\]\.([A-Za-z]+)$`)
)

func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	return r.ParseForm()
}

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}

func parseDate(v string) time.Time {
	t, err := time.Parse(model.DateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}
	}
	return t
}

// credentialsForm reads the login form.
func credentialsForm(r *http.Request) (model.Credentials, map[string]string) {
	c := model.Credentials{Email: formValue(r, "email"), Password: r.PostFormValue("password")}
	fv := validation.New().
		Validate("email", c.Email, validation.Required("Email", 254), validation.Email("Email")).
		Validate("password", c.Password, validation.Required("Password", 256))
	return c, fv.Errors()
}

// registrationForm reads the sign-up form. Only students and organisations may self-register.
func registrationForm(r *http.Request) (model.Registration, map[string]string) {
	reg := model.Registration{
		Name:            formValue(r, "name"),
		Email:           formValue(r, "email"),
		PhoneNumber:     formValue(r, "phoneNumber"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
		Role:            strings.ToLower(formValue(r, "role")),
	}
	fv := validation.New().
		Validate("name", reg.Name, validation.Required("Name", 200)).
		Validate("email", reg.Email, validation.Required("Email", 254), validation.Email("Email")).
		Validate("phoneNumber", reg.PhoneNumber,
			validation.Required("Phone number", 20),
			validation.Pattern("Phone number", phonePattern)).
		Validate("password", reg.Password, validation.Required("Password", 256)).
		Validate("confirmPassword", reg.ConfirmPassword, validation.Equal("Passwords do not match.", reg.Password)).
		Validate("role", reg.Role, validation.OneOf("Account type", []string{"student", "organisation"}))
	return reg, fv.Errors()
}

// internshipForm reads the create/edit internship form.
func internshipForm(r *http.Request) (model.InternshipInput, map[string]string) {
	in := model.InternshipInput{
		Title:       formValue(r, "title"),
		Description: formValue(r, "description"),
		Location:    formValue(r, "location"),
		SalaryRange: formValue(r, "salaryRange"),
		StartDate:   parseDate(r.PostFormValue("startDate")),
		EndDate:     parseDate(r.PostFormValue("endDate")),
	}
	fv := validation.New().
		Validate("title", in.Title, validation.Required("Title", 200)).
		Validate("description", in.Description, validation.Required("Description", 5000)).
		Validate("location", in.Location, validation.Required("Location", 200)).
		Validate("salaryRange", in.SalaryRange, validation.Optional("Salary range", 100)).
		Validate("startDate", r.PostFormValue("startDate"),
			validation.Required("Start date", 10), validation.Date("Start date")).
		Validate("endDate", r.PostFormValue("endDate"),
			validation.Required("End date", 10), validation.Date("End date"))
	for field, msg := range fieldMessages(in.Validate()) {
		fv.Add(field, msg)
	}
	return in, fv.Errors()
}

// resumeForm reads the CV form. Experience and education rows use indexed
// names such as experiences[0].company; empty rows are dropped.
func resumeForm(r *http.Request) (model.ResumeInput, map[string]string) {
	in := model.ResumeInput{
		Title:          formValue(r, "title"),
		Summary:        formValue(r, "summary"),
		Skills:         formValue(r, "skills"),
		Languages:      formValue(r, "languages"),
		Certifications: formValue(r, "certifications"),
		Experiences:    []model.Experience{},
		Education:      []model.Education{},
	}
	fv := validation.New().
		Validate("title", in.Title, validation.Optional("Headline", 200)).
		Validate("summary", in.Summary, validation.Optional("Summary", 5000)).
		Validate("skills", in.Skills, validation.Optional("Skills", 1000)).
		Validate("languages", in.Languages, validation.Optional("Languages", 500)).
		Validate("certifications", in.Certifications, validation.Optional("Certifications", 1000))

	rows := nestedRows(r)
	for _, fields := range rows["experiences"] {
		in.Experiences = append(in.Experiences, model.Experience{
			Company:     fields["company"],
			Position:    fields["position"],
			Location:    fields["location"],
			Description: fields["description"],
			StartDate:   parseDate(fields["startDate"]),
			EndDate:     optionalDate(fields["endDate"]),
		})
	}
	for _, fields := range rows["education"] {
		in.Education = append(in.Education, model.Education{
			School:       fields["school"],
			Degree:       fields["degree"],
			FieldOfStudy: fields["fieldOfStudy"],
			Location:     fields["location"],
			Description:  fields["description"],
			StartDate:    parseDate(fields["startDate"]),
			EndDate:      optionalDate(fields["endDate"]),
		})
	}
	for field, msg := range in.Validate() {
		fv.Add(field, msg)
	}
	return in, fv.Errors()
}

func optionalDate(v string) *time.Time {
	t := parseDate(v)
	if t.IsZero() {
		return nil
	}
	return &t
}

// nestedRows groups indexed form fields by group and row, renumbering rows
// densely in index order and skipping rows whose fields are all blank.
func nestedRows(r *http.Request) map[string][]map[string]string {
	byGroup := map[string]map[int]map[string]string{}
	for key, values := range r.PostForm {
		m := nestedPattern.FindStringSubmatch(key)
		if m == nil || len(values) == 0 {
			continue
		}
		idx, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if byGroup[m[1]] == nil {
			byGroup[m[1]] = map[int]map[string]string{}
		}
		if byGroup[m[1]][idx] == nil {
			byGroup[m[1]][idx] = map[string]string{}
		}
		byGroup[m[1]][idx][m[3]] = strings.TrimSpace(values[0])
	}

	out := make(map[string][]map[string]string, len(byGroup))
	for group, rows := range byGroup {
		for _, idx := range slices.Sorted(maps.Keys(rows)) {
			if blankRow(rows[idx]) {
				continue
			}
			out[group] = append(out[group], rows[idx])
		}
	}
	return out
}

func blankRow(fields map[string]string) bool {
	for _, v := range fields {
		if v != "" {
			return false
		}
	}
	return true
}

package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formRequest(t *testing.T, values url.Values) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, parseForm(httptest.NewRecorder(), r))
	return r
}

func TestCredentialsForm(t *testing.T) {
	c, errs := credentialsForm(formRequest(t, url.Values{"email": {" ana@example.com "}, "password": {"pw"}}))
	assert.Empty(t, errs)
	assert.Equal(t, "ana@example.com", c.Email)
	assert.Equal(t, "pw", c.Password)

	_, errs = credentialsForm(formRequest(t, url.Values{"email": {"nope"}}))
	assert.Equal(t, "Enter a valid email.", errs["email"])
	assert.Equal(t, "Password is required.", errs["password"])
}

func TestRegistrationForm(t *testing.T) {
	valid := url.Values{
		"name":            {"Ana"},
		"email":           {"ana@example.com"},
		"phoneNumber":     {"+976 9911 2233"},
		"password":        {"secret"},
		"confirmPassword": {"secret"},
		"role":            {"Student"},
	}
	reg, errs := registrationForm(formRequest(t, valid))
	assert.Empty(t, errs)
	assert.Equal(t, "student", reg.Role)
	assert.Equal(t, "secret", reg.ConfirmPassword)

	bad := url.Values{
		"password":        {"secret"},
		"confirmPassword": {"other"},
		"role":            {"admin"},
	}
	_, errs = registrationForm(formRequest(t, bad))
	assert.Equal(t, "Name is required.", errs["name"])
	assert.Equal(t, "Email is required.", errs["email"])
	assert.Equal(t, "Phone number is required.", errs["phoneNumber"])
	assert.Equal(t, "Passwords do not match.", errs["confirmPassword"])
	assert.Contains(t, errs["role"], "student, organisation")
}

func TestInternshipForm(t *testing.T) {
	in, errs := internshipForm(formRequest(t, url.Values{
		"title":       {" Backend intern "},
		"description": {"Build APIs"},
		"location":    {"Ulaanbaatar"},
		"startDate":   {"2026-06-01"},
		"endDate":     {"2026-08-31"},
	}))
	assert.Empty(t, errs)
	assert.Equal(t, "Backend intern", in.Title)
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), in.StartDate)

	_, errs = internshipForm(formRequest(t, url.Values{
		"title":       {"x"},
		"description": {"y"},
		"location":    {"z"},
		"startDate":   {"2026-08-31"},
		"endDate":     {"2026-06-01"},
	}))
	assert.Equal(t, map[string]string{"endDate": "End date must not be before start date"}, errs)

	_, errs = internshipForm(formRequest(t, url.Values{"startDate": {"31/08/2026"}}))
	assert.Equal(t, "Title is required.", errs["title"])
	assert.Equal(t, "Start date must be a date (YYYY-MM-DD).", errs["startDate"])
	assert.Equal(t, "End date is required.", errs["endDate"])
}

func TestResumeForm(t *testing.T) {
	in, errs := resumeForm(formRequest(t, url.Values{
		"title":                     {"Go developer"},
		"skills":                    {"Go, SQL"},
		"experiences[3].company":    {"Acme"},
		"experiences[3].position":   {"Intern"},
		"experiences[3].startDate":  {"2025-01-01"},
		"experiences[1].company":    {""},
		"experiences[1].position":   {" "},
		"experiences[7].company":    {"Globex"},
		"education[0].school":       {"NUM"},
		"education[0].degree":       {"BSc"},
		"education[0].startDate":    {"2022-09-01"},
		"education[0].endDate":      {"2026-06-01"},
		"experiences[x].company":    {"ignored"},
		"unrelated[0].company":      {"ignored"},
		"experiences[3].unknownKey": {"kept but unused"},
	}))

	require.Len(t, in.Experiences, 2, "blank row dropped")
	assert.Equal(t, "Acme", in.Experiences[0].Company)
	assert.Nil(t, in.Experiences[0].EndDate)
	assert.Equal(t, "Globex", in.Experiences[1].Company)
	require.Len(t, in.Education, 1)
	require.NotNil(t, in.Education[0].EndDate)
	assert.Equal(t, 2026, in.Education[0].EndDate.Year())

	assert.Equal(t, map[string]string{
		"experiences[1].position":  "Position is required",
		"experiences[1].startDate": "Start date is required",
	}, errs)
}

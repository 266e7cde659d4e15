package validation

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	v := Required("Title", 5)
	assert.Empty(t, v("Go"))
	assert.Equal(t, "Title is required.", v(""))
	assert.Equal(t, "Title is required.", v("   "))
	assert.Equal(t, "Title cannot exceed 5 characters.", v("toolong"))
	assert.Empty(t, v("héllo"), "counts runes, not bytes")
}

func TestOptional(t *testing.T) {
	v := Optional("Salary", 3)
	assert.Empty(t, v(""))
	assert.Empty(t, v("1-2"))
	assert.Equal(t, "Salary cannot exceed 3 characters.", v("1000"))
}

func TestEmail(t *testing.T) {
	v := Email("Email")
	tests := []struct {
		in   string
		want string
	}{
		{"ana@example.com", ""},
		{"", ""},
		{"not-an-email", "Enter a valid email."},
		{"Ana <ana@example.com>", "Enter a valid email."},
		{"ana@", "Enter a valid email."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, v(tt.in), tt.in)
	}
}

func TestDate(t *testing.T) {
	v := Date("Start date")
	assert.Empty(t, v("2026-06-01"))
	assert.Empty(t, v(""))
	assert.Equal(t, "Start date must be a date (YYYY-MM-DD).", v("06/01/2026"))
	assert.Equal(t, "Start date must be a date (YYYY-MM-DD).", v("2026-13-01"))
}

func TestEqual(t *testing.T) {
	v := Equal("Passwords do not match.", "secret")
	assert.Empty(t, v("secret"))
	assert.Equal(t, "Passwords do not match.", v("Secret"))
}

func TestOneOf(t *testing.T) {
	v := OneOf("Role", []string{"student", "organisation"})
	assert.Empty(t, v("Student"))
	assert.Empty(t, v(" organisation "))
	assert.Equal(t, "Role must be one of: student, organisation", v("admin"))
}

func TestPattern(t *testing.T) {
	v := Pattern("Phone number", regexp.MustCompile(`^\+?[0-9 ]{6,20}$`))
	assert.Empty(t, v(""))
	assert.Empty(t, v("+976 9911 2233"))
	assert.Equal(t, "Phone number has an invalid format.", v("call me"))
}

func TestFieldValidator(t *testing.T) {
	fv := New().
		Validate("title", "", Required("Title", 10)).
		Validate("location", strings.Repeat("x", 20), Required("Location", 200), Optional("Location", 5)).
		Validate("email", "ok@example.com", Required("Email", 100), Email("Email")).
		Add("title", "ignored, first error wins").
		Add("endDate", "End date must not be before start date.")

	assert.False(t, fv.Valid())
	assert.Equal(t, map[string]string{
		"title":    "Title is required.",
		"location": "Location cannot exceed 5 characters.",
		"endDate":  "End date must not be before start date.",
	}, fv.Errors())

	assert.True(t, New().Validate("x", "y", Required("X", 1)).Valid())
}

package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/internhub/marketplace-web/internal/errors"
)

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{" 7 ", 7, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.SetPathValue("id", tt.raw)
		got, err := pathID(r, "id")
		if tt.wantErr {
			require.Error(t, err, tt.raw)
			assert.True(t, apperrors.IsNotFound(err))
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseIntQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/org/applications?internshipId=12&bad=x", nil)
	assert.Equal(t, int64(12), parseIntQuery(r, "internshipId", 0))
	assert.Equal(t, int64(5), parseIntQuery(r, "bad", 5))
	assert.Equal(t, int64(0), parseIntQuery(r, "missing", 0))
}

func TestFormBool(t *testing.T) {
	form := url.Values{"a": {"true"}, "b": {"on"}, "c": {"false"}, "d": {""}}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	assert.True(t, formBool(r, "a"))
	assert.True(t, formBool(r, "b"))
	assert.False(t, formBool(r, "c"))
	assert.False(t, formBool(r, "d"))
	assert.False(t, formBool(r, "missing"))
}

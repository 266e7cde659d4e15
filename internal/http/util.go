package httpx

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/internhub/marketplace-web/internal/errors"
)

// pathID parses a positive integer path value such as {id}.
func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NotFoundf("%s %q not found", name, raw)
	}
	return id, nil
}

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int64) int64 {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}

// formBool reads a checkbox-like form value ("true", "on", "1").
func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(strings.TrimSpace(r.FormValue(key))) {
	case "true", "on", "1", "yes":
		return true
	default:
		return false
	}
}

// parseInt64 parses v, returning 0 when it is not an integer.
func parseInt64(v string) int64 {
	i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0
	}
	return i
}

package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	"github.com/internhub/marketplace-web/internal/testutil"
)

func TestUIHandlers_NotFound_BrowserRequest_Anonymous(t *testing.T) {
	handlers := CreateUIHandlersForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	req.Header.Set("Accept", "text/html")
	ctx := context.WithValue(req.Context(), browserRequestKey{}, true)
	req = req.WithContext(SetSessionInContext(ctx, testutil.AnonymousSession("s1")))

	w := httptest.NewRecorder()
	handlers.NotFound(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, "does not exist")
	assert.Contains(t, body, `href="/"`)
	assert.Contains(t, body, "Log in")
}

func TestUIHandlers_NotFound_BrowserRequest_Organisation(t *testing.T) {
	handlers := CreateUIHandlersForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	req.Header.Set("Accept", "text/html")
	ctx := context.WithValue(req.Context(), browserRequestKey{}, true)
	sess := testutil.SignedInSession("s1", domainauth.RoleOrganisation)
	req = req.WithContext(SetSessionInContext(ctx, sess))

	w := httptest.NewRecorder()
	handlers.NotFound(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `href="/org" hx-get="/org"`)
}

func TestUIHandlers_NotFound_HTMX(t *testing.T) {
	handlers := CreateUIHandlersForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	req.Header.Set("Hx-Request", "true")
	req = req.WithContext(context.WithValue(req.Context(), browserRequestKey{}, true))

	w := httptest.NewRecorder()
	handlers.NotFound(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<title>Not found</title>")
	assert.Contains(t, body, "does not exist")
	assert.NotContains(t, body, "<html")
}

func TestUIHandlers_NotFound_APIRequest(t *testing.T) {
	handlers := CreateUIHandlersForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	req.Header.Set("Accept", "application/json")
	req = req.WithContext(context.WithValue(req.Context(), browserRequestKey{}, false))

	w := httptest.NewRecorder()
	handlers.NotFound(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, w.Body.String(), "not_found")
}

package httpx

import (
	"context"
	"errors"
	"maps"
	"net/http"

	apperrors "github.com/internhub/marketplace-web/internal/errors"
)

// ErrorRenderer is a function that renders a page template with the given data.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, data any)

// ErrorOpts contains all options needed to render an error response.
type ErrorOpts struct {
	W http.ResponseWriter
	R *http.Request
	// Err is the error that occurred (optional when only field errors are present)
	Err error
	// FieldErrors maps form input names to messages.
	FieldErrors map[string]string
	// Renderer is typically h.renderPage.
	Renderer ErrorRenderer
	PageMeta PageMeta
	// Data preserves form input and other page data across the re-render.
	Data map[string]any
	// StatusCode is written before rendering when non-zero.
	StatusCode int
	// ShowToast additionally raises a showToast event with the message.
	ShowToast bool
}

// RenderError re-renders a page with its error state. Field-scoped validation
// errors land next to their input; anything else becomes the page message.
func RenderError(opts ErrorOpts) {
	if opts.Renderer == nil {
		http.Error(opts.W, "misconfigured error renderer", http.StatusInternalServerError)
		return
	}

	builder := NewTemplateData(opts.R, opts.PageMeta)
	if opts.FieldErrors == nil {
		opts.FieldErrors = map[string]string{}
	}
	generalError := processError(opts.Err, opts.FieldErrors)

	if len(opts.FieldErrors) > 0 {
		builder.WithFieldErrors(opts.FieldErrors)
	}
	if generalError != "" {
		builder.WithError(generalError)
	} else if len(opts.FieldErrors) > 0 {
		builder.WithError(errMsgFixBelow)
	}
	for k, v := range opts.Data {
		builder.With(k, v)
	}

	if opts.ShowToast && generalError != "" {
		HTMX(opts.W).Toast(generalError, "error")
	}
	if opts.StatusCode != 0 {
		opts.W.Header().Set("Content-Type", "text/html; charset=utf-8")
		opts.W.WriteHeader(opts.StatusCode)
	}
	opts.Renderer(opts.W, opts.R, builder.Build())
}

// processError folds err into fieldErrors when it names a field and
// returns the general message otherwise.
func processError(err error, fieldErrors map[string]string) string {
	if err == nil {
		return ""
	}
	if field := apperrors.GetField(err); field != "" {
		fieldErrors[field] = apperrors.UserMessage(err)
		return ""
	}
	return apperrors.UserMessage(err)
}

// fieldMessages converts domain validation errors into display strings.
func fieldMessages(errs map[string]error) map[string]string {
	out := make(map[string]string, len(errs))
	for k, err := range errs {
		out[k] = capitalize(err.Error())
	}
	return out
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// expireSession handles a 401 from the marketplace: the stored token is
// dropped and the browser is sent to log in again.
func (h *UIHandlers) expireSession(w http.ResponseWriter, r *http.Request) {
	sid := SessionIDFromContext(r.Context())
	if h.Sessions != nil && sid != "" {
		if err := h.Sessions.Invalidate(r.Context(), sid); err != nil {
			h.logger().WarnContext(r.Context(), "failed to invalidate expired session", "error", err)
		}
	}
	redirectToLogin(w, r)
}

// viewFailed renders the inline error state of a view with a retry action.
// Items are never shown alongside the error.
func (h *UIHandlers) viewFailed(w http.ResponseWriter, r *http.Request, err error, meta PageMeta) {
	if handled := h.handleCommonFailure(w, r, err); handled {
		return
	}
	h.logger().ErrorContext(r.Context(), "view load failed",
		"page", meta.CurrentPage,
		"path", r.URL.Path,
		"error_code", apperrors.GetCode(err),
		"error", err,
	)
	if !IsBrowserRequest(r) {
		WriteAppError(w, err)
		return
	}
	RenderError(ErrorOpts{
		W: w, R: r, Err: err,
		Renderer: h.renderPage,
		PageMeta: meta,
		Data: map[string]any{
			"LoadFailed": true,
			"RetryURL":   r.URL.RequestURI(),
		},
	})
}

// mutationFailed reports a failed action without disturbing the rendered view:
// htmx gets a toast and no swap, plain forms get the error page.
func (h *UIHandlers) mutationFailed(w http.ResponseWriter, r *http.Request, err error) {
	if handled := h.handleCommonFailure(w, r, err); handled {
		return
	}
	h.logger().WarnContext(r.Context(), "action failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error_code", apperrors.GetCode(err),
		"error", err,
	)
	switch {
	case IsHTMX(r):
		w.Header().Set("HX-Reswap", "none")
		HTMX(w).Toast(apperrors.UserMessage(err), "error")
		w.WriteHeader(http.StatusOK)
	case !IsBrowserRequest(r):
		WriteAppError(w, err)
	default:
		h.renderErrorPage(w, r, statusFor(err), apperrors.UserMessage(err))
	}
}

// handleCommonFailure covers session expiry and departed clients.
func (h *UIHandlers) handleCommonFailure(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case apperrors.IsUnauthenticated(err):
		h.expireSession(w, r)
		return true
	case errors.Is(err, context.Canceled) && r.Context().Err() != nil:
		// client went away; nothing to render
		return true
	}
	return false
}

// formStatus is the status for a form re-rendered with errors. htmx only
// swaps 2xx responses, so it gets 200.
func formStatus(r *http.Request) int {
	if IsHTMX(r) {
		return 0
	}
	return http.StatusUnprocessableEntity
}

func statusFor(err error) int {
	code := apperrors.GetCode(err)
	if code == "" {
		return http.StatusInternalServerError
	}
	return apperrors.HTTPStatus(code)
}

// renderErrorPage renders the standalone error layout.
func (h *UIHandlers) renderErrorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	data := basePageData(r, PageMeta{Title: http.StatusText(status), PageTitle: http.StatusText(status)})
	maps.Copy(data, map[string]any{
		"StatusCode":   status,
		"ErrorMessage": message,
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.T.ExecuteTemplate(w, "error-layout", data); err != nil {
		h.logger().ErrorContext(r.Context(), "error page render failed", "error", err)
	}
}

// NotFound renders the not-found view inside the layout.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if !IsBrowserRequest(r) {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Message: "not found"})
		return
	}
	data := basePageData(r, PageMeta{Title: "Not found", PageTitle: "Page not found", CurrentPage: PageNotFound})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	h.renderPage(w, r, data)
}

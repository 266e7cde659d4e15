package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	"github.com/internhub/marketplace-web/internal/domain/model"
	apperrors "github.com/internhub/marketplace-web/internal/errors"
	"github.com/internhub/marketplace-web/internal/service"
)

const errMsgTooManyAttempts = "Too many attempts. Please wait a minute and try again."

// AuthSessionService defines the session operations used by the auth handlers.
type AuthSessionService interface {
	Login(ctx context.Context, id, email, password string) (domainauth.Identity, error)
	Register(ctx context.Context, id string, reg model.Registration) (domainauth.Identity, error)
	Logout(ctx context.Context, id string) error
}

// ViewDropper forgets the cached views of a session.
type ViewDropper interface {
	DropSession(sessionID string) int
}

var (
	_ AuthSessionService = (*service.SessionService)(nil)
	_ ViewDropper        = (*service.ViewRegistry)(nil)
)

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc     AuthSessionService
	UI      *UIHandlers
	Limiter *LoginLimiter
	// Views, when set, is cleared on sign-in and sign-out so one account
	// never sees data cached for another.
	Views  ViewDropper
	Logger *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func loginMeta() PageMeta {
	return PageMeta{Title: "Log in", PageTitle: "Log in", CurrentPage: PageLogin}
}

func registerMeta() PageMeta {
	return PageMeta{Title: "Create an account", PageTitle: "Create an account", CurrentPage: PageRegister}
}

// LoginForm renders the login view.
// GET /login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	if sess := GetSessionFromContext(r.Context()); sess.IsAuthenticated() {
		http.Redirect(w, r, sess.Role().HomePath(), http.StatusSeeOther)
		return
	}
	h.UI.Page(w, r, PageSpec{
		Meta: loginMeta(),
		Fetch: func(_ context.Context, data map[string]any) error {
			data["RedirectURI"] = requestedRedirect(r)
			return nil
		},
	})
}

// Login exchanges the submitted credentials for a session.
// POST /login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.formFailed(w, r, loginMeta(), apperrors.Validation("The form could not be read."), nil, nil)
		return
	}
	creds, fieldErrs := credentialsForm(r)
	keep := map[string]any{"Email": creds.Email, "RedirectURI": requestedRedirect(r)}
	if len(fieldErrs) > 0 {
		h.formFailed(w, r, loginMeta(), nil, fieldErrs, keep)
		return
	}
	if !h.Limiter.Allow(r) {
		h.logger().WarnContext(r.Context(), "login rate limited", "path", r.URL.Path)
		w.Header().Set("Retry-After", "60")
		h.formFailed(w, r, loginMeta(), apperrors.New(apperrors.ErrCodeConflict, errMsgTooManyAttempts), nil, keep)
		return
	}

	identity, err := h.Svc.Login(r.Context(), SessionIDFromContext(r.Context()), creds.Email, creds.Password)
	if err != nil {
		h.signInFailed(w, r, loginMeta(), err, keep)
		return
	}
	h.landAfterSignIn(w, r, identity)
}

// RegisterForm renders the sign-up view.
// GET /register.
func (h *AuthHandlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if sess := GetSessionFromContext(r.Context()); sess.IsAuthenticated() {
		http.Redirect(w, r, sess.Role().HomePath(), http.StatusSeeOther)
		return
	}
	h.UI.Page(w, r, PageSpec{
		Meta: registerMeta(),
		Fetch: func(_ context.Context, data map[string]any) error {
			data["Form"] = model.Registration{Role: string(domainauth.RoleStudent)}
			return nil
		},
	})
}

// Register creates an account and signs it in.
// POST /register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.formFailed(w, r, registerMeta(), apperrors.Validation("The form could not be read."), nil, nil)
		return
	}
	reg, fieldErrs := registrationForm(r)
	// never echo passwords back into the form
	shown := reg
	shown.Password, shown.ConfirmPassword = "", ""
	keep := map[string]any{"Form": shown}
	if len(fieldErrs) > 0 {
		h.formFailed(w, r, registerMeta(), nil, fieldErrs, keep)
		return
	}
	if !h.Limiter.Allow(r) {
		w.Header().Set("Retry-After", "60")
		h.formFailed(w, r, registerMeta(), apperrors.New(apperrors.ErrCodeConflict, errMsgTooManyAttempts), nil, keep)
		return
	}

	identity, err := h.Svc.Register(r.Context(), SessionIDFromContext(r.Context()), reg)
	if err != nil {
		h.signInFailed(w, r, registerMeta(), err, keep)
		return
	}
	h.landAfterSignIn(w, r, identity)
}

// Logout clears the session token and identity.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	sid := SessionIDFromContext(r.Context())
	if err := h.Svc.Logout(r.Context(), sid); err != nil {
		h.logger().ErrorContext(r.Context(), "logout failed", "session_id", sid, "error", err)
		if !errors.Is(err, service.ErrSuperseded) {
			WriteAppError(w, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Could not log out. Please try again."))
			return
		}
	}
	h.dropViews(sid)

	switch {
	case IsHTMX(r):
		SetHXRedirect(w, "/")
		w.WriteHeader(http.StatusOK)
	case !IsBrowserRequest(r):
		WriteJSON(w, http.StatusOK, map[string]string{"status": "logged_out", "redirect_to": "/"})
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

type authStatusResponse struct {
	Authenticated bool        `json:"authenticated"`
	Settled       bool        `json:"settled"`
	User          *statusUser `json:"user,omitempty"`
	ExpiresAt     *time.Time  `json:"expires_at,omitempty"`
}

type statusUser struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Verified bool   `json:"verified"`
}

// Status reports the current session.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	resp := authStatusResponse{Settled: sess.Settled, Authenticated: sess.IsAuthenticated()}
	if resp.Authenticated {
		id := sess.Identity
		resp.User = &statusUser{ID: id.ID, Name: id.Name, Email: id.Email, Role: string(id.Role), Verified: id.Verified}
		if !sess.ExpiresAt.IsZero() {
			exp := sess.ExpiresAt
			resp.ExpiresAt = &exp
		}
	}
	w.Header().Set("Cache-Control", "no-store")
	WriteJSON(w, http.StatusOK, resp)
}

// Pending is the poll target of the loading view. While the session is
// unsettled it answers with the same polling element; once settled the
// browser is sent on to next, where the role guard decides again.
// GET /auth/pending?next=<path>.
func (h *AuthHandlers) Pending(w http.ResponseWriter, r *http.Request) {
	next := safeRedirectPath(r.URL.Query().Get("next"))
	sess := GetSessionFromContext(r.Context())
	w.Header().Set("Cache-Control", "no-store")

	if !sess.Settled {
		WritePendingFragment(w, r.URL.RequestURI())
		return
	}
	if IsHTMX(r) {
		SetHXRedirect(w, next)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// RenderPending renders the full loading view for a guarded page whose
// session is still being validated.
func (h *AuthHandlers) RenderPending(w http.ResponseWriter, r *http.Request) {
	if IsHTMX(r) {
		WritePendingFragment(w, PendingPollURL(r))
		return
	}
	data := basePageData(r, PageMeta{Title: "Loading", PageTitle: "Loading", CurrentPage: PagePending})
	data["PollURL"] = PendingPollURL(r)
	h.UI.renderPage(w, r, data)
}

func (h *AuthHandlers) dropViews(sid string) {
	if h.Views != nil && sid != "" {
		h.Views.DropSession(sid)
	}
}

func (h *AuthHandlers) landAfterSignIn(w http.ResponseWriter, r *http.Request, identity domainauth.Identity) {
	h.dropViews(SessionIDFromContext(r.Context()))
	dest := requestedRedirect(r)
	if dest == "/" {
		dest = identity.Role.HomePath()
	}
	if IsHTMX(r) {
		SetHXRedirect(w, dest)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// signInFailed shows the service error inline on the form.
func (h *AuthHandlers) signInFailed(w http.ResponseWriter, r *http.Request, meta PageMeta, err error, keep map[string]any) {
	if errors.Is(err, context.Canceled) && r.Context().Err() != nil {
		return
	}
	h.logger().InfoContext(r.Context(), "sign in failed",
		"page", meta.CurrentPage,
		"error_code", apperrors.GetCode(err),
		"error", err,
	)
	if errors.Is(err, service.ErrSuperseded) {
		err = apperrors.Conflict("Your session changed in another tab. Please try again.")
	}
	h.formFailed(w, r, meta, err, nil, keep)
}

func (h *AuthHandlers) formFailed(
	w http.ResponseWriter,
	r *http.Request,
	meta PageMeta,
	err error,
	fieldErrs map[string]string,
	keep map[string]any,
) {
	if !IsBrowserRequest(r) {
		if err == nil {
			err = apperrors.Validation(errMsgFixBelow)
		}
		WriteAppError(w, err)
		return
	}
	RenderError(ErrorOpts{
		W: w, R: r, Err: err,
		FieldErrors: fieldErrs,
		Renderer:    h.UI.renderPage,
		PageMeta:    meta,
		Data:        keep,
		StatusCode:  formStatus(r),
	})
}

// requestedRedirect reads redirect_uri from the form or query and keeps it same-origin.
func requestedRedirect(r *http.Request) string {
	v := r.PostFormValue("redirect_uri")
	if v == "" {
		v = r.URL.Query().Get("redirect_uri")
	}
	return safeRedirectPath(v)
}

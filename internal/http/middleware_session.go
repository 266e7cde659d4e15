package httpx

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	"github.com/internhub/marketplace-web/internal/ports"
)

const (
	// DefaultSessionCookieName names the cookie carrying the opaque session id.
	DefaultSessionCookieName = "session_id"
	// PendingPath is polled while a session is still being validated.
	PendingPath = "/auth/pending"
)

// SessionInitializer settles the session behind a cookie id.
type SessionInitializer interface {
	NewID() string
	Initialize(ctx context.Context, id string) (domainauth.Session, error)
}

// SessionConfig configures the Sessions middleware.
type SessionConfig struct {
	CookieName   string
	CookieDomain string
	TTL          time.Duration
	Logger       *slog.Logger
}

// Sessions loads (or starts) the browser session, settles it and stores it on the
// request context together with the bearer token for outbound marketplace calls.
func Sessions(svc SessionInitializer, cfg SessionConfig) func(http.Handler) http.Handler {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultSessionCookieName
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(cfg.CookieName); err == nil {
				id = c.Value
			}
			if id == "" {
				id = svc.NewID()
				setSessionCookie(w, r, cfg, id)
			}

			sess, err := svc.Initialize(r.Context(), id)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.WarnContext(r.Context(), "session initialize failed",
					"session_id", id, "error", err)
			}
			sess.ID = id

			ctx := SetSessionInContext(r.Context(), sess)
			if sess.TokenPresent() {
				ctx = ports.WithAccessToken(ctx, sess.Token)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, cfg SessionConfig, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    id,
		Path:     "/",
		Domain:   cfg.CookieDomain,
		MaxAge:   int(cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   requestIsSecure(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// Guard applies role requirements to views.
type Guard struct {
	// Pending renders the loading view while the session is unsettled.
	// When nil a bare polling fragment is written.
	Pending http.HandlerFunc
}

// RequireRoles lets the request through only when the settled session holds one of roles.
func (g Guard) RequireRoles(roles ...domainauth.Role) func(http.Handler) http.Handler {
	allowed := domainauth.Roles(roles...)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch domainauth.Evaluate(GetSessionFromContext(r.Context()), allowed) {
			case domainauth.DecisionAllow:
				next.ServeHTTP(w, r)
			case domainauth.DecisionPending:
				if !IsBrowserRequest(r) {
					w.Header().Set("Retry-After", "1")
					WriteError(w, ErrorParams{
						Code:    http.StatusServiceUnavailable,
						ErrCode: "pending",
						Message: "session is still being validated",
					})
					return
				}
				w.Header().Set("Cache-Control", "no-store")
				if g.Pending != nil {
					g.Pending(w, r)
					return
				}
				WritePendingFragment(w, PendingPollURL(r))
			default:
				redirectToLogin(w, r)
			}
		})
	}
}

// PendingPollURL is the poll target that resumes the current view once settled.
func PendingPollURL(r *http.Request) string {
	q := url.Values{}
	q.Set("next", safeRedirectPath(r.URL.RequestURI()))
	return PendingPath + "?" + q.Encode()
}

//nolint:gochecknoglobals // parsed once
var pendingFragment = template.Must(template.New("pending").Parse(
	`<div id="auth-pending" class="auth-pending" aria-busy="true" hx-get="{{.}}" hx-trigger="load delay:1s" hx-swap="outerHTML">` +
		`<span class="spinner" role="status">Loading…</span></div>`))

// WritePendingFragment writes the neutral loading element that re-polls url.
func WritePendingFragment(w http.ResponseWriter, pollURL string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = pendingFragment.Execute(w, pollURL)
}

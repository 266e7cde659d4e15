package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	internhub "github.com/internhub/marketplace-web"
	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	"github.com/internhub/marketplace-web/internal/observability/prom"
)

// RouterSessions is the session surface the router needs: settling
// sessions, signing in and out, and dropping rejected tokens.
type RouterSessions interface {
	SessionInitializer
	AuthSessionService
	SessionInvalidator
}

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Sessions      RouterSessions
	Internships   InternshipsService
	Favourites    FavouritesService
	Applications  ApplicationsService
	Resumes       ResumesService
	Notifications NotificationsService
	Organisations OrganisationsService
	// Views is cleared per session on sign-in and sign-out (optional).
	Views ViewDropper

	Session     SessionConfig
	Limiter     *LoginLimiter
	Compression *CompressionConfig // nil disables gzip
	Metrics     *prom.Metrics      // nil disables /metrics
	Readiness   map[string]ReadinessCheck

	// TemplateFS and StaticFS override the embedded (or, in dev, on-disk) trees.
	TemplateFS   fs.FS
	StaticFS     fs.FS
	AssetVersion string

	IsDev  bool         // Development mode flag for hot reloading, etc.
	Logger *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures the HTTP router with the browser middleware chain.
// Template parsing failures are returned; the server cannot render without them.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS:   templateFS(services),
		AssetVersion: services.AssetVersion,
		DevMode:      services.IsDev,
		Logger:       logger,
	})
	if err != nil {
		return nil, err
	}

	ui := &UIHandlers{
		T:               tr,
		Sessions:        services.Sessions,
		InternshipSvc:   services.Internships,
		FavouriteSvc:    services.Favourites,
		ApplicationSvc:  services.Applications,
		ResumeSvc:       services.Resumes,
		NotificationSvc: services.Notifications,
		OrganisationSvc: services.Organisations,
		IsDev:           services.IsDev,
		Logger:          logger,
	}
	auth := &AuthHandlers{
		Svc:     services.Sessions,
		UI:      ui,
		Limiter: services.Limiter,
		Views:   services.Views,
		Logger:  logger,
	}
	guard := Guard{Pending: auth.RenderPending}

	app := http.NewServeMux()
	registerAuthRoutes(app, auth)
	registerUIRoutes(app, ui, guard)

	sessionCfg := services.Session
	if sessionCfg.Logger == nil {
		sessionCfg.Logger = logger
	}
	var appHandler http.Handler = &notFoundHandler{mux: app, uiHandlers: ui}
	appHandler = CSRFProtection(CSRFConfig{CookieDomain: sessionCfg.CookieDomain})(appHandler)
	appHandler = Sessions(services.Sessions, sessionCfg)(appHandler)

	root := http.NewServeMux()
	root.Handle("GET /static/", staticHandler(services))
	root.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	root.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	root.Handle("GET /readyz", ReadinessHandler(services.Readiness, 2*time.Second, logger))
	if services.Metrics != nil {
		root.Handle("GET /metrics", services.Metrics.Handler())
	}
	root.Handle("/", appHandler)

	var handler http.Handler = BrowserDetection()(root)
	if services.Compression != nil {
		cc := *services.Compression
		if cc.Logger == nil {
			cc.Logger = logger
		}
		handler = Compression(cc)(handler)
	}
	if services.Metrics != nil {
		handler = services.Metrics.InstrumentHandler(handler)
	}
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler, nil
}

func templateFS(services RouterServices) fs.FS {
	if services.TemplateFS != nil {
		return services.TemplateFS
	}
	if services.IsDev {
		return os.DirFS(TemplatePathFromRoot)
	}
	sub, err := fs.Sub(internhub.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		// only possible if the embed directive and path disagree
		return os.DirFS(TemplatePathFromRoot)
	}
	return sub
}

// staticHandler serves /static/*. Dev mode reads from disk for live edits.
func staticHandler(services RouterServices) http.Handler {
	var fsys fs.FS
	switch {
	case services.StaticFS != nil:
		fsys = services.StaticFS
	case services.IsDev:
		fsys = os.DirFS(StaticPathFromRoot)
	default:
		sub, err := fs.Sub(internhub.StaticFS, StaticPathFromRoot)
		if err != nil {
			sub = os.DirFS(StaticPathFromRoot)
		}
		fsys = sub
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(fsys))), services.IsDev)
}

// staticWithCacheHeaders caches versioned asset URLs (?v=) for a year and
// everything else briefly; dev mode disables caching.
func staticWithCacheHeaders(handler http.Handler, isDev bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case isDev:
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		case r.URL.Query().Get("v") != "":
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		default:
			w.Header().Set("Cache-Control", "public, max-age=300")
		}
		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and renders the not-found view for unmatched routes.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

// ServeHTTP implements http.Handler and provides custom 404 handling.
func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, pattern := h.mux.Handler(r); pattern == "" {
		h.uiHandlers.NotFound(w, r)
		return
	}
	h.mux.ServeHTTP(w, r)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /login", h.LoginForm)
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("GET /register", h.RegisterForm)
	mux.HandleFunc("POST /register", h.Register)
	mux.HandleFunc("POST /logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
	mux.HandleFunc("GET /auth/pending", h.Pending)
}

// registerUIRoutes delegates to per-role UI route registration functions.
func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, g Guard) {
	registerPublicRoutes(mux, h)
	registerStudentRoutes(mux, h, g.RequireRoles(domainauth.RoleStudent))
	registerOrganisationRoutes(mux, h, g.RequireRoles(domainauth.RoleOrganisation))
	registerAdminRoutes(mux, h, g.RequireRoles(domainauth.RoleAdmin))

	inbox := g.RequireRoles(domainauth.RoleStudent, domainauth.RoleOrganisation)
	mux.Handle("GET /notifications", inbox(http.HandlerFunc(h.Notifications)))
	mux.Handle("GET /notifications/badge", inbox(http.HandlerFunc(h.NotificationBadge)))
}

func registerPublicRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /internships", h.Internships)
	mux.HandleFunc("GET /internships/{id}", h.Internship)
}

func registerStudentRoutes(mux *http.ServeMux, h *UIHandlers, wrap func(http.Handler) http.Handler) {
	mux.Handle("POST /internships/{id}/apply", wrap(http.HandlerFunc(h.Apply)))
	mux.Handle("POST /favorites/{id}/toggle", wrap(http.HandlerFunc(h.ToggleFavourite)))
	mux.Handle("GET /favorites", wrap(http.HandlerFunc(h.Favourites)))
	mux.Handle("DELETE /favorites/{id}", wrap(http.HandlerFunc(h.RemoveFavourite)))
	mux.Handle("GET /applications", wrap(http.HandlerFunc(h.Applications)))
	mux.Handle("GET /resume", wrap(http.HandlerFunc(h.Resume)))
	mux.Handle("GET /resume/edit", wrap(http.HandlerFunc(h.ResumeForm)))
	mux.Handle("POST /resume/edit", wrap(http.HandlerFunc(h.SaveResume)))
	mux.Handle("GET /resume/rows/{group}", wrap(http.HandlerFunc(h.ResumeRow)))
}

func registerOrganisationRoutes(mux *http.ServeMux, h *UIHandlers, wrap func(http.Handler) http.Handler) {
	mux.Handle("GET /org", wrap(http.HandlerFunc(h.OrgDashboard)))
	mux.Handle("GET /org/internships", wrap(http.HandlerFunc(h.OrgInternships)))
	mux.Handle("GET /org/internships/new", wrap(http.HandlerFunc(h.NewInternshipForm)))
	mux.Handle("POST /org/internships", wrap(http.HandlerFunc(h.CreateInternship)))
	mux.Handle("GET /org/internships/{id}/edit", wrap(http.HandlerFunc(h.EditInternshipForm)))
	mux.Handle("POST /org/internships/{id}", wrap(http.HandlerFunc(h.UpdateInternship)))
	mux.Handle("DELETE /org/internships/{id}", wrap(http.HandlerFunc(h.DeleteInternship)))
	mux.Handle("GET /org/applications", wrap(http.HandlerFunc(h.OrgApplications)))
	mux.Handle("POST /org/applications/{id}/status", wrap(http.HandlerFunc(h.DecideApplication)))
	mux.Handle("GET /org/applications/{id}/resume", wrap(http.HandlerFunc(h.ApplicantResume)))
}

func registerAdminRoutes(mux *http.ServeMux, h *UIHandlers, wrap func(http.Handler) http.Handler) {
	mux.Handle("GET /admin", wrap(http.HandlerFunc(h.AdminDashboard)))
	mux.Handle("GET /admin/organizations", wrap(http.HandlerFunc(h.AdminOrganisations)))
	mux.Handle("POST /admin/organizations/{id}/verify", wrap(http.HandlerFunc(h.VerifyOrganisation)))
	mux.Handle("POST /admin/organizations/{id}/decline", wrap(http.HandlerFunc(h.DeclineOrganisation)))
	mux.Handle("GET /admin/internships", wrap(http.HandlerFunc(h.AdminInternships)))
	mux.Handle("DELETE /admin/internships/{id}", wrap(http.HandlerFunc(h.DeleteInternship)))
}

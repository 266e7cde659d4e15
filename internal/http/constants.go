package httpx

// CurrentPage constants identify pages in templates and navigation.
const (
	PageHome        = "home"
	PageInternships = "internships"
	PageInternship  = "internship"
	PageLogin       = "login"
	PageRegister    = "register"
	PagePending     = "pending"

	// Student pages.
	PageFavourites   = "favourites"
	PageApplications = "applications"
	PageResume       = "resume"
	PageResumeForm   = "resume-form"

	// Organisation pages.
	PageOrgDashboard      = "org-dashboard"
	PageOrgInternships    = "org-internships"
	PageOrgInternshipForm = "org-internship-form"
	PageOrgApplications   = "org-applications"
	PageApplicantResume   = "applicant-resume"

	// Admin pages.
	PageAdminDashboard     = "admin-dashboard"
	PageAdminOrganisations = "admin-organisations"
	PageAdminInternships   = "admin-internships"

	PageNotifications = "notifications"
	PageNotFound      = "not-found"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
	StaticPathFromRoot   = "frontend/static"
)

// FormMode represents the mode of a form (create or edit).
type FormMode string

const (
	FormModeEdit   FormMode = "edit"
	FormModeCreate FormMode = "create"
)

//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageHome:               "home-content",
	PageInternships:        "internships-content",
	PageInternship:         "internship-content",
	PageLogin:              "login-content",
	PageRegister:           "register-content",
	PagePending:            "pending-content",
	PageFavourites:         "favourites-content",
	PageApplications:       "applications-content",
	PageResume:             "resume-content",
	PageResumeForm:         "resume-form-content",
	PageOrgDashboard:       "org-dashboard-content",
	PageOrgInternships:     "org-internships-content",
	PageOrgInternshipForm:  "internship-form-content",
	PageOrgApplications:    "org-applications-content",
	PageApplicantResume:    "applicant-resume-content",
	PageAdminDashboard:     "admin-dashboard-content",
	PageAdminOrganisations: "admin-organisations-content",
	PageAdminInternships:   "admin-internships-content",
	PageNotifications:      "notifications-content",
	PageNotFound:           "not-found-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Unknown pages fall back to the not-found view.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "not-found-content"
}

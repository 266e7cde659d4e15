package viewmodel

// User represents the signed-in user exposed to templates.
type User struct {
	Name     string
	Email    string
	Role     string
	Verified bool
}

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CurrentPath     string
	CSRFToken       string
	IsAuthenticated bool
	User            *User
	Nav             []NavItem
	// ShowNotifications enables the lazily loaded notification badge.
	ShowNotifications bool
	HomePath          string
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}

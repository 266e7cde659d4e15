package viewmodel

import (
	"strings"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
)

// NavItem is one entry in the role-conditioned menu.
type NavItem struct {
	Label  string
	Href   string
	Active bool
	// Post renders the entry as a form button (logout).
	Post bool
}

//nolint:gochecknoglobals // static menus per role
var menus = map[domainauth.Role][]NavItem{
	"": {
		{Label: "Internships", Href: "/internships"},
		{Label: "Log in", Href: "/login"},
		{Label: "Register", Href: "/register"},
	},
	domainauth.RoleStudent: {
		{Label: "Internships", Href: "/internships"},
		{Label: "Favourites", Href: "/favorites"},
		{Label: "My applications", Href: "/applications"},
		{Label: "My CV", Href: "/resume"},
		{Label: "Notifications", Href: "/notifications"},
		{Label: "Log out", Href: "/logout", Post: true},
	},
	domainauth.RoleOrganisation: {
		{Label: "Dashboard", Href: "/org"},
		{Label: "My internships", Href: "/org/internships"},
		{Label: "Applications", Href: "/org/applications"},
		{Label: "Notifications", Href: "/notifications"},
		{Label: "Log out", Href: "/logout", Post: true},
	},
	domainauth.RoleAdmin: {
		{Label: "Dashboard", Href: "/admin"},
		{Label: "Organisations", Href: "/admin/organizations"},
		{Label: "Internships", Href: "/admin/internships"},
		{Label: "Log out", Href: "/logout", Post: true},
	},
}

// NavFor returns the menu for role ("" for anonymous) with the entry
// matching currentPath marked active. The longest matching prefix wins so
// /org/internships/new highlights "My internships" rather than "Dashboard".
func NavFor(role domainauth.Role, currentPath string) []NavItem {
	menu, ok := menus[role]
	if !ok {
		menu = menus[""]
	}
	items := make([]NavItem, len(menu))
	copy(items, menu)

	best, bestLen := -1, 0
	for i, item := range items {
		if item.Post || !pathWithin(currentPath, item.Href) {
			continue
		}
		if len(item.Href) > bestLen {
			best, bestLen = i, len(item.Href)
		}
	}
	if best >= 0 {
		items[best].Active = true
	}
	return items
}

func pathWithin(p, prefix string) bool {
	if p == prefix {
		return true
	}
	return strings.HasPrefix(p, strings.TrimSuffix(prefix, "/")+"/")
}

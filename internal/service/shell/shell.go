package shell

import (
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// SignOutPath is the endpoint that ends the session.
const SignOutPath = "/auth/signout"

// Link is a navigation entry.
type Link struct {
	Label  string
	Href   string
	Active bool
}

var navigation = []Link{
	{Label: "Tableau de bord", Href: "/dashboard"},
	{Label: "Recherche", Href: "/search"},
	{Label: "Nouveau profil", Href: "/profiles/new"},
}

var legal = []Link{
	{Label: "Confidentialité", Href: "/privacy"},
	{Label: "Conditions d'utilisation", Href: "/terms"},
	{Label: "RGPD", Href: "/rgpd"},
}

// View is everything the page chrome needs.
type View struct {
	Theme       domain.Theme
	Route       string
	Nav         []Link
	Legal       []Link
	User        *domain.User
	SignOutPath string
}

// Navigation returns the navigation links with the one matching route
// marked active.
func Navigation(route string) []Link {
	return mark(navigation, route)
}

// Build assembles the shell view. user is nil for anonymous visitors.
func Build(prefs Preferences, route string, user *domain.User) View {
	return View{
		Theme:       prefs.Theme,
		Route:       route,
		Nav:         Navigation(route),
		Legal:       mark(legal, route),
		User:        user,
		SignOutPath: SignOutPath,
	}
}

func mark(links []Link, route string) []Link {
	out := make([]Link, len(links))
	for i, l := range links {
		l.Active = l.Href == route
		out[i] = l
	}
	return out
}

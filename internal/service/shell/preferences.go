package shell

import (
	"net/http"
	"time"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// DefaultTheme applies when no valid theme is stored.
const DefaultTheme = domain.ThemeDark

// Preferences is the per-client presentation state.
type Preferences struct {
	Theme domain.Theme
}

// Toggled returns the preferences with the opposite theme.
func (p Preferences) Toggled() Preferences {
	p.Theme = p.Theme.Toggle()
	return p
}

// Store reads and writes Preferences in a client cookie.
type Store struct {
	Cookie string
	Secure bool
	MaxAge time.Duration
}

// FromRequest loads the preferences stored by the client. Missing or
// invalid values fall back to the defaults.
func (s Store) FromRequest(r *http.Request) Preferences {
	p := Preferences{Theme: DefaultTheme}
	c, err := r.Cookie(s.Cookie)
	if err != nil {
		return p
	}
	if t := domain.Theme(c.Value); t.IsValid() {
		p.Theme = t
	}
	return p
}

// Write persists the preferences on the client.
func (s Store) Write(w http.ResponseWriter, p Preferences) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Cookie,
		Value:    string(p.Theme),
		Path:     "/",
		MaxAge:   int(s.MaxAge.Seconds()),
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

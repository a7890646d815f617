package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
	"github.com/heartmarshall/leadfinder-backend/internal/service/shell"
)

type currentUserFinder interface {
	CurrentUser(ctx context.Context) *domain.User
}

// ShellHandler serves the page chrome: theme, navigation and the
// signed-in user.
type ShellHandler struct {
	responder
	users currentUserFinder
	prefs shell.Store
}

// NewShellHandler creates a ShellHandler.
func NewShellHandler(users currentUserFinder, prefs shell.Store, loginPath string, logger *slog.Logger) *ShellHandler {
	return &ShellHandler{
		responder: responder{log: logger.With("handler", "shell"), loginPath: loginPath},
		users:     users,
		prefs:     prefs,
	}
}

type linkResponse struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

type shellResponse struct {
	Theme       string         `json:"theme"`
	Route       string         `json:"route"`
	Nav         []linkResponse `json:"nav"`
	Legal       []linkResponse `json:"legal"`
	User        *userResponse  `json:"user"`
	SignOutPath string         `json:"sign_out_path"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}

type themeResponse struct {
	Theme string `json:"theme"`
}

// Get handles GET /api/shell?route={path}.
func (h *ShellHandler) Get(w http.ResponseWriter, r *http.Request) {
	view := shell.Build(h.prefs.FromRequest(r), r.URL.Query().Get("route"), h.users.CurrentUser(r.Context()))
	writeJSON(w, http.StatusOK, shellResponse{
		Theme:       view.Theme.String(),
		Route:       view.Route,
		Nav:         toLinks(view.Nav),
		Legal:       toLinks(view.Legal),
		User:        toUserResponse(view.User),
		SignOutPath: view.SignOutPath,
	})
}

// SetTheme handles PUT /api/shell/theme.
func (h *ShellHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	theme := domain.Theme(req.Theme)
	if !theme.IsValid() {
		h.fail(w, r, domain.NewValidationError("theme", "must be light or dark"))
		return
	}

	p := h.prefs.FromRequest(r)
	p.Theme = theme
	h.prefs.Write(w, p)
	writeJSON(w, http.StatusOK, themeResponse{Theme: p.Theme.String()})
}

// ToggleTheme handles POST /api/shell/theme/toggle.
func (h *ShellHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	p := h.prefs.FromRequest(r).Toggled()
	h.prefs.Write(w, p)
	writeJSON(w, http.StatusOK, themeResponse{Theme: p.Theme.String()})
}

func toLinks(links []shell.Link) []linkResponse {
	out := make([]linkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, linkResponse{Label: l.Label, Href: l.Href, Active: l.Active})
	}
	return out
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/leadfinder-backend/internal/service/dashboard"
)

type dashboardLoader interface {
	Load(ctx context.Context) (*dashboard.Dashboard, error)
}

// DashboardHandler serves the signed-in user's overview.
type DashboardHandler struct {
	responder
	svc dashboardLoader
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardLoader, loginPath string, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		responder: responder{log: logger.With("handler", "dashboard"), loginPath: loginPath},
		svc:       svc,
	}
}

type statusStatResponse struct {
	Status     string `json:"status"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type dashboardResponse struct {
	User           *userResponse        `json:"user"`
	Profiles       []profileResponse    `json:"profiles"`
	RecentLeads    []leadResponse       `json:"recent_leads"`
	ProfileCount   int                  `json:"profile_count"`
	LeadCount      int                  `json:"lead_count"`
	ConversionRate int                  `json:"conversion_rate"`
	Stats          []statusStatResponse `json:"stats"`
	RecentSearches []historyResponse    `json:"recent_searches"`
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Load(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	stats := make([]statusStatResponse, 0, len(d.Stats))
	for _, s := range d.Stats {
		stats = append(stats, statusStatResponse{Status: s.Status.String(), Count: s.Count, Percentage: s.Percentage})
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		User:           toUserResponse(d.User),
		Profiles:       toProfileList(d.Profiles),
		RecentLeads:    toLeadList(d.RecentLeads),
		ProfileCount:   d.ProfileCount,
		LeadCount:      d.LeadCount,
		ConversionRate: d.ConversionRate,
		Stats:          stats,
		RecentSearches: toHistoryList(d.RecentSearches),
	})
}

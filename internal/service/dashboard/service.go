package dashboard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type profileRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error)
}

type leadRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Lead, error)
}

type historyRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SearchHistory, error)
}

const (
	// RecentSearches is the number of history entries shown.
	RecentSearches = 5
	// RecentLeads is the number of leads shown.
	RecentLeads = 5
)

// Service assembles the dashboard.
type Service struct {
	users    userRepo
	profiles profileRepo
	leads    leadRepo
	history  historyRepo
	log      *slog.Logger
}

// NewService creates a new dashboard service.
func NewService(log *slog.Logger, users userRepo, profiles profileRepo, leads leadRepo, history historyRepo) *Service {
	return &Service{
		users:    users,
		profiles: profiles,
		leads:    leads,
		history:  history,
		log:      log.With("service", "dashboard"),
	}
}

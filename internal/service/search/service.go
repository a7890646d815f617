package search

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

type leadSearcher interface {
	Search(ctx context.Context, criteria domain.LeadCriteria) ([]domain.Lead, error)
}

type profileRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error)
	GetByID(ctx context.Context, userID, profileID uuid.UUID) (*domain.Profile, error)
	TouchLastUsed(ctx context.Context, userID, profileID uuid.UUID) error
}

type historyRepo interface {
	Create(ctx context.Context, h *domain.SearchHistory) (*domain.SearchHistory, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SearchHistory, error)
	UpdateFlags(ctx context.Context, userID, id uuid.UUID, upd domain.SearchHistoryUpdate) (*domain.SearchHistory, error)
}

// resultStore keeps the last result set of each user for export.
type resultStore interface {
	Put(ctx context.Context, userID uuid.UUID, leads []domain.Lead) error
	Get(ctx context.Context, userID uuid.UUID) ([]domain.Lead, error)
}

type searchRecorder interface {
	SearchCompleted(results int)
	SearchFailed()
	HistoryWriteFailed()
}

// Service runs lead searches and manages their history.
type Service struct {
	leads    leadSearcher
	profiles profileRepo
	history  historyRepo
	results  resultStore
	metrics  searchRecorder
	log      *slog.Logger
}

// NewService creates a new search service.
func NewService(
	log *slog.Logger,
	leads leadSearcher,
	profiles profileRepo,
	history historyRepo,
	results resultStore,
	metrics searchRecorder,
) *Service {
	return &Service{
		leads:    leads,
		profiles: profiles,
		history:  history,
		results:  results,
		metrics:  metrics,
		log:      log.With("service", "search"),
	}
}

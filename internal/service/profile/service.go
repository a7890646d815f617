package profile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

type profileRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error)
	GetByID(ctx context.Context, userID, profileID uuid.UUID) (*domain.Profile, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	Delete(ctx context.Context, userID, profileID uuid.UUID) error
	ClearDefault(ctx context.Context, userID, keepID uuid.UUID) error
	SetDefault(ctx context.Context, userID, profileID uuid.UUID) error
	PromoteMostRecent(ctx context.Context, userID, excludeID uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MaxProfilesPerUser caps the number of saved profiles.
const MaxProfilesPerUser = 50

// Service manages prospection profiles.
type Service struct {
	profiles profileRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new profile service.
func NewService(log *slog.Logger, profiles profileRepo, tx txManager) *Service {
	return &Service{
		profiles: profiles,
		tx:       tx,
		log:      log.With("service", "profile"),
	}
}

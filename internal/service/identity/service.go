package identity

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// provider is the hosted identity service (Supabase or the fixture).
type provider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)
	SignUp(ctx context.Context, email, password, redirectTo, codeChallenge string) (*domain.Session, error)
	ExchangeCode(ctx context.Context, code, verifier string) (*domain.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (*domain.AuthUser, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Ensure(ctx context.Context, au domain.AuthUser) (*domain.User, error)
	UpdatePreferences(ctx context.Context, u *domain.User) (*domain.User, error)
}

// tokenVerifier checks access tokens locally. Optional: without it tokens
// are validated by the provider.
type tokenVerifier interface {
	Verify(token string) (domain.AuthUser, error)
}

type failureRecorder interface {
	IdentityFailed(operation string)
}

// Service implements the session and identity operations.
type Service struct {
	log         *slog.Logger
	provider    provider
	users       userRepo
	verifier    tokenVerifier
	metrics     failureRecorder
	callbackURL string
}

// NewService creates a new identity service. verifier may be nil.
func NewService(
	logger *slog.Logger,
	provider provider,
	users userRepo,
	verifier tokenVerifier,
	metrics failureRecorder,
	callbackURL string,
) *Service {
	return &Service{
		log:         logger.With("service", "identity"),
		provider:    provider,
		users:       users,
		verifier:    verifier,
		metrics:     metrics,
		callbackURL: callbackURL,
	}
}

// ensureUser mirrors the provider account into the users table.
// The session stays valid when the mirror cannot be written.
func (s *Service) ensureUser(ctx context.Context, au domain.AuthUser) {
	if _, err := s.users.Ensure(ctx, au); err != nil {
		s.log.ErrorContext(ctx, "ensure user record",
			slog.String("user_id", au.ID.String()),
			slog.String("error", err.Error()))
	}
}

func (s *Service) failed(ctx context.Context, op string, err error) {
	s.metrics.IdentityFailed(op)
	s.log.WarnContext(ctx, "identity provider call failed",
		slog.String("operation", op),
		slog.String("error", err.Error()))
}

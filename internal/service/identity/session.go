package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/leadfinder-backend/internal/auth"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
	"github.com/heartmarshall/leadfinder-backend/pkg/ctxutil"
)

// ErrSessionExpired is returned by Authenticate when the access token is
// no longer valid and a refresh may restore the session.
var ErrSessionExpired = errors.New("session expired")

// Authenticate resolves the identity behind an access token.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (domain.AuthUser, error) {
	if accessToken == "" {
		return domain.AuthUser{}, domain.ErrUnauthorized
	}

	if s.verifier != nil {
		au, err := s.verifier.Verify(accessToken)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				return domain.AuthUser{}, ErrSessionExpired
			}
			return domain.AuthUser{}, domain.ErrUnauthorized
		}
		return au, nil
	}

	au, err := s.provider.GetUser(ctx, accessToken)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return domain.AuthUser{}, ErrSessionExpired
		}
		s.failed(ctx, "get_user", err)
		return domain.AuthUser{}, fmt.Errorf("identity.Authenticate: %w", err)
	}
	return *au, nil
}

// RefreshSession trades a refresh token for a new session.
func (s *Service) RefreshSession(ctx context.Context, refreshToken string) (*domain.Session, error) {
	if refreshToken == "" {
		return nil, domain.ErrUnauthorized
	}

	sess, err := s.provider.Refresh(ctx, refreshToken)
	if err != nil {
		s.failed(ctx, "refresh", err)
		return nil, fmt.Errorf("identity.RefreshSession: %w", err)
	}
	return sess, nil
}

// CurrentUser returns the signed-in user or nil. Store failures are
// logged and reported as no user.
func (s *Service) CurrentUser(ctx context.Context) *domain.User {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "load current user",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()))
		}
		return nil
	}
	return user
}

// UpdatePreferences changes the signed-in user's display name and
// notification settings.
func (s *Service) UpdatePreferences(ctx context.Context, input PreferencesInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("identity.UpdatePreferences get user: %w", err)
	}

	if input.DisplayName != nil {
		name := strings.TrimSpace(*input.DisplayName)
		if name == "" {
			user.DisplayName = nil
		} else {
			user.DisplayName = &name
		}
	}
	if input.NotificationEmail != nil {
		user.NotificationEmail = *input.NotificationEmail
	}
	if input.NotificationWeb != nil {
		user.NotificationWeb = *input.NotificationWeb
	}

	updated, err := s.users.UpdatePreferences(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("identity.UpdatePreferences: %w", err)
	}
	return updated, nil
}

package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
	"github.com/heartmarshall/leadfinder-backend/pkg/ctxutil"
)

// ListProfiles returns the user's profiles, default first then newest.
// Store failures are logged and yield an empty list.
func (s *Service) ListProfiles(ctx context.Context) []domain.Profile {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return []domain.Profile{}
	}

	profiles, err := s.profiles.ListByUser(ctx, userID)
	if err != nil {
		s.log.ErrorContext(ctx, "list profiles",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return []domain.Profile{}
	}
	return profiles
}

// GetProfile returns one of the user's profiles.
func (s *Service) GetProfile(ctx context.Context, profileID uuid.UUID) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.GetByID(ctx, userID, profileID)
	if err != nil {
		return nil, fmt.Errorf("profile.GetProfile: %w", err)
	}
	return p, nil
}

// CreateProfile validates and stores a new profile. The user's first
// profile becomes the default; a new default demotes the previous one.
func (s *Service) CreateProfile(ctx context.Context, input Input) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := input.build(userID)
	if err != nil {
		return nil, err
	}

	var created *domain.Profile
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		count, err := s.profiles.CountByUser(txCtx, userID)
		if err != nil {
			return fmt.Errorf("count profiles: %w", err)
		}
		if count >= MaxProfilesPerUser {
			return domain.NewValidationError("profiles", fmt.Sprintf("limit reached (max %d)", MaxProfilesPerUser))
		}
		if count == 0 {
			p.IsDefault = true
		}

		if p.IsDefault {
			if err := s.profiles.ClearDefault(txCtx, userID, uuid.Nil); err != nil {
				return err
			}
		}

		created, err = s.profiles.Create(txCtx, p)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("profile.CreateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile created",
		slog.String("user_id", userID.String()),
		slog.String("profile_id", created.ID.String()))
	return created, nil
}

// UpdateProfile replaces the editable fields of a profile. Demoting the
// default promotes the most recently used other profile; a user's only
// profile stays the default.
func (s *Service) UpdateProfile(ctx context.Context, profileID uuid.UUID, input Input) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := input.build(userID)
	if err != nil {
		return nil, err
	}
	p.ID = profileID

	var updated *domain.Profile
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.profiles.GetByID(txCtx, userID, profileID)
		if err != nil {
			return err
		}

		if p.IsDefault {
			if err := s.profiles.ClearDefault(txCtx, userID, profileID); err != nil {
				return err
			}
		}

		updated, err = s.profiles.Update(txCtx, p)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}

		if !current.IsDefault || p.IsDefault {
			return nil
		}
		promoted, err := s.profiles.PromoteMostRecent(txCtx, userID, profileID)
		if err != nil {
			return fmt.Errorf("promote default: %w", err)
		}
		if !promoted {
			if err := s.profiles.SetDefault(txCtx, userID, profileID); err != nil {
				return err
			}
			updated.IsDefault = true
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("profile.UpdateProfile: %w", err)
	}

	return updated, nil
}

// DeleteProfile removes a profile. History entries that referenced it are
// kept without a profile. Deleting the default promotes the most recently
// used remaining profile.
func (s *Service) DeleteProfile(ctx context.Context, profileID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var promoted bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.profiles.GetByID(txCtx, userID, profileID)
		if err != nil {
			return err
		}
		if err := s.profiles.Delete(txCtx, userID, profileID); err != nil {
			return err
		}
		if !p.IsDefault {
			return nil
		}

		promoted, err = s.profiles.PromoteMostRecent(txCtx, userID, profileID)
		if err != nil {
			return fmt.Errorf("promote default: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("profile.DeleteProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile deleted",
		slog.String("user_id", userID.String()),
		slog.String("profile_id", profileID.String()),
		slog.Bool("default_promoted", promoted))
	return nil
}

// SetDefault makes a profile the user's only default.
func (s *Service) SetDefault(ctx context.Context, profileID uuid.UUID) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var p *domain.Profile
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.profiles.ClearDefault(txCtx, userID, profileID); err != nil {
			return err
		}
		if err := s.profiles.SetDefault(txCtx, userID, profileID); err != nil {
			return err
		}

		var err error
		p, err = s.profiles.GetByID(txCtx, userID, profileID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("profile.SetDefault: %w", err)
	}

	return p, nil
}

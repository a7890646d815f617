package search

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
	"github.com/heartmarshall/leadfinder-backend/pkg/ctxutil"
)

// FormContext is what the search form is pre-filled with.
type FormContext struct {
	Profiles     []domain.Profile
	Selected     *domain.Profile
	Filters      domain.Filters
	Industries   []string
	CompanySizes []domain.CompanySize
}

// SearchContext picks the profile that pre-fills the search form: the
// requested one when the user owns it, else the default, else the first.
// Without profiles the filters are empty.
func (s *Service) SearchContext(ctx context.Context, requested *uuid.UUID) *FormContext {
	fc := &FormContext{
		Profiles:     []domain.Profile{},
		Filters:      domain.Filters{}.Normalize(),
		Industries:   domain.Industries,
		CompanySizes: domain.CompanySizes,
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return fc
	}

	profiles, err := s.profiles.ListByUser(ctx, userID)
	if err != nil {
		s.log.ErrorContext(ctx, "list profiles for search",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return fc
	}
	fc.Profiles = profiles

	if sel := selectProfile(profiles, requested); sel != nil {
		fc.Selected = sel
		fc.Filters = sel.Filters.Normalize()
	}
	return fc
}

func selectProfile(profiles []domain.Profile, requested *uuid.UUID) *domain.Profile {
	if len(profiles) == 0 {
		return nil
	}
	if requested != nil {
		for i := range profiles {
			if profiles[i].ID == *requested {
				return &profiles[i]
			}
		}
	}
	for i := range profiles {
		if profiles[i].IsDefault {
			return &profiles[i]
		}
	}
	return &profiles[0]
}

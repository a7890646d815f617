package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
	"github.com/heartmarshall/leadfinder-backend/pkg/ctxutil"
)

// RunInput selects what to search for. With a profile and no filters
// the profile's own filters are used.
type RunInput struct {
	ProfileID *uuid.UUID
	Filters   *domain.Filters
}

// Result is the outcome of a search.
type Result struct {
	Leads   []domain.Lead
	Filters domain.Filters
	Profile *domain.Profile
}

// Run executes a search: data source predicates, then the residual
// keyword and location filters. When a profile is selected the search is
// recorded in the history; recording failures never fail the search.
func (s *Service) Run(ctx context.Context, input RunInput) (*Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var profile *domain.Profile
	if input.ProfileID != nil {
		p, err := s.profiles.GetByID(ctx, userID, *input.ProfileID)
		if err != nil {
			return nil, fmt.Errorf("search.Run get profile: %w", err)
		}
		profile = p
	}

	var filters domain.Filters
	switch {
	case input.Filters != nil:
		filters = *input.Filters
	case profile != nil:
		filters = profile.Filters
	}
	filters = filters.Normalize()
	if errs := filters.Validate(); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	leads, err := s.leads.Search(ctx, filters.Criteria())
	if err != nil {
		s.metrics.SearchFailed()
		return nil, fmt.Errorf("search.Run: %w", err)
	}
	leads = ApplyResidual(leads, filters)

	s.metrics.SearchCompleted(len(leads))

	if profile != nil {
		s.record(ctx, userID, profile.ID, filters, len(leads))
	}
	if err := s.results.Put(ctx, userID, leads); err != nil {
		s.log.WarnContext(ctx, "store search results",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
	}

	return &Result{Leads: leads, Filters: filters, Profile: profile}, nil
}

// record appends the history entry and touches the profile.
func (s *Service) record(ctx context.Context, userID, profileID uuid.UUID, filters domain.Filters, count int) {
	_, err := s.history.Create(ctx, &domain.SearchHistory{
		UserID:       userID,
		ProfileID:    &profileID,
		Filters:      filters,
		ResultsCount: count,
	})
	if err != nil {
		s.metrics.HistoryWriteFailed()
		s.log.ErrorContext(ctx, "record search history",
			slog.String("user_id", userID.String()),
			slog.String("profile_id", profileID.String()),
			slog.String("error", err.Error()))
	}

	if err := s.profiles.TouchLastUsed(ctx, userID, profileID); err != nil {
		s.log.WarnContext(ctx, "touch profile last used",
			slog.String("profile_id", profileID.String()),
			slog.String("error", err.Error()))
	}
}

package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
	"github.com/heartmarshall/leadfinder-backend/pkg/ctxutil"
)

// Dashboard is the signed-in user's overview.
type Dashboard struct {
	User           *domain.User
	Profiles       []domain.Profile
	RecentLeads    []domain.Lead
	ProfileCount   int
	LeadCount      int
	ConversionRate int
	Stats          []StatusStat
	RecentSearches []domain.SearchHistory
}

// Load fetches the user, profiles, leads and recent searches concurrently.
// Any failure fails the whole load; no partial dashboard is returned.
func (s *Service) Load(ctx context.Context) (*Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		user     *domain.User
		profiles []domain.Profile
		leads    []domain.Lead
		searches []domain.SearchHistory
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if user, err = s.users.GetByID(gctx, userID); err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if profiles, err = s.profiles.ListByUser(gctx, userID); err != nil {
			return fmt.Errorf("list profiles: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if leads, err = s.leads.ListByUser(gctx, userID); err != nil {
			return fmt.Errorf("list leads: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if searches, err = s.history.ListByUser(gctx, userID, RecentSearches); err != nil {
			return fmt.Errorf("list search history: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "load dashboard",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("dashboard.Load: %w", err)
	}

	recent := leads
	if len(recent) > RecentLeads {
		recent = recent[:RecentLeads]
	}

	return &Dashboard{
		User:           user,
		Profiles:       profiles,
		RecentLeads:    recent,
		ProfileCount:   len(profiles),
		LeadCount:      len(leads),
		ConversionRate: ConversionRate(leads),
		Stats:          Aggregate(leads),
		RecentSearches: searches,
	}, nil
}

// Package seeder loads a dataset into the persistent stores.
package seeder

import (
	"context"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// UserRepo is implemented by user.Repo.
type UserRepo interface {
	Ensure(ctx context.Context, au domain.AuthUser) (*domain.User, error)
	UpdatePreferences(ctx context.Context, u *domain.User) (*domain.User, error)
}

// LeadRepo is implemented by lead.Repo.
type LeadRepo interface {
	Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
}

// ProfileRepo is implemented by profile.Repo.
type ProfileRepo interface {
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
}

// StatusRepo is implemented by leadstatus.Repo.
type StatusRepo interface {
	Upsert(ctx context.Context, rec *domain.LeadStatusRecord) (*domain.LeadStatusRecord, error)
}

// HistoryRepo is implemented by searchhistory.Repo.
type HistoryRepo interface {
	Create(ctx context.Context, h *domain.SearchHistory) (*domain.SearchHistory, error)
}

// Repos bundles the stores written by the pipeline.
type Repos struct {
	Users    UserRepo
	Leads    LeadRepo
	Profiles ProfileRepo
	Statuses StatusRepo
	History  HistoryRepo
}

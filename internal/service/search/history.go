package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
	"github.com/heartmarshall/leadfinder-backend/pkg/ctxutil"
)

// ListHistory returns the user's most recent searches, newest first.
// limit <= 0 returns all of them. Store failures yield an empty list.
func (s *Service) ListHistory(ctx context.Context, limit int) []domain.SearchHistory {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return []domain.SearchHistory{}
	}

	entries, err := s.history.ListByUser(ctx, userID, limit)
	if err != nil {
		s.log.ErrorContext(ctx, "list search history",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return []domain.SearchHistory{}
	}
	return entries
}

// SaveHistoryInput names and flags a history entry. Nil fields are left
// unchanged; an empty name clears it.
type SaveHistoryInput struct {
	SearchName *string
	IsSaved    *bool
	IsFavorite *bool
}

// Validate checks that something changes and that the name fits.
func (i SaveHistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.SearchName == nil && i.IsSaved == nil && i.IsFavorite == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.SearchName != nil && len(strings.TrimSpace(*i.SearchName)) > 200 {
		errs = append(errs, domain.FieldError{Field: "search_name", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SaveHistory updates the name and flags of one of the user's searches.
func (s *Service) SaveHistory(ctx context.Context, id uuid.UUID, input SaveHistoryInput) (*domain.SearchHistory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	upd := domain.SearchHistoryUpdate{IsSaved: input.IsSaved, IsFavorite: input.IsFavorite}
	if input.SearchName != nil {
		name := strings.TrimSpace(*input.SearchName)
		upd.SearchName = &name
	}

	h, err := s.history.UpdateFlags(ctx, userID, id, upd)
	if err != nil {
		return nil, fmt.Errorf("search.SaveHistory: %w", err)
	}
	return h, nil
}

package lead

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
	"github.com/heartmarshall/leadfinder-backend/pkg/ctxutil"
)

type leadRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Lead, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status domain.LeadStatus) error
}

type statusRepo interface {
	Upsert(ctx context.Context, rec *domain.LeadStatusRecord) (*domain.LeadStatusRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.LeadStatusRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service exposes the user's leads and their pipeline annotations.
type Service struct {
	leads    leadRepo
	statuses statusRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new lead service.
func NewService(log *slog.Logger, leads leadRepo, statuses statusRepo, tx txManager) *Service {
	return &Service{
		leads:    leads,
		statuses: statuses,
		tx:       tx,
		log:      log.With("service", "lead"),
	}
}

// ListLeads returns the leads created by or assigned to the user, newest
// first. Store failures are logged and yield an empty list.
func (s *Service) ListLeads(ctx context.Context) []domain.Lead {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return []domain.Lead{}
	}

	leads, err := s.leads.ListByUser(ctx, userID)
	if err != nil {
		s.log.ErrorContext(ctx, "list leads",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return []domain.Lead{}
	}
	return leads
}

// ListStatuses returns the user's pipeline annotations, most recently
// updated first. Store failures yield an empty list.
func (s *Service) ListStatuses(ctx context.Context) []domain.LeadStatusRecord {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return []domain.LeadStatusRecord{}
	}

	records, err := s.statuses.ListByUser(ctx, userID)
	if err != nil {
		s.log.ErrorContext(ctx, "list lead statuses",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return []domain.LeadStatusRecord{}
	}
	return records
}

// StatusInput is the user's annotation of a lead.
type StatusInput struct {
	Status            domain.LeadStatus
	Notes             *string
	NextAction        *string
	NextActionDate    *time.Time
	LastContactDate   *time.Time
	LastContactMethod *domain.ContactMethod
}

// Validate checks the enumerated values and text lengths.
func (i StatusInput) Validate() error {
	var errs []domain.FieldError

	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.LastContactMethod != nil && !i.LastContactMethod.IsValid() {
		errs = append(errs, domain.FieldError{Field: "last_contact_method", Message: "unknown contact method"})
	}
	if i.Notes != nil && len(*i.Notes) > 5000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 5000 characters"})
	}
	if i.NextAction != nil && len(*i.NextAction) > 500 {
		errs = append(errs, domain.FieldError{Field: "next_action", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateStatus moves a lead the user created or is assigned to into the
// given pipeline status and records the user's annotation, in one
// transaction. Other leads return domain.ErrNotFound.
func (s *Service) UpdateStatus(ctx context.Context, leadID uuid.UUID, input StatusInput) (*domain.LeadStatusRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec := &domain.LeadStatusRecord{
		LeadID:            leadID,
		UserID:            userID,
		Status:            input.Status,
		Notes:             trimOrNil(input.Notes),
		NextAction:        trimOrNil(input.NextAction),
		NextActionDate:    input.NextActionDate,
		LastContactDate:   input.LastContactDate,
		LastContactMethod: input.LastContactMethod,
	}

	var saved *domain.LeadStatusRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.leads.UpdateStatus(txCtx, userID, leadID, input.Status); err != nil {
			return fmt.Errorf("update lead status: %w", err)
		}

		var err error
		saved, err = s.statuses.Upsert(txCtx, rec)
		if err != nil {
			return fmt.Errorf("upsert lead status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("lead.UpdateStatus: %w", err)
	}

	s.log.InfoContext(ctx, "lead status updated",
		slog.String("user_id", userID.String()),
		slog.String("lead_id", leadID.String()),
		slog.String("status", input.Status.String()))
	return saved, nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

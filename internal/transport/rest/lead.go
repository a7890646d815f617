package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
	"github.com/heartmarshall/leadfinder-backend/internal/service/lead"
)

type leadService interface {
	ListLeads(ctx context.Context) []domain.Lead
	ListStatuses(ctx context.Context) []domain.LeadStatusRecord
	UpdateStatus(ctx context.Context, leadID uuid.UUID, input lead.StatusInput) (*domain.LeadStatusRecord, error)
}

// LeadHandler serves the lead list and pipeline status endpoints.
type LeadHandler struct {
	responder
	svc leadService
}

// NewLeadHandler creates a LeadHandler.
func NewLeadHandler(svc leadService, loginPath string, logger *slog.Logger) *LeadHandler {
	return &LeadHandler{
		responder: responder{log: logger.With("handler", "lead"), loginPath: loginPath},
		svc:       svc,
	}
}

type statusRequest struct {
	Status            string     `json:"status"`
	Notes             *string    `json:"notes"`
	NextAction        *string    `json:"next_action"`
	NextActionDate    *time.Time `json:"next_action_date"`
	LastContactDate   *time.Time `json:"last_contact_date"`
	LastContactMethod *string    `json:"last_contact_method"`
}

// List handles GET /api/leads.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toLeadList(h.svc.ListLeads(r.Context())))
}

// Statuses handles GET /api/leads/statuses.
func (h *LeadHandler) Statuses(w http.ResponseWriter, r *http.Request) {
	records := h.svc.ListStatuses(r.Context())
	out := make([]statusRecordResponse, 0, len(records))
	for i := range records {
		out = append(out, toStatusRecordResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// UpdateStatus handles PUT /api/leads/{id}/status.
func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	input := lead.StatusInput{
		Status:          domain.LeadStatus(req.Status),
		Notes:           req.Notes,
		NextAction:      req.NextAction,
		NextActionDate:  req.NextActionDate,
		LastContactDate: req.LastContactDate,
	}
	if req.LastContactMethod != nil {
		m := domain.ContactMethod(*req.LastContactMethod)
		input.LastContactMethod = &m
	}

	rec, err := h.svc.UpdateStatus(r.Context(), id, input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatusRecordResponse(rec))
}

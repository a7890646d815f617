package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
	"github.com/heartmarshall/leadfinder-backend/internal/service/profile"
)

type profileService interface {
	ListProfiles(ctx context.Context) []domain.Profile
	GetProfile(ctx context.Context, profileID uuid.UUID) (*domain.Profile, error)
	CreateProfile(ctx context.Context, input profile.Input) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, profileID uuid.UUID, input profile.Input) (*domain.Profile, error)
	DeleteProfile(ctx context.Context, profileID uuid.UUID) error
	SetDefault(ctx context.Context, profileID uuid.UUID) (*domain.Profile, error)
}

// ProfileHandler serves the prospection profile endpoints.
type ProfileHandler struct {
	responder
	svc profileService
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, loginPath string, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		responder: responder{log: logger.With("handler", "profile"), loginPath: loginPath},
		svc:       svc,
	}
}

type profileRequest struct {
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	IsDefault   bool           `json:"is_default"`
	Filters     filtersRequest `json:"filters"`
}

func (req profileRequest) toInput() profile.Input {
	return profile.Input{
		Name:        req.Name,
		Description: req.Description,
		Filters:     req.Filters.toDomain(),
		IsDefault:   req.IsDefault,
	}
}

// List handles GET /api/profiles.
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toProfileList(h.svc.ListProfiles(r.Context())))
}

// Get handles GET /api/profiles/{id}.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	p, err := h.svc.GetProfile(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Create handles POST /api/profiles.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	p, err := h.svc.CreateProfile(r.Context(), req.toInput())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProfileResponse(p))
}

// Update handles PUT /api/profiles/{id}.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req profileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	p, err := h.svc.UpdateProfile(r.Context(), id, req.toInput())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Delete handles DELETE /api/profiles/{id}.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.DeleteProfile(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetDefault handles POST /api/profiles/{id}/default.
func (h *ProfileHandler) SetDefault(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	p, err := h.svc.SetDefault(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

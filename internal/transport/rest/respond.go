package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// unexpectedMessage is the only detail an unexpected error exposes.
const unexpectedMessage = "an unexpected error occurred"

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error    string          `json:"error"`
	Fields   []fieldResponse `json:"fields,omitempty"`
	Redirect string          `json:"redirect,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// responder writes service errors. loginPath is the redirect target of
// unauthorized API calls.
type responder struct {
	log       *slog.Logger
	loginPath string
}

// fail maps a service error to a response. Validation and provider
// messages are shown as-is; unexpected errors are logged and hidden.
func (h responder) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp := errorResponse{Error: verr.Errors[0].Message}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	var eerr *domain.ExternalError
	if errors.As(err, &eerr) {
		writeError(w, statusFor(eerr.Kind), eerr.Message)
		return
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Redirect: h.loginPath})
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, domain.ErrUnavailable):
		h.log.WarnContext(r.Context(), "upstream unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "service temporarily unavailable")
	default:
		h.log.ErrorContext(r.Context(), "unexpected error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, unexpectedMessage)
	}
}

func statusFor(kind error) int {
	switch {
	case errors.Is(kind, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(kind, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(kind, domain.ErrAlreadyExists), errors.Is(kind, domain.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusBadGateway
}

// decodeJSON decodes the request body into dst, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid request body")
	}
	return nil
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "invalid id")
	}
	return id, nil
}

// queryID parses an optional uuid query parameter. Malformed values are
// treated as absent.
func queryID(r *http.Request, key string) *uuid.UUID {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

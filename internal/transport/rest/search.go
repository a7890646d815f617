package rest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
	"github.com/heartmarshall/leadfinder-backend/internal/service/search"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type searchService interface {
	Run(ctx context.Context, input search.RunInput) (*search.Result, error)
	SearchContext(ctx context.Context, requested *uuid.UUID) *search.FormContext
	ExportCSV(ctx context.Context, w io.Writer) error
	ListHistory(ctx context.Context, limit int) []domain.SearchHistory
	SaveHistory(ctx context.Context, id uuid.UUID, input search.SaveHistoryInput) (*domain.SearchHistory, error)
}

// SearchHandler serves lead search, export and history endpoints.
type SearchHandler struct {
	responder
	svc searchService
	now func() time.Time
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, loginPath string, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		responder: responder{log: logger.With("handler", "search"), loginPath: loginPath},
		svc:       svc,
		now:       time.Now,
	}
}

type searchRequest struct {
	ProfileID *uuid.UUID      `json:"profile_id"`
	Filters   *filtersRequest `json:"filters"`
}

type searchResponse struct {
	Count   int              `json:"count"`
	Leads   []leadResponse   `json:"leads"`
	Filters domain.Filters   `json:"filters"`
	Profile *profileResponse `json:"profile"`
}

type sizeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type formContextResponse struct {
	Profiles     []profileResponse `json:"profiles"`
	Selected     *profileResponse  `json:"selected"`
	Filters      domain.Filters    `json:"filters"`
	Industries   []string          `json:"industries"`
	CompanySizes []sizeOption      `json:"company_sizes"`
}

type saveHistoryRequest struct {
	SearchName *string `json:"search_name"`
	IsSaved    *bool   `json:"is_saved"`
	IsFavorite *bool   `json:"is_favorite"`
}

// Run handles POST /api/search.
func (h *SearchHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	input := search.RunInput{ProfileID: req.ProfileID}
	if req.Filters != nil {
		f := req.Filters.toDomain()
		input.Filters = &f
	}

	res, err := h.svc.Run(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Count:   len(res.Leads),
		Leads:   toLeadList(res.Leads),
		Filters: res.Filters,
		Profile: toProfileResponse(res.Profile),
	})
}

// Context handles GET /api/search/context?profile={id}.
func (h *SearchHandler) Context(w http.ResponseWriter, r *http.Request) {
	fc := h.svc.SearchContext(r.Context(), queryID(r, "profile"))
	writeJSON(w, http.StatusOK, formContextResponse{
		Profiles:     toProfileList(fc.Profiles),
		Selected:     toProfileResponse(fc.Selected),
		Filters:      fc.Filters,
		Industries:   fc.Industries,
		CompanySizes: toSizeOptions(fc.CompanySizes),
	})
}

// Export handles GET /api/search/export. The body is buffered so that a
// failure can still be answered with an error status.
func (h *SearchHandler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.svc.ExportCSV(r.Context(), &buf); err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+search.ExportFilename(h.now())+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// History handles GET /api/search/history?limit={n}.
func (h *SearchHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.fail(w, r, domain.NewValidationError("limit", "must be a positive integer"))
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	writeJSON(w, http.StatusOK, toHistoryList(h.svc.ListHistory(r.Context(), limit)))
}

// SaveHistory handles PATCH /api/search/history/{id}.
func (h *SearchHandler) SaveHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req saveHistoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	entry, err := h.svc.SaveHistory(r.Context(), id, search.SaveHistoryInput{
		SearchName: req.SearchName,
		IsSaved:    req.IsSaved,
		IsFavorite: req.IsFavorite,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponse(entry))
}

func toSizeOptions(sizes []domain.CompanySize) []sizeOption {
	out := make([]sizeOption, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, sizeOption{Value: s.String(), Label: s.Label()})
	}
	return out
}

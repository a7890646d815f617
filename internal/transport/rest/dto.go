package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// listField accepts either a JSON array of strings or one
// comma-separated string, as sent by plain HTML forms.
type listField []string

func (l *listField) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = domain.TrimList(items)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = domain.SplitList(raw)
	return nil
}

type filtersRequest struct {
	Industry       listField `json:"industry"`
	CompanySize    listField `json:"company_size"`
	Location       listField `json:"location"`
	NAFCodes       listField `json:"naf_codes"`
	Keywords       listField `json:"keywords"`
	RevenueMin     *float64  `json:"revenue_min"`
	RevenueMax     *float64  `json:"revenue_max"`
	CompanyAgeMin  *int      `json:"company_age_min"`
	CompanyAgeMax  *int      `json:"company_age_max"`
	LocationRadius *int      `json:"location_radius"`
	HasWebsite     *bool     `json:"has_website"`
	HasSocialMedia *bool     `json:"has_social_media"`
}

func (f filtersRequest) toDomain() domain.Filters {
	return domain.Filters{
		Industries:     f.Industry,
		CompanySizes:   f.CompanySize,
		Locations:      f.Location,
		NAFCodes:       f.NAFCodes,
		Keywords:       f.Keywords,
		RevenueMin:     f.RevenueMin,
		RevenueMax:     f.RevenueMax,
		CompanyAgeMin:  f.CompanyAgeMin,
		CompanyAgeMax:  f.CompanyAgeMax,
		LocationRadius: f.LocationRadius,
		HasWebsite:     f.HasWebsite,
		HasSocialMedia: f.HasSocialMedia,
	}.Normalize()
}

type userResponse struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	FullName          *string    `json:"full_name"`
	DisplayName       *string    `json:"display_name"`
	AvatarURL         *string    `json:"avatar_url"`
	Role              string     `json:"role"`
	NotificationEmail bool       `json:"notification_email"`
	NotificationWeb   bool       `json:"notification_web"`
	LastSignInAt      *time.Time `json:"last_sign_in_at"`
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:                u.ID.String(),
		Email:             u.Email,
		Name:              u.Name(),
		FullName:          u.FullName,
		DisplayName:       u.DisplayName,
		AvatarURL:         u.AvatarURL,
		Role:              u.Role,
		NotificationEmail: u.NotificationEmail,
		NotificationWeb:   u.NotificationWeb,
		LastSignInAt:      u.LastSignInAt,
	}
}

type profileResponse struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Filters     domain.Filters `json:"filters"`
	IsDefault   bool           `json:"is_default"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	LastUsedAt  *time.Time     `json:"last_used_at"`
}

func toProfileResponse(p *domain.Profile) *profileResponse {
	if p == nil {
		return nil
	}
	return &profileResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Filters:     p.Filters,
		IsDefault:   p.IsDefault,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		LastUsedAt:  p.LastUsedAt,
	}
}

func toProfileList(profiles []domain.Profile) []profileResponse {
	out := make([]profileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, *toProfileResponse(&profiles[i]))
	}
	return out
}

type leadResponse struct {
	ID            uuid.UUID `json:"id"`
	CompanyName   string    `json:"company_name"`
	ContactName   string    `json:"contact_name"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone"`
	Website       *string   `json:"website"`
	Industry      *string   `json:"industry"`
	CompanySize   *string   `json:"company_size"`
	AnnualRevenue *float64  `json:"annual_revenue"`
	Notes         *string   `json:"notes"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func toLeadList(leads []domain.Lead) []leadResponse {
	out := make([]leadResponse, 0, len(leads))
	for i := range leads {
		l := &leads[i]
		out = append(out, leadResponse{
			ID:            l.ID,
			CompanyName:   l.CompanyName,
			ContactName:   l.ContactName,
			Email:         l.Email,
			Phone:         l.Phone,
			Website:       l.Website,
			Industry:      l.Industry,
			CompanySize:   l.CompanySize,
			AnnualRevenue: l.AnnualRevenue,
			Notes:         l.Notes,
			Status:        l.Status.OrNew().String(),
			CreatedAt:     l.CreatedAt,
		})
	}
	return out
}

type historyResponse struct {
	ID           uuid.UUID      `json:"id"`
	ProfileID    *uuid.UUID     `json:"profile_id"`
	ProfileName  *string        `json:"profile_name"`
	SearchName   *string        `json:"search_name"`
	Filters      domain.Filters `json:"filters"`
	ResultsCount int            `json:"results_count"`
	IsSaved      bool           `json:"is_saved"`
	IsFavorite   bool           `json:"is_favorite"`
	CreatedAt    time.Time      `json:"created_at"`
}

func toHistoryResponse(h *domain.SearchHistory) historyResponse {
	return historyResponse{
		ID:           h.ID,
		ProfileID:    h.ProfileID,
		ProfileName:  h.ProfileName,
		SearchName:   h.SearchName,
		Filters:      h.Filters,
		ResultsCount: h.ResultsCount,
		IsSaved:      h.IsSaved,
		IsFavorite:   h.IsFavorite,
		CreatedAt:    h.CreatedAt,
	}
}

func toHistoryList(items []domain.SearchHistory) []historyResponse {
	out := make([]historyResponse, 0, len(items))
	for i := range items {
		out = append(out, toHistoryResponse(&items[i]))
	}
	return out
}

type statusRecordResponse struct {
	ID                uuid.UUID  `json:"id"`
	LeadID            uuid.UUID  `json:"lead_id"`
	Status            string     `json:"status"`
	Notes             *string    `json:"notes"`
	NextAction        *string    `json:"next_action"`
	NextActionDate    *time.Time `json:"next_action_date"`
	LastContactDate   *time.Time `json:"last_contact_date"`
	LastContactMethod *string    `json:"last_contact_method"`
	CompanyName       string     `json:"company_name,omitempty"`
	ContactName       string     `json:"contact_name,omitempty"`
	Email             string     `json:"email,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func toStatusRecordResponse(rec *domain.LeadStatusRecord) statusRecordResponse {
	resp := statusRecordResponse{
		ID:              rec.ID,
		LeadID:          rec.LeadID,
		Status:          rec.Status.String(),
		Notes:           rec.Notes,
		NextAction:      rec.NextAction,
		NextActionDate:  rec.NextActionDate,
		LastContactDate: rec.LastContactDate,
		CompanyName:     rec.CompanyName,
		ContactName:     rec.ContactName,
		Email:           rec.Email,
		UpdatedAt:       rec.UpdatedAt,
	}
	if rec.LastContactMethod != nil {
		m := rec.LastContactMethod.String()
		resp.LastContactMethod = &m
	}
	return resp
}

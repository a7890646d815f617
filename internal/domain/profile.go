package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Filters is the set of prospection criteria shared by profiles and ad hoc
// searches. The JSON form is the snapshot stored in search history.
type Filters struct {
	Industries     []string `json:"industry"`
	CompanySizes   []string `json:"company_size"`
	Locations      []string `json:"location"`
	NAFCodes       []string `json:"naf_codes"`
	Keywords       []string `json:"keywords"`
	RevenueMin     *float64 `json:"revenue_min"`
	RevenueMax     *float64 `json:"revenue_max"`
	CompanyAgeMin  *int     `json:"company_age_min"`
	CompanyAgeMax  *int     `json:"company_age_max"`
	LocationRadius *int     `json:"location_radius"`
	HasWebsite     *bool    `json:"has_website"`
	HasSocialMedia *bool    `json:"has_social_media"`
}

// Normalize trims every list item, drops empties, and replaces nil
// lists with empty ones.
func (f Filters) Normalize() Filters {
	f.Industries = TrimList(f.Industries)
	f.CompanySizes = TrimList(f.CompanySizes)
	f.Locations = TrimList(f.Locations)
	f.NAFCodes = TrimList(f.NAFCodes)
	f.Keywords = TrimList(f.Keywords)
	return f
}

// Validate checks ranges and enumerated values.
func (f Filters) Validate() []FieldError {
	var errs []FieldError

	for _, size := range f.CompanySizes {
		if !CompanySize(size).IsValid() {
			errs = append(errs, FieldError{Field: "company_size", Message: "unknown size " + size})
			break
		}
	}

	if f.RevenueMin != nil && *f.RevenueMin < 0 {
		errs = append(errs, FieldError{Field: "revenue_min", Message: "must be >= 0"})
	}
	if f.RevenueMax != nil && *f.RevenueMax < 0 {
		errs = append(errs, FieldError{Field: "revenue_max", Message: "must be >= 0"})
	}
	if f.RevenueMin != nil && f.RevenueMax != nil && *f.RevenueMin > *f.RevenueMax {
		errs = append(errs, FieldError{Field: "revenue_max", Message: "must be >= revenue_min"})
	}

	if f.CompanyAgeMin != nil && *f.CompanyAgeMin < 0 {
		errs = append(errs, FieldError{Field: "company_age_min", Message: "must be >= 0"})
	}
	if f.CompanyAgeMax != nil && *f.CompanyAgeMax < 0 {
		errs = append(errs, FieldError{Field: "company_age_max", Message: "must be >= 0"})
	}
	if f.CompanyAgeMin != nil && f.CompanyAgeMax != nil && *f.CompanyAgeMin > *f.CompanyAgeMax {
		errs = append(errs, FieldError{Field: "company_age_max", Message: "must be >= company_age_min"})
	}

	if f.LocationRadius != nil && *f.LocationRadius < 0 {
		errs = append(errs, FieldError{Field: "location_radius", Message: "must be >= 0"})
	}

	return errs
}

// Criteria returns the part of the filters the data source can evaluate.
// Locations and keywords stay in memory; has_website only narrows when true.
func (f Filters) Criteria() LeadCriteria {
	return LeadCriteria{
		Industries:     f.Industries,
		CompanySizes:   f.CompanySizes,
		RevenueMin:     f.RevenueMin,
		RevenueMax:     f.RevenueMax,
		RequireWebsite: f.HasWebsite != nil && *f.HasWebsite,
	}
}

// Profile is a saved, named prospection filter template owned by one user.
type Profile struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	Filters     Filters
	IsDefault   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastUsedAt  *time.Time
}

// NewProfile validates and builds a profile. Filter lists are normalized.
func NewProfile(userID uuid.UUID, name string, description *string, filters Filters, isDefault bool) (*Profile, error) {
	var errs []FieldError

	if userID == uuid.Nil {
		errs = append(errs, FieldError{Field: "user_id", Message: "required"})
	}
	name = strings.TrimSpace(name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	} else if len(name) > 200 {
		errs = append(errs, FieldError{Field: "name", Message: "too long (max 200)"})
	}

	filters = filters.Normalize()
	errs = append(errs, filters.Validate()...)

	if len(errs) > 0 {
		return nil, NewValidationErrors(errs)
	}

	if description != nil {
		d := strings.TrimSpace(*description)
		if d == "" {
			description = nil
		} else {
			description = &d
		}
	}

	return &Profile{
		UserID:      userID,
		Name:        name,
		Description: description,
		Filters:     filters,
		IsDefault:   isDefault,
	}, nil
}

// SearchHistory is one executed search.
type SearchHistory struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ProfileID    *uuid.UUID
	ProfileName  *string
	SearchName   *string
	Filters      Filters
	ResultsCount int
	IsSaved      bool
	IsFavorite   bool
	CreatedAt    time.Time
}

// SearchHistoryUpdate lists the mutable fields of a history entry.
// Nil fields are left unchanged; an empty SearchName clears the name.
type SearchHistoryUpdate struct {
	SearchName *string
	IsSaved    *bool
	IsFavorite *bool
}

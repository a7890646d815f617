package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lead is a prospective customer record.
type Lead struct {
	ID            uuid.UUID
	CompanyName   string
	ContactName   string
	Email         string
	Phone         *string
	Website       *string
	Industry      *string
	CompanySize   *string
	AnnualRevenue *float64
	Notes         *string
	Status        LeadStatus
	CreatedBy     *uuid.UUID
	AssignedTo    *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewLead validates the mandatory fields of a lead. An empty status
// becomes LeadStatusNew.
func NewLead(companyName, contactName, email string, status LeadStatus) (*Lead, error) {
	var errs []FieldError

	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		errs = append(errs, FieldError{Field: "company_name", Message: "required"})
	}
	contactName = strings.TrimSpace(contactName)
	if contactName == "" {
		errs = append(errs, FieldError{Field: "contact_name", Message: "required"})
	}
	email = strings.TrimSpace(email)
	if email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "required"})
	}
	if status == "" {
		status = LeadStatusNew
	}
	if !status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return nil, NewValidationErrors(errs)
	}

	return &Lead{
		CompanyName: companyName,
		ContactName: contactName,
		Email:       email,
		Status:      status,
	}, nil
}

// LeadCriteria is the conjunctive predicate evaluated by the data source.
// Empty slices and nil bounds do not narrow the result.
type LeadCriteria struct {
	Industries     []string
	CompanySizes   []string
	RevenueMin     *float64
	RevenueMax     *float64
	RequireWebsite bool
}

// Matches reports whether the lead satisfies every predicate.
// A lead with no revenue never satisfies a revenue bound, as in SQL.
func (c LeadCriteria) Matches(l *Lead) bool {
	if len(c.Industries) > 0 && (l.Industry == nil || !slices.Contains(c.Industries, *l.Industry)) {
		return false
	}
	if len(c.CompanySizes) > 0 && (l.CompanySize == nil || !slices.Contains(c.CompanySizes, *l.CompanySize)) {
		return false
	}
	if c.RevenueMin != nil && (l.AnnualRevenue == nil || *l.AnnualRevenue < *c.RevenueMin) {
		return false
	}
	if c.RevenueMax != nil && (l.AnnualRevenue == nil || *l.AnnualRevenue > *c.RevenueMax) {
		return false
	}
	if c.RequireWebsite && l.Website == nil {
		return false
	}
	return true
}

// LeadStatusRecord is the per-user pipeline annotation of a lead.
type LeadStatusRecord struct {
	ID                uuid.UUID
	LeadID            uuid.UUID
	UserID            uuid.UUID
	Status            LeadStatus
	Notes             *string
	NextAction        *string
	NextActionDate    *time.Time
	LastContactDate   *time.Time
	LastContactMethod *ContactMethod
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined lead fields, populated by list queries.
	CompanyName string
	ContactName string
	Email       string
}

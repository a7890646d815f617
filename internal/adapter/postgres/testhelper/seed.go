package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := UniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	name := "Utilisateur " + suffix
	user := domain.User{
		ID:                uuid.New(),
		Email:             "utilisateur-" + suffix + "@exemple.com",
		DisplayName:       &name,
		Role:              "user",
		NotificationEmail: true,
		NotificationWeb:   true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, display_name, role, notification_email, notification_web, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.DisplayName, user.Role, user.NotificationEmail, user.NotificationWeb, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// LeadOption customizes a seeded lead.
type LeadOption func(*domain.Lead)

// SeedLead creates a lead with the given industry. Options run before insert.
func SeedLead(t *testing.T, pool *pgxpool.Pool, industry string, opts ...LeadOption) domain.Lead {
	t.Helper()
	ctx := context.Background()

	suffix := UniqueSuffix()
	lead := domain.Lead{
		ID:          uuid.New(),
		CompanyName: "Entreprise " + suffix,
		ContactName: "Contact " + suffix,
		Email:       "contact-" + suffix + "@exemple.com",
		Industry:    &industry,
		Status:      domain.LeadStatusNew,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
	for _, opt := range opts {
		opt(&lead)
	}
	lead.UpdatedAt = lead.CreatedAt

	_, err := pool.Exec(ctx,
		`INSERT INTO leads (id, company_name, contact_name, email, phone, website, industry, company_size,
		                    annual_revenue, notes, status, created_by, assigned_to, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		lead.ID, lead.CompanyName, lead.ContactName, lead.Email, lead.Phone, lead.Website, lead.Industry,
		lead.CompanySize, lead.AnnualRevenue, lead.Notes, string(lead.Status), lead.CreatedBy, lead.AssignedTo,
		lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLead insert lead: %v", err)
	}

	return lead
}

// SeedProfile creates a profile for the user.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string, isDefault bool) domain.Profile {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Profile{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Filters:   domain.Filters{}.Normalize(),
		IsDefault: isDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO profiles (id, user_id, name, is_default, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.UserID, p.Name, p.IsDefault, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile insert profile: %v", err)
	}

	return p
}

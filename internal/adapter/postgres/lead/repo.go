// Package lead implements the lead repository using PostgreSQL.
// Search predicates are composed with squirrel; fixed queries are raw SQL.
package lead

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// Repo provides lead persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lead repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

var leadColumns = []string{
	"id", "company_name", "contact_name", "email", "phone", "website",
	"industry", "company_size", "annual_revenue", "notes", "status",
	"created_by", "assigned_to", "created_at", "updated_at",
}

const leadColumnList = `id, company_name, contact_name, email, phone, website,
	industry, company_size, annual_revenue, notes, status,
	created_by, assigned_to, created_at, updated_at`

const getByIDSQL = `
SELECT ` + leadColumnList + `
FROM leads
WHERE id = $1`

const listByUserSQL = `
SELECT ` + leadColumnList + `
FROM leads
WHERE created_by = $1 OR assigned_to = $1
ORDER BY created_at DESC`

const createSQL = `
INSERT INTO leads (id, company_name, contact_name, email, phone, website,
	industry, company_size, annual_revenue, notes, status,
	created_by, assigned_to, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
RETURNING ` + leadColumnList

const updateStatusSQL = `
UPDATE leads
SET status = $2, updated_at = now()
WHERE id = $1 AND (created_by = $3 OR assigned_to = $3)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Search returns every lead matching the criteria, newest first.
// Empty lists and nil bounds add no predicate.
func (r *Repo) Search(ctx context.Context, criteria domain.LeadCriteria) ([]domain.Lead, error) {
	query, args, err := searchQuery(criteria).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lead search: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search leads: %w", err)
	}
	defer rows.Close()

	leads, err := scanLeads(rows)
	if err != nil {
		return nil, fmt.Errorf("search leads: %w", err)
	}

	return leads, nil
}

func searchQuery(c domain.LeadCriteria) squirrel.SelectBuilder {
	q := postgres.Builder().
		Select(leadColumns...).
		From("leads")

	if len(c.Industries) > 0 {
		q = q.Where(squirrel.Eq{"industry": c.Industries})
	}
	if len(c.CompanySizes) > 0 {
		q = q.Where(squirrel.Eq{"company_size": c.CompanySizes})
	}
	if c.RevenueMin != nil {
		q = q.Where(squirrel.GtOrEq{"annual_revenue": *c.RevenueMin})
	}
	if c.RevenueMax != nil {
		q = q.Where(squirrel.LtOrEq{"annual_revenue": *c.RevenueMax})
	}
	if c.RequireWebsite {
		q = q.Where(squirrel.NotEq{"website": nil})
	}

	return q.OrderBy("created_at DESC")
}

// ListByUser returns the leads created by or assigned to the user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Lead, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list leads by user: %w", err)
	}
	defer rows.Close()

	leads, err := scanLeads(rows)
	if err != nil {
		return nil, fmt.Errorf("list leads by user: %w", err)
	}

	return leads, nil
}

// GetByID returns a lead by primary key.
// Returns domain.ErrNotFound if the lead does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	lead, err := scanLead(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "lead", id)
	}

	return lead, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a lead. A zero ID is replaced with a new one.
func (r *Repo) Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := lead.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := lead.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	row := querier.QueryRow(ctx, createSQL,
		id,
		lead.CompanyName,
		lead.ContactName,
		lead.Email,
		lead.Phone,
		lead.Website,
		lead.Industry,
		lead.CompanySize,
		lead.AnnualRevenue,
		lead.Notes,
		string(lead.Status.OrNew()),
		lead.CreatedBy,
		lead.AssignedTo,
		createdAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanLead(row)
	if err != nil {
		return nil, postgres.MapError(err, "lead", id)
	}

	return created, nil
}

// UpdateStatus sets the pipeline status of a lead created by or assigned
// to the user. Returns domain.ErrNotFound if no such lead exists.
func (r *Repo) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status domain.LeadStatus) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, updateStatusSQL, id, string(status), userID)
	if err != nil {
		return postgres.MapError(err, "lead", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("lead %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanLead(row pgx.Row) (*domain.Lead, error) {
	var (
		l      domain.Lead
		status string
	)

	err := row.Scan(
		&l.ID,
		&l.CompanyName,
		&l.ContactName,
		&l.Email,
		&l.Phone,
		&l.Website,
		&l.Industry,
		&l.CompanySize,
		&l.AnnualRevenue,
		&l.Notes,
		&status,
		&l.CreatedBy,
		&l.AssignedTo,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	l.Status = domain.LeadStatus(status)

	return &l, nil
}

func scanLeads(rows pgx.Rows) ([]domain.Lead, error) {
	leads := make([]domain.Lead, 0)
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return leads, nil
}

// Package leadstatus implements the per-user lead pipeline repository.
package leadstatus

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// Repo provides lead_status persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lead status repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const statusColumns = `s.id, s.lead_id, s.user_id, s.status, s.notes, s.next_action,
	s.next_action_date, s.last_contact_date, s.last_contact_method,
	s.created_at, s.updated_at, l.company_name, l.contact_name, l.email`

// One record per (lead, user): a second upsert overwrites the annotation.
const upsertSQL = `
WITH upserted AS (
	INSERT INTO lead_status (id, lead_id, user_id, status, notes, next_action,
		next_action_date, last_contact_date, last_contact_method)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (lead_id, user_id) DO UPDATE SET
		status              = EXCLUDED.status,
		notes               = EXCLUDED.notes,
		next_action         = EXCLUDED.next_action,
		next_action_date    = EXCLUDED.next_action_date,
		last_contact_date   = EXCLUDED.last_contact_date,
		last_contact_method = EXCLUDED.last_contact_method,
		updated_at          = now()
	RETURNING *
)
SELECT ` + statusColumns + `
FROM upserted s
JOIN leads l ON l.id = s.lead_id`

const listByUserSQL = `
SELECT ` + statusColumns + `
FROM lead_status s
JOIN leads l ON l.id = s.lead_id
WHERE s.user_id = $1
ORDER BY s.updated_at DESC`

// Upsert creates or replaces the user's annotation of a lead.
func (r *Repo) Upsert(ctx context.Context, rec *domain.LeadStatusRecord) (*domain.LeadStatusRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var method *string
	if rec.LastContactMethod != nil {
		m := string(*rec.LastContactMethod)
		method = &m
	}

	row := querier.QueryRow(ctx, upsertSQL,
		id,
		rec.LeadID,
		rec.UserID,
		string(rec.Status.OrNew()),
		rec.Notes,
		rec.NextAction,
		rec.NextActionDate,
		rec.LastContactDate,
		method,
	)

	got, err := scanStatus(row)
	if err != nil {
		return nil, postgres.MapError(err, "lead_status", rec.LeadID)
	}

	return got, nil
}

// ListByUser returns the user's annotations joined with the lead identity,
// most recently updated first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.LeadStatusRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list lead statuses: %w", err)
	}
	defer rows.Close()

	records := make([]domain.LeadStatusRecord, 0)
	for rows.Next() {
		rec, err := scanStatus(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead status: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lead statuses: %w", err)
	}

	return records, nil
}

func scanStatus(row pgx.Row) (*domain.LeadStatusRecord, error) {
	var (
		rec    domain.LeadStatusRecord
		status string
		method *string
	)

	err := row.Scan(
		&rec.ID,
		&rec.LeadID,
		&rec.UserID,
		&status,
		&rec.Notes,
		&rec.NextAction,
		&rec.NextActionDate,
		&rec.LastContactDate,
		&method,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.CompanyName,
		&rec.ContactName,
		&rec.Email,
	)
	if err != nil {
		return nil, err
	}

	rec.Status = domain.LeadStatus(status)
	if method != nil {
		m := domain.ContactMethod(*method)
		rec.LastContactMethod = &m
	}

	return &rec, nil
}

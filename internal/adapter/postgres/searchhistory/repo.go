// Package searchhistory implements the append-only search history repository.
// The filter snapshot is stored as JSONB.
package searchhistory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// Repo provides search history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new search history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const historyColumns = `h.id, h.user_id, h.profile_id, p.name, h.search_name,
	h.search_params, h.results_count, h.is_saved, h.is_favorite, h.created_at`

const createSQL = `
INSERT INTO search_history (id, user_id, profile_id, search_name, search_params, results_count, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`

const listByUserSQL = `
SELECT ` + historyColumns + `
FROM search_history h
LEFT JOIN profiles p ON p.id = h.profile_id
WHERE h.user_id = $1
ORDER BY h.created_at DESC`

const deleteUnsavedBeforeSQL = `
DELETE FROM search_history
WHERE created_at < $1 AND NOT is_saved AND NOT is_favorite`

const getByIDSQL = `
SELECT ` + historyColumns + `
FROM search_history h
LEFT JOIN profiles p ON p.id = h.profile_id
WHERE h.id = $1 AND h.user_id = $2`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create appends a history entry and returns it with its ID and timestamp.
// A zero CreatedAt is set to the current time.
func (r *Repo) Create(ctx context.Context, h *domain.SearchHistory) (*domain.SearchHistory, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	params, err := json.Marshal(h.Filters)
	if err != nil {
		return nil, fmt.Errorf("marshal search params: %w", err)
	}

	id := h.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	createdAt := h.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	created := *h
	err = querier.QueryRow(ctx, createSQL,
		id,
		h.UserID,
		h.ProfileID,
		h.SearchName,
		params,
		h.ResultsCount,
		createdAt.UTC().Truncate(time.Microsecond),
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "search_history", id)
	}

	return &created, nil
}

// ListByUser returns the user's history newest first, joined with the
// profile name. A positive limit caps the number of entries.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SearchHistory, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := listByUserSQL
	args := []any{userID}
	if limit > 0 {
		query += "\nLIMIT $2"
		args = append(args, limit)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list search history: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.SearchHistory, 0)
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan search history: %w", err)
		}
		entries = append(entries, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list search history: %w", err)
	}

	return entries, nil
}

// UpdateFlags changes the name and saved/favorite flags of an entry owned
// by the user. Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) UpdateFlags(ctx context.Context, userID, id uuid.UUID, upd domain.SearchHistoryUpdate) (*domain.SearchHistory, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	set := map[string]any{}
	if upd.SearchName != nil {
		if *upd.SearchName == "" {
			set["search_name"] = nil
		} else {
			set["search_name"] = *upd.SearchName
		}
	}
	if upd.IsSaved != nil {
		set["is_saved"] = *upd.IsSaved
	}
	if upd.IsFavorite != nil {
		set["is_favorite"] = *upd.IsFavorite
	}

	if len(set) > 0 {
		query, args, err := postgres.Builder().
			Update("search_history").
			SetMap(set).
			Where("id = ? AND user_id = ?", id, userID).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build search history update: %w", err)
		}

		ct, err := querier.Exec(ctx, query, args...)
		if err != nil {
			return nil, postgres.MapError(err, "search_history", id)
		}
		if ct.RowsAffected() == 0 {
			return nil, fmt.Errorf("search_history %s: %w", id, domain.ErrNotFound)
		}
	}

	h, err := scanHistory(querier.QueryRow(ctx, getByIDSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "search_history", id)
	}

	return h, nil
}

// DeleteUnsavedBefore removes entries created before threshold that are
// neither saved nor favorite. Returns the number of deleted rows.
func (r *Repo) DeleteUnsavedBefore(ctx context.Context, threshold time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteUnsavedBeforeSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("delete old search history: %w", err)
	}

	return ct.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanHistory(row pgx.Row) (*domain.SearchHistory, error) {
	var (
		h      domain.SearchHistory
		params []byte
	)

	err := row.Scan(
		&h.ID,
		&h.UserID,
		&h.ProfileID,
		&h.ProfileName,
		&h.SearchName,
		&params,
		&h.ResultsCount,
		&h.IsSaved,
		&h.IsFavorite,
		&h.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(params) > 0 {
		if err := json.Unmarshal(params, &h.Filters); err != nil {
			return nil, fmt.Errorf("unmarshal search params: %w", err)
		}
	}
	h.Filters = h.Filters.Normalize()

	return &h, nil
}

// Package user implements the User repository using PostgreSQL.
// Rows mirror accounts owned by the identity service.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const userColumns = `id, email, full_name, display_name, avatar_url, role,
	notification_email, notification_web, created_at, updated_at, last_sign_in`

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

// Role is owned by the identity service and refreshed on every sign-in;
// profile fields edited locally are left untouched.
const ensureSQL = `
INSERT INTO users (id, email, role, last_sign_in)
VALUES ($1, $2, $3, now())
ON CONFLICT (id) DO UPDATE SET
	email        = EXCLUDED.email,
	role         = EXCLUDED.role,
	last_sign_in = now(),
	updated_at   = now()
RETURNING ` + userColumns

const updatePreferencesSQL = `
UPDATE users
SET display_name = $2, notification_email = $3, notification_web = $4, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// Ensure creates or refreshes the local row of an authenticated account
// and records the sign-in time.
func (r *Repo) Ensure(ctx context.Context, au domain.AuthUser) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	role := au.Role
	if role == "" {
		role = "user"
	}

	u, err := scanUser(querier.QueryRow(ctx, ensureSQL, au.ID, au.Email, role))
	if err != nil {
		return nil, postgres.MapError(err, "user", au.ID)
	}

	return u, nil
}

// UpdatePreferences changes the display name and notification settings.
func (r *Repo) UpdatePreferences(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	got, err := scanUser(querier.QueryRow(ctx, updatePreferencesSQL,
		u.ID, u.DisplayName, u.NotificationEmail, u.NotificationWeb,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return got, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FullName,
		&u.DisplayName,
		&u.AvatarURL,
		&u.Role,
		&u.NotificationEmail,
		&u.NotificationWeb,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastSignInAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

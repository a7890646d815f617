// Package profile implements the prospection profile repository using PostgreSQL.
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/leadfinder-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const profileColumns = `id, user_id, name, description,
	industry, company_size, location, naf_codes, keywords,
	revenue_min, revenue_max, company_age_min, company_age_max, location_radius,
	has_website, has_social_media, is_default, created_at, updated_at, last_used_at`

const listByUserSQL = `
SELECT ` + profileColumns + `
FROM profiles
WHERE user_id = $1
ORDER BY is_default DESC, created_at DESC`

const getByIDSQL = `
SELECT ` + profileColumns + `
FROM profiles
WHERE id = $1 AND user_id = $2`

const countByUserSQL = `
SELECT count(*) FROM profiles WHERE user_id = $1`

const createSQL = `
INSERT INTO profiles (id, user_id, name, description,
	industry, company_size, location, naf_codes, keywords,
	revenue_min, revenue_max, company_age_min, company_age_max, location_radius,
	has_website, has_social_media, is_default, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $18)
RETURNING ` + profileColumns

const updateSQL = `
UPDATE profiles
SET name = $3, description = $4,
	industry = $5, company_size = $6, location = $7, naf_codes = $8, keywords = $9,
	revenue_min = $10, revenue_max = $11, company_age_min = $12, company_age_max = $13,
	location_radius = $14, has_website = $15, has_social_media = $16, is_default = $17,
	updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + profileColumns

const deleteSQL = `
DELETE FROM profiles WHERE id = $1 AND user_id = $2`

const clearDefaultSQL = `
UPDATE profiles
SET is_default = FALSE, updated_at = now()
WHERE user_id = $1 AND is_default AND id <> $2`

const setDefaultSQL = `
UPDATE profiles
SET is_default = TRUE, updated_at = now()
WHERE id = $1 AND user_id = $2`

const promoteMostRecentSQL = `
UPDATE profiles
SET is_default = TRUE, updated_at = now()
WHERE id = (
	SELECT id FROM profiles
	WHERE user_id = $1 AND id <> $2
	ORDER BY COALESCE(last_used_at, created_at) DESC, created_at DESC
	LIMIT 1
)
AND NOT EXISTS (SELECT 1 FROM profiles WHERE user_id = $1 AND is_default)`

const touchLastUsedSQL = `
UPDATE profiles
SET last_used_at = now()
WHERE id = $1 AND user_id = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUser returns the user's profiles, default first, then newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list profiles by user: %w", err)
	}
	defer rows.Close()

	profiles := make([]domain.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list profiles by user: %w", err)
	}

	return profiles, nil
}

// GetByID returns a profile owned by the user.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, profileID uuid.UUID) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProfile(querier.QueryRow(ctx, getByIDSQL, profileID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "profile", profileID)
	}

	return p, nil
}

// CountByUser returns the number of profiles owned by the user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByUserSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count profiles by user: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a profile. A zero ID is replaced with a new one.
// A second default for the same user violates ux_profiles_user_default
// and returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	f := p.Filters.Normalize()

	row := querier.QueryRow(ctx, createSQL,
		id,
		p.UserID,
		p.Name,
		p.Description,
		f.Industries,
		f.CompanySizes,
		f.Locations,
		f.NAFCodes,
		f.Keywords,
		f.RevenueMin,
		f.RevenueMax,
		f.CompanyAgeMin,
		f.CompanyAgeMax,
		f.LocationRadius,
		f.HasWebsite,
		f.HasSocialMedia,
		p.IsDefault,
		time.Now().UTC().Truncate(time.Microsecond),
	)

	created, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	return created, nil
}

// Update replaces the editable fields of a profile owned by p.UserID.
// Returns domain.ErrNotFound if the profile does not exist.
func (r *Repo) Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	f := p.Filters.Normalize()

	row := querier.QueryRow(ctx, updateSQL,
		p.ID,
		p.UserID,
		p.Name,
		p.Description,
		f.Industries,
		f.CompanySizes,
		f.Locations,
		f.NAFCodes,
		f.Keywords,
		f.RevenueMin,
		f.RevenueMax,
		f.CompanyAgeMin,
		f.CompanyAgeMax,
		f.LocationRadius,
		f.HasWebsite,
		f.HasSocialMedia,
		p.IsDefault,
	)

	updated, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.ID)
	}

	return updated, nil
}

// Delete removes a profile owned by the user.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, profileID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, profileID, userID)
	if err != nil {
		return postgres.MapError(err, "profile", profileID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", profileID, domain.ErrNotFound)
	}

	return nil
}

// ClearDefault demotes every default profile of the user except keepID.
// Pass uuid.Nil to demote all of them.
func (r *Repo) ClearDefault(ctx context.Context, userID, keepID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, clearDefaultSQL, userID, keepID); err != nil {
		return fmt.Errorf("clear default profile: %w", err)
	}

	return nil
}

// SetDefault marks a profile as the user's default. The caller demotes the
// previous default first, within the same transaction.
func (r *Repo) SetDefault(ctx context.Context, userID, profileID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, setDefaultSQL, profileID, userID)
	if err != nil {
		return postgres.MapError(err, "profile", profileID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", profileID, domain.ErrNotFound)
	}

	return nil
}

// PromoteMostRecent makes the user's most recently used profile other than
// excludeID the default, falling back to the newest one. It reports false
// when the user already has a default or has no other profile.
func (r *Repo) PromoteMostRecent(ctx context.Context, userID, excludeID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, promoteMostRecentSQL, userID, excludeID)
	if err != nil {
		return false, postgres.MapError(err, "profile", excludeID)
	}

	return ct.RowsAffected() > 0, nil
}

// TouchLastUsed records that the profile was just used for a search.
func (r *Repo) TouchLastUsed(ctx context.Context, userID, profileID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, touchLastUsedSQL, profileID, userID); err != nil {
		return postgres.MapError(err, "profile", profileID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Description,
		&p.Filters.Industries,
		&p.Filters.CompanySizes,
		&p.Filters.Locations,
		&p.Filters.NAFCodes,
		&p.Filters.Keywords,
		&p.Filters.RevenueMin,
		&p.Filters.RevenueMax,
		&p.Filters.CompanyAgeMin,
		&p.Filters.CompanyAgeMax,
		&p.Filters.LocationRadius,
		&p.Filters.HasWebsite,
		&p.Filters.HasSocialMedia,
		&p.IsDefault,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.LastUsedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Filters = p.Filters.Normalize()

	return &p, nil
}

package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/adenmarket/adenmarket/internal/logger"
	"github.com/adenmarket/adenmarket/internal/models"
)

// ProfileReadRepository handles profile read operations.
type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByUserID returns the profile for the given user id, or nil when no such
// profile exists.
func (r *ProfileReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	const query = `
		SELECT user_id, discord_id, name, avatar_url, nickname_edited,
		       is_admin, banned, ban_reason, ip, device_type,
		       last_login_at, last_boost_at, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var profile models.ProfileDB
	err := r.db.GetContext(ctx, &profile, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns the full roster ordered by most recent login, nulls last.
// Admin roster search filters this result in memory; acceptable at small
// roster sizes only.
func (r *ProfileReadRepository) List(ctx context.Context) ([]models.ProfileDB, error) {
	const query = `
		SELECT user_id, discord_id, name, avatar_url, nickname_edited,
		       is_admin, banned, ban_reason, ip, device_type,
		       last_login_at, last_boost_at, created_at, updated_at
		FROM profiles
		ORDER BY last_login_at DESC NULLS LAST
	`

	var profiles []models.ProfileDB
	err := r.db.SelectContext(ctx, &profiles, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(profiles),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// ProfileWriteRepository handles profile write operations.
type ProfileWriteRepository struct {
	db *sqlx.DB
}

func NewProfileWriteRepository(db *sqlx.DB) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db}
}

// UpsertLogin creates the profile on first authentication and refreshes the
// login timestamp afterwards. Display name and avatar are cached from the
// identity provider only while the profile has none of its own.
func (r *ProfileWriteRepository) UpsertLogin(ctx context.Context, discordID, name, avatarURL string) (*models.ProfileDB, error) {
	const query = `
		INSERT INTO profiles (user_id, discord_id, name, avatar_url, last_login_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW(), NOW())
		ON CONFLICT (discord_id) DO UPDATE
		SET name          = COALESCE(profiles.name, EXCLUDED.name),
		    avatar_url    = COALESCE(profiles.avatar_url, EXCLUDED.avatar_url),
		    last_login_at = NOW(),
		    updated_at    = NOW()
		RETURNING user_id, discord_id, name, avatar_url, nickname_edited,
		          is_admin, banned, ban_reason, ip, device_type,
		          last_login_at, last_boost_at, created_at, updated_at
	`
	args := []any{uuid.New(), discordID, name, avatarURL}

	var profile models.ProfileDB
	err := r.db.GetContext(ctx, &profile, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// TouchLogin refreshes the last-known origin, device class, and login
// timestamp. Returns false when the profile does not exist.
func (r *ProfileWriteRepository) TouchLogin(ctx context.Context, userID uuid.UUID, ip, deviceType string) (bool, error) {
	const query = `
		UPDATE profiles
		SET ip = $2, device_type = $3, last_login_at = NOW(), updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, ip, deviceType}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// ClaimBoost advances the authoritative last-boost timestamp in a single
// conditional update. It reports whether the row changed: two concurrent
// attempts inside one window cannot both claim the boost.
func (r *ProfileWriteRepository) ClaimBoost(ctx context.Context, userID uuid.UUID, window time.Duration) (bool, error) {
	const query = `
		UPDATE profiles
		SET last_boost_at = NOW(), updated_at = NOW()
		WHERE user_id = $1
		  AND (last_boost_at IS NULL OR NOW() - last_boost_at >= $2 * INTERVAL '1 second')
	`
	args := []any{userID, int64(window.Seconds())}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// SetBan flips the banned flag. Reason must be non-nil when banning and is
// stored as NULL when unbanning; callers validate before this point.
func (r *ProfileWriteRepository) SetBan(ctx context.Context, userID uuid.UUID, banned bool, reason *string) error {
	const query = `
		UPDATE profiles
		SET banned = $2, ban_reason = $3, updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, banned, reason}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Rename sets the display name if it was never edited before. Returns false
// once the single allowed edit has been consumed.
func (r *ProfileWriteRepository) Rename(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	const query = `
		UPDATE profiles
		SET name = $2, nickname_edited = TRUE, updated_at = NOW()
		WHERE user_id = $1 AND nickname_edited = FALSE
	`
	args := []any{userID, name}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/adenmarket/adenmarket/internal/logger"
	"github.com/adenmarket/adenmarket/internal/models"
)

// AccessLogWriteRepository appends login origin records. The table is
// append-only; nothing ever updates or deletes rows here.
type AccessLogWriteRepository struct {
	db *sqlx.DB
}

func NewAccessLogWriteRepository(db *sqlx.DB) *AccessLogWriteRepository {
	return &AccessLogWriteRepository{db: db}
}

// Append records one login origin for the user.
func (r *AccessLogWriteRepository) Append(ctx context.Context, userID uuid.UUID, ip string) error {
	const query = `
		INSERT INTO access_log (user_id, ip, created_at)
		VALUES ($1, $2, NOW())
	`
	args := []any{userID, ip}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// AccessLogReadRepository reads login origin records.
type AccessLogReadRepository struct {
	db *sqlx.DB
}

func NewAccessLogReadRepository(db *sqlx.DB) *AccessLogReadRepository {
	return &AccessLogReadRepository{db: db}
}

// ListByUser returns the user's origin records, newest first. Deduplication
// and the 10-entry cap are applied by the service layer.
func (r *AccessLogReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.AccessLogDB, error) {
	const query = `
		SELECT id, user_id, ip, created_at
		FROM access_log
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var entries []models.AccessLogDB
	err := r.db.SelectContext(ctx, &entries, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

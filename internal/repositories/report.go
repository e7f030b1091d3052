package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/adenmarket/adenmarket/internal/logger"
	"github.com/adenmarket/adenmarket/internal/models"
)

// ReportWriteRepository handles report inserts.
type ReportWriteRepository struct {
	db *sqlx.DB
}

func NewReportWriteRepository(db *sqlx.DB) *ReportWriteRepository {
	return &ReportWriteRepository{db: db}
}

// Save inserts a report. The unique constraint on (reporter_id, item_id)
// makes a repeat report a store-level no-op; Save reports whether the row
// was inserted.
func (r *ReportWriteRepository) Save(ctx context.Context, rep *models.ReportDB) (bool, error) {
	const query = `
		INSERT INTO reports (report_id, item_id, reporter_id, reporter_name,
		                     reported_name, reason, description, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (reporter_id, item_id) DO NOTHING
	`
	args := []any{
		uuid.New(), rep.ItemID, rep.ReporterID, rep.ReporterName,
		rep.ReportedName, rep.Reason, rep.Description, rep.ImageURL,
	}

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

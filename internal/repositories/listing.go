package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/adenmarket/adenmarket/internal/logger"
	"github.com/adenmarket/adenmarket/internal/models"
)

// ListingWriteRepository handles listing write operations.
type ListingWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewListingWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ListingWriteRepository {
	return &ListingWriteRepository{db: db, txGetter: txGetter}
}

func (r *ListingWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new active listing. The partial unique index on
// (owner_id, item_name) for active rows makes duplicate registration a
// store-level no-op; Save reports whether the row was inserted.
func (r *ListingWriteRepository) Save(ctx context.Context, l *models.ListingDB) (bool, error) {
	const query = `
		INSERT INTO listings (listing_id, owner_id, game_item_id, item_name, item_image,
		                      deal_type, price, quantity, negotiable, delivery_method,
		                      comment, is_visible, status, created_at, boosted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE, $12, NOW(), NOW())
		ON CONFLICT (owner_id, item_name) WHERE status = 'active' DO NOTHING
	`
	args := []any{
		uuid.New(), l.OwnerID, l.GameItemID, l.ItemName, l.ItemImage,
		l.DealType, l.Price, l.Quantity, l.Negotiable, l.DeliveryMethod,
		l.Comment, models.ListingStatusActive,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
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

// BoostAllActive refreshes the sort-relevant timestamp on every active
// listing owned by the user, moving them to the top of browse ordering.
func (r *ListingWriteRepository) BoostAllActive(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	const query = `
		UPDATE listings
		SET boosted_at = NOW()
		WHERE owner_id = $1 AND status = 'active'
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, ownerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// SetVisible flips the visibility flag. Owner-scoped: reports false when the
// listing does not exist or belongs to someone else, leaving it unchanged.
func (r *ListingWriteRepository) SetVisible(ctx context.Context, listingID, ownerID uuid.UUID, visible bool) (bool, error) {
	const query = `
		UPDATE listings
		SET is_visible = $3
		WHERE listing_id = $1 AND owner_id = $2
	`
	return r.ownerScopedExec(ctx, query, listingID, ownerID, visible)
}

// UpdatePrice changes the asking price, owner-scoped.
func (r *ListingWriteRepository) UpdatePrice(ctx context.Context, listingID, ownerID uuid.UUID, price int64) (bool, error) {
	const query = `
		UPDATE listings
		SET price = $3
		WHERE listing_id = $1 AND owner_id = $2
	`
	return r.ownerScopedExec(ctx, query, listingID, ownerID, price)
}

// UpdateDeliveryMethod changes the delivery method, owner-scoped.
func (r *ListingWriteRepository) UpdateDeliveryMethod(ctx context.Context, listingID, ownerID uuid.UUID, method string) (bool, error) {
	const query = `
		UPDATE listings
		SET delivery_method = $3
		WHERE listing_id = $1 AND owner_id = $2
	`
	return r.ownerScopedExec(ctx, query, listingID, ownerID, method)
}

// Delete removes a completed listing, owner-scoped.
func (r *ListingWriteRepository) Delete(ctx context.Context, listingID, ownerID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM listings
		WHERE listing_id = $1 AND owner_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, listingID, ownerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listingID, ownerID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *ListingWriteRepository) ownerScopedExec(ctx context.Context, query string, listingID, ownerID uuid.UUID, value any) (bool, error) {
	args := []any{listingID, ownerID, value}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
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

// ListingReadRepository handles listing read operations.
type ListingReadRepository struct {
	db *sqlx.DB
}

func NewListingReadRepository(db *sqlx.DB) *ListingReadRepository {
	return &ListingReadRepository{db: db}
}

// Browse returns visible active listings in boost-recency order. Both filters
// are optional: dealType matches exactly, nameQuery matches as a
// case-insensitive substring.
func (r *ListingReadRepository) Browse(ctx context.Context, dealType, nameQuery *string) ([]models.ListingDB, error) {
	const query = `
		SELECT listing_id, owner_id, game_item_id, item_name, item_image,
		       deal_type, price, quantity, negotiable, delivery_method,
		       comment, is_visible, status, created_at, boosted_at
		FROM listings
		WHERE is_visible = TRUE
		  AND status = 'active'
		  AND ($1::VARCHAR IS NULL OR deal_type = $1)
		  AND ($2::VARCHAR IS NULL OR item_name ILIKE '%' || $2 || '%')
		ORDER BY boosted_at DESC NULLS LAST, created_at DESC
	`
	args := []any{dealType, nameQuery}

	var listings []models.ListingDB
	err := r.db.SelectContext(ctx, &listings, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows", len(listings),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return listings, nil
}

// ListByOwner returns every listing of one owner regardless of visibility,
// for the owner's own management view.
func (r *ListingReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.ListingDB, error) {
	const query = `
		SELECT listing_id, owner_id, game_item_id, item_name, item_image,
		       deal_type, price, quantity, negotiable, delivery_method,
		       comment, is_visible, status, created_at, boosted_at
		FROM listings
		WHERE owner_id = $1
		ORDER BY boosted_at DESC NULLS LAST, created_at DESC
	`

	var listings []models.ListingDB
	err := r.db.SelectContext(ctx, &listings, query, ownerID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"rows", len(listings),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return listings, nil
}

// NewestCreatedAt returns the creation time of the owner's most recent
// listing, or nil when the owner has none. One of the three cooldown sources.
func (r *ListingReadRepository) NewestCreatedAt(ctx context.Context, ownerID uuid.UUID) (*time.Time, error) {
	const query = `
		SELECT MAX(created_at) FROM listings WHERE owner_id = $1
	`

	var newest *time.Time
	err := r.db.GetContext(ctx, &newest, query, ownerID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return newest, nil
}

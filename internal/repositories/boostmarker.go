package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/adenmarket/adenmarket/internal/logger"
)

// BoostMarkerRepository keeps the non-authoritative per-user boost marker in
// Redis. It is a deterrent against cache bypass, not a correctness gate; the
// conditional update on the profile row remains authoritative.
type BoostMarkerRepository struct {
	client *redis.Client
	exp    time.Duration // marker TTL, normally the cooldown window
}

// NewBoostMarkerRepository creates a new marker repository with the given TTL.
func NewBoostMarkerRepository(client *redis.Client, expiration time.Duration) *BoostMarkerRepository {
	return &BoostMarkerRepository{
		client: client,
		exp:    expiration,
	}
}

func boostMarkerKey(userID uuid.UUID) string {
	return fmt.Sprintf("boost_marker:%s", userID)
}

// GetLastBoost returns the marker timestamp, or nil when none is set. An
// unparseable value is treated as unset.
func (r *BoostMarkerRepository) GetLastBoost(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	key := boostMarkerKey(userID)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("redis get",
		"key", key,
		"result", val,
		"error", err,
	)

	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	unix, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return nil, nil
	}
	t := time.Unix(unix, 0)
	return &t, nil
}

// SetLastBoost records the marker timestamp with the repository TTL.
func (r *BoostMarkerRepository) SetLastBoost(ctx context.Context, userID uuid.UUID, at time.Time) error {
	key := boostMarkerKey(userID)

	err := r.client.Set(ctx, key, strconv.FormatInt(at.Unix(), 10), r.exp).Err()

	logger.Log.Infow("redis set",
		"key", key,
		"value", at.Unix(),
		"error", err,
	)

	return err
}

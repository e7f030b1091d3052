package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/adenmarket/adenmarket/internal/logger"
	"github.com/adenmarket/adenmarket/internal/models"
)

// BoostCooldown is the fixed minimum interval between successive boosts.
const BoostCooldown = time.Hour

// ProfileReader defines read access to profiles.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
}

// BoostGate advances the authoritative last-boost timestamp in a single
// conditional write, reporting whether the row changed.
type BoostGate interface {
	ClaimBoost(ctx context.Context, userID uuid.UUID, window time.Duration) (bool, error)
}

// ListingBoostWriter refreshes the boost timestamp on all of a user's active
// listings.
type ListingBoostWriter interface {
	BoostAllActive(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

// ListingCreationReader exposes the newest listing-creation timestamp, one of
// the three cooldown sources.
type ListingCreationReader interface {
	NewestCreatedAt(ctx context.Context, ownerID uuid.UUID) (*time.Time, error)
}

// BoostMarkerStore is the non-authoritative per-client cooldown marker.
type BoostMarkerStore interface {
	GetLastBoost(ctx context.Context, userID uuid.UUID) (*time.Time, error)
	SetLastBoost(ctx context.Context, userID uuid.UUID, at time.Time) error
}

// BoostService decides whether a user's listings may be bumped to the front
// of recency-based browse ordering, and performs the bump.
type BoostService struct {
	profiles    ProfileReader
	gate        BoostGate
	listings    ListingBoostWriter
	creations   ListingCreationReader
	marker      BoostMarkerStore
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewBoostService creates a new BoostService.
func NewBoostService(
	profiles ProfileReader,
	gate BoostGate,
	listings ListingBoostWriter,
	creations ListingCreationReader,
	marker BoostMarkerStore,
	kafkaWriter KafkaWriter,
) *BoostService {
	return &BoostService{
		profiles:    profiles,
		gate:        gate,
		listings:    listings,
		creations:   creations,
		marker:      marker,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// EvaluateCooldown computes whether the user may boost, from the most recent
// of three time sources: the profile's last-boost timestamp, the newest
// listing-creation timestamp, and the client marker. No source set means the
// cooldown is trivially satisfied. Pure read, no side effects.
func (s *BoostService) EvaluateCooldown(ctx context.Context, userID uuid.UUID) (allowed bool, minutesLeft int, err error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load profile for cooldown check", "userID", userID, "error", err)
		return false, fullCooldownMinutes(), err
	}
	if profile == nil {
		return false, fullCooldownMinutes(), ErrNotAuthenticated
	}

	newest, err := s.creations.NewestCreatedAt(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load newest listing creation", "userID", userID, "error", err)
		return false, fullCooldownMinutes(), err
	}

	// The marker is a deterrent, not authoritative: a read failure is
	// treated as an unset source rather than failing the evaluation.
	markerAt, err := s.marker.GetLastBoost(ctx, userID)
	if err != nil {
		logger.Log.Warnw("boost marker unavailable", "userID", userID, "error", err)
		markerAt = nil
	}

	latest := latestOf(profile.LastBoostAt, newest, markerAt)
	if latest == nil {
		return true, 0, nil
	}

	elapsed := s.now().Sub(*latest)
	if elapsed >= BoostCooldown {
		return true, 0, nil
	}

	remaining := BoostCooldown - elapsed
	return false, int(math.Ceil(remaining.Minutes())), nil
}

// ApplyBoost bumps all of the user's active listings. The evaluation above is
// advisory; the conditional update on the profile row is the authoritative
// gate, so two concurrent attempts inside one window cannot both succeed.
// Once the gate is claimed the remaining effects are best-effort: a partial
// failure is logged, not fatal.
func (s *BoostService) ApplyBoost(ctx context.Context, userID uuid.UUID) error {
	allowed, minutesLeft, err := s.EvaluateCooldown(ctx, userID)
	if err != nil {
		return err
	}
	if !allowed {
		return &CooldownError{MinutesLeft: minutesLeft}
	}

	claimed, err := s.gate.ClaimBoost(ctx, userID, BoostCooldown)
	if err != nil {
		logger.Log.Errorw("failed to claim boost", "userID", userID, "error", err)
		return err
	}
	if !claimed {
		// Lost a race with a concurrent attempt; report the fresh remainder.
		_, minutesLeft, evalErr := s.EvaluateCooldown(ctx, userID)
		if evalErr != nil || minutesLeft == 0 {
			minutesLeft = fullCooldownMinutes()
		}
		return &CooldownError{MinutesLeft: minutesLeft}
	}

	now := s.now()

	if n, err := s.listings.BoostAllActive(ctx, userID); err != nil {
		logger.Log.Errorw("failed to refresh listing boost timestamps", "userID", userID, "error", err)
	} else {
		logger.Log.Infow("listings boosted", "userID", userID, "count", n)
	}

	if err := s.marker.SetLastBoost(ctx, userID, now); err != nil {
		logger.Log.Warnw("failed to write boost marker", "userID", userID, "error", err)
	}

	publishAudit(ctx, s.kafkaWriter, userID, models.AuditActionBoost, "")

	return nil
}

func fullCooldownMinutes() int {
	return int(BoostCooldown.Minutes())
}

func latestOf(ts ...*time.Time) *time.Time {
	var latest *time.Time
	for _, t := range ts {
		if t == nil {
			continue
		}
		if latest == nil || t.After(*latest) {
			latest = t
		}
	}
	return latest
}

package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/adenmarket/adenmarket/internal/logger"
	"github.com/adenmarket/adenmarket/internal/models"
)

// Decision is the outcome of the post-login ban check.
type Decision string

const (
	DecisionProceed Decision = "proceed"
	DecisionEvict   Decision = "evict"
)

// MaxDistinctOrigins caps the deduplicated access-log view.
const MaxDistinctOrigins = 10

// RosterReader reads the full profile roster.
type RosterReader interface {
	List(ctx context.Context) ([]models.ProfileDB, error)
}

// BanWriter flips the banned flag on a profile.
type BanWriter interface {
	SetBan(ctx context.Context, userID uuid.UUID, banned bool, reason *string) error
}

// AccessLogReader reads a user's login origin records, newest first.
type AccessLogReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.AccessLogDB, error)
}

// ModerationService handles account-level access control by administrators.
type ModerationService struct {
	profiles    ProfileReader
	roster      RosterReader
	writer      BanWriter
	accessLog   AccessLogReader
	kafkaWriter KafkaWriter
}

// NewModerationService creates a new ModerationService.
func NewModerationService(
	profiles ProfileReader,
	roster RosterReader,
	writer BanWriter,
	accessLog AccessLogReader,
	kafkaWriter KafkaWriter,
) *ModerationService {
	return &ModerationService{
		profiles:    profiles,
		roster:      roster,
		writer:      writer,
		accessLog:   accessLog,
		kafkaWriter: kafkaWriter,
	}
}

// ToggleBan flips the target's banned state. Administrators are never
// bannable, regardless of who acts. Banning requires a non-empty reason;
// unbanning clears the stored reason and ignores any supplied one.
func (s *ModerationService) ToggleBan(ctx context.Context, adminID, targetID uuid.UUID, reason string) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}

	target, err := s.profiles.GetByUserID(ctx, targetID)
	if err != nil {
		logger.Log.Errorw("failed to load ban target", "targetID", targetID, "error", err)
		return err
	}
	if target == nil {
		return ErrProfileNotFound
	}
	if target.IsAdmin {
		return ErrProtectedAccount
	}

	banned := !target.Banned
	var storedReason *string
	if banned {
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return ErrReasonRequired
		}
		storedReason = &reason
	}

	if err := s.writer.SetBan(ctx, targetID, banned, storedReason); err != nil {
		logger.Log.Errorw("failed to update ban state", "targetID", targetID, "banned", banned, "error", err)
		return err
	}

	action := models.AuditActionUnban
	detail := ""
	if banned {
		action = models.AuditActionBan
		detail = reason
	}
	publishAudit(ctx, s.kafkaWriter, adminID, action, detail)

	return nil
}

// EnforceBanOnLogin is invoked after every successful authentication. Banned
// non-administrators are evicted; the stored reason is surfaced alongside.
func (s *ModerationService) EnforceBanOnLogin(ctx context.Context, userID uuid.UUID) (Decision, *string, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load profile for ban check", "userID", userID, "error", err)
		return DecisionProceed, nil, err
	}
	if profile == nil {
		return DecisionProceed, nil, ErrNotAuthenticated
	}

	if profile.Banned && !profile.IsAdmin {
		logger.Log.Infow("banned account evicted", "userID", userID)
		return DecisionEvict, profile.BanReason, nil
	}
	return DecisionProceed, nil, nil
}

// Roster returns the profile roster for the admin view, filtered by a
// case-insensitive substring match over display name, user id, last-known
// origin, and ban reason.
func (s *ModerationService) Roster(ctx context.Context, adminID uuid.UUID, query string) ([]models.ProfileDB, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	profiles, err := s.roster.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load roster", "error", err)
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return profiles, nil
	}

	filtered := make([]models.ProfileDB, 0, len(profiles))
	for _, p := range profiles {
		if rosterMatches(&p, query) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// AccessLog returns the target's login origins with duplicates removed,
// first-seen-most-recent wins, capped at ten distinct entries.
func (s *ModerationService) AccessLog(ctx context.Context, adminID, targetID uuid.UUID) ([]models.AccessLogDB, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	entries, err := s.accessLog.ListByUser(ctx, targetID)
	if err != nil {
		logger.Log.Errorw("failed to load access log", "targetID", targetID, "error", err)
		return nil, err
	}

	seen := make(map[string]struct{}, len(entries))
	unique := make([]models.AccessLogDB, 0, MaxDistinctOrigins)
	for _, e := range entries {
		if _, ok := seen[e.IP]; ok {
			continue
		}
		seen[e.IP] = struct{}{}
		unique = append(unique, e)
		if len(unique) >= MaxDistinctOrigins {
			break
		}
	}
	return unique, nil
}

func (s *ModerationService) requireAdmin(ctx context.Context, adminID uuid.UUID) error {
	actor, err := s.profiles.GetByUserID(ctx, adminID)
	if err != nil {
		logger.Log.Errorw("failed to load acting profile", "adminID", adminID, "error", err)
		return err
	}
	if actor == nil || !actor.IsAdmin {
		return ErrForbidden
	}
	return nil
}

func rosterMatches(p *models.ProfileDB, query string) bool {
	fields := []string{p.UserID.String()}
	if p.Name != nil {
		fields = append(fields, *p.Name)
	}
	if p.IP != nil {
		fields = append(fields, *p.IP)
	}
	if p.BanReason != nil {
		fields = append(fields, *p.BanReason)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

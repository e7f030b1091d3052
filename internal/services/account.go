package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adenmarket/adenmarket/internal/logger"
	"github.com/adenmarket/adenmarket/internal/models"
)

// IdentityProvider fetches the authenticated user's profile from the OAuth
// provider, given the access token obtained by the client.
type IdentityProvider interface {
	FetchUser(ctx context.Context, accessToken string) (*models.DiscordUser, error)
	AvatarURL(u *models.DiscordUser) string
}

// ProfileLoginWriter defines the profile writes driven by account actions.
type ProfileLoginWriter interface {
	UpsertLogin(ctx context.Context, discordID, name, avatarURL string) (*models.ProfileDB, error)
	TouchLogin(ctx context.Context, userID uuid.UUID, ip, deviceType string) (bool, error)
	Rename(ctx context.Context, userID uuid.UUID, name string) (bool, error)
}

// AccessLogAppender appends login origin records.
type AccessLogAppender interface {
	Append(ctx context.Context, userID uuid.UUID, ip string) error
}

// BanEnforcer runs the post-login ban check.
type BanEnforcer interface {
	EnforceBanOnLogin(ctx context.Context, userID uuid.UUID) (Decision, *string, error)
}

// JWTGenerator defines an interface for generating session tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AccountService handles login, login tracking, and the one-shot rename.
type AccountService struct {
	identity  IdentityProvider
	writer    ProfileLoginWriter
	accessLog AccessLogAppender
	bans      BanEnforcer
	jwt       JWTGenerator
	now       func() time.Time
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	identity IdentityProvider,
	writer ProfileLoginWriter,
	accessLog AccessLogAppender,
	bans BanEnforcer,
	jwt JWTGenerator,
) *AccountService {
	return &AccountService{
		identity:  identity,
		writer:    writer,
		accessLog: accessLog,
		bans:      bans,
		jwt:       jwt,
		now:       time.Now,
	}
}

// Login resolves the provider token to a profile (creating it on first
// authentication), runs the ban check, and issues a session token. Banned
// non-administrators receive a BanError carrying the stored reason.
func (svc *AccountService) Login(ctx context.Context, accessToken string) (string, error) {
	du, err := svc.identity.FetchUser(ctx, accessToken)
	if err != nil {
		logger.Log.Errorw("identity provider rejected token", "error", err)
		return "", ErrNotAuthenticated
	}

	profile, err := svc.writer.UpsertLogin(ctx, du.ID, du.DisplayName(), svc.identity.AvatarURL(du))
	if err != nil {
		logger.Log.Errorw("failed to upsert profile on login", "discordID", du.ID, "error", err)
		return "", err
	}

	decision, reason, err := svc.bans.EnforceBanOnLogin(ctx, profile.UserID)
	if err != nil {
		logger.Log.Errorw("ban check failed on login", "userID", profile.UserID, "error", err)
		return "", err
	}
	if decision == DecisionEvict {
		banErr := &BanError{}
		if reason != nil {
			banErr.Reason = *reason
		}
		return "", banErr
	}

	token, err := svc.jwt.Generate(ctx, profile.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "userID", profile.UserID, "error", err)
		return "", err
	}
	return token, nil
}

// TrackLogin refreshes the profile's origin, device class, and login
// timestamp, then appends to the access log. The append is best-effort: the
// login is still tracked when it fails.
func (svc *AccountService) TrackLogin(ctx context.Context, userID uuid.UUID, ip, deviceType string) (time.Time, error) {
	ok, err := svc.writer.TouchLogin(ctx, userID, ip, deviceType)
	if err != nil {
		logger.Log.Errorw("failed to track login", "userID", userID, "error", err)
		return time.Time{}, err
	}
	if !ok {
		return time.Time{}, ErrNotAuthenticated
	}

	if err := svc.accessLog.Append(ctx, userID, ip); err != nil {
		logger.Log.Warnw("access log append failed", "userID", userID, "error", err)
	}

	return svc.now(), nil
}

// Rename changes the display name. The edit is allowed exactly once per
// profile; the conditional write reports when the edit was already consumed.
func (svc *AccountService) Rename(ctx context.Context, userID uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNicknameRequired
	}

	ok, err := svc.writer.Rename(ctx, userID, name)
	if err != nil {
		logger.Log.Errorw("failed to rename profile", "userID", userID, "error", err)
		return err
	}
	if !ok {
		return ErrNicknameAlreadyEdited
	}
	return nil
}

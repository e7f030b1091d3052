package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/adenmarket/adenmarket/internal/models"
)

func TestAccountService_Login_Success(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := NewMockIdentityProvider(ctrl)
	writer := NewMockProfileLoginWriter(ctrl)
	bans := NewMockBanEnforcer(ctrl)
	jwt := NewMockJWTGenerator(ctrl)

	du := &models.DiscordUser{ID: "123456", Username: "adena_dealer", GlobalName: "Adena Dealer"}
	identity.EXPECT().FetchUser(ctx, "ACCESS_TOKEN").Return(du, nil)
	identity.EXPECT().AvatarURL(du).Return("https://cdn.example.com/avatar.png")
	writer.EXPECT().UpsertLogin(ctx, "123456", "Adena Dealer", "https://cdn.example.com/avatar.png").
		Return(&models.ProfileDB{UserID: userID}, nil)
	bans.EXPECT().EnforceBanOnLogin(ctx, userID).Return(DecisionProceed, nil, nil)
	jwt.EXPECT().Generate(ctx, userID).Return("JWT_TOKEN", nil)

	svc := NewAccountService(identity, writer, nil, bans, jwt)
	token, err := svc.Login(ctx, "ACCESS_TOKEN")

	assert.NoError(t, err)
	assert.Equal(t, "JWT_TOKEN", token)
}

func TestAccountService_Login_InvalidToken(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := NewMockIdentityProvider(ctrl)
	identity.EXPECT().FetchUser(ctx, "BAD_TOKEN").Return(nil, errors.New("401 from provider"))

	svc := NewAccountService(identity, nil, nil, nil, nil)
	_, err := svc.Login(ctx, "BAD_TOKEN")

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestAccountService_Login_BannedEvicted(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := NewMockIdentityProvider(ctrl)
	writer := NewMockProfileLoginWriter(ctrl)
	bans := NewMockBanEnforcer(ctrl)

	du := &models.DiscordUser{ID: "123456", Username: "banneduser"}
	identity.EXPECT().FetchUser(ctx, "ACCESS_TOKEN").Return(du, nil)
	identity.EXPECT().AvatarURL(du).Return("")
	writer.EXPECT().UpsertLogin(ctx, "123456", "banneduser", "").
		Return(&models.ProfileDB{UserID: userID}, nil)

	reason := "chargeback fraud"
	bans.EXPECT().EnforceBanOnLogin(ctx, userID).Return(DecisionEvict, &reason, nil)

	svc := NewAccountService(identity, writer, nil, bans, nil)
	token, err := svc.Login(ctx, "ACCESS_TOKEN")

	assert.Empty(t, token)

	var banErr *BanError
	assert.ErrorAs(t, err, &banErr)
	assert.Equal(t, "chargeback fraud", banErr.Reason)
}

func TestAccountService_TrackLogin(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success with best-effort append failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := NewMockProfileLoginWriter(ctrl)
		accessLog := NewMockAccessLogAppender(ctrl)

		writer.EXPECT().TouchLogin(ctx, userID, "203.0.113.7", models.DeviceMobile).Return(true, nil)
		accessLog.EXPECT().Append(ctx, userID, "203.0.113.7").Return(errors.New("insert failed"))

		svc := NewAccountService(nil, writer, accessLog, nil, nil)
		svc.now = func() time.Time { return now }

		when, err := svc.TrackLogin(ctx, userID, "203.0.113.7", models.DeviceMobile)

		assert.NoError(t, err)
		assert.Equal(t, now, when)
	})

	t.Run("unknown profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := NewMockProfileLoginWriter(ctrl)
		writer.EXPECT().TouchLogin(ctx, userID, "203.0.113.7", models.DeviceDesktop).Return(false, nil)

		svc := NewAccountService(nil, writer, nil, nil, nil)
		_, err := svc.TrackLogin(ctx, userID, "203.0.113.7", models.DeviceDesktop)

		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("touch failure is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := NewMockProfileLoginWriter(ctrl)
		writer.EXPECT().TouchLogin(ctx, userID, "203.0.113.7", models.DeviceDesktop).
			Return(false, errors.New("db error"))

		svc := NewAccountService(nil, writer, nil, nil, nil)
		_, err := svc.TrackLogin(ctx, userID, "203.0.113.7", models.DeviceDesktop)

		assert.EqualError(t, err, "db error")
	})
}

func TestAccountService_Rename(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success trims whitespace", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := NewMockProfileLoginWriter(ctrl)
		writer.EXPECT().Rename(ctx, userID, "NewName").Return(true, nil)

		svc := NewAccountService(nil, writer, nil, nil, nil)
		assert.NoError(t, svc.Rename(ctx, userID, "  NewName  "))
	})

	t.Run("empty name rejected", func(t *testing.T) {
		svc := NewAccountService(nil, nil, nil, nil, nil)
		err := svc.Rename(ctx, userID, "   ")
		assert.ErrorIs(t, err, ErrNicknameRequired)
	})

	t.Run("second rename rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := NewMockProfileLoginWriter(ctrl)
		writer.EXPECT().Rename(ctx, userID, "Another").Return(false, nil)

		svc := NewAccountService(nil, writer, nil, nil, nil)
		err := svc.Rename(ctx, userID, "Another")
		assert.ErrorIs(t, err, ErrNicknameAlreadyEdited)
	})
}

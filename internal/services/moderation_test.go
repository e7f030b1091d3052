package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/adenmarket/adenmarket/internal/models"
)

func adminProfile(id uuid.UUID) *models.ProfileDB {
	return &models.ProfileDB{UserID: id, IsAdmin: true}
}

func TestModerationService_ToggleBan_Ban(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	targetID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles := NewMockProfileReader(ctrl)
	writer := NewMockBanWriter(ctrl)

	profiles.EXPECT().GetByUserID(ctx, adminID).Return(adminProfile(adminID), nil)
	profiles.EXPECT().GetByUserID(ctx, targetID).
		Return(&models.ProfileDB{UserID: targetID, Banned: false}, nil)

	reason := "fraudulent listings"
	writer.EXPECT().SetBan(ctx, targetID, true, &reason).Return(nil)

	svc := NewModerationService(profiles, nil, writer, nil, nil)
	err := svc.ToggleBan(ctx, adminID, targetID, "fraudulent listings")

	assert.NoError(t, err)
}

func TestModerationService_ToggleBan_UnbanClearsReason(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	targetID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles := NewMockProfileReader(ctrl)
	writer := NewMockBanWriter(ctrl)

	stored := "old reason"
	profiles.EXPECT().GetByUserID(ctx, adminID).Return(adminProfile(adminID), nil)
	profiles.EXPECT().GetByUserID(ctx, targetID).
		Return(&models.ProfileDB{UserID: targetID, Banned: true, BanReason: &stored}, nil)

	// Unbanning stores a nil reason regardless of the supplied one.
	writer.EXPECT().SetBan(ctx, targetID, false, (*string)(nil)).Return(nil)

	svc := NewModerationService(profiles, nil, writer, nil, nil)
	err := svc.ToggleBan(ctx, adminID, targetID, "ignored")

	assert.NoError(t, err)
}

func TestModerationService_ToggleBan_Errors(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	targetID := uuid.New()

	tests := []struct {
		name      string
		reason    string
		mockSetup func(profiles *MockProfileReader)
		wantErr   error
	}{
		{
			name: "actor is not an administrator",
			mockSetup: func(profiles *MockProfileReader) {
				profiles.EXPECT().GetByUserID(ctx, adminID).
					Return(&models.ProfileDB{UserID: adminID}, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name: "actor does not exist",
			mockSetup: func(profiles *MockProfileReader) {
				profiles.EXPECT().GetByUserID(ctx, adminID).Return(nil, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name: "target does not exist",
			mockSetup: func(profiles *MockProfileReader) {
				profiles.EXPECT().GetByUserID(ctx, adminID).Return(adminProfile(adminID), nil)
				profiles.EXPECT().GetByUserID(ctx, targetID).Return(nil, nil)
			},
			wantErr: ErrProfileNotFound,
		},
		{
			name:   "administrators cannot be banned",
			reason: "whatever",
			mockSetup: func(profiles *MockProfileReader) {
				profiles.EXPECT().GetByUserID(ctx, adminID).Return(adminProfile(adminID), nil)
				profiles.EXPECT().GetByUserID(ctx, targetID).Return(adminProfile(targetID), nil)
			},
			wantErr: ErrProtectedAccount,
		},
		{
			name:   "banning requires a reason",
			reason: "   ",
			mockSetup: func(profiles *MockProfileReader) {
				profiles.EXPECT().GetByUserID(ctx, adminID).Return(adminProfile(adminID), nil)
				profiles.EXPECT().GetByUserID(ctx, targetID).
					Return(&models.ProfileDB{UserID: targetID}, nil)
			},
			wantErr: ErrReasonRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			profiles := NewMockProfileReader(ctrl)
			tt.mockSetup(profiles)

			svc := NewModerationService(profiles, nil, nil, nil, nil)
			err := svc.ToggleBan(ctx, adminID, targetID, tt.reason)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestModerationService_EnforceBanOnLogin(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	reason := "spamming"

	tests := []struct {
		name         string
		profile      *models.ProfileDB
		wantDecision Decision
		wantReason   *string
		wantErr      error
	}{
		{
			name:         "clean account proceeds",
			profile:      &models.ProfileDB{UserID: userID},
			wantDecision: DecisionProceed,
		},
		{
			name:         "banned account evicted with reason",
			profile:      &models.ProfileDB{UserID: userID, Banned: true, BanReason: &reason},
			wantDecision: DecisionEvict,
			wantReason:   &reason,
		},
		{
			name:         "banned administrator still proceeds",
			profile:      &models.ProfileDB{UserID: userID, Banned: true, IsAdmin: true},
			wantDecision: DecisionProceed,
		},
		{
			name:         "unknown account",
			profile:      nil,
			wantDecision: DecisionProceed,
			wantErr:      ErrNotAuthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			profiles := NewMockProfileReader(ctrl)
			profiles.EXPECT().GetByUserID(ctx, userID).Return(tt.profile, nil)

			svc := NewModerationService(profiles, nil, nil, nil, nil)
			decision, banReason, err := svc.EnforceBanOnLogin(ctx, userID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantDecision, decision)
			assert.Equal(t, tt.wantReason, banReason)
		})
	}
}

func TestModerationService_Roster_Filter(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	nameAlice := "Alice"
	nameBob := "bobcat"
	ip := "203.0.113.7"
	banReason := "scam attempt"

	all := []models.ProfileDB{
		{UserID: uuid.New(), Name: &nameAlice},
		{UserID: uuid.New(), Name: &nameBob, IP: &ip},
		{UserID: uuid.New(), BanReason: &banReason},
	}

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{name: "empty query returns everyone", query: "", wantCount: 3},
		{name: "whitespace query returns everyone", query: "   ", wantCount: 3},
		{name: "case-insensitive name match", query: "ALICE", wantCount: 1},
		{name: "substring name match", query: "cat", wantCount: 1},
		{name: "origin match", query: "203.0.113", wantCount: 1},
		{name: "ban reason match", query: "scam", wantCount: 1},
		{name: "no match", query: "zebra", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			profiles := NewMockProfileReader(ctrl)
			roster := NewMockRosterReader(ctrl)

			profiles.EXPECT().GetByUserID(ctx, adminID).Return(adminProfile(adminID), nil)
			roster.EXPECT().List(ctx).Return(all, nil)

			svc := NewModerationService(profiles, roster, nil, nil, nil)
			got, err := svc.Roster(ctx, adminID, tt.query)

			assert.NoError(t, err)
			assert.Len(t, got, tt.wantCount)
		})
	}
}

func TestModerationService_Roster_Forbidden(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles := NewMockProfileReader(ctrl)
	profiles.EXPECT().GetByUserID(ctx, userID).
		Return(&models.ProfileDB{UserID: userID}, nil)

	svc := NewModerationService(profiles, nil, nil, nil, nil)
	_, err := svc.Roster(ctx, userID, "")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestModerationService_AccessLog_Dedup(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	targetID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles := NewMockProfileReader(ctrl)
	accessLog := NewMockAccessLogReader(ctrl)

	profiles.EXPECT().GetByUserID(ctx, adminID).Return(adminProfile(adminID), nil)
	accessLog.EXPECT().ListByUser(ctx, targetID).Return([]models.AccessLogDB{
		{UserID: targetID, IP: "10.0.0.1"},
		{UserID: targetID, IP: "10.0.0.1"},
		{UserID: targetID, IP: "10.0.0.2"},
		{UserID: targetID, IP: "10.0.0.1"},
		{UserID: targetID, IP: "10.0.0.3"},
	}, nil)

	svc := NewModerationService(profiles, nil, nil, accessLog, nil)
	got, err := svc.AccessLog(ctx, adminID, targetID)

	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "10.0.0.1", got[0].IP)
	assert.Equal(t, "10.0.0.2", got[1].IP)
	assert.Equal(t, "10.0.0.3", got[2].IP)
}

func TestModerationService_AccessLog_Cap(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	targetID := uuid.New()

	entries := make([]models.AccessLogDB, 0, 15)
	for i := 0; i < 15; i++ {
		entries = append(entries, models.AccessLogDB{
			UserID: targetID,
			IP:     uuid.NewString(), // all distinct
		})
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles := NewMockProfileReader(ctrl)
	accessLog := NewMockAccessLogReader(ctrl)

	profiles.EXPECT().GetByUserID(ctx, adminID).Return(adminProfile(adminID), nil)
	accessLog.EXPECT().ListByUser(ctx, targetID).Return(entries, nil)

	svc := NewModerationService(profiles, nil, nil, accessLog, nil)
	got, err := svc.AccessLog(ctx, adminID, targetID)

	assert.NoError(t, err)
	assert.Len(t, got, MaxDistinctOrigins)
}

func TestModerationService_AccessLog_ReadError(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	targetID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles := NewMockProfileReader(ctrl)
	accessLog := NewMockAccessLogReader(ctrl)

	profiles.EXPECT().GetByUserID(ctx, adminID).Return(adminProfile(adminID), nil)
	accessLog.EXPECT().ListByUser(ctx, targetID).Return(nil, errors.New("db error"))

	svc := NewModerationService(profiles, nil, nil, accessLog, nil)
	_, err := svc.AccessLog(ctx, adminID, targetID)

	assert.EqualError(t, err, "db error")
}

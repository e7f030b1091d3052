package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/adenmarket/adenmarket/internal/middlewares"
	"github.com/adenmarket/adenmarket/internal/services"
)

func TestFeedbackHandler(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(svc *MockFeedbackSender)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"user_name":"Adena Dealer","message":"please add buy orders"}`,
			mockSetup: func(svc *MockFeedbackSender) {
				svc.EXPECT().
					SendFeedback(gomock.Any(), userID, "Adena Dealer", "please add buy orders").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid JSON",
			body:         "{broken",
			mockSetup:    func(svc *MockFeedbackSender) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "empty message",
			body: `{"user_name":"Adena Dealer","message":""}`,
			mockSetup: func(svc *MockFeedbackSender) {
				svc.EXPECT().
					SendFeedback(gomock.Any(), userID, "Adena Dealer", "").
					Return(services.ErrMessageRequired)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "webhook down",
			body: `{"user_name":"Adena Dealer","message":"hi"}`,
			mockSetup: func(svc *MockFeedbackSender) {
				svc.EXPECT().
					SendFeedback(gomock.Any(), userID, "Adena Dealer", "hi").
					Return(services.ErrNotificationFailed)
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name: "internal error",
			body: `{"user_name":"Adena Dealer","message":"hi"}`,
			mockSetup: func(svc *MockFeedbackSender) {
				svc.EXPECT().
					SendFeedback(gomock.Any(), userID, "Adena Dealer", "hi").
					Return(errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockFeedbackSender(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/feedback", bytes.NewReader([]byte(tt.body)))
			req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			w := httptest.NewRecorder()

			NewFeedbackHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestFeedbackHandler_NoAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/feedback", bytes.NewReader([]byte(`{"message":"hi"}`)))
	w := httptest.NewRecorder()

	NewFeedbackHandler(NewMockFeedbackSender(ctrl)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package handlers

import (
	"bytes"
	"encoding/json"
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

func TestRegisterListingHandler(t *testing.T) {
	userID := uuid.New()

	validBody := RegisterListingRequest{
		GameItemID:     6660,
		ItemName:       "Earring of Wisdom",
		DealType:       "sell",
		Price:          1200,
		Quantity:       1,
		DeliveryMethod: "courier",
	}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func(svc *MockListingRegisterer)
		expectedCode int
	}{
		{
			name:      "success",
			inputBody: validBody,
			mockSetup: func(svc *MockListingRegisterer) {
				svc.EXPECT().
					Register(gomock.Any(), userID, gomock.Any()).
					DoAndReturn(func(_ interface{}, _ uuid.UUID, p services.RegisterListingParams) error {
						assert.Equal(t, "Earring of Wisdom", p.ItemName)
						assert.Equal(t, int64(1200), p.Price)
						return nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{broken",
			mockSetup:    func(svc *MockListingRegisterer) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "validation error",
			inputBody: validBody,
			mockSetup: func(svc *MockListingRegisterer) {
				svc.EXPECT().
					Register(gomock.Any(), userID, gomock.Any()).
					Return(services.ErrInvalidQuantity)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "duplicate active listing",
			inputBody: validBody,
			mockSetup: func(svc *MockListingRegisterer) {
				svc.EXPECT().
					Register(gomock.Any(), userID, gomock.Any()).
					Return(services.ErrDuplicateListing)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:      "internal error",
			inputBody: validBody,
			mockSetup: func(svc *MockListingRegisterer) {
				svc.EXPECT().
					Register(gomock.Any(), userID, gomock.Any()).
					Return(errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockListingRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewReader(bodyBytes))
			req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			w := httptest.NewRecorder()

			NewRegisterListingHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRegisterListingHandler_NoAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewReader([]byte("{}")))
	w := httptest.NewRecorder()

	NewRegisterListingHandler(NewMockListingRegisterer(ctrl)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

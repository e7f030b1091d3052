package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/adenmarket/adenmarket/internal/models"
)

func TestMyListingsHandler(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(svc *MockOwnListingLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name: "success",
			mockSetup: func(svc *MockOwnListingLister) {
				svc.EXPECT().
					OwnListings(gomock.Any(), userID).
					Return([]models.ListingDB{
						{ListingID: uuid.New(), IsVisible: true},
						{ListingID: uuid.New(), IsVisible: false},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "nil result encodes as empty array",
			mockSetup: func(svc *MockOwnListingLister) {
				svc.EXPECT().
					OwnListings(gomock.Any(), userID).
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name: "internal error",
			mockSetup: func(svc *MockOwnListingLister) {
				svc.EXPECT().
					OwnListings(gomock.Any(), userID).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockOwnListingLister(ctrl)
			tt.mockSetup(mockSvc)

			req := authedRequest(http.MethodGet, "/listings/my", userID)
			w := httptest.NewRecorder()

			NewMyListingsHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var got MyListingsResponse
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.NotNil(t, got.Listings)
				assert.Len(t, got.Listings, tt.expectedLen)
			}
		})
	}
}

func TestMyListingsHandler_NoAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/listings/my", nil)
	w := httptest.NewRecorder()

	NewMyListingsHandler(NewMockOwnListingLister(ctrl)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

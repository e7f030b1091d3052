package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adenmarket/adenmarket/internal/middlewares"
	"github.com/adenmarket/adenmarket/internal/services"
)

func buildReportForm(t *testing.T, itemID string, image []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("item_id", itemID))
	require.NoError(t, writer.WriteField("reporter_name", "Adena Dealer"))
	require.NoError(t, writer.WriteField("reported_name", "Shady Vendor"))
	require.NoError(t, writer.WriteField("reason", "scam"))
	require.NoError(t, writer.WriteField("description", "took the adena and vanished"))
	if image != nil {
		part, err := writer.CreateFormFile("image", "evidence.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestReportHandler(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()

	tests := []struct {
		name         string
		image        []byte
		mockSetup    func(svc *MockReportSubmitter)
		expectedCode int
	}{
		{
			name: "success without image",
			mockSetup: func(svc *MockReportSubmitter) {
				svc.EXPECT().
					SubmitReport(gomock.Any(), userID, gomock.Any()).
					DoAndReturn(func(_ interface{}, _ uuid.UUID, p services.SubmitReportParams) error {
						assert.Equal(t, itemID, p.ItemID)
						assert.Equal(t, "scam", p.Reason)
						assert.Nil(t, p.Image)
						return nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:  "success with image",
			image: []byte("png bytes"),
			mockSetup: func(svc *MockReportSubmitter) {
				svc.EXPECT().
					SubmitReport(gomock.Any(), userID, gomock.Any()).
					DoAndReturn(func(_ interface{}, _ uuid.UUID, p services.SubmitReportParams) error {
						assert.Equal(t, []byte("png bytes"), p.Image)
						assert.Equal(t, "evidence.png", p.ImageName)
						return nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "missing reason",
			mockSetup: func(svc *MockReportSubmitter) {
				svc.EXPECT().
					SubmitReport(gomock.Any(), userID, gomock.Any()).
					Return(services.ErrReasonRequired)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "already reported",
			mockSetup: func(svc *MockReportSubmitter) {
				svc.EXPECT().
					SubmitReport(gomock.Any(), userID, gomock.Any()).
					Return(services.ErrDuplicateReport)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "evidence too large",
			mockSetup: func(svc *MockReportSubmitter) {
				svc.EXPECT().
					SubmitReport(gomock.Any(), userID, gomock.Any()).
					Return(services.ErrUploadTooLarge)
			},
			expectedCode: http.StatusRequestEntityTooLarge,
		},
		{
			name: "upload failed",
			mockSetup: func(svc *MockReportSubmitter) {
				svc.EXPECT().
					SubmitReport(gomock.Any(), userID, gomock.Any()).
					Return(services.ErrUploadFailed)
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name: "webhook failed",
			mockSetup: func(svc *MockReportSubmitter) {
				svc.EXPECT().
					SubmitReport(gomock.Any(), userID, gomock.Any()).
					Return(services.ErrNotificationFailed)
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name: "internal error",
			mockSetup: func(svc *MockReportSubmitter) {
				svc.EXPECT().
					SubmitReport(gomock.Any(), userID, gomock.Any()).
					Return(errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockReportSubmitter(ctrl)
			tt.mockSetup(mockSvc)

			body, contentType := buildReportForm(t, itemID.String(), tt.image)
			req := httptest.NewRequest(http.MethodPost, "/reports", body)
			req.Header.Set("Content-Type", contentType)
			req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			w := httptest.NewRecorder()

			NewReportHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestReportHandler_InvalidItemID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	body, contentType := buildReportForm(t, "not-a-uuid", nil)
	req := httptest.NewRequest(http.MethodPost, "/reports", body)
	req.Header.Set("Content-Type", contentType)
	req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
	w := httptest.NewRecorder()

	NewReportHandler(NewMockReportSubmitter(ctrl)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportHandler_NotMultipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/reports", bytes.NewReader([]byte("plain body")))
	req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
	w := httptest.NewRecorder()

	NewReportHandler(NewMockReportSubmitter(ctrl)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportHandler_NoAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/reports", nil)
	w := httptest.NewRecorder()

	NewReportHandler(NewMockReportSubmitter(ctrl)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/adenmarket/adenmarket/internal/logger"
	"github.com/adenmarket/adenmarket/internal/middlewares"
	"github.com/adenmarket/adenmarket/internal/services"
)

// maxReportForm bounds the multipart form: the 5 MB evidence limit plus
// headroom for the text fields.
const maxReportForm = services.MaxEvidenceSize + 1<<20

// ReportSubmitter defines the interface that the report service must implement.
type ReportSubmitter interface {
	SubmitReport(ctx context.Context, reporterID uuid.UUID, p services.SubmitReportParams) error
}

// ReportResponse represents a successful report response
// swagger:model ReportResponse
type ReportResponse struct {
	Message string `json:"message"`
}

// ReportErrorResponse represents an error response for reporting
// swagger:model ReportErrorResponse
type ReportErrorResponse struct {
	Error string `json:"error"`
}

// NewReportHandler returns an HTTP handler for report submission.
// @Summary Report a listing
// @Description Submits a report with an optional evidence image (multipart, at most 5 MB) and notifies the moderation webhook.
// @Tags reports
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param item_id formData string true "Reported listing id"
// @Param reporter_name formData string true "Reporter display name"
// @Param reported_name formData string true "Reported display name"
// @Param reason formData string true "Report reason"
// @Param description formData string false "Free-text details"
// @Param image formData file false "Evidence image"
// @Success 201 {object} handlers.ReportResponse "Report submitted"
// @Failure 400 {object} handlers.ReportErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ReportErrorResponse "Not authenticated"
// @Failure 409 {object} handlers.ReportErrorResponse "Already reported"
// @Failure 413 {object} handlers.ReportErrorResponse "Evidence image too large"
// @Failure 502 {object} handlers.ReportErrorResponse "Upload or notification failed"
// @Router /reports [post]
func NewReportHandler(svc ReportSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReportErrorResponse{Error: "unauthorized"})
			return
		}

		if err := r.ParseMultipartForm(maxReportForm); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReportErrorResponse{Error: "invalid multipart form"})
			return
		}

		itemID, err := uuid.Parse(r.FormValue("item_id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReportErrorResponse{Error: "invalid item id"})
			return
		}

		params := services.SubmitReportParams{
			ItemID:       itemID,
			ReporterName: r.FormValue("reporter_name"),
			ReportedName: r.FormValue("reported_name"),
			Reason:       r.FormValue("reason"),
			Description:  r.FormValue("description"),
		}

		if file, header, err := r.FormFile("image"); err == nil {
			defer file.Close()
			data, readErr := io.ReadAll(io.LimitReader(file, services.MaxEvidenceSize+1))
			if readErr != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ReportErrorResponse{Error: "could not read evidence image"})
				return
			}
			params.Image = data
			params.ImageName = header.Filename
		}

		if err := svc.SubmitReport(r.Context(), userID, params); err != nil {
			switch {
			case errors.Is(err, services.ErrReasonRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ReportErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrDuplicateReport):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ReportErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrUploadTooLarge):
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				json.NewEncoder(w).Encode(ReportErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrUploadFailed),
				errors.Is(err, services.ErrNotificationFailed):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(ReportErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ReportErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ReportResponse{Message: "Report submitted successfully"})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/adenmarket/adenmarket/internal/logger"
	"github.com/adenmarket/adenmarket/internal/middlewares"
	"github.com/adenmarket/adenmarket/internal/services"
)

// FeedbackSender defines the interface that the report service must implement.
type FeedbackSender interface {
	SendFeedback(ctx context.Context, userID uuid.UUID, userName, message string) error
}

// FeedbackRequest represents the feedback payload
// swagger:model FeedbackRequest
type FeedbackRequest struct {
	UserName string `json:"user_name"`
	Message  string `json:"message"`
}

// FeedbackResponse represents a successful feedback response
// swagger:model FeedbackResponse
type FeedbackResponse struct {
	Message string `json:"message"`
}

// FeedbackErrorResponse represents an error response for feedback
// swagger:model FeedbackErrorResponse
type FeedbackErrorResponse struct {
	Error string `json:"error"`
}

// NewFeedbackHandler returns an HTTP handler for feedback submission.
// @Summary Send feedback
// @Description Forwards a feedback message to the operations webhook.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param feedback body handlers.FeedbackRequest true "Feedback payload"
// @Success 200 {object} handlers.FeedbackResponse "Feedback sent"
// @Failure 400 {object} handlers.FeedbackErrorResponse "Invalid input"
// @Failure 401 {object} handlers.FeedbackErrorResponse "Not authenticated"
// @Failure 502 {object} handlers.FeedbackErrorResponse "Notification failed"
// @Router /feedback [post]
func NewFeedbackHandler(svc FeedbackSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "unauthorized"})
			return
		}

		var req FeedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.SendFeedback(r.Context(), userID, req.UserName, req.Message); err != nil {
			switch {
			case errors.Is(err, services.ErrMessageRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrNotificationFailed):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FeedbackResponse{Message: "Feedback sent successfully"})
	}
}

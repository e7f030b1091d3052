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

// Renamer defines the interface that the account service must implement.
type Renamer interface {
	Rename(ctx context.Context, userID uuid.UUID, name string) error
}

// RenameRequest represents the JSON body for the display-name change
// swagger:model RenameRequest
type RenameRequest struct {
	Name string `json:"name"`
}

// RenameResponse represents a successful rename response
// swagger:model RenameResponse
type RenameResponse struct {
	Message string `json:"message"`
}

// RenameErrorResponse represents an error response for renaming
// swagger:model RenameErrorResponse
type RenameErrorResponse struct {
	Error string `json:"error"`
}

// NewRenameHandler returns an HTTP handler for the one-shot display-name edit.
// @Summary Change the display name
// @Description Sets the profile's display name. Allowed exactly once per profile.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param renameRequest body handlers.RenameRequest true "New display name"
// @Success 200 {object} handlers.RenameResponse "Name changed"
// @Failure 400 {object} handlers.RenameErrorResponse "Name missing"
// @Failure 401 {object} handlers.RenameErrorResponse "Not authenticated"
// @Failure 409 {object} handlers.RenameErrorResponse "Name already edited"
// @Router /profile/name [patch]
func NewRenameHandler(svc Renamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RenameErrorResponse{Error: "unauthorized"})
			return
		}

		var req RenameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RenameErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.Rename(r.Context(), userID, req.Name); err != nil {
			switch {
			case errors.Is(err, services.ErrNicknameRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RenameErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrNicknameAlreadyEdited):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RenameErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RenameErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RenameResponse{Message: "Display name changed successfully"})
	}
}

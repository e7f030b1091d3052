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

// Booster defines the interface that the boost service must implement.
type Booster interface {
	EvaluateCooldown(ctx context.Context, userID uuid.UUID) (bool, int, error)
	ApplyBoost(ctx context.Context, userID uuid.UUID) error
}

// CooldownResponse represents the cooldown evaluation result
// swagger:model CooldownResponse
type CooldownResponse struct {
	Allowed     bool `json:"allowed"`
	MinutesLeft int  `json:"minutes_left"`
}

// BoostResponse represents a successful boost response
// swagger:model BoostResponse
type BoostResponse struct {
	Message string `json:"message"`
}

// BoostErrorResponse represents an error response for boosting
// swagger:model BoostErrorResponse
type BoostErrorResponse struct {
	Error       string `json:"error"`
	MinutesLeft int    `json:"minutes_left,omitempty"`
}

// NewEvaluateCooldownHandler returns an HTTP handler for the cooldown check.
// @Summary Check the boost cooldown
// @Description Reports whether the user may boost now and, if not, how many minutes remain.
// @Tags boost
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.CooldownResponse "Cooldown state"
// @Failure 401 {object} handlers.BoostErrorResponse "Not authenticated"
// @Failure 500 {object} handlers.BoostErrorResponse "Internal server error"
// @Router /boost [get]
func NewEvaluateCooldownHandler(svc Booster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BoostErrorResponse{Error: "unauthorized"})
			return
		}

		allowed, minutesLeft, err := svc.EvaluateCooldown(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrNotAuthenticated) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(BoostErrorResponse{Error: "unauthorized"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BoostErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CooldownResponse{Allowed: allowed, MinutesLeft: minutesLeft})
	}
}

// NewApplyBoostHandler returns an HTTP handler for applying a boost.
// @Summary Boost all own active listings
// @Description Bumps every active listing of the user to the top of browse ordering, subject to the one-hour cooldown.
// @Tags boost
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.BoostResponse "Listings boosted"
// @Failure 401 {object} handlers.BoostErrorResponse "Not authenticated"
// @Failure 429 {object} handlers.BoostErrorResponse "Cooldown active"
// @Router /boost [post]
func NewApplyBoostHandler(svc Booster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BoostErrorResponse{Error: "unauthorized"})
			return
		}

		if err := svc.ApplyBoost(r.Context(), userID); err != nil {
			var cooldownErr *services.CooldownError
			switch {
			case errors.As(err, &cooldownErr):
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(BoostErrorResponse{
					Error:       err.Error(),
					MinutesLeft: cooldownErr.MinutesLeft,
				})
			case errors.Is(err, services.ErrNotAuthenticated):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(BoostErrorResponse{Error: "unauthorized"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BoostErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BoostResponse{Message: "Listings boosted successfully"})
	}
}

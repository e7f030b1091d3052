package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/adenmarket/adenmarket/internal/logger"
	"github.com/adenmarket/adenmarket/internal/middlewares"
	"github.com/adenmarket/adenmarket/internal/models"
	"github.com/adenmarket/adenmarket/internal/services"
)

// Moderator defines the interface that the moderation service must implement.
type Moderator interface {
	ToggleBan(ctx context.Context, adminID, targetID uuid.UUID, reason string) error
	Roster(ctx context.Context, adminID uuid.UUID, query string) ([]models.ProfileDB, error)
	AccessLog(ctx context.Context, adminID, targetID uuid.UUID) ([]models.AccessLogDB, error)
}

// ToggleBanRequest represents the ban toggle payload
// swagger:model ToggleBanRequest
type ToggleBanRequest struct {
	Reason string `json:"reason"`
}

// ToggleBanResponse represents a successful ban toggle response
// swagger:model ToggleBanResponse
type ToggleBanResponse struct {
	Message string `json:"message"`
}

// AdminErrorResponse represents an error response for admin endpoints
// swagger:model AdminErrorResponse
type AdminErrorResponse struct {
	Error string `json:"error"`
}

// NewRosterHandler returns an HTTP handler for the admin roster view.
// @Summary List user profiles
// @Description Returns every profile, most recently active first, optionally filtered by a case-insensitive substring over name, id, origin, and ban reason.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param q query string false "Substring filter"
// @Success 200 {array} models.ProfileDB "Profiles"
// @Failure 401 {object} handlers.AdminErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.AdminErrorResponse "Not an administrator"
// @Router /admin/users [get]
func NewRosterHandler(svc Moderator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "unauthorized"})
			return
		}

		profiles, err := svc.Roster(r.Context(), adminID, r.URL.Query().Get("q"))
		if err != nil {
			writeAdminError(w, err)
			return
		}
		if profiles == nil {
			profiles = []models.ProfileDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profiles)
	}
}

// NewAccessLogHandler returns an HTTP handler for a user's login origins.
// @Summary View a user's login origins
// @Description Returns the target's deduplicated login origins, newest first, capped at ten.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Target user id"
// @Success 200 {array} models.AccessLogDB "Access log entries"
// @Failure 400 {object} handlers.AdminErrorResponse "Invalid user id"
// @Failure 401 {object} handlers.AdminErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.AdminErrorResponse "Not an administrator"
// @Router /admin/users/{id}/access-log [get]
func NewAccessLogHandler(svc Moderator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, targetID, ok := adminRequestIDs(w, r)
		if !ok {
			return
		}

		entries, err := svc.AccessLog(r.Context(), adminID, targetID)
		if err != nil {
			writeAdminError(w, err)
			return
		}
		if entries == nil {
			entries = []models.AccessLogDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(entries)
	}
}

// NewToggleBanHandler returns an HTTP handler that flips a user's ban state.
// @Summary Ban or unban a user
// @Description Flips the target's ban state. Banning requires a reason; administrator accounts cannot be banned.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Target user id"
// @Param ban body handlers.ToggleBanRequest false "Ban reason, required when banning"
// @Success 200 {object} handlers.ToggleBanResponse "Ban state updated"
// @Failure 400 {object} handlers.AdminErrorResponse "Missing reason or invalid user id"
// @Failure 401 {object} handlers.AdminErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.AdminErrorResponse "Not an administrator, or target is protected"
// @Failure 404 {object} handlers.AdminErrorResponse "Target not found"
// @Router /admin/users/{id}/ban [post]
func NewToggleBanHandler(svc Moderator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, targetID, ok := adminRequestIDs(w, r)
		if !ok {
			return
		}

		var req ToggleBanRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "invalid request body"})
				return
			}
		}

		if err := svc.ToggleBan(r.Context(), adminID, targetID, req.Reason); err != nil {
			writeAdminError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ToggleBanResponse{Message: "Ban state updated"})
	}
}

func adminRequestIDs(w http.ResponseWriter, r *http.Request) (adminID, targetID uuid.UUID, ok bool) {
	adminID, authed := middlewares.UserIDFromContext(r.Context())
	if !authed {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(AdminErrorResponse{Error: "unauthorized"})
		return uuid.Nil, uuid.Nil, false
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(AdminErrorResponse{Error: "invalid user id"})
		return uuid.Nil, uuid.Nil, false
	}
	return adminID, targetID, true
}

func writeAdminError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrProtectedAccount):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(AdminErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrReasonRequired):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(AdminErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrProfileNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(AdminErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
	}
}

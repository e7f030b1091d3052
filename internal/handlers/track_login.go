package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adenmarket/adenmarket/internal/logger"
	"github.com/adenmarket/adenmarket/internal/middlewares"
	"github.com/adenmarket/adenmarket/internal/models"
)

var mobileUserAgent = regexp.MustCompile(`mobile|android|iphone|ipad|ipod|blackberry|iemobile|opera mini`)

// LoginTracker defines the interface that the account service must implement.
type LoginTracker interface {
	TrackLogin(ctx context.Context, userID uuid.UUID, ip, deviceType string) (time.Time, error)
}

// TrackLoginResponse represents a successful login-tracking response
// swagger:model TrackLoginResponse
type TrackLoginResponse struct {
	OK         bool      `json:"ok"`
	IP         string    `json:"ip"`
	DeviceType string    `json:"device_type"`
	When       time.Time `json:"when"`
}

// TrackLoginErrorResponse represents an error response for login tracking
// swagger:model TrackLoginErrorResponse
type TrackLoginErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// NewTrackLoginHandler returns an HTTP handler that records the client's
// origin and device class after authentication.
// @Summary Track a login
// @Description Derives the client origin and device class from request headers, refreshes the profile, and appends to the access log.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.TrackLoginResponse "Derived values and timestamp"
// @Failure 401 {object} handlers.TrackLoginErrorResponse "Not authenticated"
// @Failure 500 {object} handlers.TrackLoginErrorResponse "Tracking failed"
// @Router /track-login [post]
func NewTrackLoginHandler(svc LoginTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TrackLoginErrorResponse{Error: "unauthorized"})
			return
		}

		ip := clientIP(r)
		deviceType := deviceClass(r.Header.Get("User-Agent"))

		when, err := svc.TrackLogin(r.Context(), userID, ip, deviceType)
		if err != nil {
			logger.Log.Errorw("failed to track login", "userID", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TrackLoginErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TrackLoginResponse{
			OK:         true,
			IP:         ip,
			DeviceType: deviceType,
			When:       when,
		})
	}
}

// clientIP picks the first hop of X-Forwarded-For, then X-Real-IP, then a
// zero placeholder.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first := strings.TrimSpace(strings.Split(forwarded, ",")[0]); first != "" {
			return first
		}
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	return "0.0.0.0"
}

func deviceClass(userAgent string) string {
	if mobileUserAgent.MatchString(strings.ToLower(userAgent)) {
		return models.DeviceMobile
	}
	return models.DeviceDesktop
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/adenmarket/adenmarket/internal/logger"
	"github.com/adenmarket/adenmarket/internal/middlewares"
	"github.com/adenmarket/adenmarket/internal/models"
)

// OwnListingLister defines the interface that the listing service must implement.
type OwnListingLister interface {
	OwnListings(ctx context.Context, ownerID uuid.UUID) ([]models.ListingDB, error)
}

// MyListingsResponse represents the owner's management view
// swagger:model MyListingsResponse
type MyListingsResponse struct {
	Listings []models.ListingDB `json:"listings"`
}

// MyListingsErrorResponse represents an error response for the owner view
// swagger:model MyListingsErrorResponse
type MyListingsErrorResponse struct {
	Error string `json:"error"`
}

// NewMyListingsHandler returns an HTTP handler for the owner's listing view.
// @Summary List own listings
// @Description Returns every listing of the authenticated user, hidden ones included.
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MyListingsResponse "Listings"
// @Failure 401 {object} handlers.MyListingsErrorResponse "Not authenticated"
// @Failure 500 {object} handlers.MyListingsErrorResponse "Internal server error"
// @Router /listings/my [get]
func NewMyListingsHandler(svc OwnListingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MyListingsErrorResponse{Error: "unauthorized"})
			return
		}

		listings, err := svc.OwnListings(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MyListingsErrorResponse{Error: "Internal server error"})
			return
		}

		if listings == nil {
			listings = []models.ListingDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MyListingsResponse{Listings: listings})
	}
}

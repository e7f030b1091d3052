package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/adenmarket/adenmarket/internal/logger"
	"github.com/adenmarket/adenmarket/internal/models"
)

// ListingBrowser defines the interface that the listing service must implement.
type ListingBrowser interface {
	Browse(ctx context.Context, dealType, nameQuery *string) ([]models.ListingDB, error)
}

// BrowseResponse represents the public listing view
// swagger:model BrowseResponse
type BrowseResponse struct {
	Listings []models.ListingDB `json:"listings"`
}

// BrowseErrorResponse represents an error response for browsing
// swagger:model BrowseErrorResponse
type BrowseErrorResponse struct {
	Error string `json:"error"`
}

// NewBrowseHandler returns an HTTP handler for the public listing view.
// @Summary Browse listings
// @Description Returns visible active listings ordered by boost recency. Optional deal_type and q filters.
// @Tags listings
// @Produce json
// @Param deal_type query string false "buy or sell"
// @Param q query string false "Item name substring"
// @Success 200 {object} handlers.BrowseResponse "Listings"
// @Failure 500 {object} handlers.BrowseErrorResponse "Internal server error"
// @Router /listings [get]
func NewBrowseHandler(svc ListingBrowser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var dealType, nameQuery *string
		if v := r.URL.Query().Get("deal_type"); v != "" {
			dealType = &v
		}
		if v := r.URL.Query().Get("q"); v != "" {
			nameQuery = &v
		}

		listings, err := svc.Browse(r.Context(), dealType, nameQuery)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BrowseErrorResponse{Error: "Internal server error"})
			return
		}

		if listings == nil {
			listings = []models.ListingDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BrowseResponse{Listings: listings})
	}
}

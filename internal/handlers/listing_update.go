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
	"github.com/adenmarket/adenmarket/internal/services"
)

// ListingUpdater defines the owner mutations the listing service must implement.
type ListingUpdater interface {
	SetVisible(ctx context.Context, listingID, ownerID uuid.UUID, visible bool) error
	UpdatePrice(ctx context.Context, listingID, ownerID uuid.UUID, price int64) error
	UpdateDeliveryMethod(ctx context.Context, listingID, ownerID uuid.UUID, method string) error
	Delete(ctx context.Context, listingID, ownerID uuid.UUID) error
}

// SetVisibleRequest represents the JSON body for toggling visibility
// swagger:model SetVisibleRequest
type SetVisibleRequest struct {
	Visible bool `json:"visible"`
}

// UpdatePriceRequest represents the JSON body for a price change
// swagger:model UpdatePriceRequest
type UpdatePriceRequest struct {
	Price int64 `json:"price"`
}

// UpdateDeliveryRequest represents the JSON body for a delivery-method change
// swagger:model UpdateDeliveryRequest
type UpdateDeliveryRequest struct {
	DeliveryMethod string `json:"delivery_method"`
}

// ListingUpdateResponse represents a successful mutation response
// swagger:model ListingUpdateResponse
type ListingUpdateResponse struct {
	Message string `json:"message"`
}

// ListingUpdateErrorResponse represents an error response for owner mutations
// swagger:model ListingUpdateErrorResponse
type ListingUpdateErrorResponse struct {
	Error string `json:"error"`
}

// NewSetVisibleHandler returns an HTTP handler for the visibility toggle.
// @Summary Hide or show a listing
// @Description Flips the visibility flag without deleting the listing. Owner only, idempotent.
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing id"
// @Param setVisibleRequest body handlers.SetVisibleRequest true "Visibility flag"
// @Success 200 {object} handlers.ListingUpdateResponse "Visibility updated"
// @Failure 400 {object} handlers.ListingUpdateErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ListingUpdateErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ListingUpdateErrorResponse "Not the owner"
// @Router /listings/{id}/visibility [patch]
func NewSetVisibleHandler(svc ListingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, listingID, ok := listingRequestIDs(w, r)
		if !ok {
			return
		}

		var req SetVisibleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListingUpdateErrorResponse{Error: "invalid request body"})
			return
		}

		err := svc.SetVisible(r.Context(), listingID, userID, req.Visible)
		writeListingUpdateResult(w, err, "Visibility updated")
	}
}

// NewUpdatePriceHandler returns an HTTP handler for price changes.
// @Summary Change a listing's price
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing id"
// @Param updatePriceRequest body handlers.UpdatePriceRequest true "New price"
// @Success 200 {object} handlers.ListingUpdateResponse "Price updated"
// @Failure 400 {object} handlers.ListingUpdateErrorResponse "Invalid price"
// @Failure 401 {object} handlers.ListingUpdateErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ListingUpdateErrorResponse "Not the owner"
// @Router /listings/{id}/price [patch]
func NewUpdatePriceHandler(svc ListingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, listingID, ok := listingRequestIDs(w, r)
		if !ok {
			return
		}

		var req UpdatePriceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListingUpdateErrorResponse{Error: "invalid request body"})
			return
		}

		err := svc.UpdatePrice(r.Context(), listingID, userID, req.Price)
		writeListingUpdateResult(w, err, "Price updated")
	}
}

// NewUpdateDeliveryHandler returns an HTTP handler for delivery-method changes.
// @Summary Change a listing's delivery method
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing id"
// @Param updateDeliveryRequest body handlers.UpdateDeliveryRequest true "New delivery method"
// @Success 200 {object} handlers.ListingUpdateResponse "Delivery method updated"
// @Failure 400 {object} handlers.ListingUpdateErrorResponse "Invalid delivery method"
// @Failure 401 {object} handlers.ListingUpdateErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ListingUpdateErrorResponse "Not the owner"
// @Router /listings/{id}/delivery [patch]
func NewUpdateDeliveryHandler(svc ListingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, listingID, ok := listingRequestIDs(w, r)
		if !ok {
			return
		}

		var req UpdateDeliveryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListingUpdateErrorResponse{Error: "invalid request body"})
			return
		}

		err := svc.UpdateDeliveryMethod(r.Context(), listingID, userID, req.DeliveryMethod)
		writeListingUpdateResult(w, err, "Delivery method updated")
	}
}

// NewDeleteListingHandler returns an HTTP handler for listing deletion.
// @Summary Delete a listing
// @Description Removes a completed listing. Owner only.
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing id"
// @Success 200 {object} handlers.ListingUpdateResponse "Listing deleted"
// @Failure 401 {object} handlers.ListingUpdateErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ListingUpdateErrorResponse "Not the owner"
// @Router /listings/{id} [delete]
func NewDeleteListingHandler(svc ListingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, listingID, ok := listingRequestIDs(w, r)
		if !ok {
			return
		}

		err := svc.Delete(r.Context(), listingID, userID)
		writeListingUpdateResult(w, err, "Listing deleted")
	}
}

// listingRequestIDs pulls the acting user from the context and the listing id
// from the URL, writing the error response itself when either is missing.
func listingRequestIDs(w http.ResponseWriter, r *http.Request) (userID, listingID uuid.UUID, ok bool) {
	userID, ok = middlewares.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ListingUpdateErrorResponse{Error: "unauthorized"})
		return uuid.Nil, uuid.Nil, false
	}

	listingID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ListingUpdateErrorResponse{Error: "invalid listing id"})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, listingID, true
}

func writeListingUpdateResult(w http.ResponseWriter, err error, message string) {
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotOwner):
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(ListingUpdateErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrInvalidPrice),
			errors.Is(err, services.ErrInvalidDelivery):
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListingUpdateErrorResponse{Error: err.Error()})
		default:
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListingUpdateErrorResponse{Error: "Internal server error"})
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ListingUpdateResponse{Message: message})
}

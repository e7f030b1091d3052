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

// ListingRegisterer defines the interface that the listing service must implement.
type ListingRegisterer interface {
	Register(ctx context.Context, ownerID uuid.UUID, p services.RegisterListingParams) error
}

// RegisterListingRequest represents the JSON body for listing registration
// swagger:model RegisterListingRequest
type RegisterListingRequest struct {
	GameItemID     int64  `json:"game_item_id"`
	ItemName       string `json:"item_name"`
	ItemImage      string `json:"item_image"`
	DealType       string `json:"deal_type"`
	Price          int64  `json:"price"`
	Quantity       int    `json:"quantity"`
	Negotiable     bool   `json:"negotiable"`
	DeliveryMethod string `json:"delivery_method"`
	Comment        string `json:"comment"`
}

// RegisterListingResponse represents a successful registration response
// swagger:model RegisterListingResponse
type RegisterListingResponse struct {
	Message string `json:"message"`
}

// RegisterListingErrorResponse represents an error response for registration
// swagger:model RegisterListingErrorResponse
type RegisterListingErrorResponse struct {
	Error string `json:"error"`
}

// NewRegisterListingHandler returns an HTTP handler for listing registration.
// @Summary Register a listing
// @Description Creates a new active listing. At most one active listing per item name per owner.
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param registerListingRequest body handlers.RegisterListingRequest true "Listing registration request"
// @Success 201 {object} handlers.RegisterListingResponse "Listing registered"
// @Failure 400 {object} handlers.RegisterListingErrorResponse "Invalid listing input"
// @Failure 401 {object} handlers.RegisterListingErrorResponse "Not authenticated"
// @Failure 409 {object} handlers.RegisterListingErrorResponse "Duplicate active listing"
// @Router /listings [post]
func NewRegisterListingHandler(svc ListingRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RegisterListingErrorResponse{Error: "unauthorized"})
			return
		}

		var req RegisterListingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterListingErrorResponse{Error: "invalid request body"})
			return
		}

		err := svc.Register(r.Context(), userID, services.RegisterListingParams{
			GameItemID:     req.GameItemID,
			ItemName:       req.ItemName,
			ItemImage:      req.ItemImage,
			DealType:       req.DealType,
			Price:          req.Price,
			Quantity:       req.Quantity,
			Negotiable:     req.Negotiable,
			DeliveryMethod: req.DeliveryMethod,
			Comment:        req.Comment,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDuplicateListing):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RegisterListingErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrInvalidPrice),
				errors.Is(err, services.ErrInvalidQuantity),
				errors.Is(err, services.ErrInvalidDealType),
				errors.Is(err, services.ErrInvalidDelivery),
				errors.Is(err, services.ErrCommentTooLong):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterListingErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterListingErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterListingResponse{Message: "Listing registered successfully"})
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Deal directions
const (
	DealBuy  = "buy"
	DealSell = "sell"
)

// Delivery methods
const (
	DeliveryCourier    = "courier"
	DeliveryOpenMarket = "open-market"
)

// Listing lifecycle statuses
const (
	ListingStatusActive = "active"
	ListingStatusDone   = "done"
)

// MaxListingQuantity and MaxCommentLength bound listing registration input.
const (
	MaxListingQuantity = 999
	MaxCommentLength   = 60
)

// ListingDB represents a single buy/sell offer row in the database.
// Public browse orders by (boosted_at DESC NULLS LAST, created_at DESC),
// so a fresh boost moves all of an owner's active listings to the top.
type ListingDB struct {
	ListingID      uuid.UUID  `json:"listing_id" db:"listing_id"`           // Primary key
	OwnerID        uuid.UUID  `json:"owner_id" db:"owner_id"`               // Profile that created the listing
	GameItemID     int64      `json:"game_item_id" db:"game_item_id"`       // Catalog id of the traded item
	ItemName       string     `json:"item_name" db:"item_name"`             // Display name; unique per owner among active listings
	ItemImage      string     `json:"item_image" db:"item_image"`           // Catalog image reference
	DealType       string     `json:"deal_type" db:"deal_type"`             // buy or sell
	Price          int64      `json:"price" db:"price"`                     // Positive integer
	Quantity       int        `json:"quantity" db:"quantity"`               // 1..999
	Negotiable     bool       `json:"negotiable" db:"negotiable"`           // Price negotiable flag
	DeliveryMethod string     `json:"delivery_method" db:"delivery_method"` // courier or open-market
	Comment        string     `json:"comment" db:"comment"`                 // Free text, at most 60 chars
	IsVisible      bool       `json:"is_visible" db:"is_visible"`           // Owner-controlled visibility toggle
	Status         string     `json:"status" db:"status"`                   // active or done
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	BoostedAt      *time.Time `json:"boosted_at" db:"boosted_at"` // Defaults to created_at for ordering
}

package services

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/adenmarket/adenmarket/internal/logger"
	"github.com/adenmarket/adenmarket/internal/models"
)

// ListingWriter defines write operations for listings.
type ListingWriter interface {
	Save(ctx context.Context, l *models.ListingDB) (bool, error)
	SetVisible(ctx context.Context, listingID, ownerID uuid.UUID, visible bool) (bool, error)
	UpdatePrice(ctx context.Context, listingID, ownerID uuid.UUID, price int64) (bool, error)
	UpdateDeliveryMethod(ctx context.Context, listingID, ownerID uuid.UUID, method string) (bool, error)
	Delete(ctx context.Context, listingID, ownerID uuid.UUID) (bool, error)
}

// ListingReader defines read operations for listings.
type ListingReader interface {
	Browse(ctx context.Context, dealType, nameQuery *string) ([]models.ListingDB, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.ListingDB, error)
}

// RegisterListingParams carries validated-at-the-edge registration input.
type RegisterListingParams struct {
	GameItemID     int64
	ItemName       string
	ItemImage      string
	DealType       string
	Price          int64
	Quantity       int
	Negotiable     bool
	DeliveryMethod string
	Comment        string
}

// ListingService handles listing registration and owner mutations. Only the
// owner may mutate a listing; every write below is owner-scoped.
type ListingService struct {
	writer      ListingWriter
	reader      ListingReader
	kafkaWriter KafkaWriter
}

// NewListingService creates a new ListingService.
func NewListingService(writer ListingWriter, reader ListingReader, kafkaWriter KafkaWriter) *ListingService {
	return &ListingService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
	}
}

// Register validates and inserts a new active listing. Duplicate active
// listings per (owner, item name) are rejected by the store's uniqueness
// constraint, surfaced as ErrDuplicateListing.
func (s *ListingService) Register(ctx context.Context, ownerID uuid.UUID, p RegisterListingParams) error {
	if err := validateListing(p); err != nil {
		return err
	}

	inserted, err := s.writer.Save(ctx, &models.ListingDB{
		OwnerID:        ownerID,
		GameItemID:     p.GameItemID,
		ItemName:       p.ItemName,
		ItemImage:      p.ItemImage,
		DealType:       p.DealType,
		Price:          p.Price,
		Quantity:       p.Quantity,
		Negotiable:     p.Negotiable,
		DeliveryMethod: p.DeliveryMethod,
		Comment:        p.Comment,
	})
	if err != nil {
		logger.Log.Errorw("failed to save listing", "ownerID", ownerID, "item", p.ItemName, "error", err)
		return err
	}
	if !inserted {
		logger.Log.Infow("duplicate active listing rejected", "ownerID", ownerID, "item", p.ItemName)
		return ErrDuplicateListing
	}

	publishAudit(ctx, s.kafkaWriter, ownerID, models.AuditActionRegister, p.ItemName)

	return nil
}

// SetVisible hides or shows a listing without deleting it. Idempotent.
func (s *ListingService) SetVisible(ctx context.Context, listingID, ownerID uuid.UUID, visible bool) error {
	ok, err := s.writer.SetVisible(ctx, listingID, ownerID, visible)
	if err != nil {
		logger.Log.Errorw("failed to toggle visibility", "listingID", listingID, "ownerID", ownerID, "error", err)
		return err
	}
	if !ok {
		return ErrNotOwner
	}
	return nil
}

// UpdatePrice changes the asking price of an owned listing.
func (s *ListingService) UpdatePrice(ctx context.Context, listingID, ownerID uuid.UUID, price int64) error {
	if price <= 0 {
		return ErrInvalidPrice
	}

	ok, err := s.writer.UpdatePrice(ctx, listingID, ownerID, price)
	if err != nil {
		logger.Log.Errorw("failed to update price", "listingID", listingID, "ownerID", ownerID, "error", err)
		return err
	}
	if !ok {
		return ErrNotOwner
	}
	return nil
}

// UpdateDeliveryMethod changes the delivery method of an owned listing.
func (s *ListingService) UpdateDeliveryMethod(ctx context.Context, listingID, ownerID uuid.UUID, method string) error {
	if method != models.DeliveryCourier && method != models.DeliveryOpenMarket {
		return ErrInvalidDelivery
	}

	ok, err := s.writer.UpdateDeliveryMethod(ctx, listingID, ownerID, method)
	if err != nil {
		logger.Log.Errorw("failed to update delivery method", "listingID", listingID, "ownerID", ownerID, "error", err)
		return err
	}
	if !ok {
		return ErrNotOwner
	}
	return nil
}

// Delete removes a completed listing.
func (s *ListingService) Delete(ctx context.Context, listingID, ownerID uuid.UUID) error {
	ok, err := s.writer.Delete(ctx, listingID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to delete listing", "listingID", listingID, "ownerID", ownerID, "error", err)
		return err
	}
	if !ok {
		return ErrNotOwner
	}
	return nil
}

// Browse returns the public view: visible active listings in boost order.
func (s *ListingService) Browse(ctx context.Context, dealType, nameQuery *string) ([]models.ListingDB, error) {
	listings, err := s.reader.Browse(ctx, dealType, nameQuery)
	if err != nil {
		logger.Log.Errorw("failed to browse listings", "error", err)
		return nil, err
	}
	return listings, nil
}

// OwnListings returns the owner's management view, hidden listings included.
func (s *ListingService) OwnListings(ctx context.Context, ownerID uuid.UUID) ([]models.ListingDB, error) {
	listings, err := s.reader.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list own listings", "ownerID", ownerID, "error", err)
		return nil, err
	}
	return listings, nil
}

func validateListing(p RegisterListingParams) error {
	if p.DealType != models.DealBuy && p.DealType != models.DealSell {
		return ErrInvalidDealType
	}
	if p.Price <= 0 {
		return ErrInvalidPrice
	}
	if p.Quantity < 1 || p.Quantity > models.MaxListingQuantity {
		return ErrInvalidQuantity
	}
	if p.DeliveryMethod != models.DeliveryCourier && p.DeliveryMethod != models.DeliveryOpenMarket {
		return ErrInvalidDelivery
	}
	if utf8.RuneCountInString(p.Comment) > models.MaxCommentLength {
		return ErrCommentTooLong
	}
	return nil
}

package services

import (
	"errors"
	"fmt"
)

// Error variables shared across services. Handlers match these with
// errors.Is and translate them to HTTP statuses.
var (
	ErrNotAuthenticated      = errors.New("user is not authenticated")
	ErrProfileNotFound       = errors.New("profile does not exist")
	ErrNotOwner              = errors.New("listing does not belong to this user")
	ErrForbidden             = errors.New("administrator privileges required")
	ErrProtectedAccount      = errors.New("administrator accounts cannot be banned")
	ErrReasonRequired        = errors.New("a reason is required")
	ErrDuplicateListing      = errors.New("an active listing for this item already exists")
	ErrDuplicateReport       = errors.New("this item was already reported by this user")
	ErrNicknameAlreadyEdited = errors.New("the display name can only be changed once")
	ErrNicknameRequired      = errors.New("a display name is required")
	ErrMessageRequired       = errors.New("a message is required")
	ErrInvalidPrice          = errors.New("price must be a positive integer")
	ErrInvalidQuantity       = errors.New("quantity must be between 1 and 999")
	ErrCommentTooLong        = errors.New("comment must be at most 60 characters")
	ErrInvalidDealType       = errors.New("deal type must be buy or sell")
	ErrInvalidDelivery       = errors.New("delivery method must be courier or open-market")
	ErrUploadTooLarge        = errors.New("evidence image exceeds the 5 MB limit")
	ErrUploadFailed          = errors.New("evidence image upload failed")
	ErrNotificationFailed    = errors.New("notification delivery failed")
)

// CooldownError is returned when a boost is attempted inside the cooldown
// window. MinutesLeft is rounded up to whole minutes.
type CooldownError struct {
	MinutesLeft int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("boost cooldown active, %d minutes left", e.MinutesLeft)
}

// BanError is returned when a banned account authenticates. The caller must
// terminate the session and surface the reason, if any, to the user.
type BanError struct {
	Reason string
}

func (e *BanError) Error() string {
	if e.Reason == "" {
		return "account is banned"
	}
	return fmt.Sprintf("account is banned: %s", e.Reason)
}

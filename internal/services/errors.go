package services

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors surfaced by the service layer. Handlers map these to HTTP
// status codes.
var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderLocked          = errors.New("order is locked")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrNotOrderOwner        = errors.New("order belongs to another user")
	ErrCancelNotAllowed     = errors.New("order can no longer be cancelled")
	ErrReorderNotAllowed    = errors.New("only completed or cancelled orders can be reordered")
	ErrHistoryEntryNotFound = errors.New("history entry not found")

	ErrEmptyCart          = errors.New("cart is empty")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is not available")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrNotReviewAuthor    = errors.New("review belongs to another user")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidQuantity    = errors.New("quantity must be positive")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
)

// asNotFound translates GORM's record-not-found into a domain sentinel and
// passes any other error through unchanged.
func asNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

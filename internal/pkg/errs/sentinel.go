package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrLessonNotFound = errors.New("lesson not found")

	// Order validation errors
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidName     = errors.New("name must contain letters and spaces only")
	ErrPhoneRequired   = errors.New("phone is required")
	ErrInvalidPhone    = errors.New("phone must contain 10 to 15 digits")
	ErrNoItems         = errors.New("at least one item is required")
	ErrInvalidQuantity = errors.New("item quantity must be at least 1")
	ErrNegativePrice   = errors.New("item price cannot be negative")
	ErrNegativeTotal   = errors.New("total cannot be negative")

	// Operation errors
	ErrStorageFailure = errors.New("storage operation failed")
)

package domain

import "errors"

// Domain errors as sentinel values
var (
	// Lookup errors. A dangling category or seller reference on a product
	// is a consistency violation and always surfaces; dangling attachment
	// and avatar references degrade gracefully instead.
	ErrProductNotFound  = errors.New("product not found")
	ErrSellerNotFound   = errors.New("seller not found")
	ErrCategoryNotFound = errors.New("category not found")

	// Validation errors
	ErrEmptyTitle      = errors.New("product title cannot be empty")
	ErrInvalidCategory = errors.New("product category cannot be empty")

	// Status transition errors
	ErrInvalidStatus    = errors.New("unknown product status")
	ErrSameStatus       = errors.New("product already has the requested status")
	ErrAlreadySold      = errors.New("cancelled product cannot be marked sold")
	ErrAlreadyCancelled = errors.New("sold product cannot be cancelled")
)

// IsNotFound reports whether err is one of the lookup errors. The
// transport layer uses it to map failures to a not-found response
// without inspecting message text.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrSellerNotFound) ||
		errors.Is(err, ErrCategoryNotFound)
}

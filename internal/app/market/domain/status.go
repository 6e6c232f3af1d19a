package domain

// ProductStatus represents the lifecycle status of a product listing.
type ProductStatus string

const (
	StatusAvailable ProductStatus = "available"
	StatusCancelled ProductStatus = "cancelled"
	StatusSold      ProductStatus = "sold"
)

// ParseProductStatus parses a requested status string. Matching is
// case-sensitive; anything but the three known enumerants fails with
// ErrInvalidStatus.
func ParseProductStatus(s string) (ProductStatus, error) {
	switch ProductStatus(s) {
	case StatusAvailable, StatusCancelled, StatusSold:
		return ProductStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// ValidateStatusTransition checks whether a product may move from current
// to requested. It is a pure function with no side effects; every
// status-changing operation must re-check it.
//
// Transition matrix:
//
//	available → sold, cancelled    allowed
//	sold      → available          allowed (re-listing)
//	cancelled → available          allowed (re-listing)
//	cancelled → sold               ErrAlreadySold
//	sold      → cancelled          ErrAlreadyCancelled
//	same      → same               ErrSameStatus
func ValidateStatusTransition(current, requested ProductStatus) error {
	if _, err := ParseProductStatus(string(requested)); err != nil {
		return err
	}
	if requested == current {
		return ErrSameStatus
	}
	if current == StatusCancelled && requested == StatusSold {
		return ErrAlreadySold
	}
	if current == StatusSold && requested == StatusCancelled {
		return ErrAlreadyCancelled
	}
	return nil
}

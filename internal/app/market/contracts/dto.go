package contracts

import "time"

// AttachmentDTO is the outward representation of an uploaded file.
type AttachmentDTO struct {
	AttachmentID string
	URL          string
}

// SellerProfile is the public view of a seller, rebuilt on every read.
// It never carries the seller's credential hash.
type SellerProfile struct {
	SellerID string
	Name     string
	Phone    string
	Email    string
	// Avatar is nil when the seller has no avatar or the reference is
	// dangling.
	Avatar *AttachmentDTO
}

// CategoryDTO is the outward representation of a category.
type CategoryDTO struct {
	CategoryID string
	Title      string
	Slug       string
}

// ProductDetails is the assembled read-model for one product listing:
// the product composed with its owner's public profile, its category and
// its resolved attachments. It is a projection, never persisted.
type ProductDetails struct {
	ProductID   string
	Title       string
	Description string
	PriceCents  int64
	Status      string
	Owner       SellerProfile
	Category    CategoryDTO
	// Attachments preserve the product's own attachment order; dangling
	// references are dropped.
	Attachments []AttachmentDTO
	CreatedAt   time.Time
	UpdatedAt   time.Time
	SoldAt      *time.Time
}

// ListFilter defines filtering options for listing products.
type ListFilter struct {
	CategoryID string
	Status     string
	PageSize   int
}

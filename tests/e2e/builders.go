package e2e

import (
	"github.com/light-bringer/marketline-service/internal/app/market/usecases/create_product"
)

// ListingBuilder helps create product listings for tests with a fluent
// interface.
type ListingBuilder struct {
	sellerID      string
	categoryID    string
	title         string
	description   string
	priceCents    int64
	attachmentIDs []string
}

// NewListingBuilder creates a new builder with default values. Seller and
// category must be set to existing rows.
func NewListingBuilder(sellerID, categoryID string) *ListingBuilder {
	return &ListingBuilder{
		sellerID:    sellerID,
		categoryID:  categoryID,
		title:       "Test Listing",
		description: "Default Description",
		priceCents:  10000,
	}
}

// WithTitle sets the listing title.
func (b *ListingBuilder) WithTitle(title string) *ListingBuilder {
	b.title = title
	return b
}

// WithDescription sets the listing description.
func (b *ListingBuilder) WithDescription(description string) *ListingBuilder {
	b.description = description
	return b
}

// WithPriceCents sets the asking price in cents.
func (b *ListingBuilder) WithPriceCents(priceCents int64) *ListingBuilder {
	b.priceCents = priceCents
	return b
}

// WithAttachments sets the attachment references.
func (b *ListingBuilder) WithAttachments(attachmentIDs ...string) *ListingBuilder {
	b.attachmentIDs = attachmentIDs
	return b
}

// Build creates the create_product.Request.
func (b *ListingBuilder) Build() *create_product.Request {
	return &create_product.Request{
		SellerID:      b.sellerID,
		CategoryID:    b.categoryID,
		Title:         b.title,
		Description:   b.description,
		PriceCents:    b.priceCents,
		AttachmentIDs: b.attachmentIDs,
	}
}

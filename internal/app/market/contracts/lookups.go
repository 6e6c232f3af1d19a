package contracts

import (
	"context"

	"github.com/light-bringer/marketline-service/internal/app/market/domain"
)

// Lookup contracts return (nil, nil) when the entity does not exist.
// Whether a missing entity is an error is the caller's decision: the
// details assembler fails hard on a dangling category or seller but
// silently drops dangling attachments and avatars.

// SellerLookup resolves sellers for read-model assembly.
type SellerLookup interface {
	// GetByID returns the seller or (nil, nil) if absent.
	GetByID(ctx context.Context, sellerID string) (*domain.Seller, error)

	// ListByIDs bulk-resolves distinct seller ids. Missing ids are
	// simply absent from the result.
	ListByIDs(ctx context.Context, sellerIDs []string) ([]*domain.Seller, error)
}

// CategoryLookup resolves categories for read-model assembly.
type CategoryLookup interface {
	// GetByID returns the category or (nil, nil) if absent.
	GetByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListAll returns every category.
	ListAll(ctx context.Context) ([]*domain.Category, error)
}

// AttachmentLookup resolves uploaded attachments for read-model assembly.
type AttachmentLookup interface {
	// GetByID returns the attachment or (nil, nil) if absent.
	GetByID(ctx context.Context, attachmentID string) (*domain.Attachment, error)

	// ListByIDs bulk-resolves attachment ids. Missing ids are simply
	// absent from the result.
	ListByIDs(ctx context.Context, attachmentIDs []string) ([]*domain.Attachment, error)
}

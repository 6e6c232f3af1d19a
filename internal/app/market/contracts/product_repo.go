package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/marketline-service/internal/app/market/domain"
)

// ProductRepository defines the interface for product persistence.
// Repositories return mutations, they don't apply them (Golden Mutation
// Pattern); use cases collect them into a commit plan.
type ProductRepository interface {
	// InsertMut creates a mutation for inserting a new product row
	InsertMut(product *domain.Product) *spanner.Mutation

	// UpdateMut creates a mutation covering only the dirty fields,
	// or nil when nothing changed
	UpdateMut(product *domain.Product) *spanner.Mutation

	// AttachmentMuts creates insert/delete mutations from the net
	// attachment-link deltas staged on the aggregate
	AttachmentMuts(product *domain.Product) []*spanner.Mutation

	// GetByID reconstructs the aggregate, attachment links included.
	// Returns domain.ErrProductNotFound if the row is absent.
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// List loads products matching the filter, newest first
	List(ctx context.Context, filter *ListFilter) ([]*domain.Product, error)

	// ListBySeller loads one seller's products, newest first
	ListBySeller(ctx context.Context, sellerID string) ([]*domain.Product, error)
}

// ProductAttachmentRepository persists product-attachment links.
type ProductAttachmentRepository interface {
	// ListByProductID returns the stored links in insertion order,
	// used to seed the aggregate's watched collection on load
	ListByProductID(ctx context.Context, productID string) ([]domain.ProductAttachment, error)

	// ListByProductIDs bulk-loads the links of a whole listing page,
	// grouped by product id in insertion order
	ListByProductIDs(ctx context.Context, productIDs []string) (map[string][]domain.ProductAttachment, error)

	// InsertMut creates a mutation linking an attachment
	InsertMut(link domain.ProductAttachment) *spanner.Mutation

	// DeleteMut creates a mutation unlinking an attachment
	DeleteMut(link domain.ProductAttachment) *spanner.Mutation
}

package list_seller_products

import (
	"context"
	"fmt"

	"github.com/light-bringer/marketline-service/internal/app/market/assembler"
	"github.com/light-bringer/marketline-service/internal/app/market/contracts"
	"github.com/light-bringer/marketline-service/internal/app/market/domain"
)

// Request identifies the seller whose listings are requested.
type Request struct {
	SellerID string
}

// Query handles the list seller products query.
type Query struct {
	repo    contracts.ProductRepository
	sellers contracts.SellerLookup
	details *assembler.ProductDetails
}

// NewQuery creates a new list seller products query.
func NewQuery(repo contracts.ProductRepository, sellers contracts.SellerLookup, details *assembler.ProductDetails) *Query {
	return &Query{
		repo:    repo,
		sellers: sellers,
		details: details,
	}
}

// Execute resolves the seller once, loads their listings and assembles
// the read-models with the shared owner profile.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ProductDetails, error) {
	seller, err := q.sellers.GetByID(ctx, req.SellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve seller: %w", err)
	}
	if seller == nil {
		return nil, domain.ErrSellerNotFound
	}

	products, err := q.repo.ListBySeller(ctx, req.SellerID)
	if err != nil {
		return nil, err
	}

	return q.details.AssembleManyFromSeller(ctx, products, seller)
}

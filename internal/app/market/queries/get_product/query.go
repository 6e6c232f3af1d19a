package get_product

import (
	"context"

	"github.com/light-bringer/marketline-service/internal/app/market/assembler"
	"github.com/light-bringer/marketline-service/internal/app/market/contracts"
)

// Request contains the product ID to retrieve.
type Request struct {
	ProductID string
}

// Query handles the get product details query.
type Query struct {
	repo    contracts.ProductRepository
	details *assembler.ProductDetails
}

// NewQuery creates a new get product query.
func NewQuery(repo contracts.ProductRepository, details *assembler.ProductDetails) *Query {
	return &Query{
		repo:    repo,
		details: details,
	}
}

// Execute loads the product and assembles its full details read-model.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ProductDetails, error) {
	product, err := q.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	return q.details.Assemble(ctx, product)
}

package list_products

import (
	"context"

	"github.com/light-bringer/marketline-service/internal/app/market/assembler"
	"github.com/light-bringer/marketline-service/internal/app/market/contracts"
	"github.com/light-bringer/marketline-service/internal/app/market/domain"
)

// Request contains filtering options for the listing page.
type Request struct {
	CategoryID string
	Status     string
	PageSize   int
}

// Query handles the list products query.
type Query struct {
	repo    contracts.ProductRepository
	details *assembler.ProductDetails
}

// NewQuery creates a new list products query.
func NewQuery(repo contracts.ProductRepository, details *assembler.ProductDetails) *Query {
	return &Query{
		repo:    repo,
		details: details,
	}
}

// Execute loads the filtered product page and batch-assembles the
// details read-models, newest listing first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ProductDetails, error) {
	if req.Status != "" {
		if _, err := domain.ParseProductStatus(req.Status); err != nil {
			return nil, err
		}
	}

	products, err := q.repo.List(ctx, &contracts.ListFilter{
		CategoryID: req.CategoryID,
		Status:     req.Status,
		PageSize:   req.PageSize,
	})
	if err != nil {
		return nil, err
	}

	return q.details.AssembleMany(ctx, products)
}

package create_product

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/marketline-service/internal/app/market/contracts"
	"github.com/light-bringer/marketline-service/internal/app/market/domain"
	"github.com/light-bringer/marketline-service/internal/pkg/clock"
	"github.com/light-bringer/marketline-service/internal/pkg/committer"
)

// Request contains the data needed to list a product.
type Request struct {
	SellerID      string
	CategoryID    string
	Title         string
	Description   string
	PriceCents    int64
	AttachmentIDs []string
}

// Interactor handles the create product use case.
type Interactor struct {
	repo       contracts.ProductRepository
	sellers    contracts.SellerLookup
	categories contracts.CategoryLookup
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new create product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	sellers contracts.SellerLookup,
	categories contracts.CategoryLookup,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		sellers:    sellers,
		categories: categories,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute lists a new product following the Golden Mutation Pattern:
// the product row, its attachment links and the outbox events commit in
// one atomic plan.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	if err := i.validate(ctx, req); err != nil {
		return "", err
	}

	productID := uuid.New().String()

	product, err := domain.NewProduct(
		productID,
		req.Title,
		req.Description,
		req.CategoryID,
		req.SellerID,
		domain.NewMoney(req.PriceCents),
		i.clock,
	)
	if err != nil {
		return "", err
	}

	for _, attachmentID := range req.AttachmentIDs {
		product.AddAttachment(domain.NewProductAttachment(uuid.New().String(), productID, attachmentID))
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(product))
	plan.AddMultiple(i.repo.AttachmentMuts(product))

	for _, event := range product.DomainEvents() {
		payload, err := serializeEvent(event)
		if err != nil {
			return "", fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return product.ID(), nil
}

// validate checks the request fields and the referenced entities. A
// listing must never be created against a missing seller or category.
func (i *Interactor) validate(ctx context.Context, req *Request) error {
	if req.Title == "" {
		return domain.ErrEmptyTitle
	}
	if req.CategoryID == "" {
		return domain.ErrInvalidCategory
	}

	seller, err := i.sellers.GetByID(ctx, req.SellerID)
	if err != nil {
		return fmt.Errorf("failed to resolve seller: %w", err)
	}
	if seller == nil {
		return domain.ErrSellerNotFound
	}

	category, err := i.categories.GetByID(ctx, req.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to resolve category: %w", err)
	}
	if category == nil {
		return domain.ErrCategoryNotFound
	}

	return nil
}

// serializeEvent converts a domain event to JSON payload.
func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

package update_product

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/marketline-service/internal/app/market/contracts"
	"github.com/light-bringer/marketline-service/internal/app/market/domain"
	"github.com/light-bringer/marketline-service/internal/pkg/committer"
)

// Request contains the data to update a product listing.
// Nil pointer fields mean "no change".
type Request struct {
	ProductID   string
	Title       *string
	Description *string
	CategoryID  *string
	PriceCents  *int64
	// AttachmentIDs, when present, is the complete desired attachment
	// set. The watched collection reconciles it into net link deltas.
	AttachmentIDs *[]string
}

// Interactor handles the update product use case.
type Interactor struct {
	repo       contracts.ProductRepository
	categories contracts.CategoryLookup
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
}

// NewInteractor creates a new update product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	categories contracts.CategoryLookup,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
) *Interactor {
	return &Interactor{
		repo:       repo,
		categories: categories,
		outboxRepo: outboxRepo,
		committer:  committer,
	}
}

// Execute updates a product following the Golden Mutation Pattern. Only
// dirty fields reach the UPDATE mutation and only net attachment deltas
// become link mutations; a no-op request commits nothing.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}

	// Clear events on function exit to prevent duplicates on retry
	defer product.ClearEvents()

	hasChanges := false

	if req.Title != nil {
		if err := product.SetTitle(*req.Title); err != nil {
			return err
		}
		hasChanges = true
	}

	if req.Description != nil {
		product.SetDescription(*req.Description)
		hasChanges = true
	}

	if req.CategoryID != nil {
		category, err := i.categories.GetByID(ctx, *req.CategoryID)
		if err != nil {
			return fmt.Errorf("failed to resolve category: %w", err)
		}
		if category == nil {
			return domain.ErrCategoryNotFound
		}
		if err := product.SetCategory(*req.CategoryID); err != nil {
			return err
		}
		hasChanges = true
	}

	if req.PriceCents != nil {
		product.SetPrice(domain.NewMoney(*req.PriceCents))
		hasChanges = true
	}

	if req.AttachmentIDs != nil {
		target := make([]domain.ProductAttachment, 0, len(*req.AttachmentIDs))
		for _, attachmentID := range *req.AttachmentIDs {
			target = append(target, domain.NewProductAttachment(uuid.New().String(), product.ID(), attachmentID))
		}
		product.ReplaceAttachments(target)
	}

	// Emit a single ProductUpdatedEvent covering all detail changes
	if hasChanges {
		product.MarkUpdated()
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(product))
	plan.AddMultiple(i.repo.AttachmentMuts(product))

	for _, event := range product.DomainEvents() {
		payload, err := serializeEvent(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))
	}

	if plan.IsEmpty() {
		return nil // No changes
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
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

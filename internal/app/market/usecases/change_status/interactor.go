package change_status

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/marketline-service/internal/app/market/contracts"
	"github.com/light-bringer/marketline-service/internal/app/market/domain"
	"github.com/light-bringer/marketline-service/internal/pkg/committer"
)

// Request contains the data to transition a product's status.
type Request struct {
	ProductID string
	Status    string
}

// Interactor handles the change status use case.
type Interactor struct {
	repo       contracts.ProductRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
}

// NewInteractor creates a new change status interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
	}
}

// Execute transitions a product's status. The aggregate enforces the
// transition matrix; the interactor only parses, loads and commits.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	requested, err := domain.ParseProductStatus(req.Status)
	if err != nil {
		return err
	}

	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}

	defer product.ClearEvents()

	if err := product.ChangeStatus(requested); err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(product))

	for _, event := range product.DomainEvents() {
		payload, err := serializeEvent(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))
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

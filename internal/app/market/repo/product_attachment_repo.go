package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/marketline-service/internal/app/market/contracts"
	"github.com/light-bringer/marketline-service/internal/app/market/domain"
	"github.com/light-bringer/marketline-service/internal/models/m_product_attachment"
	"github.com/light-bringer/marketline-service/internal/pkg/query"
)

// ProductAttachmentRepo implements ProductAttachmentRepository for Spanner.
type ProductAttachmentRepo struct {
	client *spanner.Client
	model  *m_product_attachment.Model
}

// NewProductAttachmentRepo creates a new ProductAttachmentRepo.
func NewProductAttachmentRepo(client *spanner.Client) contracts.ProductAttachmentRepository {
	return &ProductAttachmentRepo{
		client: client,
		model:  m_product_attachment.NewModel(),
	}
}

// ListByProductID returns one product's stored links in insertion order.
func (r *ProductAttachmentRepo) ListByProductID(ctx context.Context, productID string) ([]domain.ProductAttachment, error) {
	grouped, err := r.ListByProductIDs(ctx, []string{productID})
	if err != nil {
		return nil, err
	}

	links := grouped[productID]
	if links == nil {
		links = make([]domain.ProductAttachment, 0)
	}
	return links, nil
}

// ListByProductIDs bulk-loads the links of a set of products in one
// query, grouped by product id in insertion order. Products without
// links have no map entry.
func (r *ProductAttachmentRepo) ListByProductIDs(ctx context.Context, productIDs []string) (map[string][]domain.ProductAttachment, error) {
	stmt := query.From(m_product_attachment.TableName).
		Select(m_product_attachment.ReadColumns...).
		Where(query.In(m_product_attachment.ProductID, productIDs)).
		OrderBy(m_product_attachment.CreatedAt, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	links := make(map[string][]domain.ProductAttachment)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate attachment links: %w", err)
		}

		var data m_product_attachment.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse attachment link: %w", err)
		}

		links[data.ProductID] = append(links[data.ProductID], domain.ProductAttachment{
			ID:           data.LinkID,
			ProductID:    data.ProductID,
			AttachmentID: data.AttachmentID,
		})
	}
	return links, nil
}

// InsertMut creates a mutation linking an attachment to a product.
func (r *ProductAttachmentRepo) InsertMut(link domain.ProductAttachment) *spanner.Mutation {
	return r.model.InsertMut(&m_product_attachment.Data{
		LinkID:       link.ID,
		ProductID:    link.ProductID,
		AttachmentID: link.AttachmentID,
	})
}

// DeleteMut creates a mutation unlinking an attachment.
func (r *ProductAttachmentRepo) DeleteMut(link domain.ProductAttachment) *spanner.Mutation {
	return r.model.DeleteMut(link.ID)
}

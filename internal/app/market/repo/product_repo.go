package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/marketline-service/internal/app/market/contracts"
	"github.com/light-bringer/marketline-service/internal/app/market/domain"
	"github.com/light-bringer/marketline-service/internal/models/m_product"
	"github.com/light-bringer/marketline-service/internal/pkg/clock"
	"github.com/light-bringer/marketline-service/internal/pkg/query"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// ProductRepo implements ProductRepository for Spanner. Attachment links
// are persisted and loaded through the ProductAttachmentRepository so
// the link table has a single owner.
type ProductRepo struct {
	client *spanner.Client
	model  *m_product.Model
	links  contracts.ProductAttachmentRepository
	clock  clock.Clock
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client, clk clock.Clock) contracts.ProductRepository {
	return &ProductRepo{
		client: client,
		model:  m_product.NewModel(),
		links:  NewProductAttachmentRepo(client),
		clock:  clk,
	}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) *spanner.Mutation {
	return r.model.InsertMut(r.domainToData(product))
}

// UpdateMut creates a mutation for updating a product (only dirty fields).
func (r *ProductRepo) UpdateMut(product *domain.Product) *spanner.Mutation {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldTitle) {
		updates[m_product.Title] = product.Title()
	}

	if changes.Dirty(domain.FieldDescription) {
		updates[m_product.Description] = product.Description()
	}

	if changes.Dirty(domain.FieldCategory) {
		updates[m_product.CategoryID] = product.CategoryID()
	}

	if changes.Dirty(domain.FieldPrice) {
		updates[m_product.PriceCents] = product.Price().Cents()
	}

	if changes.Dirty(domain.FieldStatus) {
		updates[m_product.Status] = string(product.Status())
	}

	if changes.Dirty(domain.FieldSoldAt) {
		if soldAt := product.SoldAt(); soldAt != nil {
			updates[m_product.SoldAt] = *soldAt
		} else {
			updates[m_product.SoldAt] = spanner.NullTime{}
		}
	}

	if len(updates) == 0 {
		return nil
	}

	return r.model.UpdateMut(product.ID(), updates)
}

// AttachmentMuts creates insert/delete mutations from the net link deltas
// staged on the aggregate. A no-op edit yields an empty slice.
func (r *ProductRepo) AttachmentMuts(product *domain.Product) []*spanner.Mutation {
	added := product.AddedAttachments()
	removed := product.RemovedAttachments()

	muts := make([]*spanner.Mutation, 0, len(added)+len(removed))
	for _, link := range added {
		muts = append(muts, r.links.InsertMut(link))
	}
	for _, link := range removed {
		muts = append(muts, r.links.DeleteMut(link))
	}
	return muts
}

// GetByID retrieves a product by ID, reconstructing the domain aggregate
// with its attachment links seeded as the watched collection snapshot.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{
		m_product.ProductID,
		m_product.SellerID,
		m_product.CategoryID,
		m_product.Title,
		m_product.Description,
		m_product.PriceCents,
		m_product.Status,
		m_product.CreatedAt,
		m_product.UpdatedAt,
		m_product.SoldAt,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	links, err := r.links.ListByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}

	return r.dataToDomain(&data, links), nil
}

// List loads products matching the filter, newest first.
func (r *ProductRepo) List(ctx context.Context, filter *contracts.ListFilter) ([]*domain.Product, error) {
	builder := query.From(m_product.TableName).
		Select(
			m_product.ProductID,
			m_product.SellerID,
			m_product.CategoryID,
			m_product.Title,
			m_product.Description,
			m_product.PriceCents,
			m_product.Status,
			m_product.CreatedAt,
			m_product.UpdatedAt,
			m_product.SoldAt,
		)

	if filter.CategoryID != "" {
		builder = builder.Where(query.Eq(m_product.CategoryID, filter.CategoryID))
	}
	if filter.Status != "" {
		builder = builder.Where(query.Eq(m_product.Status, filter.Status))
	}

	builder = builder.
		OrderBy(m_product.CreatedAt, query.Desc).
		Limit(clampPageSize(filter.PageSize))

	return r.queryProducts(ctx, builder.Build())
}

// ListBySeller loads one seller's products, newest first.
func (r *ProductRepo) ListBySeller(ctx context.Context, sellerID string) ([]*domain.Product, error) {
	stmt := query.From(m_product.TableName).
		Select(
			m_product.ProductID,
			m_product.SellerID,
			m_product.CategoryID,
			m_product.Title,
			m_product.Description,
			m_product.PriceCents,
			m_product.Status,
			m_product.CreatedAt,
			m_product.UpdatedAt,
			m_product.SoldAt,
		).
		Where(query.Eq(m_product.SellerID, sellerID)).
		OrderBy(m_product.CreatedAt, query.Desc).
		Build()

	return r.queryProducts(ctx, stmt)
}

// queryProducts runs a product statement and reconstructs the aggregates,
// bulk-loading the attachment links of the whole page in one query.
func (r *ProductRepo) queryProducts(ctx context.Context, stmt spanner.Statement) ([]*domain.Product, error) {
	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	rows := make([]*m_product.Data, 0, defaultPageSize)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}
		rows = append(rows, &data)
	}

	if len(rows) == 0 {
		return []*domain.Product{}, nil
	}

	productIDs := make([]string, 0, len(rows))
	for _, data := range rows {
		productIDs = append(productIDs, data.ProductID)
	}

	links, err := r.links.ListByProductIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(rows))
	for _, data := range rows {
		products = append(products, r.dataToDomain(data, links[data.ProductID]))
	}
	return products, nil
}

// domainToData converts a domain Product to database Data.
func (r *ProductRepo) domainToData(product *domain.Product) *m_product.Data {
	data := &m_product.Data{
		ProductID:   product.ID(),
		SellerID:    product.SellerID(),
		CategoryID:  product.CategoryID(),
		Title:       product.Title(),
		Description: product.Description(),
		PriceCents:  product.Price().Cents(),
		Status:      string(product.Status()),
	}

	if soldAt := product.SoldAt(); soldAt != nil {
		data.SoldAt = spanner.NullTime{Time: *soldAt, Valid: true}
	}

	return data
}

// dataToDomain converts database Data to a domain Product.
func (r *ProductRepo) dataToDomain(data *m_product.Data, links []domain.ProductAttachment) *domain.Product {
	var soldAt *time.Time
	if data.SoldAt.Valid {
		soldAt = &data.SoldAt.Time
	}

	return domain.ReconstructProduct(
		data.ProductID,
		data.Title,
		data.Description,
		data.CategoryID,
		data.SellerID,
		domain.NewMoney(data.PriceCents),
		domain.ProductStatus(data.Status),
		links,
		data.CreatedAt,
		data.UpdatedAt,
		soldAt,
		r.clock,
	)
}

func clampPageSize(pageSize int) int64 {
	if pageSize <= 0 {
		return defaultPageSize
	}
	if pageSize > maxPageSize {
		return maxPageSize
	}
	return int64(pageSize)
}

package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/marketline-service/internal/app/market/contracts"
	"github.com/light-bringer/marketline-service/internal/app/market/domain"
	"github.com/light-bringer/marketline-service/internal/models/m_category"
	"github.com/light-bringer/marketline-service/internal/pkg/query"
)

// CategoryRepo implements CategoryLookup for Spanner.
type CategoryRepo struct {
	client *spanner.Client
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo(client *spanner.Client) contracts.CategoryLookup {
	return &CategoryRepo{client: client}
}

// GetByID returns the category or (nil, nil) if absent.
func (r *CategoryRepo) GetByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	row, err := r.client.Single().ReadRow(ctx, m_category.TableName, spanner.Key{categoryID}, m_category.ReadColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read category: %w", err)
	}

	var data m_category.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse category: %w", err)
	}

	return dataToCategory(&data), nil
}

// ListAll returns every category, ordered by title. The category set is
// small, so bulk reads load it whole instead of filtering by id.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]*domain.Category, error) {
	stmt := query.From(m_category.TableName).
		Select(m_category.ReadColumns...).
		OrderBy(m_category.Title, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	categories := make([]*domain.Category, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate categories: %w", err)
		}

		var data m_category.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse category: %w", err)
		}
		categories = append(categories, dataToCategory(&data))
	}
	return categories, nil
}

func dataToCategory(data *m_category.Data) *domain.Category {
	return &domain.Category{
		ID:    data.CategoryID,
		Title: data.Title,
		Slug:  data.Slug,
	}
}

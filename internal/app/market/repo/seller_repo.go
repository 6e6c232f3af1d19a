package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/marketline-service/internal/app/market/contracts"
	"github.com/light-bringer/marketline-service/internal/app/market/domain"
	"github.com/light-bringer/marketline-service/internal/models/m_seller"
	"github.com/light-bringer/marketline-service/internal/pkg/query"
)

// SellerRepo implements SellerLookup for Spanner.
type SellerRepo struct {
	client *spanner.Client
}

// NewSellerRepo creates a new SellerRepo.
func NewSellerRepo(client *spanner.Client) contracts.SellerLookup {
	return &SellerRepo{client: client}
}

// GetByID returns the seller or (nil, nil) if absent. Whether a missing
// seller is an error is decided by the caller.
func (r *SellerRepo) GetByID(ctx context.Context, sellerID string) (*domain.Seller, error) {
	row, err := r.client.Single().ReadRow(ctx, m_seller.TableName, spanner.Key{sellerID}, m_seller.ReadColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read seller: %w", err)
	}

	var data m_seller.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse seller: %w", err)
	}

	return dataToSeller(&data), nil
}

// ListByIDs bulk-resolves distinct seller ids in one statement. Missing
// ids are simply absent from the result.
func (r *SellerRepo) ListByIDs(ctx context.Context, sellerIDs []string) ([]*domain.Seller, error) {
	if len(sellerIDs) == 0 {
		return []*domain.Seller{}, nil
	}

	stmt := query.From(m_seller.TableName).
		Select(m_seller.ReadColumns...).
		Where(query.In(m_seller.SellerID, sellerIDs)).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	sellers := make([]*domain.Seller, 0, len(sellerIDs))
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate sellers: %w", err)
		}

		var data m_seller.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse seller: %w", err)
		}
		sellers = append(sellers, dataToSeller(&data))
	}
	return sellers, nil
}

func dataToSeller(data *m_seller.Data) *domain.Seller {
	seller := &domain.Seller{
		ID:           data.SellerID,
		Name:         data.Name,
		Phone:        data.Phone,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
	}
	if data.AvatarID.Valid {
		seller.AvatarID = data.AvatarID.StringVal
	}
	return seller
}

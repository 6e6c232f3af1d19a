package assembler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/marketline-service/internal/app/market/domain"
	"github.com/light-bringer/marketline-service/internal/pkg/clock"
)

func fixtureProduct(t *testing.T, id, sellerID, categoryID string, attachmentIDs ...string) *domain.Product {
	t.Helper()
	now := time.Now().UTC()

	links := make([]domain.ProductAttachment, 0, len(attachmentIDs))
	for i, attID := range attachmentIDs {
		links = append(links, domain.NewProductAttachment(id+"-link-"+string(rune('a'+i)), id, attID))
	}

	return domain.ReconstructProduct(id, "Item "+id, "desc", categoryID, sellerID,
		domain.NewMoney(1500), domain.StatusAvailable, links, now, now, nil, clock.NewMockClock(now))
}

func fixtureLookups() (*fakeSellers, *fakeCategories, *fakeAttachments) {
	sellers := &fakeSellers{byID: map[string]*domain.Seller{
		"seller-1": {ID: "seller-1", Name: "Dana", Email: "dana@example.com", PasswordHash: "hash"},
		"seller-2": {ID: "seller-2", Name: "Kim", Email: "kim@example.com", PasswordHash: "hash", AvatarID: "att-avatar"},
	}}
	categories := &fakeCategories{byID: map[string]*domain.Category{
		"cat-1": {ID: "cat-1", Title: "Bikes", Slug: "bikes"},
		"cat-2": {ID: "cat-2", Title: "Books", Slug: "books"},
	}}
	attachments := &fakeAttachments{byID: map[string]*domain.Attachment{
		"att-1":      {ID: "att-1", URL: "https://cdn.example.com/att-1.jpg"},
		"att-2":      {ID: "att-2", URL: "https://cdn.example.com/att-2.jpg"},
		"att-avatar": {ID: "att-avatar", URL: "https://cdn.example.com/avatar.jpg"},
	}}
	return sellers, categories, attachments
}

func TestProductDetails_Assemble(t *testing.T) {
	ctx := context.Background()

	t.Run("composes product, owner, category and attachments", func(t *testing.T) {
		sellers, categories, attachments := fixtureLookups()
		a := NewProductDetails(sellers, categories, attachments)
		product := fixtureProduct(t, "prod-1", "seller-1", "cat-1", "att-1", "att-2")

		details, err := a.Assemble(ctx, product)
		require.NoError(t, err)

		assert.Equal(t, "prod-1", details.ProductID)
		assert.Equal(t, int64(1500), details.PriceCents)
		assert.Equal(t, "available", details.Status)
		assert.Equal(t, "Dana", details.Owner.Name)
		assert.Equal(t, "bikes", details.Category.Slug)
		require.Len(t, details.Attachments, 2)
		assert.Equal(t, "att-1", details.Attachments[0].AttachmentID)
		assert.Equal(t, "att-2", details.Attachments[1].AttachmentID)
	})

	t.Run("missing seller fails", func(t *testing.T) {
		sellers, categories, attachments := fixtureLookups()
		a := NewProductDetails(sellers, categories, attachments)
		product := fixtureProduct(t, "prod-1", "seller-gone", "cat-1")

		_, err := a.Assemble(ctx, product)
		assert.ErrorIs(t, err, domain.ErrSellerNotFound)
	})

	t.Run("missing category fails", func(t *testing.T) {
		sellers, categories, attachments := fixtureLookups()
		a := NewProductDetails(sellers, categories, attachments)
		product := fixtureProduct(t, "prod-1", "seller-1", "cat-gone")

		_, err := a.Assemble(ctx, product)
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})

	t.Run("dangling attachment is dropped silently", func(t *testing.T) {
		sellers, categories, attachments := fixtureLookups()
		a := NewProductDetails(sellers, categories, attachments)
		product := fixtureProduct(t, "prod-1", "seller-1", "cat-1", "att-1", "att-gone", "att-2")

		details, err := a.Assemble(ctx, product)
		require.NoError(t, err)
		require.Len(t, details.Attachments, 2)
		assert.Equal(t, "att-1", details.Attachments[0].AttachmentID)
		assert.Equal(t, "att-2", details.Attachments[1].AttachmentID)
	})

	t.Run("lookup infrastructure failure propagates", func(t *testing.T) {
		sellers, categories, attachments := fixtureLookups()
		boom := errors.New("spanner unavailable")
		categories.err = boom
		a := NewProductDetails(sellers, categories, attachments)
		product := fixtureProduct(t, "prod-1", "seller-1", "cat-1")

		_, err := a.Assemble(ctx, product)
		assert.ErrorIs(t, err, boom)
	})
}

func TestProductDetails_AssembleMany(t *testing.T) {
	ctx := context.Background()

	t.Run("preserves input order", func(t *testing.T) {
		sellers, categories, attachments := fixtureLookups()
		a := NewProductDetails(sellers, categories, attachments)
		products := []*domain.Product{
			fixtureProduct(t, "prod-3", "seller-1", "cat-1"),
			fixtureProduct(t, "prod-1", "seller-2", "cat-2", "att-1"),
			fixtureProduct(t, "prod-2", "seller-1", "cat-1"),
		}

		details, err := a.AssembleMany(ctx, products)
		require.NoError(t, err)
		require.Len(t, details, 3)
		assert.Equal(t, "prod-3", details[0].ProductID)
		assert.Equal(t, "prod-1", details[1].ProductID)
		assert.Equal(t, "prod-2", details[2].ProductID)
	})

	t.Run("one bulk seller lookup for the whole batch", func(t *testing.T) {
		sellers, categories, attachments := fixtureLookups()
		a := NewProductDetails(sellers, categories, attachments)
		products := []*domain.Product{
			fixtureProduct(t, "prod-1", "seller-1", "cat-1"),
			fixtureProduct(t, "prod-2", "seller-1", "cat-1"),
			fixtureProduct(t, "prod-3", "seller-2", "cat-2"),
		}

		_, err := a.AssembleMany(ctx, products)
		require.NoError(t, err)
		assert.Equal(t, int32(1), sellers.calls)
	})

	t.Run("shared seller reuses one profile", func(t *testing.T) {
		sellers, categories, attachments := fixtureLookups()
		a := NewProductDetails(sellers, categories, attachments)
		products := []*domain.Product{
			fixtureProduct(t, "prod-1", "seller-2", "cat-1"),
			fixtureProduct(t, "prod-2", "seller-2", "cat-1"),
		}

		details, err := a.AssembleMany(ctx, products)
		require.NoError(t, err)
		assert.Equal(t, details[0].Owner, details[1].Owner)
		require.NotNil(t, details[0].Owner.Avatar)
	})

	t.Run("one missing category fails the whole batch", func(t *testing.T) {
		sellers, categories, attachments := fixtureLookups()
		a := NewProductDetails(sellers, categories, attachments)
		products := []*domain.Product{
			fixtureProduct(t, "prod-1", "seller-1", "cat-1"),
			fixtureProduct(t, "prod-2", "seller-1", "cat-gone"),
			fixtureProduct(t, "prod-3", "seller-1", "cat-2"),
		}

		details, err := a.AssembleMany(ctx, products)
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
		assert.Nil(t, details, "no partial result on failure")
	})

	t.Run("one missing seller fails the whole batch", func(t *testing.T) {
		sellers, categories, attachments := fixtureLookups()
		a := NewProductDetails(sellers, categories, attachments)
		products := []*domain.Product{
			fixtureProduct(t, "prod-1", "seller-1", "cat-1"),
			fixtureProduct(t, "prod-2", "seller-gone", "cat-1"),
		}

		details, err := a.AssembleMany(ctx, products)
		assert.ErrorIs(t, err, domain.ErrSellerNotFound)
		assert.Nil(t, details)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		sellers, categories, attachments := fixtureLookups()
		a := NewProductDetails(sellers, categories, attachments)

		details, err := a.AssembleMany(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, details)
	})
}

func TestProductDetails_AssembleManyFromSeller(t *testing.T) {
	ctx := context.Background()

	t.Run("skips the seller lookup entirely", func(t *testing.T) {
		sellers, categories, attachments := fixtureLookups()
		a := NewProductDetails(sellers, categories, attachments)
		seller := &domain.Seller{ID: "seller-1", Name: "Dana", Email: "dana@example.com"}
		products := []*domain.Product{
			fixtureProduct(t, "prod-1", "seller-1", "cat-1", "att-1"),
			fixtureProduct(t, "prod-2", "seller-1", "cat-2"),
		}

		details, err := a.AssembleManyFromSeller(ctx, products, seller)
		require.NoError(t, err)
		require.Len(t, details, 2)
		assert.Equal(t, int32(0), sellers.calls)
		assert.Equal(t, details[0].Owner, details[1].Owner)
	})

	t.Run("nil seller fails", func(t *testing.T) {
		sellers, categories, attachments := fixtureLookups()
		a := NewProductDetails(sellers, categories, attachments)

		_, err := a.AssembleManyFromSeller(ctx, nil, nil)
		assert.ErrorIs(t, err, domain.ErrSellerNotFound)
	})

	t.Run("missing category still fails", func(t *testing.T) {
		sellers, categories, attachments := fixtureLookups()
		a := NewProductDetails(sellers, categories, attachments)
		seller := &domain.Seller{ID: "seller-1", Name: "Dana"}
		products := []*domain.Product{fixtureProduct(t, "prod-1", "seller-1", "cat-gone")}

		_, err := a.AssembleManyFromSeller(ctx, products, seller)
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})
}

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/marketline-service/internal/app/market/domain"
	"github.com/light-bringer/marketline-service/internal/app/market/queries/list_products"
	"github.com/light-bringer/marketline-service/internal/app/market/queries/list_seller_products"
	"github.com/light-bringer/marketline-service/internal/app/market/usecases/change_status"
	"github.com/light-bringer/marketline-service/tests/testutil"
)

func TestListProductsWithFilters(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	sellerID := testutil.CreateTestSeller(t, services.Client, "judy")
	booksID := testutil.CreateTestCategory(t, services.Client, "Books")
	gamesID := testutil.CreateTestCategory(t, services.Client, "Games")

	bookID, err := services.CreateProduct.Execute(ctx(), NewListingBuilder(sellerID, booksID).WithTitle("Novel").Build())
	require.NoError(t, err)
	gameID, err := services.CreateProduct.Execute(ctx(), NewListingBuilder(sellerID, gamesID).WithTitle("Chess Set").Build())
	require.NoError(t, err)

	require.NoError(t, services.ChangeStatus.Execute(ctx(), &change_status.Request{ProductID: gameID, Status: "sold"}))

	// Category filter
	details, err := services.ListProducts.Execute(ctx(), &list_products.Request{CategoryID: booksID})
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, bookID, details[0].ProductID)

	// Status filter
	details, err = services.ListProducts.Execute(ctx(), &list_products.Request{Status: "sold"})
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, gameID, details[0].ProductID)

	// Invalid status is rejected up front
	_, err = services.ListProducts.Execute(ctx(), &list_products.Request{Status: "SOLD"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestListSellerProductsSharesOwnerProfile(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	avatarID := testutil.CreateTestAttachment(t, services.Client, "https://cdn.example.com/avatar.jpg")
	sellerID := testutil.CreateTestSellerWithAvatar(t, services.Client, "ken", avatarID)
	otherSellerID := testutil.CreateTestSeller(t, services.Client, "laura")
	categoryID := testutil.CreateTestCategory(t, services.Client, "Bikes")

	first, err := services.CreateProduct.Execute(ctx(), NewListingBuilder(sellerID, categoryID).WithTitle("Road Bike").Build())
	require.NoError(t, err)
	second, err := services.CreateProduct.Execute(ctx(), NewListingBuilder(sellerID, categoryID).WithTitle("Helmet").Build())
	require.NoError(t, err)
	_, err = services.CreateProduct.Execute(ctx(), NewListingBuilder(otherSellerID, categoryID).WithTitle("Other Listing").Build())
	require.NoError(t, err)

	details, err := services.ListSellerProducts.Execute(ctx(), &list_seller_products.Request{SellerID: sellerID})
	require.NoError(t, err)
	require.Len(t, details, 2)

	// Newest first
	assert.Equal(t, second, details[0].ProductID)
	assert.Equal(t, first, details[1].ProductID)

	for _, d := range details {
		assert.Equal(t, "ken", d.Owner.Name)
		require.NotNil(t, d.Owner.Avatar)
		assert.Equal(t, avatarID, d.Owner.Avatar.AttachmentID)
	}

	_, err = services.ListSellerProducts.Execute(ctx(), &list_seller_products.Request{SellerID: "no-such-seller"})
	assert.ErrorIs(t, err, domain.ErrSellerNotFound)
}

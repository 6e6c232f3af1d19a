package e2e

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/marketline-service/internal/app/market/assembler"
	"github.com/light-bringer/marketline-service/internal/app/market/queries/get_product"
	"github.com/light-bringer/marketline-service/internal/app/market/queries/list_products"
	"github.com/light-bringer/marketline-service/internal/app/market/queries/list_seller_products"
	"github.com/light-bringer/marketline-service/internal/app/market/repo"
	"github.com/light-bringer/marketline-service/internal/app/market/usecases/change_status"
	"github.com/light-bringer/marketline-service/internal/app/market/usecases/create_product"
	"github.com/light-bringer/marketline-service/internal/app/market/usecases/update_product"
	"github.com/light-bringer/marketline-service/internal/pkg/clock"
	"github.com/light-bringer/marketline-service/internal/pkg/committer"
	"github.com/light-bringer/marketline-service/tests/testutil"
)

// Services holds all use cases and queries for E2E tests.
type Services struct {
	// Commands
	CreateProduct *create_product.Interactor
	UpdateProduct *update_product.Interactor
	ChangeStatus  *change_status.Interactor

	// Queries
	GetProduct         *get_product.Query
	ListProducts       *list_products.Query
	ListSellerProducts *list_seller_products.Query

	// Infrastructure
	Clock  clock.Clock
	Client *spanner.Client
}

// setupTest initializes all dependencies for E2E testing.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	clk := clock.NewRealClock()
	comm := committer.NewCommitter(client)

	productRepo := repo.NewProductRepo(client, clk)
	sellerLookup := repo.NewSellerRepo(client)
	categoryLookup := repo.NewCategoryRepo(client)
	attachmentLookup := repo.NewAttachmentRepo(client)
	outboxRepo := repo.NewOutboxRepo(client)

	detailsAssembler := assembler.NewProductDetails(sellerLookup, categoryLookup, attachmentLookup)

	services := &Services{
		CreateProduct:      create_product.NewInteractor(productRepo, sellerLookup, categoryLookup, outboxRepo, comm, clk),
		UpdateProduct:      update_product.NewInteractor(productRepo, categoryLookup, outboxRepo, comm),
		ChangeStatus:       change_status.NewInteractor(productRepo, outboxRepo, comm),
		GetProduct:         get_product.NewQuery(productRepo, detailsAssembler),
		ListProducts:       list_products.NewQuery(productRepo, detailsAssembler),
		ListSellerProducts: list_seller_products.NewQuery(productRepo, sellerLookup, detailsAssembler),
		Clock:              clk,
		Client:             client,
	}

	return services, cleanup
}

// ctx returns a context for testing.
func ctx() context.Context {
	return context.Background()
}

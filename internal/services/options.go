package services

import (
	"context"
	"fmt"

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
	httphandler "github.com/light-bringer/marketline-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	ProductHandler *httphandler.ProductHandler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, spannerDB string) (*ServiceOptions, error) {
	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// Infrastructure
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	// Repositories and lookups
	productRepo := repo.NewProductRepo(spannerClient, clk)
	sellerLookup := repo.NewSellerRepo(spannerClient)
	categoryLookup := repo.NewCategoryRepo(spannerClient)
	attachmentLookup := repo.NewAttachmentRepo(spannerClient)
	outboxRepo := repo.NewOutboxRepo(spannerClient)

	// Read-model assembly
	detailsAssembler := assembler.NewProductDetails(sellerLookup, categoryLookup, attachmentLookup)

	// Command use cases (write operations)
	createProductUseCase := create_product.NewInteractor(productRepo, sellerLookup, categoryLookup, outboxRepo, comm, clk)
	updateProductUseCase := update_product.NewInteractor(productRepo, categoryLookup, outboxRepo, comm)
	changeStatusUseCase := change_status.NewInteractor(productRepo, outboxRepo, comm)

	// Query use cases (read operations)
	getProductQuery := get_product.NewQuery(productRepo, detailsAssembler)
	listProductsQuery := list_products.NewQuery(productRepo, detailsAssembler)
	listSellerProductsQuery := list_seller_products.NewQuery(productRepo, sellerLookup, detailsAssembler)

	productHandler := httphandler.NewProductHandler(
		createProductUseCase,
		updateProductUseCase,
		changeStatusUseCase,
		getProductQuery,
		listProductsQuery,
		listSellerProductsQuery,
	)

	return &ServiceOptions{
		SpannerClient:  spannerClient,
		ProductHandler: productHandler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}

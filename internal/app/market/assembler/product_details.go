package assembler

import (
	"context"
	"fmt"
	"sync"

	"github.com/light-bringer/marketline-service/internal/app/market/contracts"
	"github.com/light-bringer/marketline-service/internal/app/market/domain"
)

// ProductDetails composes a product with its owner's public profile, its
// category and its resolved attachments into one read-model.
//
// The structural relations (seller, category) are mandatory: a dangling
// reference fails the whole assembly with a not-found error. Attachment
// references are decorative and filtered out silently when dangling. The
// asymmetry is deliberate and must not be "fixed" here.
type ProductDetails struct {
	sellers     contracts.SellerLookup
	categories  contracts.CategoryLookup
	attachments contracts.AttachmentLookup
	profiles    *SellerProfile
}

// NewProductDetails creates a product details assembler.
func NewProductDetails(
	sellers contracts.SellerLookup,
	categories contracts.CategoryLookup,
	attachments contracts.AttachmentLookup,
) *ProductDetails {
	return &ProductDetails{
		sellers:     sellers,
		categories:  categories,
		attachments: attachments,
		profiles:    NewSellerProfile(attachments),
	}
}

// Assemble builds the read-model for a single product. The seller,
// category and attachment lookups have no ordering dependency, so they
// are issued concurrently and joined before the not-found checks run.
func (a *ProductDetails) Assemble(ctx context.Context, product *domain.Product) (*contracts.ProductDetails, error) {
	var (
		wg sync.WaitGroup

		seller    *domain.Seller
		sellerErr error

		category    *domain.Category
		categoryErr error

		resolved      []*domain.Attachment
		attachmentErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		seller, sellerErr = a.sellers.GetByID(ctx, product.SellerID())
	}()
	go func() {
		defer wg.Done()
		category, categoryErr = a.categories.GetByID(ctx, product.CategoryID())
	}()
	go func() {
		defer wg.Done()
		resolved, attachmentErr = a.attachments.ListByIDs(ctx, product.AttachmentIDs())
	}()
	wg.Wait()

	if sellerErr != nil {
		return nil, fmt.Errorf("failed to resolve seller: %w", sellerErr)
	}
	if categoryErr != nil {
		return nil, fmt.Errorf("failed to resolve category: %w", categoryErr)
	}
	if attachmentErr != nil {
		return nil, fmt.Errorf("failed to resolve attachments: %w", attachmentErr)
	}

	if seller == nil {
		return nil, domain.ErrSellerNotFound
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}

	owner, err := a.profiles.Assemble(ctx, seller)
	if err != nil {
		return nil, err
	}

	return a.build(product, owner, category, attachmentsByID(resolved)), nil
}

// AssembleMany builds read-models for a batch of products using three
// bulk lookups instead of three per product. The batch fails atomically
// on the first product whose category or seller does not resolve; no
// partial result is returned. Output order matches input order.
func (a *ProductDetails) AssembleMany(ctx context.Context, products []*domain.Product) ([]*contracts.ProductDetails, error) {
	if len(products) == 0 {
		return []*contracts.ProductDetails{}, nil
	}

	var (
		wg sync.WaitGroup

		sellers   []*domain.Seller
		sellerErr error

		categories  []*domain.Category
		categoryErr error

		resolved      []*domain.Attachment
		attachmentErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		sellers, sellerErr = a.sellers.ListByIDs(ctx, distinctSellerIDs(products))
	}()
	go func() {
		defer wg.Done()
		categories, categoryErr = a.categories.ListAll(ctx)
	}()
	go func() {
		defer wg.Done()
		resolved, attachmentErr = a.attachments.ListByIDs(ctx, distinctAttachmentIDs(products))
	}()
	wg.Wait()

	if sellerErr != nil {
		return nil, fmt.Errorf("failed to resolve sellers: %w", sellerErr)
	}
	if categoryErr != nil {
		return nil, fmt.Errorf("failed to resolve categories: %w", categoryErr)
	}
	if attachmentErr != nil {
		return nil, fmt.Errorf("failed to resolve attachments: %w", attachmentErr)
	}

	sellersByID := make(map[string]*domain.Seller, len(sellers))
	for _, s := range sellers {
		sellersByID[s.ID] = s
	}
	categoriesByID := make(map[string]*domain.Category, len(categories))
	for _, c := range categories {
		categoriesByID[c.ID] = c
	}
	attachments := attachmentsByID(resolved)

	// One profile per distinct seller, reused across their products.
	profiles := make(map[string]contracts.SellerProfile, len(sellersByID))

	details := make([]*contracts.ProductDetails, 0, len(products))
	for _, product := range products {
		category, ok := categoriesByID[product.CategoryID()]
		if !ok {
			return nil, domain.ErrCategoryNotFound
		}

		owner, ok := profiles[product.SellerID()]
		if !ok {
			seller, found := sellersByID[product.SellerID()]
			if !found {
				return nil, domain.ErrSellerNotFound
			}
			assembled, err := a.profiles.Assemble(ctx, seller)
			if err != nil {
				return nil, err
			}
			profiles[product.SellerID()] = assembled
			owner = assembled
		}

		details = append(details, a.build(product, owner, category, attachments))
	}

	return details, nil
}

// AssembleManyFromSeller builds read-models for products known to share
// one seller, e.g. a seller's own listings. The seller bulk lookup is
// skipped and the owner profile is built once.
func (a *ProductDetails) AssembleManyFromSeller(ctx context.Context, products []*domain.Product, seller *domain.Seller) ([]*contracts.ProductDetails, error) {
	if seller == nil {
		return nil, domain.ErrSellerNotFound
	}
	if len(products) == 0 {
		return []*contracts.ProductDetails{}, nil
	}

	var (
		wg sync.WaitGroup

		categories  []*domain.Category
		categoryErr error

		resolved      []*domain.Attachment
		attachmentErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		categories, categoryErr = a.categories.ListAll(ctx)
	}()
	go func() {
		defer wg.Done()
		resolved, attachmentErr = a.attachments.ListByIDs(ctx, distinctAttachmentIDs(products))
	}()
	wg.Wait()

	if categoryErr != nil {
		return nil, fmt.Errorf("failed to resolve categories: %w", categoryErr)
	}
	if attachmentErr != nil {
		return nil, fmt.Errorf("failed to resolve attachments: %w", attachmentErr)
	}

	owner, err := a.profiles.Assemble(ctx, seller)
	if err != nil {
		return nil, err
	}

	categoriesByID := make(map[string]*domain.Category, len(categories))
	for _, c := range categories {
		categoriesByID[c.ID] = c
	}
	attachments := attachmentsByID(resolved)

	details := make([]*contracts.ProductDetails, 0, len(products))
	for _, product := range products {
		category, ok := categoriesByID[product.CategoryID()]
		if !ok {
			return nil, domain.ErrCategoryNotFound
		}
		details = append(details, a.build(product, owner, category, attachments))
	}

	return details, nil
}

// build composes the final read-model. Attachments keep the product's own
// order; ids missing from the resolved map are dropped.
func (a *ProductDetails) build(
	product *domain.Product,
	owner contracts.SellerProfile,
	category *domain.Category,
	attachments map[string]*domain.Attachment,
) *contracts.ProductDetails {
	ids := product.AttachmentIDs()
	resolved := make([]contracts.AttachmentDTO, 0, len(ids))
	for _, id := range ids {
		attachment, ok := attachments[id]
		if !ok {
			continue
		}
		resolved = append(resolved, contracts.AttachmentDTO{
			AttachmentID: attachment.ID,
			URL:          attachment.URL,
		})
	}

	return &contracts.ProductDetails{
		ProductID:   product.ID(),
		Title:       product.Title(),
		Description: product.Description(),
		PriceCents:  product.Price().Cents(),
		Status:      string(product.Status()),
		Owner:       owner,
		Category: contracts.CategoryDTO{
			CategoryID: category.ID,
			Title:      category.Title,
			Slug:       category.Slug,
		},
		Attachments: resolved,
		CreatedAt:   product.CreatedAt(),
		UpdatedAt:   product.UpdatedAt(),
		SoldAt:      product.SoldAt(),
	}
}

func attachmentsByID(attachments []*domain.Attachment) map[string]*domain.Attachment {
	byID := make(map[string]*domain.Attachment, len(attachments))
	for _, attachment := range attachments {
		byID[attachment.ID] = attachment
	}
	return byID
}

func distinctSellerIDs(products []*domain.Product) []string {
	seen := make(map[string]bool, len(products))
	ids := make([]string, 0, len(products))
	for _, product := range products {
		if !seen[product.SellerID()] {
			seen[product.SellerID()] = true
			ids = append(ids, product.SellerID())
		}
	}
	return ids
}

func distinctAttachmentIDs(products []*domain.Product) []string {
	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, product := range products {
		for _, id := range product.AttachmentIDs() {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

package domain

import (
	"time"

	"github.com/light-bringer/marketline-service/internal/pkg/clock"
	"github.com/light-bringer/marketline-service/internal/pkg/collection"
)

// Field names for change tracking
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldPrice       = "price"
	FieldStatus      = "status"
	FieldSoldAt      = "sold_at"
)

// Product is the aggregate root for a marketplace listing. Mutators stage
// changes in memory; nothing is persisted until a use case collects the
// dirty fields and attachment deltas into a commit plan.
type Product struct {
	id          string
	title       string
	description string
	categoryID  string
	sellerID    string
	price       Money
	status      ProductStatus
	attachments *collection.Watched[ProductAttachment]
	createdAt   time.Time
	updatedAt   time.Time
	soldAt      *time.Time

	clock clock.Clock

	// Change tracking for optimized repository updates
	changes *ChangeTracker

	// Domain events to be published
	events []DomainEvent
}

// NewProduct creates a new Product aggregate. Status defaults to
// available; the seller reference is immutable after creation. The clock
// stamps the creation time and every later lifecycle timestamp.
func NewProduct(id, title, description, categoryID, sellerID string, price Money, clk clock.Clock) (*Product, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if categoryID == "" {
		return nil, ErrInvalidCategory
	}

	now := clk.Now()
	p := &Product{
		id:          id,
		title:       title,
		description: description,
		categoryID:  categoryID,
		sellerID:    sellerID,
		price:       price,
		status:      StatusAvailable,
		attachments: collection.NewWatched[ProductAttachment](nil),
		createdAt:   now,
		updatedAt:   now,
		clock:       clk,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}

	// Mark all fields as dirty for new product
	p.changes.MarkDirty(FieldTitle)
	p.changes.MarkDirty(FieldDescription)
	p.changes.MarkDirty(FieldCategory)
	p.changes.MarkDirty(FieldPrice)
	p.changes.MarkDirty(FieldStatus)

	p.recordEvent(&ProductListedEvent{
		ProductID:  p.id,
		SellerID:   p.sellerID,
		CategoryID: p.categoryID,
		Title:      p.title,
		PriceCents: p.price.Cents(),
		Status:     string(p.status),
		CreatedAt:  p.createdAt,
	})

	return p, nil
}

// ReconstructProduct reconstitutes a Product from storage. The attachment
// links become the watched collection's snapshot, so subsequent edits
// produce minimal link writes.
func ReconstructProduct(
	id, title, description, categoryID, sellerID string,
	price Money,
	status ProductStatus,
	attachments []ProductAttachment,
	createdAt, updatedAt time.Time,
	soldAt *time.Time,
	clk clock.Clock,
) *Product {
	return &Product{
		id:          id,
		title:       title,
		description: description,
		categoryID:  categoryID,
		sellerID:    sellerID,
		price:       price,
		status:      status,
		attachments: collection.NewWatched(attachments),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		soldAt:      soldAt,
		clock:       clk,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}
}

// Getters
func (p *Product) ID() string                     { return p.id }
func (p *Product) Title() string                  { return p.title }
func (p *Product) Description() string            { return p.description }
func (p *Product) CategoryID() string             { return p.categoryID }
func (p *Product) SellerID() string               { return p.sellerID }
func (p *Product) Price() Money                   { return p.price }
func (p *Product) Status() ProductStatus          { return p.status }
func (p *Product) CreatedAt() time.Time           { return p.createdAt }
func (p *Product) UpdatedAt() time.Time           { return p.updatedAt }
func (p *Product) SoldAt() *time.Time             { return p.soldAt }
func (p *Product) Changes() *ChangeTracker        { return p.changes }
func (p *Product) DomainEvents() []DomainEvent    { return p.events }
func (p *Product) Attachments() []ProductAttachment {
	return p.attachments.Items()
}

// AttachmentIDs returns the referenced attachment ids in collection order.
func (p *Product) AttachmentIDs() []string {
	items := p.attachments.Items()
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.AttachmentID)
	}
	return ids
}

// AddedAttachments returns links added since the product was loaded.
func (p *Product) AddedAttachments() []ProductAttachment {
	return p.attachments.Added()
}

// RemovedAttachments returns links removed since the product was loaded.
func (p *Product) RemovedAttachments() []ProductAttachment {
	return p.attachments.Removed()
}

// SetTitle updates the listing title.
func (p *Product) SetTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	p.title = title
	p.changes.MarkDirty(FieldTitle)
	return nil
}

// SetDescription updates the listing description.
func (p *Product) SetDescription(description string) {
	p.description = description
	p.changes.MarkDirty(FieldDescription)
}

// SetCategory updates the category reference.
func (p *Product) SetCategory(categoryID string) error {
	if categoryID == "" {
		return ErrInvalidCategory
	}
	p.categoryID = categoryID
	p.changes.MarkDirty(FieldCategory)
	return nil
}

// SetPrice updates the asking price.
func (p *Product) SetPrice(price Money) {
	p.price = price
	p.changes.MarkDirty(FieldPrice)
}

// ChangeStatus validates and applies a status transition. The transition
// rules are enforced here so no caller can bypass them. Marking a product
// sold stamps soldAt; re-listing clears it.
func (p *Product) ChangeStatus(requested ProductStatus) error {
	if err := ValidateStatusTransition(p.status, requested); err != nil {
		return err
	}

	now := p.clock.Now()
	old := p.status
	p.status = requested
	p.changes.MarkDirty(FieldStatus)

	switch requested {
	case StatusSold:
		p.soldAt = &now
		p.changes.MarkDirty(FieldSoldAt)
	case StatusAvailable:
		if p.soldAt != nil {
			p.soldAt = nil
			p.changes.MarkDirty(FieldSoldAt)
		}
	}

	p.recordEvent(&ProductStatusChangedEvent{
		ProductID: p.id,
		OldStatus: string(old),
		NewStatus: string(requested),
		ChangedAt: now,
	})

	return nil
}

// ReplaceAttachments reconciles the attachment set against the desired
// target links. Links are re-keyed to this product before reconciling so
// the collection never holds a link for another product.
func (p *Product) ReplaceAttachments(target []ProductAttachment) {
	owned := make([]ProductAttachment, 0, len(target))
	for _, link := range target {
		link.ProductID = p.id
		owned = append(owned, link)
	}
	p.attachments.Update(owned)

	if !p.attachments.HasChanges() {
		return
	}

	p.recordEvent(&ProductAttachmentsReplacedEvent{
		ProductID:            p.id,
		AddedAttachmentIDs:   attachmentIDs(p.attachments.Added()),
		RemovedAttachmentIDs: attachmentIDs(p.attachments.Removed()),
		UpdatedAt:            p.clock.Now(),
	})
}

// AddAttachment links one attachment to the product.
func (p *Product) AddAttachment(link ProductAttachment) {
	link.ProductID = p.id
	p.attachments.Add(link)
}

// RemoveAttachment unlinks one attachment from the product.
func (p *Product) RemoveAttachment(link ProductAttachment) {
	link.ProductID = p.id
	p.attachments.Remove(link)
}

// MarkUpdated stamps updatedAt from the clock and emits a single
// ProductUpdatedEvent covering all staged detail changes.
func (p *Product) MarkUpdated() {
	now := p.clock.Now()
	p.updatedAt = now
	p.recordEvent(&ProductUpdatedEvent{
		ProductID:   p.id,
		Title:       p.title,
		Description: p.description,
		CategoryID:  p.categoryID,
		PriceCents:  p.price.Cents(),
		UpdatedAt:   now,
	})
}

// IsAvailable returns true if the product can currently be bought.
func (p *Product) IsAvailable() bool {
	return p.status == StatusAvailable
}

// recordEvent adds a domain event to the list of events.
func (p *Product) recordEvent(event DomainEvent) {
	p.events = append(p.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}

func attachmentIDs(links []ProductAttachment) []string {
	ids := make([]string, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.AttachmentID)
	}
	return ids
}

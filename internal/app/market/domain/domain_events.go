package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ProductListedEvent is emitted when a product is created.
type ProductListedEvent struct {
	ProductID  string
	SellerID   string
	CategoryID string
	Title      string
	PriceCents int64
	Status     string
	CreatedAt  time.Time
}

func (e *ProductListedEvent) EventType() string {
	return "product.listed"
}

func (e *ProductListedEvent) AggregateID() string {
	return e.ProductID
}

// ProductUpdatedEvent is emitted when listing details change.
type ProductUpdatedEvent struct {
	ProductID   string
	Title       string
	Description string
	CategoryID  string
	PriceCents  int64
	UpdatedAt   time.Time
}

func (e *ProductUpdatedEvent) EventType() string {
	return "product.updated"
}

func (e *ProductUpdatedEvent) AggregateID() string {
	return e.ProductID
}

// ProductStatusChangedEvent is emitted on every legal status transition.
type ProductStatusChangedEvent struct {
	ProductID string
	OldStatus string
	NewStatus string
	ChangedAt time.Time
}

func (e *ProductStatusChangedEvent) EventType() string {
	return "product.status_changed"
}

func (e *ProductStatusChangedEvent) AggregateID() string {
	return e.ProductID
}

// ProductAttachmentsReplacedEvent is emitted when the attachment set is
// reconciled against a new target list. Only net changes are reported.
type ProductAttachmentsReplacedEvent struct {
	ProductID            string
	AddedAttachmentIDs   []string
	RemovedAttachmentIDs []string
	UpdatedAt            time.Time
}

func (e *ProductAttachmentsReplacedEvent) EventType() string {
	return "product.attachments_replaced"
}

func (e *ProductAttachmentsReplacedEvent) AggregateID() string {
	return e.ProductID
}

package domain

// Attachment is an uploaded file referenced by products and seller
// avatars. Upload and storage live outside this service; only the
// reference is resolved here.
type Attachment struct {
	ID  string
	URL string
}

// ProductAttachment links a product to one of its attachments. It is the
// item type of the product's watched attachment collection.
type ProductAttachment struct {
	ID           string
	ProductID    string
	AttachmentID string
}

// NewProductAttachment creates a link row for a product.
func NewProductAttachment(id, productID, attachmentID string) ProductAttachment {
	return ProductAttachment{
		ID:           id,
		ProductID:    productID,
		AttachmentID: attachmentID,
	}
}

// EqualTo compares two links by domain identity: shared row id, or the
// same product/attachment pair. Reference identity is never used.
func (a ProductAttachment) EqualTo(other ProductAttachment) bool {
	if a.ID != "" && a.ID == other.ID {
		return true
	}
	return a.ProductID == other.ProductID && a.AttachmentID == other.AttachmentID
}

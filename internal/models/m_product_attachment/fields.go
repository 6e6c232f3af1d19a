package m_product_attachment

// Field name constants for the product_attachments link table.
const (
	TableName = "product_attachments"

	LinkID       = "link_id"
	ProductID    = "product_id"
	AttachmentID = "attachment_id"
	CreatedAt    = "created_at"
)

// ReadColumns are the columns loaded when seeding a product's watched
// attachment collection.
var ReadColumns = []string{
	LinkID,
	ProductID,
	AttachmentID,
}

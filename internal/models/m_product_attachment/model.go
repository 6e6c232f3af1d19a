package m_product_attachment

import (
	"cloud.google.com/go/spanner"
)

// Data represents the database model for the product_attachments table.
type Data struct {
	LinkID       string
	ProductID    string
	AttachmentID string
}

// Model provides a facade for type-safe operations on the
// product_attachments table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for linking an attachment to a
// product. InsertOrUpdate keeps re-linking idempotent.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{LinkID, ProductID, AttachmentID, CreatedAt},
		[]interface{}{data.LinkID, data.ProductID, data.AttachmentID, spanner.CommitTimestamp},
	)
}

// DeleteMut creates a Spanner mutation for unlinking an attachment.
func (m *Model) DeleteMut(linkID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{linkID})
}

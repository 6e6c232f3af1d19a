package m_attachment

import (
	"cloud.google.com/go/spanner"
)

// Data represents the database model for the attachments table.
type Data struct {
	AttachmentID string
	URL          string
}

// Model provides a facade for type-safe operations on the attachments table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an attachment.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{AttachmentID, URL, CreatedAt},
		[]interface{}{data.AttachmentID, data.URL, spanner.CommitTimestamp},
	)
}

// DeleteMut creates a Spanner mutation for deleting an attachment.
func (m *Model) DeleteMut(attachmentID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{attachmentID})
}

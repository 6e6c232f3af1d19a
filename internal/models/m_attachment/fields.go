package m_attachment

// Field name constants for the attachments table.
const (
	TableName = "attachments"

	AttachmentID = "attachment_id"
	URL          = "url"
	CreatedAt    = "created_at"
)

// ReadColumns are the columns loaded for attachment lookups.
var ReadColumns = []string{
	AttachmentID,
	URL,
}

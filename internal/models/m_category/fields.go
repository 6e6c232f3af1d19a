package m_category

// Field name constants for the categories table.
const (
	TableName = "categories"

	CategoryID = "category_id"
	Title      = "title"
	Slug       = "slug"
)

// ReadColumns are the columns loaded for category lookups.
var ReadColumns = []string{
	CategoryID,
	Title,
	Slug,
}

package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID   = "product_id"
	SellerID    = "seller_id"
	CategoryID  = "category_id"
	Title       = "title"
	Description = "description"
	PriceCents  = "price_cents"
	Status      = "status"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"
	SoldAt      = "sold_at"
)

package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
type Data struct {
	ProductID   string
	SellerID    string
	CategoryID  string
	Title       string
	Description string
	PriceCents  int64
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	SoldAt      spanner.NullTime
}

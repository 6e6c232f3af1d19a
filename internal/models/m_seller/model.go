package m_seller

import (
	"cloud.google.com/go/spanner"
)

// Data represents the database model for the sellers table.
type Data struct {
	SellerID     string
	Name         string
	Phone        string
	Email        string
	PasswordHash string
	AvatarID     spanner.NullString
}

// Model provides a facade for type-safe operations on the sellers table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a seller.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{SellerID, Name, Phone, Email, PasswordHash, AvatarID, CreatedAt},
		[]interface{}{
			data.SellerID,
			data.Name,
			data.Phone,
			data.Email,
			data.PasswordHash,
			data.AvatarID,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a seller.
func (m *Model) DeleteMut(sellerID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{sellerID})
}

package m_seller

// Field name constants for the sellers table.
const (
	TableName = "sellers"

	SellerID     = "seller_id"
	Name         = "name"
	Phone        = "phone"
	Email        = "email"
	PasswordHash = "password_hash"
	AvatarID     = "avatar_id"
	CreatedAt    = "created_at"
)

// ReadColumns are the columns loaded for seller lookups.
var ReadColumns = []string{
	SellerID,
	Name,
	Phone,
	Email,
	PasswordHash,
	AvatarID,
}

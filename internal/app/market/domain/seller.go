package domain

// Seller is the owning account of product listings. The credential hash
// is only ever read by the authentication layer; read-model assembly
// must never copy it into an outward-facing profile.
type Seller struct {
	ID           string
	Name         string
	Phone        string
	Email        string
	PasswordHash string
	// AvatarID references an attachment; empty means no avatar.
	AvatarID string
}

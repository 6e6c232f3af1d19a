package assembler

import (
	"context"
	"fmt"

	"github.com/light-bringer/marketline-service/internal/app/market/contracts"
	"github.com/light-bringer/marketline-service/internal/app/market/domain"
)

// SellerProfile assembles the public view of a seller. The avatar is a
// decorative relation: an absent or dangling avatar reference degrades to
// a nil field rather than an error. The seller's credential hash is never
// copied into the profile.
type SellerProfile struct {
	attachments contracts.AttachmentLookup
}

// NewSellerProfile creates a seller profile assembler.
func NewSellerProfile(attachments contracts.AttachmentLookup) *SellerProfile {
	return &SellerProfile{
		attachments: attachments,
	}
}

// Assemble builds the public profile for one seller. The only failure
// mode is an attachment lookup infrastructure error; a missing avatar is
// absorbed.
func (a *SellerProfile) Assemble(ctx context.Context, seller *domain.Seller) (contracts.SellerProfile, error) {
	profile := contracts.SellerProfile{
		SellerID: seller.ID,
		Name:     seller.Name,
		Phone:    seller.Phone,
		Email:    seller.Email,
	}

	if seller.AvatarID == "" {
		return profile, nil
	}

	avatar, err := a.attachments.GetByID(ctx, seller.AvatarID)
	if err != nil {
		return contracts.SellerProfile{}, fmt.Errorf("failed to resolve avatar: %w", err)
	}
	if avatar != nil {
		profile.Avatar = &contracts.AttachmentDTO{
			AttachmentID: avatar.ID,
			URL:          avatar.URL,
		}
	}

	return profile, nil
}

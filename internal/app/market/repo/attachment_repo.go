package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/marketline-service/internal/app/market/contracts"
	"github.com/light-bringer/marketline-service/internal/app/market/domain"
	"github.com/light-bringer/marketline-service/internal/models/m_attachment"
	"github.com/light-bringer/marketline-service/internal/pkg/query"
)

// AttachmentRepo implements AttachmentLookup for Spanner.
type AttachmentRepo struct {
	client *spanner.Client
}

// NewAttachmentRepo creates a new AttachmentRepo.
func NewAttachmentRepo(client *spanner.Client) contracts.AttachmentLookup {
	return &AttachmentRepo{client: client}
}

// GetByID returns the attachment or (nil, nil) if absent.
func (r *AttachmentRepo) GetByID(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	row, err := r.client.Single().ReadRow(ctx, m_attachment.TableName, spanner.Key{attachmentID}, m_attachment.ReadColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}

	var data m_attachment.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse attachment: %w", err)
	}

	return &domain.Attachment{ID: data.AttachmentID, URL: data.URL}, nil
}

// ListByIDs bulk-resolves attachment ids in one statement. Missing ids
// are simply absent from the result.
func (r *AttachmentRepo) ListByIDs(ctx context.Context, attachmentIDs []string) ([]*domain.Attachment, error) {
	if len(attachmentIDs) == 0 {
		return []*domain.Attachment{}, nil
	}

	stmt := query.From(m_attachment.TableName).
		Select(m_attachment.ReadColumns...).
		Where(query.In(m_attachment.AttachmentID, attachmentIDs)).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	attachments := make([]*domain.Attachment, 0, len(attachmentIDs))
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate attachments: %w", err)
		}

		var data m_attachment.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse attachment: %w", err)
		}
		attachments = append(attachments, &domain.Attachment{ID: data.AttachmentID, URL: data.URL})
	}
	return attachments, nil
}

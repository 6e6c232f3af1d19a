package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/marketline-service/internal/app/market/domain"
	"github.com/light-bringer/marketline-service/internal/models/m_attachment"
	"github.com/light-bringer/marketline-service/internal/models/m_category"
	"github.com/light-bringer/marketline-service/internal/models/m_outbox"
	"github.com/light-bringer/marketline-service/internal/models/m_product"
	"github.com/light-bringer/marketline-service/internal/models/m_product_attachment"
	"github.com/light-bringer/marketline-service/internal/models/m_seller"
)

// CreateTestSeller creates a seller row and returns its id.
func CreateTestSeller(t *testing.T, client *spanner.Client, name string) string {
	t.Helper()
	return createSeller(t, client, name, spanner.NullString{})
}

// CreateTestSellerWithAvatar creates a seller row referencing an avatar
// attachment.
func CreateTestSellerWithAvatar(t *testing.T, client *spanner.Client, name, avatarID string) string {
	t.Helper()
	return createSeller(t, client, name, spanner.NullString{StringVal: avatarID, Valid: true})
}

func createSeller(t *testing.T, client *spanner.Client, name string, avatarID spanner.NullString) string {
	t.Helper()

	ctx := context.Background()
	sellerID := uuid.New().String()

	data := &m_seller.Data{
		SellerID:     sellerID,
		Name:         name,
		Phone:        "+1-555-0100",
		Email:        name + "@example.com",
		PasswordHash: "$2a$10$test-hash",
		AvatarID:     avatarID,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{m_seller.NewModel().InsertMut(data)})
	require.NoError(t, err, "failed to create test seller")

	return sellerID
}

// CreateTestCategory creates a category row and returns its id.
func CreateTestCategory(t *testing.T, client *spanner.Client, title string) string {
	t.Helper()

	ctx := context.Background()
	categoryID := uuid.New().String()

	data := &m_category.Data{
		CategoryID: categoryID,
		Title:      title,
		Slug:       domain.Slugify(title),
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{m_category.NewModel().InsertMut(data)})
	require.NoError(t, err, "failed to create test category")

	return categoryID
}

// CreateTestAttachment creates an attachment row and returns its id.
func CreateTestAttachment(t *testing.T, client *spanner.Client, url string) string {
	t.Helper()

	ctx := context.Background()
	attachmentID := uuid.New().String()

	data := &m_attachment.Data{
		AttachmentID: attachmentID,
		URL:          url,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{m_attachment.NewModel().InsertMut(data)})
	require.NoError(t, err, "failed to create test attachment")

	return attachmentID
}

// CreateTestProduct creates an available product row and returns its id.
func CreateTestProduct(t *testing.T, client *spanner.Client, sellerID, categoryID, title string) string {
	t.Helper()
	return CreateTestProductWithStatus(t, client, sellerID, categoryID, title, "available")
}

// CreateTestProductWithStatus creates a product row with a specific status.
func CreateTestProductWithStatus(t *testing.T, client *spanner.Client, sellerID, categoryID, title, status string) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()

	data := &m_product.Data{
		ProductID:   productID,
		SellerID:    sellerID,
		CategoryID:  categoryID,
		Title:       title,
		Description: "Test product description",
		PriceCents:  12500,
		Status:      status,
	}
	if status == "sold" {
		data.SoldAt = spanner.NullTime{Time: time.Now().UTC(), Valid: true}
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{m_product.NewModel().InsertMut(data)})
	require.NoError(t, err, "failed to create test product")

	return productID
}

// LinkTestAttachment links an attachment to a product and returns the
// link id.
func LinkTestAttachment(t *testing.T, client *spanner.Client, productID, attachmentID string) string {
	t.Helper()

	ctx := context.Background()
	linkID := uuid.New().String()

	data := &m_product_attachment.Data{
		LinkID:       linkID,
		ProductID:    productID,
		AttachmentID: attachmentID,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{m_product_attachment.NewModel().InsertMut(data)})
	require.NoError(t, err, "failed to link test attachment")

	return linkID
}

// GetProductByID retrieves a product row for verification.
func GetProductByID(t *testing.T, client *spanner.Client, productID string) *m_product.Data {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{
		m_product.ProductID,
		m_product.SellerID,
		m_product.CategoryID,
		m_product.Title,
		m_product.Description,
		m_product.PriceCents,
		m_product.Status,
		m_product.CreatedAt,
		m_product.UpdatedAt,
		m_product.SoldAt,
	})
	require.NoError(t, err, "failed to get product by id")

	var data m_product.Data
	err = row.ToStruct(&data)
	require.NoError(t, err, "failed to parse product data")

	return &data
}

// ListLinkedAttachmentIDs returns the attachment ids linked to a product
// in insertion order.
func ListLinkedAttachmentIDs(t *testing.T, client *spanner.Client, productID string) []string {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL: "SELECT attachment_id FROM product_attachments WHERE product_id = @productID ORDER BY created_at",
		Params: map[string]interface{}{
			"productID": productID,
		},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	ids := make([]string, 0)
	for {
		row, err := iter.Next()
		if err != nil {
			break
		}
		var id string
		require.NoError(t, row.Columns(&id))
		ids = append(ids, id)
	}
	return ids
}

// AssertOutboxEvent verifies an outbox event exists with the given event type.
func AssertOutboxEvent(t *testing.T, client *spanner.Client, eventType string) {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL:    "SELECT event_id FROM outbox_events WHERE event_type = @eventType",
		Params: map[string]interface{}{"eventType": eventType},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "outbox event not found for type: %s", eventType)
	require.NotNil(t, row, "outbox event not found for type: %s", eventType)
}

// AssertOutboxEventCount verifies the count of outbox events.
func AssertOutboxEventCount(t *testing.T, client *spanner.Client, expectedCount int) {
	t.Helper()
	AssertRowCount(t, client, m_outbox.TableName, expectedCount)
}

// CreateTestOutboxEvent creates a pending outbox event row.
func CreateTestOutboxEvent(t *testing.T, client *spanner.Client, eventType string, aggregateID string) string {
	t.Helper()

	ctx := context.Background()
	eventID := uuid.New().String()

	data := &m_outbox.Data{
		EventID:     eventID,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     spanner.NullJSON{Value: `{"test": "data"}`, Valid: true},
		Status:      m_outbox.StatusPending,
		RetryCount:  0,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{m_outbox.NewModel().InsertMut(data)})
	require.NoError(t, err, "failed to create test outbox event")

	return eventID
}

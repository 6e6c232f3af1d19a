//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/marketline-service/internal/app/market/domain"
	"github.com/light-bringer/marketline-service/internal/app/market/repo"
	"github.com/light-bringer/marketline-service/tests/testutil"
)

func TestOutboxRepository_EnrichAndInsert(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	outbox := repo.NewOutboxRepo(client)

	event := &domain.ProductStatusChangedEvent{
		ProductID: "prod-1",
		OldStatus: "available",
		NewStatus: "sold",
		ChangedAt: time.Now().UTC(),
	}

	enriched := outbox.EnrichEvent(event, `{"product_id":"prod-1"}`)
	require.NotEmpty(t, enriched.EventID)
	assert.Equal(t, "product.status_changed", enriched.EventType)
	assert.Equal(t, "prod-1", enriched.AggregateID)
	assert.Equal(t, "pending", enriched.Status)

	_, err := client.Apply(ctx, []*spanner.Mutation{outbox.InsertMut(enriched)})
	require.NoError(t, err)

	testutil.AssertOutboxEvent(t, client, "product.status_changed")
	testutil.AssertOutboxEventCount(t, client, 1)
}

func TestOutboxRepository_EmptyPayloadStoredAsNull(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	outbox := repo.NewOutboxRepo(client)

	event := &domain.ProductListedEvent{ProductID: "prod-2"}
	enriched := outbox.EnrichEvent(event, "")

	_, err := client.Apply(ctx, []*spanner.Mutation{outbox.InsertMut(enriched)})
	require.NoError(t, err)

	testutil.AssertOutboxEventCount(t, client, 1)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/marketline-service/internal/pkg/clock"
)

func newTestProduct(t *testing.T, clk clock.Clock) *Product {
	t.Helper()
	p, err := NewProduct("prod-1", "Road bike", "Barely used", "cat-1", "seller-1", NewMoney(45000), clk)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	now := time.Now().UTC()

	t.Run("defaults to available", func(t *testing.T) {
		p := newTestProduct(t, clock.NewMockClock(now))

		assert.Equal(t, StatusAvailable, p.Status())
		assert.Equal(t, "seller-1", p.SellerID())
		assert.Empty(t, p.Attachments())
		assert.Nil(t, p.SoldAt())
	})

	t.Run("stamps creation time from the clock", func(t *testing.T) {
		p := newTestProduct(t, clock.NewMockClock(now))

		assert.Equal(t, now, p.CreatedAt())
		assert.Equal(t, now, p.UpdatedAt())
	})

	t.Run("marks all fields dirty", func(t *testing.T) {
		p := newTestProduct(t, clock.NewMockClock(now))

		for _, field := range []string{FieldTitle, FieldDescription, FieldCategory, FieldPrice, FieldStatus} {
			assert.True(t, p.Changes().Dirty(field), field)
		}
	})

	t.Run("emits listed event", func(t *testing.T) {
		p := newTestProduct(t, clock.NewMockClock(now))

		events := p.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "product.listed", events[0].EventType())
		assert.Equal(t, "prod-1", events[0].AggregateID())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewProduct("id", "", "", "cat-1", "seller-1", NewMoney(100), clock.NewMockClock(now))
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("rejects empty category", func(t *testing.T) {
		_, err := NewProduct("id", "Title", "", "", "seller-1", NewMoney(100), clock.NewMockClock(now))
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})
}

func TestReconstructProduct_StartsClean(t *testing.T) {
	now := time.Now().UTC()
	links := []ProductAttachment{
		NewProductAttachment("link-1", "prod-1", "att-1"),
		NewProductAttachment("link-2", "prod-1", "att-2"),
	}

	p := ReconstructProduct("prod-1", "Road bike", "Barely used", "cat-1", "seller-1",
		NewMoney(45000), StatusAvailable, links, now, now, nil, clock.NewMockClock(now))

	assert.False(t, p.Changes().HasChanges())
	assert.Empty(t, p.DomainEvents())
	assert.Empty(t, p.AddedAttachments())
	assert.Equal(t, []string{"att-1", "att-2"}, p.AttachmentIDs())
}

func TestProduct_Setters(t *testing.T) {
	now := time.Now().UTC()

	t.Run("stage changes and mark dirty fields", func(t *testing.T) {
		p := ReconstructProduct("prod-1", "Old", "", "cat-1", "seller-1",
			NewMoney(100), StatusAvailable, nil, now, now, nil, clock.NewMockClock(now))

		require.NoError(t, p.SetTitle("New title"))
		p.SetDescription("New description")
		require.NoError(t, p.SetCategory("cat-2"))
		p.SetPrice(NewMoney(200))

		assert.Equal(t, "New title", p.Title())
		assert.Equal(t, "cat-2", p.CategoryID())
		assert.True(t, p.Changes().Dirty(FieldTitle))
		assert.True(t, p.Changes().Dirty(FieldDescription))
		assert.True(t, p.Changes().Dirty(FieldCategory))
		assert.True(t, p.Changes().Dirty(FieldPrice))
		assert.False(t, p.Changes().Dirty(FieldStatus))
	})

	t.Run("validation failures leave state untouched", func(t *testing.T) {
		p := ReconstructProduct("prod-1", "Old", "", "cat-1", "seller-1",
			NewMoney(100), StatusAvailable, nil, now, now, nil, clock.NewMockClock(now))

		assert.ErrorIs(t, p.SetTitle(""), ErrEmptyTitle)
		assert.ErrorIs(t, p.SetCategory(""), ErrInvalidCategory)
		assert.Equal(t, "Old", p.Title())
		assert.Equal(t, "cat-1", p.CategoryID())
		assert.False(t, p.Changes().HasChanges())
	})
}

func TestProduct_ChangeStatus(t *testing.T) {
	now := time.Now().UTC()

	t.Run("available to sold stamps soldAt from the clock", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		p := newTestProduct(t, clk)
		p.ClearEvents()

		clk.Advance(time.Hour)
		require.NoError(t, p.ChangeStatus(StatusSold))

		assert.Equal(t, StatusSold, p.Status())
		require.NotNil(t, p.SoldAt())
		assert.Equal(t, now.Add(time.Hour), *p.SoldAt())
		assert.True(t, p.Changes().Dirty(FieldSoldAt))

		events := p.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "product.status_changed", events[0].EventType())
	})

	t.Run("repeated request is rejected", func(t *testing.T) {
		p := newTestProduct(t, clock.NewMockClock(now))
		require.NoError(t, p.ChangeStatus(StatusSold))

		err := p.ChangeStatus(StatusSold)
		assert.ErrorIs(t, err, ErrSameStatus)
		assert.Equal(t, StatusSold, p.Status())
	})

	t.Run("re-listing clears soldAt", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		p := newTestProduct(t, clk)
		require.NoError(t, p.ChangeStatus(StatusSold))

		clk.Advance(time.Hour)
		require.NoError(t, p.ChangeStatus(StatusAvailable))
		assert.Nil(t, p.SoldAt())
	})

	t.Run("cancelled product cannot be sold", func(t *testing.T) {
		p := newTestProduct(t, clock.NewMockClock(now))
		require.NoError(t, p.ChangeStatus(StatusCancelled))

		err := p.ChangeStatus(StatusSold)
		assert.ErrorIs(t, err, ErrAlreadySold)
		assert.Equal(t, StatusCancelled, p.Status())
	})

	t.Run("sold product cannot be cancelled", func(t *testing.T) {
		p := newTestProduct(t, clock.NewMockClock(now))
		require.NoError(t, p.ChangeStatus(StatusSold))

		err := p.ChangeStatus(StatusCancelled)
		assert.ErrorIs(t, err, ErrAlreadyCancelled)
	})

	t.Run("rejected transition emits no event", func(t *testing.T) {
		p := newTestProduct(t, clock.NewMockClock(now))
		p.ClearEvents()

		_ = p.ChangeStatus(StatusAvailable)
		assert.Empty(t, p.DomainEvents())
	})
}

func TestProduct_ReplaceAttachments(t *testing.T) {
	now := time.Now().UTC()
	initial := []ProductAttachment{
		NewProductAttachment("link-a", "prod-1", "att-a"),
		NewProductAttachment("link-b", "prod-1", "att-b"),
	}

	t.Run("computes link deltas", func(t *testing.T) {
		p := ReconstructProduct("prod-1", "Bike", "", "cat-1", "seller-1",
			NewMoney(100), StatusAvailable, initial, now, now, nil, clock.NewMockClock(now))

		p.ReplaceAttachments([]ProductAttachment{
			NewProductAttachment("link-c", "prod-1", "att-c"),
			NewProductAttachment("link-a", "prod-1", "att-a"),
		})

		added := p.AddedAttachments()
		require.Len(t, added, 1)
		assert.Equal(t, "att-c", added[0].AttachmentID)

		removed := p.RemovedAttachments()
		require.Len(t, removed, 1)
		assert.Equal(t, "att-b", removed[0].AttachmentID)

		assert.Equal(t, []string{"att-c", "att-a"}, p.AttachmentIDs())
	})

	t.Run("re-keys links to the owning product", func(t *testing.T) {
		p := ReconstructProduct("prod-1", "Bike", "", "cat-1", "seller-1",
			NewMoney(100), StatusAvailable, nil, now, now, nil, clock.NewMockClock(now))

		p.AddAttachment(NewProductAttachment("link-x", "other-product", "att-x"))

		links := p.Attachments()
		require.Len(t, links, 1)
		assert.Equal(t, "prod-1", links[0].ProductID)
	})

	t.Run("no-op replacement emits no event", func(t *testing.T) {
		p := ReconstructProduct("prod-1", "Bike", "", "cat-1", "seller-1",
			NewMoney(100), StatusAvailable, initial, now, now, nil, clock.NewMockClock(now))

		p.ReplaceAttachments(initial)
		assert.Empty(t, p.DomainEvents())
	})

	t.Run("net change emits replaced event", func(t *testing.T) {
		p := ReconstructProduct("prod-1", "Bike", "", "cat-1", "seller-1",
			NewMoney(100), StatusAvailable, initial, now, now, nil, clock.NewMockClock(now))

		p.ReplaceAttachments([]ProductAttachment{initial[0]})

		events := p.DomainEvents()
		require.Len(t, events, 1)
		replaced, ok := events[0].(*ProductAttachmentsReplacedEvent)
		require.True(t, ok)
		assert.Empty(t, replaced.AddedAttachmentIDs)
		assert.Equal(t, []string{"att-b"}, replaced.RemovedAttachmentIDs)
	})
}

func TestProduct_MarkUpdated(t *testing.T) {
	now := time.Now().UTC()
	clk := clock.NewMockClock(now)

	p := ReconstructProduct("prod-1", "Bike", "", "cat-1", "seller-1",
		NewMoney(100), StatusAvailable, nil, now, now, nil, clk)

	require.NoError(t, p.SetTitle("Faster bike"))
	clk.Advance(time.Minute)
	p.MarkUpdated()

	assert.Equal(t, now.Add(time.Minute), p.UpdatedAt())
	events := p.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "product.updated", events[0].EventType())
}

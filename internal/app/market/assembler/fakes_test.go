package assembler

import (
	"context"
	"sync/atomic"

	"github.com/light-bringer/marketline-service/internal/app/market/domain"
)

// In-memory lookup fakes. Missing ids resolve to (nil, nil), matching the
// lookup contracts; err forces every call to fail for infrastructure
// error paths.

type fakeSellers struct {
	byID  map[string]*domain.Seller
	err   error
	calls int32
}

func (f *fakeSellers) GetByID(_ context.Context, id string) (*domain.Seller, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeSellers) ListByIDs(_ context.Context, ids []string) ([]*domain.Seller, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	sellers := make([]*domain.Seller, 0, len(ids))
	for _, id := range ids {
		if s, ok := f.byID[id]; ok {
			sellers = append(sellers, s)
		}
	}
	return sellers, nil
}

type fakeCategories struct {
	byID map[string]*domain.Category
	err  error
}

func (f *fakeCategories) GetByID(_ context.Context, id string) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeCategories) ListAll(_ context.Context) ([]*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	categories := make([]*domain.Category, 0, len(f.byID))
	for _, c := range f.byID {
		categories = append(categories, c)
	}
	return categories, nil
}

type fakeAttachments struct {
	byID map[string]*domain.Attachment
	err  error
}

func (f *fakeAttachments) GetByID(_ context.Context, id string) (*domain.Attachment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeAttachments) ListByIDs(_ context.Context, ids []string) ([]*domain.Attachment, error) {
	if f.err != nil {
		return nil, f.err
	}
	attachments := make([]*domain.Attachment, 0, len(ids))
	for _, id := range ids {
		if a, ok := f.byID[id]; ok {
			attachments = append(attachments, a)
		}
	}
	return attachments, nil
}

package testutil

import (
	"context"

	"github.com/fixwise/fixwise/internal/domain/handyman"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/types"
)

// InMemoryHandymanStore implements handyman.Repository
type InMemoryHandymanStore struct {
	*InMemoryStore[*handyman.Handyman]
}

// NewInMemoryHandymanStore creates a new in-memory handyman store
func NewInMemoryHandymanStore() *InMemoryHandymanStore {
	return &InMemoryHandymanStore{
		InMemoryStore: NewInMemoryStore[*handyman.Handyman](),
	}
}

func (s *InMemoryHandymanStore) Create(ctx context.Context, h *handyman.Handyman) error {
	if h == nil {
		return ierr.NewError("handyman cannot be nil").Mark(ierr.ErrValidation)
	}
	copied := *h
	return s.InMemoryStore.Create(ctx, h.ID, &copied)
}

func (s *InMemoryHandymanStore) Update(ctx context.Context, h *handyman.Handyman) error {
	if h == nil {
		return ierr.NewError("handyman cannot be nil").Mark(ierr.ErrValidation)
	}
	copied := *h
	return s.InMemoryStore.Update(ctx, h.ID, &copied)
}

func (s *InMemoryHandymanStore) List(ctx context.Context, filter *types.QueryFilter) ([]*handyman.Handyman, error) {
	return s.InMemoryStore.List(ctx, filter, nil, func(a, b *handyman.Handyman) bool {
		return a.Name < b.Name
	})
}

func (s *InMemoryHandymanStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, nil, nil)
}

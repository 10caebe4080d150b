package testutil

import (
	"context"

	"github.com/fixwise/fixwise/internal/domain/servicepreset"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/types"
)

// InMemoryServicePresetStore implements servicepreset.Repository
type InMemoryServicePresetStore struct {
	*InMemoryStore[*servicepreset.ServicePreset]
}

// NewInMemoryServicePresetStore creates a new in-memory service preset store
func NewInMemoryServicePresetStore() *InMemoryServicePresetStore {
	return &InMemoryServicePresetStore{
		InMemoryStore: NewInMemoryStore[*servicepreset.ServicePreset](),
	}
}

func (s *InMemoryServicePresetStore) Create(ctx context.Context, preset *servicepreset.ServicePreset) error {
	if preset == nil {
		return ierr.NewError("service preset cannot be nil").Mark(ierr.ErrValidation)
	}
	copied := *preset
	return s.InMemoryStore.Create(ctx, preset.ID, &copied)
}

func (s *InMemoryServicePresetStore) List(ctx context.Context, filter *types.QueryFilter) ([]*servicepreset.ServicePreset, error) {
	return s.InMemoryStore.List(ctx, filter, nil, func(a, b *servicepreset.ServicePreset) bool {
		return a.Name < b.Name
	})
}

func (s *InMemoryServicePresetStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx, nil, nil)
}

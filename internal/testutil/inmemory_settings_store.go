package testutil

import (
	"context"
	"sync"

	"github.com/fixwise/fixwise/internal/domain/settings"
	ierr "github.com/fixwise/fixwise/internal/errors"
)

// InMemorySettingsStore implements settings.Repository
type InMemorySettingsStore struct {
	mu       sync.RWMutex
	settings *settings.Settings
}

// NewInMemorySettingsStore creates a new in-memory settings store
func NewInMemorySettingsStore() *InMemorySettingsStore {
	return &InMemorySettingsStore{}
}

func (s *InMemorySettingsStore) Get(ctx context.Context) (*settings.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.settings == nil {
		return nil, ierr.NewError("settings not found").Mark(ierr.ErrNotFound)
	}
	copied := *s.settings
	return &copied, nil
}

func (s *InMemorySettingsStore) Update(ctx context.Context, current *settings.Settings) error {
	if current == nil {
		return ierr.NewError("settings cannot be nil").Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *current
	s.settings = &copied
	return nil
}

// Clear removes the stored settings document
func (s *InMemorySettingsStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = nil
}

package settings

import "context"

// Repository defines the interface for settings persistence
type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, settings *Settings) error
}

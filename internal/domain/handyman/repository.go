package handyman

import (
	"context"

	"github.com/fixwise/fixwise/internal/types"
)

// Repository defines the interface for handyman persistence operations
type Repository interface {
	Create(ctx context.Context, handyman *Handyman) error
	Get(ctx context.Context, id string) (*Handyman, error)
	Update(ctx context.Context, handyman *Handyman) error
	List(ctx context.Context, filter *types.QueryFilter) ([]*Handyman, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}

package servicepreset

import (
	"context"

	"github.com/fixwise/fixwise/internal/types"
)

// Repository defines the interface for service preset persistence.
// Create exists for seeding only; there is no update or delete.
type Repository interface {
	Create(ctx context.Context, preset *ServicePreset) error
	Get(ctx context.Context, id string) (*ServicePreset, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*ServicePreset, error)
	Count(ctx context.Context) (int, error)
}

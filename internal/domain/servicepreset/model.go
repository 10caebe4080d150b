package servicepreset

import (
	"github.com/fixwise/fixwise/internal/types"
	"github.com/shopspring/decimal"
)

// ServicePreset is an immutable catalog entry used by the invoice editor to
// pre-fill a line item. Presets are reference data: seeded once, read-only
// at runtime.
type ServicePreset struct {
	ID          string          `firestore:"id" json:"id"`
	Name        string          `firestore:"name" json:"name"`
	Description string          `firestore:"description,omitempty" json:"description,omitempty"`
	Price       decimal.Decimal `firestore:"price" json:"price"`
	Category    string          `firestore:"category,omitempty" json:"category,omitempty"`

	types.BaseModel
}

package invoice

import (
	"context"

	"github.com/fixwise/fixwise/internal/types"
)

// Repository defines the interface for invoice persistence operations.
// Invoices are never deleted in normal flow, so no Delete is exposed.
type Repository interface {
	// Create creates a new invoice together with its line items
	Create(ctx context.Context, invoice *Invoice) error

	// Get retrieves an invoice by ID
	Get(ctx context.Context, id string) (*Invoice, error)

	// Update updates an existing invoice
	Update(ctx context.Context, invoice *Invoice) error

	// List retrieves invoices based on filter criteria
	List(ctx context.Context, filter *types.InvoiceFilter) ([]*Invoice, error)

	// Count returns the total count of invoices based on filter criteria
	Count(ctx context.Context, filter *types.InvoiceFilter) (int, error)

	// GetByJobID retrieves the invoice created for a job, if any
	GetByJobID(ctx context.Context, jobID string) (*Invoice, error)
}

package payment

import (
	"context"

	"github.com/fixwise/fixwise/internal/domain/invoice"
)

// Link is a customer-facing payment URL together with the gateway session
// that backs it. Re-issuing a link supersedes the prior one.
type Link struct {
	URL       string
	SessionID string
}

// LinkIssuer produces a payment link for an invoice. Implementations must be
// safe to call repeatedly for the same invoice.
type LinkIssuer interface {
	Issue(ctx context.Context, inv *invoice.Invoice) (*Link, error)
}

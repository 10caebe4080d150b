package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/fixwise/fixwise/internal/domain/invoice"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/payment"
	"github.com/fixwise/fixwise/internal/types"
)

// InMemoryPaymentIssuer implements payment.LinkIssuer with deterministic
// links. Set FailNext to simulate a gateway outage on the next call.
type InMemoryPaymentIssuer struct {
	mu       sync.Mutex
	FailNext bool
	issued   []string
}

func NewInMemoryPaymentIssuer() *InMemoryPaymentIssuer {
	return &InMemoryPaymentIssuer{}
}

func (i *InMemoryPaymentIssuer) Issue(ctx context.Context, inv *invoice.Invoice) (*payment.Link, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.FailNext {
		i.FailNext = false
		return nil, ierr.NewError("payment gateway unavailable").
			WithHint("Could not create a payment link, please retry").
			Mark(ierr.ErrExternalService)
	}

	i.issued = append(i.issued, inv.ID)
	return &payment.Link{
		URL:       fmt.Sprintf("https://pay.test/checkout/%s", inv.ID),
		SessionID: types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT_SESSION),
	}, nil
}

// IssuedFor returns the invoice ids links were issued for, in order
func (i *InMemoryPaymentIssuer) IssuedFor() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]string(nil), i.issued...)
}

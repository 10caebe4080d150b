package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/fixwise/fixwise/internal/domain/invoice"
	"github.com/fixwise/fixwise/internal/logger"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// fallbackIssuer issues demo payment links when no gateway is configured.
// Issuing a fallback link is a success path: the admin flow must not be
// blocked by a missing payment integration.
type fallbackIssuer struct {
	baseURL string
	logger  *logger.Logger
}

// NewFallbackIssuer returns a LinkIssuer that produces placeholder links of
// the form <baseURL>/pay/{invoiceID}
func NewFallbackIssuer(baseURL string, logger *logger.Logger) LinkIssuer {
	return &fallbackIssuer{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
}

func (f *fallbackIssuer) Issue(ctx context.Context, inv *invoice.Invoice) (*Link, error) {
	f.logger.Warnw("payment gateway not configured, issuing fallback payment link",
		"invoice_id", inv.ID)

	return &Link{
		URL:       fmt.Sprintf("%s/pay/%s", f.baseURL, inv.ID),
		SessionID: types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT_SESSION),
	}, nil
}

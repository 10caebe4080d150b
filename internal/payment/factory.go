package payment

import (
	"github.com/fixwise/fixwise/internal/config"
	"github.com/fixwise/fixwise/internal/logger"
)

// NewLinkIssuer selects the issuer implementation from configuration:
// Stripe Checkout when an API key is present, demo fallback links otherwise.
func NewLinkIssuer(cfg *config.Configuration, logger *logger.Logger) LinkIssuer {
	if cfg.Stripe.IsConfigured() {
		return NewStripeIssuer(cfg.Stripe, logger)
	}
	return NewFallbackIssuer(cfg.Billing.PaymentBaseURL, logger)
}

package payment

import (
	"context"

	"github.com/fixwise/fixwise/internal/config"
	"github.com/fixwise/fixwise/internal/domain/invoice"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/logger"
	"github.com/stripe/stripe-go/v82"
)

// stripeIssuer issues payment links backed by Stripe Checkout sessions
type stripeIssuer struct {
	client *stripe.Client
	cfg    config.StripeConfig
	logger *logger.Logger
}

// NewStripeIssuer returns a LinkIssuer backed by Stripe Checkout
func NewStripeIssuer(cfg config.StripeConfig, logger *logger.Logger) LinkIssuer {
	return &stripeIssuer{
		client: stripe.NewClient(cfg.APIKey, nil),
		cfg:    cfg,
		logger: logger,
	}
}

func (s *stripeIssuer) Issue(ctx context.Context, inv *invoice.Invoice) (*Link, error) {
	// Stripe amounts are integer minor units
	amountCents := inv.Total.Mul(decimalHundred).IntPart()

	lineItems := []*stripe.CheckoutSessionCreateLineItemParams{
		{
			PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
				Currency: stripe.String(inv.Currency),
				ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
					Name:        stripe.String(inv.JobSnapshot.JobTitle),
					Description: stripe.String(inv.InvoiceNumber),
				},
				UnitAmount: stripe.Int64(amountCents),
			},
			Quantity: stripe.Int64(1),
		},
	}

	params := &stripe.CheckoutSessionCreateParams{
		LineItems:  lineItems,
		Mode:       stripe.String("payment"),
		SuccessURL: stripe.String(s.cfg.SuccessURL),
		CancelURL:  stripe.String(s.cfg.CancelURL),
		Metadata: map[string]string{
			"fixwise_invoice_id": inv.ID,
			"fixwise_job_id":     inv.JobID,
			"invoice_number":     inv.InvoiceNumber,
		},
	}

	session, err := s.client.V1CheckoutSessions.Create(ctx, params)
	if err != nil {
		s.logger.Errorw("failed to create Stripe checkout session",
			"error", err,
			"invoice_id", inv.ID)
		return nil, ierr.WithError(err).
			WithHint("Unable to create payment link, please retry").
			WithReportableDetails(map[string]any{
				"invoice_id": inv.ID,
			}).
			Mark(ierr.ErrExternalService)
	}

	return &Link{
		URL:       session.URL,
		SessionID: session.ID,
	}, nil
}

package payment

import (
	"context"
	"testing"

	"github.com/fixwise/fixwise/internal/config"
	"github.com/fixwise/fixwise/internal/domain/invoice"
	"github.com/fixwise/fixwise/internal/logger"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&config.Configuration{
		Logging: config.LoggingConfig{Level: types.LogLevelError},
	})
	require.NoError(t, err)
	return log
}

func TestFallbackIssuerLinkFormat(t *testing.T) {
	issuer := NewFallbackIssuer("https://pay.fixwise.app/", testLogger(t))

	inv := &invoice.Invoice{ID: "inv_01ABC"}
	link, err := issuer.Issue(context.Background(), inv)
	require.NoError(t, err)
	require.Equal(t, "https://pay.fixwise.app/pay/inv_01ABC", link.URL)
	require.NotEmpty(t, link.SessionID)
	require.Contains(t, link.SessionID, types.UUID_PREFIX_PAYMENT_SESSION)
}

func TestFallbackIssuerSessionsAreUnique(t *testing.T) {
	issuer := NewFallbackIssuer("https://pay.fixwise.app", testLogger(t))
	inv := &invoice.Invoice{ID: "inv_01ABC"}

	first, err := issuer.Issue(context.Background(), inv)
	require.NoError(t, err)
	second, err := issuer.Issue(context.Background(), inv)
	require.NoError(t, err)
	require.NotEqual(t, first.SessionID, second.SessionID)
}

func TestNewLinkIssuerSelection(t *testing.T) {
	log := testLogger(t)

	cfg := &config.Configuration{
		Billing: config.BillingConfig{PaymentBaseURL: "https://pay.fixwise.app"},
	}
	_, ok := NewLinkIssuer(cfg, log).(*fallbackIssuer)
	require.True(t, ok, "no API key must select the fallback issuer")

	cfg.Stripe.APIKey = "sk_test_123"
	_, ok = NewLinkIssuer(cfg, log).(*stripeIssuer)
	require.True(t, ok, "an API key must select the Stripe issuer")
}

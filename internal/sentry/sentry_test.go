package sentry

import (
	"context"
	"testing"

	"github.com/fixwise/fixwise/internal/config"
	"github.com/fixwise/fixwise/internal/logger"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDisabledService(t *testing.T) *Service {
	cfg := &config.Configuration{
		Logging: config.LoggingConfig{Level: types.LogLevelInfo},
		Sentry:  config.SentryConfig{Enabled: false},
	}
	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)
	return NewSentryService(cfg, log)
}

func TestStartStoreSpanDisabled(t *testing.T) {
	svc := newDisabledService(t)
	ctx := context.Background()

	span, spanCtx := svc.StartStoreSpan(ctx, "invoice.get", map[string]interface{}{
		"invoice_id": "inv_123",
	})
	assert.Nil(t, span)
	assert.Equal(t, ctx, spanCtx)

	// repositories defer this unconditionally; nil spans must be safe
	FinishSpan(span)
}

func TestCaptureExceptionDisabledIsNoOp(t *testing.T) {
	svc := newDisabledService(t)
	assert.NotPanics(t, func() {
		svc.CaptureException(assert.AnError)
	})
}

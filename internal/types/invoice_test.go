package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceStatusValidate(t *testing.T) {
	for _, status := range []InvoiceStatus{
		InvoiceStatusDraft,
		InvoiceStatusSent,
		InvoiceStatusOutstanding,
		InvoiceStatusPaid,
	} {
		assert.NoError(t, status.Validate())
	}

	assert.Error(t, InvoiceStatus("VOID").Validate())
	assert.Error(t, InvoiceStatus("").Validate())
	assert.Error(t, InvoiceStatus("paid").Validate(), "statuses are case sensitive")
}

func TestInvoiceStatusCanTransitionTo(t *testing.T) {
	nonTerminal := []InvoiceStatus{
		InvoiceStatusDraft,
		InvoiceStatusSent,
		InvoiceStatusOutstanding,
	}

	// any valid target is reachable from a non-paid status, including
	// skipping straight from draft to paid
	for _, from := range nonTerminal {
		for _, to := range []InvoiceStatus{
			InvoiceStatusDraft,
			InvoiceStatusSent,
			InvoiceStatusOutstanding,
			InvoiceStatusPaid,
		} {
			assert.NoError(t, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	// paid is terminal
	for _, to := range nonTerminal {
		assert.Error(t, InvoiceStatusPaid.CanTransitionTo(to), "PAID -> %s", to)
	}

	// except that a repeated paid confirmation is allowed
	assert.NoError(t, InvoiceStatusPaid.CanTransitionTo(InvoiceStatusPaid))

	// invalid targets are rejected regardless of source
	assert.Error(t, InvoiceStatusDraft.CanTransitionTo(InvoiceStatus("VOID")))
}

func TestInvoiceStatusIsTerminal(t *testing.T) {
	assert.True(t, InvoiceStatusPaid.IsTerminal())
	assert.False(t, InvoiceStatusDraft.IsTerminal())
	assert.False(t, InvoiceStatusSent.IsTerminal())
	assert.False(t, InvoiceStatusOutstanding.IsTerminal())
}

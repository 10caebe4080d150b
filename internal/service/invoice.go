package service

import (
	"context"

	"github.com/fixwise/fixwise/internal/api/dto"
	"github.com/fixwise/fixwise/internal/billing"
	"github.com/fixwise/fixwise/internal/clock"
	"github.com/fixwise/fixwise/internal/domain/invoice"
	"github.com/fixwise/fixwise/internal/domain/job"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/logger"
	"github.com/fixwise/fixwise/internal/payment"
	"github.com/fixwise/fixwise/internal/types"
)

type InvoiceService interface {
	CreateInvoiceForJob(ctx context.Context, jobID string, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, filter *types.InvoiceFilter) (*dto.ListInvoicesResponse, error)
	TransitionStatus(ctx context.Context, id string, target types.InvoiceStatus) (*dto.InvoiceResponse, error)
	IssuePaymentLink(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	ConfirmPayment(ctx context.Context, id string, sessionID string) (*dto.InvoiceResponse, error)
	ReconcileLinks(ctx context.Context) (*dto.ReconcileResponse, error)
}

type invoiceService struct {
	invoiceRepo invoice.Repository
	jobRepo     job.Repository
	settings    SettingsService
	issuer      payment.LinkIssuer
	clock       clock.Clock
	logger      *logger.Logger
}

func NewInvoiceService(
	invoiceRepo invoice.Repository,
	jobRepo job.Repository,
	settings SettingsService,
	issuer payment.LinkIssuer,
	clock clock.Clock,
	logger *logger.Logger,
) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		jobRepo:     jobRepo,
		settings:    settings,
		issuer:      issuer,
		clock:       clock,
		logger:      logger,
	}
}

// CreateInvoiceForJob creates a draft invoice from a job and a submitted set
// of line items, then back-references the invoice id on the job. The two
// writes are not atomic: if the job update fails after the invoice exists,
// the inconsistency is surfaced for the reconcile operation to repair.
func (s *invoiceService) CreateInvoiceForJob(ctx context.Context, jobID string, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	// fail fast: nothing is written before the request validates
	if err := req.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Please fix the invoice line items and try again").
			Mark(ierr.ErrValidation)
	}

	j, err := s.jobRepo.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	// one invoice per job: reject rather than silently orphan the prior
	// invoice's back-reference
	if j.HasInvoice() {
		return nil, ierr.NewError("job already has an invoice").
			WithHint("An invoice already exists for this job").
			WithReportableDetails(map[string]any{
				"job_id":     j.ID,
				"invoice_id": *j.InvoiceID,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	// the back-reference alone misses invoices created during the
	// non-atomic window, so also read the invoice collection before writing
	if existing, err := s.invoiceRepo.GetByJobID(ctx, j.ID); err == nil {
		return nil, ierr.NewError("job already has an invoice").
			WithHint("An invoice already exists for this job").
			WithReportableDetails(map[string]any{
				"job_id":     j.ID,
				"invoice_id": existing.ID,
			}).
			Mark(ierr.ErrAlreadyExists)
	} else if !ierr.IsNotFound(err) {
		return nil, err
	}

	defaults, err := s.settings.GetBillingDefaults(ctx)
	if err != nil {
		return nil, err
	}

	vatEnabled := defaults.VatEnabled
	if req.VatEnabled != nil {
		vatEnabled = *req.VatEnabled
	}
	vatRate := defaults.VatRate
	if req.VatRate != nil {
		vatRate = *req.VatRate
	}
	currency := defaults.Currency
	if req.Currency != "" {
		currency = req.Currency
	}

	totals := billing.ComputeTotals(req.ToLineItemInputs(), vatEnabled, vatRate)

	invoiceID := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE)
	lineItems := make([]*invoice.LineItem, len(req.LineItems))
	for i, item := range req.LineItems {
		input := billing.LineItemInput{Quantity: item.Quantity, UnitPrice: item.UnitPrice}
		lineItems[i] = &invoice.LineItem{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE_ITEM),
			InvoiceID:   invoiceID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      input.Amount(),
		}
	}

	inv := &invoice.Invoice{
		ID:            invoiceID,
		JobID:         j.ID,
		InvoiceNumber: types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_INVOICE_NUMBER),
		JobSnapshot:   snapshotJob(j),
		LineItems:     lineItems,
		Currency:      currency,
		Subtotal:      totals.Subtotal,
		VatEnabled:    vatEnabled,
		VatRate:       vatRate,
		VatAmount:     totals.VatAmount,
		Total:         totals.Total,
		InvoiceStatus: types.InvoiceStatusDraft,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}

	if err := inv.Validate(); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	j.InvoiceID = &inv.ID
	j.UpdatedAt = s.clock.Now()
	j.UpdatedBy = types.GetOperatorID(ctx)
	if err := s.jobRepo.Update(ctx, j); err != nil {
		// accepted inconsistency window: the invoice exists but the job
		// lacks the back-reference; ReconcileLinks repairs this
		s.logger.Warnw("invoice created but job back-reference failed, run reconcile",
			"error", err,
			"invoice_id", inv.ID,
			"job_id", j.ID)
		return nil, ierr.WithError(err).
			WithHint("The invoice was created but could not be linked to the job").
			WithReportableDetails(map[string]any{
				"invoice_id": inv.ID,
				"job_id":     j.ID,
			}).
			Mark(ierr.ErrInconsistentState)
	}

	return dto.NewInvoiceResponse(inv), nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.invoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(inv), nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, filter *types.InvoiceFilter) (*dto.ListInvoicesResponse, error) {
	if filter == nil {
		filter = types.NewInvoiceFilter()
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.invoiceRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		items[i] = dto.NewInvoiceResponse(inv)
	}

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

// TransitionStatus moves an invoice through its lifecycle. The guard is
// permissive (a draft invoice may be marked paid directly) except that a
// paid invoice never leaves PAID.
func (s *invoiceService) TransitionStatus(ctx context.Context, id string, target types.InvoiceStatus) (*dto.InvoiceResponse, error) {
	inv, err := s.invoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := inv.InvoiceStatus.CanTransitionTo(target); err != nil {
		return nil, err
	}

	// repeated PAID -> PAID is an idempotent no-op
	if inv.InvoiceStatus == types.InvoiceStatusPaid && target == types.InvoiceStatusPaid {
		return dto.NewInvoiceResponse(inv), nil
	}

	inv.InvoiceStatus = target
	if target == types.InvoiceStatusPaid && inv.PaidAt == nil {
		now := s.clock.Now()
		inv.PaidAt = &now
	}
	inv.UpdatedAt = s.clock.Now()
	inv.UpdatedBy = types.GetOperatorID(ctx)

	if err := inv.Validate(); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	return dto.NewInvoiceResponse(inv), nil
}

// IssuePaymentLink asks the configured issuer for a customer-facing payment
// URL. A successful issuance on a draft invoice transitions DRAFT -> SENT in
// the same write; a failed issuance leaves the invoice untouched. A fallback
// demo link is a success, not a failure: the admin flow must not be blocked
// by a missing gateway configuration.
func (s *invoiceService) IssuePaymentLink(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.invoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	link, err := s.issuer.Issue(ctx, inv)
	if err != nil {
		// no partial transition: status must not change without a usable link
		return nil, err
	}

	// regenerating a link supersedes the prior one
	inv.PaymentURL = &link.URL
	inv.PaymentSessionID = &link.SessionID
	if inv.InvoiceStatus == types.InvoiceStatusDraft {
		inv.InvoiceStatus = types.InvoiceStatusSent
	}
	inv.UpdatedAt = s.clock.Now()
	inv.UpdatedBy = types.GetOperatorID(ctx)

	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	s.logger.Infow("issued payment link",
		"invoice_id", inv.ID,
		"session_id", link.SessionID)

	return dto.NewInvoiceResponse(inv), nil
}

// ConfirmPayment marks an invoice paid. It is idempotent: external payment
// confirmations may arrive more than once, and a second confirmation leaves
// the invoice exactly as the first one did, including paid_at.
func (s *invoiceService) ConfirmPayment(ctx context.Context, id string, sessionID string) (*dto.InvoiceResponse, error) {
	inv, err := s.invoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.InvoiceStatus == types.InvoiceStatusPaid {
		return dto.NewInvoiceResponse(inv), nil
	}

	inv.InvoiceStatus = types.InvoiceStatusPaid
	if inv.PaidAt == nil {
		now := s.clock.Now()
		inv.PaidAt = &now
	}
	if sessionID != "" {
		inv.PaymentSessionID = &sessionID
	}
	inv.UpdatedAt = s.clock.Now()
	inv.UpdatedBy = types.GetOperatorID(ctx)

	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	s.logger.Infow("payment confirmed",
		"invoice_id", inv.ID,
		"session_id", sessionID)

	return dto.NewInvoiceResponse(inv), nil
}

// ReconcileLinks scans all invoices and repairs jobs that lost the
// back-reference from the non-atomic create path. Jobs referencing a
// different invoice, and invoices whose job no longer exists, are reported
// as conflicts for manual review rather than auto-repaired.
func (s *invoiceService) ReconcileLinks(ctx context.Context) (*dto.ReconcileResponse, error) {
	invoices, err := s.invoiceRepo.List(ctx, types.NewNoLimitInvoiceFilter())
	if err != nil {
		return nil, err
	}

	resp := &dto.ReconcileResponse{Scanned: len(invoices)}
	for _, inv := range invoices {
		j, err := s.jobRepo.Get(ctx, inv.JobID)
		if err != nil {
			if ierr.IsNotFound(err) {
				s.logger.Warnw("invoice references a deleted job",
					"invoice_id", inv.ID,
					"job_id", inv.JobID)
				resp.Conflict = append(resp.Conflict, inv.ID)
				continue
			}
			return nil, err
		}

		switch {
		case !j.HasInvoice():
			j.InvoiceID = &inv.ID
			j.UpdatedAt = s.clock.Now()
			j.UpdatedBy = types.GetOperatorID(ctx)
			if err := s.jobRepo.Update(ctx, j); err != nil {
				return nil, err
			}
			s.logger.Infow("repaired missing invoice back-reference",
				"invoice_id", inv.ID,
				"job_id", j.ID)
			resp.Repaired = append(resp.Repaired, inv.ID)
		case *j.InvoiceID != inv.ID:
			s.logger.Warnw("job references a different invoice",
				"invoice_id", inv.ID,
				"job_id", j.ID,
				"job_invoice_id", *j.InvoiceID)
			resp.Conflict = append(resp.Conflict, inv.ID)
		}
	}

	return resp, nil
}

func snapshotJob(j *job.Job) invoice.JobSnapshot {
	snapshot := invoice.JobSnapshot{
		ClientName:  j.ClientName,
		ClientPhone: j.ClientPhone,
		ClientEmail: j.ClientEmail,
		JobTitle:    j.Title,
		ScheduledAt: j.ScheduledAt,
		Location:    j.Location,
	}
	if j.HandymanName != nil {
		snapshot.HandymanName = *j.HandymanName
	}
	return snapshot
}

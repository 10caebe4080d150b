package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/fixwise/fixwise/internal/domain/invoice"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/logger"
	sentryService "github.com/fixwise/fixwise/internal/sentry"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"
)

// InvoiceRepository is the Firestore-backed implementation of
// invoice.Repository. Monetary values are stored as decimal strings since
// Firestore has no fixed-point numeric type.
type InvoiceRepository struct {
	client *firestore.Client
	sentry *sentryService.Service
	logger *logger.Logger
}

func NewInvoiceRepository(client *firestore.Client, sentry *sentryService.Service, logger *logger.Logger) *InvoiceRepository {
	return &InvoiceRepository{
		client: client,
		sentry: sentry,
		logger: logger,
	}
}

// invoiceDoc is the persisted shape of an invoice
type invoiceDoc struct {
	ID            string              `firestore:"id"`
	JobID         string              `firestore:"job_id"`
	InvoiceNumber string              `firestore:"invoice_number"`
	JobSnapshot   invoice.JobSnapshot `firestore:"job_snapshot"`
	LineItems     []lineItemDoc       `firestore:"line_items"`
	Currency      string              `firestore:"currency"`
	Subtotal      string              `firestore:"subtotal"`
	VatEnabled    bool                `firestore:"vat_enabled"`
	VatRate       string              `firestore:"vat_rate"`
	VatAmount     string              `firestore:"vat_amount"`
	Total         string              `firestore:"total"`
	InvoiceStatus string              `firestore:"invoice_status"`
	PaymentURL    *string             `firestore:"payment_url,omitempty"`
	PaymentSessID *string             `firestore:"payment_session_id,omitempty"`
	PaidAt        *time.Time          `firestore:"paid_at,omitempty"`
	CreatedAt     time.Time           `firestore:"created_at"`
	UpdatedAt     time.Time           `firestore:"updated_at"`
	CreatedBy     string              `firestore:"created_by"`
	UpdatedBy     string              `firestore:"updated_by"`
}

type lineItemDoc struct {
	ID          string `firestore:"id"`
	InvoiceID   string `firestore:"invoice_id"`
	Description string `firestore:"description"`
	Quantity    int64  `firestore:"quantity"`
	UnitPrice   string `firestore:"unit_price"`
	Amount      string `firestore:"amount"`
}

func toDoc(inv *invoice.Invoice) *invoiceDoc {
	items := make([]lineItemDoc, len(inv.LineItems))
	for i, li := range inv.LineItems {
		items[i] = lineItemDoc{
			ID:          li.ID,
			InvoiceID:   li.InvoiceID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice.String(),
			Amount:      li.Amount.String(),
		}
	}

	return &invoiceDoc{
		ID:            inv.ID,
		JobID:         inv.JobID,
		InvoiceNumber: inv.InvoiceNumber,
		JobSnapshot:   inv.JobSnapshot,
		LineItems:     items,
		Currency:      inv.Currency,
		Subtotal:      inv.Subtotal.String(),
		VatEnabled:    inv.VatEnabled,
		VatRate:       inv.VatRate.String(),
		VatAmount:     inv.VatAmount.String(),
		Total:         inv.Total.String(),
		InvoiceStatus: string(inv.InvoiceStatus),
		PaymentURL:    inv.PaymentURL,
		PaymentSessID: inv.PaymentSessionID,
		PaidAt:        inv.PaidAt,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
		CreatedBy:     inv.CreatedBy,
		UpdatedBy:     inv.UpdatedBy,
	}
}

func fromDoc(doc *invoiceDoc) (*invoice.Invoice, error) {
	items := make([]*invoice.LineItem, len(doc.LineItems))
	for i, li := range doc.LineItems {
		unitPrice, err := decimal.NewFromString(li.UnitPrice)
		if err != nil {
			return nil, err
		}
		amount, err := decimal.NewFromString(li.Amount)
		if err != nil {
			return nil, err
		}
		items[i] = &invoice.LineItem{
			ID:          li.ID,
			InvoiceID:   li.InvoiceID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   unitPrice,
			Amount:      amount,
		}
	}

	subtotal, err := decimal.NewFromString(doc.Subtotal)
	if err != nil {
		return nil, err
	}
	vatRate, err := decimal.NewFromString(doc.VatRate)
	if err != nil {
		return nil, err
	}
	vatAmount, err := decimal.NewFromString(doc.VatAmount)
	if err != nil {
		return nil, err
	}
	total, err := decimal.NewFromString(doc.Total)
	if err != nil {
		return nil, err
	}

	return &invoice.Invoice{
		ID:               doc.ID,
		JobID:            doc.JobID,
		InvoiceNumber:    doc.InvoiceNumber,
		JobSnapshot:      doc.JobSnapshot,
		LineItems:        items,
		Currency:         doc.Currency,
		Subtotal:         subtotal,
		VatEnabled:       doc.VatEnabled,
		VatRate:          vatRate,
		VatAmount:        vatAmount,
		Total:            total,
		InvoiceStatus:    types.InvoiceStatus(doc.InvoiceStatus),
		PaymentURL:       doc.PaymentURL,
		PaymentSessionID: doc.PaymentSessID,
		PaidAt:           doc.PaidAt,
		BaseModel: types.BaseModel{
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
			CreatedBy: doc.CreatedBy,
			UpdatedBy: doc.UpdatedBy,
		},
	}, nil
}

func (r *InvoiceRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(invoicesCollection)
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	span, ctx := r.sentry.StartStoreSpan(ctx, "invoice.create", map[string]interface{}{
		"invoice_id": inv.ID,
		"job_id":     inv.JobID,
	})
	defer sentryService.FinishSpan(span)

	if _, err := r.collection().Doc(inv.ID).Create(ctx, toDoc(inv)); err != nil {
		return mapStoreError(err, "Unable to create invoice")
	}
	return nil
}

func (r *InvoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	if id == "" {
		return nil, ierr.NewError("invoice id is required").
			WithHint("Please provide an invoice id").
			Mark(ierr.ErrValidation)
	}

	span, ctx := r.sentry.StartStoreSpan(ctx, "invoice.get", map[string]interface{}{
		"invoice_id": id,
	})
	defer sentryService.FinishSpan(span)

	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapStoreError(err, "Invoice not found")
	}

	return r.decode(snap)
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	span, ctx := r.sentry.StartStoreSpan(ctx, "invoice.update", map[string]interface{}{
		"invoice_id": inv.ID,
	})
	defer sentryService.FinishSpan(span)

	if _, err := r.collection().Doc(inv.ID).Set(ctx, toDoc(inv)); err != nil {
		return mapStoreError(err, "Unable to update invoice")
	}
	return nil
}

func (r *InvoiceRepository) GetByJobID(ctx context.Context, jobID string) (*invoice.Invoice, error) {
	span, ctx := r.sentry.StartStoreSpan(ctx, "invoice.get_by_job_id", map[string]interface{}{
		"job_id": jobID,
	})
	defer sentryService.FinishSpan(span)

	iter := r.collection().Where("job_id", "==", jobID).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, ierr.NewError("no invoice found for job").
			WithHint("No invoice has been created for this job").
			WithReportableDetails(map[string]any{
				"job_id": jobID,
			}).
			Mark(ierr.ErrNotFound)
	}
	if err != nil {
		return nil, mapStoreError(err, "Unable to look up invoice for job")
	}

	return r.decode(snap)
}

func (r *InvoiceRepository) List(ctx context.Context, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	span, ctx := r.sentry.StartStoreSpan(ctx, "invoice.list", nil)
	defer sentryService.FinishSpan(span)

	invoices, err := r.queryAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter != nil && !filter.IsUnlimited() {
		invoices = paginate(invoices, filter.GetOffset(), filter.GetLimit())
	}
	return invoices, nil
}

func (r *InvoiceRepository) Count(ctx context.Context, filter *types.InvoiceFilter) (int, error) {
	span, ctx := r.sentry.StartStoreSpan(ctx, "invoice.count", nil)
	defer sentryService.FinishSpan(span)

	invoices, err := r.queryAll(ctx, filter)
	if err != nil {
		return 0, err
	}
	return len(invoices), nil
}

func (r *InvoiceRepository) queryAll(ctx context.Context, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	q := r.collection().Query

	if filter != nil {
		if filter.JobID != "" {
			q = q.Where("job_id", "==", filter.JobID)
		}
		if len(filter.InvoiceStatus) == 1 {
			q = q.Where("invoice_status", "==", string(filter.InvoiceStatus[0]))
		}
		q = q.OrderBy(filter.GetSort(), direction(filter.GetOrder()))
	} else {
		q = q.OrderBy("created_at", firestore.Desc)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var invoices []*invoice.Invoice
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err, "Unable to list invoices")
		}

		inv, err := r.decode(snap)
		if err != nil {
			return nil, err
		}

		if filter != nil && !matchInvoice(inv, filter) {
			continue
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func (r *InvoiceRepository) decode(snap *firestore.DocumentSnapshot) (*invoice.Invoice, error) {
	var doc invoiceDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Stored invoice document is malformed").
			Mark(ierr.ErrDatabase)
	}

	inv, err := fromDoc(&doc)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Stored invoice amounts are malformed").
			WithReportableDetails(map[string]any{
				"invoice_id": doc.ID,
			}).
			Mark(ierr.ErrDatabase)
	}
	return inv, nil
}

func matchInvoice(inv *invoice.Invoice, filter *types.InvoiceFilter) bool {
	if len(filter.InvoiceIDs) > 0 && !lo.Contains(filter.InvoiceIDs, inv.ID) {
		return false
	}
	if len(filter.InvoiceStatus) > 1 && !lo.Contains(filter.InvoiceStatus, inv.InvoiceStatus) {
		return false
	}
	return true
}

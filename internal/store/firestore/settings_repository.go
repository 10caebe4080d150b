package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/fixwise/fixwise/internal/domain/settings"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/logger"
	sentryService "github.com/fixwise/fixwise/internal/sentry"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/shopspring/decimal"
)

// SettingsRepository is the Firestore-backed implementation of
// settings.Repository. Settings live in a single well-known document.
type SettingsRepository struct {
	client *firestore.Client
	sentry *sentryService.Service
	logger *logger.Logger
}

func NewSettingsRepository(client *firestore.Client, sentry *sentryService.Service, logger *logger.Logger) *SettingsRepository {
	return &SettingsRepository{
		client: client,
		sentry: sentry,
		logger: logger,
	}
}

type settingsDoc struct {
	ID                string    `firestore:"id"`
	BusinessName      string    `firestore:"business_name"`
	DefaultCurrency   string    `firestore:"default_currency"`
	DefaultVatRate    string    `firestore:"default_vat_rate"`
	VatEnabledDefault bool      `firestore:"vat_enabled_default"`
	PaymentBaseURL    string    `firestore:"payment_base_url,omitempty"`
	CreatedAt         time.Time `firestore:"created_at"`
	UpdatedAt         time.Time `firestore:"updated_at"`
	CreatedBy         string    `firestore:"created_by"`
	UpdatedBy         string    `firestore:"updated_by"`
}

func (r *SettingsRepository) doc() *firestore.DocumentRef {
	return r.client.Collection(settingsCollection).Doc(settings.SettingsDocID)
}

func (r *SettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	span, ctx := r.sentry.StartStoreSpan(ctx, "settings.get", nil)
	defer sentryService.FinishSpan(span)

	snap, err := r.doc().Get(ctx)
	if err != nil {
		return nil, mapStoreError(err, "Settings not found")
	}

	var doc settingsDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Stored settings document is malformed").
			Mark(ierr.ErrDatabase)
	}

	vatRate, err := decimal.NewFromString(doc.DefaultVatRate)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Stored VAT rate is malformed").
			Mark(ierr.ErrDatabase)
	}

	return &settings.Settings{
		ID:                doc.ID,
		BusinessName:      doc.BusinessName,
		DefaultCurrency:   doc.DefaultCurrency,
		DefaultVatRate:    vatRate,
		VatEnabledDefault: doc.VatEnabledDefault,
		PaymentBaseURL:    doc.PaymentBaseURL,
		BaseModel: types.BaseModel{
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
			CreatedBy: doc.CreatedBy,
			UpdatedBy: doc.UpdatedBy,
		},
	}, nil
}

func (r *SettingsRepository) Update(ctx context.Context, s *settings.Settings) error {
	span, ctx := r.sentry.StartStoreSpan(ctx, "settings.update", nil)
	defer sentryService.FinishSpan(span)

	doc := settingsDoc{
		ID:                settings.SettingsDocID,
		BusinessName:      s.BusinessName,
		DefaultCurrency:   s.DefaultCurrency,
		DefaultVatRate:    s.DefaultVatRate.String(),
		VatEnabledDefault: s.VatEnabledDefault,
		PaymentBaseURL:    s.PaymentBaseURL,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
		CreatedBy:         s.CreatedBy,
		UpdatedBy:         s.UpdatedBy,
	}
	if _, err := r.doc().Set(ctx, doc); err != nil {
		return mapStoreError(err, "Unable to update settings")
	}
	return nil
}

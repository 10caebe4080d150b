package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/fixwise/fixwise/internal/domain/servicepreset"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/logger"
	sentryService "github.com/fixwise/fixwise/internal/sentry"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"
)

// ServicePresetRepository is the Firestore-backed implementation of
// servicepreset.Repository
type ServicePresetRepository struct {
	client *firestore.Client
	sentry *sentryService.Service
	logger *logger.Logger
}

func NewServicePresetRepository(client *firestore.Client, sentry *sentryService.Service, logger *logger.Logger) *ServicePresetRepository {
	return &ServicePresetRepository{
		client: client,
		sentry: sentry,
		logger: logger,
	}
}

type presetDoc struct {
	ID          string    `firestore:"id"`
	Name        string    `firestore:"name"`
	Description string    `firestore:"description,omitempty"`
	Price       string    `firestore:"price"`
	Category    string    `firestore:"category,omitempty"`
	CreatedAt   time.Time `firestore:"created_at"`
	UpdatedAt   time.Time `firestore:"updated_at"`
	CreatedBy   string    `firestore:"created_by"`
	UpdatedBy   string    `firestore:"updated_by"`
}

func toPresetDoc(p *servicepreset.ServicePreset) *presetDoc {
	return &presetDoc{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		CreatedBy:   p.CreatedBy,
		UpdatedBy:   p.UpdatedBy,
	}
}

func fromPresetDoc(doc *presetDoc) (*servicepreset.ServicePreset, error) {
	price, err := decimal.NewFromString(doc.Price)
	if err != nil {
		return nil, err
	}
	return &servicepreset.ServicePreset{
		ID:          doc.ID,
		Name:        doc.Name,
		Description: doc.Description,
		Price:       price,
		Category:    doc.Category,
		BaseModel: types.BaseModel{
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
			CreatedBy: doc.CreatedBy,
			UpdatedBy: doc.UpdatedBy,
		},
	}, nil
}

func (r *ServicePresetRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(servicePresetsCollection)
}

func (r *ServicePresetRepository) Create(ctx context.Context, p *servicepreset.ServicePreset) error {
	span, ctx := r.sentry.StartStoreSpan(ctx, "service_preset.create", map[string]interface{}{
		"preset_id": p.ID,
	})
	defer sentryService.FinishSpan(span)

	if _, err := r.collection().Doc(p.ID).Create(ctx, toPresetDoc(p)); err != nil {
		return mapStoreError(err, "Unable to create service preset")
	}
	return nil
}

func (r *ServicePresetRepository) Get(ctx context.Context, id string) (*servicepreset.ServicePreset, error) {
	if id == "" {
		return nil, ierr.NewError("service preset id is required").
			WithHint("Please provide a service preset id").
			Mark(ierr.ErrValidation)
	}

	span, ctx := r.sentry.StartStoreSpan(ctx, "service_preset.get", map[string]interface{}{
		"preset_id": id,
	})
	defer sentryService.FinishSpan(span)

	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapStoreError(err, "Service preset not found")
	}

	return r.decode(snap)
}

func (r *ServicePresetRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*servicepreset.ServicePreset, error) {
	span, ctx := r.sentry.StartStoreSpan(ctx, "service_preset.list", nil)
	defer sentryService.FinishSpan(span)

	q := r.collection().Query.OrderBy("name", firestore.Asc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var presets []*servicepreset.ServicePreset
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err, "Unable to list service presets")
		}

		preset, err := r.decode(snap)
		if err != nil {
			return nil, err
		}
		presets = append(presets, preset)
	}

	if filter != nil && !filter.IsUnlimited() {
		presets = paginate(presets, filter.GetOffset(), filter.GetLimit())
	}
	return presets, nil
}

func (r *ServicePresetRepository) Count(ctx context.Context) (int, error) {
	span, ctx := r.sentry.StartStoreSpan(ctx, "service_preset.count", nil)
	defer sentryService.FinishSpan(span)

	iter := r.collection().Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		if _, err := iter.Next(); err != nil {
			if err == iterator.Done {
				break
			}
			return 0, mapStoreError(err, "Unable to count service presets")
		}
		count++
	}
	return count, nil
}

func (r *ServicePresetRepository) decode(snap *firestore.DocumentSnapshot) (*servicepreset.ServicePreset, error) {
	var doc presetDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Stored service preset document is malformed").
			Mark(ierr.ErrDatabase)
	}

	preset, err := fromPresetDoc(&doc)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Stored service preset price is malformed").
			WithReportableDetails(map[string]any{
				"preset_id": doc.ID,
			}).
			Mark(ierr.ErrDatabase)
	}
	return preset, nil
}

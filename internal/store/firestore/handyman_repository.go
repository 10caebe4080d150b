package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/fixwise/fixwise/internal/domain/handyman"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/logger"
	sentryService "github.com/fixwise/fixwise/internal/sentry"
	"github.com/fixwise/fixwise/internal/types"
	"google.golang.org/api/iterator"
)

// HandymanRepository is the Firestore-backed implementation of
// handyman.Repository
type HandymanRepository struct {
	client *firestore.Client
	sentry *sentryService.Service
	logger *logger.Logger
}

func NewHandymanRepository(client *firestore.Client, sentry *sentryService.Service, logger *logger.Logger) *HandymanRepository {
	return &HandymanRepository{
		client: client,
		sentry: sentry,
		logger: logger,
	}
}

func (r *HandymanRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(handymenCollection)
}

func (r *HandymanRepository) Create(ctx context.Context, h *handyman.Handyman) error {
	span, ctx := r.sentry.StartStoreSpan(ctx, "handyman.create", map[string]interface{}{
		"handyman_id": h.ID,
	})
	defer sentryService.FinishSpan(span)

	if _, err := r.collection().Doc(h.ID).Create(ctx, h); err != nil {
		return mapStoreError(err, "Unable to create handyman")
	}
	return nil
}

func (r *HandymanRepository) Get(ctx context.Context, id string) (*handyman.Handyman, error) {
	if id == "" {
		return nil, ierr.NewError("handyman id is required").
			WithHint("Please provide a handyman id").
			Mark(ierr.ErrValidation)
	}

	span, ctx := r.sentry.StartStoreSpan(ctx, "handyman.get", map[string]interface{}{
		"handyman_id": id,
	})
	defer sentryService.FinishSpan(span)

	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapStoreError(err, "Handyman not found")
	}

	var h handyman.Handyman
	if err := snap.DataTo(&h); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Stored handyman document is malformed").
			Mark(ierr.ErrDatabase)
	}
	return &h, nil
}

func (r *HandymanRepository) Update(ctx context.Context, h *handyman.Handyman) error {
	span, ctx := r.sentry.StartStoreSpan(ctx, "handyman.update", map[string]interface{}{
		"handyman_id": h.ID,
	})
	defer sentryService.FinishSpan(span)

	if _, err := r.collection().Doc(h.ID).Set(ctx, h); err != nil {
		return mapStoreError(err, "Unable to update handyman")
	}
	return nil
}

func (r *HandymanRepository) Delete(ctx context.Context, id string) error {
	span, ctx := r.sentry.StartStoreSpan(ctx, "handyman.delete", map[string]interface{}{
		"handyman_id": id,
	})
	defer sentryService.FinishSpan(span)

	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	if _, err := r.collection().Doc(id).Delete(ctx); err != nil {
		return mapStoreError(err, "Unable to delete handyman")
	}
	return nil
}

func (r *HandymanRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*handyman.Handyman, error) {
	span, ctx := r.sentry.StartStoreSpan(ctx, "handyman.list", nil)
	defer sentryService.FinishSpan(span)

	q := r.collection().Query
	if filter != nil {
		q = q.OrderBy(filter.GetSort(), direction(filter.GetOrder()))
	} else {
		q = q.OrderBy("created_at", firestore.Desc)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var handymen []*handyman.Handyman
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err, "Unable to list handymen")
		}

		var h handyman.Handyman
		if err := snap.DataTo(&h); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Stored handyman document is malformed").
				Mark(ierr.ErrDatabase)
		}
		handymen = append(handymen, &h)
	}

	if filter != nil && !filter.IsUnlimited() {
		handymen = paginate(handymen, filter.GetOffset(), filter.GetLimit())
	}
	return handymen, nil
}

func (r *HandymanRepository) Count(ctx context.Context) (int, error) {
	span, ctx := r.sentry.StartStoreSpan(ctx, "handyman.count", nil)
	defer sentryService.FinishSpan(span)

	iter := r.collection().Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		if _, err := iter.Next(); err != nil {
			if err == iterator.Done {
				break
			}
			return 0, mapStoreError(err, "Unable to count handymen")
		}
		count++
	}
	return count, nil
}

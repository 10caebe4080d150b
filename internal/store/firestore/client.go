package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/fixwise/fixwise/internal/config"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	jobsCollection           = "jobs"
	invoicesCollection       = "invoices"
	handymenCollection       = "handymen"
	servicePresetsCollection = "service_presets"
	settingsCollection       = "settings"
)

// NewClient creates a Firestore client for the configured project
func NewClient(cfg *config.Configuration, log *logger.Logger) (*firestore.Client, error) {
	client, err := firestore.NewClient(context.Background(), cfg.Firestore.ProjectID)
	if err != nil {
		log.Errorw("failed to create firestore client",
			"error", err,
			"project_id", cfg.Firestore.ProjectID)
		return nil, ierr.WithError(err).
			WithHint("Unable to connect to the document store").
			Mark(ierr.ErrDatabase)
	}
	return client, nil
}

// mapStoreError translates Firestore errors into domain errors
func mapStoreError(err error, hint string) error {
	switch status.Code(err) {
	case codes.NotFound:
		return ierr.WithError(err).
			WithHint(hint).
			Mark(ierr.ErrNotFound)
	case codes.AlreadyExists:
		return ierr.WithError(err).
			WithHint(hint).
			Mark(ierr.ErrAlreadyExists)
	}
	return ierr.WithError(err).
		WithHint("The document store is unavailable, please retry").
		Mark(ierr.ErrDatabase)
}

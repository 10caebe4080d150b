package repository

import (
	"cloud.google.com/go/firestore"
	"github.com/fixwise/fixwise/internal/domain/handyman"
	"github.com/fixwise/fixwise/internal/domain/invoice"
	"github.com/fixwise/fixwise/internal/domain/job"
	"github.com/fixwise/fixwise/internal/domain/servicepreset"
	"github.com/fixwise/fixwise/internal/domain/settings"
	"github.com/fixwise/fixwise/internal/logger"
	"github.com/fixwise/fixwise/internal/sentry"
	firestoreRepo "github.com/fixwise/fixwise/internal/store/firestore"
)

func NewJobRepository(client *firestore.Client, sentryService *sentry.Service, logger *logger.Logger) job.Repository {
	return firestoreRepo.NewJobRepository(client, sentryService, logger)
}

func NewInvoiceRepository(client *firestore.Client, sentryService *sentry.Service, logger *logger.Logger) invoice.Repository {
	return firestoreRepo.NewInvoiceRepository(client, sentryService, logger)
}

func NewHandymanRepository(client *firestore.Client, sentryService *sentry.Service, logger *logger.Logger) handyman.Repository {
	return firestoreRepo.NewHandymanRepository(client, sentryService, logger)
}

func NewServicePresetRepository(client *firestore.Client, sentryService *sentry.Service, logger *logger.Logger) servicepreset.Repository {
	return firestoreRepo.NewServicePresetRepository(client, sentryService, logger)
}

func NewSettingsRepository(client *firestore.Client, sentryService *sentry.Service, logger *logger.Logger) settings.Repository {
	return firestoreRepo.NewSettingsRepository(client, sentryService, logger)
}

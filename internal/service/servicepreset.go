package service

import (
	"context"

	"github.com/fixwise/fixwise/internal/api/dto"
	"github.com/fixwise/fixwise/internal/domain/servicepreset"
	"github.com/fixwise/fixwise/internal/logger"
	"github.com/fixwise/fixwise/internal/types"
)

type ServicePresetService interface {
	GetServicePreset(ctx context.Context, id string) (*dto.ServicePresetResponse, error)
	ListServicePresets(ctx context.Context, filter *types.QueryFilter) (*dto.ListServicePresetsResponse, error)
}

type servicePresetService struct {
	repo   servicepreset.Repository
	logger *logger.Logger
}

func NewServicePresetService(repo servicepreset.Repository, logger *logger.Logger) ServicePresetService {
	return &servicePresetService{
		repo:   repo,
		logger: logger,
	}
}

func (s *servicePresetService) GetServicePreset(ctx context.Context, id string) (*dto.ServicePresetResponse, error) {
	preset, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewServicePresetResponse(preset), nil
}

func (s *servicePresetService) ListServicePresets(ctx context.Context, filter *types.QueryFilter) (*dto.ListServicePresetsResponse, error) {
	if filter == nil {
		filter = types.NewNoLimitQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	presets, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ServicePresetResponse, len(presets))
	for i, preset := range presets {
		items[i] = dto.NewServicePresetResponse(preset)
	}

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

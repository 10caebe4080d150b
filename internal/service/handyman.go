package service

import (
	"context"

	"github.com/fixwise/fixwise/internal/api/dto"
	"github.com/fixwise/fixwise/internal/clock"
	"github.com/fixwise/fixwise/internal/domain/handyman"
	"github.com/fixwise/fixwise/internal/logger"
	"github.com/fixwise/fixwise/internal/types"
)

type HandymanService interface {
	CreateHandyman(ctx context.Context, req dto.CreateHandymanRequest) (*dto.HandymanResponse, error)
	GetHandyman(ctx context.Context, id string) (*dto.HandymanResponse, error)
	ListHandymen(ctx context.Context, filter *types.QueryFilter) (*dto.ListHandymenResponse, error)
	UpdateHandyman(ctx context.Context, id string, req dto.UpdateHandymanRequest) (*dto.HandymanResponse, error)
	DeleteHandyman(ctx context.Context, id string) error
}

type handymanService struct {
	repo   handyman.Repository
	clock  clock.Clock
	logger *logger.Logger
}

func NewHandymanService(repo handyman.Repository, clock clock.Clock, logger *logger.Logger) HandymanService {
	return &handymanService{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

func (s *handymanService) CreateHandyman(ctx context.Context, req dto.CreateHandymanRequest) (*dto.HandymanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	h := req.ToHandyman(ctx)
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}

	return dto.NewHandymanResponse(h), nil
}

func (s *handymanService) GetHandyman(ctx context.Context, id string) (*dto.HandymanResponse, error) {
	h, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewHandymanResponse(h), nil
}

func (s *handymanService) ListHandymen(ctx context.Context, filter *types.QueryFilter) (*dto.ListHandymenResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	handymen, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.HandymanResponse, len(handymen))
	for i, h := range handymen {
		items[i] = dto.NewHandymanResponse(h)
	}

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *handymanService) UpdateHandyman(ctx context.Context, id string, req dto.UpdateHandymanRequest) (*dto.HandymanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	h, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Phone != nil {
		h.Phone = *req.Phone
	}
	if req.Email != nil {
		h.Email = *req.Email
	}
	h.UpdatedAt = s.clock.Now()
	h.UpdatedBy = types.GetOperatorID(ctx)

	if err := h.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, h); err != nil {
		return nil, err
	}

	// jobs keep the name snapshot taken at assignment time; renames do not
	// rewrite existing jobs or invoices
	return dto.NewHandymanResponse(h), nil
}

func (s *handymanService) DeleteHandyman(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

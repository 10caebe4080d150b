package service

import (
	"fmt"
	"testing"

	"github.com/fixwise/fixwise/internal/api/dto"
	"github.com/fixwise/fixwise/internal/domain/servicepreset"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/testutil"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type HandymanServiceSuite struct {
	testutil.BaseServiceTestSuite
	service HandymanService
	presets ServicePresetService
}

func TestHandymanService(t *testing.T) {
	suite.Run(t, new(HandymanServiceSuite))
}

func (s *HandymanServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	s.service = NewHandymanService(
		s.GetStores().HandymanRepo, s.GetClock(), s.GetLogger())
	s.presets = NewServicePresetService(
		s.GetStores().ServicePresetRepo, s.GetLogger())
}

func (s *HandymanServiceSuite) TestCreateHandyman() {
	resp, err := s.service.CreateHandyman(s.GetContext(), dto.CreateHandymanRequest{
		Name:  "Avi Cohen",
		Phone: "+972-54-555-0101",
	})
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal("Avi Cohen", resp.Name)

	_, err = s.service.CreateHandyman(s.GetContext(), dto.CreateHandymanRequest{})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *HandymanServiceSuite) TestListHandymenTotalSpansPages() {
	for i := 0; i < 3; i++ {
		_, err := s.service.CreateHandyman(s.GetContext(), dto.CreateHandymanRequest{
			Name: fmt.Sprintf("Handyman %d", i),
		})
		s.NoError(err)
	}

	resp, err := s.service.ListHandymen(s.GetContext(), &types.QueryFilter{
		Limit:  lo.ToPtr(2),
		Offset: lo.ToPtr(0),
	})
	s.NoError(err)
	s.Len(resp.Items, 2)

	// total reflects the full collection, not the returned page
	s.Equal(3, resp.Pagination.Total)
	s.Equal(2, resp.Pagination.Limit)
}

func (s *HandymanServiceSuite) TestListServicePresetsTotalSpansPages() {
	for i := 0; i < 4; i++ {
		preset := &servicepreset.ServicePreset{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SERVICE_PRESET),
			Name:      fmt.Sprintf("Preset %d", i),
			Price:     decimal.NewFromInt(int64(100 + i)),
			BaseModel: types.GetDefaultBaseModel(s.GetContext()),
		}
		s.NoError(s.GetStores().ServicePresetRepo.Create(s.GetContext(), preset))
	}

	resp, err := s.presets.ListServicePresets(s.GetContext(), &types.QueryFilter{
		Limit:  lo.ToPtr(3),
		Offset: lo.ToPtr(0),
	})
	s.NoError(err)
	s.Len(resp.Items, 3)
	s.Equal(4, resp.Pagination.Total)
}

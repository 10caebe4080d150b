package dto

import (
	"github.com/fixwise/fixwise/internal/domain/servicepreset"
	"github.com/fixwise/fixwise/internal/types"
)

type ServicePresetResponse struct {
	*servicepreset.ServicePreset
}

// ListServicePresetsResponse represents the response for listing presets
type ListServicePresetsResponse = types.ListResponse[*ServicePresetResponse]

func NewServicePresetResponse(p *servicepreset.ServicePreset) *ServicePresetResponse {
	return &ServicePresetResponse{ServicePreset: p}
}

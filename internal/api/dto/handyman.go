package dto

import (
	"context"

	"github.com/fixwise/fixwise/internal/domain/handyman"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/fixwise/fixwise/internal/validator"
)

type CreateHandymanRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Phone string `json:"phone" validate:"omitempty,max=30"`
	Email string `json:"email" validate:"omitempty,email"`
}

type UpdateHandymanRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=200"`
	Phone *string `json:"phone" validate:"omitempty,max=30"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type HandymanResponse struct {
	*handyman.Handyman
}

// ListHandymenResponse represents the response for listing handymen
type ListHandymenResponse = types.ListResponse[*HandymanResponse]

func NewHandymanResponse(h *handyman.Handyman) *HandymanResponse {
	return &HandymanResponse{Handyman: h}
}

func (r *CreateHandymanRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateHandymanRequest) ToHandyman(ctx context.Context) *handyman.Handyman {
	return &handyman.Handyman{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_HANDYMAN),
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateHandymanRequest) Validate() error {
	return validator.ValidateRequest(r)
}

package v1

import (
	"net/http"

	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/logger"
	"github.com/fixwise/fixwise/internal/service"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/gin-gonic/gin"
)

type ServicePresetHandler struct {
	service service.ServicePresetService
	logger  *logger.Logger
}

func NewServicePresetHandler(service service.ServicePresetService, logger *logger.Logger) *ServicePresetHandler {
	return &ServicePresetHandler{
		service: service,
		logger:  logger,
	}
}

// GetServicePreset godoc
// @Summary Get a service preset by ID
// @Description Get a catalog entry used to pre-fill invoice line items
// @Tags ServicePresets
// @Accept json
// @Produce json
// @Param id path string true "Service preset ID"
// @Success 200 {object} dto.ServicePresetResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /service-presets/{id} [get]
func (h *ServicePresetHandler) GetServicePreset(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid service preset id").Mark(ierr.ErrValidation))
		return
	}

	preset, err := h.service.GetServicePreset(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, preset)
}

// ListServicePresets godoc
// @Summary List service presets
// @Description List the service catalog
// @Tags ServicePresets
// @Accept json
// @Produce json
// @Success 200 {object} dto.ListServicePresetsResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /service-presets [get]
func (h *ServicePresetHandler) ListServicePresets(c *gin.Context) {
	presets, err := h.service.ListServicePresets(c.Request.Context(), types.NewNoLimitQueryFilter())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, presets)
}

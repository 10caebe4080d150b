package v1

import (
	"net/http"

	"github.com/fixwise/fixwise/internal/api/dto"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/logger"
	"github.com/fixwise/fixwise/internal/service"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/gin-gonic/gin"
)

type HandymanHandler struct {
	service service.HandymanService
	logger  *logger.Logger
}

func NewHandymanHandler(service service.HandymanService, logger *logger.Logger) *HandymanHandler {
	return &HandymanHandler{
		service: service,
		logger:  logger,
	}
}

// CreateHandyman godoc
// @Summary Create a new handyman
// @Description Add a handyman to the roster
// @Tags Handymen
// @Accept json
// @Produce json
// @Param handyman body dto.CreateHandymanRequest true "Handyman details"
// @Success 201 {object} dto.HandymanResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /handymen [post]
func (h *HandymanHandler) CreateHandyman(c *gin.Context) {
	var req dto.CreateHandymanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	handyman, err := h.service.CreateHandyman(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, handyman)
}

// GetHandyman godoc
// @Summary Get a handyman by ID
// @Description Get a handyman from the roster
// @Tags Handymen
// @Accept json
// @Produce json
// @Param id path string true "Handyman ID"
// @Success 200 {object} dto.HandymanResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /handymen/{id} [get]
func (h *HandymanHandler) GetHandyman(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid handyman id").Mark(ierr.ErrValidation))
		return
	}

	handyman, err := h.service.GetHandyman(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handyman)
}

// ListHandymen godoc
// @Summary List handymen
// @Description List the handyman roster
// @Tags Handymen
// @Accept json
// @Produce json
// @Param filter query types.QueryFilter false "Filter"
// @Success 200 {object} dto.ListHandymenResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /handymen [get]
func (h *HandymanHandler) ListHandymen(c *gin.Context) {
	var filter types.QueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.logger.Errorw("failed to bind query", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid query parameters").Mark(ierr.ErrValidation))
		return
	}

	handymen, err := h.service.ListHandymen(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handymen)
}

// UpdateHandyman godoc
// @Summary Update a handyman
// @Description Update a handyman's roster details
// @Tags Handymen
// @Accept json
// @Produce json
// @Param id path string true "Handyman ID"
// @Param handyman body dto.UpdateHandymanRequest true "Handyman details"
// @Success 200 {object} dto.HandymanResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /handymen/{id} [put]
func (h *HandymanHandler) UpdateHandyman(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid handyman id").Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateHandymanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	handyman, err := h.service.UpdateHandyman(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handyman)
}

// DeleteHandyman godoc
// @Summary Delete a handyman
// @Description Remove a handyman from the roster
// @Tags Handymen
// @Accept json
// @Produce json
// @Param id path string true "Handyman ID"
// @Success 204 "No Content"
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /handymen/{id} [delete]
func (h *HandymanHandler) DeleteHandyman(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid handyman id").Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.DeleteHandyman(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

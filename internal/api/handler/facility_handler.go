package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/service"
	"github.com/Capp3/broadcast-flow-control-system/pkg/response"
)

// FacilityHandler is the facility HTTP handler.
type FacilityHandler struct {
	facilitySvc service.FacilityService
}

// NewFacilityHandler creates the FacilityHandler.
func NewFacilityHandler(facilitySvc service.FacilityService) *FacilityHandler {
	return &FacilityHandler{facilitySvc: facilitySvc}
}

// ListFacilities lists all facilities.
// GET /api/facilities/
func (h *FacilityHandler) ListFacilities(c *gin.Context) {
	facilities, err := h.facilitySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, facilities)
}

// GetFacility fetches one facility.
// GET /api/facilities/:id/
func (h *FacilityHandler) GetFacility(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	facility, err := h.facilitySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleFacilityError(c, err)
		return
	}
	response.OK(c, facility)
}

// CreateFacility creates a facility.
// POST /api/facilities/
func (h *FacilityHandler) CreateFacility(c *gin.Context) {
	var req dto.CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	facility, err := h.facilitySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleFacilityError(c, err)
		return
	}
	response.Created(c, facility)
}

// UpdateFacility applies a full or partial update.
// PUT/PATCH /api/facilities/:id/
func (h *FacilityHandler) UpdateFacility(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	facility, err := h.facilitySvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleFacilityError(c, err)
		return
	}
	response.OK(c, facility)
}

// DeleteFacility removes a facility and its dependent tickets and events.
// DELETE /api/facilities/:id/
func (h *FacilityHandler) DeleteFacility(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facilitySvc.Delete(c.Request.Context(), id); err != nil {
		h.handleFacilityError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *FacilityHandler) handleFacilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFacilityNotFound):
		response.NotFound(c, 13001, "facility not found")
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, 10001, err.Error())
	default:
		response.InternalError(c)
	}
}

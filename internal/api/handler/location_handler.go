package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/service"
	"github.com/Capp3/broadcast-flow-control-system/pkg/response"
)

// LocationHandler is the location HTTP handler.
type LocationHandler struct {
	locationSvc service.LocationService
}

// NewLocationHandler creates the LocationHandler.
func NewLocationHandler(locationSvc service.LocationService) *LocationHandler {
	return &LocationHandler{locationSvc: locationSvc}
}

// ListLocations lists all locations.
// GET /api/locations/
func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.locationSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, locations)
}

// GetLocation fetches one location.
// GET /api/locations/:id/
func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	location, err := h.locationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleLocationError(c, err)
		return
	}
	response.OK(c, location)
}

// CreateLocation creates a location.
// POST /api/locations/
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	location, err := h.locationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleLocationError(c, err)
		return
	}
	response.Created(c, location)
}

// UpdateLocation applies a full or partial update.
// PUT/PATCH /api/locations/:id/
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	location, err := h.locationSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleLocationError(c, err)
		return
	}
	response.OK(c, location)
}

// DeleteLocation removes a location and everything referencing it.
// DELETE /api/locations/:id/
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.locationSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleLocationError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *LocationHandler) handleLocationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLocationNotFound):
		response.NotFound(c, 12001, "location not found")
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, 10001, err.Error())
	default:
		response.InternalError(c)
	}
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/service"
	"github.com/Capp3/broadcast-flow-control-system/pkg/response"
)

// IncidentTypeHandler is the incident classification HTTP handler.
type IncidentTypeHandler struct {
	typeSvc service.IncidentTypeService
}

// NewIncidentTypeHandler creates the IncidentTypeHandler.
func NewIncidentTypeHandler(typeSvc service.IncidentTypeService) *IncidentTypeHandler {
	return &IncidentTypeHandler{typeSvc: typeSvc}
}

// ListIncidentTypes lists all incident types.
// GET /api/incident-types/
func (h *IncidentTypeHandler) ListIncidentTypes(c *gin.Context) {
	types, err := h.typeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, types)
}

// GetIncidentType fetches one incident type.
// GET /api/incident-types/:id/
func (h *IncidentTypeHandler) GetIncidentType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	it, err := h.typeSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleIncidentTypeError(c, err)
		return
	}
	response.OK(c, it)
}

// CreateIncidentType creates an incident type.
// POST /api/incident-types/
func (h *IncidentTypeHandler) CreateIncidentType(c *gin.Context) {
	var req dto.CreateIncidentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	it, err := h.typeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleIncidentTypeError(c, err)
		return
	}
	response.Created(c, it)
}

// UpdateIncidentType applies a full or partial update.
// PUT/PATCH /api/incident-types/:id/
func (h *IncidentTypeHandler) UpdateIncidentType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateIncidentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	it, err := h.typeSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleIncidentTypeError(c, err)
		return
	}
	response.OK(c, it)
}

// DeleteIncidentType removes an incident type and its tickets.
// DELETE /api/incident-types/:id/
func (h *IncidentTypeHandler) DeleteIncidentType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.typeSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleIncidentTypeError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *IncidentTypeHandler) handleIncidentTypeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrIncidentTypeNotFound):
		response.NotFound(c, 15001, "incident type not found")
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, 10001, err.Error())
	default:
		response.InternalError(c)
	}
}

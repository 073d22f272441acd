package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/service"
	"github.com/Capp3/broadcast-flow-control-system/pkg/response"
)

// ShiftHandler is the shift template HTTP handler.
type ShiftHandler struct {
	shiftSvc service.ShiftService
}

// NewShiftHandler creates the ShiftHandler.
func NewShiftHandler(shiftSvc service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftSvc: shiftSvc}
}

// ListShifts lists all shifts.
// GET /api/shifts/
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	shifts, err := h.shiftSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, shifts)
}

// GetShift fetches one shift.
// GET /api/shifts/:id/
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	shift, err := h.shiftSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.OK(c, shift)
}

// CreateShift creates a shift.
// POST /api/shifts/
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	shift, err := h.shiftSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.Created(c, shift)
}

// UpdateShift applies a full or partial update.
// PUT/PATCH /api/shifts/:id/
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	shift, err := h.shiftSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.OK(c, shift)
}

// DeleteShift removes a shift.
// DELETE /api/shifts/:id/
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.shiftSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *ShiftHandler) handleShiftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 14001, "shift not found")
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, 10001, err.Error())
	default:
		response.InternalError(c)
	}
}

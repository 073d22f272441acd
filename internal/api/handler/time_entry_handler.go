package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/service"
	"github.com/Capp3/broadcast-flow-control-system/pkg/response"
)

// TimeEntryHandler is the clock and break event HTTP handler.
type TimeEntryHandler struct {
	entrySvc service.TimeEntryService
}

// NewTimeEntryHandler creates the TimeEntryHandler.
func NewTimeEntryHandler(entrySvc service.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{entrySvc: entrySvc}
}

// ListTimeEntries lists time entries, optionally for one account.
// GET /api/time-entries/?user_id=
func (h *TimeEntryHandler) ListTimeEntries(c *gin.Context) {
	var req dto.TimeEntryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	entries, err := h.entrySvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, entries)
}

// GetTimeEntry fetches one time entry.
// GET /api/time-entries/:id/
func (h *TimeEntryHandler) GetTimeEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	entry, err := h.entrySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleTimeEntryError(c, err)
		return
	}
	response.OK(c, entry)
}

// CreateTimeEntry records a clock or break event.
// POST /api/time-entries/
func (h *TimeEntryHandler) CreateTimeEntry(c *gin.Context) {
	var req dto.CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	entry, err := h.entrySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTimeEntryError(c, err)
		return
	}
	response.Created(c, entry)
}

// UpdateTimeEntry applies a full or partial update.
// PUT/PATCH /api/time-entries/:id/
func (h *TimeEntryHandler) UpdateTimeEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	entry, err := h.entrySvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleTimeEntryError(c, err)
		return
	}
	response.OK(c, entry)
}

// DeleteTimeEntry removes a time entry.
// DELETE /api/time-entries/:id/
func (h *TimeEntryHandler) DeleteTimeEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.entrySvc.Delete(c.Request.Context(), id); err != nil {
		h.handleTimeEntryError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *TimeEntryHandler) handleTimeEntryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTimeEntryNotFound):
		response.NotFound(c, 18001, "time entry not found")
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, 10001, err.Error())
	default:
		response.InternalError(c)
	}
}

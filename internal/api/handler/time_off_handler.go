package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/service"
	"github.com/Capp3/broadcast-flow-control-system/pkg/response"
)

// TimeOffHandler is the leave request HTTP handler.
type TimeOffHandler struct {
	timeOffSvc service.TimeOffService
}

// NewTimeOffHandler creates the TimeOffHandler.
func NewTimeOffHandler(timeOffSvc service.TimeOffService) *TimeOffHandler {
	return &TimeOffHandler{timeOffSvc: timeOffSvc}
}

// ListTimeOffRequests lists leave requests, optionally for one account.
// GET /api/time-off-requests/?user_id=
func (h *TimeOffHandler) ListTimeOffRequests(c *gin.Context) {
	var req dto.TimeOffListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	requests, err := h.timeOffSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, requests)
}

// GetTimeOffRequest fetches one leave request.
// GET /api/time-off-requests/:id/
func (h *TimeOffHandler) GetTimeOffRequest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	request, err := h.timeOffSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleTimeOffError(c, err)
		return
	}
	response.OK(c, request)
}

// CreateTimeOffRequest files a leave request.
// POST /api/time-off-requests/
func (h *TimeOffHandler) CreateTimeOffRequest(c *gin.Context) {
	var req dto.CreateTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	request, err := h.timeOffSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTimeOffError(c, err)
		return
	}
	response.Created(c, request)
}

// UpdateTimeOffRequest applies a full or partial update.
// PUT/PATCH /api/time-off-requests/:id/
func (h *TimeOffHandler) UpdateTimeOffRequest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	request, err := h.timeOffSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleTimeOffError(c, err)
		return
	}
	response.OK(c, request)
}

// DeleteTimeOffRequest removes a leave request.
// DELETE /api/time-off-requests/:id/
func (h *TimeOffHandler) DeleteTimeOffRequest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.timeOffSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleTimeOffError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *TimeOffHandler) handleTimeOffError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTimeOffNotFound):
		response.NotFound(c, 20001, "time-off request not found")
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, 10001, err.Error())
	default:
		response.InternalError(c)
	}
}

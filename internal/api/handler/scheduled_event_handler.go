package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/service"
	"github.com/Capp3/broadcast-flow-control-system/pkg/response"
)

// ScheduledEventHandler is the roster event HTTP handler.
type ScheduledEventHandler struct {
	eventSvc service.ScheduledEventService
}

// NewScheduledEventHandler creates the ScheduledEventHandler.
func NewScheduledEventHandler(eventSvc service.ScheduledEventService) *ScheduledEventHandler {
	return &ScheduledEventHandler{eventSvc: eventSvc}
}

// ListScheduledEvents lists roster events, optionally narrowed by
// attendee or date window.
// GET /api/scheduled-events/?user_id=&start_date=&end_date=
func (h *ScheduledEventHandler) ListScheduledEvents(c *gin.Context) {
	var req dto.ScheduledEventListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	events, err := h.eventSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduledEventError(c, err)
		return
	}
	response.OK(c, events)
}

// GetScheduledEvent fetches one roster event.
// GET /api/scheduled-events/:id/
func (h *ScheduledEventHandler) GetScheduledEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	event, err := h.eventSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleScheduledEventError(c, err)
		return
	}
	response.OK(c, event)
}

// CreateScheduledEvent creates a roster event with its attendee set.
// POST /api/scheduled-events/
func (h *ScheduledEventHandler) CreateScheduledEvent(c *gin.Context) {
	var req dto.CreateScheduledEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	event, err := h.eventSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduledEventError(c, err)
		return
	}
	response.Created(c, event)
}

// UpdateScheduledEvent applies a full or partial update.
// PUT/PATCH /api/scheduled-events/:id/
func (h *ScheduledEventHandler) UpdateScheduledEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateScheduledEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	event, err := h.eventSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleScheduledEventError(c, err)
		return
	}
	response.OK(c, event)
}

// DeleteScheduledEvent removes a roster event.
// DELETE /api/scheduled-events/:id/
func (h *ScheduledEventHandler) DeleteScheduledEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.eventSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleScheduledEventError(c, err)
		return
	}
	response.OK(c, nil)
}

// ImportScheduledEvents creates roster events from an uploaded iCalendar
// file. The multipart form carries the file as "file" plus facility_id
// and user_ids fields.
// POST /api/scheduled-events/import/
func (h *ScheduledEventHandler) ImportScheduledEvents(c *gin.Context) {
	var req dto.ImportEventsRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "calendar file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.InternalError(c)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.InternalError(c)
		return
	}

	result, err := h.eventSvc.ImportICS(c.Request.Context(), data, req.FacilityID, req.UserIDs)
	if err != nil {
		h.handleScheduledEventError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *ScheduledEventHandler) handleScheduledEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduledEventNotFound):
		response.NotFound(c, 19001, "scheduled event not found")
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, 10001, err.Error())
	default:
		response.InternalError(c)
	}
}

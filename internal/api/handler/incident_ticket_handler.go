package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/service"
	"github.com/Capp3/broadcast-flow-control-system/pkg/response"
)

// IncidentTicketHandler is the incident ticket HTTP handler.
type IncidentTicketHandler struct {
	ticketSvc service.IncidentTicketService
}

// NewIncidentTicketHandler creates the IncidentTicketHandler.
func NewIncidentTicketHandler(ticketSvc service.IncidentTicketService) *IncidentTicketHandler {
	return &IncidentTicketHandler{ticketSvc: ticketSvc}
}

// ListIncidentTickets lists all incident tickets.
// GET /api/incident-tickets/
func (h *IncidentTicketHandler) ListIncidentTickets(c *gin.Context) {
	tickets, err := h.ticketSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, tickets)
}

// GetIncidentTicket fetches one incident ticket.
// GET /api/incident-tickets/:id/
func (h *IncidentTicketHandler) GetIncidentTicket(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ticket, err := h.ticketSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleIncidentTicketError(c, err)
		return
	}
	response.OK(c, ticket)
}

// CreateIncidentTicket opens an incident ticket.
// POST /api/incident-tickets/
func (h *IncidentTicketHandler) CreateIncidentTicket(c *gin.Context) {
	var req dto.CreateIncidentTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	ticket, err := h.ticketSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleIncidentTicketError(c, err)
		return
	}
	response.Created(c, ticket)
}

// UpdateIncidentTicket applies a full or partial update.
// PUT/PATCH /api/incident-tickets/:id/
func (h *IncidentTicketHandler) UpdateIncidentTicket(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateIncidentTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	ticket, err := h.ticketSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleIncidentTicketError(c, err)
		return
	}
	response.OK(c, ticket)
}

// DeleteIncidentTicket removes an incident ticket.
// DELETE /api/incident-tickets/:id/
func (h *IncidentTicketHandler) DeleteIncidentTicket(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.ticketSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleIncidentTicketError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *IncidentTicketHandler) handleIncidentTicketError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrIncidentTicketNotFound):
		response.NotFound(c, 16001, "incident ticket not found")
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, 10001, err.Error())
	default:
		response.InternalError(c)
	}
}

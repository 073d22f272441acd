package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/service"
	"github.com/Capp3/broadcast-flow-control-system/pkg/response"
)

// ServiceTicketHandler is the service ticket HTTP handler.
type ServiceTicketHandler struct {
	ticketSvc service.ServiceTicketService
}

// NewServiceTicketHandler creates the ServiceTicketHandler.
func NewServiceTicketHandler(ticketSvc service.ServiceTicketService) *ServiceTicketHandler {
	return &ServiceTicketHandler{ticketSvc: ticketSvc}
}

// ListServiceTickets lists all service tickets.
// GET /api/service-tickets/
func (h *ServiceTicketHandler) ListServiceTickets(c *gin.Context) {
	tickets, err := h.ticketSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, tickets)
}

// GetServiceTicket fetches one service ticket.
// GET /api/service-tickets/:id/
func (h *ServiceTicketHandler) GetServiceTicket(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ticket, err := h.ticketSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceTicketError(c, err)
		return
	}
	response.OK(c, ticket)
}

// CreateServiceTicket opens a service ticket.
// POST /api/service-tickets/
func (h *ServiceTicketHandler) CreateServiceTicket(c *gin.Context) {
	var req dto.CreateServiceTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	ticket, err := h.ticketSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceTicketError(c, err)
		return
	}
	response.Created(c, ticket)
}

// UpdateServiceTicket applies a full or partial update.
// PUT/PATCH /api/service-tickets/:id/
func (h *ServiceTicketHandler) UpdateServiceTicket(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	ticket, err := h.ticketSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceTicketError(c, err)
		return
	}
	response.OK(c, ticket)
}

// DeleteServiceTicket removes a service ticket.
// DELETE /api/service-tickets/:id/
func (h *ServiceTicketHandler) DeleteServiceTicket(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.ticketSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceTicketError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *ServiceTicketHandler) handleServiceTicketError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrServiceTicketNotFound):
		response.NotFound(c, 17001, "service ticket not found")
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, 10001, err.Error())
	default:
		response.InternalError(c)
	}
}

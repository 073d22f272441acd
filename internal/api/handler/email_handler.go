package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/internal/service"
	"github.com/Capp3/broadcast-flow-control-system/pkg/response"
)

// EmailHandler is the outbound mail HTTP handler.
type EmailHandler struct {
	emailSvc service.EmailService
}

// NewEmailHandler creates the EmailHandler.
func NewEmailHandler(emailSvc service.EmailService) *EmailHandler {
	return &EmailHandler{emailSvc: emailSvc}
}

// SendEmail relays one message through the configured SMTP transport.
// POST /api/send-email/
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var req dto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	if err := h.emailSvc.Send(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			response.BadRequest(c, 10001, err.Error())
		case errors.Is(err, service.ErrSendFailed):
			response.Error(c, http.StatusInternalServerError, 21001, "mail delivery failed")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{"sent": len(req.RecipientList)})
}

package dto

// SendEmailRequest carries one outbound message. All three fields are
// required; an empty recipient list is rejected before transport.
type SendEmailRequest struct {
	Subject       string   `json:"subject"        binding:"required"`
	Message       string   `json:"message"        binding:"required"`
	RecipientList []string `json:"recipient_list" binding:"required,min=1,dive,email"`
}

package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Capp3/broadcast-flow-control-system/internal/dto"
	"github.com/Capp3/broadcast-flow-control-system/pkg/mailer"
)

// ErrSendFailed marks a message the mail transport could not deliver.
var ErrSendFailed = errors.New("send failed")

// EmailService delivers operational mail on behalf of the API.
type EmailService interface {
	Send(ctx context.Context, req *dto.SendEmailRequest) error
}

type emailService struct {
	sender mailer.Sender
	logger *zap.Logger
}

// NewEmailService builds the EmailService.
func NewEmailService(sender mailer.Sender, logger *zap.Logger) EmailService {
	return &emailService{sender: sender, logger: logger}
}

func (s *emailService) Send(ctx context.Context, req *dto.SendEmailRequest) error {
	if len(req.RecipientList) == 0 {
		return fmt.Errorf("%w: recipient_list must not be empty", ErrValidation)
	}

	if err := s.sender.Send(req.Subject, req.Message, req.RecipientList); err != nil {
		s.logger.Error("send email failed",
			zap.String("subject", req.Subject),
			zap.Int("recipients", len(req.RecipientList)),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	s.logger.Info("email sent",
		zap.String("subject", req.Subject),
		zap.Int("recipients", len(req.RecipientList)))
	return nil
}

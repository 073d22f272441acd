// Package mailer sends plain-text mail through a single SMTP relay call.
// One synchronous attempt per message; no retry, no queueing.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Capp3/broadcast-flow-control-system/config"
)

// Sender delivers one message to a recipient list.
type Sender interface {
	Send(subject, body string, recipients []string) error
}

// SMTPSender is the net/smtp implementation of Sender.
type SMTPSender struct {
	cfg *config.MailConfig
}

// NewSMTPSender builds a sender from the mail config.
func NewSMTPSender(cfg *config.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send performs a single SMTP transaction. PLAIN auth is used when a
// username is configured.
func (s *SMTPSender) Send(subject, body string, recipients []string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)
	}

	msg := buildMessage(s.cfg.From, subject, body, recipients)

	if err := smtp.SendMail(addr, auth, s.cfg.From, recipients, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func buildMessage(from, subject, body string, recipients []string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(recipients, ", ") + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
